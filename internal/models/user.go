package models

import "time"

type User struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string `gorm:"not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	Phone     string
	// WaterDistrict is the district the user's allocation belongs to.
	WaterDistrict string
	// StripeAccountID is the connected payment account, empty until the
	// seller completes onboarding.
	StripeAccountID string
	// AnnualAllocationMilliAF is the user's yearly entitlement in
	// thousandths of an acre-foot.
	AnnualAllocationMilliAF int64 `gorm:"default:0"`
}
