package models

import "time"

const (
	ListingStatusActive = "active"
	ListingStatusSold   = "sold"

	ListingTypeLease = "lease"
)

// Listing is a seller's offer of water for temporary lease. Quantities are
// stored in milli-acre-feet and prices in cents so settlement math stays in
// integers end to end.
type Listing struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	SellerID uint `gorm:"index;not null"`
	Seller   User `gorm:"foreignKey:SellerID"`

	ListingType   string `gorm:"not null;default:'lease'"`
	LeaseDuration string `gorm:"not null"`
	WaterDistrict string `gorm:"not null"`
	AmountMilliAF int64  `gorm:"not null"`
	PriceCentsAF  int64  `gorm:"not null"`
	Description   string

	// Status transitions only active -> sold, and only through settlement.
	Status string `gorm:"not null;default:'active';index"`
}
