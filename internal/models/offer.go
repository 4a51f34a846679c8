package models

import "time"

const (
	OfferStatusAccepted = "accepted"
)

// Offer records a completed purchase: an append-only settlement ledger
// entry, not a negotiable bid.
type Offer struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time

	ListingID uint    `gorm:"index;not null"`
	Listing   Listing `gorm:"foreignKey:ListingID"`
	BuyerID   uint    `gorm:"index;not null"`
	Buyer     User    `gorm:"foreignKey:BuyerID"`

	Status string `gorm:"not null"`
}
