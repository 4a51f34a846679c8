package services

import (
	"errors"

	"github.com/Danielrod221/agriwater-live-app/internal/database"
	"github.com/Danielrod221/agriwater-live-app/internal/models"
)

var (
	// ErrListingNotFound covers both a nonexistent listing and one owned by
	// someone else, so responses never leak which ids exist.
	ErrListingNotFound = errors.New("listing not found or you do not have permission")

	ErrPaymentAccountRequired = errors.New("a connected payment account is required before creating listings")
)

type ListingInput struct {
	LeaseDuration string
	WaterDistrict string
	AmountMilliAF int64
	PriceCentsAF  int64
	Description   string
}

// CreateListing creates a lease listing owned by the seller. Sellers
// without a connected payment account cannot list.
func CreateListing(sellerID uint, input ListingInput) (*models.Listing, error) {
	seller, err := FindUserByID(sellerID)
	if err != nil {
		return nil, err
	}
	if seller.StripeAccountID == "" {
		return nil, ErrPaymentAccountRequired
	}

	listing := &models.Listing{
		SellerID:      sellerID,
		ListingType:   models.ListingTypeLease,
		LeaseDuration: input.LeaseDuration,
		WaterDistrict: input.WaterDistrict,
		AmountMilliAF: input.AmountMilliAF,
		PriceCentsAF:  input.PriceCentsAF,
		Description:   input.Description,
		Status:        models.ListingStatusActive,
	}

	if err := database.DB.Create(listing).Error; err != nil {
		return nil, err
	}
	return listing, nil
}

// MarketplaceListings returns every active listing with its seller loaded.
func MarketplaceListings() ([]models.Listing, error) {
	var listings []models.Listing
	err := database.DB.Preload("Seller").
		Where("status = ?", models.ListingStatusActive).
		Order("created_at DESC").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// ListingsBySeller returns the seller's own listings, newest first.
func ListingsBySeller(sellerID uint) ([]models.Listing, error) {
	var listings []models.Listing
	err := database.DB.Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// GetOwnListing fetches one listing scoped to its owner; any miss is
// ErrListingNotFound.
func GetOwnListing(sellerID, listingID uint) (*models.Listing, error) {
	var listing models.Listing
	err := database.DB.Where("id = ? AND seller_id = ?", listingID, sellerID).
		First(&listing).Error
	if err != nil {
		return nil, ErrListingNotFound
	}
	return &listing, nil
}

// UpdateListing edits a listing's terms, scoped to the owner in the WHERE
// clause. Zero affected rows means not-found, whatever the reason.
func UpdateListing(sellerID, listingID uint, input ListingInput) error {
	result := database.DB.Model(&models.Listing{}).
		Where("id = ? AND seller_id = ?", listingID, sellerID).
		Updates(map[string]interface{}{
			"lease_duration":  input.LeaseDuration,
			"water_district":  input.WaterDistrict,
			"amount_milli_af": input.AmountMilliAF,
			"price_cents_af":  input.PriceCentsAF,
			"description":     input.Description,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

// DeleteListing removes a listing, scoped to the owner the same way.
func DeleteListing(sellerID, listingID uint) error {
	result := database.DB.
		Where("id = ? AND seller_id = ?", listingID, sellerID).
		Delete(&models.Listing{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}
