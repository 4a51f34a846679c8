package services

import (
	"github.com/Danielrod221/agriwater-live-app/internal/database"
	"github.com/Danielrod221/agriwater-live-app/internal/models"
)

func FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateAllocation sets the user's annual entitlement in milli-acre-feet.
func UpdateAllocation(userID uint, allocationMilliAF int64) error {
	return database.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("annual_allocation_milli_af", allocationMilliAF).Error
}

// CurrentBalanceMilliAF computes the user's effective water balance:
// annual allocation, minus everything sold, plus everything purchased.
// It is derived at query time, never stored.
func CurrentBalanceMilliAF(userID uint) (int64, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return 0, err
	}

	var totalSold int64
	err = database.DB.Model(&models.Listing{}).
		Where("seller_id = ? AND status = ?", userID, models.ListingStatusSold).
		Select("COALESCE(SUM(amount_milli_af), 0)").
		Scan(&totalSold).Error
	if err != nil {
		return 0, err
	}

	var totalPurchased int64
	err = database.DB.Model(&models.Listing{}).
		Joins("JOIN offers ON offers.listing_id = listings.id").
		Where("offers.buyer_id = ? AND offers.status = ? AND listings.status = ?",
			userID, models.OfferStatusAccepted, models.ListingStatusSold).
		Select("COALESCE(SUM(listings.amount_milli_af), 0)").
		Scan(&totalPurchased).Error
	if err != nil {
		return 0, err
	}

	return user.AnnualAllocationMilliAF - totalSold + totalPurchased, nil
}
