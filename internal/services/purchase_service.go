package services

import (
	"errors"
	"fmt"

	"github.com/Danielrod221/agriwater-live-app/internal/database"
	"github.com/Danielrod221/agriwater-live-app/internal/esign"
	"github.com/Danielrod221/agriwater-live-app/internal/models"
	"github.com/Danielrod221/agriwater-live-app/internal/payment"
	"github.com/Danielrod221/agriwater-live-app/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrSelfPurchase     = errors.New("you cannot purchase your own listing")
	ErrListingNotActive = errors.New("this listing is no longer available")
	ErrSellerNotPayable = errors.New("this seller is not yet set up to receive payments")
	ErrAlreadySettled   = errors.New("this purchase has already been settled")
)

// BeginCheckout validates a purchase and returns the hosted checkout URL to
// redirect the buyer to. Every guard runs before the platform is called, so
// a rejected purchase never creates a checkout session.
func BeginCheckout(listingID, buyerID uint) (string, error) {
	var listing models.Listing
	err := database.DB.Preload("Seller").First(&listing, listingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrListingNotFound
		}
		return "", err
	}

	if listing.Status != models.ListingStatusActive {
		return "", ErrListingNotActive
	}
	if listing.SellerID == buyerID {
		return "", ErrSelfPurchase
	}
	if listing.Seller.StripeAccountID == "" {
		return "", ErrSellerNotPayable
	}
	if !AccountChargesEnabled(listing.Seller.StripeAccountID) {
		return "", ErrSellerNotPayable
	}

	totalCents := utils.TotalCents(listing.PriceCentsAF, listing.AmountMilliAF)
	feeCents := utils.FeeCents(totalCents, Cfg.PlatformFeeBps)

	checkoutURL, err := Payments.CreateCheckoutSession(paymentCheckoutParams(&listing, buyerID, totalCents, feeCents))
	if err != nil {
		return "", err
	}
	return checkoutURL, nil
}

// Settle completes a purchase after the buyer returns from the hosted
// checkout. The status flip and the ledger row commit in one transaction
// behind an optimistic status guard, so replaying the callback settles a
// listing exactly once; side effects only run on the first transition.
func Settle(listingID, buyerID uint) error {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Listing{}).
			Where("id = ? AND status = ?", listingID, models.ListingStatusActive).
			Update("status", models.ListingStatusSold)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var listing models.Listing
			if err := tx.First(&listing, listingID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrListingNotFound
				}
				return err
			}
			return ErrAlreadySettled
		}

		offer := &models.Offer{
			ListingID: listingID,
			BuyerID:   buyerID,
			Status:    models.OfferStatusAccepted,
		}
		return tx.Create(offer).Error
	})
	if err != nil {
		return err
	}

	runSettlementSideEffects(listingID, buyerID)
	return nil
}

// runSettlementSideEffects generates the lease agreement, dispatches it for
// signature, and notifies both parties. All of it is best-effort: the
// settlement is already committed and the buyer has already paid, so
// failures are logged, never surfaced.
func runSettlementSideEffects(listingID, buyerID uint) {
	var listing models.Listing
	if err := database.DB.First(&listing, listingID).Error; err != nil {
		zap.L().Error("settlement side effects: load listing", zap.Uint("listing_id", listingID), zap.Error(err))
		return
	}
	seller, err := FindUserByID(listing.SellerID)
	if err != nil {
		zap.L().Error("settlement side effects: load seller", zap.Uint("listing_id", listingID), zap.Error(err))
		return
	}
	buyer, err := FindUserByID(buyerID)
	if err != nil {
		zap.L().Error("settlement side effects: load buyer", zap.Uint("listing_id", listingID), zap.Error(err))
		return
	}

	agreementPath, err := Agreements.LeaseAgreement(&listing, seller, buyer)
	if err != nil {
		zap.L().Error("lease agreement generation failed", zap.Uint("listing_id", listingID), zap.Error(err))
	} else {
		err = Signatures.SendForSignature(agreementPath,
			esign.Party{Name: seller.Name, Email: seller.Email},
			esign.Party{Name: buyer.Name, Email: buyer.Email})
		if err != nil {
			zap.L().Error("signature dispatch failed", zap.Uint("listing_id", listingID), zap.Error(err))
		}
	}

	amountAF := utils.MilliAFToAF(listing.AmountMilliAF)
	sendBestEffort(seller.Email, "You've been paid!",
		fmt.Sprintf("Congratulations, your listing for %g AF was purchased by %s. The lease agreement has been sent to both parties for signature.",
			amountAF, buyer.Name))
	sendBestEffort(buyer.Email, "Purchase Successful!",
		fmt.Sprintf("Congratulations, you have successfully purchased the water listing from %s. A lease agreement has been sent to you for signature.",
			seller.Name))
}

func paymentCheckoutParams(listing *models.Listing, buyerID uint, totalCents, feeCents int64) payment.CheckoutParams {
	return payment.CheckoutParams{
		ProductName: fmt.Sprintf("%g AF of water from %s",
			utils.MilliAFToAF(listing.AmountMilliAF), listing.Seller.Name),
		TotalCents:           totalCents,
		ApplicationFeeCents:  feeCents,
		DestinationAccountID: listing.Seller.StripeAccountID,
		SuccessURL:           fmt.Sprintf("%s/api/v1/purchase_success/%d/%d", Cfg.BaseURL, listing.ID, buyerID),
		CancelURL:            Cfg.BaseURL + "/api/v1/purchase_cancel",
	}
}
