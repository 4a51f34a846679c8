package services

import (
	"testing"

	"github.com/Danielrod221/agriwater-live-app/internal/database"
	"github.com/Danielrod221/agriwater-live-app/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBeginCheckoutRejectsSelfPurchase(t *testing.T) {
	setupTestDB()
	provider, _, _ := setupServices(t.TempDir())
	provider.chargesEnabled = true

	seller := seedUser("seller@example.com", "acct_1")
	listing := seedListing(seller.ID, models.ListingStatusActive, 2500, 10000)

	_, err := BeginCheckout(listing.ID, seller.ID)
	assert.ErrorIs(t, err, ErrSelfPurchase)
	assert.Zero(t, provider.checkoutCalls)
}

func TestBeginCheckoutRejectsUnlinkedSeller(t *testing.T) {
	setupTestDB()
	provider, _, _ := setupServices(t.TempDir())

	seller := seedUser("seller@example.com", "")
	buyer := seedUser("buyer@example.com", "")
	listing := seedListing(seller.ID, models.ListingStatusActive, 2500, 10000)

	_, err := BeginCheckout(listing.ID, buyer.ID)
	assert.ErrorIs(t, err, ErrSellerNotPayable)
	assert.Zero(t, provider.statusCalls)
	assert.Zero(t, provider.checkoutCalls)
}

func TestBeginCheckoutRejectsInactiveSellerAccount(t *testing.T) {
	setupTestDB()
	provider, _, _ := setupServices(t.TempDir())
	provider.chargesEnabled = false

	seller := seedUser("seller@example.com", "acct_1")
	buyer := seedUser("buyer@example.com", "")
	listing := seedListing(seller.ID, models.ListingStatusActive, 2500, 10000)

	_, err := BeginCheckout(listing.ID, buyer.ID)
	assert.ErrorIs(t, err, ErrSellerNotPayable)
	assert.Zero(t, provider.checkoutCalls)
}

func TestBeginCheckoutRejectsWhenStatusCheckFails(t *testing.T) {
	setupTestDB()
	provider, _, _ := setupServices(t.TempDir())
	provider.statusErr = errProviderDown

	seller := seedUser("seller@example.com", "acct_1")
	buyer := seedUser("buyer@example.com", "")
	listing := seedListing(seller.ID, models.ListingStatusActive, 2500, 10000)

	_, err := BeginCheckout(listing.ID, buyer.ID)
	assert.ErrorIs(t, err, ErrSellerNotPayable)
	assert.Zero(t, provider.checkoutCalls)
}

func TestBeginCheckoutRejectsSoldListing(t *testing.T) {
	setupTestDB()
	provider, _, _ := setupServices(t.TempDir())
	provider.chargesEnabled = true

	seller := seedUser("seller@example.com", "acct_1")
	buyer := seedUser("buyer@example.com", "")
	listing := seedListing(seller.ID, models.ListingStatusSold, 2500, 10000)

	_, err := BeginCheckout(listing.ID, buyer.ID)
	assert.ErrorIs(t, err, ErrListingNotActive)
	assert.Zero(t, provider.checkoutCalls)
}

func TestBeginCheckoutPricing(t *testing.T) {
	setupTestDB()
	provider, _, _ := setupServices(t.TempDir())
	provider.chargesEnabled = true

	seller := seedUser("seller@example.com", "acct_1")
	buyer := seedUser("buyer@example.com", "")
	// $100.00/AF x 2.5 AF
	listing := seedListing(seller.ID, models.ListingStatusActive, 2500, 10000)

	url, err := BeginCheckout(listing.ID, buyer.ID)
	assert.NoError(t, err)
	assert.Equal(t, "https://checkout.test/session", url)

	assert.Equal(t, 1, provider.checkoutCalls)
	assert.Equal(t, int64(25000), provider.lastParams.TotalCents)
	assert.Equal(t, int64(875), provider.lastParams.ApplicationFeeCents)
	assert.Equal(t, "acct_1", provider.lastParams.DestinationAccountID)
	assert.Contains(t, provider.lastParams.SuccessURL, "/purchase_success/")
}

func TestSettle(t *testing.T) {
	setupTestDB()
	_, mailer, signer := setupServices(t.TempDir())

	seller := seedUser("seller@example.com", "acct_1")
	buyer := seedUser("buyer@example.com", "")
	listing := seedListing(seller.ID, models.ListingStatusActive, 2500, 10000)

	err := Settle(listing.ID, buyer.ID)
	assert.NoError(t, err)

	var reloaded models.Listing
	database.DB.First(&reloaded, listing.ID)
	assert.Equal(t, models.ListingStatusSold, reloaded.Status)

	var offers []models.Offer
	database.DB.Where("listing_id = ?", listing.ID).Find(&offers)
	assert.Len(t, offers, 1)
	assert.Equal(t, buyer.ID, offers[0].BuyerID)
	assert.Equal(t, models.OfferStatusAccepted, offers[0].Status)

	// Agreement went out for signature and both parties were notified.
	assert.Equal(t, 1, signer.calls)
	assert.NotEmpty(t, signer.lastDoc)
	assert.Len(t, mailer.sent, 2)
}

func TestSettleIsIdempotent(t *testing.T) {
	setupTestDB()
	_, mailer, signer := setupServices(t.TempDir())

	seller := seedUser("seller@example.com", "acct_1")
	buyer := seedUser("buyer@example.com", "")
	listing := seedListing(seller.ID, models.ListingStatusActive, 2500, 10000)

	assert.NoError(t, Settle(listing.ID, buyer.ID))

	// Replayed callback: no second ledger row, no second round of side
	// effects.
	err := Settle(listing.ID, buyer.ID)
	assert.ErrorIs(t, err, ErrAlreadySettled)

	var offerCount int64
	database.DB.Model(&models.Offer{}).Where("listing_id = ?", listing.ID).Count(&offerCount)
	assert.Equal(t, int64(1), offerCount)
	assert.Equal(t, 1, signer.calls)
	assert.Len(t, mailer.sent, 2)
}

func TestSettleMissingListing(t *testing.T) {
	setupTestDB()
	_, mailer, signer := setupServices(t.TempDir())

	err := Settle(4242, 1)
	assert.ErrorIs(t, err, ErrListingNotFound)
	assert.Zero(t, signer.calls)
	assert.Empty(t, mailer.sent)
}

func TestSettleSignatureFailureDoesNotFailSettlement(t *testing.T) {
	setupTestDB()
	_, mailer, signer := setupServices(t.TempDir())
	signer.sendErr = errProviderDown

	seller := seedUser("seller@example.com", "acct_1")
	buyer := seedUser("buyer@example.com", "")
	listing := seedListing(seller.ID, models.ListingStatusActive, 2500, 10000)

	err := Settle(listing.ID, buyer.ID)
	assert.NoError(t, err)

	var reloaded models.Listing
	database.DB.First(&reloaded, listing.ID)
	assert.Equal(t, models.ListingStatusSold, reloaded.Status)

	// Emails still go out; the purchase reads as successful regardless of
	// signature dispatch.
	assert.Len(t, mailer.sent, 2)
}
