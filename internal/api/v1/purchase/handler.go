package purchase

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Danielrod221/agriwater-live-app/config"
	"github.com/Danielrod221/agriwater-live-app/internal/middleware"
	"github.com/Danielrod221/agriwater-live-app/internal/services"
	"github.com/Danielrod221/agriwater-live-app/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid id"))
		return 0, false
	}
	return uint(id), true
}

// Begin godoc
// @Summary Start a purchase
// @Description Validates the purchase and redirects the browser to the hosted checkout page
// @Tags purchase
// @Param listing_id path int true "Listing ID"
// @Success 303
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Failure 502 {object} utils.Response
// @Router /purchase/{listing_id} [get]
func Begin(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	listingID, ok := parseID(c, "listing_id")
	if !ok {
		return
	}

	checkoutURL, err := services.BeginCheckout(listingID, session.UserID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrListingNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrListingNotActive):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		case errors.Is(err, services.ErrSelfPurchase):
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, err.Error()))
		case errors.Is(err, services.ErrSellerNotPayable):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		default:
			zap.L().Error("checkout session creation failed", zap.Uint("listing_id", listingID), zap.Error(err))
			c.JSON(http.StatusBadGateway, utils.NewErrorResponse(http.StatusBadGateway, "Could not process payment"))
		}
		return
	}

	c.Redirect(http.StatusSeeOther, checkoutURL)
}

// Success is the browser's return navigation after paying on the hosted
// page. Settlement is idempotent, so a replayed or duplicated return
// settles nothing twice; either way the buyer lands back on the
// marketplace.
//
// Success godoc
// @Summary Purchase success callback
// @Tags purchase
// @Param listing_id path int true "Listing ID"
// @Param buyer_id path int true "Buyer ID"
// @Success 303
// @Router /purchase_success/{listing_id}/{buyer_id} [get]
func Success(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		listingID, ok := parseID(c, "listing_id")
		if !ok {
			return
		}
		buyerID, ok := parseID(c, "buyer_id")
		if !ok {
			return
		}

		err := services.Settle(listingID, buyerID)
		if err != nil && !errors.Is(err, services.ErrAlreadySettled) {
			zap.L().Error("settlement failed",
				zap.Uint("listing_id", listingID),
				zap.Uint("buyer_id", buyerID),
				zap.Error(err),
			)
			c.Redirect(http.StatusSeeOther, cfg.BaseURL+"/marketplace?purchase=error")
			return
		}

		c.Redirect(http.StatusSeeOther, cfg.BaseURL+"/marketplace?purchase=success")
	}
}

// Cancel godoc
// @Summary Checkout cancelled
// @Tags purchase
// @Success 303
// @Router /purchase_cancel [get]
func Cancel(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, cfg.BaseURL+"/marketplace?purchase=cancelled")
	}
}
