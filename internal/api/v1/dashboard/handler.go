package dashboard

import (
	"net/http"

	"github.com/Danielrod221/agriwater-live-app/internal/api/v1/listing"
	"github.com/Danielrod221/agriwater-live-app/internal/middleware"
	"github.com/Danielrod221/agriwater-live-app/internal/services"
	"github.com/Danielrod221/agriwater-live-app/internal/utils"
	"github.com/gin-gonic/gin"
)

// Get godoc
// @Summary Dashboard
// @Description Profile, own listings, computed water balance, live payment-account state, and the regional reservoir reading
// @Tags dashboard
// @Produce json
// @Success 200 {object} utils.Response{data=DashboardResponse}
// @Failure 500 {object} utils.Response
// @Router /dashboard [get]
func Get(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	user, err := services.FindUserByID(session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load profile"))
		return
	}

	myListings, err := services.ListingsBySeller(session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load listings"))
		return
	}

	balanceMilliAF, err := services.CurrentBalanceMilliAF(session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to compute balance"))
		return
	}

	// Both the account check and the reservoir fetch degrade quietly: the
	// dashboard renders without them.
	accountActive := services.AccountChargesEnabled(user.StripeAccountID)
	reading := services.Reservoir.LatestStorage()

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Dashboard", DashboardResponse{
		Profile: ProfileResponse{
			ID:                 user.ID,
			Name:               user.Name,
			Email:              user.Email,
			Phone:              user.Phone,
			WaterDistrict:      user.WaterDistrict,
			AnnualAllocationAF: utils.MilliAFToAF(user.AnnualAllocationMilliAF),
		},
		MyListings:          listing.ToResponseList(myListings),
		CurrentBalanceAF:    utils.MilliAFToAF(balanceMilliAF),
		StripeAccountActive: accountActive,
		Reservoir:           toReservoirResponse(services.Cfg.TelemetryStation, reading),
	}))
}
