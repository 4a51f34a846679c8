package account

import (
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Danielrod221/agriwater-live-app/config"
	"github.com/Danielrod221/agriwater-live-app/internal/middleware"
	"github.com/Danielrod221/agriwater-live-app/internal/services"
	"github.com/Danielrod221/agriwater-live-app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var allowedVerificationExts = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// StripeAuthorize godoc
// @Summary Start payment-account onboarding
// @Description Creates a connected account on first visit and redirects to the hosted onboarding link
// @Tags account
// @Success 303
// @Failure 502 {object} utils.Response
// @Router /stripe/authorize [get]
func StripeAuthorize(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	accountID, err := services.EnsureConnectedAccount(session.UserID)
	if err != nil {
		zap.L().Error("connected account creation failed", zap.Uint("user_id", session.UserID), zap.Error(err))
		c.JSON(http.StatusBadGateway, utils.NewErrorResponse(http.StatusBadGateway, "Could not create a payment account"))
		return
	}

	url, err := services.OnboardingURL(accountID)
	if err != nil {
		zap.L().Error("onboarding link creation failed", zap.Uint("user_id", session.UserID), zap.Error(err))
		c.JSON(http.StatusBadGateway, utils.NewErrorResponse(http.StatusBadGateway, "Could not connect to the payment platform"))
		return
	}

	c.Redirect(http.StatusFound, url)
}

// StripeReturn godoc
// @Summary Onboarding return route
// @Description Confirms the return from hosted onboarding; activation itself is checked lazily
// @Tags account
// @Produce json
// @Success 200 {object} utils.Response
// @Router /stripe/return [get]
func StripeReturn(c *gin.Context) {
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Your account has been connected successfully!", nil))
}

type AllocationInput struct {
	AnnualAllocationAF float64 `json:"annual_allocation_af" binding:"required,gt=0"`
}

// SetAllocation godoc
// @Summary Update the caller's annual allocation
// @Tags account
// @Accept json
// @Produce json
// @Param input body AllocationInput true "Allocation Input"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /allocation [post]
func SetAllocation(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	var input AllocationInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	milliAF := int64(math.Round(input.AnnualAllocationAF * 1000))
	if err := services.UpdateAllocation(session.UserID, milliAF); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update allocation"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Your annual allocation has been updated.", nil))
}

// UploadVerification godoc
// @Summary Upload a water-right verification document
// @Description Accepts pdf/png/jpg/jpeg; review workflow is still under development
// @Tags account
// @Accept mpfd
// @Produce json
// @Param verification_doc formData file true "Verification document"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /verification [post]
func UploadVerification(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.SessionFromContext(c)

		file, err := c.FormFile("verification_doc")
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No file part"))
			return
		}
		if file.Filename == "" {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No selected file"))
			return
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedVerificationExts[ext] {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "File type not allowed."))
			return
		}

		dir := filepath.Join(cfg.UploadDir, "verification")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to store document"))
			return
		}

		dest := filepath.Join(dir, uuid.New().String()+ext)
		if err := c.SaveUploadedFile(file, dest); err != nil {
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to store document"))
			return
		}

		zap.L().Info("verification document received",
			zap.Uint("user_id", session.UserID),
			zap.String("path", dest),
		)
		c.JSON(http.StatusOK, utils.NewSuccessResponse("Verification document uploaded. This feature is under development.", nil))
	}
}
