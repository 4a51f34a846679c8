package account

import (
	"github.com/Danielrod221/agriwater-live-app/config"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	router.GET("/stripe/authorize", StripeAuthorize)
	router.GET("/stripe/return", StripeReturn)
	router.POST("/allocation", SetAllocation)
	router.POST("/verification", UploadVerification(cfg))
}
