package purchase

import (
	"github.com/Danielrod221/agriwater-live-app/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the authenticated purchase-start route.
func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/purchase/:listing_id", Begin)
}

// RegisterCallbackRoutes mounts the hosted-checkout return routes. The
// browser arrives here from the payment platform, so they sit outside the
// session guard.
func RegisterCallbackRoutes(router *gin.RouterGroup, cfg *config.Config) {
	router.GET("/purchase_success/:listing_id/:buyer_id", Success(cfg))
	router.GET("/purchase_cancel", Cancel(cfg))
}
