package listing

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	listings := router.Group("/listings")
	listings.GET("", Marketplace)
	listings.GET("/mine", MyListings)
	listings.POST("", Create)

	item := router.Group("/listing")
	item.GET("/:id", Get)
	item.PUT("/:id", Update)
	item.DELETE("/:id", Delete)
}
