package auth

import (
	"github.com/Danielrod221/agriwater-live-app/config"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	auth := router.Group("/auth")
	auth.POST("/signup", Signup)
	auth.POST("/login", Login)
	auth.POST("/logout", Logout(cfg))
}
