package middleware

import (
	"net/http"

	"github.com/Danielrod221/agriwater-live-app/config"
	"github.com/Danielrod221/agriwater-live-app/internal/services"
	"github.com/Danielrod221/agriwater-live-app/internal/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware is the session guard shared by every protected route:
// extract the session token, reject revoked or invalid sessions, and hand
// the typed session state plus the loaded user to the handler.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := utils.ExtractToken(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "You must be logged in"))
			c.Abort()
			return
		}

		isRevoked, err := services.IsSessionRevoked(tokenString)
		if err != nil {
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to check session status"))
			c.Abort()
			return
		}
		if isRevoked {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Session has been logged out"))
			c.Abort()
			return
		}

		session, err := utils.ValidateSessionToken(tokenString, cfg.SessionSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Invalid or expired session"))
			c.Abort()
			return
		}

		user, err := services.FindUserByID(session.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not found"))
			c.Abort()
			return
		}

		c.Set("session", session)
		c.Set("user", user)
		c.Next()
	}
}

// SessionFromContext returns the typed session the guard stored.
func SessionFromContext(c *gin.Context) *utils.Session {
	if v, ok := c.Get("session"); ok {
		if s, ok := v.(*utils.Session); ok {
			return s
		}
	}
	return nil
}
