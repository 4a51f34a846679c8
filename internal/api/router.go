package api

import (
	"net/http"

	"github.com/Danielrod221/agriwater-live-app/config"
	"github.com/Danielrod221/agriwater-live-app/internal/api/v1/account"
	"github.com/Danielrod221/agriwater-live-app/internal/api/v1/auth"
	"github.com/Danielrod221/agriwater-live-app/internal/api/v1/dashboard"
	"github.com/Danielrod221/agriwater-live-app/internal/api/v1/listing"
	"github.com/Danielrod221/agriwater-live-app/internal/api/v1/purchase"
	"github.com/Danielrod221/agriwater-live-app/internal/database"
	"github.com/Danielrod221/agriwater-live-app/internal/docgen"
	"github.com/Danielrod221/agriwater-live-app/internal/esign"
	"github.com/Danielrod221/agriwater-live-app/internal/middleware"
	"github.com/Danielrod221/agriwater-live-app/internal/notify"
	"github.com/Danielrod221/agriwater-live-app/internal/payment/stripeconnect"
	"github.com/Danielrod221/agriwater-live-app/internal/services"
	"github.com/Danielrod221/agriwater-live-app/internal/telemetry"
	"github.com/Danielrod221/agriwater-live-app/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if _, err := database.Connect(cfg.DSN()); err != nil {
		return nil, err
	}

	if err := database.ConnectRedis(cfg); err != nil {
		return nil, err
	}

	services.Init(cfg,
		stripeconnect.NewDriver(cfg.StripeSecretKey),
		notify.NewSendGridMailer(cfg.SendGridAPIKey),
		esign.NewSignWellClient(cfg.SignWellAPIKey),
		docgen.NewGenerator(cfg.UploadDir),
		telemetry.NewClient(cfg.TelemetryStation),
	)

	router := gin.Default()
	router.Use(middleware.Logger())

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.BaseURL, "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum age for preflight requests
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.NewSuccessResponse("ok", nil))
	})

	// API v1
	v1 := router.Group("/api/v1")
	{
		auth.RegisterRoutes(v1, cfg)
		registerInfoRoutes(v1)
		purchase.RegisterCallbackRoutes(v1, cfg)

		authorized := v1.Group("/")
		authorized.Use(middleware.AuthMiddleware(cfg))
		{
			listing.RegisterRoutes(authorized)
			dashboard.RegisterRoutes(authorized)
			account.RegisterRoutes(authorized, cfg)
			purchase.RegisterRoutes(authorized)
		}
	}

	return router, nil
}

// registerInfoRoutes serves the static informational content the landing
// pages render.
func registerInfoRoutes(router *gin.RouterGroup) {
	router.GET("/how-it-works", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.NewSuccessResponse("How it works", gin.H{
			"steps": []string{
				"Sign up and tell us your water district and annual allocation.",
				"Connect a payment account so you can receive funds.",
				"List surplus allocation, or purchase a lease from another district member.",
				"We generate the lease agreement and route it to both parties for e-signature.",
			},
		}))
	})
}
