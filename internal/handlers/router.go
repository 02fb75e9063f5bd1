package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/garageflow/garageflow/internal/auth"
	"github.com/garageflow/garageflow/internal/config"
	"github.com/garageflow/garageflow/internal/middleware"
	"github.com/garageflow/garageflow/internal/models"
	"github.com/garageflow/garageflow/internal/store"
)

// NewRouter wires every handler onto a gin engine. Login and health are
// open; everything else requires a valid token, and stock management is
// limited to admin and warehouse roles.
func NewRouter(cfg *config.Config, s *store.Store, authService *auth.Service) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"ready":   s.Ready(),
		})
	})

	authHandler := NewAuthHandler(authService, s)
	collections := NewCollectionHandler(s)
	customers := NewCustomerHandler(s)
	vehicles := NewVehicleHandler(s)
	jobCards := NewJobCardHandler(s)
	partRequests := NewPartRequestHandler(s)
	inventory := NewInventoryHandler(s)
	suppliers := NewSupplierHandler(s)

	api := router.Group("/api", middleware.RequireReady(s))
	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("", middleware.Authenticate(authService))
	{
		authed.GET("/auth/profile", authHandler.Profile)

		authed.GET("/collections/:name", collections.Get)
		authed.POST("/collections/:name", collections.Post)

		authed.GET("/customers", customers.List)
		authed.POST("/customers", customers.Create)
		authed.PUT("/customers/:id", customers.Update)
		authed.DELETE("/customers/:id", customers.Delete)
		authed.GET("/customers/:id/vehicles", customers.Vehicles)

		authed.GET("/vehicles", vehicles.List)
		authed.POST("/vehicles", vehicles.Create)
		authed.PUT("/vehicles/:id", vehicles.Update)
		authed.DELETE("/vehicles/:id", vehicles.Delete)
		authed.GET("/vehicles/:id/job-cards", vehicles.JobCards)

		authed.GET("/job-cards", jobCards.List)
		authed.POST("/job-cards", jobCards.Create)
		authed.PUT("/job-cards/:id", jobCards.Update)
		authed.DELETE("/job-cards/:id", jobCards.Delete)

		authed.GET("/part-requests", partRequests.List)
		authed.GET("/part-requests/pending", partRequests.Pending)
		authed.POST("/part-requests", partRequests.Create)
		authed.PUT("/part-requests/:id", partRequests.Update)
		authed.DELETE("/part-requests/:id", partRequests.Delete)

		authed.GET("/inventory", inventory.List)
		authed.GET("/inventory/low-stock", inventory.LowStock)
		authed.GET("/suppliers", suppliers.List)

		stock := authed.Group("", middleware.RequireRole(models.RoleWarehouse))
		{
			stock.POST("/inventory", inventory.Create)
			stock.PUT("/inventory/:id", inventory.Update)
			stock.DELETE("/inventory/:id", inventory.Delete)

			stock.POST("/suppliers", suppliers.Create)
			stock.PUT("/suppliers/:id", suppliers.Update)
			stock.DELETE("/suppliers/:id", suppliers.Delete)
		}
	}

	return router
}
