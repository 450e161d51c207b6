package routes

import (
	"net/http"
	"time"

	"hostelhub/handlers"
	"hostelhub/middleware"
	"hostelhub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterFoodMenuRoutes registers the weekly food-menu endpoints.
func RegisterFoodMenuRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/food-menu")
	{
		// Session-holding users (any role) can read and edit menus they own.
		session := api.Group("")
		session.Use(middleware.SessionAuthMiddleware())
		session.GET("/:facilityId/:hostelId", hb.FoodMenu.GetFoodMenuHandler)
		session.GET("/id/:id/day/:day", hb.FoodMenu.GetDayMenuHandler)
		session.PUT("/:id", hb.FoodMenu.UpdateFoodMenuHandler)
		session.DELETE("/:id", hb.FoodMenu.DeleteFoodMenuHandler)
		session.PUT("/:id/cancel-meal", hb.FoodMenu.CancelMealHandler)

		// Provider-only endpoints.
		provider := api.Group("")
		provider.Use(middleware.ProviderSessionMiddleware())
		provider.POST("/day", hb.FoodMenu.AddSingleDayMenuHandler)
		provider.GET("/provider/menus", hb.FoodMenu.GetProviderMenusHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterFoodMenuRoutes(r, hb)
	RegisterHealthRoute(r)
}
