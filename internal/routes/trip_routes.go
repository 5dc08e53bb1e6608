package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"
)

func TripRoutes(r *gin.Engine, db *gorm.DB) {
	ctrl := controllers.NewTripController(db)
	trip := r.Group("/trips")
	trip.Use(middleware.RequireAuth())
	{
		trip.GET("/available-resources", ctrl.AvailableResources)
		trip.POST("/dispatch", ctrl.Dispatch)
	}
}
