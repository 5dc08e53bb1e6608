package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"
)

func VehicleRoutes(r *gin.Engine, db *gorm.DB) {
	ctrl := controllers.NewVehicleController(db)
	vehicle := r.Group("/vehicles")
	vehicle.Use(middleware.RequireAuth())
	{
		vehicle.GET("", ctrl.ListVehicles)
		vehicle.POST("", ctrl.CreateVehicle)
		vehicle.PUT("/:id/retire", ctrl.RetireVehicle)
	}
}
