package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"
)

func DriverRoutes(r *gin.Engine, db *gorm.DB) {
	ctrl := controllers.NewDriverController(db)
	driver := r.Group("/drivers")
	driver.Use(middleware.RequireAuth())
	{
		driver.GET("", ctrl.ListDrivers)
		driver.POST("", ctrl.CreateDriver)
		driver.PUT("/:id/status", ctrl.UpdateDriverStatus)
	}
}
