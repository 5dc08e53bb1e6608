package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"
)

func MaintenanceRoutes(r *gin.Engine, db *gorm.DB) {
	ctrl := controllers.NewMaintenanceController(db)
	maintenance := r.Group("/maintenance")
	maintenance.Use(middleware.RequireAuth())
	{
		maintenance.GET("", ctrl.ListMaintenance)
		maintenance.POST("", ctrl.CreateMaintenance)
	}
}
