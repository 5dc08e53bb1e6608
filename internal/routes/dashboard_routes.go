package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"
)

func DashboardRoutes(r *gin.Engine, db *gorm.DB) {
	ctrl := controllers.NewDashboardController(db)
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.RequireAuth())
	{
		dashboard.GET("/stats", ctrl.Stats)
		dashboard.GET("/active-trips", ctrl.ActiveTrips)
	}
}
