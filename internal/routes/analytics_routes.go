package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"
)

func AnalyticsRoutes(r *gin.Engine, db *gorm.DB) {
	ctrl := controllers.NewAnalyticsController(db)
	analytics := r.Group("/analytics")
	analytics.Use(middleware.RequireAuth())
	{
		analytics.GET("/data", ctrl.Data)
	}
}
