package routes

import (
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter assembles the full API surface against the given store handle.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(ginlogger.SetLogger())
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "success", "message": "FleetFlow API System is fully connected and Operational."})
	})

	AuthRoutes(r, db)
	VehicleRoutes(r, db)
	DriverRoutes(r, db)
	TripRoutes(r, db)
	MaintenanceRoutes(r, db)
	ExpenseRoutes(r, db)
	DashboardRoutes(r, db)
	AnalyticsRoutes(r, db)

	return r
}
