package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleetflow/internal/fleet"
	"fleetflow/internal/models"
)

type DashboardController struct {
	db *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{db: db}
}

func (dc *DashboardController) Stats(c *gin.Context) {
	var vehicles []models.Vehicle
	if err := dc.db.Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing vehicles: " + err.Error()})
		return
	}
	var trips []models.Trip
	if err := dc.db.Find(&trips).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing trips: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, fleet.ComputeDashboardStats(vehicles, trips))
}

// ActiveTrips returns the dispatcher table rows with vehicle and driver
// display names joined in. Missing references render as "Unknown" rather than
// failing the view.
func (dc *DashboardController) ActiveTrips(c *gin.Context) {
	var trips []models.Trip
	if err := dc.db.Where("status IN ?", []models.TripStatus{models.TripDispatched, models.TripOnTrip}).
		Find(&trips).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing trips: " + err.Error()})
		return
	}

	var vehicles []models.Vehicle
	if err := dc.db.Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing vehicles: " + err.Error()})
		return
	}
	var drivers []models.Driver
	if err := dc.db.Find(&drivers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing drivers: " + err.Error()})
		return
	}

	vehiclesByID := make(map[uint]models.Vehicle, len(vehicles))
	for _, v := range vehicles {
		vehiclesByID[v.ID] = v
	}
	driversByID := make(map[uint]models.Driver, len(drivers))
	for _, d := range drivers {
		driversByID[d.ID] = d
	}

	c.JSON(http.StatusOK, fleet.ComputeActiveTripsView(trips, vehiclesByID, driversByID))
}
