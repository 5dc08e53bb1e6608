package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"fleetflow/internal/fleet"
	"fleetflow/internal/models"
)

type TripController struct {
	db *gorm.DB
}

func NewTripController(db *gorm.DB) *TripController {
	return &TripController{db: db}
}

// AvailableResources feeds the dispatcher form: strictly Available vehicles,
// On Duty drivers whose license has not expired, and the current trip list.
func (tc *TripController) AvailableResources(c *gin.Context) {
	today := time.Now()

	var vehicles []models.Vehicle
	if err := tc.db.Where("status = ?", models.VehicleAvailable).Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing vehicles: " + err.Error()})
		return
	}

	var drivers []models.Driver
	if err := tc.db.Where("status = ? AND expiry_date >= ?", models.DriverOnDuty, today.Format("2006-01-02")).
		Find(&drivers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing drivers: " + err.Error()})
		return
	}

	var trips []models.Trip
	if err := tc.db.Find(&trips).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing trips: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vehicles": vehicles,
		"drivers":  drivers,
		"trips":    trips,
	})
}

// Dispatch validates a trip request against the fleet rules and, on success,
// creates the trip and moves vehicle and driver to On Trip. All three writes
// commit in one transaction; a failure at any point rolls everything back.
func (tc *TripController) Dispatch(c *gin.Context) {
	var input struct {
		VehicleID         uint    `json:"vehicleId" binding:"required"`
		DriverID          uint    `json:"driverId" binding:"required"`
		CargoWeight       int     `json:"cargoWeight" binding:"required,gt=0"`
		Origin            string  `json:"origin" binding:"required"`
		Destination       string  `json:"destination" binding:"required"`
		EstimatedFuelCost float64 `json:"estimatedFuelCost"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dispatch input: " + err.Error()})
		return
	}

	tx := tc.db.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start transaction"})
		return
	}

	var vehicle models.Vehicle
	if err := tx.First(&vehicle, input.VehicleID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fleet.ErrVehicleUnavailable.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	var driver models.Driver
	if err := tx.First(&driver, input.DriverID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fleet.ErrDriverIneligible.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	if err := fleet.ValidateDispatch(vehicle, driver, input.CargoWeight, time.Now()); err != nil {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trip := fleet.ApplyDispatch(&vehicle, &driver, models.Trip{
		VehicleID:         input.VehicleID,
		DriverID:          input.DriverID,
		CargoWeight:       input.CargoWeight,
		Origin:            input.Origin,
		Destination:       input.Destination,
		EstimatedFuelCost: input.EstimatedFuelCost,
	})
	if err := tx.Create(&trip).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trip: " + err.Error()})
		return
	}

	if err := tx.Save(&vehicle).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle: " + err.Error()})
		return
	}

	if err := tx.Save(&driver).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update driver: " + err.Error()})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not commit transaction: " + err.Error()})
		return
	}

	logrus.WithFields(logrus.Fields{
		"trip_id":    trip.ID,
		"vehicle_id": vehicle.ID,
		"driver_id":  driver.ID,
	}).Info("trip dispatched")

	c.JSON(http.StatusCreated, trip)
}
