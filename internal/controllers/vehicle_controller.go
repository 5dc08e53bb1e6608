package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"fleetflow/internal/fleet"
	"fleetflow/internal/models"
)

type VehicleController struct {
	db *gorm.DB
}

func NewVehicleController(db *gorm.DB) *VehicleController {
	return &VehicleController{db: db}
}

func (vc *VehicleController) ListVehicles(c *gin.Context) {
	var vehicles []models.Vehicle
	if err := vc.db.Find(&vehicles).Error; err != nil {
		logrus.WithError(err).Error("Error listing vehicles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing vehicles: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// CreateVehicle registers a vehicle as Available. The registry form submits
// payload in tons; capacity is stored in kg so dispatch math stays integral.
func (vc *VehicleController) CreateVehicle(c *gin.Context) {
	var input struct {
		LicensePlate    string `json:"licensePlate" binding:"required"`
		Model           string `json:"model" binding:"required"`
		Type            string `json:"type" binding:"required"`
		MaxPayload      int    `json:"maxPayload" binding:"required,gt=0"`
		InitialOdometer int    `json:"initialOdometer" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle input: " + err.Error()})
		return
	}

	vehicle := models.Vehicle{
		Plate:      input.LicensePlate,
		ModelName:  input.Model,
		Type:       input.Type,
		CapacityKg: input.MaxPayload * 1000,
		Odometer:   input.InitialOdometer,
		Status:     models.VehicleAvailable,
	}
	if err := vc.db.Create(&vehicle).Error; err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "plate already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vehicle: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// RetireVehicle marks a vehicle Out of Service. The transition is
// unconditional; a vehicle mid-trip can still be retired.
func (vc *VehicleController) RetireVehicle(c *gin.Context) {
	var vehicle models.Vehicle
	if err := vc.db.First(&vehicle, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	fleet.ApplyRetire(&vehicle)
	if err := vc.db.Save(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retire vehicle: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vehicle marked as Out of Service"})
}
