package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleetflow/internal/fleet"
	"fleetflow/internal/models"
)

type MaintenanceController struct {
	db *gorm.DB
}

func NewMaintenanceController(db *gorm.DB) *MaintenanceController {
	return &MaintenanceController{db: db}
}

// maintenanceResponse carries the vehicle's model name alongside the log so
// the workshop table needs no second fetch.
type maintenanceResponse struct {
	models.MaintenanceLog
	VehicleName string `json:"vehicle_name"`
}

func (mc *MaintenanceController) ListMaintenance(c *gin.Context) {
	var logs []models.MaintenanceLog
	if err := mc.db.Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing maintenance logs: " + err.Error()})
		return
	}

	var vehicles []models.Vehicle
	if err := mc.db.Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing vehicles: " + err.Error()})
		return
	}
	names := make(map[uint]string, len(vehicles))
	for _, v := range vehicles {
		names[v.ID] = v.ModelName
	}

	out := make([]maintenanceResponse, 0, len(logs))
	for _, log := range logs {
		name, ok := names[log.VehicleID]
		if !ok {
			name = "Unknown"
		}
		out = append(out, maintenanceResponse{MaintenanceLog: log, VehicleName: name})
	}
	c.JSON(http.StatusOK, out)
}

// CreateMaintenance records an issue and pulls the vehicle off the road: the
// vehicle goes In Shop no matter what state it was in before, even Out of
// Service or mid-trip. Log and status change commit together.
func (mc *MaintenanceController) CreateMaintenance(c *gin.Context) {
	var input struct {
		VehicleID uint    `json:"vehicleId" binding:"required"`
		Issue     string  `json:"issue" binding:"required"`
		Date      string  `json:"date" binding:"required"`
		Cost      float64 `json:"cost"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maintenance input: " + err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted YYYY-MM-DD"})
		return
	}

	tx := mc.db.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start transaction"})
		return
	}

	var vehicle models.Vehicle
	if err := tx.First(&vehicle, input.VehicleID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	log := models.MaintenanceLog{
		VehicleID: input.VehicleID,
		Issue:     input.Issue,
		Date:      date,
		Cost:      input.Cost,
		Status:    models.MaintenancePending,
	}
	if err := tx.Create(&log).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create maintenance log: " + err.Error()})
		return
	}

	fleet.ApplyMaintenanceHold(&vehicle)
	if err := tx.Save(&vehicle).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle: " + err.Error()})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not commit transaction: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, maintenanceResponse{MaintenanceLog: log, VehicleName: vehicle.ModelName})
}
