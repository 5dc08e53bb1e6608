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

type DriverController struct {
	db *gorm.DB
}

func NewDriverController(db *gorm.DB) *DriverController {
	return &DriverController{db: db}
}

func (dc *DriverController) ListDrivers(c *gin.Context) {
	var drivers []models.Driver
	if err := dc.db.Find(&drivers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing drivers: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, drivers)
}

func (dc *DriverController) CreateDriver(c *gin.Context) {
	var input struct {
		Name          string `json:"name" binding:"required"`
		LicenseNumber string `json:"license_number" binding:"required"`
		ExpiryDate    string `json:"expiry_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver input: " + err.Error()})
		return
	}

	expiry, err := time.Parse("2006-01-02", input.ExpiryDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expiry_date must be formatted YYYY-MM-DD"})
		return
	}

	driver := models.Driver{
		Name:           input.Name,
		LicenseNumber:  input.LicenseNumber,
		ExpiryDate:     expiry,
		CompletionRate: 100,
		SafetyScore:    100,
		Status:         models.DriverOnDuty,
	}
	if err := dc.db.Create(&driver).Error; err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "license number already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create driver: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, driver)
}

// UpdateDriverStatus changes a driver's duty status. The driver is resolved
// first, so an unknown id answers 404 even when the requested status would
// also fail the whitelist.
func (dc *DriverController) UpdateDriverStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	var driver models.Driver
	if err := dc.db.First(&driver, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	requested := models.DriverStatus(input.Status)
	if err := fleet.ValidateDriverStatusChange(requested); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	driver.Status = requested
	if err := dc.db.Save(&driver).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update driver status: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, driver)
}
