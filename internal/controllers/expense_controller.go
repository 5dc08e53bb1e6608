package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleetflow/internal/fleet"
	"fleetflow/internal/models"
)

type ExpenseController struct {
	db *gorm.DB
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{db: db}
}

func (ec *ExpenseController) ListExpenses(c *gin.Context) {
	var expenses []models.ExpenseLog
	if err := ec.db.Find(&expenses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing expenses: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// CreateExpense logs trip costs. The driver name is snapshotted onto the
// record at creation time; when the client omits it, the trip's driver is
// looked up, with "Unknown" as the fallback.
func (ec *ExpenseController) CreateExpense(c *gin.Context) {
	var input struct {
		TripID      uint    `json:"tripId" binding:"required"`
		Distance    int     `json:"distance" binding:"gte=0"`
		FuelCost    float64 `json:"fuelCost" binding:"gte=0"`
		MiscExpense float64 `json:"miscExpense" binding:"gte=0"`
		DriverName  string  `json:"driverName"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense input: " + err.Error()})
		return
	}

	var trip models.Trip
	if err := ec.db.First(&trip, input.TripID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	var driver *models.Driver
	if input.DriverName == "" {
		var d models.Driver
		err := ec.db.First(&d, trip.DriverID).Error
		switch {
		case err == nil:
			driver = &d
		case errors.Is(err, gorm.ErrRecordNotFound):
			// absent driver is the one case the snapshot covers with "Unknown"
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
			return
		}
	}

	expense := models.ExpenseLog{
		TripID:      input.TripID,
		DriverName:  fleet.ResolveExpenseDriverName(input.DriverName, driver),
		DistanceKm:  input.Distance,
		FuelCost:    input.FuelCost,
		MiscExpense: input.MiscExpense,
		Status:      "Done",
	}
	if err := ec.db.Create(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, expense)
}
