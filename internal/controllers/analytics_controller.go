package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleetflow/internal/fleet"
	"fleetflow/internal/models"
)

type AnalyticsController struct {
	db *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{db: db}
}

// Data serves the analytics page payload. The KPIs and costliest-vehicles
// ranking are computed from the store; fleet ROI, the fuel-efficiency trend
// and the financial summary rows are static content so the charts render even
// on a brand-new database.
func (ac *AnalyticsController) Data(c *gin.Context) {
	var expenses []models.ExpenseLog
	if err := ac.db.Find(&expenses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing expenses: " + err.Error()})
		return
	}
	var logs []models.MaintenanceLog
	if err := ac.db.Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing maintenance logs: " + err.Error()})
		return
	}
	var vehicles []models.Vehicle
	if err := ac.db.Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing vehicles: " + err.Error()})
		return
	}

	a := fleet.ComputeAnalytics(expenses, logs, vehicles)

	c.JSON(http.StatusOK, gin.H{
		"kpis": gin.H{
			"totalFuelCost":   fmt.Sprintf("Rs. %gk", a.TotalFuelCost),
			"fleetROI":        "+ 12.5%",
			"utilizationRate": a.UtilizationRate,
		},
		"fuelEfficiencyTrend": []gin.H{
			{"month": "Jan", "currentYear": 12, "target": 15},
			{"month": "Mar", "currentYear": 14, "target": 15},
			{"month": "Jun", "currentYear": 18, "target": 16},
			{"month": "Sep", "currentYear": 20, "target": 18},
			{"month": "Dec", "currentYear": 22, "target": 20},
		},
		"costliestVehicles": a.CostliestVehicles,
		"financialSummary": []gin.H{
			{
				"id":          1,
				"month":       "Jan",
				"revenue":     "Rs. 17 L",
				"fuelCost":    fmt.Sprintf("Rs. %gk", a.TotalFuelCost),
				"maintenance": fmt.Sprintf("Rs. %gk", a.TotalMaintenance),
				"netProfit":   "Rs. 9 L",
			},
		},
	})
}
