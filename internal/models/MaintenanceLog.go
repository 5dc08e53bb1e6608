package models

import (
	"time"

	"gorm.io/gorm"
)

type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "Pending"
	MaintenanceInProgress MaintenanceStatus = "In Progress"
	MaintenanceCompleted  MaintenanceStatus = "Completed"
)

func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenancePending, MaintenanceInProgress, MaintenanceCompleted:
		return true
	}
	return false
}

type MaintenanceLog struct {
	gorm.Model
	VehicleID uint              `json:"vehicle_id" gorm:"index"`
	Issue     string            `json:"issue"`
	Date      time.Time         `json:"date" gorm:"type:date"`
	Cost      float64           `json:"cost"` // 0 until the service is done and priced
	Status    MaintenanceStatus `json:"status" gorm:"default:Pending"`
}
