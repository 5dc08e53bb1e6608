// internal/models/driver.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// DriverStatus is the closed set of driver duty states. "On Trip" is only
// ever entered through dispatch; the status endpoint cannot set it.
type DriverStatus string

const (
	DriverOnDuty    DriverStatus = "On Duty"
	DriverOffDuty   DriverStatus = "Off Duty"
	DriverSuspended DriverStatus = "Suspended"
	DriverOnTrip    DriverStatus = "On Trip"
)

func (s DriverStatus) Valid() bool {
	switch s {
	case DriverOnDuty, DriverOffDuty, DriverSuspended, DriverOnTrip:
		return true
	}
	return false
}

type Driver struct {
	gorm.Model
	Name           string       `json:"name"`
	LicenseNumber  string       `json:"license_number" gorm:"uniqueIndex"`
	ExpiryDate     time.Time    `json:"expiry_date" gorm:"type:date"`
	CompletionRate float64      `json:"completion_rate" gorm:"default:100"`
	SafetyScore    float64      `json:"safety_score" gorm:"default:100"`
	Complaints     int          `json:"complaints" gorm:"default:0"`
	Status         DriverStatus `json:"status" gorm:"default:On Duty"`
}
