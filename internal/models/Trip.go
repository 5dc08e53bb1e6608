package models

import "gorm.io/gorm"

type TripStatus string

const (
	TripDispatched TripStatus = "Dispatched"
	TripOnTrip     TripStatus = "On Trip"
	TripCompleted  TripStatus = "Completed"
)

func (s TripStatus) Valid() bool {
	switch s {
	case TripDispatched, TripOnTrip, TripCompleted:
		return true
	}
	return false
}

// Trip references vehicle and driver by id, never by embedded rows.
// Display joins happen on the read side (see internal/fleet).
type Trip struct {
	gorm.Model
	VehicleID         uint       `json:"vehicle_id" gorm:"index"`
	DriverID          uint       `json:"driver_id" gorm:"index"`
	CargoWeight       int        `json:"cargo_weight"`
	Origin            string     `json:"origin"`
	Destination       string     `json:"destination"`
	EstimatedFuelCost float64    `json:"estimated_fuel_cost"`
	Status            TripStatus `json:"status" gorm:"default:Dispatched"`
}
