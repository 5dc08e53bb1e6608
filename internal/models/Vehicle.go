// internal/models/vehicle.go
package models

import "gorm.io/gorm"

// VehicleStatus is the closed set of vehicle lifecycle states.
// Transitions happen only through the dispatch, maintenance and retire
// operations, never by free-form field edits.
type VehicleStatus string

const (
	VehicleAvailable    VehicleStatus = "Available"
	VehicleOnTrip       VehicleStatus = "On Trip"
	VehicleInShop       VehicleStatus = "In Shop"
	VehicleOutOfService VehicleStatus = "Out of Service"
)

func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleAvailable, VehicleOnTrip, VehicleInShop, VehicleOutOfService:
		return true
	}
	return false
}

type Vehicle struct {
	gorm.Model
	Plate string `json:"plate" gorm:"uniqueIndex"`
	// The embedded Model claims the field name, so the make/model string
	// maps to the "model" column under a different Go name.
	ModelName  string        `json:"model" gorm:"column:model"`
	Type       string        `json:"type"` // "Truck", "Van", "Mini-Lorry", ...
	CapacityKg int           `json:"capacity_kg"`
	Odometer   int           `json:"odometer"`
	Status     VehicleStatus `json:"status" gorm:"default:Available"`
}
