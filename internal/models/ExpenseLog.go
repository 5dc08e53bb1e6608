package models

import "gorm.io/gorm"

// ExpenseLog keeps DriverName as a snapshot taken at creation time so the
// expense history survives driver renames or removals.
type ExpenseLog struct {
	gorm.Model
	TripID      uint    `json:"trip_id" gorm:"index"`
	DriverName  string  `json:"driver_name"`
	DistanceKm  int     `json:"distance_km"`
	FuelCost    float64 `json:"fuel_cost"`
	MiscExpense float64 `json:"misc_expense"`
	Status      string  `json:"status"`
}
