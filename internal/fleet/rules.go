// Package fleet holds the operational rules and read-side aggregations of the
// fleet backend. Every function here is a pure decision over entity snapshots;
// applying the resulting mutations (and committing them atomically) is the
// controller's job.
package fleet

import (
	"errors"
	"fmt"
	"time"

	"fleetflow/internal/models"
)

var (
	ErrVehicleUnavailable = errors.New("vehicle is invalid or not available")
	ErrDriverIneligible   = errors.New("driver is invalid, off duty, or license is expired")
	ErrCapacityExceeded   = errors.New("cargo exceeds vehicle capacity")
	ErrInvalidStatus      = errors.New("invalid status")
)

// driverStatusWhitelist is the full set of targets the driver status endpoint
// may set. "On Trip" is deliberately absent: dispatch is the only way in.
var driverStatusWhitelist = []models.DriverStatus{
	models.DriverOnDuty,
	models.DriverOffDuty,
	models.DriverSuspended,
}

// ValidateDispatch checks whether a trip may be dispatched with the given
// vehicle and driver. Checks run in order: vehicle availability, driver
// eligibility (on duty with an unexpired license as of today), then cargo
// weight against the vehicle's capacity. On success the caller must, in a
// single transaction, create the trip as Dispatched and move both vehicle and
// driver to On Trip.
func ValidateDispatch(vehicle models.Vehicle, driver models.Driver, cargoKg int, today time.Time) error {
	if vehicle.Status != models.VehicleAvailable {
		return ErrVehicleUnavailable
	}
	if driver.Status != models.DriverOnDuty || licenseExpired(driver.ExpiryDate, today) {
		return ErrDriverIneligible
	}
	if cargoKg > vehicle.CapacityKg {
		return fmt.Errorf("%w: the selected %s has a maximum capacity of %d kg",
			ErrCapacityExceeded, vehicle.Type, vehicle.CapacityKg)
	}
	return nil
}

// ApplyDispatch moves a validated vehicle/driver pair into On Trip and
// returns the trip to persist alongside them.
func ApplyDispatch(vehicle *models.Vehicle, driver *models.Driver, trip models.Trip) models.Trip {
	vehicle.Status = models.VehicleOnTrip
	driver.Status = models.DriverOnTrip
	trip.Status = models.TripDispatched
	return trip
}

// ApplyMaintenanceHold pulls a vehicle off the road after an issue report.
// The transition to In Shop is unconditional, whatever the prior status:
// a reported issue always removes the vehicle from availability.
func ApplyMaintenanceHold(vehicle *models.Vehicle) {
	vehicle.Status = models.VehicleInShop
}

// ApplyRetire marks a vehicle Out of Service. There is no guard on the
// current status; a vehicle mid-trip can still be retired.
func ApplyRetire(vehicle *models.Vehicle) {
	vehicle.Status = models.VehicleOutOfService
}

// ValidateDriverStatusChange checks a requested duty status against the
// whitelist. The current status does not matter: "On Trip" is rejected even
// for a driver who is already on a trip.
func ValidateDriverStatusChange(requested models.DriverStatus) error {
	for _, allowed := range driverStatusWhitelist {
		if requested == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: must be one of %v", ErrInvalidStatus, driverStatusWhitelist)
}

// ResolveExpenseDriverName picks the driver name to snapshot onto an expense
// log. An explicitly supplied name wins; otherwise the trip's driver is used,
// falling back to "Unknown" when the driver record cannot be found.
func ResolveExpenseDriverName(explicit string, driver *models.Driver) string {
	if explicit != "" {
		return explicit
	}
	if driver == nil {
		return "Unknown"
	}
	return driver.Name
}

// licenseExpired compares by calendar date. The expiry column is date-typed
// and comes back at midnight UTC, so both sides reduce to their YYYY-MM-DD
// form; comparing instants would misjudge a same-day expiry on servers
// running in a non-UTC zone.
func licenseExpired(expiry, today time.Time) bool {
	return expiry.Format("2006-01-02") < today.Format("2006-01-02")
}
