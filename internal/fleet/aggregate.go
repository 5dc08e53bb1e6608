package fleet

import (
	"fmt"
	"sort"

	"fleetflow/internal/models"
)

// DashboardStats are the KPI counters shown on the dashboard landing page.
type DashboardStats struct {
	ActiveFleet       int    `json:"activeFleet"`
	MaintenanceAlerts int    `json:"maintenanceAlerts"`
	PendingCargo      int    `json:"pendingCargo"`
	UtilizationRate   string `json:"utilizationRate"`
}

// ActiveTripRow is one line of the dispatcher's active-trips table, with the
// vehicle and driver already joined into display strings.
type ActiveTripRow struct {
	ID      uint              `json:"id"`
	Vehicle string            `json:"vehicle"`
	Driver  string            `json:"driver"`
	Status  models.TripStatus `json:"status"`
}

// VehicleCost is one entry of the costliest-vehicles ranking.
type VehicleCost struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// Analytics summarises the financial state of the fleet.
type Analytics struct {
	TotalFuelCost     float64
	TotalMaintenance  float64
	UtilizationRate   string
	CostliestVehicles []VehicleCost
}

// ComputeDashboardStats derives the dashboard counters from the full vehicle
// and trip sets. An empty fleet reports "0%" utilization rather than dividing
// by zero.
func ComputeDashboardStats(vehicles []models.Vehicle, trips []models.Trip) DashboardStats {
	stats := DashboardStats{}
	for _, v := range vehicles {
		switch v.Status {
		case models.VehicleOnTrip:
			stats.ActiveFleet++
		case models.VehicleInShop:
			stats.MaintenanceAlerts++
		}
	}
	for _, t := range trips {
		if t.Status == models.TripDispatched {
			stats.PendingCargo++
		}
	}
	stats.UtilizationRate = utilizationRate(stats.ActiveFleet, len(vehicles))
	return stats
}

// ComputeActiveTripsView joins vehicles and drivers onto the trips that are
// Dispatched or On Trip. A dangling vehicle or driver reference renders as
// "Unknown" instead of failing the whole view.
func ComputeActiveTripsView(trips []models.Trip, vehicles map[uint]models.Vehicle, drivers map[uint]models.Driver) []ActiveTripRow {
	rows := []ActiveTripRow{}
	for _, t := range trips {
		if t.Status != models.TripDispatched && t.Status != models.TripOnTrip {
			continue
		}
		row := ActiveTripRow{ID: t.ID, Vehicle: "Unknown", Driver: "Unknown", Status: t.Status}
		if v, ok := vehicles[t.VehicleID]; ok {
			row.Vehicle = fmt.Sprintf("%s %s", v.Plate, v.Type)
		}
		if d, ok := drivers[t.DriverID]; ok {
			row.Driver = d.Name
		}
		rows = append(rows, row)
	}
	return rows
}

// ComputeAnalytics totals fuel and maintenance spend and ranks the five
// vehicles with the highest accumulated maintenance cost. Ties keep the order
// in which a vehicle first appeared in the logs. With no maintenance on
// record the ranking holds a single "No Data" placeholder so charts still
// render on a fresh database.
func ComputeAnalytics(expenses []models.ExpenseLog, logs []models.MaintenanceLog, vehicles []models.Vehicle) Analytics {
	a := Analytics{}
	for _, e := range expenses {
		a.TotalFuelCost += e.FuelCost
	}

	active := 0
	plates := make(map[uint]string, len(vehicles))
	for _, v := range vehicles {
		plates[v.ID] = v.Plate
		if v.Status == models.VehicleOnTrip {
			active++
		}
	}
	a.UtilizationRate = utilizationRate(active, len(vehicles))

	costs := map[uint]float64{}
	order := []uint{}
	for _, log := range logs {
		a.TotalMaintenance += log.Cost
		if _, seen := costs[log.VehicleID]; !seen {
			order = append(order, log.VehicleID)
		}
		costs[log.VehicleID] += log.Cost
	}
	sort.SliceStable(order, func(i, j int) bool {
		return costs[order[i]] > costs[order[j]]
	})

	for _, id := range order {
		plate, ok := plates[id]
		if !ok {
			continue
		}
		a.CostliestVehicles = append(a.CostliestVehicles, VehicleCost{Name: plate, Cost: costs[id]})
		if len(a.CostliestVehicles) == 5 {
			break
		}
	}
	if len(a.CostliestVehicles) == 0 {
		a.CostliestVehicles = []VehicleCost{{Name: "No Data", Cost: 0}}
	}
	return a
}

func utilizationRate(active, total int) string {
	utilization := 0
	if total > 0 {
		utilization = active * 100 / total
	}
	return fmt.Sprintf("%d%%", utilization)
}
