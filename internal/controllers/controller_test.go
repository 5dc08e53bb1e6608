package controllers_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupMockDB opens gorm against a sqlmock connection so handler tests can
// assert exactly which statements hit the store.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	return db, mock
}

var vehicleColumns = []string{
	"id", "created_at", "updated_at", "deleted_at",
	"plate", "model", "type", "capacity_kg", "odometer", "status",
}

var driverColumns = []string{
	"id", "created_at", "updated_at", "deleted_at",
	"name", "license_number", "expiry_date", "completion_rate", "safety_score", "complaints", "status",
}

var tripColumns = []string{
	"id", "created_at", "updated_at", "deleted_at",
	"vehicle_id", "driver_id", "cargo_weight", "origin", "destination", "estimated_fuel_cost", "status",
}

func vehicleRow(id uint, plate, model, vtype string, capacityKg int, status string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(vehicleColumns).
		AddRow(id, now, now, nil, plate, model, vtype, capacityKg, 12000, status)
}

func driverRow(id uint, name, status string, expiry time.Time) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(driverColumns).
		AddRow(id, now, now, nil, name, "DL-"+name, expiry, 100.0, 100.0, 0, status)
}

func tripRow(id, vehicleID, driverID uint, status string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(tripColumns).
		AddRow(id, now, now, nil, vehicleID, driverID, 4000, "Mombasa", "Nairobi", 250.0, status)
}
