package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetflow/internal/controllers"
)

func statusRequest(t *testing.T, router *gin.Engine, id, status string) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(map[string]string{"status": status})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, "/drivers/"+id+"/status", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUpdateDriverStatus(t *testing.T) {
	t.Run("suspend succeeds", func(t *testing.T) {
		db, mock := setupMockDB(t)
		router := gin.New()
		router.PUT("/drivers/:id/status", controllers.NewDriverController(db).UpdateDriverStatus)

		mock.ExpectQuery(`SELECT \* FROM "drivers"`).
			WillReturnRows(driverRow(7, "Asha Mwangi", "On Duty", time.Now().AddDate(0, 0, 30)))
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "drivers" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		w := statusRequest(t, router, "7", "Suspended")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), `"status":"Suspended"`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("on trip rejected", func(t *testing.T) {
		db, mock := setupMockDB(t)
		router := gin.New()
		router.PUT("/drivers/:id/status", controllers.NewDriverController(db).UpdateDriverStatus)

		mock.ExpectQuery(`SELECT \* FROM "drivers"`).
			WillReturnRows(driverRow(7, "Asha Mwangi", "On Duty", time.Now().AddDate(0, 0, 30)))

		w := statusRequest(t, router, "7", "On Trip")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid status")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown driver wins over bad status", func(t *testing.T) {
		db, mock := setupMockDB(t)
		router := gin.New()
		router.PUT("/drivers/:id/status", controllers.NewDriverController(db).UpdateDriverStatus)

		mock.ExpectQuery(`SELECT \* FROM "drivers"`).
			WillReturnRows(sqlmock.NewRows(driverColumns))

		w := statusRequest(t, router, "99", "On Trip")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Driver not found")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown driver", func(t *testing.T) {
		db, mock := setupMockDB(t)
		router := gin.New()
		router.PUT("/drivers/:id/status", controllers.NewDriverController(db).UpdateDriverStatus)

		mock.ExpectQuery(`SELECT \* FROM "drivers"`).
			WillReturnRows(sqlmock.NewRows(driverColumns))

		w := statusRequest(t, router, "99", "Off Duty")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateDriverParsesExpiry(t *testing.T) {
	db, mock := setupMockDB(t)
	router := gin.New()
	router.POST("/drivers", controllers.NewDriverController(db).CreateDriver)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "drivers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	payload, _ := json.Marshal(map[string]string{
		"name":           "Asha Mwangi",
		"license_number": "DL-2031",
		"expiry_date":    "2027-06-30",
	})
	req := httptest.NewRequest(http.MethodPost, "/drivers", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"status":"On Duty"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDriverRejectsBadDate(t *testing.T) {
	db, mock := setupMockDB(t)
	router := gin.New()
	router.POST("/drivers", controllers.NewDriverController(db).CreateDriver)

	payload, _ := json.Marshal(map[string]string{
		"name":           "Asha Mwangi",
		"license_number": "DL-2031",
		"expiry_date":    "June 30, 2027",
	})
	req := httptest.NewRequest(http.MethodPost, "/drivers", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
