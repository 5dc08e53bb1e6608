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
	"golang.org/x/crypto/bcrypt"

	"fleetflow/internal/controllers"
)

var userColumns = []string{"id", "created_at", "updated_at", "deleted_at", "username", "password", "role"}

func authRequest(t *testing.T, router *gin.Engine, path string, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	db, mock := setupMockDB(t)
	router := gin.New()
	router.POST("/auth/register", controllers.NewAuthController(db).Register)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	w := authRequest(t, router, "/auth/register", map[string]string{
		"username": "dispatcher1",
		"password": "fleet-pass",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "dispatcher1", resp.User.Username)
	assert.Equal(t, "Dispatcher", resp.User.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("fleet-pass"), bcrypt.DefaultCost)
	require.NoError(t, err)
	now := time.Now()

	t.Run("valid credentials", func(t *testing.T) {
		db, mock := setupMockDB(t)
		router := gin.New()
		router.POST("/auth/login", controllers.NewAuthController(db).Login)

		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(1, now, now, nil, "dispatcher1", string(hash), "Dispatcher"))

		w := authRequest(t, router, "/auth/login", map[string]string{
			"username": "dispatcher1",
			"password": "fleet-pass",
		})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), "token")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wrong password", func(t *testing.T) {
		db, mock := setupMockDB(t)
		router := gin.New()
		router.POST("/auth/login", controllers.NewAuthController(db).Login)

		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(1, now, now, nil, "dispatcher1", string(hash), "Dispatcher"))

		w := authRequest(t, router, "/auth/login", map[string]string{
			"username": "dispatcher1",
			"password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user", func(t *testing.T) {
		db, mock := setupMockDB(t)
		router := gin.New()
		router.POST("/auth/login", controllers.NewAuthController(db).Login)

		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnRows(sqlmock.NewRows(userColumns))

		w := authRequest(t, router, "/auth/login", map[string]string{
			"username": "ghost",
			"password": "whatever",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
