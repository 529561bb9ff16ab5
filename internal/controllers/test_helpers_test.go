package controllers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"exercise-tracker-be/internal/repository"
	"exercise-tracker-be/internal/service"
)

const testUserID = "5e30e9e0-0f5a-4b8e-9a8a-111111111111"

// newTestRouter wires the full stack (controllers, services,
// repositories) over a sqlmock database, mirroring the production
// route table.
func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	userRepo := repository.NewUserRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)
	userService := service.NewUserService(userRepo, nil)
	exerciseService := service.NewExerciseService(exerciseRepo, userRepo, nil)
	userController := NewUserController(userService)
	exerciseController := NewExerciseController(exerciseService)

	router := gin.New()
	api := router.Group("/api")
	{
		api.POST("/users", userController.CreateUser)
		api.GET("/users", userController.ListUsers)
		api.POST("/users/:_id/exercises", exerciseController.CreateExercise)
		api.GET("/users/:_id/logs", exerciseController.ListLogs)
	}

	return router, mock
}

func postForm(t *testing.T, router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func doGet(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeJSON(t *testing.T, resp *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(resp.Body.Bytes(), dest); err != nil {
		t.Fatalf("json.Unmarshal: %v (body %s)", err, resp.Body.String())
	}
}

func mustStatus(t *testing.T, actual, expected int) {
	t.Helper()
	if actual != expected {
		t.Fatalf("expected status %d, got %d", expected, actual)
	}
}

func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func testTime() time.Time {
	return time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "created_at", "updated_at"})
}

func exerciseRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "description", "duration", "date", "created_at", "updated_at"})
}

func expectUserLookup(mock sqlmock.Sqlmock, id, username string) {
	mock.ExpectQuery("WHERE id =").
		WithArgs(id).
		WillReturnRows(userRows().AddRow(id, username, testTime(), testTime()))
}

func expectUserMissing(mock sqlmock.Sqlmock, id string) {
	mock.ExpectQuery("WHERE id =").
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)
}
