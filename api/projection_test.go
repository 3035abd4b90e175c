package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"saldo/models"
	"saldo/repository"
	"saldo/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProjectionRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewProjectionHandler(service.NewProjectionService(repository.NewProjectionRepository(db)))

	router := gin.New()
	router.Use(setUserIDMiddleware(userID))
	router.GET("/projections", h.List)
	router.POST("/projections", h.Create)
	router.POST("/projections/calculate", h.Calculate)
	router.GET("/projections/:id", h.Get)
	router.DELETE("/projections/:id", h.Delete)
	return router
}

const projectionBody = `{"initial_value":"1000","monthly_contribution":"100","interest_rate":"12","period":12}`

func TestProjectionHandler_Calculate(t *testing.T) {
	db := setupTestDB(t)
	u := seedUser(t, db, "ana@example.com", "secret123")
	router := newProjectionRouter(db, u.ID)

	w := performRequest(router, http.MethodPost, "/projections/calculate", projectionBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result service.ProjectionResult
	require.NoError(t, json.Unmarshal(decodeResponse(t, w).Data, &result))
	assert.Equal(t, "2395.08", result.FutureValue.StringFixed(2))
	assert.Equal(t, "0.010000", result.MonthlyRate.StringFixed(6))
	assert.Contains(t, w.Body.String(), `"monthly_rate":"0.010000"`)
	assert.Contains(t, w.Body.String(), `"future_value":"2395.08"`)

	// 试算不落库
	var count int64
	require.NoError(t, db.Model(&models.FinancialProjection{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestProjectionHandler_Calculate_Invalid(t *testing.T) {
	db := setupTestDB(t)
	u := seedUser(t, db, "ana@example.com", "secret123")
	router := newProjectionRouter(db, u.ID)

	tests := []struct {
		body string
		want string
	}{
		{`{"initial_value":"-1","monthly_contribution":"0","interest_rate":"0","period":1}`, "initial_value"},
		{`{"initial_value":"0","monthly_contribution":"0","interest_rate":"-2","period":1}`, "interest_rate"},
		{`{"initial_value":"0","monthly_contribution":"0","interest_rate":"0","period":0}`, "period"},
		{`{"initial_value":"1000","monthly_contribution":"100","interest_rate":"7.77","period":1000000}`, "period"},
	}
	for _, tt := range tests {
		w := performRequest(router, http.MethodPost, "/projections/calculate", tt.body)
		assert.Equal(t, http.StatusBadRequest, w.Code, tt.body)
		assert.Contains(t, decodeResponse(t, w).Message, tt.want)
	}
}

func TestProjectionHandler_CreateListDelete(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "ana@example.com", "secret123")
	intruder := seedUser(t, db, "bob@example.com", "secret123")
	router := newProjectionRouter(db, owner.ID)

	w := performRequest(router, http.MethodPost, "/projections", projectionBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var p models.FinancialProjection
	require.NoError(t, json.Unmarshal(decodeResponse(t, w).Data, &p))
	assert.Equal(t, "2395.08", p.FutureValue.StringFixed(2))
	assert.Equal(t, 12, p.Period)

	w = performRequest(router, http.MethodGet, "/projections/"+jsonID(p.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"initial_value":"1000.00"`)
	assert.Contains(t, w.Body.String(), `"interest_rate":"12.00"`)

	w = performRequest(router, http.MethodGet, "/projections", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.FinancialProjection
	require.NoError(t, json.Unmarshal(decodeResponse(t, w).Data, &list))
	require.Len(t, list, 1)

	path := "/projections/" + jsonID(p.ID)
	assert.Equal(t, http.StatusForbidden, performRequest(newProjectionRouter(db, intruder.ID), http.MethodGet, path, "").Code)
	assert.Equal(t, http.StatusForbidden, performRequest(newProjectionRouter(db, intruder.ID), http.MethodDelete, path, "").Code)

	assert.Equal(t, http.StatusOK, performRequest(router, http.MethodDelete, path, "").Code)
	assert.Equal(t, http.StatusNotFound, performRequest(router, http.MethodGet, path, "").Code)
}

func TestProjectionHandler_List_DatabaseError(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `financial_projections`").
		WillReturnError(errors.New("connection refused"))

	w := performRequest(newProjectionRouter(db, 1), http.MethodGet, "/projections", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, decodeResponse(t, w).Message, "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	u := seedUser(t, db, "ana@example.com", "secret123")
	food := seedCategory(t, db, u.ID, "Food")
	seedExpense(t, db, u.ID, food.ID, models.NewDate(2024, time.January, 5), "30.00", "card")
	seedExpense(t, db, u.ID, food.ID, models.NewDate(2024, time.January, 5), "20.00", "card")
	seedExpense(t, db, u.ID, food.ID, models.NewDate(2023, time.December, 10), "100.00", "card")

	clock := func() time.Time { return time.Date(2024, time.January, 10, 15, 0, 0, 0, time.UTC) }
	h := NewDashboardHandler(service.NewDashboardService(repository.NewExpenseRepository(db)).WithClock(clock))
	router := gin.New()
	router.Use(setUserIDMiddleware(u.ID))
	router.GET("/dashboard", h.Get)

	w := performRequest(router, http.MethodGet, "/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var d service.Dashboard
	require.NoError(t, json.Unmarshal(decodeResponse(t, w).Data, &d))
	assert.Equal(t, "50.00", d.CurrentMonthTotal.StringFixed(2))
	assert.Equal(t, "100.00", d.PreviousMonthTotal.StringFixed(2))
	assert.Equal(t, "-50.00", d.Variation.StringFixed(2))
	require.Len(t, d.ByCategory, 1)
	assert.Equal(t, "Food", d.ByCategory[0].Category)
	require.Len(t, d.ByDay, 1)
	assert.Equal(t, "2024-01-05", d.ByDay[0].Date.String())
	assert.Equal(t, "50.00", d.ByDay[0].Total.StringFixed(2))

	body := w.Body.String()
	assert.Contains(t, body, `"current_month_total":"50.00"`)
	assert.Contains(t, body, `"previous_month_total":"100.00"`)
	assert.Contains(t, body, `"variation":"-50.00"`)
	assert.Contains(t, body, `"by_category":[{"category":"Food","total":"50.00"}]`)
}
