package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"saldo/models"
	"saldo/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newExpenseRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewExpenseHandler(newExpenseService(db))

	router := gin.New()
	router.Use(setUserIDMiddleware(userID))
	router.GET("/expenses", h.List)
	router.POST("/expenses", h.Create)
	router.GET("/expenses/total", h.Total)
	router.GET("/expenses/:id", h.Get)
	router.PUT("/expenses/:id", h.Update)
	router.DELETE("/expenses/:id", h.Delete)
	return router
}

func TestExpenseHandler_Create(t *testing.T) {
	db := setupTestDB(t)
	u := seedUser(t, db, "ana@example.com", "secret123")
	food := seedCategory(t, db, u.ID, "Food")
	router := newExpenseRouter(db, u.ID)

	body := `{"date":"2024-01-15","description":"Lunch","category_id":` + jsonID(food.ID) + `,"amount":"42.505","payment_method":"card"}`
	w := performRequest(router, http.MethodPost, "/expenses", body)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var x models.Expense
	require.NoError(t, json.Unmarshal(decodeResponse(t, w).Data, &x))
	assert.NotZero(t, x.ID)
	assert.Equal(t, u.ID, x.UserID)
	assert.Equal(t, "2024-01-15", x.Date.String())
	assert.Equal(t, "42.51", x.Amount.StringFixed(2))
	assert.Equal(t, "card", x.PaymentMethod)
}

func TestExpenseHandler_Create_InvalidCategory(t *testing.T) {
	db := setupTestDB(t)
	u := seedUser(t, db, "ana@example.com", "secret123")
	other := seedUser(t, db, "bob@example.com", "secret123")
	foreign := seedCategory(t, db, other.ID, "Other")
	router := newExpenseRouter(db, u.ID)

	w := performRequest(router, http.MethodPost, "/expenses",
		`{"date":"2024-01-15","description":"Lunch","category_id":`+jsonID(foreign.ID)+`,"amount":"10"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performRequest(router, http.MethodPost, "/expenses",
		`{"date":"2024-01-15","description":"Lunch","category_id":9999,"amount":"10"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExpenseHandler_Create_Validation(t *testing.T) {
	db := setupTestDB(t)
	u := seedUser(t, db, "ana@example.com", "secret123")
	food := seedCategory(t, db, u.ID, "Food")
	router := newExpenseRouter(db, u.ID)
	cat := jsonID(food.ID)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"zero amount", `{"date":"2024-01-15","description":"x","category_id":` + cat + `,"amount":"0"}`, "amount"},
		{"negative amount", `{"date":"2024-01-15","description":"x","category_id":` + cat + `,"amount":"-3"}`, "amount"},
		{"missing date", `{"description":"x","category_id":` + cat + `,"amount":"3"}`, "date"},
		{"blank description", `{"date":"2024-01-15","description":"  ","category_id":` + cat + `,"amount":"3"}`, "description"},
		{"bad date", `{"date":"15/01/2024","description":"x","category_id":` + cat + `,"amount":"3"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, http.MethodPost, "/expenses", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decodeResponse(t, w).Message, tt.field)
		})
	}
}

func TestExpenseHandler_List_FilterAndPaginate(t *testing.T) {
	db := setupTestDB(t)
	u := seedUser(t, db, "ana@example.com", "secret123")
	food := seedCategory(t, db, u.ID, "Food")
	for i, amount := range []string{"10.00", "50.00", "75.50", "100.00", "150.00"} {
		seedExpense(t, db, u.ID, food.ID, models.NewDate(2024, time.March, i+1), amount, "card")
	}
	router := newExpenseRouter(db, u.ID)

	w := performRequest(router, http.MethodGet, "/expenses?min_amount=50&max_amount=100&sort_by=amount&sort_dir=asc&size=2", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var page repository.ExpensePage
	require.NoError(t, json.Unmarshal(decodeResponse(t, w).Data, &page))
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 0, page.Page)
	assert.Equal(t, 2, page.PageSize)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.List, 2)
	assert.Equal(t, "50.00", page.List[0].Amount.StringFixed(2))
	assert.Equal(t, "75.50", page.List[1].Amount.StringFixed(2))

	w = performRequest(router, http.MethodGet, "/expenses?min_amount=50&max_amount=100&sort_by=amount&sort_dir=asc&size=2&page=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(decodeResponse(t, w).Data, &page))
	require.Len(t, page.List, 1)
	assert.Equal(t, "100.00", page.List[0].Amount.StringFixed(2))
}

func TestExpenseHandler_List_InvalidQuery(t *testing.T) {
	db := setupTestDB(t)
	u := seedUser(t, db, "ana@example.com", "secret123")
	router := newExpenseRouter(db, u.ID)

	tests := []struct {
		query string
		want  string
	}{
		{"sort_by=password", "sort_by"},
		{"sort_dir=sideways", "sort_dir"},
		{"page=-1", "page"},
		{"start_date=yesterday", "start_date"},
		{"max_amount=lots", "max_amount"},
	}
	for _, tt := range tests {
		w := performRequest(router, http.MethodGet, "/expenses?"+tt.query, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, tt.query)
		assert.Contains(t, decodeResponse(t, w).Message, tt.want, tt.query)
	}
}

func TestExpenseHandler_Total(t *testing.T) {
	db := setupTestDB(t)
	u := seedUser(t, db, "ana@example.com", "secret123")
	food := seedCategory(t, db, u.ID, "Food")
	seedExpense(t, db, u.ID, food.ID, models.NewDate(2024, time.March, 1), "100.00", "card")
	seedExpense(t, db, u.ID, food.ID, models.NewDate(2024, time.March, 2), "125.50", "cash")
	seedExpense(t, db, u.ID, food.ID, models.NewDate(2024, time.April, 2), "999.00", "card")
	router := newExpenseRouter(db, u.ID)

	w := performRequest(router, http.MethodGet, "/expenses/total?start_date=2024-03-01&end_date=2024-03-31&size=1", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Contains(t, w.Body.String(), `"total":"225.50"`)
	var total ExpenseTotal
	require.NoError(t, json.Unmarshal(decodeResponse(t, w).Data, &total))
	assert.Equal(t, "225.50", total.Total.StringFixed(2))

	w = performRequest(router, http.MethodGet, "/expenses/total?payment_method=bitcoin", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(decodeResponse(t, w).Data, &total))
	assert.True(t, total.Total.IsZero())
	assert.Contains(t, w.Body.String(), `"total":"0.00"`)
}

func TestExpenseHandler_AmountsKeepTwoDecimals(t *testing.T) {
	db := setupTestDB(t)
	u := seedUser(t, db, "ana@example.com", "secret123")
	food := seedCategory(t, db, u.ID, "Food")
	x := seedExpense(t, db, u.ID, food.ID, models.NewDate(2024, time.March, 1), "50.00", "card")
	seedExpense(t, db, u.ID, food.ID, models.NewDate(2024, time.March, 2), "250.00", "card")
	router := newExpenseRouter(db, u.ID)

	w := performRequest(router, http.MethodGet, "/expenses/"+jsonID(x.ID), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"amount":"50.00"`)

	w = performRequest(router, http.MethodGet, "/expenses?sort_by=amount&sort_dir=asc", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"amount":"50.00"`)
	assert.Contains(t, w.Body.String(), `"amount":"250.00"`)

	w = performRequest(router, http.MethodGet, "/expenses/total", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":"300.00"`)
}

func TestExpenseHandler_Ownership(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "ana@example.com", "secret123")
	intruder := seedUser(t, db, "bob@example.com", "secret123")
	food := seedCategory(t, db, owner.ID, "Food")
	x := seedExpense(t, db, owner.ID, food.ID, models.NewDate(2024, time.March, 1), "10.00", "card")
	path := "/expenses/" + jsonID(x.ID)

	w := performRequest(newExpenseRouter(db, intruder.ID), http.MethodGet, path, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = performRequest(newExpenseRouter(db, intruder.ID), http.MethodDelete, path, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	router := newExpenseRouter(db, owner.ID)
	w = performRequest(router, http.MethodGet, path, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodPut, path,
		`{"date":"2024-03-02","description":"Dinner","category_id":`+jsonID(food.ID)+`,"amount":"20"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.Expense
	require.NoError(t, json.Unmarshal(decodeResponse(t, w).Data, &updated))
	assert.Equal(t, "Dinner", updated.Description)
	assert.Equal(t, "20.00", updated.Amount.StringFixed(2))

	w = performRequest(router, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = performRequest(router, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExpenseQuery_Filter(t *testing.T) {
	cat := uint(3)
	q := ExpenseQuery{
		StartDate:     "2024-01-01",
		EndDate:       "2024-01-31",
		CategoryID:    &cat,
		MinAmount:     " 50 ",
		PaymentMethod: "  ",
		SortBy:        "amount",
		Page:          2,
		Size:          10,
	}

	f, err := q.Filter()
	require.NoError(t, err)
	require.NotNil(t, f.StartDate)
	assert.Equal(t, "2024-01-01", f.StartDate.String())
	assert.Equal(t, "2024-01-31", f.EndDate.String())
	assert.Equal(t, &cat, f.CategoryID)
	require.NotNil(t, f.MinAmount)
	assert.Equal(t, "50", f.MinAmount.String())
	assert.Nil(t, f.MaxAmount)
	assert.Nil(t, f.PaymentMethod)
	assert.Equal(t, "amount", f.SortBy)
	assert.Equal(t, 2, f.Page)
	assert.Equal(t, 10, f.Size)

	_, err = ExpenseQuery{EndDate: "2024-13-01"}.Filter()
	assert.ErrorContains(t, err, "end_date")
	_, err = ExpenseQuery{MinAmount: "1,5"}.Filter()
	assert.ErrorContains(t, err, "min_amount")
}

func jsonID(id uint) string {
	b, _ := json.Marshal(id)
	return string(b)
}
