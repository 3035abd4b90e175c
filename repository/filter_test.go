package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
)

func TestExpenseFilter_NormalizeDefaults(t *testing.T) {
	f, err := ExpenseFilter{}.Normalize(0, 0)
	require.NoError(t, err)

	assert.Equal(t, "date", f.SortBy)
	assert.Equal(t, "desc", f.SortDir)
	assert.Equal(t, 0, f.Page)
	assert.Equal(t, DefaultPageSize, f.Size)
}

func TestExpenseFilter_NormalizeSize(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"zero uses default", 0, 10},
		{"negative uses default", -3, 10},
		{"within range", 25, 25},
		{"capped at max", 500, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ExpenseFilter{Size: tt.size}.Normalize(10, 50)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Size)
		})
	}
}

func TestExpenseFilter_NormalizeRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		filter ExpenseFilter
		field  string
	}{
		{"unknown sort field", ExpenseFilter{SortBy: "password"}, "sort_by"},
		{"injection attempt", ExpenseFilter{SortBy: "date; DROP TABLE users"}, "sort_by"},
		{"bad direction", ExpenseFilter{SortDir: "sideways"}, "sort_dir"},
		{"negative page", ExpenseFilter{Page: -1}, "page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.filter.Normalize(0, 0)
			var fe *FilterError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestExpenseFilter_NormalizeDirectionCaseInsensitive(t *testing.T) {
	f, err := ExpenseFilter{SortBy: "amount", SortDir: "ASC"}.Normalize(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "asc", f.SortDir)
}

func TestExpenseFilter_NormalizeBlankPaymentMethod(t *testing.T) {
	blank := "  "
	f, err := ExpenseFilter{PaymentMethod: &blank}.Normalize(0, 0)
	require.NoError(t, err)
	assert.Nil(t, f.PaymentMethod)

	card := " card "
	f, err = ExpenseFilter{PaymentMethod: &card}.Normalize(0, 0)
	require.NoError(t, err)
	require.NotNil(t, f.PaymentMethod)
	assert.Equal(t, "card", *f.PaymentMethod)
}

func TestExpenseFilter_OrderColumns(t *testing.T) {
	f := ExpenseFilter{SortBy: "paymentMethod", SortDir: "asc"}
	cols := f.OrderColumns()

	require.Len(t, cols, 2)
	assert.Equal(t, "payment_method", cols[0].Column.Name)
	assert.Equal(t, clause.CurrentTable, cols[0].Column.Table)
	assert.False(t, cols[0].Desc)
	assert.Equal(t, "id", cols[1].Column.Name)
	assert.False(t, cols[1].Desc)

	byID := ExpenseFilter{SortBy: "id", SortDir: "desc"}.OrderColumns()
	require.Len(t, byID, 1)
	assert.True(t, byID[0].Desc)
}

func TestExpenseFilter_Offset(t *testing.T) {
	assert.Equal(t, 0, ExpenseFilter{Page: 0, Size: 20}.Offset())
	assert.Equal(t, 40, ExpenseFilter{Page: 2, Size: 20}.Offset())
}

func TestNewExpensePage(t *testing.T) {
	page := newExpensePage(nil, 0, ExpenseFilter{Page: 0, Size: 20})
	assert.NotNil(t, page.List)
	assert.Empty(t, page.List)
	assert.Equal(t, 0, page.TotalPages)

	page = newExpensePage(nil, 41, ExpenseFilter{Page: 1, Size: 20})
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PageSize)
}
