package service

import (
	"context"
	"strings"
	"testing"

	"saldo/config"
	"saldo/database"
	"saldo/models"
	"saldo/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db          *gorm.DB
	users       *repository.UserRepository
	categories  *repository.CategoryRepository
	expenses    *repository.ExpenseRepository
	projections *repository.ProjectionRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	name := "svc_" + strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.OpenMemory(name)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return &testEnv{
		db:          db,
		users:       repository.NewUserRepository(db),
		categories:  repository.NewCategoryRepository(db),
		expenses:    repository.NewExpenseRepository(db),
		projections: repository.NewProjectionRepository(db),
	}
}

func (e *testEnv) categoryService() *CategoryService {
	return NewCategoryService(e.categories, e.expenses)
}

func (e *testEnv) expenseService() *ExpenseService {
	return NewExpenseService(e.expenses, e.categories, config.PaginationConfig{DefaultSize: 20, MaxSize: 100})
}

func (e *testEnv) user(t *testing.T, email string) *models.User {
	t.Helper()
	u := &models.User{Email: email, Password: "hash", Name: "User"}
	require.NoError(t, e.users.Create(context.Background(), u))
	return u
}

func (e *testEnv) category(t *testing.T, userID uint, name string) *models.Category {
	t.Helper()
	c, err := e.categoryService().Create(context.Background(), userID, CategoryInput{Name: name})
	require.NoError(t, err)
	return c
}

func (e *testEnv) expense(t *testing.T, userID, categoryID uint, date models.Date, amount string) *models.Expense {
	t.Helper()
	x, err := e.expenseService().Create(context.Background(), userID, ExpenseInput{
		Date:        date,
		Description: "expense " + amount,
		CategoryID:  categoryID,
		Amount:      decimal.RequireFromString(amount),
	})
	require.NoError(t, err)
	return x
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
