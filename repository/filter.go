package repository

import (
	"fmt"
	"strings"

	"saldo/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// DefaultSortBy 默认排序字段
	DefaultSortBy = "date"
	// DefaultSortDir 默认排序方向
	DefaultSortDir = "desc"
	// DefaultPageSize 默认每页数量
	DefaultPageSize = 20
	// MaxPageSize 每页数量上限
	MaxPageSize = 100
)

// sortableColumns 允许排序的字段 -> 数据库列名
// 排序参数只能取这里的键，防止通过排序参数注入 SQL
var sortableColumns = map[string]string{
	"date":           "date",
	"amount":         "amount",
	"description":    "description",
	"paymentMethod":  "payment_method",
	"payment_method": "payment_method",
	"createdAt":      "created_at",
	"created_at":     "created_at",
	"category":       "category_id",
	"categoryId":     "category_id",
	"category_id":    "category_id",
	"id":             "id",
}

// FilterError 筛选参数错误
type FilterError struct {
	Field   string
	Message string
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ExpenseFilter 消费记录筛选条件，指针字段为 nil 表示不限制
type ExpenseFilter struct {
	StartDate     *models.Date
	EndDate       *models.Date
	CategoryID    *uint
	MinAmount     *decimal.Decimal
	MaxAmount     *decimal.Decimal
	PaymentMethod *string
	SortBy        string
	SortDir       string
	Page          int // 从 0 开始
	Size          int
}

// Normalize 校验并补齐默认值。
// defaultSize/maxSize 小于等于 0 时使用包内默认值。
func (f ExpenseFilter) Normalize(defaultSize, maxSize int) (ExpenseFilter, error) {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	if maxSize <= 0 {
		maxSize = MaxPageSize
	}

	f.SortBy = strings.TrimSpace(f.SortBy)
	if f.SortBy == "" {
		f.SortBy = DefaultSortBy
	}
	if _, ok := sortableColumns[f.SortBy]; !ok {
		return f, &FilterError{Field: "sort_by", Message: fmt.Sprintf("不支持的排序字段: %s", f.SortBy)}
	}

	f.SortDir = strings.ToLower(strings.TrimSpace(f.SortDir))
	if f.SortDir == "" {
		f.SortDir = DefaultSortDir
	}
	if f.SortDir != "asc" && f.SortDir != "desc" {
		return f, &FilterError{Field: "sort_dir", Message: "排序方向只能是 asc 或 desc"}
	}

	if f.Page < 0 {
		return f, &FilterError{Field: "page", Message: "页码不能为负数"}
	}
	if f.Size <= 0 {
		f.Size = defaultSize
	}
	if f.Size > maxSize {
		f.Size = maxSize
	}

	if f.PaymentMethod != nil {
		pm := strings.TrimSpace(*f.PaymentMethod)
		if pm == "" {
			f.PaymentMethod = nil
		} else {
			f.PaymentMethod = &pm
		}
	}
	return f, nil
}

// OrderColumns 排序子句，相同值按 id 同方向排序以保证分页稳定
func (f ExpenseFilter) OrderColumns() []clause.OrderByColumn {
	column, ok := sortableColumns[f.SortBy]
	if !ok {
		column = sortableColumns[DefaultSortBy]
	}
	desc := f.SortDir != "asc"
	cols := []clause.OrderByColumn{{Column: clause.Column{Table: clause.CurrentTable, Name: column}, Desc: desc}}
	if column != "id" {
		cols = append(cols, clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}, Desc: desc})
	}
	return cols
}

// Offset 分页偏移量
func (f ExpenseFilter) Offset() int {
	return f.Page * f.Size
}

// apply 追加筛选条件，条件之间为 AND 关系，区间两端均包含
func (f ExpenseFilter) apply(db *gorm.DB, userID uint) *gorm.DB {
	db = db.Where("expenses.user_id = ?", userID)
	if f.StartDate != nil {
		db = db.Where("expenses.date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		db = db.Where("expenses.date <= ?", *f.EndDate)
	}
	if f.CategoryID != nil {
		db = db.Where("expenses.category_id = ?", *f.CategoryID)
	}
	if f.MinAmount != nil {
		db = db.Where("expenses.amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		db = db.Where("expenses.amount <= ?", *f.MaxAmount)
	}
	if f.PaymentMethod != nil {
		db = db.Where("expenses.payment_method = ?", *f.PaymentMethod)
	}
	return db
}

// ExpensePage 分页结果
type ExpensePage struct {
	List       []models.Expense `json:"list"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

func newExpensePage(list []models.Expense, total int64, f ExpenseFilter) *ExpensePage {
	if list == nil {
		list = []models.Expense{}
	}
	pages := 0
	if f.Size > 0 {
		pages = int((total + int64(f.Size) - 1) / int64(f.Size))
	}
	return &ExpensePage{
		List:       list,
		Total:      total,
		Page:       f.Page,
		PageSize:   f.Size,
		TotalPages: pages,
	}
}
