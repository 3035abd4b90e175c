package repository

import (
	"context"

	"saldo/models"
	"saldo/money"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ExpenseRepository 消费记录仓储
type ExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository 创建消费记录仓储
func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Create 新增消费记录
func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(expense).Error
	return translate(err, "create expense")
}

// Update 保存全部可修改字段（created_at 只允许创建时写入）
func (r *ExpenseRepository) Update(ctx context.Context, expense *models.Expense) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(expense).Error
	return translate(err, "update expense")
}

// Delete 删除消费记录
func (r *ExpenseRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Delete(&models.Expense{}, id).Error
	return translate(err, "delete expense")
}

// FindByID 按 ID 查询，不校验归属
func (r *ExpenseRepository) FindByID(ctx context.Context, id uint) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.WithContext(ctx).First(&expense, id).Error; err != nil {
		return nil, translate(err, "find expense")
	}
	return &expense, nil
}

// filtered 每次返回新的查询链，避免 Count 与 Find 共用语句
func (r *ExpenseRepository) filtered(ctx context.Context, userID uint, filter ExpenseFilter) *gorm.DB {
	return filter.apply(r.db.WithContext(ctx).Model(&models.Expense{}), userID)
}

// Find 按筛选条件分页查询，filter 需先经过 Normalize
func (r *ExpenseRepository) Find(ctx context.Context, userID uint, filter ExpenseFilter) (*ExpensePage, error) {
	var total int64
	if err := r.filtered(ctx, userID, filter).Count(&total).Error; err != nil {
		return nil, translate(err, "count expenses")
	}
	if total == 0 {
		return newExpensePage(nil, 0, filter), nil
	}

	var list []models.Expense
	err := r.filtered(ctx, userID, filter).
		Clauses(clause.OrderBy{Columns: filter.OrderColumns()}).
		Offset(filter.Offset()).
		Limit(filter.Size).
		Find(&list).Error
	if err != nil {
		return nil, translate(err, "list expenses")
	}
	return newExpensePage(list, total, filter), nil
}

// FindAll 按筛选条件查询全部记录（忽略分页），用于导出
func (r *ExpenseRepository) FindAll(ctx context.Context, userID uint, filter ExpenseFilter) ([]models.Expense, error) {
	var list []models.Expense
	err := r.filtered(ctx, userID, filter).
		Clauses(clause.OrderBy{Columns: filter.OrderColumns()}).
		Find(&list).Error
	if err != nil {
		return nil, translate(err, "list expenses")
	}
	return list, nil
}

// Sum 按筛选条件汇总金额（忽略分页）
func (r *ExpenseRepository) Sum(ctx context.Context, userID uint, filter ExpenseFilter) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.filtered(ctx, userID, filter).
		Select("SUM(expenses.amount)").
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, translate(err, "sum expenses")
	}
	if !total.Valid {
		return money.Zero(), nil
	}
	return money.RoundAmount(total.Decimal), nil
}

// ListEntries 查询 [from, to] 区间内的消费明细及类别名称
func (r *ExpenseRepository) ListEntries(ctx context.Context, userID uint, from, to models.Date) ([]models.ExpenseEntry, error) {
	var entries []models.ExpenseEntry
	err := r.db.WithContext(ctx).
		Table("expenses").
		Select("expenses.date AS date, expenses.amount AS amount, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = expenses.category_id").
		Where("expenses.user_id = ? AND expenses.date >= ? AND expenses.date <= ?", userID, from, to).
		Order("expenses.date ASC").
		Scan(&entries).Error
	if err != nil {
		return nil, translate(err, "list expense entries")
	}
	return entries, nil
}

// CountByCategory 统计引用某类别的消费记录数
func (r *ExpenseRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Expense{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return 0, translate(err, "count expenses by category")
	}
	return count, nil
}
