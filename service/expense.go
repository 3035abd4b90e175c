package service

import (
	"context"
	"strings"

	"saldo/config"
	"saldo/models"
	"saldo/money"
	"saldo/repository"

	"github.com/shopspring/decimal"
)

// ExpenseInput 消费记录参数
type ExpenseInput struct {
	Date          models.Date     `json:"date" swaggertype:"string" example:"2024-01-15"`
	Description   string          `json:"description" binding:"max=255" example:"Lunch"`
	CategoryID    uint            `json:"category_id" example:"1"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"42.50"`
	PaymentMethod string          `json:"payment_method" binding:"max=50" example:"card"`
	Barcode       string          `json:"barcode" binding:"max=100"`
	Recurring     bool            `json:"recurring"`
	Notes         string          `json:"notes" binding:"max=500"`
}

func (in ExpenseInput) normalize() (ExpenseInput, error) {
	if in.Date.IsZero() {
		return in, invalid("date", "消费日期不能为空")
	}
	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		return in, invalid("description", "描述不能为空")
	}
	if in.CategoryID == 0 {
		return in, invalid("category_id", "类别不能为空")
	}
	in.Amount = money.RoundAmount(in.Amount)
	if !money.IsPositive(in.Amount) {
		return in, invalid("amount", "金额必须大于 0")
	}
	in.PaymentMethod = strings.TrimSpace(in.PaymentMethod)
	in.Barcode = strings.TrimSpace(in.Barcode)
	in.Notes = strings.TrimSpace(in.Notes)
	return in, nil
}

// ExpenseService 消费记录服务
type ExpenseService struct {
	expenses   *repository.ExpenseRepository
	categories *repository.CategoryRepository
	pagination config.PaginationConfig
}

// NewExpenseService 创建消费记录服务
func NewExpenseService(expenses *repository.ExpenseRepository, categories *repository.CategoryRepository, pagination config.PaginationConfig) *ExpenseService {
	return &ExpenseService{expenses: expenses, categories: categories, pagination: pagination}
}

// Create 新增消费记录
func (s *ExpenseService) Create(ctx context.Context, userID uint, in ExpenseInput) (*models.Expense, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, userID, in.CategoryID); err != nil {
		return nil, err
	}

	expense := &models.Expense{UserID: userID}
	apply(expense, in)
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, fromRepository(err)
	}
	return expense, nil
}

// Update 修改消费记录，创建时间与归属用户不变
func (s *ExpenseService) Update(ctx context.Context, userID, id uint, in ExpenseInput) (*models.Expense, error) {
	expense, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	in, err = in.normalize()
	if err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, userID, in.CategoryID); err != nil {
		return nil, err
	}

	apply(expense, in)
	if err := s.expenses.Update(ctx, expense); err != nil {
		return nil, fromRepository(err)
	}
	return expense, nil
}

// Delete 删除消费记录
func (s *ExpenseService) Delete(ctx context.Context, userID, id uint) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return fromRepository(s.expenses.Delete(ctx, id))
}

// FindByID 查询单条消费记录
func (s *ExpenseService) FindByID(ctx context.Context, userID, id uint) (*models.Expense, error) {
	return s.owned(ctx, userID, id)
}

// FindAll 按筛选条件分页查询
func (s *ExpenseService) FindAll(ctx context.Context, userID uint, filter repository.ExpenseFilter) (*repository.ExpensePage, error) {
	filter, err := s.normalize(filter)
	if err != nil {
		return nil, err
	}
	page, err := s.expenses.Find(ctx, userID, filter)
	if err != nil {
		return nil, fromRepository(err)
	}
	return page, nil
}

// Total 筛选结果的金额合计（不分页）
func (s *ExpenseService) Total(ctx context.Context, userID uint, filter repository.ExpenseFilter) (decimal.Decimal, error) {
	filter, err := s.normalize(filter)
	if err != nil {
		return decimal.Zero, err
	}
	total, err := s.expenses.Sum(ctx, userID, filter)
	if err != nil {
		return decimal.Zero, fromRepository(err)
	}
	return total, nil
}

// Export 筛选结果的全部记录（不分页）
func (s *ExpenseService) Export(ctx context.Context, userID uint, filter repository.ExpenseFilter) ([]models.Expense, error) {
	filter, err := s.normalize(filter)
	if err != nil {
		return nil, err
	}
	list, err := s.expenses.FindAll(ctx, userID, filter)
	if err != nil {
		return nil, fromRepository(err)
	}
	return list, nil
}

// CategoryNames 用户类别 ID -> 名称，导出时使用
func (s *ExpenseService) CategoryNames(ctx context.Context, userID uint) (map[uint]string, error) {
	list, err := s.categories.FindByUser(ctx, userID)
	if err != nil {
		return nil, fromRepository(err)
	}
	names := make(map[uint]string, len(list))
	for _, c := range list {
		names[c.ID] = c.Name
	}
	return names, nil
}

func (s *ExpenseService) normalize(filter repository.ExpenseFilter) (repository.ExpenseFilter, error) {
	filter, err := filter.Normalize(s.pagination.DefaultSize, s.pagination.MaxSize)
	if err != nil {
		return filter, fromRepository(err)
	}
	return filter, nil
}

func (s *ExpenseService) owned(ctx context.Context, userID, id uint) (*models.Expense, error) {
	expense, err := s.expenses.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err)
	}
	if expense.UserID != userID {
		return nil, ErrForbidden
	}
	return expense, nil
}

// checkCategory 类别必须存在且属于同一用户
func (s *ExpenseService) checkCategory(ctx context.Context, userID, categoryID uint) error {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return fromRepository(err)
	}
	if category.UserID != userID {
		return ErrForbidden
	}
	return nil
}

func apply(expense *models.Expense, in ExpenseInput) {
	expense.Date = in.Date
	expense.Description = in.Description
	expense.CategoryID = in.CategoryID
	expense.Amount = in.Amount
	expense.PaymentMethod = in.PaymentMethod
	expense.Barcode = in.Barcode
	expense.Recurring = in.Recurring
	expense.Notes = in.Notes
}
