package service

import (
	"context"
	"regexp"
	"strings"

	"saldo/models"
	"saldo/money"
	"saldo/repository"

	"github.com/shopspring/decimal"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// CategoryInput 类别参数
type CategoryInput struct {
	Name         string           `json:"name" binding:"required,max=100" example:"Food"`
	MonthlyLimit *decimal.Decimal `json:"monthly_limit" swaggertype:"string" example:"500.00"`
	Color        string           `json:"color" example:"#ef4444"`
	Icon         string           `json:"icon" binding:"max=50" example:"utensils"`
}

func (in CategoryInput) normalize() (CategoryInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return in, invalid("name", "类别名称不能为空")
	}
	if in.MonthlyLimit != nil {
		if money.IsNegative(*in.MonthlyLimit) {
			return in, invalid("monthly_limit", "月度预算不能为负数")
		}
		limit := money.RoundAmount(*in.MonthlyLimit)
		in.MonthlyLimit = &limit
	}
	in.Color = strings.TrimSpace(in.Color)
	if in.Color == "" {
		in.Color = models.DefaultCategoryColor
	} else if !colorPattern.MatchString(in.Color) {
		return in, invalid("color", "颜色格式应为 #RRGGBB")
	}
	in.Icon = strings.TrimSpace(in.Icon)
	return in, nil
}

// CategoryService 类别服务
type CategoryService struct {
	categories *repository.CategoryRepository
	expenses   *repository.ExpenseRepository
}

// NewCategoryService 创建类别服务
func NewCategoryService(categories *repository.CategoryRepository, expenses *repository.ExpenseRepository) *CategoryService {
	return &CategoryService{categories: categories, expenses: expenses}
}

// Create 新增类别
func (s *CategoryService) Create(ctx context.Context, userID uint, in CategoryInput) (*models.Category, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}

	category := &models.Category{
		UserID:       userID,
		Name:         in.Name,
		MonthlyLimit: in.MonthlyLimit,
		Color:        in.Color,
		Icon:         in.Icon,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fromRepository(err)
	}
	return category, nil
}

// Update 修改类别
func (s *CategoryService) Update(ctx context.Context, userID, id uint, in CategoryInput) (*models.Category, error) {
	category, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	in, err = in.normalize()
	if err != nil {
		return nil, err
	}

	category.Name = in.Name
	category.MonthlyLimit = in.MonthlyLimit
	category.Color = in.Color
	category.Icon = in.Icon
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, fromRepository(err)
	}
	return category, nil
}

// Delete 删除类别，仍有消费记录引用时返回 ErrConflict
func (s *CategoryService) Delete(ctx context.Context, userID, id uint) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}

	count, err := s.expenses.CountByCategory(ctx, id)
	if err != nil {
		return fromRepository(err)
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	return fromRepository(s.categories.Delete(ctx, id))
}

// FindByID 查询单个类别
func (s *CategoryService) FindByID(ctx context.Context, userID, id uint) (*models.Category, error) {
	return s.owned(ctx, userID, id)
}

// FindAll 查询用户的全部类别
func (s *CategoryService) FindAll(ctx context.Context, userID uint) ([]models.Category, error) {
	list, err := s.categories.FindByUser(ctx, userID)
	return list, fromRepository(err)
}

func (s *CategoryService) owned(ctx context.Context, userID, id uint) (*models.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err)
	}
	if category.UserID != userID {
		return nil, ErrForbidden
	}
	return category, nil
}
