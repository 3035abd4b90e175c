package repository

import (
	"context"

	"saldo/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryRepository 消费类别仓储
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建类别仓储
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create 新增类别
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(category).Error
	return translate(err, "create category")
}

// Update 保存类别
func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(category).Error
	return translate(err, "update category")
}

// Delete 删除类别
func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Delete(&models.Category{}, id).Error
	return translate(err, "delete category")
}

// FindByID 按 ID 查询，不校验归属
func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, translate(err, "find category")
	}
	return &category, nil
}

// FindByUser 查询用户的全部类别
func (r *CategoryRepository) FindByUser(ctx context.Context, userID uint) ([]models.Category, error) {
	list := []models.Category{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC, id ASC").
		Find(&list).Error
	if err != nil {
		return nil, translate(err, "list categories")
	}
	return list, nil
}
