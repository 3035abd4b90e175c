package repository

import (
	"context"

	"saldo/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectionRepository 理财预测仓储
type ProjectionRepository struct {
	db *gorm.DB
}

// NewProjectionRepository 创建理财预测仓储
func NewProjectionRepository(db *gorm.DB) *ProjectionRepository {
	return &ProjectionRepository{db: db}
}

// Create 新增预测记录
func (r *ProjectionRepository) Create(ctx context.Context, projection *models.FinancialProjection) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(projection).Error
	return translate(err, "create projection")
}

// Delete 删除预测记录
func (r *ProjectionRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Delete(&models.FinancialProjection{}, id).Error
	return translate(err, "delete projection")
}

// FindByID 按 ID 查询，不校验归属
func (r *ProjectionRepository) FindByID(ctx context.Context, id uint) (*models.FinancialProjection, error) {
	var projection models.FinancialProjection
	if err := r.db.WithContext(ctx).First(&projection, id).Error; err != nil {
		return nil, translate(err, "find projection")
	}
	return &projection, nil
}

// FindByUser 查询用户的全部预测，最新的在前
func (r *ProjectionRepository) FindByUser(ctx context.Context, userID uint) ([]models.FinancialProjection, error) {
	list := []models.FinancialProjection{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	if err != nil {
		return nil, translate(err, "list projections")
	}
	return list, nil
}
