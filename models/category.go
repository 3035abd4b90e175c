package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCategoryColor 默认类别颜色
const DefaultCategoryColor = "#64748b"

// Category 消费类别，归属于单个用户
type Category struct {
	ID           uint             `json:"id" gorm:"primaryKey"`
	UserID       uint             `json:"user_id" gorm:"index;not null"`
	Name         string           `json:"name" gorm:"size:100;not null"`
	MonthlyLimit *decimal.Decimal `json:"monthly_limit" gorm:"type:decimal(12,2)"` // 月度预算上限，可为空
	Color        string           `json:"color" gorm:"size:7"`                     // 颜色代码，如 #ef4444
	Icon         string           `json:"icon" gorm:"size:50"`
	CreatedAt    time.Time        `json:"created_at" gorm:"<-:create"`
	UpdatedAt    time.Time        `json:"updated_at"`
	User         *User            `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (Category) TableName() string {
	return "categories"
}
