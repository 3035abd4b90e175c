package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense 消费记录模型
type Expense struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	UserID        uint            `json:"user_id" gorm:"index;not null"`
	CategoryID    uint            `json:"category_id" gorm:"index;not null"`
	Date          Date            `json:"date" gorm:"index;not null"`
	Description   string          `json:"description" gorm:"size:255;not null"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	PaymentMethod string          `json:"payment_method" gorm:"size:50;index"`
	Barcode       string          `json:"barcode" gorm:"size:100"`
	Recurring     bool            `json:"recurring" gorm:"not null;default:false"`
	Notes         string          `json:"notes" gorm:"size:500"`
	CreatedAt     time.Time       `json:"created_at" gorm:"<-:create"` // 创建后不可修改
	UpdatedAt     time.Time       `json:"updated_at"`
	User          *User           `json:"-" gorm:"foreignKey:UserID"`
	Category      *Category       `json:"-" gorm:"foreignKey:CategoryID"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

// ExpenseEntry 聚合计算使用的消费明细（日期、金额、类别名称）
type ExpenseEntry struct {
	Date         Date            `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	CategoryName string          `json:"category_name"`
}
