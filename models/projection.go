package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialProjection 复利理财预测
type FinancialProjection struct {
	ID                  uint            `json:"id" gorm:"primaryKey"`
	UserID              uint            `json:"user_id" gorm:"index;not null"`
	InitialValue        decimal.Decimal `json:"initial_value" gorm:"type:decimal(12,2);not null"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution" gorm:"type:decimal(12,2);not null"`
	InterestRate        decimal.Decimal `json:"interest_rate" gorm:"type:decimal(7,2);not null"` // 年利率（百分比）
	Period              int             `json:"period" gorm:"not null"`                          // 月数
	FutureValue         decimal.Decimal `json:"future_value" gorm:"type:decimal(14,2);not null"`
	CreatedAt           time.Time       `json:"created_at" gorm:"<-:create"`
	User                *User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (FinancialProjection) TableName() string {
	return "financial_projections"
}
