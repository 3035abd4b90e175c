package service

import (
	"context"
	"encoding/json"
	"fmt"

	"saldo/models"
	"saldo/money"
	"saldo/repository"

	"github.com/shopspring/decimal"
)

// MaxProjectionPeriod 预测期数上限（100 年）。迭代使用精确小数乘法，位数随期数增长。
const MaxProjectionPeriod = 1200

// ProjectionInput 理财预测参数
type ProjectionInput struct {
	InitialValue        decimal.Decimal `json:"initial_value" swaggertype:"string" example:"1000.00"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution" swaggertype:"string" example:"100.00"`
	InterestRate        decimal.Decimal `json:"interest_rate" swaggertype:"string" example:"12"` // 年利率（百分比）
	Period              int             `json:"period" example:"12"`                                // 月数
}

// ProjectionResult 预测试算结果
type ProjectionResult struct {
	ProjectionInput
	MonthlyRate decimal.Decimal `json:"monthly_rate" swaggertype:"string"`
	FutureValue decimal.Decimal `json:"future_value" swaggertype:"string"`
}

// MarshalJSON 终值输出 2 位小数，月利率输出 6 位小数，输入参数原样回显
func (r ProjectionResult) MarshalJSON() ([]byte, error) {
	type result ProjectionResult
	return json.Marshal(struct {
		result
		MonthlyRate string `json:"monthly_rate"`
		FutureValue string `json:"future_value"`
	}{result(r), r.MonthlyRate.StringFixed(money.RateScale), money.Format(r.FutureValue)})
}

// ValidateProjectionInput 校验预测参数，在计算前执行
func ValidateProjectionInput(in ProjectionInput) error {
	if money.IsNegative(in.InitialValue) {
		return invalid("initial_value", "初始金额不能为负数")
	}
	if money.IsNegative(in.MonthlyContribution) {
		return invalid("monthly_contribution", "每月投入不能为负数")
	}
	if money.IsNegative(in.InterestRate) {
		return invalid("interest_rate", "年利率不能为负数")
	}
	if in.Period < 1 {
		return invalid("period", "期数至少为 1 个月")
	}
	if in.Period > MaxProjectionPeriod {
		return invalid("period", fmt.Sprintf("期数不能超过 %d 个月", MaxProjectionPeriod))
	}
	return nil
}

// CalculateFutureValue 按月迭代计算复利终值：
// fv = fv * (1 + 月利率) + 每月投入，共 periodMonths 次，结果保留 2 位小数。
// 调用方需先通过 ValidateProjectionInput 校验参数。
func CalculateFutureValue(initial, contribution, annualRatePercent decimal.Decimal, periodMonths int) decimal.Decimal {
	growth := decimal.NewFromInt(1).Add(money.MonthlyRate(annualRatePercent))

	fv := initial
	for i := 0; i < periodMonths; i++ {
		fv = fv.Mul(growth).Add(contribution)
	}
	return money.RoundAmount(fv)
}

// ProjectionService 理财预测服务
type ProjectionService struct {
	projections *repository.ProjectionRepository
}

// NewProjectionService 创建理财预测服务
func NewProjectionService(projections *repository.ProjectionRepository) *ProjectionService {
	return &ProjectionService{projections: projections}
}

// Calculate 试算终值，不保存
func (s *ProjectionService) Calculate(in ProjectionInput) (*ProjectionResult, error) {
	if err := ValidateProjectionInput(in); err != nil {
		return nil, err
	}
	return &ProjectionResult{
		ProjectionInput: in,
		MonthlyRate:     money.MonthlyRate(in.InterestRate),
		FutureValue:     CalculateFutureValue(in.InitialValue, in.MonthlyContribution, in.InterestRate, in.Period),
	}, nil
}

// Create 计算并保存预测
func (s *ProjectionService) Create(ctx context.Context, userID uint, in ProjectionInput) (*models.FinancialProjection, error) {
	if err := ValidateProjectionInput(in); err != nil {
		return nil, err
	}

	projection := &models.FinancialProjection{
		UserID:              userID,
		InitialValue:        money.RoundAmount(in.InitialValue),
		MonthlyContribution: money.RoundAmount(in.MonthlyContribution),
		InterestRate:        money.RoundAmount(in.InterestRate),
		Period:              in.Period,
		FutureValue:         CalculateFutureValue(in.InitialValue, in.MonthlyContribution, in.InterestRate, in.Period),
	}
	if err := s.projections.Create(ctx, projection); err != nil {
		return nil, fromRepository(err)
	}
	return projection, nil
}

// FindAll 查询用户的全部预测
func (s *ProjectionService) FindAll(ctx context.Context, userID uint) ([]models.FinancialProjection, error) {
	list, err := s.projections.FindByUser(ctx, userID)
	return list, fromRepository(err)
}

// FindByID 查询单个预测
func (s *ProjectionService) FindByID(ctx context.Context, userID, id uint) (*models.FinancialProjection, error) {
	return s.owned(ctx, userID, id)
}

// Delete 删除预测
func (s *ProjectionService) Delete(ctx context.Context, userID, id uint) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return fromRepository(s.projections.Delete(ctx, id))
}

func (s *ProjectionService) owned(ctx context.Context, userID, id uint) (*models.FinancialProjection, error) {
	projection, err := s.projections.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err)
	}
	if projection.UserID != userID {
		return nil, ErrForbidden
	}
	return projection, nil
}
