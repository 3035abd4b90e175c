// Package money 提供定点小数运算辅助函数。
//
// 所有金额与利率均使用 shopspring/decimal 表示：金额保留 2 位小数，
// 利率换算保留 6 位小数，统一四舍五入（half-up）。
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// AmountScale 金额小数位数
	AmountScale int32 = 2
	// RateScale 利率换算的小数位数
	RateScale int32 = 6
	// PercentScale 百分比比例的小数位数
	PercentScale int32 = 4
)

var (
	// ErrInvalidAmount 金额格式无效
	ErrInvalidAmount = errors.New("invalid money amount")

	// Hundred 100
	Hundred = decimal.NewFromInt(100)
	// Twelve 每年月数
	Twelve = decimal.NewFromInt(12)
)

// Zero 返回 2 位小数的零值
func Zero() decimal.Decimal {
	return decimal.Zero.Round(AmountScale)
}

// RoundAmount 金额四舍五入到 2 位小数
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountScale)
}

// DivHalfUp 除法并按 scale 位小数四舍五入。
// 仅用于非负数场景，此时 decimal 的“远离零”舍入与 half-up 一致。
func DivHalfUp(a, b decimal.Decimal, scale int32) decimal.Decimal {
	return a.DivRound(b, scale)
}

// MonthlyRate 将年利率百分比换算为月利率：年利率 / 100 / 12，每次除法保留 6 位小数
func MonthlyRate(annualPercent decimal.Decimal) decimal.Decimal {
	return DivHalfUp(DivHalfUp(annualPercent, Hundred, RateScale), Twelve, RateScale)
}

// Sum 求和并四舍五入到 2 位小数
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return RoundAmount(total)
}

// Parse 解析用户输入的金额字符串
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// IsPositive 是否大于 0
func IsPositive(d decimal.Decimal) bool {
	return d.GreaterThan(decimal.Zero)
}

// IsNegative 是否小于 0
func IsNegative(d decimal.Decimal) bool {
	return d.LessThan(decimal.Zero)
}

// Format 格式化为固定 2 位小数字符串，如 1234.50
func Format(d decimal.Decimal) string {
	return d.StringFixed(AmountScale)
}
