package models

import (
	"encoding/json"

	"saldo/money"
)

// 金额字段统一输出固定 2 位小数，不受数据库驱动返回精度的影响（sqlite 会丢掉末尾的 0）

// MarshalJSON 金额输出为 "12.50"
func (e Expense) MarshalJSON() ([]byte, error) {
	type expense Expense
	return json.Marshal(struct {
		expense
		Amount string `json:"amount"`
	}{expense(e), money.Format(e.Amount)})
}

// MarshalJSON 月度预算输出为 "500.00"，未设置时为 null
func (c Category) MarshalJSON() ([]byte, error) {
	type category Category
	var limit *string
	if c.MonthlyLimit != nil {
		s := money.Format(*c.MonthlyLimit)
		limit = &s
	}
	return json.Marshal(struct {
		category
		MonthlyLimit *string `json:"monthly_limit"`
	}{category(c), limit})
}

// MarshalJSON 金额与利率均输出 2 位小数
func (p FinancialProjection) MarshalJSON() ([]byte, error) {
	type projection FinancialProjection
	return json.Marshal(struct {
		projection
		InitialValue        string `json:"initial_value"`
		MonthlyContribution string `json:"monthly_contribution"`
		InterestRate        string `json:"interest_rate"`
		FutureValue         string `json:"future_value"`
	}{
		projection(p),
		money.Format(p.InitialValue),
		money.Format(p.MonthlyContribution),
		money.Format(p.InterestRate),
		money.Format(p.FutureValue),
	})
}
