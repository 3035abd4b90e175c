package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"saldo/models"
	"saldo/money"
	"saldo/repository"

	"github.com/shopspring/decimal"
)

// CategoryTotal 类别汇总
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total" swaggertype:"string"`
}

// DayTotal 每日汇总
type DayTotal struct {
	Date  models.Date     `json:"date" swaggertype:"string" example:"2024-01-15"`
	Total decimal.Decimal `json:"total" swaggertype:"string"`
}

// Dashboard 仪表盘数据
type Dashboard struct {
	CurrentMonthTotal  decimal.Decimal `json:"current_month_total" swaggertype:"string"`
	PreviousMonthTotal decimal.Decimal `json:"previous_month_total" swaggertype:"string"`
	Variation          decimal.Decimal `json:"variation" swaggertype:"string"` // 环比变化（百分比）
	ByCategory         []CategoryTotal `json:"by_category"`
	ByDay              []DayTotal      `json:"by_day"`
}

// MarshalJSON 合计输出 2 位小数
func (t CategoryTotal) MarshalJSON() ([]byte, error) {
	type categoryTotal CategoryTotal
	return json.Marshal(struct {
		categoryTotal
		Total string `json:"total"`
	}{categoryTotal(t), money.Format(t.Total)})
}

// MarshalJSON 合计输出 2 位小数
func (t DayTotal) MarshalJSON() ([]byte, error) {
	type dayTotal DayTotal
	return json.Marshal(struct {
		dayTotal
		Total string `json:"total"`
	}{dayTotal(t), money.Format(t.Total)})
}

// MarshalJSON 合计与环比输出 2 位小数
func (d Dashboard) MarshalJSON() ([]byte, error) {
	type dashboard Dashboard
	return json.Marshal(struct {
		dashboard
		CurrentMonthTotal  string `json:"current_month_total"`
		PreviousMonthTotal string `json:"previous_month_total"`
		Variation          string `json:"variation"`
	}{dashboard(d), money.Format(d.CurrentMonthTotal), money.Format(d.PreviousMonthTotal), money.Format(d.Variation)})
}

// BuildDashboard 根据 now 所在月份汇总消费明细。
// entries 可包含任意日期的记录，不在上月或本月范围内的会被忽略。
func BuildDashboard(now models.Date, entries []models.ExpenseEntry) *Dashboard {
	previous := now.AddMonths(-1)

	current := decimal.Zero
	last := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	byDay := make(map[models.Date]decimal.Decimal)

	for _, e := range entries {
		switch {
		case e.Date.SameMonth(now):
			current = current.Add(e.Amount)
			byCategory[e.CategoryName] = byCategory[e.CategoryName].Add(e.Amount)
			if !e.Date.After(now) {
				byDay[e.Date] = byDay[e.Date].Add(e.Amount)
			}
		case e.Date.SameMonth(previous):
			last = last.Add(e.Amount)
		}
	}

	d := &Dashboard{
		CurrentMonthTotal:  money.RoundAmount(current),
		PreviousMonthTotal: money.RoundAmount(last),
		Variation:          variation(current, last),
		ByCategory:         make([]CategoryTotal, 0, len(byCategory)),
		ByDay:              make([]DayTotal, 0, len(byDay)),
	}

	for name, total := range byCategory {
		d.ByCategory = append(d.ByCategory, CategoryTotal{Category: name, Total: money.RoundAmount(total)})
	}
	sort.Slice(d.ByCategory, func(i, j int) bool {
		return d.ByCategory[i].Category < d.ByCategory[j].Category
	})

	for day, total := range byDay {
		d.ByDay = append(d.ByDay, DayTotal{Date: day, Total: money.RoundAmount(total)})
	}
	sort.Slice(d.ByDay, func(i, j int) bool {
		return d.ByDay[i].Date.Before(d.ByDay[j].Date)
	})

	return d
}

// variation 环比：上月为 0 时返回 0，否则比例保留 4 位小数后乘以 100
func variation(current, previous decimal.Decimal) decimal.Decimal {
	if !money.IsPositive(previous) {
		return decimal.Zero
	}
	ratio := money.DivHalfUp(current.Sub(previous), previous, money.PercentScale)
	return ratio.Mul(money.Hundred)
}

// DashboardService 仪表盘服务
type DashboardService struct {
	expenses *repository.ExpenseRepository
	now      func() time.Time
}

// NewDashboardService 创建仪表盘服务
func NewDashboardService(expenses *repository.ExpenseRepository) *DashboardService {
	return &DashboardService{expenses: expenses, now: time.Now}
}

// WithClock 替换时钟
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

// Get 汇总上月第一天至本月最后一天的消费
func (s *DashboardService) Get(ctx context.Context, userID uint) (*Dashboard, error) {
	today := models.DateOf(s.now())
	from := today.AddMonths(-1)
	to := models.DateOf(today.AddMonths(1).AddDate(0, 0, -1))

	entries, err := s.expenses.ListEntries(ctx, userID, from, to)
	if err != nil {
		return nil, fromRepository(err)
	}
	return BuildDashboard(today, entries), nil
}
