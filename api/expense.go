package api

import (
	"encoding/json"
	"fmt"
	"strings"

	"saldo/middleware"
	"saldo/models"
	"saldo/money"
	"saldo/repository"
	"saldo/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ExpenseQuery 消费记录筛选参数，列表、合计与导出共用
type ExpenseQuery struct {
	StartDate     string `form:"start_date" example:"2024-01-01"`
	EndDate       string `form:"end_date" example:"2024-01-31"`
	CategoryID    *uint  `form:"category_id"`
	MinAmount     string `form:"min_amount" example:"50"`
	MaxAmount     string `form:"max_amount" example:"100"`
	PaymentMethod string `form:"payment_method" example:"card"`
	SortBy        string `form:"sort_by" example:"date"`
	SortDir       string `form:"sort_dir" example:"desc"`
	Page          int    `form:"page" example:"0"`
	Size          int    `form:"size" example:"20"`
}

// Filter 转换为仓储筛选条件
func (q ExpenseQuery) Filter() (repository.ExpenseFilter, error) {
	f := repository.ExpenseFilter{
		CategoryID: q.CategoryID,
		SortBy:     q.SortBy,
		SortDir:    q.SortDir,
		Page:       q.Page,
		Size:       q.Size,
	}

	var err error
	if f.StartDate, err = optionalDate(q.StartDate, "start_date"); err != nil {
		return f, err
	}
	if f.EndDate, err = optionalDate(q.EndDate, "end_date"); err != nil {
		return f, err
	}
	if f.MinAmount, err = optionalAmount(q.MinAmount, "min_amount"); err != nil {
		return f, err
	}
	if f.MaxAmount, err = optionalAmount(q.MaxAmount, "max_amount"); err != nil {
		return f, err
	}
	if pm := strings.TrimSpace(q.PaymentMethod); pm != "" {
		f.PaymentMethod = &pm
	}
	return f, nil
}

func optionalDate(s, field string) (*models.Date, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := models.ParseDate(s)
	if err != nil {
		return nil, fmt.Errorf("%s 格式错误，应为 %s", field, models.DateLayout)
	}
	return &d, nil
}

func optionalAmount(s, field string) (*decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := money.Parse(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%s 不是有效金额", field)
	}
	return &d, nil
}

// bindExpenseFilter 解析查询参数，失败时直接返回 400
func bindExpenseFilter(c *gin.Context) (repository.ExpenseFilter, bool) {
	var q ExpenseQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return repository.ExpenseFilter{}, false
	}
	f, err := q.Filter()
	if err != nil {
		BadRequest(c, err.Error())
		return f, false
	}
	return f, true
}

// ExpenseTotal 合计结果
type ExpenseTotal struct {
	Total decimal.Decimal `json:"total" swaggertype:"string" example:"225.50"`
}

// MarshalJSON 合计输出 2 位小数
func (t ExpenseTotal) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Total string `json:"total"`
	}{money.Format(t.Total)})
}

// ExpenseHandler 消费记录处理器
type ExpenseHandler struct {
	expenses *service.ExpenseService
}

// NewExpenseHandler 创建消费记录处理器
func NewExpenseHandler(expenses *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// Create 创建消费记录
// @Summary 创建消费记录
// @Description 类别必须属于当前用户，金额必须大于 0
// @Tags 消费记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.ExpenseInput true "消费记录信息"
// @Success 201 {object} Response{data=models.Expense} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 403 {object} Response "类别不属于当前用户"
// @Failure 404 {object} Response "类别不存在"
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req service.ExpenseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	expense, err := h.expenses.Create(c.Request.Context(), middleware.GetCurrentUserID(c), req)
	if err != nil {
		handleServiceError(c, err, "创建消费记录失败")
		return
	}
	Created(c, expense)
}

// List 获取消费记录列表
// @Summary 获取消费记录列表
// @Description 支持日期、类别、金额区间、支付方式筛选，分页从 0 开始
// @Tags 消费记录
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "开始日期 (2024-01-01)"
// @Param end_date query string false "结束日期 (2024-01-31)"
// @Param category_id query int false "类别ID"
// @Param min_amount query string false "最小金额（含）"
// @Param max_amount query string false "最大金额（含）"
// @Param payment_method query string false "支付方式"
// @Param sort_by query string false "排序字段" Enums(date, amount, description, paymentMethod, createdAt, category, id)
// @Param sort_dir query string false "排序方向" Enums(asc, desc)
// @Param page query int false "页码（从 0 开始）" default(0)
// @Param size query int false "每页数量" default(20)
// @Success 200 {object} Response{data=repository.ExpensePage} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	filter, ok := bindExpenseFilter(c)
	if !ok {
		return
	}

	page, err := h.expenses.FindAll(c.Request.Context(), middleware.GetCurrentUserID(c), filter)
	if err != nil {
		handleServiceError(c, err, "查询消费记录失败")
		return
	}
	Success(c, page)
}

// Total 筛选结果金额合计
// @Summary 消费金额合计
// @Description 与列表相同的筛选参数，忽略分页
// @Tags 消费记录
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "开始日期 (2024-01-01)"
// @Param end_date query string false "结束日期 (2024-01-31)"
// @Param category_id query int false "类别ID"
// @Param min_amount query string false "最小金额（含）"
// @Param max_amount query string false "最大金额（含）"
// @Param payment_method query string false "支付方式"
// @Success 200 {object} Response{data=ExpenseTotal} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/expenses/total [get]
func (h *ExpenseHandler) Total(c *gin.Context) {
	filter, ok := bindExpenseFilter(c)
	if !ok {
		return
	}

	total, err := h.expenses.Total(c.Request.Context(), middleware.GetCurrentUserID(c), filter)
	if err != nil {
		handleServiceError(c, err, "统计消费金额失败")
		return
	}
	Success(c, ExpenseTotal{Total: total})
}

// Get 获取消费记录详情
// @Summary 获取消费记录详情
// @Tags 消费记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "消费记录ID"
// @Success 200 {object} Response{data=models.Expense} "获取成功"
// @Failure 403 {object} Response "无权访问"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	expense, err := h.expenses.FindByID(c.Request.Context(), middleware.GetCurrentUserID(c), id)
	if err != nil {
		handleServiceError(c, err, "查询消费记录失败")
		return
	}
	Success(c, expense)
}

// Update 更新消费记录
// @Summary 更新消费记录
// @Tags 消费记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "消费记录ID"
// @Param request body service.ExpenseInput true "消费记录信息"
// @Success 200 {object} Response{data=models.Expense} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 403 {object} Response "无权访问"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.ExpenseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	expense, err := h.expenses.Update(c.Request.Context(), middleware.GetCurrentUserID(c), id, req)
	if err != nil {
		handleServiceError(c, err, "更新消费记录失败")
		return
	}
	SuccessWithMessage(c, "更新成功", expense)
}

// Delete 删除消费记录
// @Summary 删除消费记录
// @Tags 消费记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "消费记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 403 {object} Response "无权访问"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.expenses.Delete(c.Request.Context(), middleware.GetCurrentUserID(c), id); err != nil {
		handleServiceError(c, err, "删除消费记录失败")
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}
