package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"saldo/middleware"
	"saldo/models"
	"saldo/service"

	"github.com/gin-gonic/gin"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	expenses *service.ExpenseService
}

// NewExportHandler 创建导出处理器
func NewExportHandler(expenses *service.ExpenseService) *ExportHandler {
	return &ExportHandler{expenses: expenses}
}

// load 按筛选条件加载导出数据及类别名称
func (h *ExportHandler) load(c *gin.Context) ([]models.Expense, map[uint]string, bool) {
	filter, ok := bindExpenseFilter(c)
	if !ok {
		return nil, nil, false
	}

	userID := middleware.GetCurrentUserID(c)
	list, err := h.expenses.Export(c.Request.Context(), userID, filter)
	if err != nil {
		handleServiceError(c, err, "查询数据失败")
		return nil, nil, false
	}
	names, err := h.expenses.CategoryNames(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err, "查询类别失败")
		return nil, nil, false
	}
	return list, names, true
}

func exportFilename(ext string) string {
	return fmt.Sprintf("expenses_%s.%s", time.Now().Format("20060102_150405"), ext)
}

// ExportCSV 导出消费记录为 CSV
// @Summary 导出消费记录 (CSV)
// @Description 与列表相同的筛选参数，忽略分页
// @Tags 导出
// @Produce text/csv
// @Security BearerAuth
// @Param start_date query string false "开始日期 (2024-01-01)"
// @Param end_date query string false "结束日期 (2024-01-31)"
// @Param category_id query int false "类别ID"
// @Param min_amount query string false "最小金额（含）"
// @Param max_amount query string false "最大金额（含）"
// @Param payment_method query string false "支付方式"
// @Param sort_by query string false "排序字段"
// @Param sort_dir query string false "排序方向"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	list, names, ok := h.load(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	if err := service.WriteExpensesCSV(buf, list, names); err != nil {
		InternalError(c, SafeErrorMessage(err, "生成 CSV 失败"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", exportFilename("csv")))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出消费记录为 Excel
// @Summary 导出消费记录 (Excel)
// @Description 与列表相同的筛选参数，忽略分页，末行为合计
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param start_date query string false "开始日期 (2024-01-01)"
// @Param end_date query string false "结束日期 (2024-01-31)"
// @Param category_id query int false "类别ID"
// @Param min_amount query string false "最小金额（含）"
// @Param max_amount query string false "最大金额（含）"
// @Param payment_method query string false "支付方式"
// @Param sort_by query string false "排序字段"
// @Param sort_dir query string false "排序方向"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	list, names, ok := h.load(c)
	if !ok {
		return
	}

	f, err := service.BuildExpensesWorkbook(list, names)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "生成 Excel 失败"))
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "生成 Excel 失败"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", exportFilename("xlsx")))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
