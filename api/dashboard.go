package api

import (
	"saldo/middleware"
	"saldo/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler 仪表盘处理器
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler 创建仪表盘处理器
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Get 获取仪表盘数据
// @Summary 获取仪表盘
// @Description 本月与上月合计、环比变化、本月按类别汇总、本月截至今日的每日汇总
// @Tags 仪表盘
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=service.Dashboard} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	d, err := h.dashboard.Get(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		handleServiceError(c, err, "获取仪表盘失败")
		return
	}
	Success(c, d)
}
