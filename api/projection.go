package api

import (
	"saldo/middleware"
	"saldo/service"

	"github.com/gin-gonic/gin"
)

// ProjectionHandler 理财预测处理器
type ProjectionHandler struct {
	projections *service.ProjectionService
}

// NewProjectionHandler 创建理财预测处理器
func NewProjectionHandler(projections *service.ProjectionService) *ProjectionHandler {
	return &ProjectionHandler{projections: projections}
}

// List 获取预测列表
// @Summary 获取理财预测列表
// @Tags 理财预测
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.FinancialProjection} "获取成功"
// @Router /api/v1/projections [get]
func (h *ProjectionHandler) List(c *gin.Context) {
	list, err := h.projections.FindAll(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		handleServiceError(c, err, "查询理财预测失败")
		return
	}
	Success(c, list)
}

// Create 计算并保存预测
// @Summary 创建理财预测
// @Description 按月复利计算终值并保存
// @Tags 理财预测
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.ProjectionInput true "预测参数"
// @Success 201 {object} Response{data=models.FinancialProjection} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/projections [post]
func (h *ProjectionHandler) Create(c *gin.Context) {
	var req service.ProjectionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	projection, err := h.projections.Create(c.Request.Context(), middleware.GetCurrentUserID(c), req)
	if err != nil {
		handleServiceError(c, err, "创建理财预测失败")
		return
	}
	Created(c, projection)
}

// Calculate 试算终值
// @Summary 理财预测试算
// @Description 只计算不保存
// @Tags 理财预测
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.ProjectionInput true "预测参数"
// @Success 200 {object} Response{data=service.ProjectionResult} "计算成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/projections/calculate [post]
func (h *ProjectionHandler) Calculate(c *gin.Context) {
	var req service.ProjectionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	result, err := h.projections.Calculate(req)
	if err != nil {
		handleServiceError(c, err, "计算失败")
		return
	}
	Success(c, result)
}

// Get 获取预测详情
// @Summary 获取理财预测详情
// @Tags 理财预测
// @Produce json
// @Security BearerAuth
// @Param id path int true "预测ID"
// @Success 200 {object} Response{data=models.FinancialProjection} "获取成功"
// @Failure 403 {object} Response "无权访问"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/projections/{id} [get]
func (h *ProjectionHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	projection, err := h.projections.FindByID(c.Request.Context(), middleware.GetCurrentUserID(c), id)
	if err != nil {
		handleServiceError(c, err, "查询理财预测失败")
		return
	}
	Success(c, projection)
}

// Delete 删除预测
// @Summary 删除理财预测
// @Tags 理财预测
// @Produce json
// @Security BearerAuth
// @Param id path int true "预测ID"
// @Success 200 {object} Response "删除成功"
// @Failure 403 {object} Response "无权访问"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/projections/{id} [delete]
func (h *ProjectionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.projections.Delete(c.Request.Context(), middleware.GetCurrentUserID(c), id); err != nil {
		handleServiceError(c, err, "删除理财预测失败")
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}
