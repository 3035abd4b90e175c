package api

import (
	"saldo/middleware"
	"saldo/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 消费类别处理器
type CategoryHandler struct {
	categories *service.CategoryService
}

// NewCategoryHandler 创建类别处理器
func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List 获取类别列表
// @Summary 获取消费类别列表
// @Description 按名称排序返回当前用户的全部类别
// @Tags 消费类别
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Category} "获取成功"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	list, err := h.categories.FindAll(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		handleServiceError(c, err, "查询类别失败")
		return
	}
	Success(c, list)
}

// Create 创建类别
// @Summary 创建消费类别
// @Tags 消费类别
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CategoryInput true "类别信息"
// @Success 201 {object} Response{data=models.Category} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req service.CategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	category, err := h.categories.Create(c.Request.Context(), middleware.GetCurrentUserID(c), req)
	if err != nil {
		handleServiceError(c, err, "创建类别失败")
		return
	}
	Created(c, category)
}

// Get 获取类别详情
// @Summary 获取消费类别详情
// @Tags 消费类别
// @Produce json
// @Security BearerAuth
// @Param id path int true "类别ID"
// @Success 200 {object} Response{data=models.Category} "获取成功"
// @Failure 403 {object} Response "无权访问"
// @Failure 404 {object} Response "类别不存在"
// @Router /api/v1/categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := h.categories.FindByID(c.Request.Context(), middleware.GetCurrentUserID(c), id)
	if err != nil {
		handleServiceError(c, err, "查询类别失败")
		return
	}
	Success(c, category)
}

// Update 更新类别
// @Summary 更新消费类别
// @Tags 消费类别
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "类别ID"
// @Param request body service.CategoryInput true "类别信息"
// @Success 200 {object} Response{data=models.Category} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 403 {object} Response "无权访问"
// @Failure 404 {object} Response "类别不存在"
// @Router /api/v1/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.CategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	category, err := h.categories.Update(c.Request.Context(), middleware.GetCurrentUserID(c), id, req)
	if err != nil {
		handleServiceError(c, err, "更新类别失败")
		return
	}
	SuccessWithMessage(c, "更新成功", category)
}

// Delete 删除类别
// @Summary 删除消费类别
// @Description 类别下仍有消费记录时返回 409
// @Tags 消费类别
// @Produce json
// @Security BearerAuth
// @Param id path int true "类别ID"
// @Success 200 {object} Response "删除成功"
// @Failure 403 {object} Response "无权访问"
// @Failure 404 {object} Response "类别不存在"
// @Failure 409 {object} Response "类别仍被引用"
// @Router /api/v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.categories.Delete(c.Request.Context(), middleware.GetCurrentUserID(c), id); err != nil {
		handleServiceError(c, err, "删除类别失败")
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}
