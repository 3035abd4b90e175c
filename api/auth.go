package api

import (
	"saldo/middleware"
	"saldo/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register 用户注册
// @Summary 用户注册
// @Description 创建新用户账号并返回访问令牌，邮箱已被注册时返回 409
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body service.RegisterInput true "注册信息"
// @Success 201 {object} Response{data=service.AuthResult} "注册成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 409 {object} Response "邮箱已被注册"
// @Failure 429 {object} Response "请求过于频繁"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	result, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "注册失败")
		return
	}
	Created(c, result)
}

// Login 用户登录
// @Summary 用户登录
// @Description 邮箱密码登录获取 JWT token
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body service.LoginInput true "登录信息"
// @Success 200 {object} Response{data=service.AuthResult} "登录成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "邮箱或密码错误"
// @Failure 429 {object} Response "请求过于频繁"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "登录失败")
		return
	}
	Success(c, result)
}

// GetProfile 获取用户信息
// @Summary 获取当前用户信息
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=service.UserInfo} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	info, err := h.auth.Profile(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		handleServiceError(c, err, "获取用户信息失败")
		return
	}
	Success(c, info)
}

// ChangePassword 修改密码
// @Summary 修改密码
// @Tags 认证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.ChangePasswordInput true "密码信息"
// @Success 200 {object} Response "修改成功"
// @Failure 400 {object} Response "请求参数错误或原密码错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req service.ChangePasswordInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), middleware.GetCurrentUserID(c), req); err != nil {
		handleServiceError(c, err, "修改密码失败")
		return
	}
	SuccessWithMessage(c, "密码修改成功", nil)
}
