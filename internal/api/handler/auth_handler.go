package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/stalexsm/pas/internal/dto"
	"github.com/stalexsm/pas/internal/service"
	"github.com/stalexsm/pas/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
	userSvc service.UserService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService, userSvc service.UserService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, userSvc: userSvc}
}

// Login 用户登录
// POST /api/auth
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OK(c, result)
}

// Logout 删除当前会话
// POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), actor); err != nil {
		handleError(c, err)
		return
	}

	response.Done(c)
}

// Current 当前用户详情
// GET /api/current
func (h *AuthHandler) Current(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}

	user, err := h.userSvc.Current(c.Request.Context(), actor)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OK(c, user)
}
