package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/stalexsm/pas/internal/dto"
	"github.com/stalexsm/pas/internal/service"
	"github.com/stalexsm/pas/pkg/response"
)

// UserHandler 用户模块 HTTP 处理器
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建 UserHandler
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// List 用户列表
// GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	var page dto.PaginationRequest
	if !bindQuery(c, &page) {
		return
	}

	result, err := h.userSvc.List(c.Request.Context(), actor, &page)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OKPage(c, result.Items, result.Total, result.PerPage)
}

// Get 用户详情
// GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.userSvc.Get(c.Request.Context(), actor, id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OK(c, user)
}

// Create 新建用户
// POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	var req dto.UserRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.userSvc.Create(c.Request.Context(), actor, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.CreatedID(c, id)
}

// Update 编辑用户（email 不可修改）
// PATCH /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UserRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.userSvc.Update(c.Request.Context(), actor, id, &req); err != nil {
		handleError(c, err)
		return
	}

	response.Done(c)
}

// ChangePassword 修改密码
// PATCH /api/users/:id/passwd
func (h *UserHandler) ChangePassword(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.userSvc.ChangePassword(c.Request.Context(), actor, id, &req); err != nil {
		handleError(c, err)
		return
	}

	response.Done(c)
}
