package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/stalexsm/pas/internal/dto"
	"github.com/stalexsm/pas/internal/service"
	"github.com/stalexsm/pas/pkg/response"
)

// OrganizationHandler 组织模块 HTTP 处理器（仅平台级角色）
type OrganizationHandler struct {
	orgSvc service.OrganizationService
}

// NewOrganizationHandler 创建 OrganizationHandler
func NewOrganizationHandler(orgSvc service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgSvc: orgSvc}
}

// List 组织列表
// GET /api/organizations
func (h *OrganizationHandler) List(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	var page dto.PaginationRequest
	if !bindQuery(c, &page) {
		return
	}

	result, err := h.orgSvc.List(c.Request.Context(), actor, &page)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OKPage(c, result.Items, result.Total, result.PerPage)
}

// Get 组织详情
// GET /api/organizations/:id
func (h *OrganizationHandler) Get(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	org, err := h.orgSvc.Get(c.Request.Context(), actor, id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OK(c, org)
}

// Create 新建组织
// POST /api/organizations
func (h *OrganizationHandler) Create(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	var req dto.OrganizationRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.orgSvc.Create(c.Request.Context(), actor, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.CreatedID(c, id)
}

// Update 编辑组织
// PATCH /api/organizations/:id
func (h *OrganizationHandler) Update(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.OrganizationRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.orgSvc.Update(c.Request.Context(), actor, id, &req); err != nil {
		handleError(c, err)
		return
	}

	response.Done(c)
}
