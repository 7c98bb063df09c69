package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/stalexsm/pas/internal/dto"
	"github.com/stalexsm/pas/internal/service"
	"github.com/stalexsm/pas/pkg/response"
)

// ProducedGoodHandler 生产记录 HTTP 处理器
type ProducedGoodHandler struct {
	pgSvc service.ProducedGoodService
}

// NewProducedGoodHandler 创建 ProducedGoodHandler
func NewProducedGoodHandler(pgSvc service.ProducedGoodService) *ProducedGoodHandler {
	return &ProducedGoodHandler{pgSvc: pgSvc}
}

// List 生产记录列表（User 角色仅本人当天）
// GET /api/produced-goods
func (h *ProducedGoodHandler) List(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	var page dto.PaginationRequest
	if !bindQuery(c, &page) {
		return
	}

	result, err := h.pgSvc.List(c.Request.Context(), actor, &page)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OKPage(c, result.Items, result.Total, result.PerPage)
}

// Get GET /api/produced-goods/:id
func (h *ProducedGoodHandler) Get(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	pg, err := h.pgSvc.Get(c.Request.Context(), actor, id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OK(c, pg)
}

// Create 登记生产，作者为当前主体
// POST /api/produced-goods
func (h *ProducedGoodHandler) Create(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	var req dto.ProducedGoodRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.pgSvc.Create(c.Request.Context(), actor, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.CreatedID(c, id)
}

// Update PATCH /api/produced-goods/:id
func (h *ProducedGoodHandler) Update(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ProducedGoodRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.pgSvc.Update(c.Request.Context(), actor, id, &req); err != nil {
		handleError(c, err)
		return
	}

	response.Done(c)
}

// Delete DELETE /api/produced-goods/:id
func (h *ProducedGoodHandler) Delete(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.pgSvc.Delete(c.Request.Context(), actor, id); err != nil {
		handleError(c, err)
		return
	}

	response.Done(c)
}

// AddAdjustment 添加调整量（可为负）
// POST /api/produced-goods/:id/adj
func (h *ProducedGoodHandler) AddAdjustment(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AdjustmentRequest
	if !bindJSON(c, &req) {
		return
	}

	adjID, err := h.pgSvc.AddAdjustment(c.Request.Context(), actor, id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.CreatedID(c, adjID)
}
