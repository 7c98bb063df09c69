package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/stalexsm/pas/internal/dto"
	"github.com/stalexsm/pas/internal/service"
	"github.com/stalexsm/pas/pkg/response"
)

// ────────────────────── 计量单位 ──────────────────────

// MeasureUnitHandler 计量单位 HTTP 处理器
type MeasureUnitHandler struct {
	muSvc service.MeasureUnitService
}

// NewMeasureUnitHandler 创建 MeasureUnitHandler
func NewMeasureUnitHandler(muSvc service.MeasureUnitService) *MeasureUnitHandler {
	return &MeasureUnitHandler{muSvc: muSvc}
}

// List GET /api/measure-units
func (h *MeasureUnitHandler) List(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	var page dto.PaginationRequest
	if !bindQuery(c, &page) {
		return
	}

	result, err := h.muSvc.List(c.Request.Context(), actor, &page)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OKPage(c, result.Items, result.Total, result.PerPage)
}

// Get GET /api/measure-units/:id
func (h *MeasureUnitHandler) Get(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	mu, err := h.muSvc.Get(c.Request.Context(), actor, id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OK(c, mu)
}

// Create POST /api/measure-units
func (h *MeasureUnitHandler) Create(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	var req dto.MeasureUnitRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.muSvc.Create(c.Request.Context(), actor, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.CreatedID(c, id)
}

// Update PATCH /api/measure-units/:id
func (h *MeasureUnitHandler) Update(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.MeasureUnitRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.muSvc.Update(c.Request.Context(), actor, id, &req); err != nil {
		handleError(c, err)
		return
	}

	response.Done(c)
}

// Delete DELETE /api/measure-units/:id
func (h *MeasureUnitHandler) Delete(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.muSvc.Delete(c.Request.Context(), actor, id); err != nil {
		handleError(c, err)
		return
	}

	response.Done(c)
}

// ────────────────────── 产品 ──────────────────────

// ProductHandler 产品 HTTP 处理器
type ProductHandler struct {
	productSvc service.ProductService
}

// NewProductHandler 创建 ProductHandler
func NewProductHandler(productSvc service.ProductService) *ProductHandler {
	return &ProductHandler{productSvc: productSvc}
}

// List GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	var page dto.PaginationRequest
	if !bindQuery(c, &page) {
		return
	}

	result, err := h.productSvc.List(c.Request.Context(), actor, &page)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OKPage(c, result.Items, result.Total, result.PerPage)
}

// Get GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.productSvc.Get(c.Request.Context(), actor, id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OK(c, p)
}

// Create POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	var req dto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.productSvc.Create(c.Request.Context(), actor, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.CreatedID(c, id)
}

// Update PATCH /api/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.productSvc.Update(c.Request.Context(), actor, id, &req); err != nil {
		handleError(c, err)
		return
	}

	response.Done(c)
}

// Delete DELETE /api/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.productSvc.Delete(c.Request.Context(), actor, id); err != nil {
		handleError(c, err)
		return
	}

	response.Done(c)
}
