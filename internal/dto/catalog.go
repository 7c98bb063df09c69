package dto

import (
	"time"

	"github.com/stalexsm/pas/internal/model"
)

// ── 计量单位 ──

// MeasureUnitRequest 新建/编辑计量单位请求
type MeasureUnitRequest struct {
	Name           string `json:"name"            binding:"required,max=255"`
	OrganizationID *int64 `json:"organization_id"`
}

// MeasureUnitResponse 计量单位信息
type MeasureUnitResponse struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	CreatedAt    time.Time     `json:"created_at"`
	Organization *model.Select `json:"organization"`
}

// NewMeasureUnitResponse 由模型构造响应
func NewMeasureUnitResponse(m *model.MeasureUnit) MeasureUnitResponse {
	return MeasureUnitResponse{
		ID:           m.ID,
		Name:         m.Name,
		CreatedAt:    m.CreatedAt,
		Organization: organizationSelect(m.Organization),
	}
}

// ── 产品 ──

// ProductRequest 新建/编辑产品请求
type ProductRequest struct {
	Name           string `json:"name"            binding:"required,max=255"`
	MeasureUnitID  int64  `json:"measure_unit_id" binding:"required"`
	OrganizationID *int64 `json:"organization_id"`
}

// ProductResponse 产品信息
type ProductResponse struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	CreatedAt    time.Time     `json:"created_at"`
	Organization *model.Select `json:"organization"`
	MeasureUnit  *model.Select `json:"measure_unit"`
}

// NewProductResponse 由模型构造响应
func NewProductResponse(p *model.Product) ProductResponse {
	resp := ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		CreatedAt:    p.CreatedAt,
		Organization: organizationSelect(p.Organization),
	}
	if p.MeasureUnit != nil {
		resp.MeasureUnit = &model.Select{ID: p.MeasureUnit.ID, Name: p.MeasureUnit.Name}
	}
	return resp
}
