package dto

import (
	"time"

	"github.com/stalexsm/pas/internal/model"
)

// OrganizationRequest 新建/编辑组织请求
type OrganizationRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// OrganizationResponse 组织信息
type OrganizationResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewOrganizationResponse 由模型构造响应
func NewOrganizationResponse(o *model.Organization) OrganizationResponse {
	return OrganizationResponse{ID: o.ID, Name: o.Name, CreatedAt: o.CreatedAt}
}

func organizationSelect(o *model.Organization) *model.Select {
	if o == nil {
		return nil
	}
	return &model.Select{ID: o.ID, Name: o.Name}
}
