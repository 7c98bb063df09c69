package dto

import (
	"time"

	"github.com/stalexsm/pas/internal/model"
)

// ── 用户模块 DTO ──

// UserRequest 新建/编辑用户请求
// 编辑时忽略 Email；OrganizationID 仅平台级操作者生效
type UserRequest struct {
	Email          string     `json:"email"           binding:"required,max=255"`
	Fio            string     `json:"fio"             binding:"max=255"`
	Role           model.Role `json:"role"`
	Blocked        *bool      `json:"blocked"`
	OrganizationID *int64     `json:"organization_id"`
}

// UserResponse 用户信息响应（脱敏）
type UserResponse struct {
	ID           int64         `json:"id"`
	Role         model.Role    `json:"role"`
	Email        string        `json:"email"`
	Fio          string        `json:"fio"`
	Blocked      bool          `json:"blocked"`
	CreatedAt    time.Time     `json:"created_at"`
	Organization *model.Select `json:"organization"`
}

// NewUserResponse 由模型构造响应
func NewUserResponse(u *model.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Role:      u.Role,
		Email:     u.Email,
		Fio:       u.Fio,
		Blocked:   u.Blocked,
		CreatedAt: u.CreatedAt,
	}
	if u.Organization != nil {
		resp.Organization = &model.Select{ID: u.Organization.ID, Name: u.Organization.Name}
	}
	return resp
}

// UserBrief 生产记录中的作者信息
type UserBrief struct {
	ID    int64  `json:"id"`
	Fio   string `json:"fio"`
	Email string `json:"email"`
}
