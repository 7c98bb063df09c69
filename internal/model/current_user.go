package model

import "github.com/google/uuid"

// CurrentUser 当前请求的认证主体
//
// 每个请求由 sessions ⋈ users 重新构造，不缓存、不修改，请求结束即丢弃。
type CurrentUser struct {
	ID             int64     `json:"id"`
	OrganizationID *int64    `json:"organization_id"`
	Role           Role      `json:"role"`
	Email          string    `json:"email"`
	Fio            string    `json:"fio"`
	Blocked        bool      `json:"blocked"`
	Token          uuid.UUID `json:"-"`
}
