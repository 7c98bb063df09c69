package model

import (
	"time"

	"github.com/google/uuid"
)

// Session 登录会话表 — 对应 sessions
// ID 即客户端持有的 Bearer Token
type Session struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"                json:"id"`
	UserID    int64     `gorm:"not null;index"                      json:"user_id"`
	ExpiresAt time.Time `gorm:"not null;index"                      json:"expires_at"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"  json:"created_at"`
}

// TableName 指定表名
func (Session) TableName() string { return "sessions" }

// Expired 会话是否已过期
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
