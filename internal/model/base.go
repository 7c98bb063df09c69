package model

import (
	"time"
)

// BaseModel 通用时间戳字段（所有业务模型嵌入）
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// Select 下拉/关联对象的简要表示 {id, name}
type Select struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
