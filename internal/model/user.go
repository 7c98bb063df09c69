package model

// User 用户表 — 对应 users
type User struct {
	ID             int64   `gorm:"primaryKey"                         json:"id"`
	Role           Role    `gorm:"type:varchar(20);not null;default:'User'" json:"role"`
	Email          string  `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Fio            string  `gorm:"type:varchar(255);not null;default:''" json:"fio"`
	Passwd         *string `gorm:"type:varchar(255)"                  json:"-"`
	Blocked        bool    `gorm:"not null;default:false"             json:"blocked"`
	OrganizationID *int64  `gorm:"index"                              json:"organization_id"`
	BaseModel

	// 关联
	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }
