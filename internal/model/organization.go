package model

// Organization 组织表 — 对应 organizations（租户单位）
type Organization struct {
	ID   int64  `gorm:"primaryKey"                 json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`
	BaseModel
}

// TableName 指定表名
func (Organization) TableName() string { return "organizations" }
