package model

// ProducedGood 生产记录表 — 对应 produced_goods
type ProducedGood struct {
	ID             int64 `gorm:"primaryKey"     json:"id"`
	ProductID      int64 `gorm:"not null;index" json:"product_id"`
	UserID         int64 `gorm:"not null;index" json:"user_id"`
	Cnt            int64 `gorm:"not null"       json:"cnt"`
	OrganizationID int64 `gorm:"not null;index" json:"organization_id"`
	BaseModel

	// Adj 调整量合计，仅在查询时由子查询填充
	Adj int64 `gorm:"->;-:migration" json:"adj"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	User    *User    `gorm:"foreignKey:UserID"    json:"user,omitempty"`
}

// TableName 指定表名
func (ProducedGood) TableName() string { return "produced_goods" }

// ProducedGoodAdjustment 生产记录调整表 — 对应 produced_good_adjustments
// Cnt 可为负数
type ProducedGoodAdjustment struct {
	ID             int64 `gorm:"primaryKey"     json:"id"`
	ProducedGoodID int64 `gorm:"not null;index" json:"produced_good_id"`
	UserID         int64 `gorm:"not null"       json:"user_id"`
	Cnt            int64 `gorm:"not null"       json:"cnt"`
	BaseModel
}

// TableName 指定表名
func (ProducedGoodAdjustment) TableName() string { return "produced_good_adjustments" }
