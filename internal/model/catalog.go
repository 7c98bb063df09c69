package model

// MeasureUnit 计量单位表 — 对应 measure_units
type MeasureUnit struct {
	ID             int64  `gorm:"primaryKey"                 json:"id"`
	Name           string `gorm:"type:varchar(255);not null" json:"name"`
	OrganizationID int64  `gorm:"not null;index"             json:"organization_id"`
	BaseModel

	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
}

// TableName 指定表名
func (MeasureUnit) TableName() string { return "measure_units" }

// Product 产品表 — 对应 products
type Product struct {
	ID             int64  `gorm:"primaryKey"                 json:"id"`
	Name           string `gorm:"type:varchar(255);not null" json:"name"`
	MeasureUnitID  int64  `gorm:"not null;index"             json:"measure_unit_id"`
	OrganizationID int64  `gorm:"not null;index"             json:"organization_id"`
	BaseModel

	MeasureUnit  *MeasureUnit  `gorm:"foreignKey:MeasureUnitID"  json:"measure_unit,omitempty"`
	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
}

// TableName 指定表名
func (Product) TableName() string { return "products" }
