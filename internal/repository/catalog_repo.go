package repository

import (
	"gorm.io/gorm"

	"github.com/stalexsm/pas/internal/model"
)

// MeasureUnitRepository 计量单位数据访问接口
type MeasureUnitRepository interface {
	CRUD[model.MeasureUnit]
}

// NewMeasureUnitRepo 创建 MeasureUnitRepository 实例
func NewMeasureUnitRepo(db *gorm.DB) MeasureUnitRepository {
	return newCRUD[model.MeasureUnit](db, crudOptions{
		table:    "measure_units",
		columns:  ScopeColumns{Organization: "measure_units.organization_id"},
		preloads: []string{"Organization"},
	})
}

// ProductRepository 产品数据访问接口
type ProductRepository interface {
	CRUD[model.Product]
}

// NewProductRepo 创建 ProductRepository 实例
func NewProductRepo(db *gorm.DB) ProductRepository {
	return newCRUD[model.Product](db, crudOptions{
		table:    "products",
		columns:  ScopeColumns{Organization: "products.organization_id"},
		preloads: []string{"MeasureUnit", "Organization"},
	})
}
