package repository

import (
	"gorm.io/gorm"

	"github.com/stalexsm/pas/internal/model"
)

// OrganizationRepository 组织数据访问接口
// 组织本身即范围单位，仅平台级主体访问，按 id 过滤
type OrganizationRepository interface {
	CRUD[model.Organization]
}

// NewOrganizationRepo 创建 OrganizationRepository 实例
func NewOrganizationRepo(db *gorm.DB) OrganizationRepository {
	return newCRUD[model.Organization](db, crudOptions{
		table:   "organizations",
		columns: ScopeColumns{Organization: "organizations.id"},
	})
}
