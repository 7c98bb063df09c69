package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Session      SessionRepository
	User         UserRepository
	Organization OrganizationRepository
	MeasureUnit  MeasureUnitRepository
	Product      ProductRepository
	ProducedGood ProducedGoodRepository
	Analytics    AnalyticsRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Session:      NewSessionRepo(db),
		User:         NewUserRepo(db),
		Organization: NewOrganizationRepo(db),
		MeasureUnit:  NewMeasureUnitRepo(db),
		Product:      NewProductRepo(db),
		ProducedGood: NewProducedGoodRepo(db),
		Analytics:    NewAnalyticsRepo(db),
	}
}
