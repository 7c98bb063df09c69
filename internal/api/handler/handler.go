package handler

import "github.com/stalexsm/pas/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Organization *OrganizationHandler
	MeasureUnit  *MeasureUnitHandler
	Product      *ProductHandler
	ProducedGood *ProducedGoodHandler
	Analytics    *AnalyticsHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth, svc.User),
		User:         NewUserHandler(svc.User),
		Organization: NewOrganizationHandler(svc.Organization),
		MeasureUnit:  NewMeasureUnitHandler(svc.MeasureUnit),
		Product:      NewProductHandler(svc.Product),
		ProducedGood: NewProducedGoodHandler(svc.ProducedGood),
		Analytics:    NewAnalyticsHandler(svc.Analytics),
	}
}
