package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/stalexsm/pas/config"
	"github.com/stalexsm/pas/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth         AuthService
	User         UserService
	Organization OrganizationService
	MeasureUnit  MeasureUnitService
	Product      ProductService
	ProducedGood ProducedGoodService
	Analytics    AnalyticsService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	logger *zap.Logger,
) *Service {
	clock := func() time.Time { return time.Now().UTC() }
	loc := cfg.Report.Location()

	return &Service{
		Auth:         NewAuthService(&cfg.Auth, repo, clock, logger),
		User:         NewUserService(&cfg.Auth, repo, logger),
		Organization: NewOrganizationService(repo, logger),
		MeasureUnit:  NewMeasureUnitService(repo, logger),
		Product:      NewProductService(repo, logger),
		ProducedGood: NewProducedGoodService(repo, clock, loc, logger),
		Analytics:    NewAnalyticsService(repo, loc, logger),
	}
}

// Clock 当前时间来源（测试中可固定）
type Clock func() time.Time
