package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/stalexsm/pas/internal/dto"
	"github.com/stalexsm/pas/internal/model"
	"github.com/stalexsm/pas/internal/policy"
	"github.com/stalexsm/pas/internal/repository"
)

// ProducedGoodService 生产记录业务接口
type ProducedGoodService interface {
	// List User 角色仅能看到本人当天的记录
	List(ctx context.Context, actor *model.CurrentUser, page *dto.PaginationRequest) (*dto.Page[dto.ProducedGoodResponse], error)
	Get(ctx context.Context, actor *model.CurrentUser, id int64) (*dto.ProducedGoodResponse, error)
	// Create 任何主体可为本人登记，组织取自产品
	Create(ctx context.Context, actor *model.CurrentUser, req *dto.ProducedGoodRequest) (int64, error)
	Update(ctx context.Context, actor *model.CurrentUser, id int64, req *dto.ProducedGoodRequest) error
	Delete(ctx context.Context, actor *model.CurrentUser, id int64) error
	AddAdjustment(ctx context.Context, actor *model.CurrentUser, id int64, req *dto.AdjustmentRequest) (int64, error)
}

type producedGoodService struct {
	repo   *repository.Repository
	now    Clock
	loc    *time.Location
	logger *zap.Logger
}

// NewProducedGoodService 创建 ProducedGoodService 实例
// loc 为判定"当天"所用时区
func NewProducedGoodService(repo *repository.Repository, now Clock, loc *time.Location, logger *zap.Logger) ProducedGoodService {
	return &producedGoodService{repo: repo, now: now, loc: loc, logger: logger}
}

func (s *producedGoodService) scope(actor *model.CurrentUser) policy.Scope {
	return policy.ProducedGoodsScope(actor, s.now(), s.loc)
}

// ────────────────────── 查询 ──────────────────────

func (s *producedGoodService) List(ctx context.Context, actor *model.CurrentUser, page *dto.PaginationRequest) (*dto.Page[dto.ProducedGoodResponse], error) {
	goods, total, err := s.repo.ProducedGood.List(ctx, s.scope(actor), page.GetOffset(), page.GetPerPage())
	if err != nil {
		s.logger.Error("查询生产记录失败", zap.Error(err))
		return nil, err
	}

	items := make([]dto.ProducedGoodResponse, 0, len(goods))
	for i := range goods {
		items = append(items, dto.NewProducedGoodResponse(&goods[i]))
	}
	return &dto.Page[dto.ProducedGoodResponse]{Items: items, Total: total, PerPage: page.GetPerPage()}, nil
}

func (s *producedGoodService) Get(ctx context.Context, actor *model.CurrentUser, id int64) (*dto.ProducedGoodResponse, error) {
	pg, err := s.repo.ProducedGood.GetByID(ctx, s.scope(actor), id)
	if err != nil {
		return nil, notFound(err)
	}
	resp := dto.NewProducedGoodResponse(pg)
	return &resp, nil
}

// ────────────────────── 写入 ──────────────────────

func (s *producedGoodService) Create(ctx context.Context, actor *model.CurrentUser, req *dto.ProducedGoodRequest) (int64, error) {
	product, err := s.repo.Product.GetByID(ctx, policy.ReadScope(actor), req.ProductID)
	if err != nil {
		return 0, notFound(err)
	}

	pg := &model.ProducedGood{
		ProductID:      product.ID,
		UserID:         actor.ID,
		Cnt:            req.Cnt,
		OrganizationID: product.OrganizationID,
	}
	if err := s.repo.ProducedGood.Create(ctx, pg); err != nil {
		s.logger.Error("创建生产记录失败", zap.Error(err))
		return 0, err
	}
	return pg.ID, nil
}

func (s *producedGoodService) Update(ctx context.Context, actor *model.CurrentUser, id int64, req *dto.ProducedGoodRequest) error {
	if !policy.HasManagementAccess(actor.Role) {
		return ErrForbidden
	}

	scope := policy.ReadScope(actor)
	pg, err := s.repo.ProducedGood.GetByID(ctx, scope, id)
	if err != nil {
		return notFound(err)
	}
	product, err := s.repo.Product.GetByID(ctx, scope, req.ProductID)
	if err != nil {
		return notFound(err)
	}

	pg.ProductID = product.ID
	pg.Cnt = req.Cnt
	pg.OrganizationID = product.OrganizationID
	pg.Product = nil
	pg.User = nil

	if err := s.repo.ProducedGood.Update(ctx, pg); err != nil {
		s.logger.Error("更新生产记录失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *producedGoodService) Delete(ctx context.Context, actor *model.CurrentUser, id int64) error {
	if !policy.HasManagementAccess(actor.Role) {
		return ErrForbidden
	}

	if err := s.repo.ProducedGood.Delete(ctx, policy.ReadScope(actor), id); err != nil {
		if derr := deleteError(err); derr != nil {
			return derr
		}
		s.logger.Error("删除生产记录失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── AddAdjustment ──────────────────────

func (s *producedGoodService) AddAdjustment(ctx context.Context, actor *model.CurrentUser, id int64, req *dto.AdjustmentRequest) (int64, error) {
	pg, err := s.repo.ProducedGood.GetByID(ctx, s.scope(actor), id)
	if err != nil {
		return 0, notFound(err)
	}

	adj := &model.ProducedGoodAdjustment{
		ProducedGoodID: pg.ID,
		UserID:         actor.ID,
		Cnt:            req.Cnt,
	}
	if err := s.repo.ProducedGood.AddAdjustment(ctx, adj); err != nil {
		s.logger.Error("添加调整失败", zap.Int64("produced_good_id", id), zap.Error(err))
		return 0, err
	}

	s.logger.Info("生产记录调整",
		zap.Int64("produced_good_id", id),
		zap.Int64("actor_id", actor.ID),
		zap.Int64("cnt", req.Cnt),
	)
	return adj.ID, nil
}
