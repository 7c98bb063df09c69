package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/stalexsm/pas/internal/dto"
	"github.com/stalexsm/pas/internal/model"
	"github.com/stalexsm/pas/internal/policy"
	"github.com/stalexsm/pas/internal/repository"
)

// OrganizationService 组织业务接口（仅平台级主体）
type OrganizationService interface {
	List(ctx context.Context, actor *model.CurrentUser, page *dto.PaginationRequest) (*dto.Page[dto.OrganizationResponse], error)
	Get(ctx context.Context, actor *model.CurrentUser, id int64) (*dto.OrganizationResponse, error)
	Create(ctx context.Context, actor *model.CurrentUser, req *dto.OrganizationRequest) (int64, error)
	Update(ctx context.Context, actor *model.CurrentUser, id int64, req *dto.OrganizationRequest) error
}

type organizationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewOrganizationService 创建 OrganizationService 实例
func NewOrganizationService(repo *repository.Repository, logger *zap.Logger) OrganizationService {
	return &organizationService{repo: repo, logger: logger}
}

func (s *organizationService) List(ctx context.Context, actor *model.CurrentUser, page *dto.PaginationRequest) (*dto.Page[dto.OrganizationResponse], error) {
	if !policy.IsElevated(actor.Role) {
		return nil, ErrForbidden
	}

	orgs, total, err := s.repo.Organization.List(ctx, policy.Unscoped(), page.GetOffset(), page.GetPerPage())
	if err != nil {
		s.logger.Error("查询组织列表失败", zap.Error(err))
		return nil, err
	}

	items := make([]dto.OrganizationResponse, 0, len(orgs))
	for i := range orgs {
		items = append(items, dto.NewOrganizationResponse(&orgs[i]))
	}
	return &dto.Page[dto.OrganizationResponse]{Items: items, Total: total, PerPage: page.GetPerPage()}, nil
}

func (s *organizationService) Get(ctx context.Context, actor *model.CurrentUser, id int64) (*dto.OrganizationResponse, error) {
	if !policy.IsElevated(actor.Role) {
		return nil, ErrForbidden
	}

	org, err := s.repo.Organization.GetByID(ctx, policy.Unscoped(), id)
	if err != nil {
		return nil, notFound(err)
	}
	resp := dto.NewOrganizationResponse(org)
	return &resp, nil
}

func (s *organizationService) Create(ctx context.Context, actor *model.CurrentUser, req *dto.OrganizationRequest) (int64, error) {
	if !policy.IsElevated(actor.Role) {
		return 0, ErrForbidden
	}

	org := &model.Organization{Name: req.Name}
	if err := s.repo.Organization.Create(ctx, org); err != nil {
		s.logger.Error("创建组织失败", zap.Error(err))
		return 0, err
	}
	return org.ID, nil
}

func (s *organizationService) Update(ctx context.Context, actor *model.CurrentUser, id int64, req *dto.OrganizationRequest) error {
	if !policy.IsElevated(actor.Role) {
		return ErrForbidden
	}

	org, err := s.repo.Organization.GetByID(ctx, policy.Unscoped(), id)
	if err != nil {
		return notFound(err)
	}
	org.Name = req.Name

	if err := s.repo.Organization.Update(ctx, org); err != nil {
		s.logger.Error("更新组织失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}
