package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/stalexsm/pas/internal/dto"
	"github.com/stalexsm/pas/internal/model"
	"github.com/stalexsm/pas/internal/policy"
	"github.com/stalexsm/pas/internal/repository"
)

// MeasureUnitService 计量单位业务接口
type MeasureUnitService interface {
	List(ctx context.Context, actor *model.CurrentUser, page *dto.PaginationRequest) (*dto.Page[dto.MeasureUnitResponse], error)
	Get(ctx context.Context, actor *model.CurrentUser, id int64) (*dto.MeasureUnitResponse, error)
	Create(ctx context.Context, actor *model.CurrentUser, req *dto.MeasureUnitRequest) (int64, error)
	Update(ctx context.Context, actor *model.CurrentUser, id int64, req *dto.MeasureUnitRequest) error
	Delete(ctx context.Context, actor *model.CurrentUser, id int64) error
}

type measureUnitService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMeasureUnitService 创建 MeasureUnitService 实例
func NewMeasureUnitService(repo *repository.Repository, logger *zap.Logger) MeasureUnitService {
	return &measureUnitService{repo: repo, logger: logger}
}

// List 任何已登录主体可查看本组织的计量单位
func (s *measureUnitService) List(ctx context.Context, actor *model.CurrentUser, page *dto.PaginationRequest) (*dto.Page[dto.MeasureUnitResponse], error) {
	units, total, err := s.repo.MeasureUnit.List(ctx, policy.ReadScope(actor), page.GetOffset(), page.GetPerPage())
	if err != nil {
		s.logger.Error("查询计量单位列表失败", zap.Error(err))
		return nil, err
	}

	items := make([]dto.MeasureUnitResponse, 0, len(units))
	for i := range units {
		items = append(items, dto.NewMeasureUnitResponse(&units[i]))
	}
	return &dto.Page[dto.MeasureUnitResponse]{Items: items, Total: total, PerPage: page.GetPerPage()}, nil
}

func (s *measureUnitService) Get(ctx context.Context, actor *model.CurrentUser, id int64) (*dto.MeasureUnitResponse, error) {
	if !policy.HasManagementAccess(actor.Role) {
		return nil, ErrForbidden
	}

	unit, err := s.repo.MeasureUnit.GetByID(ctx, policy.ReadScope(actor), id)
	if err != nil {
		return nil, notFound(err)
	}
	resp := dto.NewMeasureUnitResponse(unit)
	return &resp, nil
}

func (s *measureUnitService) Create(ctx context.Context, actor *model.CurrentUser, req *dto.MeasureUnitRequest) (int64, error) {
	if !policy.HasManagementAccess(actor.Role) {
		return 0, ErrForbidden
	}

	orgID := policy.AssignOrganization(actor, req.OrganizationID)
	if orgID == nil {
		return 0, ErrOrganizationRequiredCreate
	}

	unit := &model.MeasureUnit{Name: req.Name, OrganizationID: *orgID}
	if err := s.repo.MeasureUnit.Create(ctx, unit); err != nil {
		if cerr := constraintError(err); cerr != nil {
			return 0, cerr
		}
		s.logger.Error("创建计量单位失败", zap.Error(err))
		return 0, err
	}
	return unit.ID, nil
}

func (s *measureUnitService) Update(ctx context.Context, actor *model.CurrentUser, id int64, req *dto.MeasureUnitRequest) error {
	if !policy.HasManagementAccess(actor.Role) {
		return ErrForbidden
	}

	unit, err := s.repo.MeasureUnit.GetByID(ctx, policy.ReadScope(actor), id)
	if err != nil {
		return notFound(err)
	}

	orgID := policy.AssignOrganization(actor, req.OrganizationID)
	if orgID == nil {
		return ErrOrganizationRequiredEdit
	}
	unit.Name = req.Name
	unit.OrganizationID = *orgID
	unit.Organization = nil

	if err := s.repo.MeasureUnit.Update(ctx, unit); err != nil {
		if cerr := constraintError(err); cerr != nil {
			return cerr
		}
		s.logger.Error("更新计量单位失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *measureUnitService) Delete(ctx context.Context, actor *model.CurrentUser, id int64) error {
	if !policy.HasManagementAccess(actor.Role) {
		return ErrForbidden
	}

	if err := s.repo.MeasureUnit.Delete(ctx, policy.ReadScope(actor), id); err != nil {
		if derr := deleteError(err); derr != nil {
			return derr
		}
		s.logger.Error("删除计量单位失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}
