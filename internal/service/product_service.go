package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stalexsm/pas/internal/dto"
	"github.com/stalexsm/pas/internal/model"
	"github.com/stalexsm/pas/internal/policy"
	"github.com/stalexsm/pas/internal/repository"
)

// ProductService 产品业务接口
type ProductService interface {
	List(ctx context.Context, actor *model.CurrentUser, page *dto.PaginationRequest) (*dto.Page[dto.ProductResponse], error)
	Get(ctx context.Context, actor *model.CurrentUser, id int64) (*dto.ProductResponse, error)
	Create(ctx context.Context, actor *model.CurrentUser, req *dto.ProductRequest) (int64, error)
	Update(ctx context.Context, actor *model.CurrentUser, id int64, req *dto.ProductRequest) error
	Delete(ctx context.Context, actor *model.CurrentUser, id int64) error
}

type productService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProductService 创建 ProductService 实例
func NewProductService(repo *repository.Repository, logger *zap.Logger) ProductService {
	return &productService{repo: repo, logger: logger}
}

// List 任何已登录主体可查看本组织的产品
func (s *productService) List(ctx context.Context, actor *model.CurrentUser, page *dto.PaginationRequest) (*dto.Page[dto.ProductResponse], error) {
	products, total, err := s.repo.Product.List(ctx, policy.ReadScope(actor), page.GetOffset(), page.GetPerPage())
	if err != nil {
		s.logger.Error("查询产品列表失败", zap.Error(err))
		return nil, err
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, dto.NewProductResponse(&products[i]))
	}
	return &dto.Page[dto.ProductResponse]{Items: items, Total: total, PerPage: page.GetPerPage()}, nil
}

func (s *productService) Get(ctx context.Context, actor *model.CurrentUser, id int64) (*dto.ProductResponse, error) {
	if !policy.HasManagementAccess(actor.Role) {
		return nil, ErrForbidden
	}

	product, err := s.repo.Product.GetByID(ctx, policy.ReadScope(actor), id)
	if err != nil {
		return nil, notFound(err)
	}
	resp := dto.NewProductResponse(product)
	return &resp, nil
}

func (s *productService) Create(ctx context.Context, actor *model.CurrentUser, req *dto.ProductRequest) (int64, error) {
	if !policy.HasManagementAccess(actor.Role) {
		return 0, ErrForbidden
	}

	orgID := policy.AssignOrganization(actor, req.OrganizationID)
	if orgID == nil {
		return 0, ErrOrganizationRequiredCreate
	}
	if err := s.checkMeasureUnit(ctx, *orgID, req.MeasureUnitID); err != nil {
		return 0, err
	}

	product := &model.Product{Name: req.Name, MeasureUnitID: req.MeasureUnitID, OrganizationID: *orgID}
	if err := s.repo.Product.Create(ctx, product); err != nil {
		if cerr := constraintError(err); cerr != nil {
			return 0, cerr
		}
		s.logger.Error("创建产品失败", zap.Error(err))
		return 0, err
	}
	return product.ID, nil
}

func (s *productService) Update(ctx context.Context, actor *model.CurrentUser, id int64, req *dto.ProductRequest) error {
	if !policy.HasManagementAccess(actor.Role) {
		return ErrForbidden
	}

	product, err := s.repo.Product.GetByID(ctx, policy.ReadScope(actor), id)
	if err != nil {
		return notFound(err)
	}

	orgID := policy.AssignOrganization(actor, req.OrganizationID)
	if orgID == nil {
		return ErrOrganizationRequiredEdit
	}
	if err := s.checkMeasureUnit(ctx, *orgID, req.MeasureUnitID); err != nil {
		return err
	}

	product.Name = req.Name
	product.MeasureUnitID = req.MeasureUnitID
	product.OrganizationID = *orgID
	product.MeasureUnit = nil
	product.Organization = nil

	if err := s.repo.Product.Update(ctx, product); err != nil {
		if cerr := constraintError(err); cerr != nil {
			return cerr
		}
		s.logger.Error("更新产品失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *productService) Delete(ctx context.Context, actor *model.CurrentUser, id int64) error {
	if !policy.HasManagementAccess(actor.Role) {
		return ErrForbidden
	}

	if err := s.repo.Product.Delete(ctx, policy.ReadScope(actor), id); err != nil {
		if derr := deleteError(err); derr != nil {
			return derr
		}
		s.logger.Error("删除产品失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// checkMeasureUnit 计量单位须属于产品所在组织
func (s *productService) checkMeasureUnit(ctx context.Context, orgID, unitID int64) error {
	_, err := s.repo.MeasureUnit.GetByID(ctx, policy.Organization(orgID), unitID)
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMeasureUnitNotFound
	}
	s.logger.Error("查询计量单位失败", zap.Int64("id", unitID), zap.Error(err))
	return err
}
