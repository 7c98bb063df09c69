package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/stalexsm/pas/config"
	"github.com/stalexsm/pas/internal/dto"
	"github.com/stalexsm/pas/internal/model"
	"github.com/stalexsm/pas/internal/policy"
	"github.com/stalexsm/pas/internal/repository"
)

// UserService 用户业务接口
type UserService interface {
	List(ctx context.Context, actor *model.CurrentUser, page *dto.PaginationRequest) (*dto.Page[dto.UserResponse], error)
	Get(ctx context.Context, actor *model.CurrentUser, id int64) (*dto.UserResponse, error)
	// Current 当前登录用户的详情
	Current(ctx context.Context, actor *model.CurrentUser) (*dto.UserResponse, error)
	Create(ctx context.Context, actor *model.CurrentUser, req *dto.UserRequest) (int64, error)
	Update(ctx context.Context, actor *model.CurrentUser, id int64, req *dto.UserRequest) error
	// ChangePassword 本人或有管理权限的操作者修改密码，成功后注销目标账号的其他会话
	ChangePassword(ctx context.Context, actor *model.CurrentUser, id int64, req *dto.ChangePasswordRequest) error
}

type userService struct {
	cfg    *config.AuthConfig
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(cfg *config.AuthConfig, repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{cfg: cfg, repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *userService) List(ctx context.Context, actor *model.CurrentUser, page *dto.PaginationRequest) (*dto.Page[dto.UserResponse], error) {
	if !policy.HasManagementAccess(actor.Role) {
		return nil, ErrForbidden
	}

	users, total, err := s.repo.User.List(ctx, policy.ReadScope(actor), page.GetOffset(), page.GetPerPage())
	if err != nil {
		s.logger.Error("查询用户列表失败", zap.Error(err))
		return nil, err
	}

	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserResponse(&users[i]))
	}
	return &dto.Page[dto.UserResponse]{Items: items, Total: total, PerPage: page.GetPerPage()}, nil
}

// ────────────────────── Get ──────────────────────

func (s *userService) Get(ctx context.Context, actor *model.CurrentUser, id int64) (*dto.UserResponse, error) {
	if !policy.HasManagementAccess(actor.Role) {
		return nil, ErrForbidden
	}

	user, err := s.repo.User.GetByID(ctx, policy.ReadScope(actor), id)
	if err != nil {
		return nil, notFound(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *userService) Current(ctx context.Context, actor *model.CurrentUser) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, policy.Unscoped(), actor.ID)
	if err != nil {
		return nil, notFound(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// ────────────────────── Create ──────────────────────

func (s *userService) Create(ctx context.Context, actor *model.CurrentUser, req *dto.UserRequest) (int64, error) {
	if !policy.HasManagementAccess(actor.Role) {
		return 0, ErrForbidden
	}
	role := model.ParseRole(req.Role.String())
	if !policy.CanAssignRole(actor.Role, role) {
		return 0, ErrForbidden
	}

	orgID := policy.AssignOrganization(actor, req.OrganizationID)
	if role.RequiresOrganization() && orgID == nil {
		return 0, ErrOrganizationRequiredCreate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.DefaultPassword), s.cfg.BcryptCost)
	if err != nil {
		s.logger.Error("生成密码哈希失败", zap.Error(err))
		return 0, err
	}
	passwd := string(hash)

	user := &model.User{
		Role:           role,
		Email:          req.Email,
		Fio:            req.Fio,
		Passwd:         &passwd,
		Blocked:        req.Blocked != nil && *req.Blocked,
		OrganizationID: orgID,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		if cerr := constraintError(err); cerr != nil {
			return 0, cerr
		}
		s.logger.Error("创建用户失败", zap.Error(err))
		return 0, err
	}

	s.logger.Info("创建用户",
		zap.Int64("id", user.ID),
		zap.Int64("actor_id", actor.ID),
		zap.String("role", role.String()),
	)
	return user.ID, nil
}

// ────────────────────── Update ──────────────────────

func (s *userService) Update(ctx context.Context, actor *model.CurrentUser, id int64, req *dto.UserRequest) error {
	if !policy.HasManagementAccess(actor.Role) {
		return ErrForbidden
	}
	role := model.ParseRole(req.Role.String())
	if !policy.CanAssignRole(actor.Role, role) {
		return ErrForbidden
	}

	user, err := s.repo.User.GetByID(ctx, policy.ReadScope(actor), id)
	if err != nil {
		return notFound(err)
	}
	if !policy.CanManageUser(actor.Role, user.Role) {
		return ErrForbidden
	}

	orgID := policy.AssignOrganization(actor, req.OrganizationID)
	if role.RequiresOrganization() && orgID == nil {
		return ErrOrganizationRequiredEdit
	}

	// 邮箱不可修改
	user.Role = role
	user.Fio = req.Fio
	user.Blocked = req.Blocked != nil && *req.Blocked
	user.OrganizationID = orgID
	user.Organization = nil

	if err := s.repo.User.Update(ctx, user); err != nil {
		if cerr := constraintError(err); cerr != nil {
			return cerr
		}
		s.logger.Error("更新用户失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── ChangePassword ──────────────────────

func (s *userService) ChangePassword(ctx context.Context, actor *model.CurrentUser, id int64, req *dto.ChangePasswordRequest) error {
	self := actor.ID == id
	if !self {
		if !policy.HasManagementAccess(actor.Role) {
			return ErrForbidden
		}
		target, err := s.repo.User.GetByID(ctx, policy.ReadScope(actor), id)
		if err != nil {
			return notFound(err)
		}
		if !policy.CanManageUser(actor.Role, target.Role) {
			return ErrForbidden
		}
	}

	if req.Passwd1 != req.Passwd2 {
		return ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Passwd1), s.cfg.BcryptCost)
	if err != nil {
		s.logger.Error("生成密码哈希失败", zap.Error(err))
		return err
	}
	if err := s.repo.User.UpdatePassword(ctx, id, string(hash)); err != nil {
		return notFound(err)
	}

	// 本人修改时保留当前会话
	keep := &actor.Token
	if !self {
		keep = nil
	}
	n, err := s.repo.Session.DeleteByUser(ctx, id, keep)
	if err != nil {
		s.logger.Error("注销会话失败", zap.Int64("user_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("修改密码",
		zap.Int64("user_id", id),
		zap.Int64("actor_id", actor.ID),
		zap.Int64("revoked_sessions", n),
	)
	return nil
}

// ────────────────────── 初始化 ──────────────────────

// BootstrapDeveloper 创建 Developer 账号（命令行初始化用，不经过角色策略）
func BootstrapDeveloper(ctx context.Context, cfg *config.AuthConfig, repo *repository.Repository, email, fio, passwd string) (int64, error) {
	if email == "" || passwd == "" {
		return 0, &ValidationError{"Email и пароль обязательны!"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(passwd), cfg.BcryptCost)
	if err != nil {
		return 0, err
	}
	h := string(hash)

	user := &model.User{
		Email:  email,
		Fio:    fio,
		Role:   model.RoleDeveloper,
		Passwd: &h,
	}
	if err := repo.User.Create(ctx, user); err != nil {
		if cerr := constraintError(err); cerr != nil {
			return 0, cerr
		}
		return 0, err
	}
	return user.ID, nil
}
