package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/stalexsm/pas/config"
	"github.com/stalexsm/pas/internal/dto"
	"github.com/stalexsm/pas/internal/model"
	"github.com/stalexsm/pas/internal/repository"
)

// AuthService 认证业务接口
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	// Logout 删除当前会话，幂等
	Logout(ctx context.Context, principal *model.CurrentUser) error
	// Authenticate 由 Bearer Token 解析当前主体
	Authenticate(ctx context.Context, token uuid.UUID) (*model.CurrentUser, error)
	// PurgeExpiredSessions 清理过期会话
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

type authService struct {
	cfg    *config.AuthConfig
	repo   *repository.Repository
	now    Clock
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	cfg *config.AuthConfig,
	repo *repository.Repository,
	now Clock,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		now:    now,
		logger: logger,
	}
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. 按邮箱精确查询
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	// 2. 封禁检查先于密码校验
	if user.Blocked {
		return nil, ErrAccessDenied
	}

	// 3. 验证密码 (bcrypt)
	if user.Passwd == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.Passwd), []byte(req.Passwd)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 4. 签发会话
	session := &model.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		ExpiresAt: s.now().Add(s.cfg.SessionTTL),
	}
	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.logger.Error("创建会话失败", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("用户登录", zap.Int64("user_id", user.ID))
	return &dto.TokenResponse{Token: session.ID.String()}, nil
}

// ────────────────────── Logout ──────────────────────

func (s *authService) Logout(ctx context.Context, principal *model.CurrentUser) error {
	if err := s.repo.Session.Delete(ctx, principal.Token); err != nil {
		s.logger.Error("删除会话失败", zap.Int64("user_id", principal.ID), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Authenticate ──────────────────────

func (s *authService) Authenticate(ctx context.Context, token uuid.UUID) (*model.CurrentUser, error) {
	principal, err := s.repo.Session.GetPrincipal(ctx, token, s.now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		s.logger.Error("解析会话失败", zap.Error(err))
		return nil, err
	}
	if principal.Blocked {
		return nil, ErrAccessDenied
	}
	return principal, nil
}

// ────────────────────── PurgeExpiredSessions ──────────────────────

func (s *authService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	n, err := s.repo.Session.PurgeExpired(ctx, s.now())
	if err != nil {
		s.logger.Error("清理过期会话失败", zap.Error(err))
		return 0, err
	}
	return n, nil
}
