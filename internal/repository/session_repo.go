package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stalexsm/pas/internal/model"
)

// SessionRepository 登录会话数据访问接口
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	// GetPrincipal 由未过期的会话构造当前主体，会话不存在或已过期返回 gorm.ErrRecordNotFound
	GetPrincipal(ctx context.Context, token uuid.UUID, now time.Time) (*model.CurrentUser, error)
	// Delete 删除会话，幂等
	Delete(ctx context.Context, token uuid.UUID) error
	// DeleteByUser 删除用户的全部会话，except 非空时保留该会话
	DeleteByUser(ctx context.Context, userID int64, except *uuid.UUID) (int64, error)
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

type sessionRepo struct {
	db *gorm.DB
}

// NewSessionRepo 创建 SessionRepository 实例
func NewSessionRepo(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// principalRow sessions ⋈ users 的扫描结果
type principalRow struct {
	ID             int64
	OrganizationID *int64
	Role           model.Role
	Email          string
	Fio            string
	Blocked        bool
}

func (r *sessionRepo) GetPrincipal(ctx context.Context, token uuid.UUID, now time.Time) (*model.CurrentUser, error) {
	var rows []principalRow
	err := r.db.WithContext(ctx).
		Table("sessions AS s").
		Select("u.id, u.organization_id, u.role, u.email, u.fio, u.blocked").
		Joins("JOIN users AS u ON u.id = s.user_id").
		Where("s.id = ? AND s.expires_at > ?", token, now.UTC()).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	row := rows[0]
	return &model.CurrentUser{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		Role:           row.Role,
		Email:          row.Email,
		Fio:            row.Fio,
		Blocked:        row.Blocked,
		Token:          token,
	}, nil
}

func (r *sessionRepo) Delete(ctx context.Context, token uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", token).
		Delete(&model.Session{}).Error
}

func (r *sessionRepo) DeleteByUser(ctx context.Context, userID int64, except *uuid.UUID) (int64, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if except != nil {
		q = q.Where("id <> ?", *except)
	}
	result := q.Delete(&model.Session{})
	return result.RowsAffected, result.Error
}

func (r *sessionRepo) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", now.UTC()).
		Delete(&model.Session{})
	return result.RowsAffected, result.Error
}
