package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/stalexsm/pas/internal/model"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	CRUD[model.User]
	// GetByEmail 精确（区分大小写）匹配邮箱
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
}

type userRepo struct {
	*crudRepo[model.User]
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{
		crudRepo: newCRUD[model.User](db, crudOptions{
			table:    "users",
			columns:  ScopeColumns{Organization: "users.organization_id"},
			preloads: []string{"Organization"},
		}),
	}
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Take(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"passwd":     hash,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
