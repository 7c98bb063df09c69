package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stalexsm/pas/internal/policy"
)

// CRUD 按组织范围过滤的通用数据访问接口
//
// 所有读取与删除都带 policy.Scope；范围外的记录等同于不存在（gorm.ErrRecordNotFound）。
type CRUD[T any] interface {
	Create(ctx context.Context, entity *T) error
	GetByID(ctx context.Context, scope policy.Scope, id int64) (*T, error)
	List(ctx context.Context, scope policy.Scope, offset, limit int) ([]T, int64, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, scope policy.Scope, id int64) error
}

// ScopeColumns 参与范围过滤的列（带表名前缀），为空表示该维度不过滤
type ScopeColumns struct {
	Organization string
	Author       string
	CreatedAt    string
}

// crudOptions 单个实体的表结构描述
type crudOptions struct {
	table    string
	columns  ScopeColumns
	preloads []string
	// selects 覆盖默认的 SELECT 列（用于计算列）
	selects string
}

// crudRepo CRUD 的 GORM 实现
type crudRepo[T any] struct {
	db   *gorm.DB
	opts crudOptions
}

func newCRUD[T any](db *gorm.DB, opts crudOptions) *crudRepo[T] {
	return &crudRepo[T]{db: db, opts: opts}
}

func (r *crudRepo[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error
}

func (r *crudRepo[T]) GetByID(ctx context.Context, scope policy.Scope, id int64) (*T, error) {
	var entity T
	err := r.query(ctx, scope).
		Where(r.opts.table+".id = ?", id).
		Take(&entity).Error
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *crudRepo[T]) List(ctx context.Context, scope policy.Scope, offset, limit int) ([]T, int64, error) {
	var total int64
	if err := r.scoped(ctx, scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []T
	err := r.query(ctx, scope).
		Order(r.opts.table + ".id DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, total, err
}

func (r *crudRepo[T]) Update(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error
}

func (r *crudRepo[T]) Delete(ctx context.Context, scope policy.Scope, id int64) error {
	result := r.scoped(ctx, scope).
		Where(r.opts.table+".id = ?", id).
		Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// scoped 仅带范围条件的查询（用于计数与删除）
func (r *crudRepo[T]) scoped(ctx context.Context, scope policy.Scope) *gorm.DB {
	return ApplyScope(r.db.WithContext(ctx).Model(new(T)), r.opts.columns, scope)
}

// query 带范围条件、计算列与预加载的查询
func (r *crudRepo[T]) query(ctx context.Context, scope policy.Scope) *gorm.DB {
	q := r.scoped(ctx, scope)
	if r.opts.selects != "" {
		q = q.Select(r.opts.selects)
	}
	for _, p := range r.opts.preloads {
		q = q.Preload(p)
	}
	return q
}

// ApplyScope 将读取范围翻译为 WHERE 条件
func ApplyScope(q *gorm.DB, cols ScopeColumns, scope policy.Scope) *gorm.DB {
	if scope.Restricted && cols.Organization != "" {
		if scope.OrganizationID == nil {
			// 无组织的受限主体看不到任何记录
			return q.Where("1 = 0")
		}
		q = q.Where(cols.Organization+" = ?", *scope.OrganizationID)
	}
	if scope.AuthorID != nil && cols.Author != "" {
		q = q.Where(cols.Author+" = ?", *scope.AuthorID)
	}
	if cols.CreatedAt != "" {
		if scope.From != nil {
			q = q.Where(cols.CreatedAt+" >= ?", *scope.From)
		}
		if scope.To != nil {
			q = q.Where(cols.CreatedAt+" < ?", *scope.To)
		}
	}
	return q
}
