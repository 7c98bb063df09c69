package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/stalexsm/pas/internal/model"
)

// ProducedGoodRepository 生产记录数据访问接口
type ProducedGoodRepository interface {
	CRUD[model.ProducedGood]
	AddAdjustment(ctx context.Context, adj *model.ProducedGoodAdjustment) error
}

type producedGoodRepo struct {
	*crudRepo[model.ProducedGood]
}

// adj 为调整量合计，以相关子查询计算
const producedGoodSelect = "produced_goods.*, " +
	"(SELECT COALESCE(SUM(a.cnt), 0) FROM produced_good_adjustments AS a " +
	"WHERE a.produced_good_id = produced_goods.id) AS adj"

// NewProducedGoodRepo 创建 ProducedGoodRepository 实例
func NewProducedGoodRepo(db *gorm.DB) ProducedGoodRepository {
	return &producedGoodRepo{
		crudRepo: newCRUD[model.ProducedGood](db, crudOptions{
			table: "produced_goods",
			columns: ScopeColumns{
				Organization: "produced_goods.organization_id",
				Author:       "produced_goods.user_id",
				CreatedAt:    "produced_goods.created_at",
			},
			preloads: []string{"Product.MeasureUnit", "User"},
			selects:  producedGoodSelect,
		}),
	}
}

func (r *producedGoodRepo) AddAdjustment(ctx context.Context, adj *model.ProducedGoodAdjustment) error {
	return r.db.WithContext(ctx).Create(adj).Error
}
