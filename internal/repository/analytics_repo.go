package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/stalexsm/pas/internal/model"
	"github.com/stalexsm/pas/internal/policy"
)

// ReportFilter 生产统计过滤条件，各条件以 AND 组合
type ReportFilter struct {
	Scope   policy.Scope
	From    time.Time // 含
	To      time.Time // 不含
	Product string    // 产品名子串，不区分大小写
	UserIDs []int64
}

// AnalyticsRepository 生产统计数据访问接口
type AnalyticsRepository interface {
	Report(ctx context.Context, filter ReportFilter) ([]model.ReportRow, error)
}

type analyticsRepo struct {
	db *gorm.DB
}

// NewAnalyticsRepo 创建 AnalyticsRepository 实例
func NewAnalyticsRepo(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepo{db: db}
}

const reportSelect = "p.id AS id, p.name AS name, mu.name AS measure, u.fio AS fio, " +
	"CAST(SUM(pg.cnt + COALESCE((SELECT SUM(a.cnt) FROM produced_good_adjustments AS a " +
	"WHERE a.produced_good_id = pg.id), 0)) AS BIGINT) AS cnt"

func (r *analyticsRepo) Report(ctx context.Context, filter ReportFilter) ([]model.ReportRow, error) {
	q := r.db.WithContext(ctx).
		Table("produced_goods AS pg").
		Select(reportSelect).
		Joins("JOIN products AS p ON p.id = pg.product_id").
		Joins("JOIN measure_units AS mu ON mu.id = p.measure_unit_id").
		Joins("JOIN users AS u ON u.id = pg.user_id").
		Where("pg.created_at >= ? AND pg.created_at < ?", filter.From.UTC(), filter.To.UTC())

	q = ApplyScope(q, ScopeColumns{Organization: "pg.organization_id"}, filter.Scope)

	if len(filter.UserIDs) > 0 {
		q = q.Where("u.id IN ?", filter.UserIDs)
	}
	if filter.Product != "" {
		q = q.Where(`LOWER(p.name) LIKE LOWER(?) ESCAPE '\'`, "%"+escapeLike(filter.Product)+"%")
	}

	var rows []model.ReportRow
	err := q.
		Group("p.id, p.name, mu.name, u.id, u.fio").
		Order("cnt DESC, p.id DESC").
		Scan(&rows).Error
	return rows, err
}

// escapeLike 转义 LIKE 通配符，按字面子串匹配
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(s)
}
