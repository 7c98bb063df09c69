// Package testutil 测试共用的内存数据库与数据构造
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stalexsm/pas/internal/model"
	"github.com/stalexsm/pas/pkg/database"
)

// NewDB 为单个测试创建独立的内存 SQLite 并迁移表结构
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), database.GormConfig("silent"))
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取 sql.DB 失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	err = db.AutoMigrate(
		&model.Organization{},
		&model.User{},
		&model.Session{},
		&model.MeasureUnit{},
		&model.Product{},
		&model.ProducedGood{},
		&model.ProducedGoodAdjustment{},
	)
	if err != nil {
		t.Fatalf("AutoMigrate 失败: %v", err)
	}
	return db
}

// ── 数据构造 ──

// Org 创建组织
func Org(t *testing.T, db *gorm.DB, name string) *model.Organization {
	t.Helper()
	o := &model.Organization{Name: name}
	mustCreate(t, db, o)
	return o
}

// User 创建用户，passwdHash 为空时不设密码
func User(t *testing.T, db *gorm.DB, email string, role model.Role, orgID *int64, passwdHash string) *model.User {
	t.Helper()
	u := &model.User{Email: email, Fio: "Test " + string(role), Role: role, OrganizationID: orgID}
	if passwdHash != "" {
		u.Passwd = &passwdHash
	}
	mustCreate(t, db, u)
	return u
}

// MeasureUnit 创建计量单位
func MeasureUnit(t *testing.T, db *gorm.DB, name string, orgID int64) *model.MeasureUnit {
	t.Helper()
	m := &model.MeasureUnit{Name: name, OrganizationID: orgID}
	mustCreate(t, db, m)
	return m
}

// Product 创建产品
func Product(t *testing.T, db *gorm.DB, name string, unitID, orgID int64) *model.Product {
	t.Helper()
	p := &model.Product{Name: name, MeasureUnitID: unitID, OrganizationID: orgID}
	mustCreate(t, db, p)
	return p
}

// ProducedGood 创建生产记录，createdAt 为零值时取当前时间
func ProducedGood(t *testing.T, db *gorm.DB, p *model.Product, userID, cnt int64, createdAt time.Time) *model.ProducedGood {
	t.Helper()
	pg := &model.ProducedGood{ProductID: p.ID, UserID: userID, Cnt: cnt, OrganizationID: p.OrganizationID}
	if !createdAt.IsZero() {
		pg.CreatedAt = createdAt.UTC()
	}
	mustCreate(t, db, pg)
	return pg
}

// Session 创建会话
func Session(t *testing.T, db *gorm.DB, userID int64, expiresAt time.Time) uuid.UUID {
	t.Helper()
	s := &model.Session{ID: uuid.New(), UserID: userID, ExpiresAt: expiresAt.UTC()}
	mustCreate(t, db, s)
	return s.ID
}

// Ptr 取地址
func Ptr[T any](v T) *T { return &v }

func mustCreate(t *testing.T, db *gorm.DB, v interface{}) {
	t.Helper()
	if err := db.Omit(clause.Associations).Create(v).Error; err != nil {
		t.Fatalf("创建测试数据失败 %T: %v", v, err)
	}
}
