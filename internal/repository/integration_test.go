//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/stalexsm/pas/internal/model"
	"github.com/stalexsm/pas/internal/policy"
	"github.com/stalexsm/pas/internal/repository"
	"github.com/stalexsm/pas/pkg/database"
	pkgerrors "github.com/stalexsm/pas/pkg/errors"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=54320 user=postgres password=postgres dbname=pas_test sslmode=disable TimeZone=UTC"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), database.GormConfig("silent"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法连接测试数据库: %v\n", err)
		os.Exit(1)
	}

	sqlDB, err := testDB.DB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "获取 sql.DB 失败: %v\n", err)
		os.Exit(1)
	}
	// 使用正式迁移脚本建表（含 role 枚举与 CHECK 约束）
	if err := database.RunMigrations(sqlDB, zap.NewNop()); err != nil {
		fmt.Fprintf(os.Stderr, "迁移失败: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	os.Exit(code)
}

// setupTestData 创建基础测试数据并返回清理函数
func setupTestData(t *testing.T) (org *model.Organization, user *model.User, product *model.Product, cleanup func()) {
	t.Helper()
	ctx := context.Background()
	suffix := time.Now().UnixNano()

	org = &model.Organization{Name: fmt.Sprintf("测试组织-%d", suffix)}
	if err := testDB.WithContext(ctx).Create(org).Error; err != nil {
		t.Fatalf("创建组织失败: %v", err)
	}

	hash := "$2a$10$placeholder"
	user = &model.User{
		Email:          fmt.Sprintf("user%d@pas.test", suffix),
		Fio:            "Тестовый Пользователь",
		Role:           model.RoleUser,
		Passwd:         &hash,
		OrganizationID: &org.ID,
	}
	if err := testDB.WithContext(ctx).Omit("Organization").Create(user).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}

	unit := &model.MeasureUnit{Name: "кг", OrganizationID: org.ID}
	if err := testDB.WithContext(ctx).Omit("Organization").Create(unit).Error; err != nil {
		t.Fatalf("创建计量单位失败: %v", err)
	}

	product = &model.Product{Name: "Хлеб", MeasureUnitID: unit.ID, OrganizationID: org.ID}
	if err := testDB.WithContext(ctx).Omit("MeasureUnit", "Organization").Create(product).Error; err != nil {
		t.Fatalf("创建产品失败: %v", err)
	}

	cleanup = func() {
		testDB.Exec("DELETE FROM produced_goods WHERE organization_id = ?", org.ID)
		testDB.Exec("DELETE FROM sessions WHERE user_id = ?", user.ID)
		testDB.Exec("DELETE FROM products WHERE organization_id = ?", org.ID)
		testDB.Exec("DELETE FROM measure_units WHERE organization_id = ?", org.ID)
		testDB.Exec("DELETE FROM users WHERE organization_id = ?", org.ID)
		testDB.Exec("DELETE FROM organizations WHERE id = ?", org.ID)
	}
	return
}

// ═══════════════════════════════════════════════════════════
// Test: Constraints
// ═══════════════════════════════════════════════════════════

func TestConstraint_DirectorRequiresOrganization(t *testing.T) {
	u := &model.User{Email: fmt.Sprintf("d%d@pas.test", time.Now().UnixNano()), Role: model.RoleDirector}
	err := testDB.Omit("Organization").Create(u).Error
	if err == nil {
		testDB.Exec("DELETE FROM users WHERE id = ?", u.ID)
		t.Fatal("期望 CHECK 约束拒绝无组织的 Director")
	}
}

func TestConstraint_DuplicateEmail(t *testing.T) {
	_, user, _, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	dup := &model.User{Email: user.Email, Role: model.RoleAdmin}
	err := repo.User.Create(context.Background(), dup)
	if !pkgerrors.IsUniqueViolation(err) {
		t.Fatalf("期望唯一约束冲突，实际 %v", err)
	}
}

func TestConstraint_DeleteReferencedProduct(t *testing.T) {
	org, user, product, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	pg := &model.ProducedGood{ProductID: product.ID, UserID: user.ID, Cnt: 1, OrganizationID: org.ID}
	if err := repo.ProducedGood.Create(ctx, pg); err != nil {
		t.Fatalf("创建生产记录失败: %v", err)
	}

	err := repo.Product.Delete(ctx, policy.Organization(org.ID), product.ID)
	if !pkgerrors.IsForeignKeyViolation(err) {
		t.Fatalf("期望外键冲突，实际 %v", err)
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Session ⋈ User
// ═══════════════════════════════════════════════════════════

func TestSession_RoleEnumRoundTrip(t *testing.T) {
	_, user, _, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()
	now := time.Now().UTC()

	s := &model.Session{ID: uuid.New(), UserID: user.ID, ExpiresAt: now.Add(time.Hour)}
	if err := repo.Session.Create(ctx, s); err != nil {
		t.Fatalf("创建会话失败: %v", err)
	}

	p, err := repo.Session.GetPrincipal(ctx, s.ID, now)
	if err != nil {
		t.Fatalf("解析会话失败: %v", err)
	}
	if p.Role != model.RoleUser {
		t.Errorf("期望角色 User，实际 %s", p.Role)
	}

	if _, err := repo.Session.GetPrincipal(ctx, s.ID, now.Add(2*time.Hour)); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("过期会话不应解析，实际 %v", err)
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Analytics
// ═══════════════════════════════════════════════════════════

func TestAnalytics_NumericSum(t *testing.T) {
	org, user, product, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	pg := &model.ProducedGood{ProductID: product.ID, UserID: user.ID, Cnt: 7, OrganizationID: org.ID}
	if err := repo.ProducedGood.Create(ctx, pg); err != nil {
		t.Fatalf("创建生产记录失败: %v", err)
	}
	if err := repo.ProducedGood.AddAdjustment(ctx, &model.ProducedGoodAdjustment{ProducedGoodID: pg.ID, UserID: user.ID, Cnt: 3}); err != nil {
		t.Fatalf("添加调整失败: %v", err)
	}

	from, to := policy.DayBounds(time.Now(), time.UTC)
	rows, err := repo.Analytics.Report(ctx, repository.ReportFilter{
		Scope:   policy.Organization(org.ID),
		From:    from,
		To:      to,
		Product: "Хлеб",
	})
	if err != nil {
		t.Fatalf("统计失败: %v", err)
	}
	if len(rows) != 1 || rows[0].Cnt != 10 {
		t.Fatalf("期望 1 行合计 10，实际 %+v", rows)
	}
}
