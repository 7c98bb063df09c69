package service

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/stalexsm/pas/config"
	"github.com/stalexsm/pas/internal/model"
	"github.com/stalexsm/pas/internal/repository"
	"github.com/stalexsm/pas/internal/testutil"
)

// ── 测试夹具 ──

// fixture 两个组织（A / B）及各角色账号
type fixture struct {
	db   *gorm.DB
	repo *repository.Repository
	svc  *Service
	now  time.Time

	orgA, orgB *model.Organization

	dev, admin, dirA, dirB, userA, userA2 *model.User
}

const testPassword = "secret"

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		SessionTTL:      30 * 24 * time.Hour,
		BcryptCost:      bcrypt.MinCost,
		DefaultPassword: "password",
	}
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("生成哈希失败: %v", err)
	}
	return string(h)
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	repo := repository.NewRepository(db)
	f := &fixture{db: db, repo: repo, now: time.Now().UTC()}
	f.svc = newTestService(repo, func() time.Time { return f.now })

	hash := hashPassword(t, testPassword)
	f.orgA = testutil.Org(t, db, "Org A")
	f.orgB = testutil.Org(t, db, "Org B")
	f.dev = testutil.User(t, db, "dev@pas", model.RoleDeveloper, nil, hash)
	f.admin = testutil.User(t, db, "admin@pas", model.RoleAdmin, nil, hash)
	f.dirA = testutil.User(t, db, "dir@a", model.RoleDirector, &f.orgA.ID, hash)
	f.dirB = testutil.User(t, db, "dir@b", model.RoleDirector, &f.orgB.ID, hash)
	f.userA = testutil.User(t, db, "user@a", model.RoleUser, &f.orgA.ID, hash)
	f.userA2 = testutil.User(t, db, "user2@a", model.RoleUser, &f.orgA.ID, hash)
	return f
}

func newTestService(repo *repository.Repository, clock Clock) *Service {
	logger := zap.NewNop()
	cfg := testAuthConfig()
	return &Service{
		Auth:         NewAuthService(cfg, repo, clock, logger),
		User:         NewUserService(cfg, repo, logger),
		Organization: NewOrganizationService(repo, logger),
		MeasureUnit:  NewMeasureUnitService(repo, logger),
		Product:      NewProductService(repo, logger),
		ProducedGood: NewProducedGoodService(repo, clock, time.UTC, logger),
		Analytics:    NewAnalyticsService(repo, time.UTC, logger),
	}
}

// principal 以用户构造当前主体
func principal(u *model.User) *model.CurrentUser {
	return &model.CurrentUser{
		ID:             u.ID,
		OrganizationID: u.OrganizationID,
		Role:           u.Role,
		Email:          u.Email,
		Fio:            u.Fio,
		Blocked:        u.Blocked,
	}
}

func (f *fixture) countUsers(t *testing.T) int64 {
	t.Helper()
	var n int64
	if err := f.db.Model(&model.User{}).Count(&n).Error; err != nil {
		t.Fatalf("计数失败: %v", err)
	}
	return n
}
