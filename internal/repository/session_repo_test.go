package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/stalexsm/pas/internal/model"
	"github.com/stalexsm/pas/internal/repository"
	"github.com/stalexsm/pas/internal/testutil"
)

func TestSession_GetPrincipal(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewSessionRepo(db)
	ctx := context.Background()
	now := time.Now().UTC()

	org := testutil.Org(t, db, "A")
	u := testutil.User(t, db, "d@a", model.RoleDirector, &org.ID, "")
	token := testutil.Session(t, db, u.ID, now.Add(time.Hour))

	p, err := repo.GetPrincipal(ctx, token, now)
	require.NoError(t, err)
	assert.Equal(t, u.ID, p.ID)
	assert.Equal(t, model.RoleDirector, p.Role)
	require.NotNil(t, p.OrganizationID)
	assert.Equal(t, org.ID, *p.OrganizationID)
	assert.Equal(t, token, p.Token)

	_, err = repo.GetPrincipal(ctx, uuid.New(), now)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound), "未知 token 不应解析")
}

func TestSession_ExpiredDoesNotResolve(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewSessionRepo(db)
	now := time.Now().UTC()

	u := testutil.User(t, db, "a@a", model.RoleAdmin, nil, "")
	token := testutil.Session(t, db, u.ID, now.Add(-time.Minute))

	_, err := repo.GetPrincipal(context.Background(), token, now)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound), "过期会话不应解析")
}

func TestSession_DeleteIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewSessionRepo(db)
	ctx := context.Background()
	now := time.Now().UTC()

	u := testutil.User(t, db, "a@a", model.RoleAdmin, nil, "")
	token := testutil.Session(t, db, u.ID, now.Add(time.Hour))

	require.NoError(t, repo.Delete(ctx, token))
	require.NoError(t, repo.Delete(ctx, token), "重复删除不应报错")

	_, err := repo.GetPrincipal(ctx, token, now)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestSession_DeleteByUserExcept(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewSessionRepo(db)
	ctx := context.Background()
	now := time.Now().UTC()

	u := testutil.User(t, db, "a@a", model.RoleAdmin, nil, "")
	keep := testutil.Session(t, db, u.ID, now.Add(time.Hour))
	drop := testutil.Session(t, db, u.ID, now.Add(time.Hour))

	n, err := repo.DeleteByUser(ctx, u.ID, &keep)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = repo.GetPrincipal(ctx, keep, now)
	assert.NoError(t, err)
	_, err = repo.GetPrincipal(ctx, drop, now)
	assert.Error(t, err)
}

func TestSession_PurgeExpired(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewSessionRepo(db)
	ctx := context.Background()
	now := time.Now().UTC()

	u := testutil.User(t, db, "a@a", model.RoleAdmin, nil, "")
	live := testutil.Session(t, db, u.ID, now.Add(time.Hour))
	testutil.Session(t, db, u.ID, now.Add(-time.Hour))
	testutil.Session(t, db, u.ID, now.Add(-48*time.Hour))

	n, err := repo.PurgeExpired(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	_, err = repo.GetPrincipal(ctx, live, now)
	assert.NoError(t, err)
}
