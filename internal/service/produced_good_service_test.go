package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stalexsm/pas/internal/dto"
	"github.com/stalexsm/pas/internal/model"
	"github.com/stalexsm/pas/internal/testutil"
)

func seedProducts(t *testing.T, f *fixture) (a, b *model.Product) {
	t.Helper()
	muA := testutil.MeasureUnit(t, f.db, "кг", f.orgA.ID)
	muB := testutil.MeasureUnit(t, f.db, "шт", f.orgB.ID)
	return testutil.Product(t, f.db, "Хлеб", muA.ID, f.orgA.ID),
		testutil.Product(t, f.db, "Коробка", muB.ID, f.orgB.ID)
}

func TestProducedGoodService_UserSeesOwnToday(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pa, _ := seedProducts(t, f)

	own := testutil.ProducedGood(t, f.db, pa, f.userA.ID, 5, f.now)
	old := testutil.ProducedGood(t, f.db, pa, f.userA.ID, 6, f.now.AddDate(0, 0, -2))
	other := testutil.ProducedGood(t, f.db, pa, f.userA2.ID, 7, f.now)

	page, err := f.svc.ProducedGood.List(ctx, principal(f.userA), &dto.PaginationRequest{PerPage: 100})
	if err != nil {
		t.Fatal(err)
	}
	if page.Total != 1 || len(page.Items) != 1 || page.Items[0].ID != own.ID {
		t.Fatalf("User 只应看到本人当天的记录，实际 %+v", page.Items)
	}
	if page.Items[0].User.ID != f.userA.ID || page.Items[0].Product.MeasureUnit.Name != "кг" {
		t.Errorf("关联信息不符: %+v", page.Items[0])
	}

	for _, id := range []int64{old.ID, other.ID} {
		if _, err := f.svc.ProducedGood.Get(ctx, principal(f.userA), id); !errors.Is(err, ErrNotFound) {
			t.Errorf("记录 %d 应不可见，实际 %v", id, err)
		}
	}

	page, err = f.svc.ProducedGood.List(ctx, principal(f.dirA), &dto.PaginationRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if page.Total != 3 {
		t.Errorf("Director 应看到本组织全部记录，实际 %d", page.Total)
	}
}

func TestProducedGoodService_Create(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pa, pb := seedProducts(t, f)

	id, err := f.svc.ProducedGood.Create(ctx, principal(f.userA), &dto.ProducedGoodRequest{ProductID: pa.ID, Cnt: 12})
	if err != nil {
		t.Fatalf("User 应能登记生产: %v", err)
	}
	got, err := f.svc.ProducedGood.Get(ctx, principal(f.userA), id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Cnt != 12 || got.User.ID != f.userA.ID || got.Product.ID != pa.ID {
		t.Errorf("记录不符: %+v", got)
	}

	if _, err := f.svc.ProducedGood.Create(ctx, principal(f.userA), &dto.ProducedGoodRequest{ProductID: pb.ID, Cnt: 1}); !errors.Is(err, ErrNotFound) {
		t.Errorf("其他组织的产品应返回 ErrNotFound，实际 %v", err)
	}

	// 平台级主体登记时组织取自产品
	id, err = f.svc.ProducedGood.Create(ctx, principal(f.admin), &dto.ProducedGoodRequest{ProductID: pb.ID, Cnt: 3})
	if err != nil {
		t.Fatal(err)
	}
	var pg model.ProducedGood
	if err := f.db.First(&pg, id).Error; err != nil {
		t.Fatal(err)
	}
	if pg.OrganizationID != f.orgB.ID {
		t.Errorf("期望组织 B，实际 %d", pg.OrganizationID)
	}
}

func TestProducedGoodService_EditDeleteRequireManagement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pa, pb := seedProducts(t, f)
	pg := testutil.ProducedGood(t, f.db, pa, f.userA.ID, 5, f.now)

	req := &dto.ProducedGoodRequest{ProductID: pa.ID, Cnt: 50}
	if err := f.svc.ProducedGood.Update(ctx, principal(f.userA), pg.ID, req); !errors.Is(err, ErrForbidden) {
		t.Errorf("User 编辑应返回 ErrForbidden，实际 %v", err)
	}
	if err := f.svc.ProducedGood.Delete(ctx, principal(f.userA), pg.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("User 删除应返回 ErrForbidden，实际 %v", err)
	}
	if err := f.svc.ProducedGood.Update(ctx, principal(f.dirB), pg.ID, req); !errors.Is(err, ErrNotFound) {
		t.Errorf("其他组织的 Director 应返回 ErrNotFound，实际 %v", err)
	}
	if err := f.svc.ProducedGood.Update(ctx, principal(f.dirA), pg.ID, &dto.ProducedGoodRequest{ProductID: pb.ID, Cnt: 1}); !errors.Is(err, ErrNotFound) {
		t.Errorf("改为其他组织的产品应返回 ErrNotFound，实际 %v", err)
	}

	if err := f.svc.ProducedGood.Update(ctx, principal(f.dirA), pg.ID, req); err != nil {
		t.Fatal(err)
	}
	got, _ := f.svc.ProducedGood.Get(ctx, principal(f.dirA), pg.ID)
	if got.Cnt != 50 {
		t.Errorf("期望 50，实际 %d", got.Cnt)
	}

	if err := f.svc.ProducedGood.Delete(ctx, principal(f.dirA), pg.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.ProducedGood.Get(ctx, principal(f.dirA), pg.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("删除后应返回 ErrNotFound，实际 %v", err)
	}
}

func TestProducedGoodService_AddAdjustment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pa, _ := seedProducts(t, f)
	pg := testutil.ProducedGood(t, f.db, pa, f.userA.ID, 10, f.now)
	old := testutil.ProducedGood(t, f.db, pa, f.userA.ID, 10, f.now.Add(-72*time.Hour))

	if _, err := f.svc.ProducedGood.AddAdjustment(ctx, principal(f.userA), pg.ID, &dto.AdjustmentRequest{Cnt: -4}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.ProducedGood.AddAdjustment(ctx, principal(f.dirA), pg.ID, &dto.AdjustmentRequest{Cnt: 1}); err != nil {
		t.Fatal(err)
	}

	got, _ := f.svc.ProducedGood.Get(ctx, principal(f.dirA), pg.ID)
	if got.Adj != -3 {
		t.Errorf("期望调整合计 -3，实际 %d", got.Adj)
	}

	if _, err := f.svc.ProducedGood.AddAdjustment(ctx, principal(f.userA), old.ID, &dto.AdjustmentRequest{Cnt: 1}); !errors.Is(err, ErrNotFound) {
		t.Errorf("User 调整往日记录应返回 ErrNotFound，实际 %v", err)
	}
	if _, err := f.svc.ProducedGood.AddAdjustment(ctx, principal(f.dirB), pg.ID, &dto.AdjustmentRequest{Cnt: 1}); !errors.Is(err, ErrNotFound) {
		t.Errorf("其他组织调整应返回 ErrNotFound，实际 %v", err)
	}
}
