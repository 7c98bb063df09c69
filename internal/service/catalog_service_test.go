package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stalexsm/pas/internal/dto"
	"github.com/stalexsm/pas/internal/model"
	"github.com/stalexsm/pas/internal/testutil"
)

// ── Organization ──

func TestOrganizationService_ElevatedOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Organization.List(ctx, principal(f.dirA), &dto.PaginationRequest{}); !errors.Is(err, ErrForbidden) {
		t.Errorf("Director 查看组织应返回 ErrForbidden，实际 %v", err)
	}
	if _, err := f.svc.Organization.Create(ctx, principal(f.dirA), &dto.OrganizationRequest{Name: "X"}); !errors.Is(err, ErrForbidden) {
		t.Errorf("Director 创建组织应返回 ErrForbidden，实际 %v", err)
	}

	dev := principal(f.dev)
	id, err := f.svc.Organization.Create(ctx, dev, &dto.OrganizationRequest{Name: "Org C"})
	if err != nil {
		t.Fatal(err)
	}
	if err := f.svc.Organization.Update(ctx, dev, id, &dto.OrganizationRequest{Name: "Org C2"}); err != nil {
		t.Fatal(err)
	}
	got, err := f.svc.Organization.Get(ctx, dev, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Org C2" {
		t.Errorf("期望 Org C2，实际 %s", got.Name)
	}

	page, err := f.svc.Organization.List(ctx, dev, &dto.PaginationRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if page.Total != 3 {
		t.Errorf("期望 3 个组织，实际 %d", page.Total)
	}

	if err := f.svc.Organization.Update(ctx, dev, 9999, &dto.OrganizationRequest{Name: "X"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("期望 ErrNotFound，实际 %v", err)
	}
}

// ── MeasureUnit ──

func TestMeasureUnitService_CreateDetailRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	dir := principal(f.dirA)

	id, err := f.svc.MeasureUnit.Create(ctx, dir, &dto.MeasureUnitRequest{Name: "кг", OrganizationID: &f.orgB.ID})
	if err != nil {
		t.Fatalf("创建应成功: %v", err)
	}

	got, err := f.svc.MeasureUnit.Get(ctx, dir, id)
	if err != nil {
		t.Fatalf("详情应成功: %v", err)
	}
	if got.Name != "кг" || got.Organization == nil || got.Organization.ID != f.orgA.ID {
		t.Errorf("详情不符（组织应强制为 A）: %+v", got)
	}

	if _, err := f.svc.MeasureUnit.Get(ctx, principal(f.dirB), id); !errors.Is(err, ErrNotFound) {
		t.Errorf("其他组织应返回 ErrNotFound，实际 %v", err)
	}
}

func TestMeasureUnitService_RequiresOrganization(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.MeasureUnit.Create(context.Background(), principal(f.admin), &dto.MeasureUnitRequest{Name: "кг"})
	if !errors.Is(err, ErrOrganizationRequiredCreate) {
		t.Errorf("期望 ErrOrganizationRequiredCreate，实际 %v", err)
	}
}

func TestMeasureUnitService_ListOpenToUser(t *testing.T) {
	f := newFixture(t)
	testutil.MeasureUnit(t, f.db, "кг", f.orgA.ID)
	testutil.MeasureUnit(t, f.db, "шт", f.orgB.ID)

	page, err := f.svc.MeasureUnit.List(context.Background(), principal(f.userA), &dto.PaginationRequest{})
	if err != nil {
		t.Fatalf("User 应能查看计量单位: %v", err)
	}
	if page.Total != 1 || page.Items[0].Name != "кг" {
		t.Errorf("User 只应看到本组织的计量单位: %+v", page.Items)
	}

	if _, err := f.svc.MeasureUnit.Get(context.Background(), principal(f.userA), page.Items[0].ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("User 查看详情应返回 ErrForbidden，实际 %v", err)
	}
}

func TestMeasureUnitService_UpdateAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	dir := principal(f.dirA)
	mu := testutil.MeasureUnit(t, f.db, "кг", f.orgA.ID)
	used := testutil.MeasureUnit(t, f.db, "шт", f.orgA.ID)
	testutil.Product(t, f.db, "Хлеб", used.ID, f.orgA.ID)

	if err := f.svc.MeasureUnit.Update(ctx, dir, mu.ID, &dto.MeasureUnitRequest{Name: "т"}); err != nil {
		t.Fatal(err)
	}
	got, _ := f.svc.MeasureUnit.Get(ctx, dir, mu.ID)
	if got.Name != "т" {
		t.Errorf("编辑未生效: %+v", got)
	}

	if err := f.svc.MeasureUnit.Delete(ctx, principal(f.dirB), mu.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("删除其他组织的记录应返回 ErrNotFound，实际 %v", err)
	}
	if err := f.svc.MeasureUnit.Delete(ctx, dir, used.ID); !errors.Is(err, ErrInUse) {
		t.Errorf("删除被引用的记录应返回 ErrInUse，实际 %v", err)
	}
	if err := f.svc.MeasureUnit.Delete(ctx, dir, mu.ID); err != nil {
		t.Errorf("删除应成功: %v", err)
	}
}

// ── Product ──

func TestProductService_MeasureUnitMustMatchOrganization(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	muB := testutil.MeasureUnit(t, f.db, "шт", f.orgB.ID)

	_, err := f.svc.Product.Create(ctx, principal(f.dirA), &dto.ProductRequest{Name: "Хлеб", MeasureUnitID: muB.ID})
	if !errors.Is(err, ErrMeasureUnitNotFound) {
		t.Errorf("其他组织的计量单位应返回 ErrMeasureUnitNotFound，实际 %v", err)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Error("应为 ValidationError")
	}
}

func TestProductService_CreateDetailRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := principal(f.admin)
	mu := testutil.MeasureUnit(t, f.db, "шт", f.orgB.ID)

	id, err := f.svc.Product.Create(ctx, admin, &dto.ProductRequest{Name: "Коробка", MeasureUnitID: mu.ID, OrganizationID: &f.orgB.ID})
	if err != nil {
		t.Fatal(err)
	}
	got, err := f.svc.Product.Get(ctx, admin, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Коробка" || got.MeasureUnit == nil || got.MeasureUnit.ID != mu.ID ||
		got.Organization == nil || got.Organization.ID != f.orgB.ID {
		t.Errorf("详情不符: %+v", got)
	}

	mu2 := testutil.MeasureUnit(t, f.db, "кг", f.orgB.ID)
	err = f.svc.Product.Update(ctx, principal(f.dirB), id, &dto.ProductRequest{Name: "Ящик", MeasureUnitID: mu2.ID})
	if err != nil {
		t.Fatal(err)
	}
	got, _ = f.svc.Product.Get(ctx, admin, id)
	if got.Name != "Ящик" || got.MeasureUnit.ID != mu2.ID {
		t.Errorf("编辑未生效: %+v", got)
	}

	if err := f.svc.Product.Delete(ctx, principal(f.userA), id); !errors.Is(err, ErrForbidden) {
		t.Errorf("User 删除应返回 ErrForbidden，实际 %v", err)
	}
	if err := f.svc.Product.Delete(ctx, admin, id); err != nil {
		t.Errorf("删除应成功: %v", err)
	}
	if _, err := f.svc.Product.Get(ctx, admin, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("删除后应返回 ErrNotFound，实际 %v", err)
	}
}

func TestProductService_ListScoped(t *testing.T) {
	f := newFixture(t)
	muA := testutil.MeasureUnit(t, f.db, "кг", f.orgA.ID)
	muB := testutil.MeasureUnit(t, f.db, "шт", f.orgB.ID)
	testutil.Product(t, f.db, "A1", muA.ID, f.orgA.ID)
	testutil.Product(t, f.db, "B1", muB.ID, f.orgB.ID)

	orphan := &model.CurrentUser{ID: 99, Role: model.RoleDirector}
	page, err := f.svc.Product.List(context.Background(), orphan, &dto.PaginationRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if page.Total != 0 {
		t.Errorf("无组织的 Director 不应看到任何产品，实际 %d", page.Total)
	}

	page, err = f.svc.Product.List(context.Background(), principal(f.dev), &dto.PaginationRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if page.Total != 2 {
		t.Errorf("Developer 应看到全部产品，实际 %d", page.Total)
	}
}
