package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/stalexsm/pas/internal/dto"
	"github.com/stalexsm/pas/internal/testutil"
)

func TestAnalyticsService_Report(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pa, pb := seedProducts(t, f)

	day := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	testutil.ProducedGood(t, f.db, pa, f.userA.ID, 4, day)
	testutil.ProducedGood(t, f.db, pa, f.userA.ID, 6, day.AddDate(0, 0, 1))
	testutil.ProducedGood(t, f.db, pb, f.dirB.ID, 9, day)

	q := &dto.AnalyticsQuery{DateOne: "2024-05-20", DateTwo: "2024-05-21"}

	rows, err := f.svc.Analytics.Report(ctx, principal(f.dirA), q)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Cnt != 10 || rows[0].Name != "Хлеб" {
		t.Errorf("Director 应只统计本组织且日期为闭区间，实际 %+v", rows)
	}

	rows, err = f.svc.Analytics.Report(ctx, principal(f.admin), q)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Errorf("Admin 应统计全部组织，实际 %+v", rows)
	}

	if _, err := f.svc.Analytics.Report(ctx, principal(f.userA), q); !errors.Is(err, ErrForbidden) {
		t.Errorf("User 应返回 ErrForbidden，实际 %v", err)
	}
}

func TestAnalyticsService_InvalidPeriod(t *testing.T) {
	f := newFixture(t)

	cases := []dto.AnalyticsQuery{
		{DateOne: "20.05.2024", DateTwo: "2024-05-21"},
		{DateOne: "2024-05-21", DateTwo: "2024-05-20"},
	}
	for _, q := range cases {
		if _, err := f.svc.Analytics.Report(context.Background(), principal(f.admin), &q); !errors.Is(err, ErrInvalidPeriod) {
			t.Errorf("%+v 期望 ErrInvalidPeriod，实际 %v", q, err)
		}
	}
}

func TestAnalyticsService_Export(t *testing.T) {
	f := newFixture(t)
	pa, _ := seedProducts(t, f)
	testutil.ProducedGood(t, f.db, pa, f.userA.ID, 4, time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC))

	report, err := f.svc.Analytics.Export(context.Background(), principal(f.dirA),
		&dto.AnalyticsQuery{DateOne: "2024-05-01", DateTwo: "2024-05-31"})
	if err != nil {
		t.Fatalf("导出应成功: %v", err)
	}
	if report.Filename != "period_report_01.05.2024_31.05.2024.xlsx" {
		t.Errorf("文件名不符: %s", report.Filename)
	}

	// Excel .xlsx 文件以 PK (0x504B) 开头
	if len(report.Content) < 2 || report.Content[0] != 0x50 || report.Content[1] != 0x4B {
		t.Fatal("输出内容不是有效的 xlsx 文件格式（应以 PK 开头）")
	}

	x, err := excelize.OpenReader(bytes.NewReader(report.Content))
	if err != nil {
		t.Fatalf("无法解析 xlsx: %v", err)
	}
	defer x.Close()

	title, _ := x.GetCellValue(reportSheet, "A1")
	if title != "Отчет по производству товаров за период: 01.05.2024 - 31.05.2024" {
		t.Errorf("标题不符: %s", title)
	}
	header, _ := x.GetCellValue(reportSheet, "E2")
	if header != "Кол-во" {
		t.Errorf("表头不符: %s", header)
	}
	product, _ := x.GetCellValue(reportSheet, "B3")
	cnt, _ := x.GetCellValue(reportSheet, "E3")
	if product != "Хлеб" || cnt != "4" {
		t.Errorf("数据行不符: %s / %s", product, cnt)
	}
	merged, _ := x.GetMergeCells(reportSheet)
	if len(merged) != 1 || merged[0].GetStartAxis() != "A1" || merged[0].GetEndAxis() != "E1" {
		t.Errorf("标题应合并 A1:E1，实际 %+v", merged)
	}
}
