package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/stalexsm/pas/internal/dto"
	"github.com/stalexsm/pas/internal/model"
	"github.com/stalexsm/pas/internal/policy"
	"github.com/stalexsm/pas/internal/repository"
)

// AnalyticsService 生产统计业务接口
type AnalyticsService interface {
	Report(ctx context.Context, actor *model.CurrentUser, q *dto.AnalyticsQuery) ([]dto.AnalyticsRow, error)
	// Export 将统计结果导出为 .xlsx
	Export(ctx context.Context, actor *model.CurrentUser, q *dto.AnalyticsQuery) (*dto.Report, error)
}

type analyticsService struct {
	repo   *repository.Repository
	loc    *time.Location
	logger *zap.Logger
}

// NewAnalyticsService 创建 AnalyticsService 实例
func NewAnalyticsService(repo *repository.Repository, loc *time.Location, logger *zap.Logger) AnalyticsService {
	return &analyticsService{repo: repo, loc: loc, logger: logger}
}

const dateLayout = "2006-01-02"

// period 解析闭区间 [date_one, date_two]
func (s *analyticsService) period(q *dto.AnalyticsQuery) (time.Time, time.Time, error) {
	one, err := time.ParseInLocation(dateLayout, q.DateOne, s.loc)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
	two, err := time.ParseInLocation(dateLayout, q.DateTwo, s.loc)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
	if two.Before(one) {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
	return one, two, nil
}

func (s *analyticsService) Report(ctx context.Context, actor *model.CurrentUser, q *dto.AnalyticsQuery) ([]dto.AnalyticsRow, error) {
	if !policy.HasManagementAccess(actor.Role) {
		return nil, ErrForbidden
	}
	one, two, err := s.period(q)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.Analytics.Report(ctx, repository.ReportFilter{
		Scope:   policy.ReadScope(actor),
		From:    one.UTC(),
		To:      two.AddDate(0, 0, 1).UTC(),
		Product: q.Product,
		UserIDs: q.UserIDs(),
	})
	if err != nil {
		s.logger.Error("生产统计失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AnalyticsRow, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.AnalyticsRow{
			ID:      r.ID,
			Name:    r.Name,
			Measure: r.Measure,
			Fio:     r.Fio,
			Cnt:     r.Cnt,
		})
	}
	return result, nil
}

// ═══════════════════════════════════════════════════════════
// Export — 统计结果导出为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 第 1 行：A1:E1 合并的标题（期间 dd.mm.yyyy - dd.mm.yyyy）
//   - 第 2 行：表头 # | Продукт | Пользователь | Ед.измерения | Кол-во
//   - 第 3 行起：统计数据，细边框

func (s *analyticsService) Export(ctx context.Context, actor *model.CurrentUser, q *dto.AnalyticsQuery) (*dto.Report, error) {
	rows, err := s.Report(ctx, actor, q)
	if err != nil {
		return nil, err
	}
	one, two, _ := s.period(q)

	content, err := buildReport(rows, one, two)
	if err != nil {
		s.logger.Error("生成 Excel 失败", zap.Error(err))
		return nil, err
	}

	return &dto.Report{
		Filename: fmt.Sprintf("period_report_%s_%s.xlsx", one.Format("02.01.2006"), two.Format("02.01.2006")),
		Content:  content,
	}, nil
}

const reportSheet = "Sheet1"

var reportHeader = []string{"#", "Продукт", "Пользователь", "Ед.измерения", "Кол-во"}

func buildReport(rows []dto.AnalyticsRow, one, two time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// 列宽
	widths := map[string]float64{"A": 8, "B": 25, "C": 25, "D": 15, "E": 25}
	for col, w := range widths {
		if err := f.SetColWidth(reportSheet, col, col, w); err != nil {
			return nil, err
		}
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"C6C6C6"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    border,
	})
	if err != nil {
		return nil, err
	}
	textStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "right"},
		Border:    border,
	})
	if err != nil {
		return nil, err
	}
	numStyle, err := f.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return nil, err
	}

	// 标题行
	title := fmt.Sprintf("Отчет по производству товаров за период: %s - %s",
		one.Format("02.01.2006"), two.Format("02.01.2006"))
	if err := f.MergeCell(reportSheet, "A1", "E1"); err != nil {
		return nil, err
	}
	_ = f.SetCellValue(reportSheet, "A1", title)
	_ = f.SetCellStyle(reportSheet, "A1", "E1", titleStyle)
	_ = f.SetRowHeight(reportSheet, 1, 30)
	_ = f.SetRowHeight(reportSheet, 2, 20)

	// 表头
	for i, h := range reportHeader {
		_ = f.SetCellValue(reportSheet, cell(colName(i), 2), h)
	}
	_ = f.SetCellStyle(reportSheet, "A2", "E2", headerStyle)

	// 数据行
	row := 3
	for _, r := range rows {
		_ = f.SetCellValue(reportSheet, cell("A", row), r.ID)
		_ = f.SetCellValue(reportSheet, cell("B", row), r.Name)
		_ = f.SetCellValue(reportSheet, cell("C", row), r.Fio)
		_ = f.SetCellValue(reportSheet, cell("D", row), r.Measure)
		_ = f.SetCellValue(reportSheet, cell("E", row), r.Cnt)
		_ = f.SetCellStyle(reportSheet, cell("A", row), cell("D", row), textStyle)
		_ = f.SetCellStyle(reportSheet, cell("E", row), cell("E", row), numStyle)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
