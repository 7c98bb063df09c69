package model

// ReportRow 生产统计行：产品 × 用户的合计数量（含调整）
type ReportRow struct {
	ID      int64
	Name    string
	Measure string
	Fio     string
	Cnt     int64
}
