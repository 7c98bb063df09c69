package dto

import (
	"strconv"
	"strings"
)

// AnalyticsQuery 生产统计查询参数
// DateOne / DateTwo 为 YYYY-MM-DD，闭区间
type AnalyticsQuery struct {
	DateOne string `form:"date_one" binding:"required"`
	DateTwo string `form:"date_two" binding:"required"`
	Product string `form:"product"  binding:"max=255"`
	User    string `form:"user"`
}

// UserIDs 解析 ";" 分隔的用户 ID 列表，忽略非数字片段
func (q *AnalyticsQuery) UserIDs() []int64 {
	if q.User == "" {
		return nil
	}
	var ids []int64
	for _, part := range strings.Split(q.User, ";") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// AnalyticsRow 统计结果行：产品 × 用户的合计数量（含调整）
type AnalyticsRow struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Measure string `json:"measure"`
	Fio     string `json:"fio"`
	Cnt     int64  `json:"cnt"`
}

// Report 导出文件
type Report struct {
	Filename string
	Content  []byte
}
