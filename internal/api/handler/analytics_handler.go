package handler

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/stalexsm/pas/internal/dto"
	"github.com/stalexsm/pas/internal/service"
	"github.com/stalexsm/pas/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AnalyticsHandler 生产统计 HTTP 处理器
type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

// NewAnalyticsHandler 创建 AnalyticsHandler
func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

// Report 按产品 × 用户汇总的生产统计
// GET /api/analitics?date_one=&date_two=&product=&user=
func (h *AnalyticsHandler) Report(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	var q dto.AnalyticsQuery
	if !bindQuery(c, &q) {
		return
	}

	rows, err := h.analyticsSvc.Report(c.Request.Context(), actor, &q)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OK(c, rows)
}

// Upload 统计结果导出为 .xlsx 下载
// POST /api/upload-report?date_one=&date_two=&product=&user=
func (h *AnalyticsHandler) Upload(c *gin.Context) {
	actor, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	var q dto.AnalyticsQuery
	if !bindQuery(c, &q) {
		return
	}

	report, err := h.analyticsSvc.Export(c.Request.Context(), actor, &q)
	if err != nil {
		handleError(c, err)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s; filename*=UTF-8''%s",
		report.Filename, url.PathEscape(report.Filename)))
	c.Data(http.StatusOK, xlsxContentType, report.Content)
}
