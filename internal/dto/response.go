package dto

// ── 分页请求 ──

const (
	defaultPerPage = 15
	maxPerPage     = 100
)

// PaginationRequest 通用分页参数 ?page=&per_page=
type PaginationRequest struct {
	Page    int `form:"page"     binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1,max=100"`
}

// GetPage 获取页码（含默认值）
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetPerPage 获取每页数量（含默认值与上限）
func (p *PaginationRequest) GetPerPage() int {
	switch {
	case p.PerPage <= 0:
		return defaultPerPage
	case p.PerPage > maxPerPage:
		return maxPerPage
	default:
		return p.PerPage
	}
}

// GetOffset 计算偏移量
func (p *PaginationRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPerPage()
}

// Page 一页数据与总条数，由 Handler 换算为 {cnt, items}
type Page[T any] struct {
	Items   []T
	Total   int64
	PerPage int
}
