package dto

import (
	"time"

	"github.com/stalexsm/pas/internal/model"
)

// ProducedGoodRequest 新建/编辑生产记录请求
type ProducedGoodRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Cnt       int64 `json:"cnt"`
}

// AdjustmentRequest 生产记录调整请求，Cnt 可为负
type AdjustmentRequest struct {
	Cnt int64 `json:"cnt"`
}

// ProducedGoodProduct 生产记录中的产品信息
type ProducedGoodProduct struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	MeasureUnit model.Select `json:"measure_unit"`
}

// ProducedGoodResponse 生产记录信息
type ProducedGoodResponse struct {
	ID        int64               `json:"id"`
	Cnt       int64               `json:"cnt"`
	Adj       int64               `json:"adj"`
	CreatedAt time.Time           `json:"created_at"`
	Product   ProducedGoodProduct `json:"product"`
	User      UserBrief           `json:"user"`
}

// NewProducedGoodResponse 由模型构造响应（需预加载 Product.MeasureUnit 与 User）
func NewProducedGoodResponse(pg *model.ProducedGood) ProducedGoodResponse {
	resp := ProducedGoodResponse{
		ID:        pg.ID,
		Cnt:       pg.Cnt,
		Adj:       pg.Adj,
		CreatedAt: pg.CreatedAt,
	}
	if p := pg.Product; p != nil {
		resp.Product = ProducedGoodProduct{ID: p.ID, Name: p.Name}
		if p.MeasureUnit != nil {
			resp.Product.MeasureUnit = model.Select{ID: p.MeasureUnit.ID, Name: p.MeasureUnit.Name}
		}
	}
	if u := pg.User; u != nil {
		resp.User = UserBrief{ID: u.ID, Fio: u.Fio, Email: u.Email}
	}
	return resp
}
