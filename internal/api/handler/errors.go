package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stalexsm/pas/internal/service"
	"github.com/stalexsm/pas/pkg/response"
)

// handleError 将业务错误映射为 HTTP 响应
// 未识别的错误一律 500，原始错误仅记录到 gin.Context 由日志中间件输出
func handleError(c *gin.Context, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		response.BadRequest(c, ve.Message)
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrPasswordMismatch):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		response.Unauthorized(c)
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrAccessDenied):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c)
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.MsgInternal)
	}
}
