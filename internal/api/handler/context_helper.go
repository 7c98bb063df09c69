package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stalexsm/pas/internal/api/middleware"
	"github.com/stalexsm/pas/internal/model"
	"github.com/stalexsm/pas/pkg/response"
)

// MustGetCurrentUser 从 Gin 上下文中安全提取当前主体。
// 如果认证中间件未注入主体，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetCurrentUser(c *gin.Context) (*model.CurrentUser, bool) {
	v, exists := c.Get(middleware.CurrentUserKey)
	if !exists {
		response.Unauthorized(c)
		return nil, false
	}
	u, ok := v.(*model.CurrentUser)
	if !ok || u == nil {
		response.Unauthorized(c)
		return nil, false
	}
	return u, true
}

// parseID 解析路径参数 :id，非正整数时写入 400
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, response.MsgBadRequest)
		return 0, false
	}
	return id, true
}

// bindJSON 解析请求体，失败时写入 400（超出大小限制时 413）
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		if middleware.IsBodyTooLarge(err) {
			response.Error(c, http.StatusRequestEntityTooLarge, response.MsgBodyTooLarge)
			return false
		}
		response.BadRequest(c, response.MsgBadRequest)
		return false
	}
	return true
}

// bindQuery 解析查询参数，失败时写入 400
func bindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		response.BadRequest(c, response.MsgBadRequest)
		return false
	}
	return true
}
