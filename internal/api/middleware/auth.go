package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stalexsm/pas/internal/service"
	"github.com/stalexsm/pas/pkg/response"
)

// CurrentUserKey gin.Context 中当前主体（*model.CurrentUser）的键
const CurrentUserKey = "current_user"

// SessionAuth 会话认证中间件
// 从 Authorization: Bearer <uuid> 中提取会话令牌，每个请求重新查询会话与用户
func SessionAuth(authSvc service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		token, err := uuid.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		principal, err := authSvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUnauthorized):
				response.Unauthorized(c)
			case errors.Is(err, service.ErrAccessDenied):
				response.Forbidden(c, service.ErrAccessDenied.Error())
			default:
				_ = c.Error(err)
				response.InternalError(c)
			}
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, principal)
		c.Next()
	}
}
