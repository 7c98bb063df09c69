package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// Deadline 为请求上下文设置截止时间
// 仓储层调用均使用 WithContext，连接池耗尽时等待不会超过 timeout
func Deadline(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
