package router

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stalexsm/pas/config"
	"github.com/stalexsm/pas/internal/api/handler"
	"github.com/stalexsm/pas/internal/api/middleware"
	"github.com/stalexsm/pas/internal/service"
	"github.com/stalexsm/pas/pkg/redis"
	"github.com/stalexsm/pas/pkg/response"
)

const welcomeText = "Hello! Go Development PAS!"

// Setup 初始化并返回 Gin 路由引擎
// rdb 为 nil 时登录接口不限流
func Setup(cfg *config.Config, h *handler.Handler, authSvc service.AuthService, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("请求处理 panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		response.InternalError(c)
		c.Abort()
	}))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.NoRoute(func(c *gin.Context) { response.NotFound(c) })

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, welcomeText)
	})

	// ── API ──
	api := r.Group("/api")
	api.Use(middleware.Deadline(cfg.Database.AcquireTimeout))
	{
		// 登录（无需认证）
		api.POST("/auth",
			middleware.RateLimit(rdb, cfg.Auth.LoginRateLimit, cfg.Auth.LoginRateWindow),
			h.Auth.Login)

		// 需要认证的路由，角色与组织范围由 Service 层判定
		authorized := api.Group("")
		authorized.Use(middleware.SessionAuth(authSvc))
		{
			authorized.POST("/logout", h.Auth.Logout)
			authorized.GET("/current", h.Auth.Current)

			// 组织模块
			orgs := authorized.Group("/organizations")
			{
				orgs.GET("", h.Organization.List)
				orgs.POST("", h.Organization.Create)
				orgs.GET("/:id", h.Organization.Get)
				orgs.PATCH("/:id", h.Organization.Update)
			}

			// 用户模块
			users := authorized.Group("/users")
			{
				users.GET("", h.User.List)
				users.POST("", h.User.Create)
				users.GET("/:id", h.User.Get)
				users.PATCH("/:id", h.User.Update)
				users.PATCH("/:id/passwd", h.User.ChangePassword)
			}

			// 计量单位
			units := authorized.Group("/measure-units")
			{
				units.GET("", h.MeasureUnit.List)
				units.POST("", h.MeasureUnit.Create)
				units.GET("/:id", h.MeasureUnit.Get)
				units.PATCH("/:id", h.MeasureUnit.Update)
				units.DELETE("/:id", h.MeasureUnit.Delete)
			}

			// 产品
			products := authorized.Group("/products")
			{
				products.GET("", h.Product.List)
				products.POST("", h.Product.Create)
				products.GET("/:id", h.Product.Get)
				products.PATCH("/:id", h.Product.Update)
				products.DELETE("/:id", h.Product.Delete)
			}

			// 生产记录
			goods := authorized.Group("/produced-goods")
			{
				goods.GET("", h.ProducedGood.List)
				goods.POST("", h.ProducedGood.Create)
				goods.GET("/:id", h.ProducedGood.Get)
				goods.PATCH("/:id", h.ProducedGood.Update)
				goods.DELETE("/:id", h.ProducedGood.Delete)
				goods.POST("/:id/adj", h.ProducedGood.AddAdjustment)
			}

			// 统计与导出
			authorized.GET("/analitics", h.Analytics.Report)
			authorized.POST("/upload-report", h.Analytics.Upload)
		}
	}

	return r
}
