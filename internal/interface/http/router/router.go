package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/bookstore-inventory/docs" // swagger文档注册
	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-inventory/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-inventory/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-inventory/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
	"github.com/xiebiao/bookstore-inventory/pkg/metrics"
	"github.com/xiebiao/bookstore-inventory/pkg/response"
)

// rootedStore 本地目录存储(storage.LocalStore)
type rootedStore interface {
	Root() string
}

// NewEngine 创建Gin引擎并注册全部路由
//
// 路由一览：
//
//	GET    /ping
//	GET    /metrics                              (metrics.enabled)
//	GET    /swagger/*any
//	GET    /uploads/*filepath                    (storage.driver=local)
//	GET    /api/v1/books                         列表
//	GET    /api/v1/books/count                   总数
//	GET    /api/v1/books/:id                     详情
//	POST   /api/v1/books                         创建      [admin]
//	PATCH  /api/v1/books/:id                     部分更新  [admin]
//	PATCH  /api/v1/books/:id/soft-delete         软删除    [admin]
//	DELETE /api/v1/books/:id                     物理删除  [admin]
//	/api/v1/categories 同上
//	POST   /api/v1/auth/revoke                   吊销Token [admin]
func NewEngine(
	cfg *config.Config,
	bookHandler *handler.BookHandler,
	categoryHandler *handler.CategoryHandler,
	authHandler *handler.AuthHandler,
	authMiddleware *middleware.AuthMiddleware,
	images book.ImageStore,
) *gin.Engine {
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	dto.RegisterValidators()

	r := gin.New()
	r.MaxMultipartMemory = cfg.Server.MaxUploadSize
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS))
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing(cfg.Tracing.ServiceName))
	}
	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
		r.Use(middleware.Metrics())
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// 生产环境建议禁用Swagger或添加访问控制
	if cfg.Server.Mode != "release" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// 静态目录与写入目录使用同一个已解析的根路径
	if local, ok := images.(rootedStore); ok && cfg.Storage.URLPrefix != "" {
		r.StaticFS(cfg.Storage.URLPrefix, http.Dir(local.Root()))
	}

	v1 := r.Group("/api/v1")
	admin := authMiddleware.RequireAdmin()
	{
		books := v1.Group("/books")
		books.GET("", bookHandler.List)
		books.GET("/count", bookHandler.Count)
		books.GET("/:id", bookHandler.Get)
		books.POST("", admin, bookHandler.Create)
		books.PATCH("/:id", admin, bookHandler.Update)
		books.PATCH("/:id/soft-delete", admin, bookHandler.SoftDelete)
		books.DELETE("/:id", admin, bookHandler.HardDelete)

		categories := v1.Group("/categories")
		categories.GET("", categoryHandler.List)
		categories.GET("/count", categoryHandler.Count)
		categories.GET("/:id", categoryHandler.Get)
		categories.POST("", admin, categoryHandler.Create)
		categories.PATCH("/:id", admin, categoryHandler.Update)
		categories.PATCH("/:id/soft-delete", admin, categoryHandler.SoftDelete)
		categories.DELETE("/:id", admin, categoryHandler.HardDelete)

		auth := v1.Group("/auth")
		auth.POST("/revoke", admin, authHandler.Revoke)
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, apperrors.ErrNotFound)
	})

	return r
}
