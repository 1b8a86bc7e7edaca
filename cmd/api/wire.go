//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 工作流程：
// Step 1: 编写wire.go（本文件），定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go，包含完整的依赖创建代码
// Step 4: main.go调用wire_gen.go中的InitializeApp()

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/persistence/database"
	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/storage"
	"github.com/xiebiao/bookstore-inventory/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-inventory/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-inventory/internal/interface/http/router"
)

// infrastructureSet 基础设施层依赖
// 包含：数据库连接、Redis连接、封面图存储、事件发布
var infrastructureSet = wire.NewSet(
	provideDB,
	provideRedis,
	storage.New,
	provideEventPublisher,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	database.NewBookRepository,
	database.NewCategoryRepository,
	provideCategoryLookup,
)

// domainSet 领域层依赖
// mq.enabled时服务外层包一层事件发布
var domainSet = wire.NewSet(
	provideBookService,
	provideCategoryService,
)

// middlewareSet 认证相关依赖
// TokenBlacklist同时实现吊销检查与吊销写入
var middlewareSet = wire.NewSet(
	provideJWTManager,
	redis.NewTokenBlacklist,
	wire.Bind(new(middleware.RevocationChecker), new(*redis.TokenBlacklist)),
	wire.Bind(new(handler.TokenRevoker), new(*redis.TokenBlacklist)),
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	provideBookHandler,
	handler.NewCategoryHandler,
	handler.NewAuthHandler,
)

// InitializeApp 初始化整个应用
// 返回：配置好的Gin引擎、释放数据库/Redis/MQ连接的cleanup
func InitializeApp(cfg *config.Config) (*gin.Engine, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		middlewareSet,
		handlerSet,
		router.NewEngine,
	)
	return nil, nil, nil
}
