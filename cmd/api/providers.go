package main

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
	"github.com/xiebiao/bookstore-inventory/internal/domain/category"
	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/events"
	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/persistence/database"
	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookstore-inventory/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-inventory/pkg/jwt"
	"github.com/xiebiao/bookstore-inventory/pkg/mq"
)

// provideDB 创建数据库连接，cleanup关闭连接池
func provideDB(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := database.NewDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("关闭数据库连接失败")
		}
	}
	return db, cleanup, nil
}

// provideRedis 创建Redis客户端，cleanup关闭连接
func provideRedis(cfg *config.Config) (*goredis.Client, func(), error) {
	client, err := redis.NewClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("关闭Redis连接失败")
		}
	}
	return client, cleanup, nil
}

// provideEventPublisher mq.enabled=false时返回nil，不发布事件
func provideEventPublisher(cfg *config.Config) (events.Publisher, func(), error) {
	if !cfg.MQ.Enabled {
		return nil, func() {}, nil
	}
	publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic")
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("关闭RabbitMQ连接失败")
		}
	}
	return publisher, cleanup, nil
}

// provideBookService 创建图书服务，有发布者时包装事件发布
func provideBookService(repo book.Repository, categories book.CategoryLookup, images book.ImageStore, pub events.Publisher) book.Service {
	svc := book.NewService(repo, categories, images)
	if pub == nil {
		return svc
	}
	return events.NewBookService(svc, pub)
}

// provideCategoryService 创建分类服务，有发布者时包装事件发布
func provideCategoryService(repo category.Repository, pub events.Publisher) category.Service {
	svc := category.NewService(repo)
	if pub == nil {
		return svc
	}
	return events.NewCategoryService(svc, pub)
}

// provideCategoryLookup 分类仓储兼做图书创建时的分类引用校验
func provideCategoryLookup(repo category.Repository) book.CategoryLookup {
	return repo
}

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TokenTTL)
}

// provideBookHandler 按存储驱动决定封面图访问地址前缀
func provideBookHandler(cfg *config.Config, svc book.Service) *handler.BookHandler {
	prefix := cfg.Storage.URLPrefix
	if cfg.Storage.Driver == "minio" {
		scheme := "http"
		if cfg.Storage.MinIO.UseSSL {
			scheme = "https"
		}
		prefix = fmt.Sprintf("%s://%s/%s", scheme, cfg.Storage.MinIO.Endpoint, cfg.Storage.MinIO.Bucket)
	}
	return handler.NewBookHandler(svc, prefix, cfg.Server.MaxUploadSize)
}
