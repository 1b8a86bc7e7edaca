package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/config"
)

// defaultPingTimeout dial_timeout未配置时的连通性检查超时
const defaultPingTimeout = 5 * time.Second

// NewClient 创建Redis客户端并检查连通性
// Redis只存放吊销的Token，启动时连不上直接失败
func NewClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(options(cfg.Redis))

	timeout := cfg.Redis.DialTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("Redis连接失败(%s): %w", cfg.Redis.Addr(), err)
	}

	log.Info().Str("addr", cfg.Redis.Addr()).Int("db", cfg.Redis.DB).Msg("Redis连接成功")
	return client, nil
}

// options 配置 → 连接参数，0值沿用go-redis默认
func options(rc config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:         rc.Addr(),
		Password:     rc.Password,
		DB:           rc.DB,
		PoolSize:     rc.PoolSize,
		MinIdleConns: rc.MinIdleConns,
		DialTimeout:  rc.DialTimeout,
		ReadTimeout:  rc.ReadTimeout,
		WriteTimeout: rc.WriteTimeout,
	}
}
