package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
)

const blacklistKeyPrefix = "bookstore:token:revoked:"

// TokenBlacklist 已吊销的管理员Token
// key为Token的SHA-256摘要，TTL等于Token剩余有效期，过期后自动清理
type TokenBlacklist struct {
	client *redis.Client
}

// NewTokenBlacklist 创建Token黑名单
func NewTokenBlacklist(client *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{client: client}
}

func blacklistKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return blacklistKeyPrefix + hex.EncodeToString(sum[:])
}

// Revoke 吊销Token
// ttl<=0说明Token已过期，无需记录
func (b *TokenBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := b.client.Set(ctx, blacklistKey(token), 1, ttl).Err(); err != nil {
		return apperrors.New(apperrors.ErrCodeRedisError, "吊销Token失败").WithCause(err)
	}
	return nil
}

// IsRevoked Token是否已被吊销
func (b *TokenBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	err := b.client.Get(ctx, blacklistKey(token)).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	default:
		return false, apperrors.New(apperrors.ErrCodeRedisError, "查询Token状态失败").WithCause(err)
	}
}
