package storage

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-inventory/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
)

// ErrStorageUnavailable 存储熔断中
var ErrStorageUnavailable = apperrors.New(apperrors.ErrCodeStorageError, "图片存储暂不可用")

// GuardedStore 给远程存储加熔断
// 对象存储故障时快速失败，不让每个创建请求都等到超时
type GuardedStore struct {
	next    book.ImageStore
	breaker *circuitbreaker.CircuitBreaker
}

// NewGuardedStore 包装store，cfg.MaxFailures为0时原样返回
func NewGuardedStore(name string, next book.ImageStore, cfg config.BreakerConfig) book.ImageStore {
	if cfg.MaxFailures == 0 {
		return next
	}

	breaker := circuitbreaker.New(name, circuitbreaker.Config{
		MaxRequests: cfg.HalfOpenMax,
		Interval:    cfg.WindowLength,
		OpenTimeout: cfg.OpenTimeout,
		ReadyToTrip: func(c circuitbreaker.Counts) bool {
			return c.ConsecutiveFailures >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("存储熔断状态变化")
		},
	})
	return &GuardedStore{next: next, breaker: breaker}
}

// Save 熔断打开时返回ErrStorageUnavailable
func (s *GuardedStore) Save(ctx context.Context, name string, content []byte) (string, error) {
	var stored string
	err := s.breaker.Execute(func() error {
		var saveErr error
		stored, saveErr = s.next.Save(ctx, name, content)
		return saveErr
	})
	if errors.Is(err, circuitbreaker.ErrOpenState) {
		return "", ErrStorageUnavailable.WithCause(err)
	}
	return stored, err
}

// State 当前熔断状态
func (s *GuardedStore) State() circuitbreaker.State {
	return s.breaker.State()
}
