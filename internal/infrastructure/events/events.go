// Package events 目录变更事件
//
// 以装饰器的方式包装图书/分类领域服务：写操作成功后发布一条事件。
// 发布失败只记日志，不影响已经完成的写操作。
package events

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Publisher 事件发布(由mq.Publisher实现)
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// 事件动作
const (
	ActionCreated     = "created"
	ActionUpdated     = "updated"
	ActionSoftDeleted = "soft_deleted"
	ActionDeleted     = "deleted"
)

// Event 事件消息体
type Event struct {
	Entity     string      `json:"entity"` // book | category
	Action     string      `json:"action"`
	ID         string      `json:"id"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

// RoutingKey entity.action，如book.created
func (e Event) RoutingKey() string {
	return e.Entity + "." + e.Action
}

var now = time.Now

func publish(ctx context.Context, pub Publisher, entity, action, id string, data interface{}) {
	event := Event{
		Entity:     entity,
		Action:     action,
		ID:         id,
		OccurredAt: now(),
		Data:       data,
	}
	if err := pub.Publish(ctx, event.RoutingKey(), event); err != nil {
		log.Warn().Err(err).
			Str("routing_key", event.RoutingKey()).
			Str("id", id).
			Msg("发布目录事件失败")
	}
}
