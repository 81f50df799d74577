package repo

import (
	"context"

	"notification-service/ddd/domain/entity"
)

// NotificationRepository 通知仓储接口，隐藏具体持久化实现。
// 同一接收者下以 Key()（service:id）为唯一标识，重复写入覆盖旧值。
type NotificationRepository interface {
	Save(ctx context.Context, n *entity.Notification) error
	ListByUser(ctx context.Context, recipientID string) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, recipientID, key string) (*entity.Notification, error)
}

// NotificationEventPublisher 将通知投递到存储的频道总线，
// 供 fan-out bridge 订阅后推送给在线客户端。
type NotificationEventPublisher interface {
	// PublishCreated publishes to the per-service channel and, for targeted
	// notifications, additionally to the recipient's channel.
	PublishCreated(ctx context.Context, n *entity.Notification) error
	// PublishReadStateChanged publishes the updated record to the
	// recipient's channel only.
	PublishReadStateChanged(ctx context.Context, n *entity.Notification) error
}
