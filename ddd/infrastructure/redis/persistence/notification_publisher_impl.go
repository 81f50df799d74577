package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"notification-service/ddd/domain/entity"
	drepo "notification-service/ddd/domain/repo"
	"notification-service/ddd/infrastructure/redis/dao"
)

type notificationPublisherImpl struct {
	dao *dao.NotificationDao
}

// NewNotificationPublisher builds the channel-bus publisher around an
// injected client.
func NewNotificationPublisher(client *redis.Client) drepo.NotificationEventPublisher {
	return &notificationPublisherImpl{dao: dao.NewNotificationDao(client)}
}

// PublishCreated pushes the full serialized record onto the per-service
// channel and, when targeted, onto the recipient's channel as well.
func (p *notificationPublisherImpl) PublishCreated(ctx context.Context, n *entity.Notification) error {
	payload, err := json.Marshal(toPO(n))
	if err != nil {
		return fmt.Errorf("encode notification %s: %w", n.Key(), err)
	}
	if err := p.dao.Publish(ctx, dao.ServiceChannel(string(n.Service)), payload); err != nil {
		return err
	}
	if n.Broadcast() {
		return nil
	}
	return p.dao.Publish(ctx, dao.UserChannel(n.RecipientID), payload)
}

// PublishReadStateChanged pushes the updated record to the recipient only;
// re-broadcasting a read-state flip to the service channel would spam every
// connected client.
func (p *notificationPublisherImpl) PublishReadStateChanged(ctx context.Context, n *entity.Notification) error {
	if n.Broadcast() {
		return nil
	}
	payload, err := json.Marshal(toPO(n))
	if err != nil {
		return fmt.Errorf("encode notification %s: %w", n.Key(), err)
	}
	return p.dao.Publish(ctx, dao.UserChannel(n.RecipientID), payload)
}
