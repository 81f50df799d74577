package persistence

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"notification-service/ddd/domain/entity"
	drepo "notification-service/ddd/domain/repo"
	"notification-service/ddd/infrastructure/redis/dao"
	"notification-service/ddd/infrastructure/redis/po"
	"notification-service/pkg/errno"
)

type notificationRepositoryImpl struct {
	dao *dao.NotificationDao
}

// NewNotificationRepository builds the redis-backed repository around an
// injected client.
func NewNotificationRepository(client *redis.Client) drepo.NotificationRepository {
	return &notificationRepositoryImpl{dao: dao.NewNotificationDao(client)}
}

func (r *notificationRepositoryImpl) Save(ctx context.Context, n *entity.Notification) error {
	ttl := time.Duration(0)
	if n.ExpiresAt != nil {
		ttl = time.Until(*n.ExpiresAt)
		if ttl <= 0 {
			// Born expired; nothing to store.
			return nil
		}
	}
	return r.dao.Save(ctx, toPO(n), ttl)
}

func (r *notificationRepositoryImpl) ListByUser(ctx context.Context, recipientID string) ([]*entity.Notification, error) {
	pos, err := r.dao.ListByUser(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	res := make([]*entity.Notification, 0, len(pos))
	for i := range pos {
		res = append(res, toEntity(&pos[i]))
	}
	return res, nil
}

func (r *notificationRepositoryImpl) MarkRead(ctx context.Context, recipientID, key string) (*entity.Notification, error) {
	p, err := r.dao.Get(ctx, recipientID, key)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errno.ErrNotificationNotFound
	}

	n := toEntity(p)
	if n.Read {
		// Already read; the transition is one-way so this is a no-op.
		return n, nil
	}
	n.MarkAsRead()
	if err := r.dao.Update(ctx, toPO(n)); err != nil {
		return nil, err
	}
	return n, nil
}

func toPO(n *entity.Notification) *po.Notification {
	return &po.Notification{
		ID:          n.ID,
		Service:     string(n.Service),
		Type:        string(n.Type),
		Title:       n.Title,
		Message:     n.Message,
		RecipientID: n.RecipientID,
		Data:        n.Data,
		Read:        n.Read,
		CreatedAt:   n.CreatedAt,
		ReadAt:      n.ReadAt,
		ExpiresAt:   n.ExpiresAt,
	}
}

func toEntity(p *po.Notification) *entity.Notification {
	return &entity.Notification{
		ID:          p.ID,
		Service:     entity.Service(p.Service),
		Type:        entity.Severity(p.Type),
		Title:       p.Title,
		Message:     p.Message,
		RecipientID: p.RecipientID,
		Data:        p.Data,
		Read:        p.Read,
		CreatedAt:   p.CreatedAt,
		ReadAt:      p.ReadAt,
		ExpiresAt:   p.ExpiresAt,
	}
}
