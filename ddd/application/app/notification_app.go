package app

import (
	"context"
	"errors"

	"notification-service/ddd/application/cqe"
	"notification-service/ddd/application/dto"
	drepo "notification-service/ddd/domain/repo"
	"notification-service/pkg/assert"
	"notification-service/pkg/errno"
	"notification-service/pkg/logger"
)

// NotificationApp 应用服务接口，编排通知相关用例。
type NotificationApp interface {
	// Send ingests one notification and returns its composite key.
	Send(ctx context.Context, req *cqe.SendNotificationReq) (string, error)
	ListNotifications(ctx context.Context, recipientID string, req *cqe.ListNotificationsReq) (*dto.ListNotificationsResponse, error)
	MarkRead(ctx context.Context, recipientID string, req *cqe.MarkReadReq) error
}

type notificationAppImpl struct {
	repo      drepo.NotificationRepository
	publisher drepo.NotificationEventPublisher
}

// NewNotificationApp wires the application service with its injected ports.
func NewNotificationApp(repo drepo.NotificationRepository, publisher drepo.NotificationEventPublisher) NotificationApp {
	assert.NotNil(repo)
	assert.NotNil(publisher)
	return &notificationAppImpl{repo: repo, publisher: publisher}
}

// Send 校验并落库（有接收者时），随后发布到频道总线。
// 推送失败只记日志：记录已经持久化，查询接口依旧可见。
func (a *notificationAppImpl) Send(ctx context.Context, req *cqe.SendNotificationReq) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	n := req.ToEntity()

	if !n.Broadcast() {
		if err := a.repo.Save(ctx, n); err != nil {
			return "", errno.NewSimpleBizError(errno.ErrStoreUnavailable, err)
		}
	}

	if err := a.publisher.PublishCreated(ctx, n); err != nil {
		logger.WithContext(ctx).Errorf("notification: publish failed key=%s recipient=%s error=%v",
			n.Key(), n.RecipientID, err)
	}
	return n.Key(), nil
}

// ListNotifications 读取接收者的全部记录后在内存中过滤/分页。
func (a *notificationAppImpl) ListNotifications(ctx context.Context, recipientID string, req *cqe.ListNotificationsReq) (*dto.ListNotificationsResponse, error) {
	if recipientID == "" {
		return nil, errno.NewSimpleBizError(errno.ErrParameterInvalid, nil, "recipient_id")
	}
	req.Normalize()

	all, err := a.repo.ListByUser(ctx, recipientID)
	if err != nil {
		return nil, errno.NewSimpleBizError(errno.ErrStoreUnavailable, err)
	}

	// Counts over the unfiltered set, before include_read and pagination.
	total := int64(len(all))
	var unread int64
	for _, n := range all {
		if !n.Read {
			unread++
		}
	}

	filtered := all
	if !req.IncludeRead {
		filtered = filtered[:0:0]
		for _, n := range all {
			if !n.Read {
				filtered = append(filtered, n)
			}
		}
	}

	start := req.Offset
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + req.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	page := filtered[start:end]

	items := make([]dto.NotificationDto, 0, len(page))
	for _, n := range page {
		items = append(items, dto.FromEntity(n))
	}

	return &dto.ListNotificationsResponse{
		Notifications: items,
		TotalCount:    total,
		UnreadCount:   unread,
	}, nil
}

// MarkRead 将一条通知置为已读，并把更新后的记录推送回接收者频道。
func (a *notificationAppImpl) MarkRead(ctx context.Context, recipientID string, req *cqe.MarkReadReq) error {
	if recipientID == "" {
		return errno.NewSimpleBizError(errno.ErrParameterInvalid, nil, "recipient_id")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	n, err := a.repo.MarkRead(ctx, recipientID, req.NotificationKey)
	if err != nil {
		if errors.Is(err, errno.ErrNotificationNotFound) {
			return err
		}
		return errno.NewSimpleBizError(errno.ErrStoreUnavailable, err)
	}

	if err := a.publisher.PublishReadStateChanged(ctx, n); err != nil {
		logger.WithContext(ctx).Errorf("notification: read-state publish failed key=%s recipient=%s error=%v",
			req.NotificationKey, recipientID, err)
	}
	return nil
}
