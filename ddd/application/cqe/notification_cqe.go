package cqe

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"notification-service/ddd/domain/entity"
	"notification-service/pkg/errno"
)

// SendNotificationReq 创建通知请求，gRPC 与 HTTP 两个接入口共用。
type SendNotificationReq struct {
	ID          string            `json:"id"`
	Service     string            `json:"service"`
	Type        string            `json:"type"`
	Title       string            `json:"title"`
	Message     string            `json:"message"`
	RecipientID string            `json:"recipient_id"`
	CreatedAt   *time.Time        `json:"created_at"`
	ExpiresAt   *time.Time        `json:"expires_at"`
	Data        map[string]string `json:"data"`
}

// Validate 校验必填字段与枚举取值。
func (r *SendNotificationReq) Validate() error {
	if r == nil {
		return errno.NewSimpleBizError(errno.ErrParameterInvalid, nil, "request")
	}
	if !entity.Service(r.Service).Valid() {
		return errno.NewSimpleBizError(errno.ErrParameterInvalid, nil, "service")
	}
	if !entity.Severity(r.Type).Valid() {
		return errno.NewSimpleBizError(errno.ErrParameterInvalid, nil, "type")
	}
	if r.Title == "" {
		return errno.NewSimpleBizError(errno.ErrParameterInvalid, nil, "title")
	}
	if r.Message == "" {
		return errno.NewSimpleBizError(errno.ErrParameterInvalid, nil, "message")
	}
	return nil
}

// ToEntity 补全默认值（id、created_at）并转换为领域实体。
func (r *SendNotificationReq) ToEntity() *entity.Notification {
	n := entity.NewNotification(
		entity.Service(r.Service),
		entity.Severity(r.Type),
		r.Title,
		r.Message,
		r.RecipientID,
		r.Data,
	)
	n.ID = r.ID
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if r.CreatedAt != nil {
		n.CreatedAt = r.CreatedAt.UTC()
	} else {
		n.CreatedAt = time.Now().UTC()
	}
	if r.ExpiresAt != nil {
		t := r.ExpiresAt.UTC()
		n.ExpiresAt = &t
	}
	return n
}

// ListNotificationsReq 列表查询请求。
type ListNotificationsReq struct {
	IncludeRead bool `form:"include_read"`
	Limit       int  `form:"limit"`
	Offset      int  `form:"offset"`
}

func (r *ListNotificationsReq) Normalize() {
	if r.Limit <= 0 {
		r.Limit = 20
	}
	if r.Limit > 100 {
		r.Limit = 100
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
}

// MarkReadReq 标记已读请求，NotificationKey 为组合键 service:id。
type MarkReadReq struct {
	NotificationKey string `json:"notification_key"`
}

// Validate 校验组合键格式。
func (r *MarkReadReq) Validate() error {
	if r == nil {
		return errno.NewSimpleBizError(errno.ErrParameterInvalid, nil, "request")
	}
	service, id, ok := strings.Cut(r.NotificationKey, ":")
	if !ok || service == "" || id == "" {
		return errno.NewSimpleBizError(errno.ErrParameterInvalid, nil, "notification_key")
	}
	return nil
}
