package dto

import (
	"time"

	"notification-service/ddd/domain/entity"
)

// NotificationDto 向上层暴露的通知视图模型。
type NotificationDto struct {
	ID          string            `json:"id"`
	Service     string            `json:"service"`
	Type        string            `json:"type"`
	Title       string            `json:"title"`
	Message     string            `json:"message"`
	RecipientID string            `json:"recipient_id,omitempty"`
	Data        map[string]string `json:"data,omitempty"`
	Read        bool              `json:"read"`
	CreatedAt   time.Time         `json:"created_at"`
	ReadAt      *time.Time        `json:"read_at,omitempty"`
	ExpiresAt   *time.Time        `json:"expires_at,omitempty"`
}

// FromEntity 由领域实体构建视图模型。
func FromEntity(n *entity.Notification) NotificationDto {
	return NotificationDto{
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

// ListNotificationsResponse 列表响应结构。总数与未读数始终基于
// 未过滤的全集计算，与 include_read / 分页参数无关。
type ListNotificationsResponse struct {
	Notifications []NotificationDto `json:"notifications"`
	TotalCount    int64             `json:"total_count"`
	UnreadCount   int64             `json:"unread_count"`
}

// SendNotificationResponse 创建响应，NotificationID 为组合键 service:id。
type SendNotificationResponse struct {
	Status         string `json:"status"`
	NotificationID string `json:"notification_id"`
}
