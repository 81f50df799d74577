package po

import "time"

// Notification 持久化对象，对应 redis 中 JSON 序列化的通知记录。
type Notification struct {
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

// Key 组合键 service:id，同一接收者下的唯一标识。
func (p *Notification) Key() string {
	return p.Service + ":" + p.ID
}
