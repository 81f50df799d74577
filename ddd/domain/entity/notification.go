package entity

import "time"

// Service 标识产生通知的领域服务。
type Service string

const (
	ServiceUserAdmin Service = "user-admin"
	ServiceLab       Service = "lab"
	ServicePharmacy  Service = "pharmacy"
	ServiceHospital  Service = "hospital"
	ServiceChat      Service = "chat"
)

// Valid reports whether s is one of the known producing services.
func (s Service) Valid() bool {
	switch s {
	case ServiceUserAdmin, ServiceLab, ServicePharmacy, ServiceHospital, ServiceChat:
		return true
	}
	return false
}

// Severity 通知级别。
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeveritySuccess Severity = "success"
)

// Valid reports whether v is a known severity.
func (v Severity) Valid() bool {
	switch v {
	case SeverityInfo, SeverityWarning, SeverityError, SeveritySuccess:
		return true
	}
	return false
}

// Notification 聚合根，表示一条发往某个接收者的通知。
// 没有 RecipientID 的通知只做广播推送，不落库。
type Notification struct {
	ID          string
	Service     Service
	Type        Severity
	Title       string
	Message     string
	RecipientID string
	Data        map[string]string
	Read        bool
	CreatedAt   time.Time
	ReadAt      *time.Time
	ExpiresAt   *time.Time
}

// NewNotification 创建一条新的未读通知。
func NewNotification(service Service, typ Severity, title, message, recipientID string, data map[string]string) *Notification {
	return &Notification{
		Service:     service,
		Type:        typ,
		Title:       title,
		Message:     message,
		RecipientID: recipientID,
		Data:        data,
		Read:        false,
	}
}

// Key returns the composite identity "service:id". Two notifications with
// the same key for the same recipient are the same record (last write wins).
func (n *Notification) Key() string {
	return string(n.Service) + ":" + n.ID
}

// Broadcast reports whether this notification targets all connected clients
// instead of a single recipient.
func (n *Notification) Broadcast() bool {
	return n.RecipientID == ""
}

// IsExpired reports whether the advisory expiry has passed.
func (n *Notification) IsExpired() bool {
	if n.ExpiresAt == nil {
		return false
	}
	return time.Now().After(*n.ExpiresAt)
}

// MarkAsRead flips the read flag. The transition is one-way.
func (n *Notification) MarkAsRead() {
	if n.Read {
		return
	}
	n.Read = true
	now := time.Now().UTC()
	n.ReadAt = &now
}
