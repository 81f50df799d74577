package persistence

import (
	"context"
	"sort"
	"sync"

	"notification-service/ddd/domain/entity"
	"notification-service/pkg/errno"
)

// MemoryNotificationRepository 进程内存仓储，语义与 redis 实现一致，
// 用于单元测试和无 redis 的本地调试。
type MemoryNotificationRepository struct {
	mu      sync.RWMutex
	records map[string]map[string]*entity.Notification // recipient -> key -> record
}

func NewMemoryNotificationRepository() *MemoryNotificationRepository {
	return &MemoryNotificationRepository{
		records: make(map[string]map[string]*entity.Notification),
	}
}

func (r *MemoryNotificationRepository) Save(ctx context.Context, n *entity.Notification) error {
	if n.IsExpired() {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	byKey, ok := r.records[n.RecipientID]
	if !ok {
		byKey = make(map[string]*entity.Notification)
		r.records[n.RecipientID] = byKey
	}
	byKey[n.Key()] = clone(n)
	return nil
}

func (r *MemoryNotificationRepository) ListByUser(ctx context.Context, recipientID string) ([]*entity.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byKey := r.records[recipientID]
	res := make([]*entity.Notification, 0, len(byKey))
	for _, n := range byKey {
		if n.IsExpired() {
			continue
		}
		res = append(res, clone(n))
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res, nil
}

func (r *MemoryNotificationRepository) MarkRead(ctx context.Context, recipientID, key string) (*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.records[recipientID][key]
	if !ok || n.IsExpired() {
		return nil, errno.ErrNotificationNotFound
	}
	n.MarkAsRead()
	return clone(n), nil
}

func clone(n *entity.Notification) *entity.Notification {
	cp := *n
	if n.Data != nil {
		cp.Data = make(map[string]string, len(n.Data))
		for k, v := range n.Data {
			cp.Data[k] = v
		}
	}
	if n.ReadAt != nil {
		t := *n.ReadAt
		cp.ReadAt = &t
	}
	if n.ExpiresAt != nil {
		t := *n.ExpiresAt
		cp.ExpiresAt = &t
	}
	return &cp
}
