package dao

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"notification-service/ddd/infrastructure/redis/po"
	"notification-service/pkg/logger"
)

// Redis 键/频道布局：
//
//	user:{rid}:notifications:{service}:{id}  JSON 记录，expires_at 存在时带 TTL
//	user:{rid}:notifications:index           zset，member=service:id，score=created_at
//	notifications:{service}                  服务级发布频道
//	notifications:user:{rid}                 接收者级发布频道
//
// 每条通知单独成键，配合有序索引：既支持真正的 TTL，又保证列表按创建时间排序。

// opTimeout caps every single store interaction.
const opTimeout = 5 * time.Second

func recordKey(recipientID, key string) string {
	return fmt.Sprintf("user:%s:notifications:%s", recipientID, key)
}

func indexKey(recipientID string) string {
	return fmt.Sprintf("user:%s:notifications:index", recipientID)
}

func serviceChannel(service string) string {
	return "notifications:" + service
}

func userChannel(recipientID string) string {
	return "notifications:user:" + recipientID
}

type NotificationDao struct {
	client *redis.Client
}

func NewNotificationDao(client *redis.Client) *NotificationDao {
	return &NotificationDao{client: client}
}

// Save upserts the record and its index entry in one transaction.
// ttl <= 0 stores the record without expiry.
func (d *NotificationDao) Save(ctx context.Context, p *po.Notification, ttl time.Duration) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if ttl < 0 {
		ttl = 0
	}
	pipe := d.client.TxPipeline()
	pipe.Set(ctx, recordKey(p.RecipientID, p.Key()), body, ttl)
	pipe.ZAdd(ctx, indexKey(p.RecipientID), redis.Z{
		Score:  float64(p.CreatedAt.UnixNano()),
		Member: p.Key(),
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save notification %s: %w", p.Key(), err)
	}
	return nil
}

// Get fetches a single record; (nil, nil) when absent or expired.
func (d *NotificationDao) Get(ctx context.Context, recipientID, key string) (*po.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	val, err := d.client.Get(ctx, recordKey(recipientID, key)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get notification %s: %w", key, err)
	}

	var p po.Notification
	if err := json.Unmarshal([]byte(val), &p); err != nil {
		return nil, fmt.Errorf("decode notification %s: %w", key, err)
	}
	return &p, nil
}

// Update rewrites an existing record preserving its TTL.
func (d *NotificationDao) Update(ctx context.Context, p *po.Notification) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := d.client.Set(ctx, recordKey(p.RecipientID, p.Key()), body, redis.KeepTTL).Err(); err != nil {
		return fmt.Errorf("update notification %s: %w", p.Key(), err)
	}
	return nil
}

// ListByUser returns all live records for a recipient, newest first.
// Index members whose record key has expired are pruned along the way.
func (d *NotificationDao) ListByUser(ctx context.Context, recipientID string) ([]po.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	keys, err := d.client.ZRevRange(ctx, indexKey(recipientID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list notification index: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	recordKeys := make([]string, len(keys))
	for i, k := range keys {
		recordKeys[i] = recordKey(recipientID, k)
	}
	vals, err := d.client.MGet(ctx, recordKeys...).Result()
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	pos := make([]po.Notification, 0, len(vals))
	var expired []interface{}
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			// Record expired since it was indexed.
			expired = append(expired, keys[i])
			continue
		}
		var p po.Notification
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			logger.WithContext(ctx).Warnf("notification: skipping undecodable record recipient=%s key=%s error=%v",
				recipientID, keys[i], err)
			continue
		}
		pos = append(pos, p)
	}

	if len(expired) > 0 {
		// Best-effort lazy prune; listing already succeeded.
		if err := d.client.ZRem(ctx, indexKey(recipientID), expired...).Err(); err != nil {
			logger.WithContext(ctx).Warnf("notification: index prune failed recipient=%s error=%v", recipientID, err)
		}
	}
	return pos, nil
}

// Publish sends the payload to a single channel.
func (d *NotificationDao) Publish(ctx context.Context, channel string, payload []byte) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := d.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", channel, err)
	}
	return nil
}

// ServiceChannel exposes the per-service channel name for publishers.
func ServiceChannel(service string) string { return serviceChannel(service) }

// UserChannel exposes the per-recipient channel name for publishers.
func UserChannel(recipientID string) string { return userChannel(recipientID) }
