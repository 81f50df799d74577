package redisclient

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"notification-service/pkg/config"
)

// ErrRedisNotReady is returned when the server does not answer the initial ping.
var ErrRedisNotReady = errors.New("redis did not become ready")

// Client wraps the go-redis client so callers share one configured handle
// with an explicit init/close lifecycle.
type Client struct {
	raw *redis.Client
}

// New builds a client from config and verifies the connection with a ping
// before handing it out.
func New(cfg config.RedisConfig) (*Client, error) {
	opts := &redis.Options{
		Addr:         cfg.GetRedisAddr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if cfg.EnableTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	cli := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()
	if err := cli.Ping(ctx).Err(); err != nil {
		_ = cli.Close()
		return nil, fmt.Errorf("%w: %v", ErrRedisNotReady, err)
	}

	return &Client{raw: cli}, nil
}

// Raw exposes the underlying go-redis client for dao and pub/sub wiring.
func (c *Client) Raw() *redis.Client {
	return c.raw
}

// Close releases the connection pool.
func (c *Client) Close() error {
	if c == nil || c.raw == nil {
		return nil
	}
	return c.raw.Close()
}

// Healthcheck returns a probe suitable for a liveness endpoint.
func (c *Client) Healthcheck() func(context.Context) error {
	return func(ctx context.Context) error {
		if _, err := c.raw.Ping(ctx).Result(); err != nil {
			return fmt.Errorf("redis healthcheck failed: %w", err)
		}
		return nil
	}
}
