// Package rds provides a redis client over go-redis
package rds

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Config configures the redis client
type Config struct {
	Addr     string
	DB       int
	Password string
}

// Client is the thin redis handle the store exposes
type Client struct {
	c redis.UniversalClient
}

// Open builds a client; go-redis dials lazily so Open never fails
func Open(cfg Config) *Client {
	return &Client{c: redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		DB:       cfg.DB,
		Password: cfg.Password,
	})}
}

// Wrap adopts an existing go-redis client (tests, cluster setups)
func Wrap(c redis.UniversalClient) *Client { return &Client{c: c} }

// Ping verifies the server answers
func (c *Client) Ping(ctx context.Context) error { return c.c.Ping(ctx).Err() }

// Del removes keys and reports how many existed
func (c *Client) Del(ctx context.Context, keys ...string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}
	return c.c.Del(ctx, keys...).Result()
}

// Close releases the connection pool
func (c *Client) Close() error { return c.c.Close() }
