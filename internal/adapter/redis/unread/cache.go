// Package unread caches per-user unread notification counts in Redis.
package unread

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Cache stores unread counts under <prefix>unread:<userID>.
//
// Every Invalidate bumps a per-user generation under
// <prefix>unread:gen:<userID>. A fill only lands if the generation still
// matches the one returned by the Get that missed, so a count read from the
// store before a concurrent mutation is never written back.
type Cache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// fillScript sets KEYS[1] to ARGV[2] (PX ARGV[3] when positive) only if the
// generation at KEYS[2] equals ARGV[1]. A missing generation reads as 0.
var fillScript = redis.NewScript(`
local gen = redis.call('GET', KEYS[2]) or '0'
if gen ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[1], ARGV[2])
end
return 1
`)

// New connects to redisURL and verifies the connection.
func New(ctx context.Context, redisURL, prefix string, ttl time.Duration) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewWithClient(client, prefix, ttl), nil
}

// NewWithClient creates a cache from an existing client.
func NewWithClient(client *redis.Client, prefix string, ttl time.Duration) *Cache {
	return &Cache{client: client, prefix: prefix, ttl: ttl}
}

func (c *Cache) key(userID uuid.UUID) string {
	return c.prefix + "unread:" + userID.String()
}

func (c *Cache) genKey(userID uuid.UUID) string {
	return c.prefix + "unread:gen:" + userID.String()
}

// Get returns the cached count. On a miss ok is false and gen is the
// generation to pass to Fill.
func (c *Cache) Get(ctx context.Context, userID uuid.UUID) (n int, ok bool, gen int64, err error) {
	vals, err := c.client.MGet(ctx, c.key(userID), c.genKey(userID)).Result()
	if err != nil {
		return 0, false, 0, fmt.Errorf("get unread count: %w", err)
	}

	if raw, isSet := vals[1].(string); isSet {
		gen, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, false, 0, fmt.Errorf("parse unread generation %q: %w", raw, err)
		}
	}

	raw, isSet := vals[0].(string)
	if !isSet {
		return 0, false, gen, nil
	}
	n, err = strconv.Atoi(raw)
	if err != nil {
		return 0, false, 0, fmt.Errorf("parse unread count %q: %w", raw, err)
	}
	return n, true, gen, nil
}

// Fill stores n with the configured TTL unless userID was invalidated since
// the Get that returned gen. stored reports whether the write happened.
func (c *Cache) Fill(ctx context.Context, userID uuid.UUID, n int, gen int64) (stored bool, err error) {
	res, err := fillScript.Run(ctx, c.client,
		[]string{c.key(userID), c.genKey(userID)},
		strconv.FormatInt(gen, 10), n, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("fill unread count: %w", err)
	}
	return res == 1, nil
}

// Invalidate drops the cached count for userID and bumps its generation.
func (c *Cache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, c.genKey(userID))
		pipe.Del(ctx, c.key(userID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalidate unread count: %w", err)
	}
	return nil
}

// Ping checks if Redis is reachable.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}
