// Package scheduler contains background workers and their supporting infrastructure
package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	businessflow "github.com/voyzlab/voyz-marketing/business_flow"
	"github.com/voyzlab/voyz-marketing/utils"
)

// RedisSnapshotCache stores calendar snapshots in Redis, one key per
// merchant/month pair.
type RedisSnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSnapshotCache creates a Redis-backed snapshot cache. A zero ttl
// falls back to the default snapshot TTL.
func NewRedisSnapshotCache(client *redis.Client, ttl time.Duration) *RedisSnapshotCache {
	if ttl <= 0 {
		ttl = utils.SnapshotTTL
	}
	return &RedisSnapshotCache{
		client: client,
		ttl:    ttl,
	}
}

func snapshotKey(merchantID uint, monthKey string) string {
	return fmt.Sprintf("voyz:calendar:%d:%s", merchantID, monthKey)
}

// Get returns the cached snapshot, or nil on a miss
func (c *RedisSnapshotCache) Get(ctx context.Context, merchantID uint, monthKey string) (*businessflow.CalendarSnapshot, error) {
	raw, err := c.client.Get(ctx, snapshotKey(merchantID, monthKey)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("snapshot get: %w", err)
	}

	var snapshot businessflow.CalendarSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, businessflow.ErrSnapshotDecode
	}
	return &snapshot, nil
}

// Put stores the snapshot with the cache TTL
func (c *RedisSnapshotCache) Put(ctx context.Context, merchantID uint, monthKey string, snapshot *businessflow.CalendarSnapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("snapshot marshal: %w", err)
	}
	return c.client.Set(ctx, snapshotKey(merchantID, monthKey), raw, c.ttl).Err()
}

// Invalidate drops the cached snapshot for the merchant/month pair
func (c *RedisSnapshotCache) Invalidate(ctx context.Context, merchantID uint, monthKey string) error {
	return c.client.Del(ctx, snapshotKey(merchantID, monthKey)).Err()
}
