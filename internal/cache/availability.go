package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AvailabilityCache keeps generated slot lists in redis for a short TTL.
// Strictly best-effort: every failure degrades to a recompute, never to an
// error for the caller.
type AvailabilityCache struct {
	rdb    *redis.Client
	logger *zap.Logger
	ttl    time.Duration
}

func NewAvailabilityCache(rdb *redis.Client, logger *zap.Logger, ttl time.Duration) *AvailabilityCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &AvailabilityCache{rdb: rdb, logger: logger, ttl: ttl}
}

func slotKey(staffID, serviceID string, date time.Time) string {
	return fmt.Sprintf("slots:%s:%s:%s", staffID, date.Format("2006-01-02"), serviceID)
}

func (c *AvailabilityCache) GetSlots(ctx context.Context, staffID, serviceID string, date time.Time) ([]time.Time, bool) {
	raw, err := c.rdb.Get(ctx, slotKey(staffID, serviceID, date)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Debug("availability cache read failed", zap.Error(err))
		return nil, false
	}

	var slots []time.Time
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) SetSlots(ctx context.Context, staffID, serviceID string, date time.Time, slots []time.Time) {
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, slotKey(staffID, serviceID, date), raw, c.ttl).Err(); err != nil {
		c.logger.Debug("availability cache write failed", zap.Error(err))
	}
}

// InvalidateStaffDay drops every cached service variant for the staff
// member's day after a booking write.
func (c *AvailabilityCache) InvalidateStaffDay(ctx context.Context, staffID string, date time.Time) {
	pattern := fmt.Sprintf("slots:%s:%s:*", staffID, date.Format("2006-01-02"))

	keys, err := c.rdb.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Debug("availability cache invalidation failed", zap.Error(err))
	}
}
