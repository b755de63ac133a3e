package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/gamehub/payments/internal/domain/payment"
	"github.com/gamehub/payments/internal/shared/metrics"
)

// StatusCache is a short-TTL read cache for payment status lookups. It is a
// best-effort layer: any Redis failure is logged and treated as a miss so the
// caller falls through to the store.
type StatusCache struct {
	client  redis.UniversalClient
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewStatusCache creates a status cache with the given TTL.
func NewStatusCache(client redis.UniversalClient, ttl time.Duration, m *metrics.Metrics, logger *zap.Logger) *StatusCache {
	return &StatusCache{
		client:  client,
		ttl:     ttl,
		metrics: m,
		logger:  logger,
	}
}

func statusKey(id uuid.UUID) string {
	return fmt.Sprintf("payment:status:%s", id)
}

// Get returns the cached status and whether it was present.
func (c *StatusCache) Get(ctx context.Context, id uuid.UUID) (payment.Status, bool) {
	val, err := c.client.Get(ctx, statusKey(id)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("status cache read failed", zap.String("payment_id", id.String()), zap.Error(err))
		}
		c.metrics.CacheMissesTotal.Inc()
		return "", false
	}
	c.metrics.CacheHitsTotal.Inc()
	return payment.Status(val), true
}

// Set stores the status under the configured TTL.
func (c *StatusCache) Set(ctx context.Context, id uuid.UUID, status payment.Status) {
	if err := c.client.Set(ctx, statusKey(id), string(status), c.ttl).Err(); err != nil {
		c.logger.Warn("status cache write failed", zap.String("payment_id", id.String()), zap.Error(err))
	}
}

// Invalidate drops the cached status after a state change.
func (c *StatusCache) Invalidate(ctx context.Context, id uuid.UUID) {
	if err := c.client.Del(ctx, statusKey(id)).Err(); err != nil {
		c.logger.Warn("status cache invalidation failed", zap.String("payment_id", id.String()), zap.Error(err))
	}
}
