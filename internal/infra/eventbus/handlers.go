package eventbus

import (
	"context"

	"github.com/gamehub/payments/internal/domain/events"
	"github.com/gamehub/payments/internal/infra/cache"
	"github.com/gamehub/payments/internal/shared/metrics"
)

// MetricsRecorder counts every domain event by type.
type MetricsRecorder struct {
	metrics *metrics.Metrics
}

// NewMetricsRecorder creates a recorder backed by the shared metrics.
func NewMetricsRecorder(m *metrics.Metrics) *MetricsRecorder {
	return &MetricsRecorder{metrics: m}
}

func (r *MetricsRecorder) Name() string { return "metrics-recorder" }

// Handles returns nil so the recorder sees all event types.
func (r *MetricsRecorder) Handles() []string { return nil }

func (r *MetricsRecorder) Handle(_ context.Context, evt events.Event) error {
	r.metrics.PaymentEventsTotal.WithLabelValues(evt.EventType()).Inc()
	return nil
}

// CacheInvalidator drops the cached status whenever a payment changes state.
type CacheInvalidator struct {
	cache *cache.StatusCache
}

// NewCacheInvalidator creates an invalidator over the status cache.
func NewCacheInvalidator(c *cache.StatusCache) *CacheInvalidator {
	return &CacheInvalidator{cache: c}
}

func (i *CacheInvalidator) Name() string { return "status-cache-invalidator" }

// Handles returns nil: every event type marks a state change worth dropping.
func (i *CacheInvalidator) Handles() []string { return nil }

func (i *CacheInvalidator) Handle(ctx context.Context, evt events.Event) error {
	i.cache.Invalidate(ctx, evt.AggregateID())
	return nil
}
