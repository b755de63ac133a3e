package eventbus

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/gamehub/payments/internal/domain/events"
)

// Handler reacts to domain events. Handles lists the event types the handler
// wants; an empty list subscribes to everything.
type Handler interface {
	Name() string
	Handles() []string
	Handle(ctx context.Context, evt events.Event) error
}

// Bus is a synchronous in-process event bus. Handlers run in registration
// order on the publishing goroutine; a handler error is logged and does not
// stop delivery to the remaining handlers.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	all      []Handler
	logger   *zap.Logger
}

// New creates an empty bus.
func New(logger *zap.Logger) *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
		logger:   logger,
	}
}

// Register subscribes a handler to the event types it handles.
func (b *Bus) Register(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	types := h.Handles()
	if len(types) == 0 {
		b.all = append(b.all, h)
		return
	}
	for _, t := range types {
		b.handlers[t] = append(b.handlers[t], h)
	}
}

// Publish delivers a single event to its subscribers.
func (b *Bus) Publish(ctx context.Context, evt events.Event) {
	b.mu.RLock()
	targets := make([]Handler, 0, len(b.all)+len(b.handlers[evt.EventType()]))
	targets = append(targets, b.all...)
	targets = append(targets, b.handlers[evt.EventType()]...)
	b.mu.RUnlock()

	for _, h := range targets {
		if err := h.Handle(ctx, evt); err != nil {
			b.logger.Error("event handler failed",
				zap.String("handler", h.Name()),
				zap.String("event_type", evt.EventType()),
				zap.String("event_id", evt.EventID().String()),
				zap.Error(err),
			)
		}
	}
}

// PublishAll delivers events in order.
func (b *Bus) PublishAll(ctx context.Context, evts []events.Event) {
	for _, evt := range evts {
		b.Publish(ctx, evt)
	}
}
