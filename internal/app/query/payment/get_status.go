package payment

import (
	"context"

	"github.com/google/uuid"

	"github.com/gamehub/payments/internal/domain/payment"
)

// StatusCache is the read-cache the status query consults before the store.
type StatusCache interface {
	Get(ctx context.Context, id uuid.UUID) (payment.Status, bool)
	Set(ctx context.Context, id uuid.UUID, status payment.Status)
}

// GetStatusHandler answers status lookups through a short-TTL cache.
type GetStatusHandler struct {
	repo  payment.Repository
	cache StatusCache
}

// NewGetStatusHandler wires the handler's dependencies. The cache may be nil
// when Redis is not configured.
func NewGetStatusHandler(repo payment.Repository, c StatusCache) *GetStatusHandler {
	return &GetStatusHandler{repo: repo, cache: c}
}

// Handle returns the payment's current status, reading through the cache.
func (h *GetStatusHandler) Handle(ctx context.Context, id uuid.UUID) (payment.Status, error) {
	if h.cache != nil {
		if status, ok := h.cache.Get(ctx, id); ok {
			return status, nil
		}
	}

	p, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if h.cache != nil {
		h.cache.Set(ctx, id, p.Status())
	}
	return p.Status(), nil
}
