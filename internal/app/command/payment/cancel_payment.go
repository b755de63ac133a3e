package payment

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gamehub/payments/internal/domain/events"
	"github.com/gamehub/payments/internal/domain/payment"
	"github.com/gamehub/payments/internal/infra/eventbus"
)

// CancelPaymentHandler cancels a payment that has not started processing.
type CancelPaymentHandler struct {
	repo   payment.Repository
	bus    *eventbus.Bus
	logger *zap.Logger
}

// NewCancelPaymentHandler wires the handler's dependencies.
func NewCancelPaymentHandler(repo payment.Repository, bus *eventbus.Bus, logger *zap.Logger) *CancelPaymentHandler {
	return &CancelPaymentHandler{repo: repo, bus: bus, logger: logger}
}

// Handle moves a pending payment to cancelled.
func (h *CancelPaymentHandler) Handle(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	p, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cancelled, err := p.Cancel()
	if err != nil {
		return nil, err
	}
	if err := h.repo.Save(ctx, p); err != nil {
		return nil, err
	}

	h.logger.Info("payment cancelled",
		zap.String("payment_id", p.ID().String()),
		zap.String("transaction_id", p.TransactionID()),
	)
	h.bus.PublishAll(ctx, []events.Event{cancelled})
	return p, nil
}
