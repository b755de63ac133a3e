package payment

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gamehub/payments/internal/domain/events"
	"github.com/gamehub/payments/internal/domain/payment"
	"github.com/gamehub/payments/internal/infra/eventbus"
)

// RefundPaymentHandler refunds a completed payment.
type RefundPaymentHandler struct {
	repo   payment.Repository
	bus    *eventbus.Bus
	logger *zap.Logger
}

// NewRefundPaymentHandler wires the handler's dependencies.
func NewRefundPaymentHandler(repo payment.Repository, bus *eventbus.Bus, logger *zap.Logger) *RefundPaymentHandler {
	return &RefundPaymentHandler{repo: repo, bus: bus, logger: logger}
}

// Handle moves a completed payment to refunded.
func (h *RefundPaymentHandler) Handle(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	p, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	refunded, err := p.Refund()
	if err != nil {
		return nil, err
	}
	if err := h.repo.Save(ctx, p); err != nil {
		return nil, err
	}

	h.logger.Info("payment refunded",
		zap.String("payment_id", p.ID().String()),
		zap.String("transaction_id", p.TransactionID()),
	)
	h.bus.PublishAll(ctx, []events.Event{refunded})
	return p, nil
}
