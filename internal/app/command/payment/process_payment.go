package payment

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gamehub/payments/internal/domain/events"
	"github.com/gamehub/payments/internal/domain/payment"
	"github.com/gamehub/payments/internal/infra/eventbus"
	"github.com/gamehub/payments/internal/infra/messaging"
	"github.com/gamehub/payments/internal/shared/metrics"
)

// DeclinedReason is the failure reason recorded when the gateway declines.
const DeclinedReason = "transaction declined by payment gateway"

// ProcessPaymentHandler runs a pending payment through the gateway and
// records the outcome.
type ProcessPaymentHandler struct {
	repo      payment.Repository
	gateway   payment.Gateway
	bus       *eventbus.Bus
	publisher messaging.Publisher
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewProcessPaymentHandler wires the handler's dependencies.
func NewProcessPaymentHandler(
	repo payment.Repository,
	gateway payment.Gateway,
	bus *eventbus.Bus,
	publisher messaging.Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) *ProcessPaymentHandler {
	return &ProcessPaymentHandler{
		repo:      repo,
		gateway:   gateway,
		bus:       bus,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

// Handle moves the payment to processing, asks the gateway for a decision,
// and completes or fails the payment accordingly. The transition to
// processing is persisted before the gateway is consulted so a concurrent
// process call loses on the version check instead of double-charging.
func (h *ProcessPaymentHandler) Handle(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	p, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	processing, err := p.StartProcessing()
	if err != nil {
		return nil, err
	}
	if err := h.repo.Save(ctx, p); err != nil {
		return nil, err
	}

	evts := []events.Event{processing}

	if h.gateway.Approve(ctx, p) {
		completed, err := p.Complete()
		if err != nil {
			return nil, err
		}
		evts = append(evts, completed)
	} else {
		failed, err := p.Fail(DeclinedReason)
		if err != nil {
			return nil, err
		}
		evts = append(evts, failed)
	}

	if err := h.repo.Save(ctx, p); err != nil {
		return nil, err
	}

	h.logger.Info("payment processed",
		zap.String("payment_id", p.ID().String()),
		zap.String("transaction_id", p.TransactionID()),
		zap.String("status", string(p.Status())),
	)
	h.bus.PublishAll(ctx, evts)
	h.notify(p)
	return p, nil
}

// notify publishes the processed message best-effort. The payment outcome is
// already durable, so a broker failure is logged and swallowed.
func (h *ProcessPaymentHandler) notify(p *payment.Payment) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.PublishProcessed(p); err != nil {
		h.metrics.PublishFailuresTotal.Inc()
		h.logger.Warn("processed notification publish failed",
			zap.String("payment_id", p.ID().String()),
			zap.Error(err),
		)
	}
}
