package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/gamehub/payments/internal/domain/events"
	"github.com/gamehub/payments/internal/domain/payment"
	"github.com/gamehub/payments/internal/infra/eventbus"
)

// CreatePaymentCommand carries the inputs for creating a payment.
type CreatePaymentCommand struct {
	UserID uuid.UUID
	GameID uuid.UUID
	Amount decimal.Decimal
	Method payment.Method
}

// CreatePaymentHandler creates a pending payment and persists it.
type CreatePaymentHandler struct {
	repo   payment.Repository
	bus    *eventbus.Bus
	logger *zap.Logger
}

// NewCreatePaymentHandler wires the handler's dependencies.
func NewCreatePaymentHandler(repo payment.Repository, bus *eventbus.Bus, logger *zap.Logger) *CreatePaymentHandler {
	return &CreatePaymentHandler{repo: repo, bus: bus, logger: logger}
}

// Handle validates the command, inserts the new payment, and publishes the
// created event.
func (h *CreatePaymentHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) (*payment.Payment, error) {
	p, created, err := payment.New(cmd.UserID, cmd.GameID, cmd.Amount, cmd.Method)
	if err != nil {
		return nil, err
	}

	if err := h.repo.Save(ctx, p); err != nil {
		return nil, err
	}

	h.logger.Info("payment created",
		zap.String("payment_id", p.ID().String()),
		zap.String("transaction_id", p.TransactionID()),
		zap.String("user_id", p.UserID().String()),
	)
	h.bus.PublishAll(ctx, []events.Event{created})
	return p, nil
}
