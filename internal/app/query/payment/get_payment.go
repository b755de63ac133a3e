package payment

import (
	"context"

	"github.com/google/uuid"

	"github.com/gamehub/payments/internal/domain/payment"
)

// GetPaymentHandler loads a single payment by ID or transaction reference.
type GetPaymentHandler struct {
	repo payment.Repository
}

// NewGetPaymentHandler wires the handler's dependencies.
func NewGetPaymentHandler(repo payment.Repository) *GetPaymentHandler {
	return &GetPaymentHandler{repo: repo}
}

// ByID returns the payment with the given identifier.
func (h *GetPaymentHandler) ByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	return h.repo.GetByID(ctx, id)
}

// ByTransactionID returns the payment with the given transaction reference.
func (h *GetPaymentHandler) ByTransactionID(ctx context.Context, transactionID string) (*payment.Payment, error) {
	return h.repo.GetByTransactionID(ctx, transactionID)
}
