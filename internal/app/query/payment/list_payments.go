package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gamehub/payments/internal/domain/payment"
	apperrors "github.com/gamehub/payments/internal/shared/errors"
)

// ListPaymentsHandler serves the collection queries. Results are always
// ordered newest first.
type ListPaymentsHandler struct {
	repo payment.Repository
}

// NewListPaymentsHandler wires the handler's dependencies.
func NewListPaymentsHandler(repo payment.Repository) *ListPaymentsHandler {
	return &ListPaymentsHandler{repo: repo}
}

// ByUser returns all payments made by a user.
func (h *ListPaymentsHandler) ByUser(ctx context.Context, userID uuid.UUID) ([]*payment.Payment, error) {
	return h.repo.ListByUser(ctx, userID)
}

// ByGame returns all payments for a game.
func (h *ListPaymentsHandler) ByGame(ctx context.Context, gameID uuid.UUID) ([]*payment.Payment, error) {
	return h.repo.ListByGame(ctx, gameID)
}

// ByStatus returns all payments in a given lifecycle status.
func (h *ListPaymentsHandler) ByStatus(ctx context.Context, status payment.Status) ([]*payment.Payment, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrInvalidArgument, status)
	}
	return h.repo.ListByStatus(ctx, status)
}
