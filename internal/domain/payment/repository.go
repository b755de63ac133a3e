package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository is the persistence port for payments.
//
// Save performs a versioned upsert: a payment with Version 0 is inserted and
// any other version is updated only if the stored row still carries that
// version. A duplicate transaction ID or a lost version race yields
// ErrConflict. On success the implementation bumps the in-memory version.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*Payment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Payment, error)
	ListByGame(ctx context.Context, gameID uuid.UUID) ([]*Payment, error)
	ListByStatus(ctx context.Context, status Status) ([]*Payment, error)

	// ListPending returns the pending backlog, oldest first.
	ListPending(ctx context.Context) ([]*Payment, error)

	// ListStaleProcessing returns payments stuck in processing whose
	// processed_at is older than the cutoff, oldest first.
	ListStaleProcessing(ctx context.Context, cutoff time.Time) ([]*Payment, error)

	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Save(ctx context.Context, p *Payment) error
}
