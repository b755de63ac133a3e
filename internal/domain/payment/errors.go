package payment

import (
	"fmt"

	apperrors "github.com/gamehub/payments/internal/shared/errors"
)

// Domain errors. Each wraps a shared category so callers can classify with
// errors.Is against either the domain sentinel or the category.
var (
	// ErrNotFound is returned when a payment does not resolve in the store.
	ErrNotFound = fmt.Errorf("payment %w", apperrors.ErrNotFound)

	// ErrInvalidTransition is returned when a transition is attempted from a
	// status that does not permit it.
	ErrInvalidTransition = fmt.Errorf("%w: transition not allowed", apperrors.ErrInvalidState)

	// ErrConflict is returned when a save loses against a concurrent writer or
	// violates the transaction ID uniqueness constraint.
	ErrConflict = fmt.Errorf("payment %w", apperrors.ErrConflict)
)

// invalidTransitionError builds an ErrInvalidTransition with the offending statuses.
func invalidTransitionError(from, to Status) error {
	return fmt.Errorf("%w: cannot move payment from %s to %s", ErrInvalidTransition, from, to)
}

// validationError builds an ErrInvalidArgument-classified error.
func validationError(msg string) error {
	return fmt.Errorf("%w: %s", apperrors.ErrInvalidArgument, msg)
}
