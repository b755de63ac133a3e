package payment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gamehub/payments/internal/domain/events"
)

// MaxAmount is the largest accepted payment amount, inclusive.
var MaxAmount = decimal.NewFromFloat(999999.99)

// Payment is the aggregate root for a single purchase attempt. All state
// changes go through the transition methods, which enforce the lifecycle
// guards and return the event the transition produced.
type Payment struct {
	id            uuid.UUID
	userID        uuid.UUID
	gameID        uuid.UUID
	amount        decimal.Decimal
	method        Method
	status        Status
	transactionID string
	failureReason *string
	createdAt     time.Time
	processedAt   *time.Time
	completedAt   *time.Time
	version       uint64
}

// New creates a pending payment after validating its inputs. The returned
// event carries the initial snapshot.
func New(userID, gameID uuid.UUID, amount decimal.Decimal, method Method) (*Payment, *CreatedEvent, error) {
	if userID == uuid.Nil {
		return nil, nil, validationError("user id is required")
	}
	if gameID == uuid.Nil {
		return nil, nil, validationError("game id is required")
	}
	if !amount.IsPositive() {
		return nil, nil, validationError("amount must be greater than zero")
	}
	if amount.GreaterThan(MaxAmount) {
		return nil, nil, validationError(fmt.Sprintf("amount must not exceed %s", MaxAmount))
	}
	if !method.IsValid() {
		return nil, nil, validationError(fmt.Sprintf("unsupported payment method %q", method))
	}

	now := time.Now().UTC()
	p := &Payment{
		id:            uuid.New(),
		userID:        userID,
		gameID:        gameID,
		amount:        amount,
		method:        method,
		status:        StatusPending,
		transactionID: newTransactionID(now),
		createdAt:     now,
	}

	evt := &CreatedEvent{
		BaseEvent:     events.NewBaseEvent(CreatedEventType, p.id, aggregateType),
		PaymentID:     p.id,
		UserID:        p.userID,
		GameID:        p.gameID,
		Amount:        p.amount,
		TransactionID: p.transactionID,
		CreatedAt:     p.createdAt,
	}
	return p, evt, nil
}

// newTransactionID builds a human-traceable transaction reference of the
// form TXN-20260829-1A2B3C4D.
func newTransactionID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("TXN-%s-%s", now.Format("20060102"), suffix)
}

// Restore rehydrates a payment from stored state. It performs no validation
// beyond what the store guarantees.
func Restore(
	id, userID, gameID uuid.UUID,
	amount decimal.Decimal,
	method Method,
	status Status,
	transactionID string,
	failureReason *string,
	createdAt time.Time,
	processedAt, completedAt *time.Time,
	version uint64,
) *Payment {
	return &Payment{
		id:            id,
		userID:        userID,
		gameID:        gameID,
		amount:        amount,
		method:        method,
		status:        status,
		transactionID: transactionID,
		failureReason: failureReason,
		createdAt:     createdAt,
		processedAt:   processedAt,
		completedAt:   completedAt,
		version:       version,
	}
}

// StartProcessing moves a pending payment to processing.
func (p *Payment) StartProcessing() (*ProcessingEvent, error) {
	if !p.status.CanTransitionTo(StatusProcessing) {
		return nil, invalidTransitionError(p.status, StatusProcessing)
	}
	now := time.Now().UTC()
	p.status = StatusProcessing
	p.processedAt = &now

	return &ProcessingEvent{
		BaseEvent:     events.NewBaseEvent(ProcessingEventType, p.id, aggregateType),
		PaymentID:     p.id,
		TransactionID: p.transactionID,
		ProcessedAt:   now,
	}, nil
}

// Complete moves a processing payment to completed.
func (p *Payment) Complete() (*CompletedEvent, error) {
	if !p.status.CanTransitionTo(StatusCompleted) {
		return nil, invalidTransitionError(p.status, StatusCompleted)
	}
	now := time.Now().UTC()
	p.status = StatusCompleted
	p.completedAt = &now

	return &CompletedEvent{
		BaseEvent:     events.NewBaseEvent(CompletedEventType, p.id, aggregateType),
		PaymentID:     p.id,
		UserID:        p.userID,
		GameID:        p.gameID,
		Amount:        p.amount,
		TransactionID: p.transactionID,
		CompletedAt:   now,
	}, nil
}

// Fail moves a processing payment to failed, recording the reason.
func (p *Payment) Fail(reason string) (*FailedEvent, error) {
	if !p.status.CanTransitionTo(StatusFailed) {
		return nil, invalidTransitionError(p.status, StatusFailed)
	}
	if strings.TrimSpace(reason) == "" {
		return nil, validationError("failure reason is required")
	}
	now := time.Now().UTC()
	p.status = StatusFailed
	p.failureReason = &reason

	return &FailedEvent{
		BaseEvent:     events.NewBaseEvent(FailedEventType, p.id, aggregateType),
		PaymentID:     p.id,
		TransactionID: p.transactionID,
		Reason:        reason,
		FailedAt:      now,
	}, nil
}

// Refund moves a completed payment to refunded.
func (p *Payment) Refund() (*RefundedEvent, error) {
	if !p.status.CanTransitionTo(StatusRefunded) {
		return nil, invalidTransitionError(p.status, StatusRefunded)
	}
	now := time.Now().UTC()
	p.status = StatusRefunded

	return &RefundedEvent{
		BaseEvent:     events.NewBaseEvent(RefundedEventType, p.id, aggregateType),
		PaymentID:     p.id,
		UserID:        p.userID,
		Amount:        p.amount,
		TransactionID: p.transactionID,
		RefundedAt:    now,
	}, nil
}

// Cancel moves a pending payment to cancelled.
func (p *Payment) Cancel() (*CancelledEvent, error) {
	if !p.status.CanTransitionTo(StatusCancelled) {
		return nil, invalidTransitionError(p.status, StatusCancelled)
	}
	now := time.Now().UTC()
	p.status = StatusCancelled

	return &CancelledEvent{
		BaseEvent:     events.NewBaseEvent(CancelledEventType, p.id, aggregateType),
		PaymentID:     p.id,
		TransactionID: p.transactionID,
		CancelledAt:   now,
	}, nil
}

func (p *Payment) ID() uuid.UUID           { return p.id }
func (p *Payment) UserID() uuid.UUID       { return p.userID }
func (p *Payment) GameID() uuid.UUID       { return p.gameID }
func (p *Payment) Amount() decimal.Decimal { return p.amount }
func (p *Payment) Method() Method          { return p.method }
func (p *Payment) Status() Status          { return p.status }
func (p *Payment) TransactionID() string   { return p.transactionID }
func (p *Payment) FailureReason() *string  { return p.failureReason }
func (p *Payment) CreatedAt() time.Time    { return p.createdAt }
func (p *Payment) ProcessedAt() *time.Time { return p.processedAt }
func (p *Payment) CompletedAt() *time.Time { return p.completedAt }

// Version returns the optimistic concurrency token. Zero means the payment
// has never been persisted.
func (p *Payment) Version() uint64 { return p.version }

// SetVersion is called by the persistence layer after a successful save.
func (p *Payment) SetVersion(v uint64) { p.version = v }
