package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gamehub/payments/internal/domain/events"
)

// Event type constants.
const (
	CreatedEventType    = "PaymentCreated"
	ProcessingEventType = "PaymentProcessing"
	CompletedEventType  = "PaymentCompleted"
	FailedEventType     = "PaymentFailed"
	RefundedEventType   = "PaymentRefunded"
	CancelledEventType  = "PaymentCancelled"
)

const aggregateType = "Payment"

// CreatedEvent is emitted when a payment is created.
type CreatedEvent struct {
	events.BaseEvent

	PaymentID     uuid.UUID       `json:"payment_id"`
	UserID        uuid.UUID       `json:"user_id"`
	GameID        uuid.UUID       `json:"game_id"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transaction_id"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ProcessingEvent is emitted when gateway processing starts.
type ProcessingEvent struct {
	events.BaseEvent

	PaymentID     uuid.UUID `json:"payment_id"`
	TransactionID string    `json:"transaction_id"`
	ProcessedAt   time.Time `json:"processed_at"`
}

// CompletedEvent is emitted when a payment completes successfully.
type CompletedEvent struct {
	events.BaseEvent

	PaymentID     uuid.UUID       `json:"payment_id"`
	UserID        uuid.UUID       `json:"user_id"`
	GameID        uuid.UUID       `json:"game_id"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transaction_id"`
	CompletedAt   time.Time       `json:"completed_at"`
}

// FailedEvent is emitted when the gateway declines a payment.
type FailedEvent struct {
	events.BaseEvent

	PaymentID     uuid.UUID `json:"payment_id"`
	TransactionID string    `json:"transaction_id"`
	Reason        string    `json:"reason"`
	FailedAt      time.Time `json:"failed_at"`
}

// RefundedEvent is emitted when a completed payment is refunded.
type RefundedEvent struct {
	events.BaseEvent

	PaymentID     uuid.UUID       `json:"payment_id"`
	UserID        uuid.UUID       `json:"user_id"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transaction_id"`
	RefundedAt    time.Time       `json:"refunded_at"`
}

// CancelledEvent is emitted when a pending payment is cancelled.
type CancelledEvent struct {
	events.BaseEvent

	PaymentID     uuid.UUID `json:"payment_id"`
	TransactionID string    `json:"transaction_id"`
	CancelledAt   time.Time `json:"cancelled_at"`
}
