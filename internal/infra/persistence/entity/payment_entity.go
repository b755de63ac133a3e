package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gamehub/payments/internal/domain/payment"
)

// PaymentEntity is the gorm mapping for the payments table.
type PaymentEntity struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	GameID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Method        string          `gorm:"type:varchar(32);not null"`
	Status        string          `gorm:"type:varchar(16);not null;index"`
	TransactionID string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	FailureReason *string         `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null;index"`
	ProcessedAt   *time.Time
	CompletedAt   *time.Time
	Version       uint64 `gorm:"not null;default:0"`
}

// TableName overrides the gorm default.
func (PaymentEntity) TableName() string {
	return "payments"
}

// FromDomain maps an aggregate to its row representation. The stored version
// is the aggregate's current version; Save decides how to bump it.
func FromDomain(p *payment.Payment) *PaymentEntity {
	return &PaymentEntity{
		ID:            p.ID(),
		UserID:        p.UserID(),
		GameID:        p.GameID(),
		Amount:        p.Amount(),
		Method:        string(p.Method()),
		Status:        string(p.Status()),
		TransactionID: p.TransactionID(),
		FailureReason: p.FailureReason(),
		CreatedAt:     p.CreatedAt(),
		ProcessedAt:   p.ProcessedAt(),
		CompletedAt:   p.CompletedAt(),
		Version:       p.Version(),
	}
}

// ToDomain rehydrates the aggregate from a row.
func (e *PaymentEntity) ToDomain() *payment.Payment {
	return payment.Restore(
		e.ID, e.UserID, e.GameID,
		e.Amount,
		payment.Method(e.Method),
		payment.Status(e.Status),
		e.TransactionID,
		e.FailureReason,
		e.CreatedAt,
		e.ProcessedAt, e.CompletedAt,
		e.Version,
	)
}
