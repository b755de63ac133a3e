package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gamehub/payments/internal/domain/payment"
)

// CreatePaymentRequest is the inbound payload for creating a payment.
type CreatePaymentRequest struct {
	UserID string          `json:"user_id" binding:"required,uuid"`
	GameID string          `json:"game_id" binding:"required,uuid"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Method string          `json:"method" binding:"required"`
}

// PaymentResponse is the full outward view of a payment.
type PaymentResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	GameID        string          `json:"game_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Status        string          `json:"status"`
	TransactionID string          `json:"transaction_id"`
	FailureReason *string         `json:"failure_reason,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	ProcessedAt   *time.Time      `json:"processed_at,omitempty"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
}

// PaymentStatusResponse is the lightweight status view.
type PaymentStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// PaymentListResponse wraps a collection of payments.
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int               `json:"total"`
}

// FromDomain maps an aggregate to its response form.
func FromDomain(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID().String(),
		UserID:        p.UserID().String(),
		GameID:        p.GameID().String(),
		Amount:        p.Amount(),
		Method:        string(p.Method()),
		Status:        string(p.Status()),
		TransactionID: p.TransactionID(),
		FailureReason: p.FailureReason(),
		CreatedAt:     p.CreatedAt(),
		ProcessedAt:   p.ProcessedAt(),
		CompletedAt:   p.CompletedAt(),
	}
}

// ListFromDomain maps a slice of aggregates to a list response.
func ListFromDomain(payments []*payment.Payment) PaymentListResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromDomain(p))
	}
	return PaymentListResponse{Payments: out, Total: len(out)}
}
