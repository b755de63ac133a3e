package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamehub/payments/internal/domain/payment"
)

func TestMapping(t *testing.T) {
	p, _, err := payment.New(uuid.New(), uuid.New(), decimal.NewFromFloat(129.90), payment.MethodCreditCard)
	require.NoError(t, err)
	_, err = p.StartProcessing()
	require.NoError(t, err)
	_, err = p.Fail("transaction declined by payment gateway")
	require.NoError(t, err)
	p.SetVersion(2)

	e := FromDomain(p)
	assert.Equal(t, p.ID(), e.ID)
	assert.Equal(t, "failed", e.Status)
	assert.Equal(t, "credit_card", e.Method)
	assert.Equal(t, p.TransactionID(), e.TransactionID)
	assert.Equal(t, uint64(2), e.Version)
	require.NotNil(t, e.FailureReason)

	back := e.ToDomain()
	assert.Equal(t, p.ID(), back.ID())
	assert.Equal(t, p.UserID(), back.UserID())
	assert.Equal(t, p.GameID(), back.GameID())
	assert.True(t, p.Amount().Equal(back.Amount()))
	assert.Equal(t, payment.StatusFailed, back.Status())
	assert.Equal(t, p.FailureReason(), back.FailureReason())
	assert.Equal(t, p.ProcessedAt(), back.ProcessedAt())
	assert.Equal(t, uint64(2), back.Version())
}
