package payment

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/gamehub/payments/internal/shared/errors"
)

var txnPattern = regexp.MustCompile(`^TXN-\d{8}-[0-9A-F]{8}$`)

func newTestPayment(t *testing.T) *Payment {
	t.Helper()
	p, evt, err := New(uuid.New(), uuid.New(), decimal.NewFromFloat(59.90), MethodPix)
	require.NoError(t, err)
	require.NotNil(t, evt)
	return p
}

func TestNew(t *testing.T) {
	userID := uuid.New()
	gameID := uuid.New()
	amount := decimal.NewFromFloat(199.99)

	t.Run("creates pending payment", func(t *testing.T) {
		p, evt, err := New(userID, gameID, amount, MethodCreditCard)
		require.NoError(t, err)
		require.NotNil(t, evt)

		assert.NotEqual(t, uuid.Nil, p.ID())
		assert.Equal(t, userID, p.UserID())
		assert.Equal(t, gameID, p.GameID())
		assert.True(t, amount.Equal(p.Amount()))
		assert.Equal(t, MethodCreditCard, p.Method())
		assert.Equal(t, StatusPending, p.Status())
		assert.Nil(t, p.ProcessedAt())
		assert.Nil(t, p.CompletedAt())
		assert.Nil(t, p.FailureReason())
		assert.Equal(t, uint64(0), p.Version())
		assert.WithinDuration(t, time.Now().UTC(), p.CreatedAt(), time.Second)
	})

	t.Run("generates transaction reference", func(t *testing.T) {
		p, _, err := New(userID, gameID, amount, MethodPix)
		require.NoError(t, err)
		assert.Regexp(t, txnPattern, p.TransactionID())
		assert.Contains(t, p.TransactionID(), p.CreatedAt().Format("20060102"))
	})

	t.Run("created event carries the snapshot", func(t *testing.T) {
		p, evt, err := New(userID, gameID, amount, MethodPix)
		require.NoError(t, err)

		assert.Equal(t, CreatedEventType, evt.EventType())
		assert.Equal(t, p.ID(), evt.AggregateID())
		assert.Equal(t, "Payment", evt.AggregateType())
		assert.Equal(t, p.ID(), evt.PaymentID)
		assert.Equal(t, userID, evt.UserID)
		assert.Equal(t, gameID, evt.GameID)
		assert.Equal(t, p.TransactionID(), evt.TransactionID)
		assert.True(t, amount.Equal(evt.Amount))
	})

	t.Run("rejects nil user", func(t *testing.T) {
		_, _, err := New(uuid.Nil, gameID, amount, MethodPix)
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})

	t.Run("rejects nil game", func(t *testing.T) {
		_, _, err := New(userID, uuid.Nil, amount, MethodPix)
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		_, _, err := New(userID, gameID, decimal.Zero, MethodPix)
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, _, err := New(userID, gameID, decimal.NewFromFloat(-1), MethodPix)
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})

	t.Run("rejects amount above the cap", func(t *testing.T) {
		_, _, err := New(userID, gameID, decimal.NewFromFloat(1000000), MethodPix)
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})

	t.Run("accepts amount at the cap", func(t *testing.T) {
		_, _, err := New(userID, gameID, MaxAmount, MethodPix)
		assert.NoError(t, err)
	})

	t.Run("rejects unknown method", func(t *testing.T) {
		_, _, err := New(userID, gameID, amount, Method("crypto"))
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})
}

func TestTransitions(t *testing.T) {
	t.Run("full success path", func(t *testing.T) {
		p := newTestPayment(t)

		processing, err := p.StartProcessing()
		require.NoError(t, err)
		assert.Equal(t, StatusProcessing, p.Status())
		assert.NotNil(t, p.ProcessedAt())
		assert.Equal(t, ProcessingEventType, processing.EventType())

		completed, err := p.Complete()
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, p.Status())
		assert.NotNil(t, p.CompletedAt())
		assert.Equal(t, CompletedEventType, completed.EventType())

		refunded, err := p.Refund()
		require.NoError(t, err)
		assert.Equal(t, StatusRefunded, p.Status())
		assert.Equal(t, RefundedEventType, refunded.EventType())
	})

	t.Run("failure path records reason", func(t *testing.T) {
		p := newTestPayment(t)
		_, err := p.StartProcessing()
		require.NoError(t, err)

		failed, err := p.Fail("transaction declined by payment gateway")
		require.NoError(t, err)
		assert.Equal(t, StatusFailed, p.Status())
		require.NotNil(t, p.FailureReason())
		assert.Equal(t, "transaction declined by payment gateway", *p.FailureReason())
		assert.Equal(t, "transaction declined by payment gateway", failed.Reason)
	})

	t.Run("fail requires a reason", func(t *testing.T) {
		for _, reason := range []string{"", "   ", "\t\n"} {
			p := newTestPayment(t)
			_, err := p.StartProcessing()
			require.NoError(t, err)

			_, err = p.Fail(reason)
			assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
			assert.Equal(t, StatusProcessing, p.Status())
			assert.Nil(t, p.FailureReason())
		}
	})

	t.Run("cancel from pending", func(t *testing.T) {
		p := newTestPayment(t)
		cancelled, err := p.Cancel()
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, p.Status())
		assert.Equal(t, CancelledEventType, cancelled.EventType())
	})

	t.Run("illegal transitions leave state untouched", func(t *testing.T) {
		cases := []struct {
			name string
			move func(p *Payment) error
		}{
			{"complete from pending", func(p *Payment) error { _, err := p.Complete(); return err }},
			{"fail from pending", func(p *Payment) error { _, err := p.Fail("x"); return err }},
			{"refund from pending", func(p *Payment) error { _, err := p.Refund(); return err }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				p := newTestPayment(t)
				err := tc.move(p)
				assert.ErrorIs(t, err, ErrInvalidTransition)
				assert.ErrorIs(t, err, apperrors.ErrInvalidState)
				assert.Equal(t, StatusPending, p.Status())
				assert.Nil(t, p.ProcessedAt())
				assert.Nil(t, p.CompletedAt())
				assert.Nil(t, p.FailureReason())
			})
		}
	})

	t.Run("terminal states refuse everything", func(t *testing.T) {
		p := newTestPayment(t)
		_, err := p.Cancel()
		require.NoError(t, err)

		_, err = p.StartProcessing()
		assert.ErrorIs(t, err, ErrInvalidTransition)
		_, err = p.Refund()
		assert.ErrorIs(t, err, ErrInvalidTransition)
		_, err = p.Cancel()
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("refunded refuses further refunds", func(t *testing.T) {
		p := newTestPayment(t)
		_, err := p.StartProcessing()
		require.NoError(t, err)
		_, err = p.Complete()
		require.NoError(t, err)
		_, err = p.Refund()
		require.NoError(t, err)

		_, err = p.Refund()
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestRestore(t *testing.T) {
	id := uuid.New()
	userID := uuid.New()
	gameID := uuid.New()
	createdAt := time.Now().UTC().Add(-time.Hour)
	processedAt := createdAt.Add(time.Minute)
	reason := "transaction declined by payment gateway"

	p := Restore(
		id, userID, gameID,
		decimal.NewFromFloat(10.50),
		MethodDebitCard,
		StatusFailed,
		"TXN-20260829-DEADBEEF",
		&reason,
		createdAt,
		&processedAt, nil,
		3,
	)

	assert.Equal(t, id, p.ID())
	assert.Equal(t, StatusFailed, p.Status())
	assert.Equal(t, "TXN-20260829-DEADBEEF", p.TransactionID())
	assert.Equal(t, &reason, p.FailureReason())
	assert.Equal(t, uint64(3), p.Version())

	// A failed payment stays failed.
	_, err := p.StartProcessing()
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}
