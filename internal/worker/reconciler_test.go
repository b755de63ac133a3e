package worker

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gamehub/payments/internal/domain/payment"
	"github.com/gamehub/payments/internal/infra/eventbus"
	"github.com/gamehub/payments/internal/shared/config"
	"github.com/gamehub/payments/internal/shared/metrics"
)

// fakeRepo serves a canned stale list and records saves.
type fakeRepo struct {
	stale    []*payment.Payment
	saved    []*payment.Payment
	saveErrs map[uuid.UUID]error
}

func (f *fakeRepo) GetByID(context.Context, uuid.UUID) (*payment.Payment, error) {
	return nil, payment.ErrNotFound
}

func (f *fakeRepo) GetByTransactionID(context.Context, string) (*payment.Payment, error) {
	return nil, payment.ErrNotFound
}

func (f *fakeRepo) ListByUser(context.Context, uuid.UUID) ([]*payment.Payment, error) {
	return nil, nil
}

func (f *fakeRepo) ListByGame(context.Context, uuid.UUID) ([]*payment.Payment, error) {
	return nil, nil
}

func (f *fakeRepo) ListByStatus(context.Context, payment.Status) ([]*payment.Payment, error) {
	return nil, nil
}

func (f *fakeRepo) ListPending(context.Context) ([]*payment.Payment, error) {
	return nil, nil
}

func (f *fakeRepo) ListStaleProcessing(context.Context, time.Time) ([]*payment.Payment, error) {
	return f.stale, nil
}

func (f *fakeRepo) Exists(context.Context, uuid.UUID) (bool, error) {
	return false, nil
}

func (f *fakeRepo) Save(_ context.Context, p *payment.Payment) error {
	if err, ok := f.saveErrs[p.ID()]; ok {
		return err
	}
	f.saved = append(f.saved, p)
	return nil
}

func processingPayment(t *testing.T) *payment.Payment {
	t.Helper()
	p, _, err := payment.New(uuid.New(), uuid.New(), decimal.NewFromFloat(15), payment.MethodPix)
	require.NoError(t, err)
	_, err = p.StartProcessing()
	require.NoError(t, err)
	p.SetVersion(2)
	return p
}

func newTestReconciler(repo payment.Repository) *Reconciler {
	cfg := config.ReconcilerConfig{
		Enabled:           true,
		Interval:          time.Minute,
		ProcessingTimeout: 5 * time.Minute,
	}
	return NewReconciler(repo, eventbus.New(zap.NewNop()), cfg, metrics.New("test"), zap.NewNop())
}

func TestSweep(t *testing.T) {
	ctx := context.Background()

	t.Run("fails stuck payments", func(t *testing.T) {
		p := processingPayment(t)
		repo := &fakeRepo{stale: []*payment.Payment{p}}

		newTestReconciler(repo).Sweep(ctx)

		require.Len(t, repo.saved, 1)
		assert.Equal(t, payment.StatusFailed, p.Status())
		require.NotNil(t, p.FailureReason())
		assert.Equal(t, StuckReason, *p.FailureReason())
	})

	t.Run("skips payments lost to a concurrent writer", func(t *testing.T) {
		p := processingPayment(t)
		repo := &fakeRepo{
			stale:    []*payment.Payment{p},
			saveErrs: map[uuid.UUID]error{p.ID(): payment.ErrConflict},
		}

		newTestReconciler(repo).Sweep(ctx)

		assert.Empty(t, repo.saved)
	})

	t.Run("sweeps the rest when one save fails", func(t *testing.T) {
		a := processingPayment(t)
		b := processingPayment(t)
		repo := &fakeRepo{
			stale:    []*payment.Payment{a, b},
			saveErrs: map[uuid.UUID]error{a.ID(): payment.ErrConflict},
		}

		newTestReconciler(repo).Sweep(ctx)

		require.Len(t, repo.saved, 1)
		assert.Equal(t, b.ID(), repo.saved[0].ID())
	})
}
