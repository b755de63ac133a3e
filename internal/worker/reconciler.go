package worker

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/gamehub/payments/internal/domain/events"
	"github.com/gamehub/payments/internal/domain/payment"
	"github.com/gamehub/payments/internal/infra/eventbus"
	"github.com/gamehub/payments/internal/shared/config"
	"github.com/gamehub/payments/internal/shared/metrics"
)

// StuckReason is recorded on payments failed by the reconciler.
const StuckReason = "payment processing timed out"

// Reconciler periodically fails payments stuck in processing longer than the
// configured timeout. A gateway call that crashed mid-flight leaves the row
// in processing forever; the sweep resolves it to a terminal state.
type Reconciler struct {
	repo     payment.Repository
	bus      *eventbus.Bus
	interval time.Duration
	timeout  time.Duration
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewReconciler creates a reconciler from its sweep configuration.
func NewReconciler(repo payment.Repository, bus *eventbus.Bus, cfg config.ReconcilerConfig, m *metrics.Metrics, logger *zap.Logger) *Reconciler {
	return &Reconciler{
		repo:     repo,
		bus:      bus,
		interval: cfg.Interval,
		timeout:  cfg.ProcessingTimeout,
		metrics:  m,
		logger:   logger,
	}
}

// Run sweeps on a ticker until the context is cancelled.
func (r *Reconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("reconciler started",
		zap.Duration("interval", r.interval),
		zap.Duration("processing_timeout", r.timeout),
	)
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("reconciler stopped")
			return
		case <-ticker.C:
			r.Sweep(ctx)
		}
	}
}

// Sweep fails every payment stuck in processing beyond the timeout. Version
// conflicts mean another writer resolved the payment first and are skipped.
func (r *Reconciler) Sweep(ctx context.Context) {
	if pending, err := r.repo.ListPending(ctx); err == nil {
		r.metrics.PendingBacklog.Set(float64(len(pending)))
	}

	cutoff := time.Now().UTC().Add(-r.timeout)
	stale, err := r.repo.ListStaleProcessing(ctx, cutoff)
	if err != nil {
		r.logger.Error("stale payment sweep failed", zap.Error(err))
		return
	}

	for _, p := range stale {
		failed, err := p.Fail(StuckReason)
		if err != nil {
			continue
		}
		if err := r.repo.Save(ctx, p); err != nil {
			if errors.Is(err, payment.ErrConflict) {
				continue
			}
			r.logger.Error("failed to resolve stuck payment",
				zap.String("payment_id", p.ID().String()),
				zap.Error(err),
			)
			continue
		}
		r.logger.Warn("stuck payment failed by reconciler",
			zap.String("payment_id", p.ID().String()),
			zap.String("transaction_id", p.TransactionID()),
		)
		r.bus.PublishAll(ctx, []events.Event{failed})
	}
}
