package gateway

import (
	"context"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/gamehub/payments/internal/domain/payment"
	"github.com/gamehub/payments/internal/shared/metrics"
)

// Simulated approves payments at a configured rate. It stands in for a real
// processor integration in non-production environments.
type Simulated struct {
	successRate float64
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewSimulated creates a gateway approving the given fraction of payments.
func NewSimulated(successRate float64, m *metrics.Metrics, logger *zap.Logger) *Simulated {
	return &Simulated{
		successRate: successRate,
		metrics:     m,
		logger:      logger,
	}
}

// Approve draws a uniform sample against the configured success rate.
func (g *Simulated) Approve(_ context.Context, p *payment.Payment) bool {
	approved := rand.Float64() < g.successRate

	outcome := "declined"
	if approved {
		outcome = "approved"
	}
	g.metrics.GatewayDecisionsTotal.WithLabelValues(outcome).Inc()
	g.logger.Debug("gateway decision",
		zap.String("transaction_id", p.TransactionID()),
		zap.String("outcome", outcome),
	)
	return approved
}
