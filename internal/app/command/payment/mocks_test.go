package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/gamehub/payments/internal/domain/payment"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*payment.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) GetByTransactionID(ctx context.Context, transactionID string) (*payment.Payment, error) {
	args := m.Called(ctx, transactionID)
	if p := args.Get(0); p != nil {
		return p.(*payment.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*payment.Payment, error) {
	args := m.Called(ctx, userID)
	if ps := args.Get(0); ps != nil {
		return ps.([]*payment.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ListByGame(ctx context.Context, gameID uuid.UUID) ([]*payment.Payment, error) {
	args := m.Called(ctx, gameID)
	if ps := args.Get(0); ps != nil {
		return ps.([]*payment.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ListByStatus(ctx context.Context, status payment.Status) ([]*payment.Payment, error) {
	args := m.Called(ctx, status)
	if ps := args.Get(0); ps != nil {
		return ps.([]*payment.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ListPending(ctx context.Context) ([]*payment.Payment, error) {
	args := m.Called(ctx)
	if ps := args.Get(0); ps != nil {
		return ps.([]*payment.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ListStaleProcessing(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error) {
	args := m.Called(ctx, cutoff)
	if ps := args.Get(0); ps != nil {
		return ps.([]*payment.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) Save(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishProcessed(p *payment.Payment) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *mockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// stubGateway always returns a fixed decision.
type stubGateway struct {
	approve bool
}

func (g stubGateway) Approve(context.Context, *payment.Payment) bool {
	return g.approve
}

func pendingPayment(userID, gameID uuid.UUID) *payment.Payment {
	p, _, _ := payment.New(userID, gameID, decimal.NewFromFloat(49.90), payment.MethodPix)
	p.SetVersion(1)
	return p
}
