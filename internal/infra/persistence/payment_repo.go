package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gamehub/payments/internal/domain/payment"
	"github.com/gamehub/payments/internal/infra/persistence/entity"
	apperrors "github.com/gamehub/payments/internal/shared/errors"
)

// PaymentRepository is the gorm-backed implementation of payment.Repository.
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a repository and migrates the payments table.
func NewPaymentRepository(db *gorm.DB) (*PaymentRepository, error) {
	if err := db.AutoMigrate(&entity.PaymentEntity{}); err != nil {
		return nil, fmt.Errorf("migrate payments table: %w", err)
	}
	return &PaymentRepository{db: db}, nil
}

// GetByID loads a payment by its identifier.
func (r *PaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	var e entity.PaymentEntity
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payment.ErrNotFound
		}
		return nil, storageError("get payment by id", err)
	}
	return e.ToDomain(), nil
}

// GetByTransactionID loads a payment by its transaction reference.
func (r *PaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*payment.Payment, error) {
	var e entity.PaymentEntity
	err := r.db.WithContext(ctx).First(&e, "transaction_id = ?", transactionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payment.ErrNotFound
		}
		return nil, storageError("get payment by transaction id", err)
	}
	return e.ToDomain(), nil
}

// ListByUser returns a user's payments, newest first.
func (r *PaymentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*payment.Payment, error) {
	return r.list(ctx, "user_id = ?", userID)
}

// ListByGame returns a game's payments, newest first.
func (r *PaymentRepository) ListByGame(ctx context.Context, gameID uuid.UUID) ([]*payment.Payment, error) {
	return r.list(ctx, "game_id = ?", gameID)
}

// ListByStatus returns payments in a given status, newest first.
func (r *PaymentRepository) ListByStatus(ctx context.Context, status payment.Status) ([]*payment.Payment, error) {
	return r.list(ctx, "status = ?", string(status))
}

func (r *PaymentRepository) list(ctx context.Context, query string, arg any) ([]*payment.Payment, error) {
	var rows []entity.PaymentEntity
	err := r.db.WithContext(ctx).
		Where(query, arg).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, storageError("list payments", err)
	}
	return toDomainSlice(rows), nil
}

// ListPending returns the pending backlog, oldest first.
func (r *PaymentRepository) ListPending(ctx context.Context) ([]*payment.Payment, error) {
	var rows []entity.PaymentEntity
	err := r.db.WithContext(ctx).
		Where("status = ?", string(payment.StatusPending)).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, storageError("list pending payments", err)
	}
	return toDomainSlice(rows), nil
}

// ListStaleProcessing returns processing payments whose processed_at is older
// than the cutoff, oldest first so the longest-stuck are handled first.
func (r *PaymentRepository) ListStaleProcessing(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error) {
	var rows []entity.PaymentEntity
	err := r.db.WithContext(ctx).
		Where("status = ? AND processed_at < ?", string(payment.StatusProcessing), cutoff).
		Order("processed_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, storageError("list stale processing payments", err)
	}
	return toDomainSlice(rows), nil
}

// Exists reports whether a payment row exists.
func (r *PaymentRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.PaymentEntity{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, storageError("check payment exists", err)
	}
	return count > 0, nil
}

// Save upserts the payment with optimistic concurrency. Version 0 inserts a
// fresh row at version 1; any other version updates the row only if it still
// carries that version. Losing the race, or colliding on the transaction ID
// unique index, returns payment.ErrConflict.
func (r *PaymentRepository) Save(ctx context.Context, p *payment.Payment) error {
	e := entity.FromDomain(p)

	if p.Version() == 0 {
		e.Version = 1
		if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return payment.ErrConflict
			}
			return storageError("insert payment", err)
		}
		p.SetVersion(1)
		return nil
	}

	e.Version = p.Version() + 1
	res := r.db.WithContext(ctx).
		Model(&entity.PaymentEntity{}).
		Where("id = ? AND version = ?", p.ID(), p.Version()).
		Updates(e)
	if res.Error != nil {
		return storageError("update payment", res.Error)
	}
	if res.RowsAffected == 0 {
		exists, err := r.Exists(ctx, p.ID())
		if err != nil {
			return err
		}
		if !exists {
			return payment.ErrNotFound
		}
		return payment.ErrConflict
	}
	p.SetVersion(p.Version() + 1)
	return nil
}

func toDomainSlice(rows []entity.PaymentEntity) []*payment.Payment {
	out := make([]*payment.Payment, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out
}

func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, apperrors.ErrStorageUnavailable, err)
}
