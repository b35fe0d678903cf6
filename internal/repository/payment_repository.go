package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"soulsynergy/internal/domain"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByProviderID(ctx context.Context, providerPaymentID string) (*domain.Payment, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus) error
	ListByClient(ctx context.Context, clientID uuid.UUID, params domain.PaginationParams) ([]domain.Payment, int64, error)
}

type paymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (id, product_id, client_id, provider_payment_id, amount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		payment.ID, payment.ProductID, payment.ClientID,
		payment.ProviderPaymentID, payment.Amount, payment.Status,
	).Scan(&payment.CreatedAt, &payment.UpdatedAt)
}

func (r *paymentRepository) GetByProviderID(ctx context.Context, providerPaymentID string) (*domain.Payment, error) {
	var payment domain.Payment
	query := `SELECT * FROM payments WHERE provider_payment_id = $1`

	err := r.db.GetContext(ctx, &payment, query, providerPaymentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) SetStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus) error {
	query := `UPDATE payments SET status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, status)
	return err
}

func (r *paymentRepository) ListByClient(ctx context.Context, clientID uuid.UUID, params domain.PaginationParams) ([]domain.Payment, int64, error) {
	params.Validate()

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM payments WHERE client_id = $1`, clientID); err != nil {
		return nil, 0, err
	}

	var payments []domain.Payment
	query := `
		SELECT * FROM payments
		WHERE client_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &payments, query, clientID, params.PageSize, params.Offset())
	return payments, total, err
}
