package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"soulsynergy/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByExpert(ctx context.Context, expertID uuid.UUID, activeOnly bool, params domain.PaginationParams) ([]domain.Product, int64, error)
}

type productRepository struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (id, expert_id, title, description, price, image_url, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		product.ID, product.ExpertID, product.Title, product.Description,
		product.Price, product.ImageURL, product.IsActive,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var product domain.Product
	query := `SELECT * FROM products WHERE id = $1`

	err := r.db.GetContext(ctx, &product, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET title = :title, description = :description, price = :price,
			image_url = :image_url, is_active = :is_active, updated_at = NOW()
		WHERE id = :id`

	_, err := r.db.NamedExecContext(ctx, query, product)
	return err
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM products WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *productRepository) ListByExpert(ctx context.Context, expertID uuid.UUID, activeOnly bool, params domain.PaginationParams) ([]domain.Product, int64, error) {
	params.Validate()

	filter := ``
	if activeOnly {
		filter = ` AND is_active = TRUE`
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM products WHERE expert_id = $1` + filter
	if err := r.db.GetContext(ctx, &total, countQuery, expertID); err != nil {
		return nil, 0, err
	}

	var products []domain.Product
	query := `SELECT * FROM products WHERE expert_id = $1` + filter + `
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &products, query, expertID, params.PageSize, params.Offset())
	return products, total, err
}
