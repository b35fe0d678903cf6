package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"soulsynergy/internal/domain"
)

type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	Update(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListPublished(ctx context.Context, params domain.PaginationParams) ([]domain.Article, int64, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID, params domain.PaginationParams) ([]domain.Article, int64, error)
	ListPending(ctx context.Context, params domain.PaginationParams) ([]domain.Article, int64, error)
	CountPending(ctx context.Context) (int64, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	AdjustLikes(ctx context.Context, id uuid.UUID, delta int64) error

	// Transition methods return false when the row was not in a state the
	// transition is legal from, without touching it.
	SubmitForModeration(ctx context.Context, id uuid.UUID) (bool, error)
	Approve(ctx context.Context, id uuid.UUID) (bool, error)
	Reject(ctx context.Context, id uuid.UUID, reason string) (bool, error)
	SetArchived(ctx context.Context, id uuid.UUID, archived bool) error
}

type articleRepository struct {
	db *sqlx.DB
}

func NewArticleRepository(db *sqlx.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *domain.Article) error {
	query := `
		INSERT INTO articles (id, author_id, title, content, cover_image, moderation_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		article.ID, article.AuthorID, article.Title, article.Content,
		article.CoverImage, article.ModerationStatus,
	).Scan(&article.CreatedAt, &article.UpdatedAt)
}

func (r *articleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	var article domain.Article
	query := `
		SELECT a.*, u.full_name AS author_name
		FROM articles a
		JOIN users u ON a.author_id = u.id
		WHERE a.id = $1`

	err := r.db.GetContext(ctx, &article, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) Update(ctx context.Context, article *domain.Article) error {
	query := `
		UPDATE articles
		SET title = :title, content = :content, cover_image = :cover_image, updated_at = NOW()
		WHERE id = :id`

	_, err := r.db.NamedExecContext(ctx, query, article)
	return err
}

func (r *articleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM articles WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *articleRepository) ListPublished(ctx context.Context, params domain.PaginationParams) ([]domain.Article, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM articles WHERE is_published = TRUE AND archived = FALSE`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	var articles []domain.Article
	query := `
		SELECT a.*, u.full_name AS author_name
		FROM articles a
		JOIN users u ON a.author_id = u.id
		WHERE a.is_published = TRUE AND a.archived = FALSE
		ORDER BY a.created_at DESC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &articles, query, params.PageSize, params.Offset())
	return articles, total, err
}

func (r *articleRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID, params domain.PaginationParams) ([]domain.Article, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM articles WHERE author_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, authorID); err != nil {
		return nil, 0, err
	}

	var articles []domain.Article
	query := `
		SELECT * FROM articles
		WHERE author_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &articles, query, authorID, params.PageSize, params.Offset())
	return articles, total, err
}

func (r *articleRepository) ListPending(ctx context.Context, params domain.PaginationParams) ([]domain.Article, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM articles WHERE moderation_status = 'pending'`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	var articles []domain.Article
	query := `
		SELECT a.*, u.full_name AS author_name
		FROM articles a
		JOIN users u ON a.author_id = u.id
		WHERE a.moderation_status = 'pending'
		ORDER BY a.created_at ASC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &articles, query, params.PageSize, params.Offset())
	return articles, total, err
}

func (r *articleRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM articles WHERE moderation_status = 'pending'`)
	return count, err
}

func (r *articleRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE articles SET views = views + 1 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *articleRepository) AdjustLikes(ctx context.Context, id uuid.UUID, delta int64) error {
	query := `UPDATE articles SET likes_count = GREATEST(likes_count + $2, 0) WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, delta)
	return err
}

func (r *articleRepository) SubmitForModeration(ctx context.Context, id uuid.UUID) (bool, error) {
	// The state guard in the WHERE clause makes a double-submitted publish
	// a no-op rather than a double transition.
	query := `
		UPDATE articles
		SET moderation_status = 'pending', moderation_reason = NULL, updated_at = NOW()
		WHERE id = $1 AND moderation_status IN ('draft', 'rejected')`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}

func (r *articleRepository) Approve(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE articles
		SET moderation_status = 'approved', is_published = TRUE, moderation_reason = NULL, updated_at = NOW()
		WHERE id = $1 AND moderation_status = 'pending'`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}

func (r *articleRepository) Reject(ctx context.Context, id uuid.UUID, reason string) (bool, error) {
	query := `
		UPDATE articles
		SET moderation_status = 'rejected', is_published = FALSE, moderation_reason = $2, updated_at = NOW()
		WHERE id = $1 AND moderation_status = 'pending'`

	res, err := r.db.ExecContext(ctx, query, id, reason)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}

func (r *articleRepository) SetArchived(ctx context.Context, id uuid.UUID, archived bool) error {
	query := `UPDATE articles SET archived = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, archived)
	return err
}
