package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"soulsynergy/internal/domain"
)

type FavoriteRepository interface {
	// Toggle inserts the (user, target) pair, or removes it when it already
	// exists, and returns the resulting state: true when favorited.
	Toggle(ctx context.Context, userID uuid.UUID, target domain.FavoriteTarget, targetID uuid.UUID) (bool, error)
	IsFavorite(ctx context.Context, userID uuid.UUID, target domain.FavoriteTarget, targetID uuid.UUID) (bool, error)
	Statuses(ctx context.Context, userID uuid.UUID, target domain.FavoriteTarget, targetIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	ListExperts(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteExpertEntry, error)
	ListEvents(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteEventEntry, error)
	ListArticles(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteArticleEntry, error)

	ToggleArticleLike(ctx context.Context, userID, articleID uuid.UUID) (bool, error)
}

type favoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepository(db *sqlx.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// favoriteTable maps a target kind to its table and target column. Each
// table carries a (user_id, <target>) primary key, which is what makes the
// toggle race-safe for a single user.
func favoriteTable(target domain.FavoriteTarget) (table, column string, err error) {
	switch target {
	case domain.FavoriteExpert:
		return "expert_favorites", "expert_id", nil
	case domain.FavoriteEvent:
		return "event_favorites", "event_id", nil
	case domain.FavoriteArticle:
		return "article_favorites", "article_id", nil
	default:
		return "", "", fmt.Errorf("unknown favorite target %q", target)
	}
}

func (r *favoriteRepository) toggle(ctx context.Context, table, column string, userID, targetID uuid.UUID) (bool, error) {
	insert := fmt.Sprintf(
		`INSERT INTO %s (user_id, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		table, column)

	res, err := r.db.ExecContext(ctx, insert, userID, targetID)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if rows > 0 {
		return true, nil
	}

	del := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1 AND %s = $2`, table, column)
	if _, err := r.db.ExecContext(ctx, del, userID, targetID); err != nil {
		return false, err
	}
	return false, nil
}

func (r *favoriteRepository) Toggle(ctx context.Context, userID uuid.UUID, target domain.FavoriteTarget, targetID uuid.UUID) (bool, error) {
	table, column, err := favoriteTable(target)
	if err != nil {
		return false, err
	}
	return r.toggle(ctx, table, column, userID, targetID)
}

func (r *favoriteRepository) IsFavorite(ctx context.Context, userID uuid.UUID, target domain.FavoriteTarget, targetID uuid.UUID) (bool, error) {
	table, column, err := favoriteTable(target)
	if err != nil {
		return false, err
	}

	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE user_id = $1 AND %s = $2)`, table, column)
	err = r.db.GetContext(ctx, &exists, query, userID, targetID)
	return exists, err
}

func (r *favoriteRepository) Statuses(ctx context.Context, userID uuid.UUID, target domain.FavoriteTarget, targetIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	statuses := make(map[uuid.UUID]bool, len(targetIDs))
	for _, id := range targetIDs {
		statuses[id] = false
	}
	if len(targetIDs) == 0 {
		return statuses, nil
	}

	table, column, err := favoriteTable(target)
	if err != nil {
		return nil, err
	}

	idStrings := make([]string, len(targetIDs))
	for i, id := range targetIDs {
		idStrings[i] = id.String()
	}

	var favorited []uuid.UUID
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE user_id = $1 AND %s = ANY($2)`, column, table, column)
	if err := r.db.SelectContext(ctx, &favorited, query, userID, pq.Array(idStrings)); err != nil {
		return nil, err
	}

	for _, id := range favorited {
		statuses[id] = true
	}
	return statuses, nil
}

type favoriteExpertRow struct {
	domain.User
	FavoritedAt time.Time `db:"favorited_at"`
}

type favoriteEventRow struct {
	domain.Event
	FavoritedAt time.Time `db:"favorited_at"`
}

type favoriteArticleRow struct {
	domain.Article
	FavoritedAt time.Time `db:"favorited_at"`
}

func (r *favoriteRepository) ListExperts(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteExpertEntry, error) {
	query := `
		SELECT u.*, f.created_at AS favorited_at
		FROM expert_favorites f
		JOIN users u ON f.expert_id = u.id
		WHERE f.user_id = $1 AND u.deleted_at IS NULL
		ORDER BY f.created_at DESC`

	raw := []favoriteExpertRow{}
	if err := r.db.SelectContext(ctx, &raw, query, userID); err != nil {
		return nil, err
	}
	entries := make([]domain.FavoriteExpertEntry, 0, len(raw))
	for _, row := range raw {
		entries = append(entries, domain.FavoriteExpertEntry{User: row.User, FavoritedAt: row.FavoritedAt})
	}
	return entries, nil
}

func (r *favoriteRepository) ListEvents(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteEventEntry, error) {
	query := `
		SELECT e.*, f.created_at AS favorited_at
		FROM event_favorites f
		JOIN events e ON f.event_id = e.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC`

	raw := []favoriteEventRow{}
	if err := r.db.SelectContext(ctx, &raw, query, userID); err != nil {
		return nil, err
	}
	entries := make([]domain.FavoriteEventEntry, 0, len(raw))
	for _, row := range raw {
		entries = append(entries, domain.FavoriteEventEntry{Event: row.Event, FavoritedAt: row.FavoritedAt})
	}
	return entries, nil
}

func (r *favoriteRepository) ListArticles(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteArticleEntry, error) {
	query := `
		SELECT a.*, f.created_at AS favorited_at
		FROM article_favorites f
		JOIN articles a ON f.article_id = a.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC`

	raw := []favoriteArticleRow{}
	if err := r.db.SelectContext(ctx, &raw, query, userID); err != nil {
		return nil, err
	}
	entries := make([]domain.FavoriteArticleEntry, 0, len(raw))
	for _, row := range raw {
		entries = append(entries, domain.FavoriteArticleEntry{Article: row.Article, FavoritedAt: row.FavoritedAt})
	}
	return entries, nil
}

func (r *favoriteRepository) ToggleArticleLike(ctx context.Context, userID, articleID uuid.UUID) (bool, error) {
	return r.toggle(ctx, "article_likes", "article_id", userID, articleID)
}
