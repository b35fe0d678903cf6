package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"soulsynergy/internal/domain"
)

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListPublished(ctx context.Context, params domain.PaginationParams) ([]domain.Event, int64, error)
	ListByOrganizer(ctx context.Context, organizerID uuid.UUID, params domain.PaginationParams) ([]domain.Event, int64, error)
	ListPending(ctx context.Context, params domain.PaginationParams) ([]domain.Event, int64, error)
	CountPending(ctx context.Context) (int64, error)

	SubmitForModeration(ctx context.Context, id uuid.UUID) (bool, error)
	Approve(ctx context.Context, id uuid.UUID) (bool, error)
	Reject(ctx context.Context, id uuid.UUID, reason string) (bool, error)
	SetArchived(ctx context.Context, id uuid.UUID, archived bool) error
}

type eventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (id, organizer_id, title, description, cover_image, event_type,
			is_online, city_id, event_date, location, price, registration_link, moderation_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		event.ID, event.OrganizerID, event.Title, event.Description, event.CoverImage,
		event.EventType, event.IsOnline, event.CityID, event.EventDate, event.Location,
		event.Price, event.RegistrationLink, event.ModerationStatus,
	).Scan(&event.CreatedAt, &event.UpdatedAt)
}

func (r *eventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	var event domain.Event
	query := `
		SELECT e.*, u.full_name AS organizer_name
		FROM events e
		JOIN users u ON e.organizer_id = u.id
		WHERE e.id = $1`

	err := r.db.GetContext(ctx, &event, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	query := `
		UPDATE events
		SET title = :title, description = :description, cover_image = :cover_image,
			event_type = :event_type, is_online = :is_online, city_id = :city_id,
			event_date = :event_date, location = :location, price = :price,
			registration_link = :registration_link, updated_at = NOW()
		WHERE id = :id`

	_, err := r.db.NamedExecContext(ctx, query, event)
	return err
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM events WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *eventRepository) ListPublished(ctx context.Context, params domain.PaginationParams) ([]domain.Event, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM events WHERE is_published = TRUE AND archived = FALSE`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	var events []domain.Event
	query := `
		SELECT e.*, u.full_name AS organizer_name
		FROM events e
		JOIN users u ON e.organizer_id = u.id
		WHERE e.is_published = TRUE AND e.archived = FALSE
		ORDER BY e.event_date ASC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &events, query, params.PageSize, params.Offset())
	return events, total, err
}

func (r *eventRepository) ListByOrganizer(ctx context.Context, organizerID uuid.UUID, params domain.PaginationParams) ([]domain.Event, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM events WHERE organizer_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, organizerID); err != nil {
		return nil, 0, err
	}

	var events []domain.Event
	query := `
		SELECT * FROM events
		WHERE organizer_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &events, query, organizerID, params.PageSize, params.Offset())
	return events, total, err
}

func (r *eventRepository) ListPending(ctx context.Context, params domain.PaginationParams) ([]domain.Event, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM events WHERE moderation_status = 'pending'`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	var events []domain.Event
	query := `
		SELECT e.*, u.full_name AS organizer_name
		FROM events e
		JOIN users u ON e.organizer_id = u.id
		WHERE e.moderation_status = 'pending'
		ORDER BY e.created_at ASC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &events, query, params.PageSize, params.Offset())
	return events, total, err
}

func (r *eventRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM events WHERE moderation_status = 'pending'`)
	return count, err
}

func (r *eventRepository) SubmitForModeration(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE events
		SET moderation_status = 'pending', moderation_reason = NULL, updated_at = NOW()
		WHERE id = $1 AND moderation_status IN ('draft', 'rejected')`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}

func (r *eventRepository) Approve(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE events
		SET moderation_status = 'approved', is_published = TRUE, moderation_reason = NULL, updated_at = NOW()
		WHERE id = $1 AND moderation_status = 'pending'`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}

func (r *eventRepository) Reject(ctx context.Context, id uuid.UUID, reason string) (bool, error) {
	query := `
		UPDATE events
		SET moderation_status = 'rejected', is_published = FALSE, moderation_reason = $2, updated_at = NOW()
		WHERE id = $1 AND moderation_status = 'pending'`

	res, err := r.db.ExecContext(ctx, query, id, reason)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}

func (r *eventRepository) SetArchived(ctx context.Context, id uuid.UUID, archived bool) error {
	query := `UPDATE events SET archived = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, archived)
	return err
}
