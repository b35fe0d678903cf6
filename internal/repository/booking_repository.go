package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"soulsynergy/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, params domain.PaginationParams) ([]domain.Booking, int64, error)
	ListByExpert(ctx context.Context, expertID uuid.UUID, params domain.PaginationParams) ([]domain.Booking, int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)

	// Transition changes status only when the current status is one of
	// `from`; returns false when the row was in any other state.
	Transition(ctx context.Context, id uuid.UUID, from []domain.BookingStatus, to domain.BookingStatus, reason *string) (bool, error)
}

type bookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (id, client_id, expert_id, date, time_slot, status, client_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		booking.ID, booking.ClientID, booking.ExpertID, booking.Date,
		booking.TimeSlot, booking.Status, booking.ClientMessage,
	).Scan(&booking.CreatedAt, &booking.UpdatedAt)
}

func (r *bookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	var booking domain.Booking
	query := `
		SELECT b.*, c.full_name AS client_name, e.full_name AS expert_name
		FROM bookings b
		JOIN users c ON b.client_id = c.id
		JOIN users e ON b.expert_id = e.id
		WHERE b.id = $1`

	err := r.db.GetContext(ctx, &booking, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) ListByClient(ctx context.Context, clientID uuid.UUID, params domain.PaginationParams) ([]domain.Booking, int64, error) {
	params.Validate()

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM bookings WHERE client_id = $1`, clientID); err != nil {
		return nil, 0, err
	}

	var bookings []domain.Booking
	query := `
		SELECT b.*, c.full_name AS client_name, e.full_name AS expert_name
		FROM bookings b
		JOIN users c ON b.client_id = c.id
		JOIN users e ON b.expert_id = e.id
		WHERE b.client_id = $1
		ORDER BY b.created_at DESC
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &bookings, query, clientID, params.PageSize, params.Offset())
	return bookings, total, err
}

func (r *bookingRepository) ListByExpert(ctx context.Context, expertID uuid.UUID, params domain.PaginationParams) ([]domain.Booking, int64, error) {
	params.Validate()

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM bookings WHERE expert_id = $1`, expertID); err != nil {
		return nil, 0, err
	}

	var bookings []domain.Booking
	query := `
		SELECT b.*, c.full_name AS client_name, e.full_name AS expert_name
		FROM bookings b
		JOIN users c ON b.client_id = c.id
		JOIN users e ON b.expert_id = e.id
		WHERE b.expert_id = $1
		ORDER BY b.created_at DESC
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &bookings, query, expertID, params.PageSize, params.Offset())
	return bookings, total, err
}

func (r *bookingRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows := []struct {
		Status string `db:"status"`
		Count  int64  `db:"count"`
	}{}

	query := `SELECT status, COUNT(*) AS count FROM bookings GROUP BY status`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *bookingRepository) Transition(ctx context.Context, id uuid.UUID, from []domain.BookingStatus, to domain.BookingStatus, reason *string) (bool, error) {
	fromStrings := make([]string, len(from))
	for i, s := range from {
		fromStrings[i] = string(s)
	}

	query := `
		UPDATE bookings
		SET status = $2, rejection_reason = COALESCE($3, rejection_reason), updated_at = NOW()
		WHERE id = $1 AND status = ANY($4)`

	res, err := r.db.ExecContext(ctx, query, id, to, reason, pq.Array(fromStrings))
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}
