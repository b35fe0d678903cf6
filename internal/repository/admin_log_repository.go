package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"soulsynergy/internal/domain"
)

// AdminLogRepository is append-only: no update or delete methods exist on
// purpose.
type AdminLogRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
	List(ctx context.Context, params domain.PaginationParams) ([]domain.AuditLog, int64, error)
	ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID, params domain.PaginationParams) ([]domain.AuditLog, int64, error)
	StatsByActionType(ctx context.Context) ([]domain.ActionTypeStat, error)
	StatsByEntityType(ctx context.Context) ([]domain.EntityTypeStat, error)
	TopAdminsByActivity(ctx context.Context, limit int) ([]domain.AdminActivityStat, error)
}

type adminLogRepository struct {
	db *sqlx.DB
}

func NewAdminLogRepository(db *sqlx.DB) AdminLogRepository {
	return &adminLogRepository{db: db}
}

func (r *adminLogRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	query := `
		INSERT INTO admin_logs (id, admin_id, action_type, entity_type, entity_id, entity_title, details, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		log.ID, log.AdminID, log.ActionType, log.EntityType, log.EntityID,
		log.EntityTitle, log.Details, log.IPAddress, log.UserAgent,
	).Scan(&log.CreatedAt)
}

func (r *adminLogRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.AuditLog, int64, error) {
	params.Validate()

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM admin_logs`); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT al.*, u.full_name AS admin_name
		FROM admin_logs al
		LEFT JOIN users u ON al.admin_id = u.id
		ORDER BY al.created_at DESC
		LIMIT $1 OFFSET $2`

	var logs []domain.AuditLog
	err := r.db.SelectContext(ctx, &logs, query, params.PageSize, params.Offset())
	return logs, total, err
}

func (r *adminLogRepository) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID, params domain.PaginationParams) ([]domain.AuditLog, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM admin_logs WHERE entity_type = $1 AND entity_id = $2`
	if err := r.db.GetContext(ctx, &total, countQuery, entityType, entityID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM admin_logs
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`

	var logs []domain.AuditLog
	err := r.db.SelectContext(ctx, &logs, query, entityType, entityID, params.PageSize, params.Offset())
	return logs, total, err
}

func (r *adminLogRepository) StatsByActionType(ctx context.Context) ([]domain.ActionTypeStat, error) {
	var stats []domain.ActionTypeStat
	query := `SELECT action_type, COUNT(*) AS count FROM admin_logs GROUP BY action_type ORDER BY count DESC`
	err := r.db.SelectContext(ctx, &stats, query)
	return stats, err
}

func (r *adminLogRepository) StatsByEntityType(ctx context.Context) ([]domain.EntityTypeStat, error) {
	var stats []domain.EntityTypeStat
	query := `SELECT entity_type, COUNT(*) AS count FROM admin_logs GROUP BY entity_type ORDER BY count DESC`
	err := r.db.SelectContext(ctx, &stats, query)
	return stats, err
}

func (r *adminLogRepository) TopAdminsByActivity(ctx context.Context, limit int) ([]domain.AdminActivityStat, error) {
	if limit <= 0 {
		limit = 10
	}

	var stats []domain.AdminActivityStat
	query := `
		SELECT al.admin_id, u.full_name AS admin_name, COUNT(*) AS count
		FROM admin_logs al
		LEFT JOIN users u ON al.admin_id = u.id
		GROUP BY al.admin_id, u.full_name
		ORDER BY count DESC
		LIMIT $1`
	err := r.db.SelectContext(ctx, &stats, query, limit)
	return stats, err
}

// RecordAdminAction marshals the details payload and appends the log row.
func RecordAdminAction(repo AdminLogRepository, ctx context.Context, input domain.CreateAuditLogInput) error {
	var details json.RawMessage
	if input.Details != nil {
		details, _ = json.Marshal(input.Details)
	}

	log := &domain.AuditLog{
		ID:          uuid.New(),
		AdminID:     input.AdminID,
		ActionType:  input.ActionType,
		EntityType:  input.EntityType,
		EntityID:    input.EntityID,
		EntityTitle: input.EntityTitle,
		Details:     details,
		IPAddress:   input.IPAddress,
		UserAgent:   input.UserAgent,
	}

	return repo.Create(ctx, log)
}
