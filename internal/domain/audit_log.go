package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuditLog rows are append-only: never updated, never deleted.
type AuditLog struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	AdminID     uuid.UUID       `json:"admin_id" db:"admin_id"`
	AdminName   *string         `json:"admin_name,omitempty" db:"admin_name"`
	ActionType  string          `json:"action_type" db:"action_type"`
	EntityType  string          `json:"entity_type" db:"entity_type"`
	EntityID    uuid.UUID       `json:"entity_id" db:"entity_id"`
	EntityTitle *string         `json:"entity_title,omitempty" db:"entity_title"`
	Details     json.RawMessage `json:"details,omitempty" db:"details"`
	IPAddress   *string         `json:"ip_address,omitempty" db:"ip_address"`
	UserAgent   *string         `json:"user_agent,omitempty" db:"user_agent"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

const (
	AuditActionApprove = "approve"
	AuditActionReject  = "reject"
	AuditActionDelete  = "delete"
	AuditActionUpdate  = "update"
	AuditActionCreate  = "create"
	AuditActionBan     = "ban"
	AuditActionUnban   = "unban"
)

type CreateAuditLogInput struct {
	AdminID     uuid.UUID
	ActionType  string
	EntityType  string
	EntityID    uuid.UUID
	EntityTitle *string
	Details     interface{}
	IPAddress   *string
	UserAgent   *string
}

type ActionTypeStat struct {
	ActionType string `json:"action_type" db:"action_type"`
	Count      int64  `json:"count" db:"count"`
}

type EntityTypeStat struct {
	EntityType string `json:"entity_type" db:"entity_type"`
	Count      int64  `json:"count" db:"count"`
}

type AuditStats struct {
	ByActionType []ActionTypeStat    `json:"by_action_type"`
	ByEntityType []EntityTypeStat    `json:"by_entity_type"`
	TopAdmins    []AdminActivityStat `json:"top_admins"`
}

type AdminActivityStat struct {
	AdminID   uuid.UUID `json:"admin_id" db:"admin_id"`
	AdminName *string   `json:"admin_name,omitempty" db:"admin_name"`
	Count     int64     `json:"count" db:"count"`
}
