package mocks

import (
	"context"

	"soulsynergy/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type AdminLogRepository struct {
	mock.Mock
}

func (m *AdminLogRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *AdminLogRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.AuditLog, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.AuditLog), args.Get(1).(int64), args.Error(2)
}

func (m *AdminLogRepository) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID, params domain.PaginationParams) ([]domain.AuditLog, int64, error) {
	args := m.Called(ctx, entityType, entityID, params)
	return args.Get(0).([]domain.AuditLog), args.Get(1).(int64), args.Error(2)
}

func (m *AdminLogRepository) StatsByActionType(ctx context.Context) ([]domain.ActionTypeStat, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ActionTypeStat), args.Error(1)
}

func (m *AdminLogRepository) StatsByEntityType(ctx context.Context) ([]domain.EntityTypeStat, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.EntityTypeStat), args.Error(1)
}

func (m *AdminLogRepository) TopAdminsByActivity(ctx context.Context, limit int) ([]domain.AdminActivityStat, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.AdminActivityStat), args.Error(1)
}
