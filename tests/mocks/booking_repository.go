package mocks

import (
	"context"

	"soulsynergy/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type BookingRepository struct {
	mock.Mock
}

func (m *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *BookingRepository) ListByClient(ctx context.Context, clientID uuid.UUID, params domain.PaginationParams) ([]domain.Booking, int64, error) {
	args := m.Called(ctx, clientID, params)
	return args.Get(0).([]domain.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *BookingRepository) ListByExpert(ctx context.Context, expertID uuid.UUID, params domain.PaginationParams) ([]domain.Booking, int64, error) {
	args := m.Called(ctx, expertID, params)
	return args.Get(0).([]domain.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *BookingRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *BookingRepository) Transition(ctx context.Context, id uuid.UUID, from []domain.BookingStatus, to domain.BookingStatus, reason *string) (bool, error) {
	args := m.Called(ctx, id, from, to, reason)
	return args.Bool(0), args.Error(1)
}
