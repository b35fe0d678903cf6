package mocks

import (
	"context"

	"soulsynergy/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type EventRepository struct {
	mock.Mock
}

func (m *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *EventRepository) Update(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EventRepository) ListPublished(ctx context.Context, params domain.PaginationParams) ([]domain.Event, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Event), args.Get(1).(int64), args.Error(2)
}

func (m *EventRepository) ListByOrganizer(ctx context.Context, organizerID uuid.UUID, params domain.PaginationParams) ([]domain.Event, int64, error) {
	args := m.Called(ctx, organizerID, params)
	return args.Get(0).([]domain.Event), args.Get(1).(int64), args.Error(2)
}

func (m *EventRepository) ListPending(ctx context.Context, params domain.PaginationParams) ([]domain.Event, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Event), args.Get(1).(int64), args.Error(2)
}

func (m *EventRepository) CountPending(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *EventRepository) SubmitForModeration(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *EventRepository) Approve(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *EventRepository) Reject(ctx context.Context, id uuid.UUID, reason string) (bool, error) {
	args := m.Called(ctx, id, reason)
	return args.Bool(0), args.Error(1)
}

func (m *EventRepository) SetArchived(ctx context.Context, id uuid.UUID, archived bool) error {
	args := m.Called(ctx, id, archived)
	return args.Error(0)
}
