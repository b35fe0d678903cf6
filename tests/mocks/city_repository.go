package mocks

import (
	"context"

	"soulsynergy/internal/domain"

	"github.com/stretchr/testify/mock"
)

type CityRepository struct {
	mock.Mock
}

func (m *CityRepository) List(ctx context.Context) ([]domain.City, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.City), args.Error(1)
}

func (m *CityRepository) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}
