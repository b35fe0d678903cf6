package mocks

import (
	"context"

	"soulsynergy/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ArticleRepository struct {
	mock.Mock
}

func (m *ArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *ArticleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *ArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *ArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ArticleRepository) ListPublished(ctx context.Context, params domain.PaginationParams) ([]domain.Article, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Article), args.Get(1).(int64), args.Error(2)
}

func (m *ArticleRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID, params domain.PaginationParams) ([]domain.Article, int64, error) {
	args := m.Called(ctx, authorID, params)
	return args.Get(0).([]domain.Article), args.Get(1).(int64), args.Error(2)
}

func (m *ArticleRepository) ListPending(ctx context.Context, params domain.PaginationParams) ([]domain.Article, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Article), args.Get(1).(int64), args.Error(2)
}

func (m *ArticleRepository) CountPending(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ArticleRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ArticleRepository) AdjustLikes(ctx context.Context, id uuid.UUID, delta int64) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *ArticleRepository) SubmitForModeration(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *ArticleRepository) Approve(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *ArticleRepository) Reject(ctx context.Context, id uuid.UUID, reason string) (bool, error) {
	args := m.Called(ctx, id, reason)
	return args.Bool(0), args.Error(1)
}

func (m *ArticleRepository) SetArchived(ctx context.Context, id uuid.UUID, archived bool) error {
	args := m.Called(ctx, id, archived)
	return args.Error(0)
}
