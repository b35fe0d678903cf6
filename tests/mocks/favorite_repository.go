package mocks

import (
	"context"

	"soulsynergy/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type FavoriteRepository struct {
	mock.Mock
}

func (m *FavoriteRepository) Toggle(ctx context.Context, userID uuid.UUID, target domain.FavoriteTarget, targetID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, target, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *FavoriteRepository) IsFavorite(ctx context.Context, userID uuid.UUID, target domain.FavoriteTarget, targetID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, target, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *FavoriteRepository) Statuses(ctx context.Context, userID uuid.UUID, target domain.FavoriteTarget, targetIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	args := m.Called(ctx, userID, target, targetIDs)
	return args.Get(0).(map[uuid.UUID]bool), args.Error(1)
}

func (m *FavoriteRepository) ListExperts(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteExpertEntry, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.FavoriteExpertEntry), args.Error(1)
}

func (m *FavoriteRepository) ListEvents(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteEventEntry, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.FavoriteEventEntry), args.Error(1)
}

func (m *FavoriteRepository) ListArticles(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteArticleEntry, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.FavoriteArticleEntry), args.Error(1)
}

func (m *FavoriteRepository) ToggleArticleLike(ctx context.Context, userID, articleID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, articleID)
	return args.Bool(0), args.Error(1)
}
