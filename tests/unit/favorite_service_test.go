package unit_test

import (
	"context"
	"testing"

	"soulsynergy/internal/domain"
	"soulsynergy/internal/service"
	"soulsynergy/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFavoriteService_Toggle(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Unknown target type rejected", func(t *testing.T) {
		svc := service.NewFavoriteService(new(mocks.FavoriteRepository), new(mocks.UserRepository), new(mocks.EventRepository), new(mocks.ArticleRepository))

		favorited, err := svc.Toggle(ctx, userID, domain.FavoriteTarget("playlist"), uuid.New())

		assert.ErrorIs(t, err, service.ErrValidation)
		assert.False(t, favorited)
	})

	t.Run("Favoriting a client account fails", func(t *testing.T) {
		mockFavRepo := new(mocks.FavoriteRepository)
		mockUserRepo := new(mocks.UserRepository)
		svc := service.NewFavoriteService(mockFavRepo, mockUserRepo, new(mocks.EventRepository), new(mocks.ArticleRepository))

		targetID := uuid.New()
		mockUserRepo.On("GetByID", ctx, targetID).Return(&domain.User{ID: targetID, Role: "client"}, nil).Once()

		favorited, err := svc.Toggle(ctx, userID, domain.FavoriteExpert, targetID)

		assert.ErrorIs(t, err, service.ErrNotFound)
		assert.False(t, favorited)
		mockFavRepo.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Toggle returns resulting state", func(t *testing.T) {
		mockFavRepo := new(mocks.FavoriteRepository)
		mockUserRepo := new(mocks.UserRepository)
		svc := service.NewFavoriteService(mockFavRepo, mockUserRepo, new(mocks.EventRepository), new(mocks.ArticleRepository))

		expertID := uuid.New()
		mockUserRepo.On("GetByID", ctx, expertID).Return(&domain.User{ID: expertID, Role: "expert"}, nil).Twice()
		mockFavRepo.On("Toggle", ctx, userID, domain.FavoriteExpert, expertID).Return(true, nil).Once()
		mockFavRepo.On("Toggle", ctx, userID, domain.FavoriteExpert, expertID).Return(false, nil).Once()

		favorited, err := svc.Toggle(ctx, userID, domain.FavoriteExpert, expertID)
		assert.NoError(t, err)
		assert.True(t, favorited)

		favorited, err = svc.Toggle(ctx, userID, domain.FavoriteExpert, expertID)
		assert.NoError(t, err)
		assert.False(t, favorited)
	})
}

func TestFavoriteService_Statuses(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Empty id list short-circuits", func(t *testing.T) {
		mockFavRepo := new(mocks.FavoriteRepository)
		svc := service.NewFavoriteService(mockFavRepo, new(mocks.UserRepository), new(mocks.EventRepository), new(mocks.ArticleRepository))

		statuses, err := svc.Statuses(ctx, userID, domain.FavoriteEvent, nil)

		assert.NoError(t, err)
		assert.Empty(t, statuses)
		mockFavRepo.AssertNotCalled(t, "Statuses", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestFavoriteService_ToggleArticleLike(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	articleID := uuid.New()

	published := &domain.Article{ID: articleID, IsPublished: true, LikesCount: 3}

	t.Run("Like adds, unlike subtracts", func(t *testing.T) {
		mockFavRepo := new(mocks.FavoriteRepository)
		mockArticleRepo := new(mocks.ArticleRepository)
		svc := service.NewFavoriteService(mockFavRepo, new(mocks.UserRepository), new(mocks.EventRepository), mockArticleRepo)

		mockArticleRepo.On("GetByID", ctx, articleID).Return(published, nil).Twice()
		mockFavRepo.On("ToggleArticleLike", ctx, userID, articleID).Return(true, nil).Once()
		mockFavRepo.On("ToggleArticleLike", ctx, userID, articleID).Return(false, nil).Once()
		mockArticleRepo.On("AdjustLikes", ctx, articleID, int64(1)).Return(nil).Once()
		mockArticleRepo.On("AdjustLikes", ctx, articleID, int64(-1)).Return(nil).Once()

		liked, err := svc.ToggleArticleLike(ctx, userID, articleID)
		assert.NoError(t, err)
		assert.True(t, liked)

		liked, err = svc.ToggleArticleLike(ctx, userID, articleID)
		assert.NoError(t, err)
		assert.False(t, liked)

		mockArticleRepo.AssertExpectations(t)
	})

	t.Run("Unpublished article cannot be liked", func(t *testing.T) {
		mockFavRepo := new(mocks.FavoriteRepository)
		mockArticleRepo := new(mocks.ArticleRepository)
		svc := service.NewFavoriteService(mockFavRepo, new(mocks.UserRepository), new(mocks.EventRepository), mockArticleRepo)

		draft := &domain.Article{ID: articleID}
		mockArticleRepo.On("GetByID", ctx, articleID).Return(draft, nil).Once()

		liked, err := svc.ToggleArticleLike(ctx, userID, articleID)

		assert.ErrorIs(t, err, service.ErrNotFound)
		assert.False(t, liked)
		mockFavRepo.AssertNotCalled(t, "ToggleArticleLike", mock.Anything, mock.Anything, mock.Anything)
	})
}
