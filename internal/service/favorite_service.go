package service

import (
	"context"

	"github.com/google/uuid"

	"soulsynergy/internal/domain"
	"soulsynergy/internal/repository"
)

type FavoriteService interface {
	Toggle(ctx context.Context, userID uuid.UUID, target domain.FavoriteTarget, targetID uuid.UUID) (bool, error)
	Statuses(ctx context.Context, userID uuid.UUID, target domain.FavoriteTarget, targetIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	ListExperts(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteExpertEntry, error)
	ListEvents(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteEventEntry, error)
	ListArticles(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteArticleEntry, error)
	ToggleArticleLike(ctx context.Context, userID, articleID uuid.UUID) (bool, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	userRepo     repository.UserRepository
	eventRepo    repository.EventRepository
	articleRepo  repository.ArticleRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, userRepo repository.UserRepository, eventRepo repository.EventRepository, articleRepo repository.ArticleRepository) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		userRepo:     userRepo,
		eventRepo:    eventRepo,
		articleRepo:  articleRepo,
	}
}

func (s *favoriteService) Toggle(ctx context.Context, userID uuid.UUID, target domain.FavoriteTarget, targetID uuid.UUID) (bool, error) {
	if !target.IsValid() {
		return false, ErrValidation
	}
	if err := s.checkTargetExists(ctx, target, targetID); err != nil {
		return false, err
	}
	return s.favoriteRepo.Toggle(ctx, userID, target, targetID)
}

func (s *favoriteService) Statuses(ctx context.Context, userID uuid.UUID, target domain.FavoriteTarget, targetIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	if !target.IsValid() {
		return nil, ErrValidation
	}
	if len(targetIDs) == 0 {
		return map[uuid.UUID]bool{}, nil
	}
	return s.favoriteRepo.Statuses(ctx, userID, target, targetIDs)
}

func (s *favoriteService) ListExperts(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteExpertEntry, error) {
	return s.favoriteRepo.ListExperts(ctx, userID)
}

func (s *favoriteService) ListEvents(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteEventEntry, error) {
	return s.favoriteRepo.ListEvents(ctx, userID)
}

func (s *favoriteService) ListArticles(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteArticleEntry, error) {
	return s.favoriteRepo.ListArticles(ctx, userID)
}

func (s *favoriteService) ToggleArticleLike(ctx context.Context, userID, articleID uuid.UUID) (bool, error) {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return false, err
	}
	if article == nil || !article.IsPublished || article.Archived {
		return false, ErrNotFound
	}

	liked, err := s.favoriteRepo.ToggleArticleLike(ctx, userID, articleID)
	if err != nil {
		return false, err
	}

	delta := int64(-1)
	if liked {
		delta = 1
	}
	if err := s.articleRepo.AdjustLikes(ctx, articleID, delta); err != nil {
		return liked, err
	}
	return liked, nil
}

func (s *favoriteService) checkTargetExists(ctx context.Context, target domain.FavoriteTarget, targetID uuid.UUID) error {
	switch target {
	case domain.FavoriteExpert:
		user, err := s.userRepo.GetByID(ctx, targetID)
		if err != nil {
			return err
		}
		if user == nil || user.Role != string(domain.RoleExpert) {
			return ErrNotFound
		}
	case domain.FavoriteEvent:
		event, err := s.eventRepo.GetByID(ctx, targetID)
		if err != nil {
			return err
		}
		if event == nil {
			return ErrNotFound
		}
	case domain.FavoriteArticle:
		article, err := s.articleRepo.GetByID(ctx, targetID)
		if err != nil {
			return err
		}
		if article == nil {
			return ErrNotFound
		}
	}
	return nil
}
