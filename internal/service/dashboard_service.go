package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"soulsynergy/internal/repository"
)

const dashboardCacheKey = "admin:dashboard"

type DashboardStats struct {
	UsersByRole      map[string]int64 `json:"users_by_role"`
	BookingsByStatus map[string]int64 `json:"bookings_by_status"`
	PendingArticles  int64            `json:"pending_articles"`
	PendingEvents    int64            `json:"pending_events"`
}

type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

type dashboardService struct {
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
	articleRepo repository.ArticleRepository
	eventRepo   repository.EventRepository
	redis       *redis.Client
}

func NewDashboardService(userRepo repository.UserRepository, bookingRepo repository.BookingRepository, articleRepo repository.ArticleRepository, eventRepo repository.EventRepository, redis *redis.Client) DashboardService {
	return &dashboardService{
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		articleRepo: articleRepo,
		eventRepo:   eventRepo,
		redis:       redis,
	}
}

func (s *dashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	if s.redis != nil {
		cached, err := s.redis.Get(ctx, dashboardCacheKey).Result()
		if err == nil {
			var stats DashboardStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	usersByRole, err := s.userRepo.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	bookingsByStatus, err := s.bookingRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	pendingArticles, err := s.articleRepo.CountPending(ctx)
	if err != nil {
		return nil, err
	}
	pendingEvents, err := s.eventRepo.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		UsersByRole:      usersByRole,
		BookingsByStatus: bookingsByStatus,
		PendingArticles:  pendingArticles,
		PendingEvents:    pendingEvents,
	}

	if s.redis != nil {
		if data, err := json.Marshal(stats); err == nil {
			_ = s.redis.Set(ctx, dashboardCacheKey, data, time.Minute).Err()
		}
	}

	return stats, nil
}
