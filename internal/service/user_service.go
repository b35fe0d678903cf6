package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"soulsynergy/internal/domain"
	"soulsynergy/internal/repository"
)

type UserService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input domain.UpdateUserInput) (*domain.User, error)
	ListExperts(ctx context.Context, filter domain.ExpertFilter, params domain.PaginationParams) (domain.PaginatedResponse[domain.User], error)
	GetExpert(ctx context.Context, id uuid.UUID) (*domain.User, error)

	ListAll(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.User], error)
	Ban(ctx context.Context, admin *domain.User, userID uuid.UUID, info ClientInfo) error
	Unban(ctx context.Context, admin *domain.User, userID uuid.UUID, info ClientInfo) error
}

type userService struct {
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	adminLogRepo repository.AdminLogRepository
	redis        *redis.Client
}

func NewUserService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, adminLogRepo repository.AdminLogRepository, redis *redis.Client) UserService {
	return &userService{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		adminLogRepo: adminLogRepo,
		redis:        redis,
	}
}

func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input domain.UpdateUserInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if input.FullName != nil {
		name := strings.TrimSpace(*input.FullName)
		if len(name) < 2 {
			return nil, ErrValidation
		}
		user.FullName = name
	}
	if input.Password != nil {
		if len(*input.Password) < 8 {
			return nil, ErrValidation
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Specialization != nil {
		user.Specialization = *input.Specialization
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if user.Role == string(domain.RoleExpert) {
		s.invalidateExpertListings(ctx)
	}
	return user, nil
}

func (s *userService) ListExperts(ctx context.Context, filter domain.ExpertFilter, params domain.PaginationParams) (domain.PaginatedResponse[domain.User], error) {
	params.Validate()

	// Only the unfiltered directory pages are cached; search results are
	// too varied to be worth keeping.
	cacheable := s.redis != nil && filter.Search == ""
	cacheKey := fmt.Sprintf("experts:page:%d:size:%d", params.Page, params.PageSize)

	if cacheable {
		cached, err := s.redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp domain.PaginatedResponse[domain.User]
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	experts, total, err := s.userRepo.ListExperts(ctx, filter, params)
	if err != nil {
		return domain.PaginatedResponse[domain.User]{}, err
	}

	resp := domain.NewPaginatedResponse(experts, params.Page, params.PageSize, total)

	if cacheable {
		if data, err := json.Marshal(resp); err == nil {
			_ = s.redis.Set(ctx, cacheKey, data, 5*time.Minute).Err()
		}
	}

	return resp, nil
}

func (s *userService) GetExpert(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != string(domain.RoleExpert) || user.IsBanned() {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *userService) ListAll(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.User], error) {
	users, total, err := s.userRepo.ListAll(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.User]{}, err
	}
	return domain.NewPaginatedResponse(users, params.Page, params.PageSize, total), nil
}

func (s *userService) Ban(ctx context.Context, admin *domain.User, userID uuid.UUID, info ClientInfo) error {
	if admin.ID == userID {
		return ErrValidation
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	if user.HasRole("admin") {
		return ErrForbidden
	}
	if user.IsBanned() {
		return ErrInvalidState
	}

	now := time.Now()
	if err := s.userRepo.SetBanned(ctx, userID, &now); err != nil {
		return err
	}

	// Banned users lose their sessions immediately.
	_ = s.sessionRepo.RevokeAllForUser(ctx, userID)

	s.recordAdminAction(ctx, admin, domain.AuditActionBan, user, info)
	s.invalidateExpertListings(ctx)
	return nil
}

func (s *userService) Unban(ctx context.Context, admin *domain.User, userID uuid.UUID, info ClientInfo) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	if !user.IsBanned() {
		return ErrInvalidState
	}

	if err := s.userRepo.SetBanned(ctx, userID, nil); err != nil {
		return err
	}

	s.recordAdminAction(ctx, admin, domain.AuditActionUnban, user, info)
	s.invalidateExpertListings(ctx)
	return nil
}

func (s *userService) invalidateExpertListings(ctx context.Context) {
	if s.redis == nil {
		return
	}
	keys, _ := s.redis.Keys(ctx, "experts:page:*").Result()
	if len(keys) > 0 {
		_ = s.redis.Del(ctx, keys...).Err()
	}
}

func (s *userService) recordAdminAction(ctx context.Context, admin *domain.User, action string, target *domain.User, info ClientInfo) {
	_ = repository.RecordAdminAction(s.adminLogRepo, ctx, domain.CreateAuditLogInput{
		AdminID:     admin.ID,
		ActionType:  action,
		EntityType:  "user",
		EntityID:    target.ID,
		EntityTitle: &target.FullName,
		IPAddress:   info.IPAddress,
		UserAgent:   info.UserAgent,
	})
}
