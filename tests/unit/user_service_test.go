package unit_test

import (
	"context"
	"testing"
	"time"

	"soulsynergy/internal/domain"
	"soulsynergy/internal/service"
	"soulsynergy/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserService_Ban(t *testing.T) {
	ctx := context.Background()
	admin := adminUser()

	t.Run("Success - sessions revoked and audit written", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockSessionRepo := new(mocks.SessionRepository)
		mockAuditRepo := new(mocks.AdminLogRepository)
		svc := service.NewUserService(mockUserRepo, mockSessionRepo, mockAuditRepo, nil)

		target := &domain.User{ID: uuid.New(), Role: "expert", FullName: "Эксперт"}
		mockUserRepo.On("GetByID", ctx, target.ID).Return(target, nil).Once()
		mockUserRepo.On("SetBanned", ctx, target.ID, mock.AnythingOfType("*time.Time")).Return(nil).Once()
		mockSessionRepo.On("RevokeAllForUser", ctx, target.ID).Return(nil).Once()
		mockAuditRepo.On("Create", ctx, mock.MatchedBy(func(l *domain.AuditLog) bool {
			return l.ActionType == domain.AuditActionBan && l.EntityType == "user" && l.EntityID == target.ID
		})).Return(nil).Once()

		err := svc.Ban(ctx, admin, target.ID, service.ClientInfo{})

		assert.NoError(t, err)
		mockUserRepo.AssertExpectations(t)
		mockSessionRepo.AssertExpectations(t)
		mockAuditRepo.AssertExpectations(t)
	})

	t.Run("Cannot ban yourself", func(t *testing.T) {
		svc := service.NewUserService(new(mocks.UserRepository), new(mocks.SessionRepository), new(mocks.AdminLogRepository), nil)

		err := svc.Ban(ctx, admin, admin.ID, service.ClientInfo{})

		assert.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("Cannot ban another admin", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := service.NewUserService(mockUserRepo, new(mocks.SessionRepository), new(mocks.AdminLogRepository), nil)

		other := &domain.User{ID: uuid.New(), Role: "admin"}
		mockUserRepo.On("GetByID", ctx, other.ID).Return(other, nil).Once()

		err := svc.Ban(ctx, admin, other.ID, service.ClientInfo{})

		assert.ErrorIs(t, err, service.ErrForbidden)
		mockUserRepo.AssertNotCalled(t, "SetBanned", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Double ban conflicts", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := service.NewUserService(mockUserRepo, new(mocks.SessionRepository), new(mocks.AdminLogRepository), nil)

		bannedAt := time.Now()
		target := &domain.User{ID: uuid.New(), Role: "client", BannedAt: &bannedAt}
		mockUserRepo.On("GetByID", ctx, target.ID).Return(target, nil).Once()

		err := svc.Ban(ctx, admin, target.ID, service.ClientInfo{})

		assert.ErrorIs(t, err, service.ErrInvalidState)
	})
}

func TestUserService_Unban(t *testing.T) {
	ctx := context.Background()
	admin := adminUser()

	t.Run("Unbanning an active user conflicts", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := service.NewUserService(mockUserRepo, new(mocks.SessionRepository), new(mocks.AdminLogRepository), nil)

		target := &domain.User{ID: uuid.New(), Role: "client"}
		mockUserRepo.On("GetByID", ctx, target.ID).Return(target, nil).Once()

		err := svc.Unban(ctx, admin, target.ID, service.ClientInfo{})

		assert.ErrorIs(t, err, service.ErrInvalidState)
	})

	t.Run("Success clears the ban", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockAuditRepo := new(mocks.AdminLogRepository)
		svc := service.NewUserService(mockUserRepo, new(mocks.SessionRepository), mockAuditRepo, nil)

		bannedAt := time.Now()
		target := &domain.User{ID: uuid.New(), Role: "client", FullName: "Клиент", BannedAt: &bannedAt}
		mockUserRepo.On("GetByID", ctx, target.ID).Return(target, nil).Once()
		mockUserRepo.On("SetBanned", ctx, target.ID, (*time.Time)(nil)).Return(nil).Once()
		mockAuditRepo.On("Create", ctx, mock.MatchedBy(func(l *domain.AuditLog) bool {
			return l.ActionType == domain.AuditActionUnban
		})).Return(nil).Once()

		err := svc.Unban(ctx, admin, target.ID, service.ClientInfo{})

		assert.NoError(t, err)
		mockUserRepo.AssertExpectations(t)
	})
}

func TestUserService_GetExpert(t *testing.T) {
	ctx := context.Background()

	t.Run("Clients are not listed as experts", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := service.NewUserService(mockUserRepo, new(mocks.SessionRepository), new(mocks.AdminLogRepository), nil)

		id := uuid.New()
		mockUserRepo.On("GetByID", ctx, id).Return(&domain.User{ID: id, Role: "client"}, nil).Once()

		expert, err := svc.GetExpert(ctx, id)

		assert.ErrorIs(t, err, service.ErrNotFound)
		assert.Nil(t, expert)
	})

	t.Run("Banned experts disappear from the directory", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := service.NewUserService(mockUserRepo, new(mocks.SessionRepository), new(mocks.AdminLogRepository), nil)

		bannedAt := time.Now()
		id := uuid.New()
		mockUserRepo.On("GetByID", ctx, id).Return(&domain.User{ID: id, Role: "expert", BannedAt: &bannedAt}, nil).Once()

		expert, err := svc.GetExpert(ctx, id)

		assert.ErrorIs(t, err, service.ErrNotFound)
		assert.Nil(t, expert)
	})
}
