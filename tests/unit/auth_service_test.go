package unit_test

import (
	"context"
	"testing"

	"soulsynergy/internal/config"
	"soulsynergy/internal/domain"
	"soulsynergy/internal/service"
	"soulsynergy/tests/mocks"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	input := domain.CreateUserInput{
		Email:    "novice@example.com",
		Password: "password123",
		FullName: "Новый Пользователь",
	}

	newService := func(userRepo *mocks.UserRepository, emailSvc *mocks.EmailService) service.AuthService {
		return service.NewAuthService(userRepo, new(mocks.SessionRepository), emailSvc, &config.Config{})
	}

	t.Run("Success", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockEmailSvc := new(mocks.EmailService)
		svc := newService(mockUserRepo, mockEmailSvc)

		mockUserRepo.On("ExistsByEmail", ctx, input.Email).Return(false, nil).Once()
		mockUserRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Once()
		mockUserRepo.On("SetEmailVerificationToken", ctx, mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Once()
		mockEmailSvc.On("SendEmailVerification", mock.Anything, input.Email, input.FullName, mock.AnythingOfType("string")).Return(nil).Maybe()

		user, err := svc.Register(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, string(domain.RoleClient), user.Role)
		assert.NotEmpty(t, user.ReferralCode)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("Duplicate email rejected", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := newService(mockUserRepo, new(mocks.EmailService))

		mockUserRepo.On("ExistsByEmail", ctx, input.Email).Return(true, nil).Once()

		_, err := svc.Register(ctx, input)

		assert.ErrorIs(t, err, service.ErrEmailExists)
		mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Admin role rejected", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := newService(mockUserRepo, new(mocks.EmailService))

		mockUserRepo.On("ExistsByEmail", ctx, input.Email).Return(false, nil).Once()

		adminInput := input
		adminInput.Role = "admin"
		_, err := svc.Register(ctx, adminInput)

		assert.ErrorIs(t, err, service.ErrValidation)
		mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Referral code collision retried with a fresh code", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockEmailSvc := new(mocks.EmailService)
		svc := newService(mockUserRepo, mockEmailSvc)

		conflict := &pq.Error{Code: "23505", Constraint: "users_referral_code_key"}
		var codes []string
		mockUserRepo.On("ExistsByEmail", ctx, input.Email).Return(false, nil).Once()
		mockUserRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
			codes = append(codes, args.Get(1).(*domain.User).ReferralCode)
		}).Return(conflict).Once()
		mockUserRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
			codes = append(codes, args.Get(1).(*domain.User).ReferralCode)
		}).Return(nil).Once()
		mockUserRepo.On("SetEmailVerificationToken", ctx, mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Once()
		mockEmailSvc.On("SendEmailVerification", mock.Anything, input.Email, input.FullName, mock.AnythingOfType("string")).Return(nil).Maybe()

		user, err := svc.Register(ctx, input)

		assert.NoError(t, err)
		assert.Len(t, codes, 2)
		assert.NotEqual(t, codes[0], codes[1])
		assert.Equal(t, codes[1], user.ReferralCode)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("Email unique violation is not retried", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := newService(mockUserRepo, new(mocks.EmailService))

		emailConflict := &pq.Error{Code: "23505", Constraint: "users_email_key"}
		mockUserRepo.On("ExistsByEmail", ctx, input.Email).Return(false, nil).Once()
		mockUserRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(emailConflict).Once()

		_, err := svc.Register(ctx, input)

		assert.Error(t, err)
		mockUserRepo.AssertNumberOfCalls(t, "Create", 1)
	})
}
