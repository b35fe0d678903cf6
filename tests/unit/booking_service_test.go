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

func TestBookingService_Create(t *testing.T) {
	ctx := context.Background()
	client := &domain.User{ID: uuid.New(), Role: "client", FullName: "Клиент"}
	expert := &domain.User{ID: uuid.New(), Role: "expert", FullName: "Эксперт"}
	date := time.Now().Add(48 * time.Hour)

	t.Run("Success - expert gets a notification", func(t *testing.T) {
		mockBookingRepo := new(mocks.BookingRepository)
		mockUserRepo := new(mocks.UserRepository)
		mockNotifSvc := new(mocks.NotificationService)
		svc := service.NewBookingService(mockBookingRepo, mockUserRepo, mockNotifSvc, new(mocks.EmailService))

		mockUserRepo.On("GetByID", ctx, expert.ID).Return(expert, nil).Once()
		mockBookingRepo.On("Create", ctx, mock.MatchedBy(func(b *domain.Booking) bool {
			return b.ClientID == client.ID && b.ExpertID == expert.ID && b.Status == domain.BookingPending
		})).Return(nil).Once()
		mockNotifSvc.On("Notify", ctx, expert.ID, domain.NotifBookingCreated,
			mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).Once()

		booking, err := svc.Create(ctx, client, domain.CreateBookingInput{
			ExpertID: expert.ID,
			Date:     date,
			TimeSlot: "14:00-15:00",
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.BookingPending, booking.Status)
		mockBookingRepo.AssertExpectations(t)
		mockNotifSvc.AssertExpectations(t)
	})

	t.Run("Cannot book yourself", func(t *testing.T) {
		svc := service.NewBookingService(new(mocks.BookingRepository), new(mocks.UserRepository), new(mocks.NotificationService), new(mocks.EmailService))

		booking, err := svc.Create(ctx, client, domain.CreateBookingInput{
			ExpertID: client.ID,
			Date:     date,
			TimeSlot: "14:00-15:00",
		})

		assert.ErrorIs(t, err, service.ErrValidation)
		assert.Nil(t, booking)
	})

	t.Run("Banned expert is unbookable", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := service.NewBookingService(new(mocks.BookingRepository), mockUserRepo, new(mocks.NotificationService), new(mocks.EmailService))

		bannedAt := time.Now()
		banned := &domain.User{ID: expert.ID, Role: "expert", BannedAt: &bannedAt}
		mockUserRepo.On("GetByID", ctx, expert.ID).Return(banned, nil).Once()

		booking, err := svc.Create(ctx, client, domain.CreateBookingInput{
			ExpertID: expert.ID,
			Date:     date,
			TimeSlot: "14:00-15:00",
		})

		assert.ErrorIs(t, err, service.ErrNotFound)
		assert.Nil(t, booking)
	})
}

func TestBookingService_Confirm(t *testing.T) {
	ctx := context.Background()
	expert := &domain.User{ID: uuid.New(), Role: "expert", FullName: "Эксперт", Email: "expert@soulsynergy.ru"}
	clientID := uuid.New()
	bookingID := uuid.New()

	pending := &domain.Booking{
		ID:       bookingID,
		ClientID: clientID,
		ExpertID: expert.ID,
		Date:     time.Now().Add(24 * time.Hour),
		TimeSlot: "10:00-11:00",
		Status:   domain.BookingPending,
	}

	t.Run("Forbidden - someone else's booking", func(t *testing.T) {
		mockBookingRepo := new(mocks.BookingRepository)
		svc := service.NewBookingService(mockBookingRepo, new(mocks.UserRepository), new(mocks.NotificationService), new(mocks.EmailService))

		mockBookingRepo.On("GetByID", ctx, bookingID).Return(pending, nil).Once()

		other := &domain.User{ID: uuid.New(), Role: "expert"}
		err := svc.Confirm(ctx, other, bookingID)

		assert.ErrorIs(t, err, service.ErrForbidden)
		mockBookingRepo.AssertNotCalled(t, "Transition", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Invalid State - already cancelled", func(t *testing.T) {
		mockBookingRepo := new(mocks.BookingRepository)
		mockNotifSvc := new(mocks.NotificationService)
		svc := service.NewBookingService(mockBookingRepo, new(mocks.UserRepository), mockNotifSvc, new(mocks.EmailService))

		mockBookingRepo.On("GetByID", ctx, bookingID).Return(pending, nil).Once()
		mockBookingRepo.On("Transition", ctx, bookingID,
			[]domain.BookingStatus{domain.BookingPending}, domain.BookingConfirmed, (*string)(nil)).
			Return(false, nil).Once()

		err := svc.Confirm(ctx, expert, bookingID)

		assert.ErrorIs(t, err, service.ErrInvalidState)
		mockNotifSvc.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBookingService_Cancel(t *testing.T) {
	ctx := context.Background()
	client := &domain.User{ID: uuid.New(), Role: "client", FullName: "Клиент"}
	expertID := uuid.New()
	bookingID := uuid.New()

	confirmed := &domain.Booking{
		ID:       bookingID,
		ClientID: client.ID,
		ExpertID: expertID,
		Date:     time.Now().Add(24 * time.Hour),
		TimeSlot: "10:00-11:00",
		Status:   domain.BookingConfirmed,
	}

	t.Run("Client cancel notifies the expert", func(t *testing.T) {
		mockBookingRepo := new(mocks.BookingRepository)
		mockNotifSvc := new(mocks.NotificationService)
		svc := service.NewBookingService(mockBookingRepo, new(mocks.UserRepository), mockNotifSvc, new(mocks.EmailService))

		mockBookingRepo.On("GetByID", ctx, bookingID).Return(confirmed, nil).Once()
		mockBookingRepo.On("Transition", ctx, bookingID,
			[]domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed}, domain.BookingCancelled, (*string)(nil)).
			Return(true, nil).Once()
		mockNotifSvc.On("Notify", ctx, expertID, domain.NotifBookingCancelled,
			mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).Once()

		err := svc.Cancel(ctx, client, bookingID)

		assert.NoError(t, err)
		mockNotifSvc.AssertExpectations(t)
	})

	t.Run("Expert cannot cancel, only reject", func(t *testing.T) {
		mockBookingRepo := new(mocks.BookingRepository)
		mockNotifSvc := new(mocks.NotificationService)
		svc := service.NewBookingService(mockBookingRepo, new(mocks.UserRepository), mockNotifSvc, new(mocks.EmailService))

		mockBookingRepo.On("GetByID", ctx, bookingID).Return(confirmed, nil).Once()

		expert := &domain.User{ID: expertID, Role: "expert", FullName: "Эксперт"}
		err := svc.Cancel(ctx, expert, bookingID)

		assert.ErrorIs(t, err, service.ErrForbidden)
		mockBookingRepo.AssertNotCalled(t, "Transition", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockNotifSvc.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Stranger cannot cancel", func(t *testing.T) {
		mockBookingRepo := new(mocks.BookingRepository)
		svc := service.NewBookingService(mockBookingRepo, new(mocks.UserRepository), new(mocks.NotificationService), new(mocks.EmailService))

		mockBookingRepo.On("GetByID", ctx, bookingID).Return(confirmed, nil).Once()

		stranger := &domain.User{ID: uuid.New(), Role: "client"}
		err := svc.Cancel(ctx, stranger, bookingID)

		assert.ErrorIs(t, err, service.ErrForbidden)
	})
}

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, domain.BookingPending.CanTransitionTo(domain.BookingConfirmed))
	assert.True(t, domain.BookingPending.CanTransitionTo(domain.BookingRejected))
	assert.True(t, domain.BookingPending.CanTransitionTo(domain.BookingCancelled))
	assert.True(t, domain.BookingConfirmed.CanTransitionTo(domain.BookingCancelled))

	assert.False(t, domain.BookingConfirmed.CanTransitionTo(domain.BookingRejected))
	assert.False(t, domain.BookingRejected.CanTransitionTo(domain.BookingConfirmed))
	assert.False(t, domain.BookingCancelled.CanTransitionTo(domain.BookingPending))
}
