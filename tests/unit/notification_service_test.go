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

func TestNotificationService_RecipientScoping(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	notifID := uuid.New()

	notif := &domain.Notification{
		ID:          notifID,
		RecipientID: ownerID,
		Type:        domain.NotifArticleApproved,
		Title:       "Статья опубликована",
	}

	t.Run("Owner can mark as read", func(t *testing.T) {
		mockRepo := new(mocks.NotificationRepository)
		svc := service.NewNotificationService(mockRepo)

		mockRepo.On("GetByID", ctx, notifID).Return(notif, nil).Once()
		mockRepo.On("MarkAsRead", ctx, notifID).Return(nil).Once()

		err := svc.MarkAsRead(ctx, ownerID, notifID)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Foreign notification is forbidden", func(t *testing.T) {
		mockRepo := new(mocks.NotificationRepository)
		svc := service.NewNotificationService(mockRepo)

		mockRepo.On("GetByID", ctx, notifID).Return(notif, nil).Once()

		err := svc.MarkAsRead(ctx, uuid.New(), notifID)

		assert.ErrorIs(t, err, service.ErrForbidden)
		mockRepo.AssertNotCalled(t, "MarkAsRead", mock.Anything, mock.Anything)
	})

	t.Run("Missing notification is not found", func(t *testing.T) {
		mockRepo := new(mocks.NotificationRepository)
		svc := service.NewNotificationService(mockRepo)

		mockRepo.On("GetByID", ctx, notifID).Return(nil, nil).Once()

		err := svc.MarkAsRead(ctx, ownerID, notifID)

		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("Delete is scoped the same way", func(t *testing.T) {
		mockRepo := new(mocks.NotificationRepository)
		svc := service.NewNotificationService(mockRepo)

		mockRepo.On("GetByID", ctx, notifID).Return(notif, nil).Once()

		err := svc.Delete(ctx, uuid.New(), notifID)

		assert.ErrorIs(t, err, service.ErrForbidden)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestNotificationService_NotifySwallowsErrors(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(mocks.NotificationRepository)
	svc := service.NewNotificationService(mockRepo)

	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).
		Return(assert.AnError).Once()

	// Must not panic or propagate the insert failure.
	svc.Notify(ctx, uuid.New(), domain.NotifBookingCreated, "Новая запись", "Текст", nil)

	mockRepo.AssertExpectations(t)
}
