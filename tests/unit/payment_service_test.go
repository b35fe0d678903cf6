package unit_test

import (
	"context"
	"testing"

	"soulsynergy/internal/config"
	"soulsynergy/internal/domain"
	"soulsynergy/internal/service"
	"soulsynergy/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func webhookPayload(event, providerID string) domain.WebhookPayload {
	var p domain.WebhookPayload
	p.Event = event
	p.Object.ID = providerID
	p.Object.Status = "succeeded"
	return p
}

func TestPaymentService_HandleWebhook(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}

	t.Run("Unknown provider id is acknowledged and dropped", func(t *testing.T) {
		mockPaymentRepo := new(mocks.PaymentRepository)
		svc := service.NewPaymentService(mockPaymentRepo, new(mocks.ProductRepository), new(mocks.NotificationService), cfg)

		mockPaymentRepo.On("GetByProviderID", ctx, "yk-unknown").Return(nil, nil).Once()

		err := svc.HandleWebhook(ctx, webhookPayload("payment.succeeded", "yk-unknown"))

		assert.NoError(t, err)
		mockPaymentRepo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Succeeded payment notifies the selling expert", func(t *testing.T) {
		mockPaymentRepo := new(mocks.PaymentRepository)
		mockProductRepo := new(mocks.ProductRepository)
		mockNotifSvc := new(mocks.NotificationService)
		svc := service.NewPaymentService(mockPaymentRepo, mockProductRepo, mockNotifSvc, cfg)

		expertID := uuid.New()
		product := &domain.Product{ID: uuid.New(), ExpertID: expertID, Title: "Курс медитаций", Price: 4900}
		payment := &domain.Payment{
			ID:                uuid.New(),
			ProductID:         product.ID,
			ClientID:          uuid.New(),
			ProviderPaymentID: "yk-123",
			Amount:            4900,
			Status:            domain.PaymentPending,
		}

		mockPaymentRepo.On("GetByProviderID", ctx, "yk-123").Return(payment, nil).Once()
		mockPaymentRepo.On("SetStatus", ctx, payment.ID, domain.PaymentSucceeded).Return(nil).Once()
		mockProductRepo.On("GetByID", ctx, product.ID).Return(product, nil).Once()
		mockNotifSvc.On("Notify", ctx, expertID, domain.NotifProductPurchased,
			mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).Once()

		err := svc.HandleWebhook(ctx, webhookPayload("payment.succeeded", "yk-123"))

		assert.NoError(t, err)
		mockPaymentRepo.AssertExpectations(t)
		mockNotifSvc.AssertExpectations(t)
	})

	t.Run("Replayed webhook with same status is a no-op", func(t *testing.T) {
		mockPaymentRepo := new(mocks.PaymentRepository)
		mockNotifSvc := new(mocks.NotificationService)
		svc := service.NewPaymentService(mockPaymentRepo, new(mocks.ProductRepository), mockNotifSvc, cfg)

		payment := &domain.Payment{
			ID:                uuid.New(),
			ProviderPaymentID: "yk-123",
			Status:            domain.PaymentSucceeded,
		}
		mockPaymentRepo.On("GetByProviderID", ctx, "yk-123").Return(payment, nil).Once()

		err := svc.HandleWebhook(ctx, webhookPayload("payment.succeeded", "yk-123"))

		assert.NoError(t, err)
		mockPaymentRepo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
		mockNotifSvc.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Canceled payment does not notify anyone", func(t *testing.T) {
		mockPaymentRepo := new(mocks.PaymentRepository)
		mockNotifSvc := new(mocks.NotificationService)
		svc := service.NewPaymentService(mockPaymentRepo, new(mocks.ProductRepository), mockNotifSvc, cfg)

		payment := &domain.Payment{
			ID:                uuid.New(),
			ProviderPaymentID: "yk-456",
			Status:            domain.PaymentPending,
		}
		mockPaymentRepo.On("GetByProviderID", ctx, "yk-456").Return(payment, nil).Once()
		mockPaymentRepo.On("SetStatus", ctx, payment.ID, domain.PaymentCanceled).Return(nil).Once()

		err := svc.HandleWebhook(ctx, webhookPayload("payment.canceled", "yk-456"))

		assert.NoError(t, err)
		mockNotifSvc.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unhandled event type ignored", func(t *testing.T) {
		mockPaymentRepo := new(mocks.PaymentRepository)
		svc := service.NewPaymentService(mockPaymentRepo, new(mocks.ProductRepository), new(mocks.NotificationService), cfg)

		payment := &domain.Payment{ID: uuid.New(), ProviderPaymentID: "yk-789", Status: domain.PaymentPending}
		mockPaymentRepo.On("GetByProviderID", ctx, "yk-789").Return(payment, nil).Once()

		err := svc.HandleWebhook(ctx, webhookPayload("payment.waiting_for_capture", "yk-789"))

		assert.NoError(t, err)
		mockPaymentRepo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}
