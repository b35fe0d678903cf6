package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"soulsynergy/internal/config"
	"soulsynergy/internal/domain"
	"soulsynergy/internal/pkg/yookassa"
	"soulsynergy/internal/repository"
)

type CreatedPayment struct {
	PaymentID       uuid.UUID `json:"payment_id"`
	ConfirmationURL string    `json:"confirmation_url"`
}

type PaymentService interface {
	CreatePayment(ctx context.Context, client *domain.User, input domain.CreatePaymentInput) (*CreatedPayment, error)
	ListMine(ctx context.Context, clientID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Payment], error)

	// HandleWebhook applies a provider callback. Unknown payment ids are
	// acknowledged and dropped so the provider stops retrying.
	HandleWebhook(ctx context.Context, payload domain.WebhookPayload) error
}

type paymentService struct {
	paymentRepo  repository.PaymentRepository
	productRepo  repository.ProductRepository
	notifService NotificationService
	provider     *yookassa.Client
	cfg          *config.Config
}

func NewPaymentService(paymentRepo repository.PaymentRepository, productRepo repository.ProductRepository, notifService NotificationService, cfg *config.Config) PaymentService {
	return &paymentService{
		paymentRepo:  paymentRepo,
		productRepo:  productRepo,
		notifService: notifService,
		provider:     yookassa.New(cfg.YooKassaShopID, cfg.YooKassaSecretKey),
		cfg:          cfg,
	}
}

func (s *paymentService) CreatePayment(ctx context.Context, client *domain.User, input domain.CreatePaymentInput) (*CreatedPayment, error) {
	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrNotFound
	}
	if product.ExpertID == client.ID {
		return nil, ErrValidation
	}

	paymentID := uuid.New()

	created, err := s.provider.CreatePayment(ctx, yookassa.CreatePaymentRequest{
		Amount: yookassa.Amount{
			Value:    fmt.Sprintf("%.2f", product.Price),
			Currency: "RUB",
		},
		Confirmation: yookassa.Confirmation{
			Type:      "redirect",
			ReturnURL: fmt.Sprintf("%s/payments/%s", s.cfg.FrontendURL, paymentID),
		},
		Capture:     true,
		Description: product.Title,
		Metadata: map[string]string{
			"payment_id": paymentID.String(),
			"product_id": product.ID.String(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create provider payment: %w", err)
	}

	payment := &domain.Payment{
		ID:                paymentID,
		ProductID:         product.ID,
		ClientID:          client.ID,
		ProviderPaymentID: created.ID,
		Amount:            product.Price,
		Status:            domain.PaymentPending,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	confirmationURL := ""
	if created.Confirmation != nil {
		confirmationURL = created.Confirmation.ConfirmationURL
	}

	return &CreatedPayment{
		PaymentID:       paymentID,
		ConfirmationURL: confirmationURL,
	}, nil
}

func (s *paymentService) ListMine(ctx context.Context, clientID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Payment], error) {
	payments, total, err := s.paymentRepo.ListByClient(ctx, clientID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Payment]{}, err
	}
	return domain.NewPaginatedResponse(payments, params.Page, params.PageSize, total), nil
}

func (s *paymentService) HandleWebhook(ctx context.Context, payload domain.WebhookPayload) error {
	payment, err := s.paymentRepo.GetByProviderID(ctx, payload.Object.ID)
	if err != nil {
		return err
	}
	if payment == nil {
		log.Printf("payment webhook: unknown provider payment %s, ignoring", payload.Object.ID)
		return nil
	}

	var status domain.PaymentStatus
	switch payload.Event {
	case "payment.succeeded":
		status = domain.PaymentSucceeded
	case "payment.canceled":
		status = domain.PaymentCanceled
	default:
		log.Printf("payment webhook: unhandled event %q for %s", payload.Event, payload.Object.ID)
		return nil
	}

	if payment.Status == status {
		return nil
	}
	if err := s.paymentRepo.SetStatus(ctx, payment.ID, status); err != nil {
		return err
	}

	if status == domain.PaymentSucceeded {
		product, err := s.productRepo.GetByID(ctx, payment.ProductID)
		if err != nil || product == nil {
			log.Printf("payment webhook: load product %s: %v", payment.ProductID, err)
			return nil
		}
		s.notifService.Notify(ctx, product.ExpertID, domain.NotifProductPurchased,
			"Новая покупка",
			fmt.Sprintf("Ваш продукт «%s» купили за %.2f ₽", product.Title, payment.Amount),
			map[string]string{"payment_id": payment.ID.String(), "product_id": product.ID.String()})
	}

	return nil
}
