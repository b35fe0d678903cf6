package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"soulsynergy/internal/domain"
	"soulsynergy/internal/repository"
)

type NotificationService interface {
	List(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	MarkAsRead(ctx context.Context, recipientID, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, recipientID uuid.UUID) error
	Delete(ctx context.Context, recipientID, id uuid.UUID) error
	GetUnreadCount(ctx context.Context, recipientID uuid.UUID) (int64, error)

	// Notify is fire-and-forget: a failed insert is logged and swallowed,
	// never retried. Row creation is the only delivery guarantee.
	Notify(ctx context.Context, recipientID uuid.UUID, notifType domain.NotificationType, title, message string, data map[string]string)
}

type notificationService struct {
	notifRepo repository.NotificationRepository
}

func NewNotificationService(notifRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notifRepo: notifRepo}
}

func (s *notificationService) List(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	notifications, total, err := s.notifRepo.ListByRecipient(ctx, recipientID, unreadOnly, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}

	return domain.NewPaginatedResponse(notifications, params.Page, params.PageSize, total), nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, recipientID, id uuid.UUID) error {
	notif, err := s.notifRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notif == nil {
		return ErrNotFound
	}
	if notif.RecipientID != recipientID {
		return ErrForbidden
	}

	return s.notifRepo.MarkAsRead(ctx, id)
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, recipientID uuid.UUID) error {
	return s.notifRepo.MarkAllAsRead(ctx, recipientID)
}

func (s *notificationService) Delete(ctx context.Context, recipientID, id uuid.UUID) error {
	notif, err := s.notifRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notif == nil {
		return ErrNotFound
	}
	if notif.RecipientID != recipientID {
		return ErrForbidden
	}

	return s.notifRepo.Delete(ctx, id)
}

func (s *notificationService) GetUnreadCount(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, recipientID)
}

func (s *notificationService) Notify(ctx context.Context, recipientID uuid.UUID, notifType domain.NotificationType, title, message string, data map[string]string) {
	var raw json.RawMessage
	if len(data) > 0 {
		raw, _ = json.Marshal(data)
	}

	notif := &domain.Notification{
		ID:          uuid.New(),
		RecipientID: recipientID,
		Type:        notifType,
		Title:       title,
		Message:     message,
		Data:        raw,
	}

	if err := s.notifRepo.Create(ctx, notif); err != nil {
		log.Printf("Failed to create notification for user %s: %v", recipientID, err)
	}
}
