package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"soulsynergy/internal/domain"
	"soulsynergy/internal/repository"
)

type BookingService interface {
	Create(ctx context.Context, client *domain.User, input domain.CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, viewer *domain.User, id uuid.UUID) (*domain.Booking, error)
	ListMine(ctx context.Context, clientID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Booking], error)
	ListForExpert(ctx context.Context, expertID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Booking], error)
	Confirm(ctx context.Context, expert *domain.User, id uuid.UUID) error
	Reject(ctx context.Context, expert *domain.User, id uuid.UUID, reason string) error
	Cancel(ctx context.Context, actor *domain.User, id uuid.UUID) error
}

type bookingService struct {
	bookingRepo  repository.BookingRepository
	userRepo     repository.UserRepository
	notifService NotificationService
	emailService EmailService
}

func NewBookingService(bookingRepo repository.BookingRepository, userRepo repository.UserRepository, notifService NotificationService, emailService EmailService) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		notifService: notifService,
		emailService: emailService,
	}
}

func (s *bookingService) Create(ctx context.Context, client *domain.User, input domain.CreateBookingInput) (*domain.Booking, error) {
	if strings.TrimSpace(input.TimeSlot) == "" {
		return nil, ErrValidation
	}
	if input.ExpertID == client.ID {
		return nil, ErrValidation
	}

	expert, err := s.userRepo.GetByID(ctx, input.ExpertID)
	if err != nil {
		return nil, err
	}
	if expert == nil || expert.Role != string(domain.RoleExpert) || expert.IsBanned() {
		return nil, ErrNotFound
	}

	booking := &domain.Booking{
		ID:            uuid.New(),
		ClientID:      client.ID,
		ExpertID:      expert.ID,
		Date:          input.Date,
		TimeSlot:      input.TimeSlot,
		Status:        domain.BookingPending,
		ClientMessage: input.ClientMessage,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.notifService.Notify(ctx, expert.ID, domain.NotifBookingCreated,
		"Новая запись",
		fmt.Sprintf("%s записался(ась) к вам на %s, %s", client.FullName, booking.Date.Format("02.01.2006"), booking.TimeSlot),
		map[string]string{"booking_id": booking.ID.String()})

	return booking, nil
}

func (s *bookingService) Get(ctx context.Context, viewer *domain.User, id uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrNotFound
	}

	if viewer.ID != booking.ClientID && viewer.ID != booking.ExpertID && !viewer.HasRole("admin") {
		return nil, ErrForbidden
	}
	return booking, nil
}

func (s *bookingService) ListMine(ctx context.Context, clientID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Booking], error) {
	bookings, total, err := s.bookingRepo.ListByClient(ctx, clientID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Booking]{}, err
	}
	return domain.NewPaginatedResponse(bookings, params.Page, params.PageSize, total), nil
}

func (s *bookingService) ListForExpert(ctx context.Context, expertID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Booking], error) {
	bookings, total, err := s.bookingRepo.ListByExpert(ctx, expertID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Booking]{}, err
	}
	return domain.NewPaginatedResponse(bookings, params.Page, params.PageSize, total), nil
}

func (s *bookingService) Confirm(ctx context.Context, expert *domain.User, id uuid.UUID) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if booking == nil {
		return ErrNotFound
	}
	if booking.ExpertID != expert.ID {
		return ErrForbidden
	}

	changed, err := s.bookingRepo.Transition(ctx, id,
		[]domain.BookingStatus{domain.BookingPending}, domain.BookingConfirmed, nil)
	if err != nil {
		return err
	}
	if !changed {
		return ErrInvalidState
	}

	s.notifService.Notify(ctx, booking.ClientID, domain.NotifBookingConfirmed,
		"Запись подтверждена",
		fmt.Sprintf("%s подтвердил(а) вашу запись на %s, %s", expert.FullName, booking.Date.Format("02.01.2006"), booking.TimeSlot),
		map[string]string{"booking_id": id.String()})

	go s.emailClient(context.Background(), booking, func(ctx context.Context, client *domain.User) error {
		return s.emailService.SendBookingConfirmedEmail(ctx, client.Email, client.FullName,
			expert.FullName, booking.Date.Format("02.01.2006"), booking.TimeSlot)
	})

	return nil
}

func (s *bookingService) Reject(ctx context.Context, expert *domain.User, id uuid.UUID, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrValidation
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if booking == nil {
		return ErrNotFound
	}
	if booking.ExpertID != expert.ID {
		return ErrForbidden
	}

	changed, err := s.bookingRepo.Transition(ctx, id,
		[]domain.BookingStatus{domain.BookingPending}, domain.BookingRejected, &reason)
	if err != nil {
		return err
	}
	if !changed {
		return ErrInvalidState
	}

	s.notifService.Notify(ctx, booking.ClientID, domain.NotifBookingRejected,
		"Запись отклонена",
		fmt.Sprintf("%s отклонил(а) вашу запись: %s", expert.FullName, reason),
		map[string]string{"booking_id": id.String()})

	go s.emailClient(context.Background(), booking, func(ctx context.Context, client *domain.User) error {
		return s.emailService.SendBookingRejectedEmail(ctx, client.Email, client.FullName, expert.FullName, reason)
	})

	return nil
}

func (s *bookingService) Cancel(ctx context.Context, actor *domain.User, id uuid.UUID) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if booking == nil {
		return ErrNotFound
	}
	// Only the client cancels; the expert's way out is Reject with a reason.
	if actor.ID != booking.ClientID {
		return ErrForbidden
	}

	changed, err := s.bookingRepo.Transition(ctx, id,
		[]domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed}, domain.BookingCancelled, nil)
	if err != nil {
		return err
	}
	if !changed {
		return ErrInvalidState
	}

	s.notifService.Notify(ctx, booking.ExpertID, domain.NotifBookingCancelled,
		"Запись отменена",
		fmt.Sprintf("%s отменил(а) запись на %s, %s", actor.FullName, booking.Date.Format("02.01.2006"), booking.TimeSlot),
		map[string]string{"booking_id": id.String()})

	return nil
}

func (s *bookingService) emailClient(ctx context.Context, booking *domain.Booking, send func(context.Context, *domain.User) error) {
	client, err := s.userRepo.GetByID(ctx, booking.ClientID)
	if err != nil || client == nil {
		log.Printf("booking email: load client %s: %v", booking.ClientID, err)
		return
	}
	if err := send(ctx, client); err != nil {
		log.Printf("booking email: send to %s: %v", client.Email, err)
	}
}
