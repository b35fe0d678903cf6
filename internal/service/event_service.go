package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"soulsynergy/internal/domain"
	"soulsynergy/internal/repository"
)

type EventService interface {
	Create(ctx context.Context, organizerID uuid.UUID, input domain.CreateEventInput) (*domain.Event, error)
	Get(ctx context.Context, viewer *domain.User, id uuid.UUID) (*domain.Event, error)
	ListPublished(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Event], error)
	ListMine(ctx context.Context, organizerID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Event], error)
	ListPending(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Event], error)
	Publish(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error
	Approve(ctx context.Context, admin *domain.User, id uuid.UUID, info ClientInfo) error
	Reject(ctx context.Context, admin *domain.User, id uuid.UUID, reason string, info ClientInfo) error
	Archive(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error
	Unarchive(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error
	Update(ctx context.Context, actor *domain.User, id uuid.UUID, input domain.UpdateEventInput, info ClientInfo) (*domain.Event, error)
	Delete(ctx context.Context, actor *domain.User, id uuid.UUID, info ClientInfo) error
	ListCities(ctx context.Context) ([]domain.City, error)
}

type eventService struct {
	eventRepo    repository.EventRepository
	cityRepo     repository.CityRepository
	adminLogRepo repository.AdminLogRepository
	notifService NotificationService
	redis        *redis.Client
}

func NewEventService(eventRepo repository.EventRepository, cityRepo repository.CityRepository, adminLogRepo repository.AdminLogRepository, notifService NotificationService, redis *redis.Client) EventService {
	return &eventService{
		eventRepo:    eventRepo,
		cityRepo:     cityRepo,
		adminLogRepo: adminLogRepo,
		notifService: notifService,
		redis:        redis,
	}
}

func (s *eventService) Create(ctx context.Context, organizerID uuid.UUID, input domain.CreateEventInput) (*domain.Event, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, ErrValidation
	}
	if !input.EventType.IsValid() {
		return nil, ErrValidation
	}
	// Offline events must name a city; online events carry none.
	if !input.IsOnline {
		if input.CityID == nil {
			return nil, ErrValidation
		}
		city, err := s.cityRepo.GetByID(ctx, *input.CityID)
		if err != nil {
			return nil, err
		}
		if city == nil {
			return nil, ErrValidation
		}
	}

	cityID := input.CityID
	if input.IsOnline {
		cityID = nil
	}

	event := &domain.Event{
		ID:               uuid.New(),
		OrganizerID:      organizerID,
		Title:            input.Title,
		Description:      input.Description,
		CoverImage:       input.CoverImage,
		EventType:        input.EventType,
		IsOnline:         input.IsOnline,
		CityID:           cityID,
		EventDate:        input.EventDate,
		Location:         input.Location,
		Price:            input.Price,
		RegistrationLink: input.RegistrationLink,
		ModerationStatus: domain.ModerationDraft,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *eventService) Get(ctx context.Context, viewer *domain.User, id uuid.UUID) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}

	if event.IsPublished && !event.Archived {
		return event, nil
	}

	if viewer == nil {
		return nil, ErrNotFound
	}
	if viewer.ID != event.OrganizerID && !viewer.HasRole("admin") {
		return nil, ErrForbidden
	}
	return event, nil
}

func (s *eventService) ListPublished(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Event], error) {
	params.Validate()
	cacheKey := fmt.Sprintf("events:published:page:%d:size:%d", params.Page, params.PageSize)

	if s.redis != nil {
		cached, err := s.redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp domain.PaginatedResponse[domain.Event]
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	events, total, err := s.eventRepo.ListPublished(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Event]{}, err
	}

	resp := domain.NewPaginatedResponse(events, params.Page, params.PageSize, total)

	if s.redis != nil {
		if data, err := json.Marshal(resp); err == nil {
			_ = s.redis.Set(ctx, cacheKey, data, 5*time.Minute).Err()
		}
	}

	return resp, nil
}

func (s *eventService) ListMine(ctx context.Context, organizerID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Event], error) {
	events, total, err := s.eventRepo.ListByOrganizer(ctx, organizerID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Event]{}, err
	}
	return domain.NewPaginatedResponse(events, params.Page, params.PageSize, total), nil
}

func (s *eventService) ListPending(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Event], error) {
	events, total, err := s.eventRepo.ListPending(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Event]{}, err
	}
	return domain.NewPaginatedResponse(events, params.Page, params.PageSize, total), nil
}

func (s *eventService) Publish(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrNotFound
	}
	if event.OrganizerID != actorID {
		return ErrForbidden
	}

	changed, err := s.eventRepo.SubmitForModeration(ctx, id)
	if err != nil {
		return err
	}
	if !changed {
		return ErrInvalidState
	}

	return nil
}

func (s *eventService) Approve(ctx context.Context, admin *domain.User, id uuid.UUID, info ClientInfo) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrNotFound
	}

	changed, err := s.eventRepo.Approve(ctx, id)
	if err != nil {
		return err
	}
	if !changed {
		return ErrInvalidState
	}

	s.notifService.Notify(ctx, event.OrganizerID, domain.NotifEventApproved,
		"Событие опубликовано",
		fmt.Sprintf("Ваше событие «%s» прошло модерацию и опубликовано", event.Title),
		map[string]string{"event_id": id.String()})

	s.recordAdminAction(ctx, admin, domain.AuditActionApprove, id, event.Title, nil, info)
	s.invalidateListings(ctx)

	return nil
}

func (s *eventService) Reject(ctx context.Context, admin *domain.User, id uuid.UUID, reason string, info ClientInfo) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrValidation
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrNotFound
	}

	changed, err := s.eventRepo.Reject(ctx, id, reason)
	if err != nil {
		return err
	}
	if !changed {
		return ErrInvalidState
	}

	s.notifService.Notify(ctx, event.OrganizerID, domain.NotifEventRejected,
		"Событие отклонено",
		fmt.Sprintf("Ваше событие «%s» не прошло модерацию: %s", event.Title, reason),
		map[string]string{"event_id": id.String()})

	s.recordAdminAction(ctx, admin, domain.AuditActionReject, id, event.Title,
		map[string]string{"reason": reason}, info)
	s.invalidateListings(ctx)

	return nil
}

func (s *eventService) Archive(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error {
	return s.setArchived(ctx, actorID, id, true)
}

func (s *eventService) Unarchive(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error {
	return s.setArchived(ctx, actorID, id, false)
}

func (s *eventService) setArchived(ctx context.Context, actorID uuid.UUID, id uuid.UUID, archived bool) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrNotFound
	}
	if event.OrganizerID != actorID {
		return ErrForbidden
	}

	if err := s.eventRepo.SetArchived(ctx, id, archived); err != nil {
		return err
	}

	s.invalidateListings(ctx)
	return nil
}

func (s *eventService) Update(ctx context.Context, actor *domain.User, id uuid.UUID, input domain.UpdateEventInput, info ClientInfo) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}

	isOwner := event.OrganizerID == actor.ID
	isAdmin := actor.HasRole("admin")
	if !isOwner && !isAdmin {
		return nil, ErrForbidden
	}

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.CoverImage != nil {
		event.CoverImage = *input.CoverImage
	}
	if input.EventType != nil {
		if !input.EventType.IsValid() {
			return nil, ErrValidation
		}
		event.EventType = *input.EventType
	}
	if input.IsOnline != nil {
		event.IsOnline = *input.IsOnline
	}
	if input.CityID != nil {
		event.CityID = *input.CityID
	}
	if input.EventDate != nil {
		event.EventDate = *input.EventDate
	}
	if input.Location != nil {
		event.Location = *input.Location
	}
	if input.Price != nil {
		event.Price = *input.Price
	}
	if input.RegistrationLink != nil {
		event.RegistrationLink = *input.RegistrationLink
	}

	if event.IsOnline {
		event.CityID = nil
	} else {
		if event.CityID == nil {
			return nil, ErrValidation
		}
		city, err := s.cityRepo.GetByID(ctx, *event.CityID)
		if err != nil {
			return nil, err
		}
		if city == nil {
			return nil, ErrValidation
		}
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	if isAdmin && !isOwner {
		s.notifService.Notify(ctx, event.OrganizerID, domain.NotifEventEdited,
			"Событие изменено модератором",
			fmt.Sprintf("Администратор внёс изменения в ваше событие «%s»", event.Title),
			map[string]string{"event_id": id.String()})

		s.recordAdminAction(ctx, actor, domain.AuditActionUpdate, id, event.Title, input, info)
	}

	s.invalidateListings(ctx)
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, actor *domain.User, id uuid.UUID, info ClientInfo) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrNotFound
	}

	isOwner := event.OrganizerID == actor.ID
	isAdmin := actor.HasRole("admin")
	if !isOwner && !isAdmin {
		return ErrForbidden
	}

	if isAdmin && !isOwner {
		s.notifService.Notify(ctx, event.OrganizerID, domain.NotifEventDeleted,
			"Событие удалено модератором",
			fmt.Sprintf("Администратор удалил ваше событие «%s»", event.Title),
			nil)

		s.recordAdminAction(ctx, actor, domain.AuditActionDelete, id, event.Title, nil, info)
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListings(ctx)
	return nil
}

func (s *eventService) ListCities(ctx context.Context) ([]domain.City, error) {
	return s.cityRepo.List(ctx)
}

func (s *eventService) recordAdminAction(ctx context.Context, admin *domain.User, action string, entityID uuid.UUID, title string, details interface{}, info ClientInfo) {
	_ = repository.RecordAdminAction(s.adminLogRepo, ctx, domain.CreateAuditLogInput{
		AdminID:     admin.ID,
		ActionType:  action,
		EntityType:  "event",
		EntityID:    entityID,
		EntityTitle: &title,
		Details:     details,
		IPAddress:   info.IPAddress,
		UserAgent:   info.UserAgent,
	})
}

func (s *eventService) invalidateListings(ctx context.Context) {
	if s.redis == nil {
		return
	}
	keys, _ := s.redis.Keys(ctx, "events:published:*").Result()
	if len(keys) > 0 {
		_ = s.redis.Del(ctx, keys...).Err()
	}
}
