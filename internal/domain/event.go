package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTypeMeditation  EventType = "meditation"
	EventTypeYoga        EventType = "yoga"
	EventTypeBreathwork  EventType = "breathwork"
	EventTypeRetreat     EventType = "retreat"
	EventTypeWorkshop    EventType = "workshop"
	EventTypeLecture     EventType = "lecture"
	EventTypeWebinar     EventType = "webinar"
	EventTypeConcert     EventType = "concert"
	EventTypeCeremony    EventType = "ceremony"
	EventTypeConstell    EventType = "constellation"
	EventTypeAstrology   EventType = "astrology"
	EventTypeNutrition   EventType = "nutrition"
)

func (e EventType) IsValid() bool {
	switch e {
	case EventTypeMeditation, EventTypeYoga, EventTypeBreathwork, EventTypeRetreat,
		EventTypeWorkshop, EventTypeLecture, EventTypeWebinar, EventTypeConcert,
		EventTypeCeremony, EventTypeConstell, EventTypeAstrology, EventTypeNutrition:
		return true
	}
	return false
}

type Event struct {
	ID               uuid.UUID        `json:"id" db:"id"`
	OrganizerID      uuid.UUID        `json:"organizer_id" db:"organizer_id"`
	OrganizerName    *string          `json:"organizer_name,omitempty" db:"organizer_name"`
	Title            string           `json:"title" db:"title"`
	Description      string           `json:"description" db:"description"`
	CoverImage       *string          `json:"cover_image,omitempty" db:"cover_image"`
	EventType        EventType        `json:"event_type" db:"event_type"`
	IsOnline         bool             `json:"is_online" db:"is_online"`
	CityID           *int64           `json:"city_id,omitempty" db:"city_id"`
	EventDate        time.Time        `json:"event_date" db:"event_date"`
	Location         *string          `json:"location,omitempty" db:"location"`
	Price            *float64         `json:"price,omitempty" db:"price"`
	RegistrationLink *string          `json:"registration_link,omitempty" db:"registration_link"`
	Archived         bool             `json:"archived" db:"archived"`
	IsPublished      bool             `json:"is_published" db:"is_published"`
	ModerationStatus ModerationStatus `json:"moderation_status" db:"moderation_status"`
	ModerationReason *string          `json:"moderation_reason,omitempty" db:"moderation_reason"`
	CreatedAt        time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at" db:"updated_at"`
}

type CreateEventInput struct {
	Title            string    `json:"title" validate:"required,max=200"`
	Description      string    `json:"description" validate:"required"`
	CoverImage       *string   `json:"cover_image"`
	EventType        EventType `json:"event_type" validate:"required"`
	IsOnline         bool      `json:"is_online"`
	CityID           *int64    `json:"city_id"`
	EventDate        time.Time `json:"event_date" validate:"required"`
	Location         *string   `json:"location" validate:"omitempty,max=300"`
	Price            *float64  `json:"price" validate:"omitempty,gte=0"`
	RegistrationLink *string   `json:"registration_link" validate:"omitempty,url"`
}

type UpdateEventInput struct {
	Title            *string    `json:"title" validate:"omitempty,max=200"`
	Description      *string    `json:"description"`
	CoverImage       **string   `json:"cover_image"`
	EventType        *EventType `json:"event_type"`
	IsOnline         *bool      `json:"is_online"`
	CityID           **int64    `json:"city_id"`
	EventDate        *time.Time `json:"event_date"`
	Location         **string   `json:"location" validate:"omitempty,max=300"`
	Price            **float64  `json:"price"`
	RegistrationLink **string   `json:"registration_link"`
}

type City struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
