package domain

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingRejected  BookingStatus = "rejected"
	BookingCancelled BookingStatus = "cancelled"
)

// CanTransitionTo encodes the booking state machine:
// pending -> confirmed|rejected|cancelled, confirmed -> cancelled.
// Rejected and cancelled are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingPending:
		return next == BookingConfirmed || next == BookingRejected || next == BookingCancelled
	case BookingConfirmed:
		return next == BookingCancelled
	default:
		return false
	}
}

type Booking struct {
	ID              uuid.UUID     `json:"id" db:"id"`
	ClientID        uuid.UUID     `json:"client_id" db:"client_id"`
	ExpertID        uuid.UUID     `json:"expert_id" db:"expert_id"`
	ClientName      *string       `json:"client_name,omitempty" db:"client_name"`
	ExpertName      *string       `json:"expert_name,omitempty" db:"expert_name"`
	Date            time.Time     `json:"date" db:"date"`
	TimeSlot        string        `json:"time_slot" db:"time_slot"`
	Status          BookingStatus `json:"status" db:"status"`
	ClientMessage   *string       `json:"client_message,omitempty" db:"client_message"`
	RejectionReason *string       `json:"rejection_reason,omitempty" db:"rejection_reason"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
}

type CreateBookingInput struct {
	ExpertID      uuid.UUID `json:"expert_id" validate:"required"`
	Date          time.Time `json:"date" validate:"required"`
	TimeSlot      string    `json:"time_slot" validate:"required,max=50"`
	ClientMessage *string   `json:"client_message"`
}
