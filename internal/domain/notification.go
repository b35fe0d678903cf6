package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID          uuid.UUID        `json:"id" db:"id"`
	RecipientID uuid.UUID        `json:"recipient_id" db:"recipient_id"`
	Type        NotificationType `json:"type" db:"type"`
	Title       string           `json:"title" db:"title"`
	Message     string           `json:"message" db:"message"`
	Data        json.RawMessage  `json:"data,omitempty" db:"data"`
	IsRead      bool             `json:"is_read" db:"is_read"`
	ReadAt      *time.Time       `json:"read_at,omitempty" db:"read_at"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
}

type NotificationType string

const (
	NotifArticleEdited    NotificationType = "article_edited"
	NotifArticleDeleted   NotificationType = "article_deleted"
	NotifArticleApproved  NotificationType = "article_approved"
	NotifArticleRejected  NotificationType = "article_rejected"
	NotifEventEdited      NotificationType = "event_edited"
	NotifEventDeleted     NotificationType = "event_deleted"
	NotifEventApproved    NotificationType = "event_approved"
	NotifEventRejected    NotificationType = "event_rejected"
	NotifBookingCreated   NotificationType = "booking_created"
	NotifBookingConfirmed NotificationType = "booking_confirmed"
	NotifBookingRejected  NotificationType = "booking_rejected"
	NotifBookingCancelled NotificationType = "booking_cancelled"
	NotifProductPurchased NotificationType = "product_purchased"
)
