package domain

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentCanceled  PaymentStatus = "canceled"
)

type Payment struct {
	ID                uuid.UUID     `json:"id" db:"id"`
	ProductID         uuid.UUID     `json:"product_id" db:"product_id"`
	ClientID          uuid.UUID     `json:"client_id" db:"client_id"`
	ProviderPaymentID string        `json:"provider_payment_id" db:"provider_payment_id"`
	Amount            float64       `json:"amount" db:"amount"`
	Status            PaymentStatus `json:"status" db:"status"`
	CreatedAt         time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at" db:"updated_at"`
}

type CreatePaymentInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

// WebhookPayload is the YooKassa callback body.
type WebhookPayload struct {
	Event  string `json:"event"`
	Object struct {
		ID       string            `json:"id"`
		Status   string            `json:"status"`
		Metadata map[string]string `json:"metadata"`
	} `json:"object"`
}
