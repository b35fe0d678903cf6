package domain

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ExpertID    uuid.UUID `json:"expert_id" db:"expert_id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description,omitempty" db:"description"`
	Price       float64   `json:"price" db:"price"`
	ImageURL    *string   `json:"image_url,omitempty" db:"image_url"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type CreateProductInput struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImageURL    *string `json:"image_url"`
}

type UpdateProductInput struct {
	Title       *string  `json:"title" validate:"omitempty,max=200"`
	Description **string `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	ImageURL    **string `json:"image_url"`
	IsActive    *bool    `json:"is_active"`
}
