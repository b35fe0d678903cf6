package domain

import (
	"time"

	"github.com/google/uuid"
)

type Article struct {
	ID               uuid.UUID        `json:"id" db:"id"`
	AuthorID         uuid.UUID        `json:"author_id" db:"author_id"`
	AuthorName       *string          `json:"author_name,omitempty" db:"author_name"`
	Title            string           `json:"title" db:"title"`
	Content          string           `json:"content" db:"content"`
	CoverImage       *string          `json:"cover_image,omitempty" db:"cover_image"`
	Views            int64            `json:"views" db:"views"`
	LikesCount       int64            `json:"likes_count" db:"likes_count"`
	IsPublished      bool             `json:"is_published" db:"is_published"`
	Archived         bool             `json:"archived" db:"archived"`
	ModerationStatus ModerationStatus `json:"moderation_status" db:"moderation_status"`
	ModerationReason *string          `json:"moderation_reason,omitempty" db:"moderation_reason"`
	CreatedAt        time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at" db:"updated_at"`
}

type CreateArticleInput struct {
	Title      string  `json:"title" validate:"required,max=200"`
	Content    string  `json:"content" validate:"required"`
	CoverImage *string `json:"cover_image"`
}

type UpdateArticleInput struct {
	Title      *string  `json:"title" validate:"omitempty,max=200"`
	Content    *string  `json:"content"`
	CoverImage **string `json:"cover_image"`
}
