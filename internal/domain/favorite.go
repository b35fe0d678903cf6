package domain

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteTarget names the entity kind a favorite points at. Each kind lives
// in its own table with a (user_id, target_id) primary key.
type FavoriteTarget string

const (
	FavoriteExpert  FavoriteTarget = "expert"
	FavoriteEvent   FavoriteTarget = "event"
	FavoriteArticle FavoriteTarget = "article"
)

func (t FavoriteTarget) IsValid() bool {
	switch t {
	case FavoriteExpert, FavoriteEvent, FavoriteArticle:
		return true
	}
	return false
}

type FavoriteExpertEntry struct {
	User        User      `json:"user"`
	FavoritedAt time.Time `json:"favorited_at"`
}

type FavoriteEventEntry struct {
	Event       Event     `json:"event"`
	FavoritedAt time.Time `json:"favorited_at"`
}

type FavoriteArticleEntry struct {
	Article     Article   `json:"article"`
	FavoritedAt time.Time `json:"favorited_at"`
}

type ToggleFavoriteInput struct {
	TargetType FavoriteTarget `json:"target_type" validate:"required"`
	TargetID   uuid.UUID      `json:"target_id" validate:"required"`
}
