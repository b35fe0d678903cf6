package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                      uuid.UUID  `json:"id" db:"id"`
	Email                   string     `json:"email" db:"email"`
	PasswordHash            string     `json:"-" db:"password_hash"`
	FullName                string     `json:"full_name" db:"full_name"`
	AvatarURL               *string    `json:"avatar_url,omitempty" db:"avatar_url"`
	Bio                     *string    `json:"bio,omitempty" db:"bio"`
	Specialization          *string    `json:"specialization,omitempty" db:"specialization"`
	Role                    string     `json:"role" db:"role"`
	ReferralCode            string     `json:"referral_code" db:"referral_code"`
	IsEmailVerified         bool       `json:"is_email_verified" db:"is_email_verified"`
	EmailVerificationToken  *string    `json:"-" db:"email_verification_token"`
	EmailVerificationSentAt *time.Time `json:"-" db:"email_verification_sent_at"`
	PasswordResetToken      *string    `json:"-" db:"password_reset_token"`
	PasswordResetExpiresAt  *time.Time `json:"-" db:"password_reset_expires_at"`
	BannedAt                *time.Time `json:"banned_at,omitempty" db:"banned_at"`
	CreatedAt               time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt               *time.Time `json:"-" db:"deleted_at"`
}

type CreateUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=2"`
	Role     string `json:"role" validate:"omitempty,oneof=client expert"`
}

type UpdateUserInput struct {
	FullName       *string  `json:"full_name,omitempty" validate:"omitempty,min=2"`
	Password       *string  `json:"password,omitempty" validate:"omitempty,min=8"`
	AvatarURL      **string `json:"avatar_url,omitempty"`
	Bio            **string `json:"bio,omitempty"`
	Specialization **string `json:"specialization,omitempty"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserRole string

const (
	RoleClient UserRole = "client"
	RoleExpert UserRole = "expert"
	RoleAdmin  UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleClient, RoleExpert, RoleAdmin:
		return true
	default:
		return false
	}
}

func (u *User) IsBanned() bool {
	return u.BannedAt != nil
}

// HasRole treats admin as a superset of expert, and any role as a client.
func (u *User) HasRole(requiredRole string) bool {
	switch requiredRole {
	case "admin":
		return u.Role == "admin"
	case "expert":
		return u.Role == "expert" || u.Role == "admin"
	case "client":
		return u.Role == "client" || u.Role == "expert" || u.Role == "admin"
	default:
		return false
	}
}

// ExpertFilter narrows the public expert directory listing.
type ExpertFilter struct {
	Search string `query:"search"`
}
