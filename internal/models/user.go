package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser   = "user"
	RoleWorker = "worker"
	RoleAdmin  = "admin"
)

type User struct {
	ID    uuid.UUID `bson:"id" json:"id"`
	Name  string    `bson:"name" json:"name" validate:"required"`
	Email string    `bson:"email" json:"email" validate:"required,email"`
	Phone string    `bson:"phone,omitempty" json:"phone,omitempty"`
	// Password holds the bcrypt hash once persisted; it never leaves the API.
	Password string `bson:"password" json:"-" validate:"required,min=6"`
	Role     string `bson:"role" json:"role"`

	// One-time-password fields for the verification flow; no endpoints yet.
	OTP       string     `bson:"otp,omitempty" json:"-"`
	OTPExpiry *time.Time `bson:"otp_expiry,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// UserSummary is the slim projection joined onto bookings and reviews.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email,omitempty"`
	Phone string    `json:"phone,omitempty"`
}

// Summary projects the user for embedding in another resource's response.
// Phone is only exposed where the counterparty needs to reach the user.
func (u *User) Summary(includePhone bool) *UserSummary {
	s := &UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
	if includePhone {
		s.Phone = u.Phone
	}
	return s
}

// NormalizeEmail folds the email the same way on write and lookup so the
// unique-email rule holds regardless of caller casing.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleWorker, RoleAdmin:
		return true
	}
	return false
}
