package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking lifecycle states. A booking starts as pending; every state may
// move to every other state, gated only by the caller being a participant.
const (
	BookingPending   = "pending"
	BookingAccepted  = "accepted"
	BookingRejected  = "rejected"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

func ValidBookingStatus(status string) bool {
	switch status {
	case BookingPending, BookingAccepted, BookingRejected, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID uuid.UUID `bson:"id" json:"id"`
	// CustomerID is the caller who placed the booking; ProviderID is derived
	// from the booked service's owner at creation time and never changes,
	// even if the service later changes hands.
	CustomerID    uuid.UUID `bson:"customer_id" json:"customer_id"`
	ProviderID    uuid.UUID `bson:"provider_id" json:"provider_id"`
	ServiceID     uuid.UUID `bson:"service_id" json:"service_id"`
	Status        string    `bson:"status" json:"status"`
	ScheduledDate time.Time `bson:"scheduled_date" json:"scheduled_date"`
	Address       string    `bson:"address" json:"address"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// IsParticipant reports whether userID is the booking's customer or
// provider. Nobody else may read or mutate the booking.
func (b *Booking) IsParticipant(userID uuid.UUID) bool {
	return b.CustomerID == userID || b.ProviderID == userID
}

// BookingView is a booking joined with the summaries the listing endpoints
// return. Which summaries are present depends on which side is asking.
type BookingView struct {
	Booking
	Service  *ServiceSummary `json:"service,omitempty"`
	Customer *UserSummary    `json:"customer,omitempty"`
	Provider *UserSummary    `json:"provider,omitempty"`
}
