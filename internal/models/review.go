package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID         uuid.UUID `bson:"id" json:"id"`
	CustomerID uuid.UUID `bson:"customer_id" json:"customer_id"`
	ProviderID uuid.UUID `bson:"provider_id" json:"provider_id"`
	ServiceID  uuid.UUID `bson:"service_id" json:"service_id"`
	Rating     int       `bson:"rating" json:"rating" validate:"required,min=1,max=5"`
	Comment    string    `bson:"comment" json:"comment" validate:"required"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

func (r *Review) ValidateReview() error {
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(r.Comment) == "" {
		return fmt.Errorf("comment is required: %w", ErrInvalidInput)
	}
	if r.CustomerID == uuid.Nil || r.ProviderID == uuid.Nil || r.ServiceID == uuid.Nil {
		return fmt.Errorf("customer, provider and service are required: %w", ErrInvalidInput)
	}
	if r.CustomerID == r.ProviderID {
		return fmt.Errorf("you cannot review yourself: %w", ErrInvalidInput)
	}
	return nil
}

func (r *Review) Sanitize() {
	r.Comment = strings.TrimSpace(r.Comment)
}

// ReviewView is a review joined with the reviewer's name and the service title.
type ReviewView struct {
	Review
	Customer *UserSummary    `json:"customer,omitempty"`
	Service  *ServiceSummary `json:"service,omitempty"`
}
