package models

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ServiceCategories = []string{
	"Plumber",
	"Electrician",
	"Carpenter",
	"Tutor",
	"Cleaner",
	"Painter",
	"Other",
}

func ValidServiceCategory(category string) bool {
	for _, c := range ServiceCategories {
		if c == category {
			return true
		}
	}
	return false
}

type Service struct {
	ID          uuid.UUID `bson:"id" json:"id"`
	ProviderID  uuid.UUID `bson:"provider_id" json:"provider_id"`
	Title       string    `bson:"title" json:"title" validate:"required"`
	Category    string    `bson:"category" json:"category" validate:"required"`
	Description string    `bson:"description" json:"description" validate:"required"`
	Price       float64   `bson:"price" json:"price" validate:"required,gt=0"`
	Location    string    `bson:"location,omitempty" json:"location,omitempty"`
	Image       string    `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// ServiceSummary is the projection joined onto bookings and reviews.
type ServiceSummary struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Price    float64   `json:"price,omitempty"`
	Category string    `json:"category,omitempty"`
}

func (s *Service) Summary() *ServiceSummary {
	return &ServiceSummary{
		ID:       s.ID,
		Title:    s.Title,
		Price:    s.Price,
		Category: s.Category,
	}
}

// Sort options accepted by the catalog listing.
const (
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
)

// ServiceFilter is the typed filter specification for catalog queries.
// Each field is optional; the zero value matches everything.
type ServiceFilter struct {
	Category string
	Location string
	Search   string
	Sort     string
}

// Query translates the filter into its Mongo form. Substring matches are
// case-insensitive and quote the user input so it cannot act as a pattern.
func (f ServiceFilter) Query() bson.M {
	query := bson.M{}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.Location != "" {
		query["location"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Location), Options: "i"}
	}
	if f.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}
	return query
}

// SortSpec translates the sort option into its Mongo form.
// Unknown values fall back to newest-created-first.
func (f ServiceFilter) SortSpec() bson.D {
	switch f.Sort {
	case SortPriceLow:
		return bson.D{{Key: "price", Value: 1}}
	case SortPriceHigh:
		return bson.D{{Key: "price", Value: -1}}
	default:
		return bson.D{{Key: "created_at", Value: -1}}
	}
}
