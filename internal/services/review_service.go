package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iconnect/server/internal/models"
)

type ReviewService struct {
	reviewRepo  models.ReviewRepo
	userRepo    models.UserRepo
	serviceRepo models.ServiceRepo
}

func NewReviewService(reviewRepo models.ReviewRepo, userRepo models.UserRepo, serviceRepo models.ServiceRepo) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
		serviceRepo: serviceRepo,
	}
}

func (rs *ReviewService) CreateReview(ctx context.Context, customerID, providerID, serviceID uuid.UUID, rating int, comment string) (*models.Review, error) {
	now := time.Now()
	review := &models.Review{
		ID:         uuid.New(),
		CustomerID: customerID,
		ProviderID: providerID,
		ServiceID:  serviceID,
		Rating:     rating,
		Comment:    comment,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	review.Sanitize()
	if err := review.ValidateReview(); err != nil {
		return nil, err
	}

	return rs.reviewRepo.CreateReview(ctx, review)
}

// ListByProvider returns a provider's reviews joined with the reviewer's
// name and the reviewed service's title.
func (rs *ReviewService) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*models.ReviewView, error) {
	if providerID == uuid.Nil {
		return nil, fmt.Errorf("invalid provider ID: %w", models.ErrInvalidInput)
	}

	reviews, err := rs.reviewRepo.ListReviewsByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uuid.UUID, 0, len(reviews))
	serviceIDs := make([]uuid.UUID, 0, len(reviews))
	seenUsers := make(map[uuid.UUID]bool)
	seenServices := make(map[uuid.UUID]bool)
	for _, r := range reviews {
		if !seenUsers[r.CustomerID] {
			seenUsers[r.CustomerID] = true
			userIDs = append(userIDs, r.CustomerID)
		}
		if !seenServices[r.ServiceID] {
			seenServices[r.ServiceID] = true
			serviceIDs = append(serviceIDs, r.ServiceID)
		}
	}

	users, err := rs.userRepo.GetUsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	services, err := rs.serviceRepo.GetServicesByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}

	views := make([]*models.ReviewView, 0, len(reviews))
	for _, r := range reviews {
		view := &models.ReviewView{Review: *r}
		if customer := users[r.CustomerID]; customer != nil {
			view.Customer = &models.UserSummary{ID: customer.ID, Name: customer.Name}
		}
		if service := services[r.ServiceID]; service != nil {
			view.Service = &models.ServiceSummary{ID: service.ID, Title: service.Title}
		}
		views = append(views, view)
	}

	return views, nil
}
