package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/google/uuid"
	"github.com/iconnect/server/internal/helpers"
	"github.com/iconnect/server/internal/models"
)

// CatalogService manages the service listings workers offer. The catalog is
// publicly readable; only the owning provider may mutate a listing.
type CatalogService struct {
	serviceRepo models.ServiceRepo
	cld         *cloudinary.Cloudinary
}

func NewCatalogService(serviceRepo models.ServiceRepo, cld *cloudinary.Cloudinary) *CatalogService {
	return &CatalogService{
		serviceRepo: serviceRepo,
		cld:         cld,
	}
}

func (cs *CatalogService) CreateService(ctx context.Context, providerID uuid.UUID, service *models.Service) (*models.Service, error) {
	if providerID == uuid.Nil {
		return nil, fmt.Errorf("invalid provider ID: %w", models.ErrInvalidInput)
	}

	service.Title = strings.TrimSpace(service.Title)
	service.Description = strings.TrimSpace(service.Description)
	if err := models.Validate.Struct(service); err != nil {
		return nil, fmt.Errorf("%v: %w", err, models.ErrInvalidInput)
	}
	if !models.ValidServiceCategory(service.Category) {
		return nil, fmt.Errorf("unknown category %q: %w", service.Category, models.ErrInvalidInput)
	}

	if service.Image != "" {
		url, err := helpers.UploadImage(ctx, cs.cld, service.Image, helpers.ServiceFolder)
		if err != nil {
			return nil, err
		}
		service.Image = url
	}

	service.ID = uuid.New()
	service.ProviderID = providerID
	now := time.Now()
	service.CreatedAt = now
	service.UpdatedAt = now

	return cs.serviceRepo.CreateService(ctx, service)
}

func (cs *CatalogService) GetService(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid service ID: %w", models.ErrInvalidInput)
	}

	service, err := cs.serviceRepo.GetServiceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, fmt.Errorf("service not found: %w", models.ErrNotFound)
	}

	return service, nil
}

func (cs *CatalogService) ListServices(ctx context.Context, filter models.ServiceFilter) ([]*models.Service, error) {
	if filter.Category != "" && !models.ValidServiceCategory(filter.Category) {
		return nil, fmt.Errorf("unknown category %q: %w", filter.Category, models.ErrInvalidInput)
	}

	return cs.serviceRepo.QueryServices(ctx, filter)
}

func (cs *CatalogService) ListMine(ctx context.Context, providerID uuid.UUID) ([]*models.Service, error) {
	if providerID == uuid.Nil {
		return nil, fmt.Errorf("invalid provider ID: %w", models.ErrInvalidInput)
	}

	return cs.serviceRepo.ListServicesByProvider(ctx, providerID)
}

// ServiceUpdate carries the optional listing fields for a partial update.
type ServiceUpdate struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Location    *string  `json:"location"`
}

func (cs *CatalogService) UpdateService(ctx context.Context, callerID, serviceID uuid.UUID, update ServiceUpdate) (*models.Service, error) {
	service, err := cs.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service.ProviderID != callerID {
		return nil, fmt.Errorf("you are not authorized to update this service: %w", models.ErrForbidden)
	}

	fields := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if update.Title != "" {
		fields["title"] = strings.TrimSpace(update.Title)
	}
	if update.Category != "" {
		if !models.ValidServiceCategory(update.Category) {
			return nil, fmt.Errorf("unknown category %q: %w", update.Category, models.ErrInvalidInput)
		}
		fields["category"] = update.Category
	}
	if update.Description != "" {
		fields["description"] = strings.TrimSpace(update.Description)
	}
	if update.Price != nil {
		if *update.Price <= 0 {
			return nil, fmt.Errorf("price must be a positive number: %w", models.ErrInvalidInput)
		}
		fields["price"] = *update.Price
	}
	if update.Location != nil {
		fields["location"] = *update.Location
	}

	updated, err := cs.serviceRepo.UpdateService(ctx, serviceID, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("service not found: %w", models.ErrNotFound)
	}

	return updated, nil
}

func (cs *CatalogService) DeleteService(ctx context.Context, callerID, serviceID uuid.UUID) error {
	service, err := cs.GetService(ctx, serviceID)
	if err != nil {
		return err
	}
	if service.ProviderID != callerID {
		return fmt.Errorf("you are not authorized to delete this service: %w", models.ErrForbidden)
	}

	return cs.serviceRepo.DeleteService(ctx, serviceID)
}
