package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iconnect/server/internal/models"
)

// BookingService owns the booking lifecycle: creation with provider
// derivation, the two listing views, and participant-gated status updates.
type BookingService struct {
	bookingRepo models.BookingRepo
	serviceRepo models.ServiceRepo
	userRepo    models.UserRepo
}

func NewBookingService(bookingRepo models.BookingRepo, serviceRepo models.ServiceRepo, userRepo models.UserRepo) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		userRepo:    userRepo,
	}
}

// CreateBooking books a service for the caller. The provider is always
// derived from the service's owner, never supplied by the caller, so a
// customer cannot attribute a booking to an arbitrary provider.
func (bs *BookingService) CreateBooking(ctx context.Context, customerID, serviceID uuid.UUID, scheduledDate time.Time, address string) (*models.Booking, error) {
	if customerID == uuid.Nil {
		return nil, fmt.Errorf("invalid customer ID: %w", models.ErrInvalidInput)
	}
	if serviceID == uuid.Nil {
		return nil, fmt.Errorf("invalid service ID: %w", models.ErrInvalidInput)
	}
	if scheduledDate.IsZero() {
		return nil, fmt.Errorf("scheduled date is required: %w", models.ErrInvalidInput)
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, fmt.Errorf("address is required: %w", models.ErrInvalidInput)
	}

	service, err := bs.serviceRepo.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, fmt.Errorf("service not found: %w", models.ErrNotFound)
	}
	if service.ProviderID == customerID {
		return nil, fmt.Errorf("you cannot book your own service: %w", models.ErrInvalidInput)
	}

	now := time.Now()
	booking := &models.Booking{
		ID:            uuid.New(),
		CustomerID:    customerID,
		ProviderID:    service.ProviderID,
		ServiceID:     serviceID,
		Status:        models.BookingPending,
		ScheduledDate: scheduledDate,
		Address:       address,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return bs.bookingRepo.CreateBooking(ctx, booking)
}

// ListForCustomer returns the caller's bookings as customer, newest first,
// joined with the service summary and both party summaries. The provider's
// phone is included so the customer can reach the worker.
func (bs *BookingService) ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]*models.BookingView, error) {
	if customerID == uuid.Nil {
		return nil, fmt.Errorf("invalid customer ID: %w", models.ErrInvalidInput)
	}

	bookings, err := bs.bookingRepo.ListBookingsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return bs.joinBookings(ctx, bookings, true, false)
}

// ListForProvider returns the bookings placed against the caller's services,
// newest first, joined with the service summary and the customer summary
// including the customer's phone.
func (bs *BookingService) ListForProvider(ctx context.Context, providerID uuid.UUID) ([]*models.BookingView, error) {
	if providerID == uuid.Nil {
		return nil, fmt.Errorf("invalid provider ID: %w", models.ErrInvalidInput)
	}

	bookings, err := bs.bookingRepo.ListBookingsByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	return bs.joinBookings(ctx, bookings, false, true)
}

// UpdateStatus sets a booking's status. Only the booking's customer or
// provider may do so; any enum value is accepted from any current state.
func (bs *BookingService) UpdateStatus(ctx context.Context, callerID, bookingID uuid.UUID, status string) (*models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return nil, fmt.Errorf("unknown booking status %q: %w", status, models.ErrInvalidInput)
	}

	booking, err := bs.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found: %w", models.ErrNotFound)
	}
	if !booking.IsParticipant(callerID) {
		return nil, fmt.Errorf("only the booking's customer or provider can update it: %w", models.ErrForbidden)
	}

	updated, err := bs.bookingRepo.UpdateBookingStatus(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("booking not found: %w", models.ErrNotFound)
	}

	return updated, nil
}

// joinBookings resolves the referenced users and services in one batch per
// collection and assembles the listing views.
func (bs *BookingService) joinBookings(ctx context.Context, bookings []*models.Booking, withProvider, customerPhone bool) ([]*models.BookingView, error) {
	userIDs := make([]uuid.UUID, 0, len(bookings)*2)
	serviceIDs := make([]uuid.UUID, 0, len(bookings))
	seenUsers := make(map[uuid.UUID]bool)
	seenServices := make(map[uuid.UUID]bool)

	for _, b := range bookings {
		if !seenUsers[b.CustomerID] {
			seenUsers[b.CustomerID] = true
			userIDs = append(userIDs, b.CustomerID)
		}
		if withProvider && !seenUsers[b.ProviderID] {
			seenUsers[b.ProviderID] = true
			userIDs = append(userIDs, b.ProviderID)
		}
		if !seenServices[b.ServiceID] {
			seenServices[b.ServiceID] = true
			serviceIDs = append(serviceIDs, b.ServiceID)
		}
	}

	users, err := bs.userRepo.GetUsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	services, err := bs.serviceRepo.GetServicesByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}

	views := make([]*models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := &models.BookingView{Booking: *b}
		if service := services[b.ServiceID]; service != nil {
			view.Service = service.Summary()
		}
		if customer := users[b.CustomerID]; customer != nil {
			view.Customer = customer.Summary(customerPhone)
		}
		if withProvider {
			if provider := users[b.ProviderID]; provider != nil {
				view.Provider = provider.Summary(true)
			}
		}
		views = append(views, view)
	}

	return views, nil
}
