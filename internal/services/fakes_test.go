package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/iconnect/server/internal/models"
)

// fakeRepo is an in-memory substitute for the Mongo repositories so the
// services can be exercised without a database.
type fakeRepo struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*models.User
	services map[uuid.UUID]*models.Service
	bookings []*models.Booking
	reviews  []*models.Review
	seq      int
	order    map[uuid.UUID]int

	failNext error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:    make(map[uuid.UUID]*models.User),
		services: make(map[uuid.UUID]*models.Service),
		order:    make(map[uuid.UUID]int),
	}
}

func (f *fakeRepo) takeErr() error {
	err := f.failNext
	f.failNext = nil
	return err
}

func (f *fakeRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return nil, err
	}
	copied := *user
	f.users[user.ID] = &copied
	return user, nil
}

func (f *fakeRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return nil, err
	}
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return nil, err
	}
	for _, user := range f.users {
		if user.Email == models.NormalizeEmail(email) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) GetUsersByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[uuid.UUID]*models.User, len(ids))
	for _, id := range ids {
		if user, ok := f.users[id]; ok {
			copied := *user
			out[id] = &copied
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateUser(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	for key, value := range fields {
		switch key {
		case "name":
			user.Name = value.(string)
		case "email":
			user.Email = value.(string)
		case "phone":
			user.Phone = value.(string)
		case "password":
			user.Password = value.(string)
		}
	}
	copied := *user
	return &copied, nil
}

func (f *fakeRepo) DeleteUser(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return fmt.Errorf("user not found: %w", models.ErrNotFound)
	}
	delete(f.users, id)
	return nil
}

func (f *fakeRepo) ListUsers(ctx context.Context) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.User, 0, len(f.users))
	for _, user := range f.users {
		copied := *user
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeRepo) CountUsers(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

func (f *fakeRepo) CreateService(ctx context.Context, service *models.Service) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return nil, err
	}
	copied := *service
	f.services[service.ID] = &copied
	return service, nil
}

func (f *fakeRepo) GetServiceByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return nil, err
	}
	service, ok := f.services[id]
	if !ok {
		return nil, nil
	}
	copied := *service
	return &copied, nil
}

func (f *fakeRepo) GetServicesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[uuid.UUID]*models.Service, len(ids))
	for _, id := range ids {
		if service, ok := f.services[id]; ok {
			copied := *service
			out[id] = &copied
		}
	}
	return out, nil
}

func (f *fakeRepo) QueryServices(ctx context.Context, filter models.ServiceFilter) ([]*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Service
	for _, service := range f.services {
		if filter.Category != "" && service.Category != filter.Category {
			continue
		}
		copied := *service
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeRepo) ListServicesByProvider(ctx context.Context, providerID uuid.UUID) ([]*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Service
	for _, service := range f.services {
		if service.ProviderID == providerID {
			copied := *service
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateService(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	service, ok := f.services[id]
	if !ok {
		return nil, nil
	}
	for key, value := range fields {
		switch key {
		case "title":
			service.Title = value.(string)
		case "category":
			service.Category = value.(string)
		case "description":
			service.Description = value.(string)
		case "price":
			service.Price = value.(float64)
		case "location":
			service.Location = value.(string)
		}
	}
	copied := *service
	return &copied, nil
}

func (f *fakeRepo) DeleteService(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.services[id]; !ok {
		return fmt.Errorf("service not found: %w", models.ErrNotFound)
	}
	delete(f.services, id)
	return nil
}

func (f *fakeRepo) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return nil, err
	}
	copied := *booking
	f.bookings = append(f.bookings, &copied)
	f.seq++
	f.order[booking.ID] = f.seq
	return booking, nil
}

func (f *fakeRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return nil, err
	}
	for _, booking := range f.bookings {
		if booking.ID == id {
			copied := *booking
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) ListBookingsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*models.Booking, error) {
	return f.listBookings(func(b *models.Booking) bool { return b.CustomerID == customerID })
}

func (f *fakeRepo) ListBookingsByProvider(ctx context.Context, providerID uuid.UUID) ([]*models.Booking, error) {
	return f.listBookings(func(b *models.Booking) bool { return b.ProviderID == providerID })
}

func (f *fakeRepo) listBookings(match func(*models.Booking) bool) ([]*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Booking
	for _, booking := range f.bookings {
		if match(booking) {
			copied := *booking
			out = append(out, &copied)
		}
	}
	// Newest created first, matching the Mongo sort.
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return f.order[out[i].ID] > f.order[out[j].ID]
	})
	return out, nil
}

func (f *fakeRepo) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return nil, err
	}
	for _, booking := range f.bookings {
		if booking.ID == id {
			booking.Status = status
			copied := *booking
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) CountBookings(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.bookings)), nil
}

func (f *fakeRepo) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return nil, err
	}
	copied := *review
	f.reviews = append(f.reviews, &copied)
	return review, nil
}

func (f *fakeRepo) ListReviewsByProvider(ctx context.Context, providerID uuid.UUID) ([]*models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Review
	for _, review := range f.reviews {
		if review.ProviderID == providerID {
			copied := *review
			out = append(out, &copied)
		}
	}
	return out, nil
}
