package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/iconnect/server/internal/models"
)

type AdminService struct {
	userRepo    models.UserRepo
	bookingRepo models.BookingRepo
}

func NewAdminService(userRepo models.UserRepo, bookingRepo models.BookingRepo) *AdminService {
	return &AdminService{
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
	}
}

func (as *AdminService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return as.userRepo.ListUsers(ctx)
}

func (as *AdminService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("invalid user ID: %w", models.ErrInvalidInput)
	}

	return as.userRepo.DeleteUser(ctx, id)
}

type DashboardStats struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalBookings int64 `json:"totalBookings"`
}

func (as *AdminService) Stats(ctx context.Context) (*DashboardStats, error) {
	userCount, err := as.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	bookingCount, err := as.bookingRepo.CountBookings(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalUsers:    userCount,
		TotalBookings: bookingCount,
	}, nil
}
