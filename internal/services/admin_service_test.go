package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/iconnect/server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminStats(t *testing.T) {
	repo := newFakeRepo()
	as := NewAdminService(repo, repo)
	bs := NewBookingService(repo, repo, repo)

	customer := seedUser(t, repo, "ama", models.RoleUser)
	worker := seedUser(t, repo, "kofi", models.RoleWorker)
	service := seedService(t, repo, worker, "Pipe repair")

	_, err := bs.CreateBooking(context.Background(), customer.ID, service.ID, time.Now().Add(time.Hour), "addr")
	require.NoError(t, err)

	stats, err := as.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalBookings)
}

func TestAdminDeleteUser(t *testing.T) {
	repo := newFakeRepo()
	as := NewAdminService(repo, repo)

	user := seedUser(t, repo, "ama", models.RoleUser)

	err := as.DeleteUser(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	require.NoError(t, as.DeleteUser(context.Background(), user.ID))

	err = as.DeleteUser(context.Background(), user.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	users, err := as.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}
