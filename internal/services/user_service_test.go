package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/iconnect/server/internal/helpers"
	"github.com/iconnect/server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testSecret = []byte("test-secret")

func newUserService(repo *fakeRepo) *UserService {
	return NewUserService(repo, helpers.NewTokenStore(nil), testSecret, time.Hour)
}

func TestRegister(t *testing.T) {
	repo := newFakeRepo()
	us := newUserService(repo)

	user, err := us.Register(context.Background(), &models.User{
		Name:     "Ama Mensah",
		Email:    "Ama@Example.com",
		Phone:    "+233201234567",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "ama@example.com", user.Email, "email is normalized")
	assert.Equal(t, models.RoleUser, user.Role, "role defaults to user")
	assert.NotEqual(t, "secret1", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret1")))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeRepo()
	us := newUserService(repo)

	_, err := us.Register(context.Background(), &models.User{
		Name:     "Ama Mensah",
		Email:    "ama@example.com",
		Phone:    "+233201234567",
		Password: "secret1",
	})
	require.NoError(t, err)

	_, err = us.Register(context.Background(), &models.User{
		Name:     "Other Ama",
		Email:    "AMA@example.com",
		Phone:    "+233207654321",
		Password: "secret2",
	})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestRegisterValidation(t *testing.T) {
	repo := newFakeRepo()
	us := newUserService(repo)

	_, err := us.Register(context.Background(), &models.User{
		Name:     "Ama Mensah",
		Email:    "not-an-email",
		Phone:    "+233201234567",
		Password: "secret1",
	})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = us.Register(context.Background(), &models.User{
		Name:     "Ama Mensah",
		Email:    "ama@example.com",
		Phone:    "+233201234567",
		Password: "short",
	})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = us.Register(context.Background(), &models.User{
		Name:     "Ama Mensah",
		Email:    "ama2@example.com",
		Phone:    "+233201234567",
		Password: "secret1",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeRepo()
	us := newUserService(repo)

	registered, err := us.Register(context.Background(), &models.User{
		Name:     "Kofi Owusu",
		Email:    "kofi@example.com",
		Phone:    "+233201234567",
		Password: "secret1",
		Role:     models.RoleWorker,
	})
	require.NoError(t, err)

	token, user, err := us.Authenticate(context.Background(), "kofi@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	claims, err := helpers.ValidateToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID.String(), claims.Subject)
	assert.Equal(t, "kofi@example.com", claims.Email)
	assert.Equal(t, models.RoleWorker, claims.Role)
}

func TestAuthenticateBadCredentials(t *testing.T) {
	repo := newFakeRepo()
	us := newUserService(repo)

	_, err := us.Register(context.Background(), &models.User{
		Name:     "Kofi Owusu",
		Email:    "kofi@example.com",
		Phone:    "+233201234567",
		Password: "secret1",
	})
	require.NoError(t, err)

	_, _, err = us.Authenticate(context.Background(), "kofi@example.com", "wrong")
	assert.ErrorIs(t, err, models.ErrUnauthenticated)

	_, _, err = us.Authenticate(context.Background(), "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, models.ErrUnauthenticated)

	_, _, err = us.Authenticate(context.Background(), "not-an-email", "secret1")
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestUpdateProfile(t *testing.T) {
	repo := newFakeRepo()
	us := newUserService(repo)

	user, err := us.Register(context.Background(), &models.User{
		Name:     "Ama Mensah",
		Email:    "ama@example.com",
		Phone:    "+233201234567",
		Password: "secret1",
	})
	require.NoError(t, err)

	updated, err := us.UpdateProfile(context.Background(), user.ID, ProfileUpdate{Name: "Ama M.", Phone: "+233209999999"})
	require.NoError(t, err)
	assert.Equal(t, "Ama M.", updated.Name)
	assert.Equal(t, "+233209999999", updated.Phone)
	assert.Equal(t, "ama@example.com", updated.Email, "omitted fields stay unchanged")

	_, err = us.UpdateProfile(context.Background(), user.ID, ProfileUpdate{Password: "short"})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = us.UpdateProfile(context.Background(), uuid.New(), ProfileUpdate{Name: "ghost"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRevocationTTL(t *testing.T) {
	fallback := 24 * time.Hour

	assert.Equal(t, fallback, revocationTTL(time.Time{}, fallback), "no expiry claim revokes for the full TTL")

	remaining := revocationTTL(time.Now().Add(time.Hour), fallback)
	assert.Greater(t, remaining, 59*time.Minute)
	assert.LessOrEqual(t, remaining, time.Hour)

	assert.LessOrEqual(t, revocationTTL(time.Now().Add(-time.Minute), fallback), time.Duration(0), "expired tokens need no revocation entry")
}

func TestUpdateProfileEmailUniqueness(t *testing.T) {
	repo := newFakeRepo()
	us := newUserService(repo)

	first, err := us.Register(context.Background(), &models.User{
		Name:     "Ama Mensah",
		Email:    "ama@example.com",
		Phone:    "+233201234567",
		Password: "secret1",
	})
	require.NoError(t, err)
	_, err = us.Register(context.Background(), &models.User{
		Name:     "Kofi Owusu",
		Email:    "kofi@example.com",
		Phone:    "+233207654321",
		Password: "secret1",
	})
	require.NoError(t, err)

	_, err = us.UpdateProfile(context.Background(), first.ID, ProfileUpdate{Email: "kofi@example.com"})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	// Re-submitting your own email is not a conflict.
	updated, err := us.UpdateProfile(context.Background(), first.ID, ProfileUpdate{Email: "AMA@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "ama@example.com", updated.Email)
}
