package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iconnect/server/internal/helpers"
	"github.com/iconnect/server/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo   models.UserRepo
	tokenStore *helpers.TokenStore
	jwtSecret  []byte
	tokenTTL   time.Duration
}

func NewUserService(userRepo models.UserRepo, tokenStore *helpers.TokenStore, jwtSecret []byte, tokenTTL time.Duration) *UserService {
	return &UserService{
		userRepo:   userRepo,
		tokenStore: tokenStore,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
	}
}

func (us *UserService) Register(ctx context.Context, user *models.User) (*models.User, error) {
	user.Email = models.NormalizeEmail(user.Email)
	if err := models.Validate.Struct(user); err != nil {
		return nil, fmt.Errorf("%v: %w", err, models.ErrInvalidInput)
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if !models.ValidRole(user.Role) {
		return nil, fmt.Errorf("unknown role %q: %w", user.Role, models.ErrInvalidInput)
	}

	existing, err := us.userRepo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("user already exists: %w", models.ErrInvalidInput)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v: %w", err, models.ErrInternal)
	}
	user.Password = string(hashed)

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	return us.userRepo.CreateUser(ctx, user)
}

// Authenticate verifies the credentials and issues an access token. The
// same message covers unknown email and wrong password.
func (us *UserService) Authenticate(ctx context.Context, email, password string) (string, *models.User, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return "", nil, fmt.Errorf("invalid email format: %w", models.ErrInvalidInput)
	}
	if err := models.Validate.Var(password, "required"); err != nil {
		return "", nil, fmt.Errorf("password is required: %w", models.ErrInvalidInput)
	}

	user, err := us.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, fmt.Errorf("invalid email or password: %w", models.ErrUnauthenticated)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid email or password: %w", models.ErrUnauthenticated)
	}

	token, err := helpers.GenerateToken(us.jwtSecret, user.ID, user.Email, user.Role, us.tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %v: %w", err, models.ErrInternal)
	}

	return token, user, nil
}

func (us *UserService) GetProfile(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid user ID: %w", models.ErrInvalidInput)
	}

	user, err := us.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found: %w", models.ErrNotFound)
	}

	return user, nil
}

// ProfileUpdate carries the optional profile fields; empty strings leave the
// stored value unchanged.
type ProfileUpdate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (us *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) (*models.User, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid user ID: %w", models.ErrInvalidInput)
	}

	fields := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if update.Name != "" {
		fields["name"] = update.Name
	}
	if update.Email != "" {
		email := models.NormalizeEmail(update.Email)
		if err := models.Validate.Var(email, "email"); err != nil {
			return nil, fmt.Errorf("invalid email format: %w", models.ErrInvalidInput)
		}
		existing, err := us.userRepo.GetUserByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("email already in use: %w", models.ErrInvalidInput)
		}
		fields["email"] = email
	}
	if update.Phone != "" {
		fields["phone"] = update.Phone
	}
	if update.Password != "" {
		if len(update.Password) < 6 {
			return nil, fmt.Errorf("password must be at least 6 characters: %w", models.ErrInvalidInput)
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %v: %w", err, models.ErrInternal)
		}
		fields["password"] = string(hashed)
	}

	updated, err := us.userRepo.UpdateUser(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("user not found: %w", models.ErrNotFound)
	}

	return updated, nil
}

// Logout marks the presented token revoked until its natural expiry. A token
// without an expiry claim is revoked for the full configured TTL so logout
// never silently leaves it usable.
func (us *UserService) Logout(ctx context.Context, token string, expiresAt time.Time) error {
	return us.tokenStore.Revoke(ctx, token, revocationTTL(expiresAt, us.tokenTTL))
}

func revocationTTL(expiresAt time.Time, fallback time.Duration) time.Duration {
	if expiresAt.IsZero() {
		return fallback
	}
	return time.Until(expiresAt)
}
