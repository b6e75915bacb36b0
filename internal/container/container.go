package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/iconnect/server/internal/config"
	"github.com/iconnect/server/internal/helpers"
	"github.com/iconnect/server/internal/models"
	"github.com/iconnect/server/internal/services"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	MongoDBClient *mongo.Client
	RedisClient   *redis.Client

	TokenStore     *helpers.TokenStore
	UserService    *services.UserService
	CatalogService *services.CatalogService
	BookingService *services.BookingService
	ReviewService  *services.ReviewService
	AdminService   *services.AdminService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	cfg *config.Config,
	logger *slog.Logger,
	mongoDBClient *mongo.Client,
	redisClient *redis.Client,
	cld *cloudinary.Cloudinary,
) *Container {
	repo := models.MongodbNewRepo(mongoDBClient)
	tokenStore := helpers.NewTokenStore(redisClient)

	userService := services.NewUserService(repo, tokenStore, []byte(cfg.JWTSecret), cfg.TokenTTL)
	catalogService := services.NewCatalogService(repo, cld)
	bookingService := services.NewBookingService(repo, repo, repo)
	reviewService := services.NewReviewService(repo, repo, repo)
	adminService := services.NewAdminService(repo, repo)

	return &Container{
		Config:         cfg,
		Logger:         logger,
		MongoDBClient:  mongoDBClient,
		RedisClient:    redisClient,
		TokenStore:     tokenStore,
		UserService:    userService,
		CatalogService: catalogService,
		BookingService: bookingService,
		ReviewService:  reviewService,
		AdminService:   adminService,
	}
}
