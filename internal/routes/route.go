package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/iconnect/server/internal/container"
	"github.com/iconnect/server/internal/handlers"
	"github.com/iconnect/server/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.ErrorHandler(c.Logger))
	r.Use(gin.Recovery())

	auth := middleware.AuthMiddleware([]byte(c.Config.JWTSecret), c.TokenStore, c.UserService, c.Logger)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(200, gin.H{
				"status":  "OK",
				"service": "iconnect-api",
			})
		})

		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", handlers.Register(c.UserService))
			authRoutes.POST("/login", handlers.Login(c.UserService))
			authRoutes.GET("/me", auth, handlers.Me(c.UserService))
			authRoutes.PUT("/profile", auth, handlers.UpdateProfile(c.UserService))
			authRoutes.POST("/logout", auth, handlers.Logout(c.UserService))
		}

		serviceRoutes := v1.Group("/services")
		{
			serviceRoutes.GET("", handlers.ListServices(c.CatalogService))
			serviceRoutes.GET("/mine", auth, handlers.MyServices(c.CatalogService))
			serviceRoutes.GET("/:id", handlers.GetService(c.CatalogService))
			serviceRoutes.POST("", auth, handlers.CreateService(c.CatalogService))
			serviceRoutes.PUT("/:id", auth, handlers.UpdateService(c.CatalogService))
			serviceRoutes.DELETE("/:id", auth, handlers.DeleteService(c.CatalogService))
		}

		bookingRoutes := v1.Group("/bookings")
		bookingRoutes.Use(auth)
		{
			bookingRoutes.POST("", handlers.CreateBooking(c.BookingService))
			bookingRoutes.GET("/my-bookings", handlers.MyBookings(c.BookingService))
			bookingRoutes.GET("/worker-bookings", handlers.WorkerBookings(c.BookingService))
			bookingRoutes.PUT("/:id", handlers.UpdateBookingStatus(c.BookingService))
		}

		reviewRoutes := v1.Group("/reviews")
		{
			reviewRoutes.POST("", auth, handlers.CreateReview(c.ReviewService))
			reviewRoutes.GET("/provider/:providerId", handlers.ReviewsByProvider(c.ReviewService))
		}

		adminRoutes := v1.Group("/admin")
		adminRoutes.Use(auth, middleware.AdminOnly())
		{
			adminRoutes.GET("/users", handlers.ListUsers(c.AdminService))
			adminRoutes.DELETE("/users/:id", handlers.DeleteUser(c.AdminService))
			adminRoutes.GET("/stats", handlers.DashboardStats(c.AdminService))
		}
	}

	return r
}
