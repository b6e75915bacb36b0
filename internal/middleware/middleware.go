package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/iconnect/server/internal/helpers"
	"github.com/iconnect/server/internal/models"
	"github.com/iconnect/server/internal/services"
)

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		clientIP := c.ClientIP()
		method := c.Request.Method
		statusCode := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		requestID, _ := c.Get("request_id")

		logger.Info("HTTP Request",
			"request_id", requestID,
			"method", method,
			"path", path,
			"status", statusCode,
			"latency", latency,
			"client_ip", clientIP,
		)
	}
}

// ErrorHandler logs errors attached to the context during request handling.
// The underlying cause stays in the logs; clients only ever see the generic
// message the handler already wrote.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			requestID, _ := c.Get("request_id")

			logger.Error("Request error",
				"request_id", requestID,
				"error", err.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)

			if !c.Writer.Written() {
				c.JSON(http.StatusInternalServerError, gin.H{
					"error":      "Internal server error",
					"request_id": requestID,
				})
			}
		}
	}
}

// AuthMiddleware verifies the bearer token, rejects revoked tokens and loads
// the caller's profile so downstream handlers see fresh role data.
func AuthMiddleware(jwtSecret []byte, tokenStore *helpers.TokenStore, userService *services.UserService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("not authorized, no token provided"))
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		claims, err := helpers.ValidateToken(jwtSecret, token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid or expired token"))
			c.Abort()
			return
		}

		if tokenStore.IsRevoked(c.Request.Context(), token) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("token revoked, please login again"))
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			logger.Error("Invalid user ID in token", "subject", claims.Subject, "error", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid token subject"))
			c.Abort()
			return
		}

		user, err := userService.GetProfile(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("user not found"))
			c.Abort()
			return
		}

		c.Set("user", &helpers.AuthClaims{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.Role,
			Name:   user.Name,
			Phone:  user.Phone,
		})
		c.Set("token", token)
		if claims.ExpiresAt != nil {
			c.Set("token_expires", claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// AdminOnly gates a route group to admin-role callers. Must run after
// AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("user")
		claims, ok := v.(*helpers.AuthClaims)
		if !exists || !ok || !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("not authorized as an admin"))
			c.Abort()
			return
		}
		c.Next()
	}
}
