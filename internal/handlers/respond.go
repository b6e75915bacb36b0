package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iconnect/server/internal/helpers"
	"github.com/iconnect/server/internal/models"
)

// statusFromError maps the service failure taxonomy onto transport codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	default:
		// ErrInternal and anything unclassified.
		return http.StatusInternalServerError
	}
}

// respondError writes the error response. Internal failures are attached to
// the gin context for the error middleware to log; the client only sees a
// generic message.
func respondError(c *gin.Context, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.JSON(status, models.ErrorResponse("internal server error"))
		return
	}
	c.JSON(status, models.ErrorResponse(err.Error()))
}

// currentUser pulls the authenticated caller set by the auth middleware.
// It writes the failure response itself when the claims are missing.
func currentUser(c *gin.Context) (*helpers.AuthClaims, bool) {
	v, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
		return nil, false
	}
	claims, ok := v.(*helpers.AuthClaims)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("invalid user claims"))
		return nil, false
	}
	return claims, true
}
