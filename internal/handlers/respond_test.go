package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/iconnect/server/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("bad field: %w", models.ErrInvalidInput), http.StatusBadRequest},
		{fmt.Errorf("who are you: %w", models.ErrUnauthenticated), http.StatusUnauthorized},
		{fmt.Errorf("not yours: %w", models.ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("gone: %w", models.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("hashing broke: %w", models.ErrInternal), http.StatusInternalServerError},
		{errors.New("unclassified"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, statusFromError(tc.err), tc.err.Error())
	}
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(c, fmt.Errorf("mongo blew up at 10.0.0.3: %w", models.ErrInternal))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "10.0.0.3")
	assert.NotEmpty(t, c.Errors, "the cause is attached for the error middleware to log")
}

func TestRespondErrorSurfacesClientErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(c, fmt.Errorf("address is required: %w", models.ErrInvalidInput))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "address is required")
}
