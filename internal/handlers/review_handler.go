package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/iconnect/server/internal/models"
	"github.com/iconnect/server/internal/services"
)

func CreateReview(rs *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentUser(c)
		if !ok {
			return
		}

		var req struct {
			ProviderID string `json:"providerId" binding:"required"`
			ServiceID  string `json:"serviceId" binding:"required"`
			Rating     int    `json:"rating" binding:"required"`
			Comment    string `json:"comment" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		providerID, err := uuid.Parse(req.ProviderID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid provider ID format"))
			return
		}
		serviceID, err := uuid.Parse(req.ServiceID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid service ID format"))
			return
		}

		review, err := rs.CreateReview(c.Request.Context(), claims.UserID, providerID, serviceID, req.Rating, req.Comment)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(review, "Review added successfully"))
	}
}

// ReviewsByProvider is public; anyone can read a provider's reviews.
func ReviewsByProvider(rs *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID, err := uuid.Parse(c.Param("providerId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid provider ID format"))
			return
		}

		reviews, err := rs.ListByProvider(c.Request.Context(), providerID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(reviews, ""))
	}
}
