package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/iconnect/server/internal/models"
	"github.com/iconnect/server/internal/services"
)

func ListUsers(as *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := as.ListUsers(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(users, ""))
	}
}

func DeleteUser(as *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid user ID format"))
			return
		}

		if err := as.DeleteUser(c.Request.Context(), userID); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "User removed"))
	}
}

func DashboardStats(as *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := as.Stats(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(stats, ""))
	}
}
