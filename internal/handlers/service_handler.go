package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/iconnect/server/internal/models"
	"github.com/iconnect/server/internal/services"
)

func CreateService(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentUser(c)
		if !ok {
			return
		}

		var service models.Service
		if err := c.ShouldBindJSON(&service); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := cs.CreateService(c.Request.Context(), claims.UserID, &service)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Service created successfully"))
	}
}

func ListServices(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.ServiceFilter{
			Category: c.Query("category"),
			Location: c.Query("location"),
			Search:   c.Query("search"),
			Sort:     c.Query("sort"),
		}

		listings, err := cs.ListServices(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(listings, ""))
	}
}

func GetService(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		serviceID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid service ID format"))
			return
		}

		service, err := cs.GetService(c.Request.Context(), serviceID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(service, ""))
	}
}

func UpdateService(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentUser(c)
		if !ok {
			return
		}

		serviceID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid service ID format"))
			return
		}

		var update services.ServiceUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		updated, err := cs.UpdateService(c.Request.Context(), claims.UserID, serviceID, update)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Service updated successfully"))
	}
}

func DeleteService(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentUser(c)
		if !ok {
			return
		}

		serviceID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid service ID format"))
			return
		}

		if err := cs.DeleteService(c.Request.Context(), claims.UserID, serviceID); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Service deleted successfully"))
	}
}

// MyServices lists the caller's own listings.
func MyServices(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentUser(c)
		if !ok {
			return
		}

		listings, err := cs.ListMine(c.Request.Context(), claims.UserID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(listings, ""))
	}
}
