package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/iconnect/server/internal/models"
	"github.com/iconnect/server/internal/services"
)

func CreateBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentUser(c)
		if !ok {
			return
		}

		var req struct {
			ServiceID     string    `json:"serviceId" binding:"required"`
			ScheduledDate time.Time `json:"scheduledDate" binding:"required"`
			Address       string    `json:"address" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		serviceID, err := uuid.Parse(req.ServiceID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid service ID format"))
			return
		}

		booking, err := bs.CreateBooking(c.Request.Context(), claims.UserID, serviceID, req.ScheduledDate, req.Address)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(booking, "Booking request sent successfully"))
	}
}

// MyBookings lists the caller's bookings as customer.
func MyBookings(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentUser(c)
		if !ok {
			return
		}

		bookings, err := bs.ListForCustomer(c.Request.Context(), claims.UserID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(bookings, ""))
	}
}

// WorkerBookings lists the bookings placed against the caller's services.
func WorkerBookings(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentUser(c)
		if !ok {
			return
		}

		bookings, err := bs.ListForProvider(c.Request.Context(), claims.UserID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(bookings, ""))
	}
}

func UpdateBookingStatus(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentUser(c)
		if !ok {
			return
		}

		bookingID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid booking ID format"))
			return
		}

		var req struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		booking, err := bs.UpdateStatus(c.Request.Context(), claims.UserID, bookingID, req.Status)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(booking, fmt.Sprintf("Booking updated to %s", booking.Status)))
	}
}
