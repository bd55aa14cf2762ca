package handlers

import (
	"net/http"

	"meydancha/middleware"
	"meydancha/models"
	bookingSvc "meydancha/services/booking"
	"meydancha/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetDayScheduleHandler returns the slot grid for one field and date.
func GetDayScheduleHandler(svc bookingSvc.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fieldID := c.Param("id")
		date := c.Query("date")
		if date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
			return
		}

		schedule, err := svc.GetDaySchedule(c.Request.Context(), fieldID, date)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, schedule)
	}
}

// QuoteHandler prices a candidate range without reserving it.
func QuoteHandler(svc bookingSvc.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.QuoteRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		quote, err := svc.Quote(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, quote)
	}
}

// CreateBookingHandler reserves a range for the authenticated player.
func CreateBookingHandler(svc bookingSvc.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.BookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		userID := c.GetString(middleware.ContextUserID)
		b, err := svc.CreateBooking(c.Request.Context(), userID, req)
		if err != nil {
			utils.GetLogger().Warn("booking rejected",
				zap.String("userID", userID),
				zap.String("fieldID", req.FieldID),
				zap.Error(err))
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, b)
	}
}

// CancelBookingHandler cancels a confirmed booking.
func CancelBookingHandler(svc bookingSvc.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		b, err := svc.CancelBooking(c.Request.Context(), c.Param("id"),
			c.GetString(middleware.ContextUserID), c.GetString(middleware.ContextRole))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

// ListOwnBookingsHandler returns the caller's booking history.
func ListOwnBookingsHandler(svc bookingSvc.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := svc.ListUserBookings(c.Request.Context(), c.GetString(middleware.ContextUserID))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

// ListFieldBookingsHandler is the owner view of one field's bookings.
func ListFieldBookingsHandler(svc bookingSvc.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := svc.ListFieldBookings(c.Request.Context(), c.Param("id"),
			c.GetString(middleware.ContextUserID), c.GetString(middleware.ContextRole))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}
