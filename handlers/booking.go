package handlers

import (
	"errors"
	"net/http"

	"concierge/models"
	"concierge/services/booking"
	"concierge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking engine endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler builds a booking handler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// writeServiceError maps booking service errors onto HTTP statuses while
// keeping the uniform {success:false, error, message} shape.
func writeServiceError(c *gin.Context, err error) {
	var svcErr *booking.ServiceError
	if !errors.As(err, &svcErr) {
		utils.JSONError(c, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	status := http.StatusBadRequest
	switch svcErr.Code {
	case booking.CodeNotFound:
		status = http.StatusNotFound
	case booking.CodeComplianceFailed, booking.CodeRoomUnavailable:
		status = http.StatusConflict
	case booking.CodePaymentFailed:
		status = http.StatusBadGateway
	}
	c.JSON(status, utils.ErrorResponse{
		Success: false,
		Error:   svcErr.Code,
		Message: svcErr.Message,
		Issues:  svcErr.Issues,
	})
}

// CreateBooking creates a booking from collected conversation data.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input struct {
		models.BookingData
		RawMessage string `json:"rawMessage"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "ValidationError", "invalid booking payload: "+err.Error())
		return
	}

	result, err := h.Service.CreateBooking(input.BookingData, input.RawMessage)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetBooking fetches one booking.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Param("bookingID"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": b})
}

// CancelBooking cancels a booking and releases its rooms.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	b, err := h.Service.CancelBooking(c.Param("bookingID"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": b})
}

// UpdateBooking mutates guestCount and specialRequests only.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var updates models.BookingUpdates
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "ValidationError", "invalid update payload: "+err.Error())
		return
	}

	fields, b, err := h.Service.UpdateBooking(c.Param("bookingID"), updates)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "updatedFields": fields, "booking": b})
}

// ListBookings returns bookings matching optional status/roomType filters.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	filter := models.BookingFilter{
		Status:   c.Query("status"),
		RoomType: c.Query("roomType"),
	}
	list, err := h.Service.ListBookings(filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": list, "count": len(list)})
}

// PayBooking drives the simulated payment for a pending booking.
func (h *BookingHandler) PayBooking(c *gin.Context) {
	b, err := h.Service.MarkPaid(c.Param("bookingID"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": b})
}
