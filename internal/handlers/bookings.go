package handlers

import (
	"net/http"

	"allurra/internal/models"

	"github.com/gin-gonic/gin"
)

// Bookings handlers

// ListBookings - GET /api/bookings
// Получить список бронирований
func (h *Handlers) ListBookings(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Bookings())
}

// UpdateBookingStatus - PATCH /api/bookings/status
// Сменить статус бронирования. Единственный переход, инициируемый
// приложением - rejected -> refunded (запрос возврата).
func (h *Handlers) UpdateBookingStatus(c *gin.Context) {
	var req models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.Status {
	case models.BookingPending, models.BookingAccepted, models.BookingRejected, models.BookingRefunded:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown booking status"})
		return
	}

	booking, ok := h.store.UpdateBookingStatus(c.Request.Context(), req.BookingID, req.Status)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	c.JSON(http.StatusOK, booking)
}
