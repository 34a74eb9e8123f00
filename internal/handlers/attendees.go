package handlers

import (
	"net/http"

	"allurra/internal/models"

	"github.com/gin-gonic/gin"
)

// Attendees handlers

// CreateAttendee - POST /api/attendees
// Зарегистрировать участника
func (h *Handlers) CreateAttendee(c *gin.Context) {
	var req models.CreateAttendeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attendee := h.store.AddAttendee(c.Request.Context(), &req)

	c.JSON(http.StatusCreated, models.CreateAttendeeResponse{
		ID:     attendee.ID,
		QRCode: attendee.QRCode,
	})
}

// CheckInAttendee - PATCH /api/attendees/checkin
// Отметить прибытие участника по ID или по отсканированному QR-коду
func (h *Handlers) CheckInAttendee(c *gin.Context) {
	var req models.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := req.AttendeeID
	if id == "" {
		if req.QRCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "attendeeId or qrCode is required"})
			return
		}
		attendee, ok := h.store.FindAttendeeByQR(req.QRCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Attendee not found"})
			return
		}
		id = attendee.ID
	}

	attendee, ok := h.store.CheckInAttendee(c.Request.Context(), id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Attendee not found"})
		return
	}

	c.JSON(http.StatusOK, attendee)
}
