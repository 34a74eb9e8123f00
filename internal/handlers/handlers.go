package handlers

import (
	"net/http"

	"allurra/internal/catalog"
	"allurra/internal/models"
	"allurra/internal/store"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	store   *store.Store
	catalog *catalog.Catalog
}

func NewHandlers(s *store.Store, c *catalog.Catalog) *Handlers {
	return &Handlers{
		store:   s,
		catalog: c,
	}
}

// GetAnalytics - GET /api/analytics
// Сводная статистика для панели организатора
func (h *Handlers) GetAnalytics(c *gin.Context) {
	events := h.store.Events()

	pending := 0
	for _, b := range h.store.Bookings() {
		if b.Status == models.BookingPending {
			pending++
		}
	}

	c.JSON(http.StatusOK, models.AnalyticsResponse{
		TotalRevenue:     h.store.TotalRevenue(),
		TotalEvents:      len(events),
		TotalTicketsSold: h.store.TotalTicketsSold(),
		TotalAttendees:   len(h.store.Attendees()),
		PendingBookings:  pending,
	})
}
