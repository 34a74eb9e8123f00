package handlers

import (
	"net/http"

	"allurra/internal/models"

	"github.com/gin-gonic/gin"
)

// Events handlers

// CreateEvent - POST /api/events
// Создать событие
func (h *Handlers) CreateEvent(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event := h.store.AddEvent(c.Request.Context(), &req)

	c.JSON(http.StatusCreated, models.CreateEventResponse{ID: event.ID})
}

// ListEvents - GET /api/events
// Получить список событий
func (h *Handlers) ListEvents(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Events())
}

// GetEvent - GET /api/events/:id
// Получить событие по ID
func (h *Handlers) GetEvent(c *gin.Context) {
	event, ok := h.store.GetEvent(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, event)
}

// UpdateEvent - PATCH /api/events/:id
// Частично обновить событие. Неизвестный ID молча игнорируется хранилищем,
// но для клиента возвращаем 404.
func (h *Handlers) UpdateEvent(c *gin.Context) {
	var req models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, ok := h.store.UpdateEvent(c.Request.Context(), c.Param("id"), &req)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent - DELETE /api/events/:id
// Удалить событие. Участники события не удаляются.
func (h *Handlers) DeleteEvent(c *gin.Context) {
	h.store.DeleteEvent(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusOK)
}

// ListEventAttendees - GET /api/events/:id/attendees
// Получить участников события
func (h *Handlers) ListEventAttendees(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.EventAttendees(c.Param("id")))
}
