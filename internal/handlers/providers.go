package handlers

import (
	"net/http"

	"allurra/internal/models"

	"github.com/gin-gonic/gin"
)

// Service catalog handlers. Каталог только для чтения.

// ListProviders - GET /api/providers
// Получить каталог поставщиков услуг с фильтрацией
func (h *Handlers) ListProviders(c *gin.Context) {
	query := c.Query("query")
	category := models.ServiceCategory(c.Query("category"))

	if category != "" {
		switch category {
		case models.CategoryMC, models.CategoryComedian, models.CategoryCatering,
			models.CategoryPhotography, models.CategoryDecoration:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
			return
		}
	}

	c.JSON(http.StatusOK, h.catalog.Search(c.Request.Context(), query, category))
}

// GetProvider - GET /api/providers/:id
// Получить поставщика по ID
func (h *Handlers) GetProvider(c *gin.Context) {
	provider, ok := h.catalog.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		return
	}

	c.JSON(http.StatusOK, provider)
}
