package handlers

import (
	"net/http"

	"allurra/internal/models"

	"github.com/gin-gonic/gin"
)

// Cart handlers

// ListCart - GET /api/cart
// Получить корзину с итоговой суммой
func (h *Handlers) ListCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": h.store.Cart(),
		"total": h.store.CartTotal(),
	})
}

// AddToCart - POST /api/cart
// Добавить заявку в корзину. Минимальная ставка проверяется здесь, а не в
// хранилище: хранилище принимает любую сумму.
func (h *Handlers) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	provider, ok := h.catalog.GetByID(req.ProviderID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		return
	}

	if req.BidAmount < provider.BasePrice {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bid amount is below the provider's base price"})
		return
	}

	item := h.store.AddToCart(c.Request.Context(), provider, req.EventDate, req.Location, req.BidAmount)

	c.JSON(http.StatusCreated, models.AddToCartResponse{ID: item.ID})
}

// RemoveFromCart - DELETE /api/cart/:id
// Убрать заявку из корзины
func (h *Handlers) RemoveFromCart(c *gin.Context) {
	h.store.RemoveFromCart(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusOK)
}

// Checkout - POST /api/cart/checkout
// Оформить корзину: выбранные заявки превращаются в оплаченные бронирования.
// Пустой список означает всю корзину.
func (h *Handlers) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart := h.store.Cart()
	var items []models.CartItem
	if len(req.ItemIDs) == 0 {
		items = cart
	} else {
		wanted := make(map[string]bool, len(req.ItemIDs))
		for _, id := range req.ItemIDs {
			wanted[id] = true
		}
		for _, item := range cart {
			if wanted[item.ID] {
				items = append(items, item)
			}
		}
	}

	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	bookings := h.store.CheckoutCart(c.Request.Context(), items)

	ids := make([]string, len(bookings))
	var total int64
	for i, b := range bookings {
		ids[i] = b.ID
		total += b.BidAmount
	}

	c.JSON(http.StatusCreated, models.CheckoutResponse{
		BookingIDs: ids,
		Total:      total,
	})
}
