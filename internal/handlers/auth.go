package handlers

import (
	"log/slog"
	"net/http"

	"allurra/internal/models"

	"github.com/gin-gonic/gin"
)

// Auth and profile handlers. The store accepts any plausible-looking
// credentials; there is no identity backend in this system.

// Login - POST /api/auth/login
// Войти в систему
func (h *Handlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slog.Info("User logged in", "email", user.Email)
	c.JSON(http.StatusOK, models.AuthResponse{IsAuthenticated: true, User: user})
}

// Signup - POST /api/auth/signup
// Зарегистрироваться
func (h *Handlers) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.Signup(c.Request.Context(), req.Name, req.Email, req.Password, req.Phone, req.Company)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slog.Info("User signed up", "email", user.Email)
	c.JSON(http.StatusCreated, models.AuthResponse{IsAuthenticated: true, User: user})
}

// Logout - POST /api/auth/logout
// Выйти. Сбрасывается только флаг аутентификации.
func (h *Handlers) Logout(c *gin.Context) {
	h.store.Logout(c.Request.Context())
	c.Status(http.StatusOK)
}

// GetProfile - GET /api/profile
// Получить профиль организатора
func (h *Handlers) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Profile())
}

// SaveProfile - PUT /api/profile
// Полностью заменить профиль организатора
func (h *Handlers) SaveProfile(c *gin.Context) {
	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.store.SaveProfile(c.Request.Context(), profile)
	c.JSON(http.StatusOK, profile)
}
