package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"allurra/internal/catalog"
	"allurra/internal/config"
	"allurra/internal/database"
	"allurra/internal/handlers"
	"allurra/internal/messaging"
	"allurra/internal/metrics"
	"allurra/internal/middleware"
	"allurra/internal/search"
	"allurra/internal/storage"
	"allurra/internal/store"

	"github.com/gin-gonic/gin"
)

// Server представляет HTTP сервер API
type Server struct {
	router  *gin.Engine
	config  *config.Config
	adapter storage.Adapter
	nats    *messaging.NATSClient
	store   *store.Store
	catalog *catalog.Catalog
}

// NewServer создает новый экземпляр сервера
func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)

	adapter, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage backend: %v", err)
	}

	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}

	cat := buildCatalog(cfg)

	st := store.New(adapter, natsClient, nil)
	st.Load(context.Background())

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(metrics.Middleware())

	server := &Server{
		router:  router,
		config:  cfg,
		adapter: adapter,
		nats:    natsClient,
		store:   st,
		catalog: cat,
	}

	server.setupRoutes()

	return server
}

// openStorage выбирает бэкенд хранилища по конфигурации
func openStorage(cfg *config.Config) (storage.Adapter, error) {
	switch cfg.Storage.Backend {
	case "file":
		return storage.NewFileAdapter(cfg.Storage.DataDir)
	case "postgres":
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, err
		}
		return storage.NewPostgresAdapter(db)
	case "valkey":
		return storage.NewValkeyAdapter(cfg.Storage.Valkey)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

// buildCatalog собирает каталог, при наличии конфигурации с поисковым бэкендом
func buildCatalog(cfg *config.Config) *catalog.Catalog {
	if !cfg.Elasticsearch.Enabled() {
		return catalog.New(nil)
	}

	es, err := search.NewElasticsearchClient(cfg.Elasticsearch)
	if err != nil {
		// Search is an enhancement; the linear filter still works
		log.Printf("Elasticsearch unavailable, catalog search degraded: %v", err)
		return catalog.New(nil)
	}

	cat := catalog.New(es)
	if err := es.IndexProviders(context.Background(), cat.All()); err != nil {
		log.Printf("Failed to index provider catalog: %v", err)
	}
	return cat
}

// setupRoutes настраивает все API роуты
func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.store, s.catalog)

	api := s.router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.Login)
			auth.POST("/signup", h.Signup)
			auth.POST("/logout", h.Logout)
		}

		profile := api.Group("/profile")
		profile.Use(middleware.RequireAuth(s.store))
		{
			profile.GET("", h.GetProfile)
			profile.PUT("", h.SaveProfile)
		}

		events := api.Group("/events")
		{
			events.POST("", h.CreateEvent)
			events.GET("", h.ListEvents)
			events.GET("/:id", h.GetEvent)
			events.PATCH("/:id", h.UpdateEvent)
			events.DELETE("/:id", h.DeleteEvent)
			events.GET("/:id/attendees", h.ListEventAttendees)
		}

		attendees := api.Group("/attendees")
		{
			attendees.POST("", h.CreateAttendee)
			attendees.PATCH("/checkin", h.CheckInAttendee)
		}

		providers := api.Group("/providers")
		{
			providers.GET("", h.ListProviders)
			providers.GET("/:id", h.GetProvider)
		}

		cart := api.Group("/cart")
		{
			cart.GET("", h.ListCart)
			cart.POST("", h.AddToCart)
			cart.DELETE("/:id", h.RemoveFromCart)
			cart.POST("/checkout", h.Checkout)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", h.ListBookings)
			bookings.PATCH("/status", h.UpdateBookingStatus)
		}

		api.GET("/analytics", h.GetAnalytics)
	}

	s.router.GET("/health", s.healthCheck)
	s.router.GET("/metrics", metrics.Handler())
}

// healthCheck обрабатывает health check запросы
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "allurra-api",
		"version": "1.0.0",
	})
}

// GetRouter возвращает роутер для тестирования
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Cleanup дожидается фоновых записей и закрывает соединения
func (s *Server) Cleanup() error {
	s.store.Flush()

	if s.nats != nil {
		if err := s.nats.Close(); err != nil {
			log.Printf("Error closing NATS connection: %v", err)
		}
	}

	if s.adapter != nil {
		if err := s.adapter.Close(); err != nil {
			log.Printf("Error closing storage backend: %v", err)
			return err
		}
	}

	return nil
}
