package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Swelo-ui/guvi-project-1/internal/conversation"
	httpmiddleware "github.com/Swelo-ui/guvi-project-1/internal/http/middleware"
	"github.com/Swelo-ui/guvi-project-1/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger          *logging.Logger
	Honeypot        *conversation.Handler
	APIKey          string
	AdminAuthSecret string
	MetricsHandler  http.Handler
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", cfg.Honeypot.HealthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		api.Use(httpmiddleware.APIKey(cfg.APIKey))
		api.Post("/honeypot", cfg.Honeypot.ProcessTurn)
	})

	r.Route("/admin", func(admin chi.Router) {
		admin.Use(httpmiddleware.AdminJWT(cfg.AdminAuthSecret))
		admin.Get("/results", cfg.Honeypot.ListResults)
	})

	return r
}
