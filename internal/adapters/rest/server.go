package rest

import (
	"context"
	"listing-service/internal/core/port"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
}

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

func NewRouter(cfg ServerConfig, handler *PropertyHandler, baseLogger port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-ID"},
		ExposedHeaders: []string{"X-Trace-ID"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1/properties", func(r chi.Router) {
		if cfg.RateLimitRPS > 0 {
			r.Use(NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware)
		}
		r.Get("/", handler.GetProperties)
		r.Get("/search", handler.SearchProperties)
		r.Delete("/cache", handler.InvalidateCache)
		r.Get("/cache/health", handler.CacheHealth)
	})

	return r
}

func NewServer(cfg ServerConfig, handler *PropertyHandler, baseLogger port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           NewRouter(cfg, handler, baseLogger),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
