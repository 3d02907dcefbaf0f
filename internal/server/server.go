package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/PlotFarm_Go/docs"

	"github.com/osse101/PlotFarm_Go/internal/clock"
	"github.com/osse101/PlotFarm_Go/internal/farm"
	"github.com/osse101/PlotFarm_Go/internal/handler"
	"github.com/osse101/PlotFarm_Go/internal/logger"
	"github.com/osse101/PlotFarm_Go/internal/metrics"
)

// Config holds the HTTP settings
type Config struct {
	Port           int
	APIKey         string // empty disables authentication
	TrustedProxies []string
}

// Server hosts the farm API
type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(cfg Config, farmService farm.Service, store handler.Pinger) *Server {
	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector(clock.RealClock{})

	r.Use(SecurityHeadersMiddleware())
	if cfg.APIKey != "" {
		r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))
	} else {
		slog.Warn(LogMsgAuthDisabled)
	}
	r.Use(SecurityLoggingMiddleware(cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	farmHandler := handler.NewFarmHandler(farmService)
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/farm", func(r chi.Router) {
			r.Get("/", farmHandler.HandleGetBoard)
			r.Get("/cell", farmHandler.HandleGetCell)
			r.Post("/plant", farmHandler.HandlePlant)
			r.Post("/harvest", farmHandler.HandleHarvest)
			r.Post("/upgrade", farmHandler.HandleUpgrade)
			r.Post("/sell", farmHandler.HandleSellAll)
		})

		r.Get("/inventory", farmHandler.HandleGetInventory)
		r.Get("/plants", farmHandler.HandleListPlants)
		r.Get("/season", farmHandler.HandleGetSeason)

		r.Get("/snapshot", farmHandler.HandleGetSnapshot)
		r.Put("/snapshot", farmHandler.HandlePutSnapshot)
		r.Post("/save", farmHandler.HandleSave)
		r.Post("/load", farmHandler.HandleLoad)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router: r,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// loggingMiddleware tags each request with a request_id and logs its outcome
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitized := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitized[k] = []string{RedactedValue}
			} else {
				sanitized[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitized)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
