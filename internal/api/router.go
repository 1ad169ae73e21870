package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"equipmentCentral/internal/api/handlers/http/admin"
	"equipmentCentral/internal/api/handlers/http/public"
	"equipmentCentral/internal/api/handlers/http/system"
	"equipmentCentral/internal/config"
	"equipmentCentral/internal/middleware"
	"equipmentCentral/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, deps map[string]system.Pinger) *Server {
	adminHandler := admin.NewHandler(logger, svc.OperatorAdminService, svc.EquipmentAdminService, svc.StatsService)
	publicHandler := public.NewHandler(logger, svc.SearchService)
	systemHandler := system.NewHandler(logger, deps)

	r := InitRouter(cfg, adminHandler, publicHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func InitRouter(cfg *config.Config, adminHandler *admin.Handler, publicHandler *public.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Http.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.APIKeyHeader},
		MaxAge:         300,
	}))

	r.Route("/api", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Get("/stats", adminHandler.SearchStats)

			ar.Route("/operators", func(or chi.Router) {
				or.Post("/", adminHandler.OperatorCreate)
				or.Get("/", adminHandler.OperatorList)

				or.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", adminHandler.OperatorGet)
					rr.Put("/", adminHandler.OperatorUpdate)
					rr.Delete("/", adminHandler.OperatorDelete)
				})
			})

			ar.Route("/equipment", func(er chi.Router) {
				er.Post("/", adminHandler.EquipmentCreate)

				er.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", adminHandler.EquipmentGet)
					rr.Put("/", adminHandler.EquipmentUpdate)
					rr.Delete("/", adminHandler.EquipmentDelete)
				})
			})
		})

		// PUBLIC
		api.Group(func(pr chi.Router) {
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			pr.Get("/equipment", publicHandler.ListEquipment)
			pr.Get("/equipment/nearby", publicHandler.NearbyEquipment)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
