package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mhartmann/tellersim/internal/api"
	"github.com/mhartmann/tellersim/internal/auth"
	"github.com/mhartmann/tellersim/internal/config"
	"github.com/mhartmann/tellersim/internal/metrics"
	"github.com/mhartmann/tellersim/internal/session"
	"github.com/mhartmann/tellersim/internal/ticker"
	"github.com/mhartmann/tellersim/internal/websocket"
	"github.com/mhartmann/tellersim/pkg/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Configure logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Set log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("invalid log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Load the teller roster
	roster, err := config.LoadRoster(cfg.TellerRosterPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load teller roster")
	}

	log.Info().
		Str("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Str("log_level", cfg.LogLevel).
		Int("tellers", len(roster)).
		Bool("skip_auth", cfg.SkipAuth).
		Msg("starting tellersim server")

	// Create WebSocket hub
	hub := websocket.NewHub(log.Logger)
	go hub.Run()

	// Create context for services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create session manager
	manager := session.NewManager(hub, log.Logger)

	// Periodic overview broadcast to dashboards
	overviewTicker := ticker.NewTicker(hub, manager, cfg.OverviewInterval, log.Logger)
	go overviewTicker.Start(ctx)

	// Create WebSocket handler
	wsHandler := websocket.NewHandler(hub, cfg, log.Logger)

	// Create API handler
	sessionHandler := api.NewSessionHandler(manager, roster, log.Logger)

	// Create router
	r := chi.NewRouter()

	// Add middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log.Logger))
	r.Use(middleware.Metrics(metrics.Get().RecordHTTPRequest))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Register public routes (no auth required)
	r.Get("/health", healthHandler)
	r.Get("/metrics", metrics.Get().Handler())

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(cfg.AuthSecret, cfg.SkipAuth))

		r.Get("/ws", wsHandler.ServeHTTP)

		r.Route("/api", func(r chi.Router) {
			r.Get("/tellers", sessionHandler.ListTellers)
			r.Post("/sessions", sessionHandler.CreateSession)
			r.Get("/sessions", sessionHandler.ListSessions)
			r.Route("/sessions/{sessionID}", func(r chi.Router) {
				r.Get("/", sessionHandler.GetSession)
				r.Post("/records", sessionHandler.AppendRecord)
				r.Get("/simulation", sessionHandler.GetSimulation)
				r.Get("/metrics", sessionHandler.GetMetrics)
				r.Get("/tellers", sessionHandler.GetTellerStats)
				r.Get("/export.csv", sessionHandler.ExportCSV)

				// Destructive operations require the admin role
				r.With(auth.RequireAdmin).Post("/reset", sessionHandler.ResetSession)
				r.With(auth.RequireAdmin).Delete("/", sessionHandler.DeleteSession)
			})
		})
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Msgf("server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Stop the overview ticker
	cancel()

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// healthHandler handles health check requests
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"ok","service":"tellersim"}`)
}
