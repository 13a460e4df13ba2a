// Package main is the entry point for the VisaMarker API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/pkordes/visamarker/internal/config"
	"github.com/pkordes/visamarker/internal/handler"
	"github.com/pkordes/visamarker/internal/middleware"
	"github.com/pkordes/visamarker/internal/repo"
	"github.com/pkordes/visamarker/internal/service"
	"github.com/pkordes/visamarker/migrations"
)

// sweepInterval is how often expired plans are evicted.
const sweepInterval = time.Minute

func main() {
	// --- Config -----------------------------------------------------------
	// A missing .env file is fine: the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Visa table -------------------------------------------------------
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	visas, closeVisas, err := openVisaRepo(ctx, cfg)
	if err != nil {
		slog.Error("failed to open visa table", "error", err)
		os.Exit(1)
	}
	defer closeVisas()

	// --- Services ---------------------------------------------------------
	plans := repo.NewMemoryPlanRepo()
	planner := service.NewPlannerService(visas, cfg.GenerationDelay, logger)
	planSvc := service.NewPlanService(plans, planner, service.WithLogger(logger))
	exportSvc := service.NewExportService(plans)

	go planSvc.RunSweeper(ctx, cfg.PlanTTL, sweepInterval)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body limit.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	server := handler.NewServer(planSvc, exportSvc, logger)
	r.Mount("/", server.Routes())

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10*time.Second + cfg.GenerationDelay,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "generation_delay", cfg.GenerationDelay.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openVisaRepo selects the visa table: Postgres when DATABASE_URL is set
// (migrating it first), otherwise the YAML table. The returned func releases
// any connections.
func openVisaRepo(ctx context.Context, cfg config.Config) (repo.VisaRepo, func(), error) {
	if cfg.DatabaseURL == "" {
		visas, err := repo.LoadYAMLVisaRepo(cfg.VisaTablePath)
		if err != nil {
			return nil, nil, err
		}
		source := cfg.VisaTablePath
		if source == "" {
			source = "embedded"
		}
		slog.Info("visa table loaded", "source", source)
		return visas, func() {}, nil
	}

	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	// goose needs database/sql; the *sql.DB borrows connections from pool.
	applied, err := migrations.Up(ctx, stdlib.OpenDBFromPool(pool))
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	slog.Info("database connection established", "migrations_applied", applied)
	return repo.NewPGVisaRepo(pool), pool.Close, nil
}
