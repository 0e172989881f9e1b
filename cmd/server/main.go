package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ZA87447/Dashboard-bot/internal/api"
	"github.com/ZA87447/Dashboard-bot/internal/api/handler"
	"github.com/ZA87447/Dashboard-bot/internal/config"
	"github.com/ZA87447/Dashboard-bot/internal/dashboard"
	"github.com/ZA87447/Dashboard-bot/internal/market"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	ctx := context.Background()

	source, cleanup, err := newSource(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize dataset source", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	table, err := source.Load(ctx)
	if err != nil {
		slog.Error("failed to load dataset", "source", source.Name(), "error", err)
		os.Exit(1)
	}
	loadedAt := time.Now()
	slog.Info("dataset loaded", "source", source.Name(), "rows", table.Len(),
		"countries", len(table.Countries()), "tireSizes", len(table.TireSizes()))

	if violations := dashboard.CheckConsistency(table); len(violations) > 0 {
		for _, v := range violations {
			slog.Warn("inconsistent industry totals", "violation", v.String())
		}
		if cfg.StrictDataset {
			slog.Error("dataset failed consistency check", "violations", len(violations))
			os.Exit(1)
		}
	}

	router := api.NewRouter(api.RouterDeps{
		Table: table,
		Dataset: handler.DatasetInfo{
			Source:   source.Name(),
			Rows:     table.Len(),
			LoadedAt: loadedAt,
		},
		Version: cfg.Version,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting dashboard server", "port", cfg.Port, "version", cfg.Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// newSource picks the dataset source: Postgres when DATABASE_URL is set,
// otherwise the CSV file. The cleanup func releases the source's
// resources.
func newSource(ctx context.Context, cfg *config.Config) (market.Source, func(), error) {
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("creating connection pool: %w", err)
		}
		return market.NewPostgresSource(pool), pool.Close, nil
	}

	schema := market.DefaultSchema()
	if cfg.SchemaPath != "" {
		var err error
		schema, err = market.LoadSchema(cfg.SchemaPath)
		if err != nil {
			return nil, nil, err
		}
	}
	return market.NewCSVSource(cfg.DatasetPath, schema), func() {}, nil
}
