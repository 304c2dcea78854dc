package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/p-n-ai/pai-curriculum/internal/content"
	"github.com/p-n-ai/pai-curriculum/internal/curriculum"
	"github.com/p-n-ai/pai-curriculum/internal/httpapi"
	"github.com/p-n-ai/pai-curriculum/internal/lint"
	"github.com/p-n-ai/pai-curriculum/internal/platform/cache"
	"github.com/p-n-ai/pai-curriculum/internal/platform/config"
	"github.com/p-n-ai/pai-curriculum/internal/platform/database"
	"github.com/p-n-ai/pai-curriculum/internal/platform/logger"
	"github.com/p-n-ai/pai-curriculum/internal/publish"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}
	logger.Setup(os.Stdout, cfg.Log)

	// Graceful shutdown on SIGTERM/SIGINT.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	registry, err := setup(ctx, cfg)
	if err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}

	srv := newServer(cfg.Server, httpapi.NewHandler(registry))

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// setup loads the curriculum eagerly so that broken content stops the process
// before it serves traffic, then lints and optionally publishes it.
func setup(ctx context.Context, cfg *config.Config) (*curriculum.Registry, error) {
	registry, err := content.NewRegistry(cfg.CurriculumPath)
	if err != nil {
		return nil, err
	}
	epochs, err := registry.Epochs()
	if err != nil {
		return nil, err
	}

	if err := checkLint(epochs, cfg.Lint.Strict); err != nil {
		return nil, err
	}

	if cfg.Publish.Enabled {
		if err := publishSnapshot(ctx, cfg, epochs); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// checkLint logs every warning. In strict mode any warning is an error.
func checkLint(epochs []curriculum.Epoch, strict bool) error {
	warnings := lint.Run(epochs)
	for _, w := range warnings {
		slog.Warn("curriculum lint", "code", w.Code, "entity", w.Entity, "message", w.Message)
	}
	if strict && len(warnings) > 0 {
		return fmt.Errorf("lint: %d warnings in strict mode", len(warnings))
	}
	return nil
}

// publishSnapshot pushes the tree to every configured store. Connections are
// closed again once the snapshot is written.
func publishSnapshot(ctx context.Context, cfg *config.Config, epochs []curriculum.Epoch) error {
	snap, err := publish.NewSnapshot(epochs)
	if err != nil {
		return err
	}

	var pubs []publish.Publisher

	if cfg.Database.URL != "" {
		db, err := database.New(ctx, cfg.Database.URL, cfg.Database.MaxConns, cfg.Database.MinConns)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer db.Close()

		pg, err := publish.NewPostgresPublisher(ctx, db.Pool)
		if err != nil {
			return err
		}
		pubs = append(pubs, pg)
	}

	if cfg.Cache.URL != "" {
		c, err := cache.New(ctx, cfg.Cache.URL)
		if err != nil {
			return fmt.Errorf("connecting to cache: %w", err)
		}
		defer c.Close()

		ttl := time.Duration(cfg.Cache.TTLHours) * time.Hour
		pubs = append(pubs, publish.NewRedisPublisher(c.Client, ttl))
	}

	return publish.All(ctx, snap, pubs...)
}

func newServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
