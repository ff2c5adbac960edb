package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/passa-a-bola/passa-web/internal/api"
	"github.com/passa-a-bola/passa-web/internal/config"
	"github.com/passa-a-bola/passa-web/internal/factory"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.UsesDevSecret() {
		logger.Warn("SESSION_SECRET not set: client cookies use the public development secret")
	}

	app, err := factory.New(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("configuration loaded",
		slog.String("addr", cfg.Addr()),
		slog.String("api_url", cfg.APIURL),
		slog.String("storage", cfg.StorageType),
	)

	server := api.NewServer(app.Handler(), api.DefaultServerConfig(cfg.Addr()), logger)
	return server.ListenAndRun(ctx)
}
