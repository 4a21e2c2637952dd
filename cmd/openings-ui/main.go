package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aoe-openings/openings-ui/config"
	"github.com/aoe-openings/openings-ui/internal/bootstrap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		stop()
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger = bootstrap.NewLogger(os.Stdout, cfg.Observability, cfg.IsDev)
	logStartupInfo(ctx, logger, &cfg)

	return bootstrap.RunHTTPServer(ctx, &bootstrap.HTTPServerConfig{
		Config: &cfg,
		Logger: logger,
	})
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting openings-ui service",
		"addr", cfg.HTTP.Addr,
		"dev", cfg.IsDev,
		"default_patch_id", cfg.Query.DefaultPatchID,
		"log_level", cfg.Observability.LogLevel)
}
