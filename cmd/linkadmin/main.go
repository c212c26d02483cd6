package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/trifall/link-shortener-ui/config"
	"github.com/trifall/link-shortener-ui/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	logger = bootstrap.ConfigureLogger(&cfg, os.Stdout)

	logStartupInfo(ctx, logger, &cfg)

	opened, err := bootstrap.OpenStore(ctx, cfg.Store, logger)
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	defer func() {
		if cerr := opened.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close settings store failed", "error", cerr)
		}
	}()

	services, err := bootstrap.NewServices(&bootstrap.ServiceDeps{
		Config: &cfg,
		Store:  opened.Store,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	return bootstrap.RunServicesWithShutdown(ctx, &bootstrap.ServiceOrchestrationConfig{
		Config:   &cfg,
		Services: services,
		Logger:   logger,
	})
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting link-shortener admin console",
		"addr", cfg.HTTP.Addr,
		"backend", cfg.API.PublicURL,
		"store", cfg.Store.Backend,
		"dev", cfg.IsDev)
}
