package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/trifall/link-shortener-ui/config"
	"github.com/trifall/link-shortener-ui/internal/observability/statsd"
	"github.com/trifall/link-shortener-ui/internal/ports"
	"github.com/trifall/link-shortener-ui/internal/service"
	"golang.org/x/sync/errgroup"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Passkey   *service.PasskeyService
	Validator *service.KeyValidationClient
	Session   *service.SessionState
	Toasts    *service.ToastNotifier
	Persist   *service.Persistence
	Metrics   *statsd.Client
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config *config.AppConfig
	Store  ports.Store
	Logger *slog.Logger
}

// newBackendClient builds the HTTP client used for backend validation.
func newBackendClient(cfg config.APIConfig) *http.Client {
	if cfg.Timeout <= 0 {
		return http.DefaultClient
	}
	return &http.Client{Timeout: cfg.Timeout}
}

// newMetricsClient returns a disabled client when the agent cannot be dialed.
func newMetricsClient(cfg config.MetricsConfig, logger *slog.Logger) *statsd.Client {
	if !cfg.IsEnabled() {
		disabled, _ := statsd.NewClient(statsd.Config{Logger: logger})
		return disabled
	}
	client, err := statsd.NewClient(statsd.Config{
		Address: cfg.StatsdAddress,
		Prefix:  cfg.Prefix,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("failed to initialise statsd client", "error", err)
		disabled, _ := statsd.NewClient(statsd.Config{Logger: logger})
		return disabled
	}
	logger.Info("statsd metrics enabled", "addr", cfg.StatsdAddress, "prefix", cfg.Prefix)
	return client
}

// NewServices wires the passkey flows on top of the given settings store.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, errors.New("service config is required")
	}
	if deps.Store == nil {
		return ServiceContainer{}, errors.New("settings store is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	validator, err := service.NewKeyValidationClient(service.KeyValidationClientOptions{
		BaseURL:    cfg.API.PublicURL,
		HTTPClient: newBackendClient(cfg.API),
		Logger:     logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create key validation client: %w", err)
	}

	persist, err := service.NewPersistence(service.PersistenceOptions{
		Store: deps.Store,
		Config: service.PersistenceConfig{
			DefaultSaveKey: cfg.Passkey.DefaultSaveKey,
			CookieDomain:   cfg.HTTP.CookieDomain,
		},
		Logger: logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create persistence: %w", err)
	}

	session := service.NewSessionState()
	toasts := service.NewToastNotifier(service.ToastNotifierOptions{
		DefaultDuration: cfg.Passkey.ToastDuration,
		Logger:          logger,
	})

	metrics := newMetricsClient(cfg.Metrics, logger)

	passkeySvc, err := service.NewPasskeyService(service.PasskeyServiceOptions{
		Validator: service.NewInstrumentedValidator(validator, metrics),
		State:     service.PasskeyState{Session: session, Toasts: toasts, Persistence: persist},
		Logger:    logger,
	})
	if err != nil {
		_ = metrics.Close()
		return ServiceContainer{}, fmt.Errorf("create passkey service: %w", err)
	}

	logger.Info("services initialized", "validate_endpoint", validator.Endpoint())

	return ServiceContainer{
		Passkey:   passkeySvc,
		Validator: validator,
		Session:   session,
		Toasts:    toasts,
		Persist:   persist,
		Metrics:   metrics,
	}, nil
}

// ServiceOrchestrationConfig contains dependencies for running the console.
type ServiceOrchestrationConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// RunServicesWithShutdown serves the console until ctx is canceled, SIGINT or
// SIGTERM arrives, or the server fails. It then drains in-flight requests.
func RunServicesWithShutdown(ctx context.Context, cfg *ServiceOrchestrationConfig) error {
	if cfg == nil || cfg.Config == nil {
		return errors.New("service orchestration config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, gctx := errgroup.WithContext(sigCtx)
	server := NewHTTPServer(&HTTPServerConfig{Config: cfg.Config, Services: cfg.Services, Logger: logger})

	group.Go(func() error {
		return ListenAndServe(server, logger)
	})
	group.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down services...")
		if cfg.Services.Toasts != nil {
			defer cfg.Services.Toasts.Dismiss()
		}
		defer func() {
			if err := cfg.Services.Metrics.Close(); err != nil {
				logger.Warn("close statsd client failed", "error", err)
			}
		}()
		return ShutdownHTTPServer(ShutdownConfig{
			Context: context.WithoutCancel(gctx),
			Server:  server,
			Timeout: cfg.Config.HTTP.ShutdownTimeout,
			Logger:  logger,
		})
	})

	return group.Wait()
}
