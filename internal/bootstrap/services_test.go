package bootstrap

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trifall/link-shortener-ui/config"
	"github.com/trifall/link-shortener-ui/internal/adapters/memory"
)

func testAppConfig() *config.AppConfig {
	cfg := &config.AppConfig{
		API:     config.APIConfig{PublicURL: "http://localhost:8080"},
		HTTP:    config.HTTPConfig{Addr: "127.0.0.1:0"},
		Passkey: config.PasskeyConfig{ToastDuration: time.Second},
	}
	cfg.Sanitize()
	return cfg
}

func TestNewServices_RequiresDependencies(t *testing.T) {
	_, err := NewServices(nil)
	require.Error(t, err)

	_, err = NewServices(&ServiceDeps{Config: testAppConfig()})
	require.Error(t, err)
}

func TestNewServices_InvalidBackendURL(t *testing.T) {
	cfg := testAppConfig()
	cfg.API.PublicURL = "not a url"

	_, err := NewServices(&ServiceDeps{Config: cfg, Store: memory.NewStore(), Logger: discardLogger()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key validation client")
}

func TestNewServices_Wires(t *testing.T) {
	cfg := testAppConfig()
	cfg.Passkey.DefaultSaveKey = true

	svcs, err := NewServices(&ServiceDeps{Config: cfg, Store: memory.NewStore(), Logger: discardLogger()})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api/v1/keys/validate", svcs.Validator.Endpoint())
	assert.False(t, svcs.Passkey.Status().Authenticated)

	settings, err := svcs.Passkey.Settings(context.Background())
	require.NoError(t, err)
	assert.True(t, settings.SaveKey, "default saveKey comes from config")
}

func TestNewBackendClient(t *testing.T) {
	assert.Same(t, http.DefaultClient, newBackendClient(config.APIConfig{}))
	assert.Equal(t, 3*time.Second, newBackendClient(config.APIConfig{Timeout: 3 * time.Second}).Timeout)
}

func TestRunServicesWithShutdown_StopsOnCancel(t *testing.T) {
	cfg := testAppConfig()
	svcs, err := NewServices(&ServiceDeps{Config: cfg, Store: memory.NewStore(), Logger: discardLogger()})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- RunServicesWithShutdown(ctx, &ServiceOrchestrationConfig{
			Config:   cfg,
			Services: svcs,
			Logger:   discardLogger(),
		})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunServicesWithShutdown did not return after cancel")
	}
}

func TestRunServicesWithShutdown_RequiresConfig(t *testing.T) {
	require.Error(t, RunServicesWithShutdown(context.Background(), nil))
}

func TestNewMetricsClient(t *testing.T) {
	disabled := newMetricsClient(config.MetricsConfig{}, discardLogger())
	require.NotNil(t, disabled)
	assert.False(t, disabled.Enabled())

	enabled := newMetricsClient(config.MetricsConfig{StatsdAddress: "127.0.0.1:8125", Prefix: "linkadmin"}, discardLogger())
	t.Cleanup(func() { _ = enabled.Close() })
	assert.True(t, enabled.Enabled())
}
