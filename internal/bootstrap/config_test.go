package bootstrap

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trifall/link-shortener-ui/config"
)

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PUBLIC_API_URL", "https://sho.rt/")
	t.Setenv("HTTP_ADDR", " :9090 ")
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("PASSKEY_TOAST_DURATION", "2s")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://sho.rt", cfg.API.PublicURL)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, config.StoreMemory, cfg.Store.Backend)
	assert.Equal(t, 2*time.Second, cfg.Passkey.ToastDuration)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_RejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "etcd")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestConfigureLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := ConfigureLogger(&config.AppConfig{LogLevel: "warn"}, &buf)
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.HasPrefix(out, "{"), "production logs are JSON: %q", out)
	assert.Contains(t, out, `"msg":"shown"`)

	buf.Reset()
	logger = ConfigureLogger(&config.AppConfig{IsDev: true, LogLevel: "debug"}, &buf)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
	logger.Debug("dev line")
	assert.Contains(t, buf.String(), "msg=\"dev line\"")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}
