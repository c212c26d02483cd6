package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trifall/link-shortener-ui/config"
	"github.com/trifall/link-shortener-ui/internal/adapters/memory"
)

func TestNewHTTPServer_ServesConsole(t *testing.T) {
	cfg := testAppConfig()
	cfg.HTTP.CORSOrigins = []string{"https://admin.example.com"}
	svcs, err := NewServices(&ServiceDeps{Config: cfg, Store: memory.NewStore(), Logger: discardLogger()})
	require.NoError(t, err)

	server := NewHTTPServer(&HTTPServerConfig{Config: cfg, Services: svcs, Logger: discardLogger()})
	require.NotNil(t, server)
	assert.Equal(t, "127.0.0.1:0", server.Addr)

	req := httptest.NewRequest(http.MethodGet, "/auth/status", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"authenticated":false}`, rec.Body.String())
	assert.Equal(t, "https://admin.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewHTTPServer_DefaultAddr(t *testing.T) {
	server := NewHTTPServer(&HTTPServerConfig{Config: &config.AppConfig{}, Logger: discardLogger()})
	assert.Equal(t, ":3000", server.Addr)
	assert.Nil(t, NewHTTPServer(nil))
}

func TestShutdownHTTPServer_NilServer(t *testing.T) {
	assert.NoError(t, ShutdownHTTPServer(ShutdownConfig{}))
}
