package config

import (
	"strings"
	"time"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":3000"`

	// CookieDomain is the Domain attribute of the remembered-key cookie.
	// Leave empty to use the request host.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`

	// CORSOrigins lists origins allowed to call the console with credentials.
	// Empty disables CORS handling.
	CORSOrigins []string `env:"HTTP_CORS_ORIGINS" envDefault:"" envSeparator:","`

	// LoginRateLimit is the number of passkey submissions allowed per client
	// IP per minute. Zero disables the limit.
	LoginRateLimit int `env:"HTTP_LOGIN_RATE_LIMIT" envDefault:"10"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	h.Addr = strings.TrimSpace(h.Addr)
	if h.Addr == "" {
		h.Addr = ":3000"
	}
	h.CookieDomain = strings.TrimSpace(h.CookieDomain)

	origins := make([]string, 0, len(h.CORSOrigins))
	for _, o := range h.CORSOrigins {
		if trimmed := strings.TrimRight(strings.TrimSpace(o), "/"); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	h.CORSOrigins = origins

	if h.LoginRateLimit < 0 {
		h.LoginRateLimit = 0
	}
	if h.ShutdownTimeout <= 0 {
		h.ShutdownTimeout = defaultShutdownTimeout
	}
}
