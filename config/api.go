package config

import (
	"strings"
	"time"
)

// APIConfig points the console at the link-shortener backend.
type APIConfig struct {
	// PublicURL is the backend origin; the validation route is appended to it.
	PublicURL string `env:"PUBLIC_API_URL" envDefault:"http://localhost:8080"`

	// Timeout bounds each backend request. Zero leaves timeouts to the
	// transport defaults.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"0s"`
}

// Sanitize trims the URL and clamps negative timeouts to zero.
func (a *APIConfig) Sanitize() {
	a.PublicURL = strings.TrimRight(strings.TrimSpace(a.PublicURL), "/")
	if a.Timeout < 0 {
		a.Timeout = 0
	}
}
