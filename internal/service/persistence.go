package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/trifall/link-shortener-ui/internal/domain/passkey"
	"github.com/trifall/link-shortener-ui/internal/ports"
)

const (
	// SettingsStoreKey is the store key holding the JSON-encoded passkey.Settings.
	SettingsStoreKey = "link-shortener-settings"
	// KeyCookieName is the cookie carrying a remembered passkey.
	KeyCookieName = "link-shortener-key"
	// KeyCookieMaxAge keeps a remembered passkey for one year.
	KeyCookieMaxAge = 365 * 24 * 60 * 60
)

// PersistenceConfig holds the tunable parts of Persistence.
type PersistenceConfig struct {
	DefaultSaveKey bool   // returned when nothing is stored
	CookieDomain   string // optional Domain attribute on the key cookie
}

// PersistenceOptions groups dependencies for Persistence.
type PersistenceOptions struct {
	Store  ports.Store       // Required: settings backend
	Config PersistenceConfig // Optional: defaults to zero values
	Logger *slog.Logger      // Optional: structured logger
}

// Persistence stores operator settings and manages the remembered-key cookie.
type Persistence struct {
	store  ports.Store
	cfg    PersistenceConfig
	logger *slog.Logger
}

// NewPersistence constructs a new Persistence.
func NewPersistence(opts PersistenceOptions) (*Persistence, error) {
	if opts.Store == nil {
		return nil, errors.New("store is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Persistence{
		store:  opts.Store,
		cfg:    opts.Config,
		logger: logger.With("component", "persistence"),
	}, nil
}

// DefaultSettings returns the settings used when none are stored.
func (p *Persistence) DefaultSettings() passkey.Settings {
	return passkey.Settings{SaveKey: p.cfg.DefaultSaveKey}
}

// SaveSettings writes s to the store.
func (p *Persistence) SaveSettings(ctx context.Context, s passkey.Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := p.store.Set(ctx, SettingsStoreKey, string(data)); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// LoadSettings reads the stored settings. Missing or unreadable JSON yields
// the defaults; only a failing store returns an error, alongside the defaults.
func (p *Persistence) LoadSettings(ctx context.Context) (passkey.Settings, error) {
	raw, ok, err := p.store.Get(ctx, SettingsStoreKey)
	if err != nil {
		return p.DefaultSettings(), fmt.Errorf("load settings: %w", err)
	}
	if !ok {
		return p.DefaultSettings(), nil
	}

	s := p.DefaultSettings()
	if decodeErr := json.Unmarshal([]byte(raw), &s); decodeErr != nil {
		p.logger.WarnContext(ctx, "stored settings are corrupt, using defaults", "error", decodeErr)
		return p.DefaultSettings(), nil
	}
	return s, nil
}

// SaveKeyCookie remembers key in a site-wide cookie for one year.
func (p *Persistence) SaveKeyCookie(w http.ResponseWriter, key string) {
	http.SetCookie(w, &http.Cookie{
		Name:     KeyCookieName,
		Value:    url.QueryEscape(key),
		Path:     "/",
		Domain:   p.cfg.CookieDomain,
		MaxAge:   KeyCookieMaxAge,
		SameSite: http.SameSiteNoneMode,
		Secure:   true,
		HttpOnly: true,
	})
}

// DeleteKeyCookie expires the remembered-key cookie.
func (p *Persistence) DeleteKeyCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     KeyCookieName,
		Value:    "",
		Path:     "/",
		Domain:   p.cfg.CookieDomain,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		SameSite: http.SameSiteNoneMode,
		Secure:   true,
		HttpOnly: true,
	})
}

// LoadKeyCookie returns the remembered key carried by r, if any. A nil
// request has no cookies.
func (p *Persistence) LoadKeyCookie(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	c, err := r.Cookie(KeyCookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	v, err := url.QueryUnescape(c.Value)
	if err != nil {
		return c.Value, true
	}
	return v, v != ""
}
