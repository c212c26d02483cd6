package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/trifall/link-shortener-ui/internal/domain/passkey"
	"github.com/trifall/link-shortener-ui/internal/ports"
)

// Toast texts for outcomes that carry no backend message.
const (
	msgLoginSucceeded = "Passkey validated"
	msgKeyInactive    = "Passkey is not active"
	msgRestored       = "Welcome back"
	msgLoggedOut      = "Logged out"
	msgSettingsSaved  = "Settings saved"
)

// PasskeyState bundles the per-process state the service coordinates.
type PasskeyState struct {
	Session     *SessionState
	Toasts      *ToastNotifier
	Persistence *Persistence
}

// PasskeyServiceOptions groups dependencies for PasskeyService.
type PasskeyServiceOptions struct {
	Validator ports.KeyValidator // Required: backend validation
	State     PasskeyState       // Required: session, toasts, persistence
	Logger    *slog.Logger       // Optional: structured logger
}

// PasskeyService runs the operator flows: login, restore from a remembered
// key, logout and settings changes.
type PasskeyService struct {
	validator ports.KeyValidator
	session   *SessionState
	toasts    *ToastNotifier
	persist   *Persistence
	logger    *slog.Logger
}

// NewPasskeyService constructs a new PasskeyService.
func NewPasskeyService(opts PasskeyServiceOptions) (*PasskeyService, error) {
	if opts.Validator == nil {
		return nil, errors.New("key validator is required")
	}
	if opts.State.Session == nil || opts.State.Toasts == nil || opts.State.Persistence == nil {
		return nil, errors.New("session, toasts and persistence are required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &PasskeyService{
		validator: opts.Validator,
		session:   opts.State.Session,
		toasts:    opts.State.Toasts,
		persist:   opts.State.Persistence,
		logger:    logger.With("component", "passkey_service"),
	}, nil
}

// MustNewPasskeyService constructs a new PasskeyService and panics on error.
func MustNewPasskeyService(opts PasskeyServiceOptions) *PasskeyService {
	svc, err := NewPasskeyService(opts)
	if err != nil {
		panic(err) //nolint:forbidigo // Must constructor fails fast when dependencies are invalid during startup
	}
	return svc
}

// LoginInput carries a submitted passkey and the optional "remember" choice.
// A nil Remember keeps the stored preference.
type LoginInput struct {
	Passkey  string
	Remember *bool
}

// LoginResult is the outcome of a login attempt together with the toast that
// announced it.
type LoginResult struct {
	Result passkey.ValidationResult
	Toast  passkey.ToastState
}

// Authenticated reports whether the login produced a valid session.
func (r LoginResult) Authenticated() bool {
	rec, ok := r.Result.Record()
	return ok && rec.IsValid()
}

// Login validates in.Passkey and updates the session. A valid key is
// remembered in a cookie when the saveKey preference is on and forgotten
// otherwise. w may be nil when there is no cookie jar.
func (s *PasskeyService) Login(ctx context.Context, w http.ResponseWriter, in LoginInput) LoginResult {
	if in.Remember != nil {
		if err := s.persist.SaveSettings(ctx, passkey.Settings{SaveKey: *in.Remember}); err != nil {
			s.logger.WarnContext(ctx, "failed to save remember preference", "error", err)
		}
	}

	res := s.validator.Validate(ctx, in.Passkey)
	rec, ok := res.Record()
	if !ok {
		s.session.Reset()
		return LoginResult{Result: res, Toast: s.toasts.Show(res.Error, WithType(passkey.ToastError))}
	}

	s.session.Update(rec)
	if !s.session.IsValid() {
		s.logger.InfoContext(ctx, "validated key is not usable", "name", rec.Name, "is_active", rec.IsActive)
		if w != nil {
			s.persist.DeleteKeyCookie(w)
		}
		return LoginResult{Result: res, Toast: s.toasts.Show(msgKeyInactive, WithType(passkey.ToastError))}
	}

	s.rememberKey(ctx, w, rec.Key)
	s.logger.InfoContext(ctx, "operator logged in", "name", rec.Name, "is_admin", rec.IsAdmin)
	return LoginResult{Result: res, Toast: s.toasts.Show(msgLoginSucceeded)}
}

// Restore re-validates a remembered key when no valid session exists and
// the saveKey preference is on. It reports whether a valid session exists
// afterwards. A remembered key that fails validation is forgotten.
func (s *PasskeyService) Restore(ctx context.Context, w http.ResponseWriter, r *http.Request) bool {
	if s.session.IsValid() {
		return true
	}

	settings, err := s.persist.LoadSettings(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load settings for restore", "error", err)
	}
	if !settings.SaveKey {
		return false
	}

	key, ok := s.persist.LoadKeyCookie(r)
	if !ok {
		return false
	}

	res := s.validator.Validate(ctx, key)
	rec, ok := res.Record()
	if ok {
		s.session.Update(rec)
	}
	if !ok || !s.session.IsValid() {
		s.session.Reset()
		if w != nil {
			s.persist.DeleteKeyCookie(w)
		}
		msg := res.Error
		if res.Success {
			msg = msgKeyInactive
		}
		s.toasts.Show(msg, WithType(passkey.ToastError))
		s.logger.InfoContext(ctx, "remembered key rejected, cookie cleared")
		return false
	}

	s.toasts.Show(msgRestored)
	return true
}

// Logout clears the session and forgets any remembered key.
func (s *PasskeyService) Logout(_ context.Context, w http.ResponseWriter) passkey.ToastState {
	s.session.Reset()
	if w != nil {
		s.persist.DeleteKeyCookie(w)
	}
	return s.toasts.Show(msgLoggedOut, WithType(passkey.ToastInfo))
}

// StatusResult describes the current session.
type StatusResult struct {
	Authenticated bool
	Key           passkey.KeyRecord
}

// Status returns the current session.
func (s *PasskeyService) Status() StatusResult {
	rec := s.session.Snapshot()
	return StatusResult{Authenticated: rec.IsValid(), Key: rec}
}

// Settings returns the stored preferences, or the defaults.
func (s *PasskeyService) Settings(ctx context.Context) (passkey.Settings, error) {
	return s.persist.LoadSettings(ctx)
}

// UpdateSettings stores next. Turning saveKey off forgets a remembered key
// immediately; turning it on remembers the current valid session's key.
func (s *PasskeyService) UpdateSettings(
	ctx context.Context,
	w http.ResponseWriter,
	next passkey.Settings,
) (passkey.ToastState, error) {
	if err := s.persist.SaveSettings(ctx, next); err != nil {
		return s.toasts.Show("Failed to save settings", WithType(passkey.ToastError)), fmt.Errorf("update settings: %w", err)
	}
	if w != nil {
		rec := s.session.Snapshot()
		switch {
		case !next.SaveKey:
			s.persist.DeleteKeyCookie(w)
		case rec.IsValid():
			s.persist.SaveKeyCookie(w, rec.Key)
		}
	}
	return s.toasts.Show(msgSettingsSaved), nil
}

// Toast returns the current toast state.
func (s *PasskeyService) Toast() passkey.ToastState {
	return s.toasts.Snapshot()
}

// DismissToast hides the current toast.
func (s *PasskeyService) DismissToast() {
	s.toasts.Dismiss()
}

func (s *PasskeyService) rememberKey(ctx context.Context, w http.ResponseWriter, key string) {
	if w == nil {
		return
	}
	settings, err := s.persist.LoadSettings(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load settings, not remembering key", "error", err)
	}
	if settings.SaveKey && err == nil {
		s.persist.SaveKeyCookie(w, key)
		return
	}
	s.persist.DeleteKeyCookie(w)
}
