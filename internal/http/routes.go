package httpx

import (
	"errors"
	"log/slog"
	"net/http"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Passkey PasskeyServiceInterface
	// LoginRateLimit is the per-IP passkey submissions allowed per minute; 0 disables it.
	LoginRateLimit int
	Logger         *slog.Logger // Logger for handler errors (optional)
}

// NewRouter creates and configures the console HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{Svc: services.Passkey, Logger: services.Logger}
	settingsHandlers := &SettingsHandlers{Svc: services.Passkey, Logger: services.Logger}
	toastHandlers := &ToastHandlers{Svc: services.Passkey}

	registerAuthRoutes(mux, authHandlers, services.LoginRateLimit)
	registerAPIRoutes(mux, settingsHandlers, toastHandlers)
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("/", http.HandlerFunc(notFound))

	return mux
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, loginRateLimit int) {
	mux.Handle("POST /auth/passkey", RateLimit(loginRateLimit)(http.HandlerFunc(h.Login)))
	mux.Handle("POST /auth/logout", http.HandlerFunc(h.Logout))
	mux.Handle("GET /auth/status", http.HandlerFunc(h.Status))
}

func registerAPIRoutes(mux *http.ServeMux, settings *SettingsHandlers, toasts *ToastHandlers) {
	mux.Handle("GET /api/settings", http.HandlerFunc(settings.Get))
	mux.Handle("PUT /api/settings", http.HandlerFunc(settings.Update))
	mux.Handle("GET /api/toast", http.HandlerFunc(toasts.Get))
	mux.Handle("DELETE /api/toast", http.HandlerFunc(toasts.Dismiss))
}

func notFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, ErrorParams{
		Code:    http.StatusNotFound,
		ErrCode: "not_found",
		Err:     errors.New("no route for " + r.URL.Path),
	})
}
