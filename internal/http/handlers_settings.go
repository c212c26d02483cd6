package httpx

import (
	"log/slog"
	"net/http"

	"github.com/trifall/link-shortener-ui/internal/domain/passkey"
)

// SettingsHandlers serves the operator preferences.
type SettingsHandlers struct {
	Svc    PasskeyServiceInterface
	Logger *slog.Logger
}

func (h *SettingsHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Get returns the stored settings. A failing store still answers with the defaults.
// GET /api/settings.
func (h *SettingsHandlers) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Svc.Settings(r.Context())
	if err != nil {
		h.logger().WarnContext(r.Context(), "serving default settings", "error", err)
	}
	WriteJSON(w, http.StatusOK, settings)
}

// Update replaces the stored settings.
// PUT /api/settings.
func (h *SettingsHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var next passkey.Settings
	if !DecodeJSON(w, r, &next) {
		return
	}

	toast, err := h.Svc.UpdateSettings(r.Context(), w, next)
	TriggerToast(w, toast)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "failed to update settings", "error", err)
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, next)
}
