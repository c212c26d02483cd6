package httpx

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/trifall/link-shortener-ui/internal/domain/passkey"
)

// ToastEvent is the client-side event that renders a notification.
const ToastEvent = "showToast"

// IsHTMX reports whether the request was initiated by htmx (Hx-Request: true).
func IsHTMX(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Hx-Request"), "true")
}

// SetHXTrigger triggers a client-side event after swap with optional payload.
// It sets the Hx-Trigger response header as a JSON object: {"<event>": <payload>}.
// If payload is nil, the value true is used for the event.
func SetHXTrigger(w http.ResponseWriter, event string, payload any) {
	var value any = true
	if payload != nil {
		value = payload
	}
	m := map[string]any{event: value}
	b, err := json.Marshal(m)
	if err != nil {
		// Fall back to a boolean trigger if payload cannot be serialized
		w.Header().Set("Hx-Trigger", "{\""+event+"\":true}")
		return
	}
	w.Header().Set("Hx-Trigger", string(b))
}

// ToastPayload is the wire form of a toast. Duration is in milliseconds.
type ToastPayload struct {
	ID       string            `json:"id,omitempty"`
	Show     bool              `json:"show"`
	Message  string            `json:"message"`
	Type     passkey.ToastType `json:"type"`
	Duration int64             `json:"duration"`
}

// NewToastPayload converts a toast state to its wire form.
func NewToastPayload(s passkey.ToastState) ToastPayload {
	return ToastPayload{
		ID:       s.ID,
		Show:     s.Show,
		Message:  s.Text,
		Type:     s.Type,
		Duration: s.DurationMillis(),
	}
}

// TriggerToast asks the client to render s. Hidden toasts are not sent.
func TriggerToast(w http.ResponseWriter, s passkey.ToastState) {
	if !s.Show {
		return
	}
	SetHXTrigger(w, ToastEvent, NewToastPayload(s))
}
