package httpx

import "net/http"

// ToastHandlers exposes the notification surface for polling clients.
type ToastHandlers struct {
	Svc PasskeyServiceInterface
}

// Get returns the current toast.
// GET /api/toast.
func (h *ToastHandlers) Get(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, NewToastPayload(h.Svc.Toast()))
}

// Dismiss hides the current toast.
// DELETE /api/toast.
func (h *ToastHandlers) Dismiss(w http.ResponseWriter, _ *http.Request) {
	h.Svc.DismissToast()
	w.WriteHeader(http.StatusNoContent)
}
