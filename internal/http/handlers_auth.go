package httpx

import (
	"context"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/trifall/link-shortener-ui/internal/domain/passkey"
	"github.com/trifall/link-shortener-ui/internal/service"
)

// PasskeyServiceInterface defines the passkey operations the console exposes.
type PasskeyServiceInterface interface {
	Login(ctx context.Context, w http.ResponseWriter, in service.LoginInput) service.LoginResult
	Restore(ctx context.Context, w http.ResponseWriter, r *http.Request) bool
	Logout(ctx context.Context, w http.ResponseWriter) passkey.ToastState
	Status() service.StatusResult
	Settings(ctx context.Context) (passkey.Settings, error)
	UpdateSettings(ctx context.Context, w http.ResponseWriter, next passkey.Settings) (passkey.ToastState, error)
	Toast() passkey.ToastState
	DismissToast()
}

// AuthHandlers provides HTTP handlers for passkey login, logout and status.
type AuthHandlers struct {
	Svc    PasskeyServiceInterface
	Logger *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

type loginRequest struct {
	Passkey  string `json:"passkey"`
	Remember *bool  `json:"remember,omitempty"`
}

type loginResponse struct {
	Success bool               `json:"success"`
	Error   string             `json:"error,omitempty"`
	Key     *passkey.KeyRecord `json:"key,omitempty"`
}

// Login validates a submitted passkey.
// POST /auth/passkey with a form (passkey, remember) or JSON body.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	in, ok := h.readLoginInput(w, r)
	if !ok {
		return
	}

	out := h.Svc.Login(r.Context(), w, in)
	TriggerToast(w, out.Toast)

	if !out.Authenticated() {
		WriteJSON(w, http.StatusUnauthorized, loginResponse{Success: false, Error: out.Toast.Text})
		return
	}
	rec, _ := out.Result.Record()
	redacted := rec.Redacted()
	WriteJSON(w, http.StatusOK, loginResponse{Success: true, Key: &redacted})
}

func (h *AuthHandlers) readLoginInput(w http.ResponseWriter, r *http.Request) (service.LoginInput, bool) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err == nil && mediaType == "application/json" {
		var req loginRequest
		if !DecodeJSON(w, r, &req) {
			return service.LoginInput{}, false
		}
		return service.LoginInput{Passkey: req.Passkey, Remember: req.Remember}, true
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := r.ParseForm(); err != nil {
		h.logger().DebugContext(r.Context(), "invalid login form", "error", err)
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_form", Err: err})
		return service.LoginInput{}, false
	}
	return service.LoginInput{
		Passkey:  r.PostForm.Get("passkey"),
		Remember: formBool(r, "remember"),
	}, true
}

// formBool reads a checkbox-style form value. An absent field yields nil.
func formBool(r *http.Request, name string) *bool {
	if _, present := r.PostForm[name]; !present {
		return nil
	}
	raw := strings.ToLower(strings.TrimSpace(r.PostForm.Get(name)))
	v := raw == "on"
	if !v {
		parsed, err := strconv.ParseBool(raw)
		v = err == nil && parsed
	}
	return &v
}

// Logout clears the session and the remembered key.
// POST /auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	toast := h.Svc.Logout(r.Context(), w)
	TriggerToast(w, toast)
	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type statusResponse struct {
	Authenticated bool               `json:"authenticated"`
	Key           *passkey.KeyRecord `json:"key,omitempty"`
}

// Status reports the current session, restoring it from a remembered key first.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	h.Svc.Restore(r.Context(), w, r)

	st := h.Svc.Status()
	resp := statusResponse{Authenticated: st.Authenticated}
	if st.Authenticated {
		redacted := st.Key.Redacted()
		resp.Key = &redacted
	}
	WriteJSON(w, http.StatusOK, resp)
}
