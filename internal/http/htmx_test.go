package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/trifall/link-shortener-ui/internal/domain/passkey"
)

func TestHTMX_RequestDetection(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.Header.Set("Hx-Request", "true")
	if !IsHTMX(r) {
		t.Fatal("expected IsHTMX true")
	}

	r2 := httptest.NewRequest(http.MethodGet, "/x", nil)
	if IsHTMX(r2) {
		t.Fatal("expected default to false")
	}
}

func TestHTMX_TriggerDefaultsToTrue(t *testing.T) {
	rr := httptest.NewRecorder()
	SetHXTrigger(rr, "refresh", nil)
	if got := rr.Header().Get("Hx-Trigger"); got != `{"refresh":true}` {
		t.Fatalf("Hx-Trigger: %q", got)
	}
}

func TestHTMX_TriggerToast(t *testing.T) {
	rr := httptest.NewRecorder()
	TriggerToast(rr, passkey.ToastState{
		ID:       "t-1",
		Show:     true,
		Text:     "Invalid passkey",
		Duration: 3 * time.Second,
		Type:     passkey.ToastError,
	})

	var m map[string]map[string]any
	if err := json.Unmarshal([]byte(rr.Header().Get("Hx-Trigger")), &m); err != nil {
		t.Fatalf("invalid Hx-Trigger JSON: %v", err)
	}
	got := m[ToastEvent]
	if got["id"] != "t-1" || got["message"] != "Invalid passkey" || got["type"] != "error" {
		t.Fatalf("unexpected toast payload: %v", got)
	}
	if got["duration"] != float64(3000) {
		t.Fatalf("duration should be in milliseconds, got %v", got["duration"])
	}
}

func TestHTMX_TriggerToastSkipsHidden(t *testing.T) {
	rr := httptest.NewRecorder()
	TriggerToast(rr, passkey.ToastState{Text: "old"})
	if got := rr.Header().Get("Hx-Trigger"); got != "" {
		t.Fatalf("expected no trigger for hidden toast, got %q", got)
	}
}
