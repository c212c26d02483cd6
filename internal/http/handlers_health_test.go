package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthHandler(t *testing.T) {
	cases := []struct {
		method   string
		wantBody string
	}{
		{method: http.MethodGet, wantBody: healthResponse},
		{method: http.MethodHead, wantBody: ""},
	}
	for _, tc := range cases {
		t.Run(tc.method, func(t *testing.T) {
			rec := httptest.NewRecorder()
			healthHandler(rec, httptest.NewRequest(tc.method, "/healthz", nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Fatalf("expected content-type application/json, got %q", ct)
			}
			if cc := rec.Header().Get("Cache-Control"); cc != "no-store" {
				t.Fatalf("expected Cache-Control no-store, got %q", cc)
			}
			if body := rec.Body.String(); body != tc.wantBody {
				t.Fatalf("unexpected body: %q", body)
			}
		})
	}
}
