package httpx

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trifall/link-shortener-ui/internal/adapters/memory"
	"github.com/trifall/link-shortener-ui/internal/domain/passkey"
	"github.com/trifall/link-shortener-ui/internal/mocks"
	"github.com/trifall/link-shortener-ui/internal/ports"
	"github.com/trifall/link-shortener-ui/internal/service"
	"go.uber.org/mock/gomock"
)

type consoleFixture struct {
	validator *mocks.MockKeyValidator
	svc       *service.PasskeyService
	handler   http.Handler
}

type consoleOptions struct {
	store          ports.Store
	loginRateLimit int
}

func newConsoleFixture(t *testing.T, opts consoleOptions) *consoleFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	validator := mocks.NewMockKeyValidator(ctrl)

	store := opts.store
	if store == nil {
		store = memory.NewStore()
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	persist, err := service.NewPersistence(service.PersistenceOptions{Store: store, Logger: logger})
	require.NoError(t, err)

	toasts := service.NewToastNotifier(service.ToastNotifierOptions{Logger: logger})
	t.Cleanup(toasts.Dismiss)

	svc := service.MustNewPasskeyService(service.PasskeyServiceOptions{
		Validator: validator,
		State: service.PasskeyState{
			Session:     service.NewSessionState(),
			Toasts:      toasts,
			Persistence: persist,
		},
		Logger: logger,
	})

	return &consoleFixture{
		validator: validator,
		svc:       svc,
		handler: NewRouter(RouterServices{
			Passkey:        svc,
			LoginRateLimit: opts.loginRateLimit,
			Logger:         logger,
		}),
	}
}

func (f *consoleFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func operatorRecord() passkey.KeyRecord {
	return passkey.KeyRecord{
		Key:       "abc123",
		Name:      "ops",
		IsActive:  true,
		CreatedAt: "2024-01-01T00:00:00Z",
	}
}

func validated(rec passkey.KeyRecord) passkey.ValidationResult {
	return passkey.Succeeded(&passkey.ValidateKeyResponse{Key: &rec})
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func toastTrigger(t *testing.T, rec *httptest.ResponseRecorder) ToastPayload {
	t.Helper()
	raw := rec.Header().Get("Hx-Trigger")
	require.NotEmpty(t, raw, "expected Hx-Trigger header")
	var m map[string]ToastPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	p, ok := m[ToastEvent]
	require.True(t, ok, "expected %s event in %s", ToastEvent, raw)
	return p
}
