package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trifall/link-shortener-ui/internal/adapters/memory"
	"github.com/trifall/link-shortener-ui/internal/domain/passkey"
	"github.com/trifall/link-shortener-ui/internal/mocks"
	"go.uber.org/mock/gomock"
)

func newTestPersistence(t *testing.T, cfg PersistenceConfig) (*Persistence, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	p, err := NewPersistence(PersistenceOptions{Store: store, Config: cfg})
	require.NoError(t, err)
	return p, store
}

func TestNewPersistence_RequiresStore(t *testing.T) {
	_, err := NewPersistence(PersistenceOptions{})
	require.Error(t, err)
}

func TestPersistence_Settings(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults when nothing stored", func(t *testing.T) {
		p, _ := newTestPersistence(t, PersistenceConfig{})
		s, err := p.LoadSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, passkey.Settings{SaveKey: false}, s)
	})

	t.Run("configured default", func(t *testing.T) {
		p, _ := newTestPersistence(t, PersistenceConfig{DefaultSaveKey: true})
		s, err := p.LoadSettings(ctx)
		require.NoError(t, err)
		assert.True(t, s.SaveKey)
	})

	t.Run("round trip", func(t *testing.T) {
		p, store := newTestPersistence(t, PersistenceConfig{})
		require.NoError(t, p.SaveSettings(ctx, passkey.Settings{SaveKey: true}))

		raw, ok, err := store.Get(ctx, SettingsStoreKey)
		require.NoError(t, err)
		require.True(t, ok)
		assert.JSONEq(t, `{"saveKey":true}`, raw)

		s, err := p.LoadSettings(ctx)
		require.NoError(t, err)
		assert.True(t, s.SaveKey)
	})

	t.Run("corrupt value falls back to defaults", func(t *testing.T) {
		p, store := newTestPersistence(t, PersistenceConfig{})
		require.NoError(t, store.Set(ctx, SettingsStoreKey, "{not json"))

		s, err := p.LoadSettings(ctx)
		require.NoError(t, err)
		assert.False(t, s.SaveKey)
	})
}

func TestPersistence_StoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	p, err := NewPersistence(PersistenceOptions{Store: store, Config: PersistenceConfig{DefaultSaveKey: true}})
	require.NoError(t, err)
	ctx := context.Background()

	boom := errors.New("boom")
	store.EXPECT().Get(gomock.Any(), SettingsStoreKey).Return("", false, boom)
	s, err := p.LoadSettings(ctx)
	require.ErrorIs(t, err, boom)
	assert.True(t, s.SaveKey, "defaults accompany the error")

	store.EXPECT().Set(gomock.Any(), SettingsStoreKey, `{"saveKey":false}`).Return(boom)
	require.ErrorIs(t, p.SaveSettings(ctx, passkey.Settings{}), boom)
}

func TestPersistence_SaveKeyCookie(t *testing.T) {
	p, _ := newTestPersistence(t, PersistenceConfig{})
	rec := httptest.NewRecorder()

	p.SaveKeyCookie(rec, "abc 123")

	header := rec.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(header, "link-shortener-key=abc+123;"), header)
	assert.Contains(t, header, "Path=/")
	assert.Contains(t, header, "Max-Age=31536000")
	assert.Contains(t, header, "SameSite=None")
	assert.Contains(t, header, "Secure")
	assert.NotContains(t, header, "Domain=")
}

func TestPersistence_CookieDomain(t *testing.T) {
	p, _ := newTestPersistence(t, PersistenceConfig{CookieDomain: "admin.sho.rt"})
	rec := httptest.NewRecorder()

	p.SaveKeyCookie(rec, "abc123")
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "Domain=admin.sho.rt")
}

func TestPersistence_DeleteKeyCookie(t *testing.T) {
	p, _ := newTestPersistence(t, PersistenceConfig{})
	rec := httptest.NewRecorder()

	p.DeleteKeyCookie(rec)

	header := rec.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(header, "link-shortener-key=;"), header)
	assert.Contains(t, header, "Path=/")
	assert.Contains(t, header, "Expires=Thu, 01 Jan 1970 00:00:00 GMT")
	assert.Contains(t, header, "Max-Age=0")
}

func TestPersistence_LoadKeyCookie(t *testing.T) {
	p, _ := newTestPersistence(t, PersistenceConfig{})

	_, ok := p.LoadKeyCookie(nil)
	assert.False(t, ok, "nil request has no cookie store")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok = p.LoadKeyCookie(req)
	assert.False(t, ok)

	// what SaveKeyCookie writes, LoadKeyCookie reads back
	rec := httptest.NewRecorder()
	p.SaveKeyCookie(rec, "abc 123")
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	key, ok := p.LoadKeyCookie(req)
	assert.True(t, ok)
	assert.Equal(t, "abc 123", key)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: KeyCookieName, Value: "bad%zz"})
	key, ok = p.LoadKeyCookie(req)
	assert.True(t, ok)
	assert.Equal(t, "bad%zz", key, "undecodable values are returned raw")

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: KeyCookieName, Value: ""})
	_, ok = p.LoadKeyCookie(req)
	assert.False(t, ok)
}
