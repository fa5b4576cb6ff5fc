package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAdminPassthroughWhenUnconfigured(t *testing.T) {
	guard := RequireAdmin(nil, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/clear-boxers", nil)
	rec := httptest.NewRecorder()

	guard(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdminRejectsMissingHeader(t *testing.T) {
	mgr := NewManager(TokenConfig{Secret: []byte("test-secret")})
	guard := RequireAdmin(mgr, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/clear-boxers", nil)
	rec := httptest.NewRecorder()

	guard(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdminAcceptsValidToken(t *testing.T) {
	mgr := NewManager(TokenConfig{Secret: []byte("test-secret")})
	guard := RequireAdmin(mgr, zerolog.Nop())

	token, err := mgr.GenerateToken("ops")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/clear-boxers", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	guard(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdminRejectsBadToken(t *testing.T) {
	mgr := NewManager(TokenConfig{Secret: []byte("test-secret")})
	guard := RequireAdmin(mgr, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/clear-boxers", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()

	guard(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
