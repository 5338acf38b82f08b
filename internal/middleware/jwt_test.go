package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumewise-backend/internal/config"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret:       "test-secret",
		TokenTTL:     20 * time.Minute,
		CookieMaxAge: 24 * time.Hour,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	token, err := GenerateToken(userID, "user@example.com", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestValidateTokenErrors(t *testing.T) {
	cfg := testJWTConfig()

	t.Run("garbage token", func(t *testing.T) {
		_, err := ValidateToken("not-a-token", cfg)
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateToken(uuid.New(), "user@example.com", cfg)
		require.NoError(t, err)

		other := testJWTConfig()
		other.Secret = "different-secret"
		_, err = ValidateToken(token, other)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := testJWTConfig()
		expired.TokenTTL = -time.Minute
		token, err := GenerateToken(uuid.New(), "user@example.com", expired)
		require.NoError(t, err)

		_, err = ValidateToken(token, cfg)
		assert.Error(t, err)
	})
}

func TestAuthMiddleware(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	next := func(w http.ResponseWriter, r *http.Request) {
		gotID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
		require.True(t, ok)
		assert.Equal(t, userID, gotID)

		gotEmail, ok := r.Context().Value(EmailKey).(string)
		require.True(t, ok)
		assert.Equal(t, "user@example.com", gotEmail)

		w.WriteHeader(http.StatusOK)
	}
	handler := AuthMiddleware(next, cfg)

	t.Run("missing cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
		rec := httptest.NewRecorder()

		handler(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "bogus"})
		rec := httptest.NewRecorder()

		handler(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := testJWTConfig()
		expired.TokenTTL = -time.Minute
		token, err := GenerateToken(userID, "user@example.com", expired)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
		rec := httptest.NewRecorder()

		handler(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := GenerateToken(userID, "user@example.com", cfg)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
		rec := httptest.NewRecorder()

		handler(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestSessionCookie(t *testing.T) {
	cfg := testJWTConfig()

	t.Run("development", func(t *testing.T) {
		c := SessionCookie("tok", cfg, false)
		assert.Equal(t, CookieName, c.Name)
		assert.True(t, c.HttpOnly)
		assert.False(t, c.Secure)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
		assert.Equal(t, int((24 * time.Hour).Seconds()), c.MaxAge)
	})

	t.Run("production", func(t *testing.T) {
		c := SessionCookie("tok", cfg, true)
		assert.True(t, c.Secure)
		assert.Equal(t, http.SameSiteNoneMode, c.SameSite)
	})

	t.Run("expired clears session", func(t *testing.T) {
		c := ExpiredSessionCookie(false)
		assert.Equal(t, CookieName, c.Name)
		assert.Empty(t, c.Value)
		assert.Negative(t, c.MaxAge)
	})
}
