package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strikearena/SA-ReservationService/pkg/authtoken"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func okHandler() (http.Handler, *bool) {
	called := new(bool)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	}), called
}

func TestAuth(t *testing.T) {
	tokens := authtoken.NewManager("test-secret", time.Hour)

	t.Run("валидный токен пропускается, claims в контексте", func(t *testing.T) {
		token, err := tokens.Create("user-1", "user", "ivan@example.com")
		require.NoError(t, err)

		var gotUserID string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUserID, _ = UserIDFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		Auth(tokens, nopLogger{})(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-1", gotUserID)
	})

	t.Run("без заголовка — 401", func(t *testing.T) {
		next, called := okHandler()
		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		rec := httptest.NewRecorder()

		Auth(tokens, nopLogger{})(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, *called)
	})

	t.Run("не Bearer схема — 401", func(t *testing.T) {
		next, called := okHandler()
		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		req.Header.Set("Authorization", "Basic abc")
		rec := httptest.NewRecorder()

		Auth(tokens, nopLogger{})(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, *called)
	})

	t.Run("токен с чужим секретом — 401", func(t *testing.T) {
		otherTokens := authtoken.NewManager("other-secret", time.Hour)
		token, err := otherTokens.Create("user-1", "user", "ivan@example.com")
		require.NoError(t, err)

		next, called := okHandler()
		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		Auth(tokens, nopLogger{})(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, *called)
	})
}

func TestRequireAdmin(t *testing.T) {
	tokens := authtoken.NewManager("test-secret", time.Hour)

	protect := func(next http.Handler) http.Handler {
		return Auth(tokens, nopLogger{})(RequireAdmin(nopLogger{})(next))
	}

	t.Run("админ проходит", func(t *testing.T) {
		token, err := tokens.Create("admin-1", "admin", "admin@example.com")
		require.NoError(t, err)

		next, called := okHandler()
		req := httptest.NewRequest(http.MethodGet, "/admin/reservations", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		protect(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, *called)
	})

	t.Run("обычный пользователь — 403", func(t *testing.T) {
		token, err := tokens.Create("user-1", "user", "ivan@example.com")
		require.NoError(t, err)

		next, called := okHandler()
		req := httptest.NewRequest(http.MethodGet, "/admin/reservations", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		protect(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, *called)
	})
}

func TestRateLimiter(t *testing.T) {
	stopCh := make(chan struct{})
	defer close(stopCh)

	// burst 2: третий запрос подряд с того же IP получает 429
	rl := NewRateLimiter(1, 2, nopLogger{}, stopCh)
	next, _ := okHandler()
	handler := rl.Middleware(next)

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/calendar/2026/9", nil)
		req.RemoteAddr = "10.0.0.1:12345"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)

	// другой IP не задет
	req := httptest.NewRequest(http.MethodGet, "/calendar/2026/9", nil)
	req.RemoteAddr = "10.0.0.2:12345"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
