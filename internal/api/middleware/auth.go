package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/strikearena/SA-ReservationService/internal/api/handlers"
	"github.com/strikearena/SA-ReservationService/pkg/authtoken"
)

const (
	msgMissingToken = "требуется авторизация"
	msgInvalidToken = "недействительный токен"
)

type ctxKey string

const claimsKey ctxKey = "authClaims"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TokenParser интерфейс разбора JWT токена
type TokenParser interface {
	Parse(tokenStr string) (*authtoken.Claims, error)
}

// Auth проверяет заголовок Authorization: Bearer <token> и кладет
// claims в контекст запроса
func Auth(tokens TokenParser, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				logger.Warn("Auth: missing authorization header, path=%s", r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				logger.Warn("Auth: malformed authorization header, path=%s", r.URL.Path)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			claims, err := tokens.Parse(tokenStr)
			if err != nil {
				logger.Warn("Auth: invalid token, path=%s: %v", r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext достает claims, положенные Auth middleware
func ClaimsFromContext(ctx context.Context) (*authtoken.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*authtoken.Claims)
	return claims, ok
}

// UserIDFromContext достает ID пользователя из claims
func UserIDFromContext(ctx context.Context) (string, bool) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return "", false
	}
	return claims.Subject, true
}
