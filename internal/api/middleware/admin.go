package middleware

import (
	"net/http"

	"github.com/strikearena/SA-ReservationService/internal/api/handlers"
	"github.com/strikearena/SA-ReservationService/internal/domain"
)

const msgAdminOnly = "доступ только для администратора"

// RequireAdmin пропускает только пользователей с ролью admin.
// Должен стоять после Auth.
func RequireAdmin(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logger.Warn("RequireAdmin: no claims in context, path=%s", r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			if claims.Role != string(domain.RoleAdmin) {
				logger.Warn("RequireAdmin: user=%s role=%s denied, path=%s",
					claims.Subject, claims.Role, r.URL.Path)
				handlers.RespondForbidden(w, msgAdminOnly)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
