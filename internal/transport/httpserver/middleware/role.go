package middleware

import (
	"net/http"

	userdomain "testtrack/internal/domain/user"
	"testtrack/pkg/logger"
)

// RequireRole lets the request through only when the session user has one of
// the given roles. It must run after Sessions.Middleware.
func RequireRole(log logger.Logger, roles ...userdomain.Role) func(http.Handler) http.Handler {
	allowed := make(map[userdomain.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				unauthorized(w)
				return
			}
			if _, ok := allowed[user.Role]; !ok {
				log.Warn("auth: role not allowed", "user_id", user.ID, "role", user.Role, "method", r.Method, "path", r.URL.Path)
				writeError(w, http.StatusForbidden, "Forbidden", "User does not have access to this route")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
