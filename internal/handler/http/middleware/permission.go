package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/nexhr/hrms-backend-go/internal/domain/user"
	"github.com/nexhr/hrms-backend-go/internal/handler/http/response"
)

// RequirePermission gates a route on the role's capability set. Roles
// map to capabilities in the user domain; routes never check role names
// directly.
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, user.ErrPermissionRequired)
				return
			}

			role, ok := claims["role"].(string)
			if !ok || !user.HasPermission(user.Role(role), permission) {
				response.HandleError(w, user.ErrPermissionRequired)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
