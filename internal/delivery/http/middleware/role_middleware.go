package middleware

import (
	"net/http"

	"videvida-booking-api/internal/domain/entity"
	"videvida-booking-api/pkg/response"
)

// RequireRoles admits only the listed roles. A mismatched role is sent to
// its own landing route with 303; the guarded handler never runs.
func RequireRoles(allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetUserRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			for _, allowed := range allowedRoles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Redirect(w, entity.DefaultRouteFor(role), "Access restricted for this role")
		})
	}
}

// RequirePaciente admits patients only.
func RequirePaciente(next http.Handler) http.Handler {
	return RequireRoles(entity.RolePaciente)(next)
}

// RequireMedico admits doctors only.
func RequireMedico(next http.Handler) http.Handler {
	return RequireRoles(entity.RoleMedico)(next)
}

// RequireAdmin admits admins only.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRoles(entity.RoleAdmin)(next)
}
