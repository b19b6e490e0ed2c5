package middleware

import (
	"net/http"

	"blood-donation-api/internal/domain/entity"
	"blood-donation-api/pkg/response"
)

// RequireRole creates a middleware that checks if the authenticated
// role is one of the allowed roles. It must run after Authenticate; a
// missing authenticated context is a broken pipeline and is rejected,
// never silently passed.
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireMedecin is a convenience middleware for staff-only endpoints
func RequireMedecin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleMedecin)(next)
}

// RequireDonneur is a convenience middleware for donor-only endpoints
func RequireDonneur(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDonneur)(next)
}
