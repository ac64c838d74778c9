package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplehub/hrm-backend-go/internal/domain/user"
	"github.com/peoplehub/hrm-backend-go/internal/handler/http/response"
)

// RequireAdmin requires the admin role. The token claim is a hint only,
// the current role is read from user_roles so a demoted admin loses
// access without waiting for token expiry.
func RequireAdmin(userRoleRepo user.UserRoleRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, user.ErrAdminAccessRequired)
				return
			}

			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				response.HandleError(w, user.ErrAdminAccessRequired)
				return
			}

			role, err := userRoleRepo.GetRoleByUserID(r.Context(), userID)
			if err != nil {
				response.HandleError(w, user.ErrAdminAccessRequired)
				return
			}

			if role != user.RoleAdmin {
				response.HandleError(w, user.ErrAdminAccessRequired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
