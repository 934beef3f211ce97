package authorize

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/pkg/identity"
	"parcel-service/internal/service/access"
	"parcel-service/pkg/logger"
)

// Middleware ставится после auth.Required. Для ActionSelf email ресурса берется
// из переменной маршрута {email}, иначе из query параметра email.
func Middleware(log handlerLogger, policy Policy, action access.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			resource := access.Resource{Email: resourceEmail(r)}
			if action == access.ActionSelf && resource.Email == "" {
				response.Error(w, log, http.StatusBadRequest, "user email is required")
				return
			}

			err := policy.Authorize(r.Context(), identity.FromContext(r.Context()), action, resource)
			if err != nil {
				switch {
				case errors.Is(err, access.ErrUnauthenticated):
					response.Error(w, log, http.StatusUnauthorized, "unauthorized access")
				case errors.Is(err, access.ErrForbidden):
					log.With(
						logger.NewField("action", string(action)),
						logger.NewField("path", r.URL.Path),
						logger.NewField("reason", err.Error()),
					).Warn("access denied")
					response.Error(w, log, http.StatusForbidden, "forbidden access")
				default:
					response.Internal(w, log, err)
				}
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RoleCache глобальный middleware, роли вызывающего кэшируются на время запроса.
func RoleCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(access.WithRoleCache(r.Context())))
	})
}

func resourceEmail(r *http.Request) string {
	if email := mux.Vars(r)["email"]; email != "" {
		return email
	}
	return r.URL.Query().Get("email")
}
