package auth

import (
	"net/http"

	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/pkg/identity"
	"parcel-service/pkg/logger"
)

// Required запрос без токена получает 401, с непроверенным токеном 403.
func Required(log handlerLogger, verifier Verifier) func(http.Handler) http.Handler {
	return middleware(log, verifier, true)
}

// Optional пропускает запрос без токена анонимно. Присланный токен все равно проверяется.
func Optional(log handlerLogger, verifier Verifier) func(http.Handler) http.Handler {
	return middleware(log, verifier, false)
}

func middleware(log handlerLogger, verifier Verifier, required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := identity.BearerToken(r.Header.Get("Authorization"))
			if token == "" {
				if required {
					response.Error(w, log, http.StatusUnauthorized, "unauthorized access")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			caller, err := verifier.Verify(r.Context(), token)
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
					logger.NewField("remote_addr", r.RemoteAddr),
				).Warn("token rejected")

				response.Error(w, log, http.StatusForbidden, "forbidden access")
				return
			}

			next.ServeHTTP(w, r.WithContext(identity.WithIdentity(r.Context(), caller)))
		})
	}
}
