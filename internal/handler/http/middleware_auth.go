package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-registry/internal/logger"
)

// auth is an HTTP middleware that enforces shared-secret authentication.
//
// It inspects the incoming "Authorization" header and compares its value
// against the configured token as an exact literal, with no scheme prefix.
// On success the request is forwarded unchanged.
//
// The middleware rejects requests with HTTP 401 Unauthorized and a
// plain-text body in two cases:
//   - The "Authorization" header is absent ([ErrMissingAuthToken]).
//   - The header value differs from the token ([ErrInvalidAuthToken]).
//
// Rejections short-circuit the chain: the logging and recovery stages
// behind this middleware never observe the request.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrMissingAuthToken).Send()
			http.Error(w, ErrMissingAuthToken.Error(), http.StatusUnauthorized)
			return
		}

		if authHeader != h.authToken {
			log.Err(ErrInvalidAuthToken).Send()
			http.Error(w, ErrInvalidAuthToken.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
