package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/utils"
	"github.com/MKhiriev/go-user-registry/models"
)

// recoverFaults is the error-catch stage of the chain: it absorbs any panic
// raised downstream (including inside handlers, though handlers already
// self-guard), records the fault message for the /error route, and converts
// the failure into a generic JSON 500:
//
//	{"error": "Internal server error."}
//
// The fault's own message is never exposed on this path; diagnostics go to
// the log and to GET /error.
func (h *Handler) recoverFaults(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		defer func() {
			if rec := recover(); rec != nil {
				message := fmt.Sprintf("%v", rec)
				h.recordFault(message)

				log.Error().Str("fault", message).Msg("panic recovered in request pipeline")

				_, _ = utils.WriteJSON(w, models.InternalError{Error: "Internal server error."}, http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// errorRoute is the secondary safety net mapped to GET /error. It serves a
// problem body built from the most recent fault absorbed by recoverFaults,
// for faults that were not already answered by that stage.
func (h *Handler) errorRoute(w http.ResponseWriter, r *http.Request) {
	message := h.LastFault()
	if message == "" {
		message = "Internal server error."
	}

	_, _ = utils.WriteProblem(w, message, http.StatusInternalServerError)
}
