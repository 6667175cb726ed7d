package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/utils"
	"github.com/MKhiriev/go-user-registry/models"
	"github.com/go-chi/chi/v5"
)

// Pagination defaults applied when the corresponding query parameter is
// absent or not a number.
const (
	defaultPage     = 1
	defaultPageSize = 10
)

const userUpdatedMessage = "User updated successfully."

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	page := queryInt(r, "page", defaultPage)
	pageSize := queryInt(r, "pageSize", defaultPageSize)

	users, err := h.services.UserService.ListUsers(r.Context(), page, pageSize)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Int("page", page).Int("page_size", pageSize).Int("count", len(users)).Msg("users listed")

	if _, err := utils.WriteJSON(w, users, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing users list response")
	}
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := userIDFromURL(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, user, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing user response")
	}
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.respondError(w, r, ErrInvalidJSONBody)
		return
	}

	created, err := h.services.UserService.CreateUser(r.Context(), user)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Int64("id", created.ID).Msg("user created")

	w.Header().Set("Location", fmt.Sprintf("/users/%d", created.ID))
	if _, err := utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing created user response")
	}
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := userIDFromURL(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.respondError(w, r, ErrInvalidJSONBody)
		return
	}

	if _, err := h.services.UserService.UpdateUser(r.Context(), id, user.Name, user.Email); err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Int64("id", id).Msg("user updated")

	// plain-text confirmation, not JSON
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(userUpdatedMessage)); err != nil {
		log.Err(err).Msg("error writing update confirmation")
	}
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := userIDFromURL(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	removed, err := h.services.UserService.DeleteUser(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Int64("id", id).Msg("user deleted")

	if _, err := utils.WriteJSON(w, removed, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing deleted user response")
	}
}

// respondError is the single failure boundary of the handlers: it translates
// expected conditions (validation, not-found, malformed input) to their
// status codes via statusFromError and surfaces everything else as a 500
// problem response carrying the fault's message.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		h.recordFault(err.Error())
		log.Err(err).Msg("unexpected error in handler")
	} else {
		log.Err(err).Send()
	}

	if _, werr := utils.WriteProblem(w, err.Error(), status); werr != nil {
		log.Err(werr).Msg("error writing problem response")
	}
}

// userIDFromURL parses the {id} chi route parameter.
func userIDFromURL(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, ErrInvalidUserID
	}
	return id, nil
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}

	return value
}
