package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrRequiredFieldsMissing: http.StatusBadRequest,
	validators.ErrInvalidEmailFormat:    http.StatusBadRequest,

	ErrInvalidJSONBody: http.StatusBadRequest,
	ErrInvalidUserID:   http.StatusBadRequest,

	store.ErrUserNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
