package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-user-registry/models"
	"github.com/go-resty/resty/v2"
)

// Sentinel errors mapped from well-known response statuses. Callers match
// against them with [errors.Is]; the returned error also carries the
// server's problem message when one was present.
var (
	// ErrUnauthorized is returned for 401 responses (missing or wrong token).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned for 404 responses (unknown user id).
	ErrNotFound = errors.New("user not found")

	// ErrValidation is returned for 400 responses (missing fields, bad email).
	ErrValidation = errors.New("validation failed")
)

// mapHTTPError converts a non-2xx response into an error. The problem body's
// Message (when decodable) is appended to the matched sentinel; plain-text
// bodies (the 401 path) are used as-is.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	message := string(resp.Body())
	var problem models.Problem
	if err := json.Unmarshal(resp.Body(), &problem); err == nil && problem.Message != "" {
		message = problem.Message
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrValidation, message)
	default:
		return fmt.Errorf("server returned %d: %s", resp.StatusCode(), message)
	}
}
