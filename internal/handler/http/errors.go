// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when checking the
// "Authorization" HTTP header. Their messages are written verbatim as the
// plain-text 401 response bodies.
var (
	// ErrMissingAuthToken is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrMissingAuthToken = errors.New("Authorization token is missing.")

	// ErrInvalidAuthToken is returned when the "Authorization" header is
	// present but its value is not the configured shared-secret literal.
	ErrInvalidAuthToken = errors.New("Invalid authorization token.")
)

// Transport-level request errors produced before the service layer is
// reached. Their messages are surfaced in problem responses.
var (
	// ErrInvalidJSONBody is returned when a request body cannot be decoded
	// into the expected JSON shape.
	ErrInvalidJSONBody = errors.New("Invalid JSON was passed")

	// ErrInvalidUserID is returned when the {id} path parameter is not a
	// valid integer.
	ErrInvalidUserID = errors.New("Invalid user id")
)
