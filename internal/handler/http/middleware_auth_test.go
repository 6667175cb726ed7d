package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/stretchr/testify/assert"
)

// ---- Helpers ----

func newAuthHandler(token string) *Handler {
	return &Handler{
		authToken: token,
		logger:    logger.Nop(),
	}
}

// injectNopLogger puts a nop logger into the request context, standing in
// for the trace-ID middleware that normally does it.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- auth middleware tests ----

func TestAuth_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		wantStatus  int
		wantBody    string
		reachesNext bool
	}{
		{
			name:        "exact literal token passes through",
			header:      "valid-token",
			wantStatus:  http.StatusOK,
			reachesNext: true,
		},
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Authorization token is missing.",
		},
		{
			name:       "wrong token",
			header:     "other-token",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid authorization token.",
		},
		{
			name:       "scheme prefix is not stripped",
			header:     "Bearer valid-token",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid authorization token.",
		},
		{
			name:       "case sensitive comparison",
			header:     "Valid-Token",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid authorization token.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthHandler("valid-token")

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.header, next)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.reachesNext, nextCalled, "next handler invocation")
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, strings.TrimSpace(rr.Body.String()))
			}
		})
	}
}

func TestAuth_CustomConfiguredToken(t *testing.T) {
	h := newAuthHandler("s3cret")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rr := executeAuth(h, "s3cret", next)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = executeAuth(h, "valid-token", next)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
