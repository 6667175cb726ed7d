package http

import (
	"sync"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/service"
)

type Handler struct {
	services *service.Services

	// authToken is the shared-secret literal every request must present
	// in its Authorization header.
	authToken string

	// lastFault holds the message of the most recent fault absorbed by
	// the recovery middleware, served back on GET /error.
	faultMu   sync.RWMutex
	lastFault string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		authToken: cfg.AuthToken,
		logger:    logger,
	}
}

func (h *Handler) recordFault(message string) {
	h.faultMu.Lock()
	defer h.faultMu.Unlock()
	h.lastFault = message
}

func (h *Handler) LastFault() string {
	h.faultMu.RLock()
	defer h.faultMu.RUnlock()
	return h.lastFault
}
