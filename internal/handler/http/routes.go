package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Init assembles the router. Every API route sits behind the fixed chain
// (outermost first): trace-ID, authentication, logging, metrics, fault
// recovery, then dispatch. Authentication failures short-circuit before the
// logging stage; the recovery stage is the innermost wrapper so its 500
// response is still captured by the logging buffer.
//
// /metrics is the only route outside the chain: it is an operational
// endpoint scraped without credentials.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(h.withTraceID)
		r.Use(h.auth)
		r.Use(h.withLogging)
		r.Use(h.withMetrics)
		r.Use(h.recoverFaults)

		r.Get("/users", h.listUsers)
		r.Get("/users/{id}", h.getUser)
		r.Post("/users", h.createUser)
		r.Put("/users/{id}", h.updateUser)
		r.Delete("/users/{id}", h.deleteUser)

		r.Get("/error", h.errorRoute)
	})

	router.Handle("/metrics", promhttp.Handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
