// Package http implements the HTTP transport layer of the user registry.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, metrics, and fault
// recovery are all handled at this layer before requests are forwarded to
// the service layer.
package http
