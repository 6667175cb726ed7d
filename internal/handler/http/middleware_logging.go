package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-user-registry/internal/logger"
)

// withLogging records the method and path of every request before forwarding
// it and buffers the downstream response to capture its full body. Once the
// downstream completes it logs the status code, body, size, and duration,
// then flushes the buffered body to the real output stream.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Msg("request received")

		bw := &bufferedResponseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(bw, r)

		duration := time.Since(start)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", bw.status).
			Dur("duration", duration).
			Int("size", bw.body.Len()).
			Str("body", bw.body.String()).
			Msg("request completed")

		if err := bw.flush(); err != nil {
			log.Err(err).Msg("error flushing buffered response")
		}
	})
}
