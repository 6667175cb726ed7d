// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
)

// bufferedResponseWriter is a decorator around [http.ResponseWriter] that
// holds back everything the downstream handler writes. The status code and
// body are retained in memory until flush is called, which lets the logging
// middleware record the complete response before a single byte reaches the
// client.
//
// Header values pass straight through to the underlying writer's header map,
// so handlers may set headers at any point before flush.
type bufferedResponseWriter struct {
	http.ResponseWriter

	// status is the HTTP status code recorded on the first WriteHeader call.
	status int

	// wroteHeader reports whether WriteHeader has already been called. It
	// guards against recording a second status code, mirroring the
	// behaviour documented by the [http.ResponseWriter] interface.
	wroteHeader bool

	// body accumulates every Write call in order.
	body bytes.Buffer
}

// WriteHeader records the status code without forwarding it. Subsequent
// calls are silently ignored.
func (w *bufferedResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
}

// Write appends b to the in-memory buffer. If WriteHeader has not been
// called yet, it implicitly records [http.StatusOK], matching the standard
// library's response writer.
func (w *bufferedResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.body.Write(b)
}

// flush replays the recorded status code and buffered body onto the real
// [http.ResponseWriter]. A response on which the downstream never called
// Write nor WriteHeader flushes as an empty 200, same as the standard
// library's implicit behaviour.
func (w *bufferedResponseWriter) flush() error {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	w.ResponseWriter.WriteHeader(w.status)
	_, err := w.ResponseWriter.Write(w.body.Bytes())
	return err
}
