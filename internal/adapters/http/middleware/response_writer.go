// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// Stack assembles the standard chain in this order:
//
//	Recovery -> RequestID -> CorrelationID -> OpenTelemetry -> Logging -> Handler
//
// The router adds Timeout to the API group only, so health probes are never
// cut short by the request deadline.
package middleware

import "net/http"

// responseWriter records the status and body size a handler produced. Recovery
// uses it to decide whether a problem body can still be written; otel and
// logging report from it.
type responseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	bytes       int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader keeps the first status code and ignores later calls.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.wroteHeader {
		return
	}
	rw.status = code
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
