package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/logging"
)

func newStackRouter(buf *bytes.Buffer, h http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Stack(testLogger(buf), nil)...)
	r.Put("/api/v1/{culture}/articles/{id}", h)
	return r
}

func TestStack_FullPipeline(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	router := newStackRouter(&buf, func(w http.ResponseWriter, r *http.Request) {
		if middleware.RequestIDFromContext(r.Context()) == "" {
			t.Error("request ID not in context")
		}
		if middleware.CorrelationIDFromContext(r.Context()) == "" {
			t.Error("correlation ID not in context")
		}
		logging.FromContext(r.Context()).Info("saving article")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"a-1"}`))
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/fr-fr/articles/a-1", http.NoBody)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	reqID := rec.Header().Get("X-Request-ID")
	if reqID == "" {
		t.Fatal("response missing X-Request-ID header")
	}
	if rec.Header().Get("X-Correlation-ID") != reqID {
		t.Errorf("X-Correlation-ID = %q, want request ID %q", rec.Header().Get("X-Correlation-ID"), reqID)
	}

	out := buf.String()
	for _, want := range []string{
		"request started",
		"request completed",
		"route=/api/v1/{culture}/articles/{id}",
		"bytes=12",
		"request_id=" + reqID,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q", want)
		}
	}

	// Handler log lines inherit both IDs from the logging middleware.
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if strings.Contains(line, "saving article") && !strings.Contains(line, "correlation_id="+reqID) {
			t.Errorf("handler log line lacks correlation id: %s", line)
		}
	}
}

func TestStack_RecoversPanicsWithProblemBody(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	router := newStackRouter(&buf, func(http.ResponseWriter, *http.Request) {
		panic("gateway exploded")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/en-us/articles/a-1", http.NoBody)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
	if strings.Contains(rec.Body.String(), "gateway exploded") {
		t.Error("panic value leaked into response body")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response missing X-Request-ID header")
	}
}
