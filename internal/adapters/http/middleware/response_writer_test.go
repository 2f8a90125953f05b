package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_DefaultsToOK(t *testing.T) {
	t.Parallel()

	rw := newResponseWriter(httptest.NewRecorder())

	assert.Equal(t, http.StatusOK, rw.status)
	assert.False(t, rw.wroteHeader)
}

func TestResponseWriter_KeepsFirstStatus(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusConflict)

	assert.Equal(t, http.StatusCreated, rw.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, rw.wroteHeader)
}

func TestResponseWriter_CountsBytes(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	n, err := rw.Write([]byte(`{"id":"a-1",`))
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = rw.Write([]byte(`"culture":"en-us"}`))
	require.NoError(t, err)

	assert.Equal(t, int64(30), rw.bytes)
	assert.True(t, rw.wroteHeader, "Write implies a 200 header")
	assert.Equal(t, `{"id":"a-1","culture":"en-us"}`, rec.Body.String())
}

func TestResponseWriter_WriteAfterStatusKeepsStatus(t *testing.T) {
	t.Parallel()

	rw := newResponseWriter(httptest.NewRecorder())

	rw.WriteHeader(http.StatusNotFound)
	_, _ = rw.Write([]byte("missing"))
	rw.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusNotFound, rw.status)
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	assert.Same(t, rec, rw.Unwrap())
}
