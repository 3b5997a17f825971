package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/diegosantosouza/projeto-teste-truther/internal/infrastructure/logging"
)

func TestRequestTracing_GeneratesRequestID(t *testing.T) {
	var ctxID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = logging.RequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	RequestTracing(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/coins", nil))

	assert.NotEmpty(t, ctxID)
	assert.Equal(t, ctxID, rec.Header().Get("X-Request-ID"))
}

func TestRequestTracing_PropagatesIncomingRequestID(t *testing.T) {
	var ctxID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = logging.RequestID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/coins", nil)
	req.Header.Set("X-Request-ID", "upstream-id")

	rec := httptest.NewRecorder()
	RequestTracing(next).ServeHTTP(rec, req)

	assert.Equal(t, "upstream-id", ctxID)
	assert.Equal(t, "upstream-id", rec.Header().Get("X-Request-ID"))
}

func TestResponseWriter_CapturesStatusAndSize(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	rec := httptest.NewRecorder()
	RequestTracing(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())
}

func TestRemoteIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	assert.Equal(t, "10.0.0.1:1234", remoteIP(req))

	req.Header.Set("X-Real-IP", "10.0.0.2")
	assert.Equal(t, "10.0.0.2", remoteIP(req))

	req.Header.Set("X-Forwarded-For", "10.0.0.3")
	assert.Equal(t, "10.0.0.3", remoteIP(req))
}

func TestRemoteIP_MultiHopForwardedChain(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.2, 10.0.0.1")

	// Only the originating client, not the proxy chain.
	assert.Equal(t, "203.0.113.7", remoteIP(req))
}
