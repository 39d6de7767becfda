package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/mohammedtarek245/real-estate-ai-agent/pkg/logging"
)

func loggedRouter(buf *bytes.Buffer) chi.Router {
	r := chi.NewRouter()
	r.Use(RequestLogger(logging.NewWithWriter("info", buf)))
	r.Get("/api/session/{chatID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

func TestRequestLoggerRecordsStatusAndChatID(t *testing.T) {
	var buf bytes.Buffer
	r := loggedRouter(&buf)

	req := httptest.NewRequest(http.MethodGet, "/api/session/abc-123", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	assert.Contains(t, line, `"status":404`)
	assert.Contains(t, line, `"chat_id":"abc-123"`)
	assert.Contains(t, line, `"path":"/api/session/abc-123"`)
}

func TestRequestLoggerDefaultsStatusAndOmitsChatID(t *testing.T) {
	var buf bytes.Buffer
	r := loggedRouter(&buf)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	assert.Contains(t, line, `"status":200`)
	assert.NotContains(t, line, "chat_id")
}

func TestRequestLoggerKeepsCallerRequestID(t *testing.T) {
	var buf bytes.Buffer
	r := loggedRouter(&buf)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-7")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"request_id":"req-7"`)
}
