package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohammedtarek245/real-estate-ai-agent/internal/agent"
	"github.com/mohammedtarek245/real-estate-ai-agent/internal/chats"
	"github.com/mohammedtarek245/real-estate-ai-agent/internal/observability/metrics"
	"github.com/mohammedtarek245/real-estate-ai-agent/internal/property"
	"github.com/mohammedtarek245/real-estate-ai-agent/internal/session"
	"github.com/mohammedtarek245/real-estate-ai-agent/pkg/logging"
)

func testServer(t *testing.T) http.Handler {
	t.Helper()
	dataset := property.NewDataset([]property.Property{
		{ID: 1, Type: "شقة", Location: "Cairo", Neighborhood: "المعادي", Price: 2_000_000, Currency: "جنيه", Bedrooms: 3, Bathrooms: 2, AreaM2: 150},
	})
	logger := logging.NewWithWriter("error", io.Discard)
	reg := prometheus.NewRegistry()
	handler := chats.NewHandler(
		agent.New(dataset, agent.WithLogger(logger)),
		session.NewMemoryStore(time.Hour),
		chats.NewInMemoryRepository(),
		metrics.NewConversationMetrics(reg),
		logger,
		agent.DialectEgyptian,
	)
	return New(&Config{
		Logger:         logger,
		ChatHandler:    handler,
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})
}

func TestHealthEndpoint(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := testServer(t)

	// Drive one turn so the agent metrics have something to report.
	chatReq := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"اهلا"}`))
	chatReq.Header.Set("Content-Type", "application/json")
	srv.ServeHTTP(httptest.NewRecorder(), chatReq)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "realestate_agent_turns_total")
}

func TestChatRouteWired(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"عايز شقة"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "chat_id")
}

func TestUnknownRoute(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
