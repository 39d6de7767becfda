package chats

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohammedtarek245/real-estate-ai-agent/internal/agent"
	"github.com/mohammedtarek245/real-estate-ai-agent/internal/observability/metrics"
	"github.com/mohammedtarek245/real-estate-ai-agent/internal/property"
	"github.com/mohammedtarek245/real-estate-ai-agent/internal/session"
	"github.com/mohammedtarek245/real-estate-ai-agent/pkg/logging"
)

func testHandler(t *testing.T) (*Handler, *InMemoryRepository, session.Store) {
	t.Helper()
	dataset := property.NewDataset([]property.Property{
		{ID: 1, Type: "شقة", Location: "Cairo", Neighborhood: "المعادي", Price: 2_000_000, Currency: "جنيه", Bedrooms: 3, Bathrooms: 2, AreaM2: 150},
		{ID: 2, Type: "شقة", Location: "Cairo", Neighborhood: "مدينتي", Price: 2_300_000, Currency: "جنيه", Bedrooms: 3, Bathrooms: 2, AreaM2: 140},
	})
	logger := logging.NewWithWriter("error", io.Discard)
	a := agent.New(dataset, agent.WithLogger(logger))
	repo := NewInMemoryRepository()
	sessions := session.NewMemoryStore(time.Hour)
	m := metrics.NewConversationMetrics(prometheus.NewRegistry())
	return NewHandler(a, sessions, repo, m, logger, agent.DialectEgyptian), repo, sessions
}

func testRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/chat", h.Chat)
	r.Get("/api/chats", h.ListChats)
	r.Get("/api/messages/{chatID}", h.ListMessages)
	r.Post("/api/dialect", h.SetDialect)
	r.Get("/api/dialects", h.ListDialects)
	r.Get("/api/initial-message", h.InitialMessage)
	r.Post("/api/session/reset", h.ResetSession)
	r.Get("/api/session/{chatID}", h.GetSession)
	return r
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestChatCreatesChatAndReplies(t *testing.T) {
	h, repo, _ := testHandler(t)
	router := testRouter(h)

	rec := postJSON(t, router, "/api/chat", map[string]string{"message": "عايز شقة"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.NotEmpty(t, resp.ChatID)
	assert.NotEmpty(t, resp.Message)

	msgs, err := repo.ListMessages(t.Context(), resp.ChatID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.True(t, msgs[0].IsUser)
	assert.Equal(t, "عايز شقة", msgs[0].Content)
	assert.Equal(t, resp.Message, msgs[1].Content)
}

func TestChatKeepsStateBetweenTurns(t *testing.T) {
	h, _, _ := testHandler(t)
	router := testRouter(h)

	rec := postJSON(t, router, "/api/chat", map[string]string{"message": "اهلا"})
	var first chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))

	rec = postJSON(t, router, "/api/chat", map[string]string{
		"message": "عايز شقة في المعادي",
		"chat_id": first.ChatID,
	})
	var second chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	assert.Equal(t, first.ChatID, second.ChatID)

	req := httptest.NewRequest(http.MethodGet, "/api/session/"+first.ChatID, nil)
	sessionRec := httptest.NewRecorder()
	router.ServeHTTP(sessionRec, req)
	require.Equal(t, http.StatusOK, sessionRec.Code)

	var summary agent.Summary
	require.NoError(t, json.Unmarshal(sessionRec.Body.Bytes(), &summary))
	assert.Equal(t, agent.StageClarifying, summary.Stage)
	require.NotNil(t, summary.Preferences.Type)
	assert.Equal(t, "شقة", *summary.Preferences.Type)
}

func TestChatUnknownChatID(t *testing.T) {
	h, _, _ := testHandler(t)
	router := testRouter(h)

	rec := postJSON(t, router, "/api/chat", map[string]string{"message": "اهلا", "chat_id": "nope"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChatHonorsRequestedDialect(t *testing.T) {
	h, _, _ := testHandler(t)
	router := testRouter(h)

	rec := postJSON(t, router, "/api/chat", map[string]string{"message": "مرحبا", "dialect": "msa"})
	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	req := httptest.NewRequest(http.MethodGet, "/api/session/"+resp.ChatID, nil)
	sessionRec := httptest.NewRecorder()
	router.ServeHTTP(sessionRec, req)

	var summary agent.Summary
	require.NoError(t, json.Unmarshal(sessionRec.Body.Bytes(), &summary))
	assert.Equal(t, agent.DialectMSA, summary.Dialect)
}

func TestListChatsAndMessagesEndpoints(t *testing.T) {
	h, _, _ := testHandler(t)
	router := testRouter(h)

	postJSON(t, router, "/api/chat", map[string]string{"message": "اهلا"})

	req := httptest.NewRequest(http.MethodGet, "/api/chats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var listResp struct {
		Chats []*Chat `json:"chats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
	require.Len(t, listResp.Chats, 1)

	req = httptest.NewRequest(http.MethodGet, "/api/messages/"+listResp.Chats[0].ID, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var msgResp struct {
		Messages []*Message `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msgResp))
	assert.Len(t, msgResp.Messages, 2)
}

func TestMessagesUnknownChat(t *testing.T) {
	h, _, _ := testHandler(t)
	router := testRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/messages/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetDialectEndpoint(t *testing.T) {
	h, _, _ := testHandler(t)
	router := testRouter(h)

	rec := postJSON(t, router, "/api/chat", map[string]string{"message": "اهلا"})
	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	rec = postJSON(t, router, "/api/dialect", map[string]string{"dialect": "khaleeji", "chat_id": resp.ChatID})
	require.Equal(t, http.StatusOK, rec.Code)

	var dialectResp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dialectResp))
	assert.Equal(t, "success", dialectResp.Status)
	assert.Contains(t, dialectResp.Message, "الخليجية")
}

func TestSetDialectRequiresChatID(t *testing.T) {
	h, _, _ := testHandler(t)
	router := testRouter(h)

	rec := postJSON(t, router, "/api/dialect", map[string]string{"dialect": "msa"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDialectsEndpoint(t *testing.T) {
	h, _, _ := testHandler(t)
	router := testRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/dialects", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Dialects []string `json:"dialects"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"egyptian", "khaleeji", "msa"}, resp.Dialects)
}

func TestInitialMessageEndpoint(t *testing.T) {
	h, _, _ := testHandler(t)
	router := testRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/initial-message?dialect=msa", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "أهلاً وسهلاً")
}

func TestResetSessionEndpoint(t *testing.T) {
	h, _, sessions := testHandler(t)
	router := testRouter(h)

	rec := postJSON(t, router, "/api/chat", map[string]string{"message": "اهلا"})
	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	_, err := sessions.Get(t.Context(), resp.ChatID)
	require.NoError(t, err)

	rec = postJSON(t, router, "/api/session/reset", map[string]string{"chat_id": resp.ChatID})
	require.Equal(t, http.StatusOK, rec.Code)

	_, err = sessions.Get(t.Context(), resp.ChatID)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestSessionEndpointUnknownChat(t *testing.T) {
	h, _, _ := testHandler(t)
	router := testRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/session/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
