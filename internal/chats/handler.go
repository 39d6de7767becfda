package chats

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mohammedtarek245/real-estate-ai-agent/internal/agent"
	"github.com/mohammedtarek245/real-estate-ai-agent/internal/observability/metrics"
	"github.com/mohammedtarek245/real-estate-ai-agent/internal/session"
	"github.com/mohammedtarek245/real-estate-ai-agent/pkg/logging"
)

// processingErrorReply is returned to the user when a turn cannot be
// processed. The conversation stays usable, so this goes out with HTTP 200.
const processingErrorReply = "عذراً، حدث خطأ في معالجة طلبك. يرجى المحاولة مرة أخرى."

// Handler exposes the chat API: running conversation turns and reading
// back chat history and session state.
type Handler struct {
	agent          *agent.Agent
	sessions       session.Store
	repo           Repository
	metrics        *metrics.ConversationMetrics
	logger         *logging.Logger
	defaultDialect agent.Dialect
}

// NewHandler wires the conversation engine to its storage.
func NewHandler(a *agent.Agent, sessions session.Store, repo Repository, m *metrics.ConversationMetrics, logger *logging.Logger, defaultDialect agent.Dialect) *Handler {
	return &Handler{
		agent:          a,
		sessions:       sessions,
		repo:           repo,
		metrics:        m,
		logger:         logger,
		defaultDialect: defaultDialect,
	}
}

type chatRequest struct {
	Message string `json:"message"`
	ChatID  string `json:"chat_id"`
	Dialect string `json:"dialect"`
}

type chatResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	ChatID  string `json:"chat_id"`
}

// Chat handles POST /api/chat: one conversation turn. A missing chat_id
// starts a new chat.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode chat request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	chatID := req.ChatID
	if chatID == "" {
		chat, err := h.repo.CreateChat(ctx, DefaultChatTitle)
		if err != nil {
			h.logger.Error("failed to create chat", "error", err)
			http.Error(w, "failed to create chat", http.StatusInternalServerError)
			return
		}
		chatID = chat.ID
	} else if _, err := h.repo.GetChat(ctx, chatID); err != nil {
		if errors.Is(err, ErrChatNotFound) {
			http.Error(w, "chat not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to load chat", "error", err, "chat_id", chatID)
		http.Error(w, "failed to load chat", http.StatusInternalServerError)
		return
	}

	if _, err := h.repo.AddMessage(ctx, chatID, req.Message, true); err != nil {
		h.logger.Error("failed to store user message", "error", err, "chat_id", chatID)
	}

	state, err := h.sessions.Get(ctx, chatID)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			h.logger.Error("failed to load session", "error", err, "chat_id", chatID)
		}
		dialect := h.defaultDialect
		if req.Dialect != "" {
			dialect = agent.Dialect(req.Dialect)
		}
		state = agent.NewState(dialect)
	}

	start := time.Now()
	prevStage := state.Stage
	prevShown := len(state.ShownProperties)

	reply, ok := h.processTurn(state, req.Message)
	if !ok {
		writeJSON(w, http.StatusOK, chatResponse{Status: "error", Message: processingErrorReply, ChatID: chatID})
		return
	}

	if err := h.sessions.Save(ctx, chatID, state); err != nil {
		h.logger.Error("failed to save session", "error", err, "chat_id", chatID)
	}
	if _, err := h.repo.AddMessage(ctx, chatID, reply, false); err != nil {
		h.logger.Error("failed to store agent reply", "error", err, "chat_id", chatID)
	}

	h.metrics.ObserveTurn(string(state.Stage), string(state.Dialect), time.Since(start).Seconds())
	if len(state.ShownProperties) > prevShown {
		h.metrics.ObserveRecommendation()
	}
	if state.Stage == agent.StageClosing && prevStage != agent.StageClosing {
		h.metrics.ObserveLeadCaptured()
	}

	writeJSON(w, http.StatusOK, chatResponse{Status: "success", Message: reply, ChatID: chatID})
}

// processTurn runs the agent, converting a panic into a failed turn so one
// malformed message cannot take the server down.
func (h *Handler) processTurn(state *agent.State, message string) (reply string, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("panic while processing turn", "panic", rec)
			ok = false
		}
	}()
	return h.agent.Process(state, message), true
}

// ListChats handles GET /api/chats.
func (h *Handler) ListChats(w http.ResponseWriter, r *http.Request) {
	chatList, err := h.repo.ListChats(r.Context())
	if err != nil {
		h.logger.Error("failed to list chats", "error", err)
		http.Error(w, "failed to list chats", http.StatusInternalServerError)
		return
	}
	if chatList == nil {
		chatList = []*Chat{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"chats": chatList})
}

// ListMessages handles GET /api/messages/{chatID}.
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")
	msgs, err := h.repo.ListMessages(r.Context(), chatID)
	if err != nil {
		if errors.Is(err, ErrChatNotFound) {
			http.Error(w, "chat not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to list messages", "error", err, "chat_id", chatID)
		http.Error(w, "failed to list messages", http.StatusInternalServerError)
		return
	}
	if msgs == nil {
		msgs = []*Message{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": msgs})
}

type dialectRequest struct {
	Dialect string `json:"dialect"`
	ChatID  string `json:"chat_id"`
}

// SetDialect handles POST /api/dialect: switches the dialect of one chat's
// session. An unknown dialect is reported in the message without changing
// anything.
func (h *Handler) SetDialect(w http.ResponseWriter, r *http.Request) {
	var req dialectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ChatID == "" {
		http.Error(w, "chat_id required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	state, err := h.sessions.Get(ctx, req.ChatID)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			h.logger.Error("failed to load session", "error", err, "chat_id", req.ChatID)
			http.Error(w, "failed to load session", http.StatusInternalServerError)
			return
		}
		state = agent.NewState(h.defaultDialect)
	}

	confirmation := h.agent.SetDialect(state, req.Dialect)
	if err := h.sessions.Save(ctx, req.ChatID, state); err != nil {
		h.logger.Error("failed to save session", "error", err, "chat_id", req.ChatID)
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "success", "message": confirmation})
}

// ListDialects handles GET /api/dialects.
func (h *Handler) ListDialects(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"dialects": h.agent.AvailableDialects(),
	})
}

// InitialMessage handles GET /api/initial-message. The optional dialect
// query parameter localizes the greeting.
func (h *Handler) InitialMessage(w http.ResponseWriter, r *http.Request) {
	dialect := h.defaultDialect
	if q := r.URL.Query().Get("dialect"); q != "" {
		dialect = agent.Dialect(q)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": h.agent.Greeting(dialect),
	})
}

type resetRequest struct {
	ChatID string `json:"chat_id"`
}

// ResetSession handles POST /api/session/reset: forgets the conversation
// state while keeping the chat transcript.
func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ChatID == "" {
		http.Error(w, "chat_id required", http.StatusBadRequest)
		return
	}
	if err := h.sessions.Delete(r.Context(), req.ChatID); err != nil {
		h.logger.Error("failed to reset session", "error", err, "chat_id", req.ChatID)
		http.Error(w, "failed to reset session", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "success"})
}

// GetSession handles GET /api/session/{chatID}: a condensed view of the
// conversation state.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")
	state, err := h.sessions.Get(r.Context(), chatID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to load session", "error", err, "chat_id", chatID)
		http.Error(w, "failed to load session", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, h.agent.StateSummary(state))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
