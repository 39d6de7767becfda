package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mohammedtarek245/real-estate-ai-agent/internal/chats"
	httpmiddleware "github.com/mohammedtarek245/real-estate-ai-agent/internal/http/middleware"
	"github.com/mohammedtarek245/real-estate-ai-agent/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger         *logging.Logger
	ChatHandler    *chats.Handler
	MetricsHandler http.Handler
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		api.Post("/chat", cfg.ChatHandler.Chat)
		api.Get("/chats", cfg.ChatHandler.ListChats)
		api.Get("/messages/{chatID}", cfg.ChatHandler.ListMessages)
		api.Post("/dialect", cfg.ChatHandler.SetDialect)
		api.Get("/dialects", cfg.ChatHandler.ListDialects)
		api.Get("/initial-message", cfg.ChatHandler.InitialMessage)
		api.Post("/session/reset", cfg.ChatHandler.ResetSession)
		api.Get("/session/{chatID}", cfg.ChatHandler.GetSession)
	})

	return r
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
