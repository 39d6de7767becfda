package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/mohammedtarek245/real-estate-ai-agent/internal/agent"
	"github.com/mohammedtarek245/real-estate-ai-agent/internal/api/router"
	"github.com/mohammedtarek245/real-estate-ai-agent/internal/chats"
	appconfig "github.com/mohammedtarek245/real-estate-ai-agent/internal/config"
	"github.com/mohammedtarek245/real-estate-ai-agent/internal/observability/metrics"
	"github.com/mohammedtarek245/real-estate-ai-agent/internal/property"
	"github.com/mohammedtarek245/real-estate-ai-agent/internal/session"
	"github.com/mohammedtarek245/real-estate-ai-agent/pkg/logging"
)

func main() {
	// Load .env in development; a missing file is fine in production.
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting real-estate agent API server",
		"env", cfg.Env,
		"port", cfg.Port,
		"data_source", cfg.DataSource,
	)

	ctx := context.Background()

	dataset, err := loadDataset(ctx, cfg)
	if err != nil {
		logger.Error("failed to load property dataset", "error", err, "source", cfg.DataSource)
		os.Exit(1)
	}
	logger.Info("property dataset loaded", "properties", dataset.Len(), "locations", len(dataset.Locations()))

	conversationAgent := agent.New(dataset, agent.WithLogger(logger))

	sessions, err := buildSessionStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize session store", "error", err)
		os.Exit(1)
	}

	chatRepo, err := buildChatRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize chat repository", "error", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	conversationMetrics := metrics.NewConversationMetrics(registry)

	chatHandler := chats.NewHandler(
		conversationAgent,
		sessions,
		chatRepo,
		conversationMetrics,
		logger,
		agent.Dialect(cfg.DefaultDialect),
	)

	r := router.New(&router.Config{
		Logger:         logger,
		ChatHandler:    chatHandler,
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
	logger.Info("server stopped")
}

func loadDataset(ctx context.Context, cfg *appconfig.Config) (*property.Dataset, error) {
	switch cfg.DataSource {
	case "xlsx":
		return property.LoadXLSX(cfg.DataPath)
	case "postgres":
		return property.LoadPostgres(ctx, cfg.DatabaseURL)
	default:
		return property.LoadCSV(cfg.DataPath)
	}
}

func buildSessionStore(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (session.Store, error) {
	if cfg.SessionBackend != "redis" {
		logger.Info("using in-memory session store", "ttl", cfg.SessionTTL)
		return session.NewMemoryStore(cfg.SessionTTL), nil
	}

	opts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	logger.Info("using redis session store", "addr", cfg.RedisAddr, "ttl", cfg.SessionTTL)
	return session.NewRedisStore(client, cfg.SessionTTL), nil
}

func buildChatRepository(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (chats.Repository, error) {
	if cfg.ChatsDatabaseURL == "" {
		logger.Info("using in-memory chat repository")
		return chats.NewInMemoryRepository(), nil
	}
	pool, err := pgxpool.New(ctx, cfg.ChatsDatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}
	logger.Info("using postgres chat repository")
	return chats.NewPostgresRepository(pool), nil
}
