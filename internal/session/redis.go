package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/mohammedtarek245/real-estate-ai-agent/internal/agent"
)

const sessionKeyPrefix = "session:"

// RedisStore keeps conversation state in Redis so any instance can serve
// any turn of a conversation.
type RedisStore struct {
	redis  *redis.Client
	tracer trace.Tracer
	ttl    time.Duration
}

// NewRedisStore builds a RedisStore. A non-positive ttl falls back to
// DefaultTTL.
func NewRedisStore(redisClient *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{
		redis:  redisClient,
		tracer: otel.Tracer("realestate.internal.session"),
		ttl:    ttl,
	}
}

func (s *RedisStore) Get(ctx context.Context, chatID string) (*agent.State, error) {
	if chatID == "" {
		return nil, errors.New("session: chatID required")
	}

	ctx, span := s.tracer.Start(ctx, "session.get")
	defer span.End()

	raw, err := s.redis.Get(ctx, sessionKey(chatID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("session: get state: %w", err)
	}

	var state agent.State
	if err := json.Unmarshal(raw, &state); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("session: decode state: %w", err)
	}
	state.Normalize()
	return &state, nil
}

func (s *RedisStore) Save(ctx context.Context, chatID string, state *agent.State) error {
	if chatID == "" {
		return errors.New("session: chatID required")
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("session: encode state: %w", err)
	}

	ctx, span := s.tracer.Start(ctx, "session.save")
	defer span.End()

	if err := s.redis.Set(ctx, sessionKey(chatID), data, s.ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("session: save state: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, chatID string) error {
	if chatID == "" {
		return errors.New("session: chatID required")
	}

	ctx, span := s.tracer.Start(ctx, "session.delete")
	defer span.End()

	if err := s.redis.Del(ctx, sessionKey(chatID)).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("session: delete state: %w", err)
	}
	return nil
}

func sessionKey(chatID string) string {
	return sessionKeyPrefix + chatID
}
