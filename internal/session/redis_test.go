package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohammedtarek245/real-estate-ai-agent/internal/agent"
)

func testRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := testRedisStore(t, time.Hour)
	ctx := context.Background()

	state := agent.NewState(agent.DialectMSA)
	state.Stage = agent.StageSalesPitch
	state.SalesPitchStage = 3
	state.ShownProperties = []int64{4, 9}

	require.NoError(t, store.Save(ctx, "chat-7", state))

	got, err := store.Get(ctx, "chat-7")
	require.NoError(t, err)
	assert.Equal(t, agent.DialectMSA, got.Dialect)
	assert.Equal(t, agent.StageSalesPitch, got.Stage)
	assert.Equal(t, 3, got.SalesPitchStage)
	assert.Equal(t, []int64{4, 9}, got.ShownProperties)
}

func TestRedisStoreMissingSession(t *testing.T) {
	store, _ := testRedisStore(t, time.Hour)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreSetsTTL(t *testing.T) {
	store, mr := testRedisStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "chat-7", agent.NewState(agent.DialectEgyptian)))

	ttl := mr.TTL(sessionKey("chat-7"))
	assert.Equal(t, time.Hour, ttl)
}

func TestRedisStoreExpiry(t *testing.T) {
	store, mr := testRedisStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "chat-7", agent.NewState(agent.DialectEgyptian)))

	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "chat-7")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreDelete(t *testing.T) {
	store, _ := testRedisStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "chat-7", agent.NewState(agent.DialectEgyptian)))
	require.NoError(t, store.Delete(ctx, "chat-7"))

	_, err := store.Get(ctx, "chat-7")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreRepairsCorruptState(t *testing.T) {
	store, mr := testRedisStore(t, time.Hour)

	require.NoError(t, mr.Set(sessionKey("chat-7"), `{"conversation_stage":"bogus"}`))

	got, err := store.Get(context.Background(), "chat-7")
	require.NoError(t, err)
	assert.Equal(t, agent.StageGreeting, got.Stage)
}
