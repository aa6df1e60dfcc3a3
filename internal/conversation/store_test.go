package conversation

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propertychat/internal/config"
	"propertychat/internal/model"
)

func userTurn(content string) model.ConversationTurn {
	return model.ConversationTurn{Role: "user", Content: content}
}

func TestMemoryStore_ReadUnknownUser(t *testing.T) {
	store := NewMemoryStore()

	turns, err := store.Read(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestMemoryStore_FIFOEviction(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := 1; i <= 6; i++ {
		require.NoError(t, store.Append(ctx, "u1", userTurn(fmt.Sprintf("message %d", i))))
	}

	turns, err := store.Read(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, turns, MaxTurns)
	assert.Equal(t, "message 2", turns[0].Content)
	assert.Equal(t, "message 6", turns[4].Content)
}

func TestMemoryStore_UsersIsolated(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "u1", userTurn("hi from u1")))
	require.NoError(t, store.Append(ctx, "u2", userTurn("hi from u2")))

	turns, err := store.Read(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "hi from u1", turns[0].Content)
}

func TestMemoryStore_ReadReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "u1", userTurn("original")))

	turns, err := store.Read(ctx, "u1")
	require.NoError(t, err)
	turns[0].Content = "mutated"

	again, err := store.Read(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].Content)
}

func TestMemoryStore_ConcurrentAppends(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.Append(ctx, "u1", userTurn(fmt.Sprintf("m%d", i)))
		}(i)
	}
	wg.Wait()

	turns, err := store.Read(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, turns, MaxTurns)
}

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	mr := miniredis.RunT(t)
	store, err := NewRedisStore(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRedisStore_FIFOEviction(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	for i := 1; i <= 6; i++ {
		require.NoError(t, store.Append(ctx, "u1", userTurn(fmt.Sprintf("message %d", i))))
	}

	turns, err := store.Read(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, turns, MaxTurns)
	assert.Equal(t, "message 2", turns[0].Content)
	assert.Equal(t, "message 6", turns[4].Content)
}

func TestRedisStore_AppendMultipleTurns(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "u1",
		model.ConversationTurn{Role: "user", Content: "any flats in Yaba?"},
		model.ConversationTurn{Role: "assistant", Content: "here are two options"},
	))

	turns, err := store.Read(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "user", turns[0].Role)
	assert.Equal(t, "assistant", turns[1].Role)
}

func TestRedisStore_ReadUnknownUser(t *testing.T) {
	store := newTestRedisStore(t)

	turns, err := store.Read(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, turns)
}
