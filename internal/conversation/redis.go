package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"propertychat/internal/config"
	"propertychat/internal/model"
)

// RedisStore keeps conversation histories in Redis lists, one list per
// user, trimmed server-side to MaxTurns. It shares the same advisory-only
// semantics as MemoryStore but survives restarts and can be shared
// between replicas.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed conversation store
func NewRedisStore(cfg config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// Close closes the underlying Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func contextKey(userID string) string {
	return "chat:context:" + userID
}

// Read returns the user's history in order, oldest first
func (s *RedisStore) Read(ctx context.Context, userID string) ([]model.ConversationTurn, error) {
	raw, err := s.client.LRange(ctx, contextKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read conversation context: %w", err)
	}

	turns := make([]model.ConversationTurn, 0, len(raw))
	for _, item := range raw {
		var turn model.ConversationTurn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			// Skip entries written by incompatible versions.
			continue
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

// Append pushes turns and trims the list to the newest MaxTurns entries
func (s *RedisStore) Append(ctx context.Context, userID string, turns ...model.ConversationTurn) error {
	if len(turns) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(turns))
	for _, turn := range turns {
		data, err := json.Marshal(turn)
		if err != nil {
			return fmt.Errorf("failed to marshal conversation turn: %w", err)
		}
		values = append(values, data)
	}

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, contextKey(userID), values...)
	pipe.LTrim(ctx, contextKey(userID), -MaxTurns, -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append conversation turns: %w", err)
	}
	return nil
}
