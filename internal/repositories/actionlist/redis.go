package actionlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/heroactions/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Per-character flag holding the hand
	actionsKeyPrefix = "flags:hero-actions:"
)

var (
	// ErrConflict is returned when a hand changed while an update was in flight
	ErrConflict = errors.New("hero actions changed concurrently")

	// ErrNilMutate is returned when an update has no mutation
	ErrNilMutate = errors.New("mutate function cannot be nil")
)

// Config holds configuration for the Redis action list repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// getter is satisfied by both *redis.Client and *redis.Tx
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// NewRedis creates a new Redis-backed action list repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func actionsKey(characterID string) string {
	return actionsKeyPrefix + characterID
}

// GetActions retrieves a character's hand from Redis
func (r *redisRepository) GetActions(ctx context.Context, input *GetActionsInput) (*GetActionsOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.New("input and character ID cannot be empty")
	}

	actions, err := readActions(ctx, r.client, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &GetActionsOutput{
		Actions: actions,
	}, nil
}

// SetActions replaces a character's hand in Redis
func (r *redisRepository) SetActions(ctx context.Context, input *SetActionsInput) error {
	if input == nil || input.CharacterID == "" {
		return errors.New("input and character ID cannot be empty")
	}

	actionsJSON, err := marshalActions(input.Actions)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, actionsKey(input.CharacterID), actionsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save hero actions: %w", err)
	}

	return nil
}

// UpdateActions applies a mutation to several hands under WATCH so that a
// concurrent write to any of them aborts the whole update
func (r *redisRepository) UpdateActions(ctx context.Context, input *UpdateActionsInput) (*UpdateActionsOutput, error) {
	if input == nil || len(input.CharacterIDs) == 0 {
		return nil, errors.New("input and character IDs cannot be empty")
	}

	if input.Mutate == nil {
		return nil, ErrNilMutate
	}

	keys := make([]string, 0, len(input.CharacterIDs))
	for _, id := range input.CharacterIDs {
		if id == "" {
			return nil, errors.New("character ID cannot be empty")
		}
		keys = append(keys, actionsKey(id))
	}

	var written map[string][]models.ActionToken

	txf := func(tx *redis.Tx) error {
		// Read every hand inside the watch
		hands := make(map[string][]models.ActionToken, len(input.CharacterIDs))
		for _, id := range input.CharacterIDs {
			actions, err := readActions(ctx, tx, id)
			if err != nil {
				return err
			}
			hands[id] = actions
		}

		updated, err := input.Mutate(hands)
		if err != nil {
			return err
		}

		// Queue every write in one MULTI block
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for id, actions := range updated {
				actionsJSON, err := marshalActions(actions)
				if err != nil {
					return err
				}
				pipe.Set(ctx, actionsKey(id), actionsJSON, 0)
			}
			return nil
		})
		if err != nil {
			return err
		}

		written = updated
		return nil
	}

	if err := r.client.Watch(ctx, txf, keys...); err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return nil, ErrConflict
		}
		return nil, err
	}

	return &UpdateActionsOutput{
		Actions: written,
	}, nil
}

// readActions loads a hand, treating a missing key as an empty hand
func readActions(ctx context.Context, g getter, characterID string) ([]models.ActionToken, error) {
	actionsJSON, err := g.Get(ctx, actionsKey(characterID)).Result()
	if err != nil {
		if err == redis.Nil {
			return []models.ActionToken{}, nil
		}
		return nil, fmt.Errorf("failed to get hero actions: %w", err)
	}

	var actions []models.ActionToken
	if err := json.Unmarshal([]byte(actionsJSON), &actions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hero actions: %w", err)
	}

	if actions == nil {
		actions = []models.ActionToken{}
	}

	return actions, nil
}

func marshalActions(actions []models.ActionToken) ([]byte, error) {
	if actions == nil {
		actions = []models.ActionToken{}
	}

	actionsJSON, err := json.Marshal(actions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal hero actions: %w", err)
	}

	return actionsJSON, nil
}
