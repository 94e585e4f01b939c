package deck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/heroactions/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	deckKeyPrefix = "deck:"
	deckNamesKey  = "deck_names"

	// World setting holding the custom deck reference
	customDeckKey = "settings:custom-deck"
)

var (
	// ErrDeckNotFound is returned when a deck is not found
	ErrDeckNotFound = errors.New("deck not found")

	// ErrConflict is returned when a deck changed during an update
	ErrConflict = errors.New("deck changed concurrently")
)

// Config holds configuration for the Redis deck repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// NewRedis creates a new Redis-backed deck repository
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

func deckKey(deckID string) string {
	return deckKeyPrefix + deckID
}

// SaveDeck persists a deck to Redis
func (r *redisRepository) SaveDeck(ctx context.Context, input *SaveDeckInput) error {
	if input == nil || input.Deck == nil {
		return errors.New("input and deck cannot be nil")
	}

	if input.Deck.ID == "" {
		return errors.New("deck ID cannot be empty")
	}

	deckJSON, err := json.Marshal(input.Deck)
	if err != nil {
		return fmt.Errorf("failed to marshal deck: %w", err)
	}

	pipe := r.client.Pipeline()

	// Save the deck
	pipe.Set(ctx, deckKey(input.Deck.ID), deckJSON, 0)

	// Keep the name-to-deck mapping current
	if input.Deck.Name != "" {
		pipe.HSet(ctx, deckNamesKey, input.Deck.Name, input.Deck.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save deck: %w", err)
	}

	return nil
}

// GetDeck retrieves a deck by ID from Redis
func (r *redisRepository) GetDeck(ctx context.Context, input *GetDeckInput) (*models.Deck, error) {
	if input == nil || input.DeckID == "" {
		return nil, errors.New("input and deck ID cannot be empty")
	}

	return readDeck(ctx, r.client, input.DeckID)
}

// GetDeckByName retrieves a deck through the name index
func (r *redisRepository) GetDeckByName(ctx context.Context, input *GetDeckByNameInput) (*models.Deck, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and deck name cannot be empty")
	}

	deckID, err := r.client.HGet(ctx, deckNamesKey, input.Name).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrDeckNotFound
		}
		return nil, fmt.Errorf("failed to get deck ID for name: %w", err)
	}

	return r.GetDeck(ctx, &GetDeckInput{
		DeckID: deckID,
	})
}

// ListDecks retrieves every indexed deck from Redis
func (r *redisRepository) ListDecks(ctx context.Context, input *ListDecksInput) (*ListDecksOutput, error) {
	names, err := r.client.HGetAll(ctx, deckNamesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list deck names: %w", err)
	}

	if len(names) == 0 {
		return &ListDecksOutput{
			Decks: []*models.Deck{},
		}, nil
	}

	// Get all decks in one round trip
	pipe := r.client.Pipeline()
	deckCommands := make(map[string]*redis.StringCmd, len(names))
	for _, deckID := range names {
		deckCommands[deckID] = pipe.Get(ctx, deckKey(deckID))
	}

	// redis.Nil from a stale index entry is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get decks: %w", err)
	}

	decks := make([]*models.Deck, 0, len(deckCommands))
	for deckID, cmd := range deckCommands {
		deckJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Deck was deleted after it was indexed
				continue
			}
			return nil, fmt.Errorf("failed to get deck %s: %w", deckID, err)
		}

		var d models.Deck
		if err := json.Unmarshal([]byte(deckJSON), &d); err != nil {
			return nil, fmt.Errorf("failed to unmarshal deck %s: %w", deckID, err)
		}
		decks = append(decks, &d)
	}

	return &ListDecksOutput{
		Decks: decks,
	}, nil
}

// DeleteDeck removes a deck from Redis
func (r *redisRepository) DeleteDeck(ctx context.Context, input *DeleteDeckInput) error {
	if input == nil || input.DeckID == "" {
		return errors.New("input and deck ID cannot be empty")
	}

	d, err := r.GetDeck(ctx, &GetDeckInput{
		DeckID: input.DeckID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, deckKey(input.DeckID))
	if d.Name != "" {
		pipe.HDel(ctx, deckNamesKey, d.Name)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete deck: %w", err)
	}

	return nil
}

// UpdateDeck applies a mutation to a deck under WATCH
func (r *redisRepository) UpdateDeck(ctx context.Context, input *UpdateDeckInput) (*models.Deck, error) {
	if input == nil || input.DeckID == "" {
		return nil, errors.New("input and deck ID cannot be empty")
	}

	if input.Mutate == nil {
		return nil, errors.New("mutate function cannot be nil")
	}

	key := deckKey(input.DeckID)
	var updated *models.Deck

	txf := func(tx *redis.Tx) error {
		d, err := readDeck(ctx, tx, input.DeckID)
		if err != nil {
			return err
		}

		if err := input.Mutate(d); err != nil {
			return err
		}

		deckJSON, err := json.Marshal(d)
		if err != nil {
			return fmt.Errorf("failed to marshal deck: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, deckJSON, 0)
			return nil
		})
		if err != nil {
			return err
		}

		updated = d
		return nil
	}

	if err := r.client.Watch(ctx, txf, key); err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return nil, ErrConflict
		}
		return nil, err
	}

	return updated, nil
}

// GetCustomDeckRef returns the world-level custom deck reference
func (r *redisRepository) GetCustomDeckRef(ctx context.Context) (string, error) {
	ref, err := r.client.Get(ctx, customDeckKey).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("failed to get custom deck setting: %w", err)
	}

	return ref, nil
}

// SetCustomDeckRef stores or clears the world-level custom deck reference
func (r *redisRepository) SetCustomDeckRef(ctx context.Context, input *SetCustomDeckRefInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	var err error
	if input.DeckRef == "" {
		err = r.client.Del(ctx, customDeckKey).Err()
	} else {
		err = r.client.Set(ctx, customDeckKey, input.DeckRef, 0).Err()
	}
	if err != nil {
		return fmt.Errorf("failed to save custom deck setting: %w", err)
	}

	return nil
}

func readDeck(ctx context.Context, g getter, deckID string) (*models.Deck, error) {
	deckJSON, err := g.Get(ctx, deckKey(deckID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrDeckNotFound
		}
		return nil, fmt.Errorf("failed to get deck: %w", err)
	}

	var d models.Deck
	if err := json.Unmarshal([]byte(deckJSON), &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal deck: %w", err)
	}

	return &d, nil
}
