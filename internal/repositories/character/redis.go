package character

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
	characterKeyPrefix = "character:"
)

var (
	// ErrCharacterNotFound is returned when a character is not found
	ErrCharacterNotFound = errors.New("character not found")

	// ErrInsufficientPoints is returned when a spend exceeds the balance
	ErrInsufficientPoints = errors.New("not enough hero points")

	// ErrConflict is returned when the character changed during a spend
	ErrConflict = errors.New("character changed concurrently")
)

// Config holds configuration for the Redis character repository
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

// NewRedis creates a new Redis-backed character repository
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

func characterKey(characterID string) string {
	return characterKeyPrefix + characterID
}

// SaveCharacter persists a character to Redis
func (r *redisRepository) SaveCharacter(ctx context.Context, input *SaveCharacterInput) error {
	if input == nil || input.Character == nil {
		return errors.New("input and character cannot be nil")
	}

	if input.Character.ID == "" {
		return errors.New("character ID cannot be empty")
	}

	characterJSON, err := json.Marshal(input.Character)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	if err := r.client.Set(ctx, characterKey(input.Character.ID), characterJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save character: %w", err)
	}

	return nil
}

// GetCharacter retrieves a character by ID from Redis
func (r *redisRepository) GetCharacter(ctx context.Context, input *GetCharacterInput) (*models.Character, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.New("input and character ID cannot be empty")
	}

	return readCharacter(ctx, r.client, input.CharacterID)
}

// SpendPoints deducts hero points under WATCH so two spends cannot both pass
// the balance check
func (r *redisRepository) SpendPoints(ctx context.Context, input *SpendPointsInput) (*SpendPointsOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.New("input and character ID cannot be empty")
	}

	if input.Amount < 0 {
		return nil, errors.New("amount cannot be negative")
	}

	var remaining int
	err := r.adjust(ctx, input.CharacterID, func(c *models.Character) error {
		if c.HeroPoints < input.Amount {
			return ErrInsufficientPoints
		}
		c.HeroPoints -= input.Amount
		remaining = c.HeroPoints
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SpendPointsOutput{
		Remaining: remaining,
	}, nil
}

// AddPoints grants hero points
func (r *redisRepository) AddPoints(ctx context.Context, input *AddPointsInput) (*AddPointsOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.New("input and character ID cannot be empty")
	}

	var total int
	err := r.adjust(ctx, input.CharacterID, func(c *models.Character) error {
		c.HeroPoints += input.Amount
		if c.HeroPoints < 0 {
			c.HeroPoints = 0
		}
		total = c.HeroPoints
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AddPointsOutput{
		Total: total,
	}, nil
}

// adjust applies fn to the stored character inside a WATCH transaction
func (r *redisRepository) adjust(ctx context.Context, characterID string, fn func(*models.Character) error) error {
	key := characterKey(characterID)

	txf := func(tx *redis.Tx) error {
		c, err := readCharacter(ctx, tx, characterID)
		if err != nil {
			return err
		}

		if err := fn(c); err != nil {
			return err
		}

		characterJSON, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("failed to marshal character: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, characterJSON, 0)
			return nil
		})
		return err
	}

	if err := r.client.Watch(ctx, txf, key); err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return ErrConflict
		}
		return err
	}

	return nil
}

func readCharacter(ctx context.Context, g getter, characterID string) (*models.Character, error) {
	characterJSON, err := g.Get(ctx, characterKey(characterID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCharacterNotFound
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var c models.Character
	if err := json.Unmarshal([]byte(characterJSON), &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}

	return &c, nil
}
