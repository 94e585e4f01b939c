package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/heroactions/internal/models"
	"github.com/redis/go-redis/v9"
)

const documentKeyPrefix = "document:"

// ErrDocumentNotFound is returned when no document has the reference
var ErrDocumentNotFound = errors.New("document not found")

// Config holds configuration for the Redis document repository
type Config struct {
	RedisClient *redis.Client
}

type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed document repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func (r *redisRepository) SaveDocument(ctx context.Context, input *SaveDocumentInput) error {
	if input == nil || input.Document == nil {
		return errors.New("input and document cannot be nil")
	}

	if input.Document.ID == "" {
		return errors.New("document ID cannot be empty")
	}

	documentJSON, err := json.Marshal(input.Document)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	if err := r.client.Set(ctx, documentKeyPrefix+input.Document.ID, documentJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	return nil
}

func (r *redisRepository) GetDocument(ctx context.Context, input *GetDocumentInput) (*models.Document, error) {
	if input == nil || input.Reference == "" {
		return nil, errors.New("input and reference cannot be empty")
	}

	documentJSON, err := r.client.Get(ctx, documentKeyPrefix+input.Reference).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal([]byte(documentJSON), &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}

	return &doc, nil
}
