package participant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/KirkDiggler/heroactions/internal/common/clock"
	"github.com/KirkDiggler/heroactions/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	participantKeyPrefix = "participant:"
	presenceKeyPrefix    = "presence:"
	participantsKey      = "participants"

	defaultPresenceTTL = 30 * time.Second
)

// ErrParticipantNotFound is returned when a participant is not found
var ErrParticipantNotFound = errors.New("participant not found")

// Config holds configuration for the Redis participant repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// PresenceTTL is how long a heartbeat keeps a participant online
	PresenceTTL time.Duration

	// Clock stamps LastSeen; defaults to the wall clock
	Clock clock.Clock
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client      *redis.Client
	presenceTTL time.Duration
	clock       clock.Clock
}

// NewRedis creates a new Redis-backed participant repository
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

	ttl := cfg.PresenceTTL
	if ttl <= 0 {
		ttl = defaultPresenceTTL
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	return &redisRepository{
		client:      cfg.RedisClient,
		presenceTTL: ttl,
		clock:       clk,
	}, nil
}

// SaveParticipant persists a participant to Redis
func (r *redisRepository) SaveParticipant(ctx context.Context, input *SaveParticipantInput) error {
	if input == nil || input.Participant == nil {
		return errors.New("input and participant cannot be nil")
	}

	p := input.Participant
	if p.ID == "" {
		return errors.New("participant ID cannot be empty")
	}

	participantJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal participant: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, participantKeyPrefix+p.ID, participantJSON, 0)
	pipe.SAdd(ctx, participantsKey, p.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save participant: %w", err)
	}

	return nil
}

// GetParticipant retrieves a participant by ID from Redis
func (r *redisRepository) GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("input and participant ID cannot be empty")
	}

	participantJSON, err := r.client.Get(ctx, participantKeyPrefix+input.ParticipantID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	var p models.Participant
	if err := json.Unmarshal([]byte(participantJSON), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participant: %w", err)
	}

	return &p, nil
}

// Heartbeat refreshes presence and stamps LastSeen
func (r *redisRepository) Heartbeat(ctx context.Context, input *HeartbeatInput) error {
	if input == nil || input.ParticipantID == "" {
		return errors.New("input and participant ID cannot be empty")
	}

	p, err := r.GetParticipant(ctx, &GetParticipantInput{
		ParticipantID: input.ParticipantID,
	})
	if err != nil {
		return err
	}

	p.LastSeen = r.clock.Now()
	participantJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal participant: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, participantKeyPrefix+p.ID, participantJSON, 0)
	pipe.Set(ctx, presenceKeyPrefix+p.ID, p.LastSeen.Unix(), r.presenceTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record heartbeat: %w", err)
	}

	return nil
}

// SetOffline removes the presence key
func (r *redisRepository) SetOffline(ctx context.Context, input *SetOfflineInput) error {
	if input == nil || input.ParticipantID == "" {
		return errors.New("input and participant ID cannot be empty")
	}

	if err := r.client.Del(ctx, presenceKeyPrefix+input.ParticipantID).Err(); err != nil {
		return fmt.Errorf("failed to clear presence: %w", err)
	}

	return nil
}

// GetActiveParticipants lists participants whose presence key is still alive
func (r *redisRepository) GetActiveParticipants(ctx context.Context, input *GetActiveParticipantsInput) (*GetActiveParticipantsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	ids, err := r.client.SMembers(ctx, participantsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	if len(ids) == 0 {
		return &GetActiveParticipantsOutput{
			Participants: []*models.Participant{},
		}, nil
	}

	// Check presence and fetch records in one round trip
	pipe := r.client.Pipeline()
	presence := make([]*redis.IntCmd, len(ids))
	records := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		presence[i] = pipe.Exists(ctx, presenceKeyPrefix+id)
		records[i] = pipe.Get(ctx, participantKeyPrefix+id)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get participant presence: %w", err)
	}

	participants := make([]*models.Participant, 0, len(ids))
	for i := range ids {
		if presence[i].Val() == 0 {
			continue
		}

		participantJSON, err := records[i].Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get participant %s: %w", ids[i], err)
		}

		var p models.Participant
		if err := json.Unmarshal([]byte(participantJSON), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal participant %s: %w", ids[i], err)
		}

		if input.GMOnly && !p.IsGM {
			continue
		}
		participants = append(participants, &p)
	}

	sort.Slice(participants, func(i, j int) bool {
		return participants[i].ID < participants[j].ID
	})

	return &GetActiveParticipantsOutput{
		Participants: participants,
	}, nil
}
