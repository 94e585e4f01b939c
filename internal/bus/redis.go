package bus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const subscriptionBuffer = 10

// RedisConfig holds configuration for the Redis bus
type RedisConfig struct {
	RedisClient *redis.Client
}

type redisBus struct {
	client *redis.Client
}

// NewRedis creates a bus on Redis Pub/Sub
func NewRedis(cfg *RedisConfig) (*redisBus, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisBus{
		client: cfg.RedisClient,
	}, nil
}

// Publish sends the packet on the addressee's channel
func (b *redisBus) Publish(ctx context.Context, packet *Packet) error {
	if packet == nil {
		return errors.New("packet cannot be nil")
	}

	if packet.To == "" {
		return ErrNoRecipient
	}

	data, err := json.Marshal(packet)
	if err != nil {
		return fmt.Errorf("failed to marshal packet: %w", err)
	}

	if err := b.client.Publish(ctx, PacketChannel(packet.To), data).Err(); err != nil {
		return fmt.Errorf("failed to publish %s packet: %w", packet.Type, err)
	}

	return nil
}

// Subscribe listens on the participant's channel. The subscription is
// confirmed before returning so packets published afterwards are received.
func (b *redisBus) Subscribe(ctx context.Context, participantID string) (*Subscription, error) {
	if participantID == "" {
		return nil, errors.New("participant ID cannot be empty")
	}

	pubsub := b.client.Subscribe(ctx, PacketChannel(participantID))
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	packetsChan := make(chan *Packet, subscriptionBuffer)
	errorsChan := make(chan error, subscriptionBuffer)

	subCtx, cancelFunc := context.WithCancel(ctx)

	go func() {
		defer close(packetsChan)
		defer close(errorsChan)
		defer pubsub.Close()

		ch := pubsub.Channel()

		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}

				var packet Packet
				if err := json.Unmarshal([]byte(msg.Payload), &packet); err != nil {
					select {
					case errorsChan <- fmt.Errorf("failed to unmarshal packet: %w", err):
					case <-subCtx.Done():
						return
					}
					continue
				}

				select {
				case packetsChan <- &packet:
				case <-subCtx.Done():
					return
				}
			}
		}
	}()

	return &Subscription{
		packets: packetsChan,
		errors:  errorsChan,
		cancel:  cancelFunc,
	}, nil
}
