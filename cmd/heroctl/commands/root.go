package commands

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/heroactions/internal/config"
	"github.com/KirkDiggler/heroactions/internal/repositories/character"
	"github.com/KirkDiggler/heroactions/internal/repositories/deck"
	"github.com/KirkDiggler/heroactions/internal/repositories/document"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// Stores are the repositories the admin commands write to
type Stores struct {
	Characters character.Repository
	Decks      deck.Repository
	Documents  document.Repository

	// Close releases the connection behind the stores
	Close func() error
}

// StoreOpener connects to the stores; swapped out in tests
type StoreOpener func(ctx context.Context) (*Stores, error)

// OpenRedisStores connects using the REDIS_* environment, reading .env first
func OpenRedisStores(ctx context.Context) (*Stores, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	cfg, err := config.LoadRedis()
	if err != nil {
		return nil, fmt.Errorf("parse redis config: %w", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Addr, err)
	}

	return NewStores(client)
}

// NewStores builds the Redis repositories on an open client
func NewStores(client *redis.Client) (*Stores, error) {
	characters, err := character.NewRedis(&character.Config{RedisClient: client})
	if err != nil {
		return nil, err
	}

	decks, err := deck.NewRedis(&deck.Config{RedisClient: client})
	if err != nil {
		return nil, err
	}

	documents, err := document.NewRedis(&document.Config{RedisClient: client})
	if err != nil {
		return nil, err
	}

	return &Stores{
		Characters: characters,
		Decks:      decks,
		Documents:  documents,
		Close:      client.Close,
	}, nil
}

// NewRootCmd builds the heroctl command tree
func NewRootCmd(open StoreOpener) *cobra.Command {
	root := &cobra.Command{
		Use:   "heroctl",
		Short: "Manage characters, decks and documents for the hero actions bot",
		Long: `heroctl seeds the data the hero actions bot plays with: the characters
that hold hero actions, the decks they draw from and the documents deck
entries point at.

Connection settings come from REDIS_ADDR, REDIS_PASSWORD and REDIS_DB,
or a .env file in the working directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(
		newCharacterCmd(open),
		newDeckCmd(open),
		newDocumentCmd(open),
	)

	return root
}

// withStores opens the stores for the duration of one command
func withStores(cmd *cobra.Command, open StoreOpener, fn func(ctx context.Context, stores *Stores) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	stores, err := open(ctx)
	if err != nil {
		return err
	}
	if stores.Close != nil {
		defer stores.Close()
	}

	return fn(ctx, stores)
}
