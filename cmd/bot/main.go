package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/heroactions/internal/bus"
	"github.com/KirkDiggler/heroactions/internal/common/clock"
	"github.com/KirkDiggler/heroactions/internal/common/uuid"
	"github.com/KirkDiggler/heroactions/internal/config"
	"github.com/KirkDiggler/heroactions/internal/dice"
	"github.com/KirkDiggler/heroactions/internal/handlers/discord"
	"github.com/KirkDiggler/heroactions/internal/logging"
	"github.com/KirkDiggler/heroactions/internal/repositories/actionlist"
	"github.com/KirkDiggler/heroactions/internal/repositories/character"
	deckRepo "github.com/KirkDiggler/heroactions/internal/repositories/deck"
	"github.com/KirkDiggler/heroactions/internal/repositories/document"
	"github.com/KirkDiggler/heroactions/internal/repositories/participant"
	"github.com/KirkDiggler/heroactions/internal/services/authority"
	deckService "github.com/KirkDiggler/heroactions/internal/services/deck"
	"github.com/KirkDiggler/heroactions/internal/services/heroactions"
	"github.com/KirkDiggler/heroactions/internal/services/messaging"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logger.Fatalw("Failed to connect to Redis", "addr", cfg.Redis.Addr, "error", err)
	}

	wallClock := &clock.DefaultClock{}
	uuidGenerator := uuid.New()

	// Initialize repositories
	actionRepo, err := actionlist.NewRedis(&actionlist.Config{RedisClient: redisClient})
	if err != nil {
		logger.Fatalw("Failed to create action list repository", "error", err)
	}

	characterRepo, err := character.NewRedis(&character.Config{RedisClient: redisClient})
	if err != nil {
		logger.Fatalw("Failed to create character repository", "error", err)
	}

	decks, err := deckRepo.NewRedis(&deckRepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Fatalw("Failed to create deck repository", "error", err)
	}

	documentRepo, err := document.NewRedis(&document.Config{RedisClient: redisClient})
	if err != nil {
		logger.Fatalw("Failed to create document repository", "error", err)
	}

	participantRepo, err := participant.NewRedis(&participant.Config{
		RedisClient: redisClient,
		PresenceTTL: cfg.Rules.PresenceTTL,
		Clock:       wallClock,
	})
	if err != nil {
		logger.Fatalw("Failed to create participant repository", "error", err)
	}

	// Initialize services
	authoritySvc, err := authority.New(&authority.Config{ParticipantRepo: participantRepo})
	if err != nil {
		logger.Fatalw("Failed to create authority service", "error", err)
	}

	deckSvc, err := deckService.New(&deckService.Config{
		DefaultDeckName: cfg.Rules.DefaultDeckName,
		BuiltinDeckID:   cfg.Rules.BuiltinDeckID,
		DeckRepo:        decks,
		DocumentRepo:    documentRepo,
		Authority:       authoritySvc,
		DiceRoller:      dice.New(&dice.Config{}),
		UUIDGenerator:   uuidGenerator,
	})
	if err != nil {
		logger.Fatalw("Failed to create deck service", "error", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Tone: messaging.MessageTone(cfg.Bot.Tone),
	})
	if err != nil {
		logger.Fatalw("Failed to create messaging service", "error", err)
	}

	packetBus, err := bus.NewRedis(&bus.RedisConfig{RedisClient: redisClient})
	if err != nil {
		logger.Fatalw("Failed to create message bus", "error", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:           cfg.Bot.Token,
		ApplicationID:   cfg.Bot.ApplicationID,
		GuildID:         cfg.Bot.GuildID,
		GMRoleID:        cfg.Bot.GMRoleID,
		NoticeChannelID: cfg.Bot.NoticeChannelID,
		NodeConfig: heroactions.Config{
			Rules: heroactions.Rules{
				HandSize:   cfg.Rules.HandSize,
				FixedDraw:  cfg.Rules.FixedDraw,
				FixedCount: cfg.Rules.FixedCount,
				UseCost:    cfg.Rules.UseCost,
			},
			ActionRepo:    actionRepo,
			CharacterRepo: characterRepo,
			Authority:     authoritySvc,
			Deck:          deckSvc,
			Messaging:     messagingSvc,
			Bus:           packetBus,
			Clock:         wallClock,
			UUIDGenerator: uuidGenerator,
			Logger:        logger.Named("heroactions"),
		},
		Deck:              deckSvc,
		ParticipantRepo:   participantRepo,
		HeartbeatInterval: cfg.Rules.HeartbeatInterval,
		Logger:            logger.Named("discord"),
	})
	if err != nil {
		logger.Fatalw("Failed to create Discord bot", "error", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Start the bot
	if err := bot.Start(ctx); err != nil {
		logger.Fatalw("Failed to start Discord bot", "error", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	stopCtx, cancelStop := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelStop()

	if err := bot.Stop(stopCtx); err != nil {
		logger.Errorw("Error stopping bot", "error", err)
	}
	stop()

	logger.Info("Bot has been shut down")
}
