package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/heroactions/internal/models"
	participantRepo "github.com/KirkDiggler/heroactions/internal/repositories/participant"
	"github.com/KirkDiggler/heroactions/internal/services/deck"
	"github.com/KirkDiggler/heroactions/internal/services/heroactions"
	"github.com/KirkDiggler/heroactions/internal/services/notice"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	host       *Host
	notices    *ChannelNotifier
	config     *Config
	logger     *zap.SugaredLogger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// GMRoleID marks members holding this role as game masters
	GMRoleID string

	// NoticeChannelID receives every notice when set; otherwise notices go
	// where the participant last used a command
	NoticeChannelID string

	// NodeConfig is copied for every participant's node. Participant and
	// Notifier are filled in per node.
	NodeConfig heroactions.Config

	Deck              deck.Service
	ParticipantRepo   participantRepo.Repository
	HeartbeatInterval time.Duration
	Logger            *zap.SugaredLogger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.Deck == nil {
		return nil, errors.New("deck service cannot be nil")
	}

	if cfg.ParticipantRepo == nil {
		return nil, errors.New("participant repository cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	notices := NewChannelNotifier(session, cfg.NoticeChannelID)

	host, err := NewHost(&HostConfig{
		ParticipantRepo:   cfg.ParticipantRepo,
		NewNode:           nodeFactory(cfg.NodeConfig, notices, logger),
		HeartbeatInterval: cfg.HeartbeatInterval,
		Logger:            logger.Named("host"),
	})
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		host:       host,
		notices:    notices,
		config:     cfg,
		logger:     logger,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// nodeFactory builds nodes from the template, sending their notices both to
// the log and to Discord
func nodeFactory(template heroactions.Config, notices *ChannelNotifier, logger *zap.SugaredLogger) NodeFactory {
	return func(p *models.Participant) (heroactions.Service, error) {
		cfg := template
		cfg.Participant = p
		cfg.Notifier = notice.Multi{
			notice.NewLogNotifier(logger.Named("notice")),
			notices,
		}
		if cfg.Logger == nil {
			cfg.Logger = logger.Named("node")
		}
		node, err := heroactions.New(&cfg)
		if err != nil {
			return nil, err
		}
		return node, nil
	}
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start(ctx context.Context) error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	b.host.Start(ctx)

	heroCmd, err := NewHeroCommand(&HeroCommandConfig{
		Nodes:    b.host,
		Deck:     b.config.Deck,
		Notices:  b.notices,
		GMRoleID: b.config.GMRoleID,
		Logger:   b.logger.Named("command"),
	})
	if err != nil {
		return err
	}

	if err := b.RegisterCommand(heroCmd); err != nil {
		return fmt.Errorf("failed to register hero command: %w", err)
	}

	b.logger.Info("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop(ctx context.Context) error {
	b.host.Stop(ctx)

	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warnw("failed to delete command", "command", cmdName, "id", cmdID, "error", err)
		} else {
			b.logger.Infow("deleted command", "command", cmdName, "id", cmdID)
		}
	}

	return b.session.Close()
}

// appID falls back to the session user when no application ID is configured
func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	if b.config.GuildID != "" {
		b.logger.Infow("registering command", "command", cmd.GetName(), "guild", b.config.GuildID)
	} else {
		b.logger.Infow("registering command globally", "command", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Infow("registered command", "command", cmd.GetName(), "id", createdCmd.ID)

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	if h, ok := b.commands[name]; ok {
		if err := h.Handle(s, i); err != nil {
			b.logger.Errorw("error handling command", "command", name, "error", err)
		}
	}
}
