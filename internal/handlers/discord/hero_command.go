package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/heroactions/internal/models"
	"github.com/KirkDiggler/heroactions/internal/services/deck"
	"github.com/KirkDiggler/heroactions/internal/services/heroactions"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// NodeSource hands out the node acting for a participant
type NodeSource interface {
	Node(ctx context.Context, p *models.Participant) (heroactions.Service, error)
}

// HeroCommand handles the /hero command
type HeroCommand struct {
	BaseCommand
	nodes    NodeSource
	deck     deck.Service
	notices  *ChannelNotifier
	gmRoleID string
	logger   *zap.SugaredLogger
}

// HeroCommandConfig holds the dependencies of the /hero command
type HeroCommandConfig struct {
	Nodes    NodeSource
	Deck     deck.Service
	Notices  *ChannelNotifier
	GMRoleID string
	Logger   *zap.SugaredLogger
}

func characterOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "character",
		Description: description,
		Required:    true,
	}
}

func actionOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

// NewHeroCommand creates the /hero command handler
func NewHeroCommand(cfg *HeroCommandConfig) (*HeroCommand, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Nodes == nil {
		return nil, errors.New("node source cannot be nil")
	}

	if cfg.Deck == nil {
		return nil, errors.New("deck service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &HeroCommand{
		BaseCommand: BaseCommand{
			Name:        "hero",
			Description: "Hero action commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "hand",
					Description: "Show a character's hero actions",
					Options:     []*discordgo.ApplicationCommandOption{characterOption("Character to show")},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "draw",
					Description: "Draw hero actions from the deck",
					Options:     []*discordgo.ApplicationCommandOption{characterOption("Character drawing")},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "discard",
					Description: "Discard a hero action",
					Options: []*discordgo.ApplicationCommandOption{
						characterOption("Character discarding"),
						actionOption("action", "Action uuid to discard", true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "use",
					Description: "Spend hero points to use a hero action",
					Options: []*discordgo.ApplicationCommandOption{
						characterOption("Character acting"),
						actionOption("action", "Action uuid to use", true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "trade",
					Description: "Offer one of your hero actions for another character's",
					Options: []*discordgo.ApplicationCommandOption{
						characterOption("Your character"),
						actionOption("action", "Action uuid you give", true),
						actionOption("target", "Character you trade with", true),
						actionOption("target_action", "Action uuid you want; leave empty to let them choose", false),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "trades",
					Description: "List trades waiting for your answer",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "accept",
					Description: "Accept a trade",
					Options: []*discordgo.ApplicationCommandOption{
						actionOption("trade", "Trade id", true),
						actionOption("action", "Action uuid you give, if not already chosen", false),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reject",
					Description: "Reject a trade",
					Options: []*discordgo.ApplicationCommandOption{
						actionOption("trade", "Trade id", true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "give",
					Description: "GM: give deck entries to a character",
					Options: []*discordgo.ApplicationCommandOption{
						characterOption("Character receiving"),
						actionOption("entries", "Comma separated deck entry ids", true),
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "mark_drawn",
							Description: "Mark the entries as drawn in the deck",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove",
					Description: "GM: take hero actions from a character",
					Options: []*discordgo.ApplicationCommandOption{
						characterOption("Character losing actions"),
						actionOption("actions", "Comma separated action uuids", true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "setup",
					Description: "GM: create the world hero action deck",
				},
			},
		},
		nodes:    cfg.Nodes,
		deck:     cfg.Deck,
		notices:  cfg.Notices,
		gmRoleID: cfg.GMRoleID,
		logger:   logger,
	}, nil
}

// Handle processes a Discord interaction for the hero command
func (c *HeroCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	if i.Member == nil || i.Member.User == nil {
		return RespondWithEphemeralMessage(s, i, "Hero actions only work inside a server.")
	}

	participant := c.participant(i.Member)
	if c.notices != nil {
		c.notices.Remember(participant.ID, i.ChannelID)
	}

	sub := data.Options[0]
	r, err := c.run(context.Background(), participant, sub.Name, optionMap(sub.Options))
	if err != nil {
		c.logger.Infow("hero command failed",
			"subcommand", sub.Name,
			"participant", participant.ID,
			"error", err,
		)
		return RespondWithError(s, i, errorText(err))
	}

	return respond(s, i, r)
}

// participant describes the member; holding the GM role makes them a GM
func (c *HeroCommand) participant(member *discordgo.Member) *models.Participant {
	name := member.User.Username
	if member.User.GlobalName != "" {
		name = member.User.GlobalName
	}
	if member.Nick != "" {
		name = member.Nick
	}

	isGM := false
	if c.gmRoleID != "" {
		for _, role := range member.Roles {
			if role == c.gmRoleID {
				isGM = true
				break
			}
		}
	}

	return &models.Participant{
		ID:   member.User.ID,
		Name: name,
		IsGM: isGM,
	}
}

// run executes one subcommand for the participant
func (c *HeroCommand) run(ctx context.Context, p *models.Participant, sub string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*reply, error) {
	if sub == "setup" {
		d, err := c.deck.EnsureWorldDeck(ctx, &deck.EnsureWorldDeckInput{
			ParticipantID: p.ID,
		})
		if err != nil {
			return nil, err
		}
		return &reply{content: fmt.Sprintf("Hero action deck ready: **%s** (%d entries).", d.Name, len(d.Entries))}, nil
	}

	node, err := c.nodes.Node(ctx, p)
	if err != nil {
		return nil, err
	}

	characterID := stringOption(opts, "character")

	switch sub {
	case "hand":
		output, err := node.ListActions(ctx, &heroactions.ListActionsInput{
			CharacterID: characterID,
		})
		if err != nil {
			return nil, err
		}
		return &reply{embed: renderHand(output.Character, output.Actions), ephemeral: true}, nil

	case "draw":
		output, err := node.DrawActions(ctx, &heroactions.DrawActionsInput{
			CharacterID: characterID,
		})
		if err != nil {
			return nil, err
		}
		if output.Relayed {
			return &reply{content: fmt.Sprintf("Asked <@%s> to draw for you.", output.Recipient), ephemeral: true}, nil
		}
		return &reply{content: fmt.Sprintf("Drew %d hero action(s).", len(output.Drawn)), ephemeral: true}, nil

	case "discard":
		output, err := node.DiscardAction(ctx, &heroactions.DiscardActionInput{
			CharacterID: characterID,
			ActionUUID:  stringOption(opts, "action"),
		})
		if err != nil {
			return nil, err
		}
		if output.Discarded == nil {
			return &reply{content: "Nothing to discard.", ephemeral: true}, nil
		}
		return &reply{content: fmt.Sprintf("Discarded **%s**.", output.Discarded.Name), ephemeral: true}, nil

	case "use":
		output, err := node.UseAction(ctx, &heroactions.UseActionInput{
			CharacterID: characterID,
			ActionUUID:  stringOption(opts, "action"),
		})
		if err != nil {
			return nil, err
		}
		return &reply{content: fmt.Sprintf("Used **%s**. %d hero point(s) left.", output.Used.Name, output.RemainingPoints), ephemeral: true}, nil

	case "trade":
		output, err := node.InitiateTrade(ctx, &heroactions.InitiateTradeInput{
			OriginCharacterID: characterID,
			OriginAction:      stringOption(opts, "action"),
			TargetCharacterID: stringOption(opts, "target"),
			TargetAction:      stringOption(opts, "target_action"),
		})
		if err != nil {
			return nil, err
		}
		if output.Relayed {
			return &reply{content: fmt.Sprintf("Trade `%s` offered to <@%s>.", output.Trade.ID, output.Recipient), ephemeral: true}, nil
		}
		return &reply{content: "Trade complete.", ephemeral: true}, nil

	case "trades":
		output, err := node.PendingTrades(ctx)
		if err != nil {
			return nil, err
		}
		return &reply{embed: renderTrades(output.Trades), ephemeral: true}, nil

	case "accept":
		output, err := node.RespondTrade(ctx, &heroactions.RespondTradeInput{
			TradeID:      stringOption(opts, "trade"),
			Accept:       true,
			TargetAction: stringOption(opts, "action"),
		})
		if err != nil {
			return nil, err
		}
		if output.Relayed {
			return &reply{content: fmt.Sprintf("Accepted. <@%s> will make the swap.", output.Recipient), ephemeral: true}, nil
		}
		return &reply{content: "Trade complete.", ephemeral: true}, nil

	case "reject":
		if _, err := node.RespondTrade(ctx, &heroactions.RespondTradeInput{
			TradeID: stringOption(opts, "trade"),
			Accept:  false,
		}); err != nil {
			return nil, err
		}
		return &reply{content: "Trade declined.", ephemeral: true}, nil

	case "give":
		output, err := node.GiveActions(ctx, &heroactions.GiveActionsInput{
			CharacterID: characterID,
			EntryIDs:    splitList(stringOption(opts, "entries")),
			MarkDrawn:   boolOption(opts, "mark_drawn"),
		})
		if err != nil {
			return nil, err
		}
		if output.Relayed {
			return &reply{content: fmt.Sprintf("Asked <@%s> to hand them out.", output.Recipient), ephemeral: true}, nil
		}
		return &reply{content: fmt.Sprintf("Gave %d hero action(s).", len(output.Given)), ephemeral: true}, nil

	case "remove":
		output, err := node.RemoveActions(ctx, &heroactions.RemoveActionsInput{
			CharacterID: characterID,
			ActionUUIDs: splitList(stringOption(opts, "actions")),
		})
		if err != nil {
			return nil, err
		}
		if output.Relayed {
			return &reply{content: fmt.Sprintf("Asked <@%s> to take them.", output.Recipient), ephemeral: true}, nil
		}
		return &reply{content: fmt.Sprintf("Removed %d hero action(s).", len(output.Removed)), ephemeral: true}, nil

	default:
		return nil, fmt.Errorf("unknown subcommand %q", sub)
	}
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		opts[opt.Name] = opt
	}
	return opts
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	opt, ok := opts[name]
	if !ok {
		return ""
	}
	return strings.TrimSpace(opt.StringValue())
}

func boolOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) bool {
	opt, ok := opts[name]
	if !ok {
		return false
	}
	return opt.BoolValue()
}

// splitList reads a comma separated list, dropping blanks
func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// errorText is what the user sees for a failed command
func errorText(err error) string {
	var heroErr heroactions.HeroError
	if errors.As(err, &heroErr) {
		return strings.ToUpper(heroErr.Error()[:1]) + heroErr.Error()[1:] + "."
	}

	var deckErr deck.DeckError
	if errors.As(err, &deckErr) {
		return strings.ToUpper(deckErr.Error()[:1]) + deckErr.Error()[1:] + "."
	}

	return "Something went wrong, please try again."
}
