package discord

import (
	"github.com/bwmarrin/discordgo"
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// reply is what a command answers with
type reply struct {
	content   string
	embed     *discordgo.MessageEmbed
	ephemeral bool
}

// respond sends a reply to an interaction
func respond(s *discordgo.Session, i *discordgo.InteractionCreate, r *reply) error {
	data := &discordgo.InteractionResponseData{
		Content: r.content,
	}

	if r.embed != nil {
		data.Embeds = []*discordgo.MessageEmbed{r.embed}
	}

	if r.ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// RespondWithError sends an ephemeral error embed to an interaction
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, errorMessage string) error {
	return respond(s, i, &reply{
		embed: &discordgo.MessageEmbed{
			Title:       "Error",
			Description: errorMessage,
			Color:       colorError,
		},
		ephemeral: true,
	})
}

// RespondWithEphemeralMessage sends an ephemeral message response to an interaction
func RespondWithEphemeralMessage(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return respond(s, i, &reply{
		content:   message,
		ephemeral: true,
	})
}
