package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/heroactions/internal/models"
	"github.com/bwmarrin/discordgo"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_sender.go github.com/KirkDiggler/heroactions/internal/handlers/discord MessageSender

// MessageSender posts embeds to a channel; *discordgo.Session satisfies it
type MessageSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// ErrNoNoticeChannel is returned when a notice has nowhere to go
var ErrNoNoticeChannel = errors.New("no channel to post the notice in")

// ChannelNotifier posts notices to Discord. Notices go to the fixed channel
// when one is configured, otherwise to the channel the participant last
// used a command in.
type ChannelNotifier struct {
	sender  MessageSender
	channel string

	mu   sync.Mutex
	last map[string]string
}

// NewChannelNotifier creates a notifier; channelID may be empty
func NewChannelNotifier(sender MessageSender, channelID string) *ChannelNotifier {
	return &ChannelNotifier{
		sender:  sender,
		channel: channelID,
		last:    make(map[string]string),
	}
}

// Remember records where a participant is playing
func (n *ChannelNotifier) Remember(participantID, channelID string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.last[participantID] = channelID
}

// Notify posts the notice as an embed
func (n *ChannelNotifier) Notify(ctx context.Context, notice *models.Notice) error {
	if notice == nil {
		return errors.New("notice cannot be nil")
	}

	channelID := n.channel
	if channelID == "" {
		n.mu.Lock()
		channelID = n.last[notice.Participant]
		n.mu.Unlock()
	}

	if channelID == "" {
		return fmt.Errorf("%w: participant %s", ErrNoNoticeChannel, notice.Participant)
	}

	if _, err := n.sender.ChannelMessageSendEmbed(channelID, renderNotice(notice), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to post notice: %w", err)
	}

	return nil
}
