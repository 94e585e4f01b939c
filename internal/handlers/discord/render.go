package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/heroactions/internal/models"
	"github.com/bwmarrin/discordgo"
)

// Embed colors per notice level
const (
	colorInfo  = 0x00ff00
	colorWarn  = 0xffa500
	colorError = 0xff0000
)

func levelColor(level models.NoticeLevel) int {
	switch level {
	case models.NoticeLevelWarn:
		return colorWarn
	case models.NoticeLevelError:
		return colorError
	default:
		return colorInfo
	}
}

// renderNotice turns a notice into the embed posted to a channel
func renderNotice(n *models.Notice) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       n.Title,
		Description: fmt.Sprintf("<@%s> %s", n.Participant, n.Message),
		Color:       levelColor(n.Level),
	}

	if len(n.Tokens) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Actions",
			Value: tokenLines(n.Tokens),
		})
	}

	if !n.Timestamp.IsZero() {
		embed.Timestamp = n.Timestamp.Format("2006-01-02T15:04:05Z07:00")
	}

	return embed
}

// renderHand lists a character's hand with the uuid needed by other commands
func renderHand(char *models.Character, actions []models.ActionToken) *discordgo.MessageEmbed {
	description := "No hero actions in hand."
	if len(actions) > 0 {
		description = tokenLines(actions)
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s's Hero Actions", char.Name),
		Description: description,
		Color:       colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Hero Points",
				Value:  fmt.Sprintf("%d", char.HeroPoints),
				Inline: true,
			},
		},
	}
}

// renderTrades lists trades waiting for an answer
func renderTrades(trades []*models.TradeRequest) *discordgo.MessageEmbed {
	if len(trades) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "Pending Trades",
			Description: "Nobody is waiting on you.",
			Color:       colorInfo,
		}
	}

	var sb strings.Builder
	for _, trade := range trades {
		sb.WriteString(fmt.Sprintf("`%s` %s offers `%s` for %s", trade.ID, trade.Origin.Actor, trade.Origin.Action, trade.Target.Actor))
		if trade.Target.Action != "" {
			sb.WriteString(fmt.Sprintf(" (`%s`)", trade.Target.Action))
		}
		sb.WriteString("\n")
	}

	return &discordgo.MessageEmbed{
		Title:       "Pending Trades",
		Description: sb.String(),
		Color:       colorInfo,
	}
}

func tokenLines(tokens []models.ActionToken) string {
	var sb strings.Builder
	for i, token := range tokens {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("**%s** `%s`", token.Name, token.UUID))
	}
	return sb.String()
}
