package heroactions

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/heroactions/internal/services/heroactions Service

import (
	"context"

	"github.com/KirkDiggler/heroactions/internal/bus"
)

// Service is one participant's view of hero actions. Every call and every
// inbound packet is handled one at a time.
type Service interface {
	// ListActions returns a character's hand
	ListActions(ctx context.Context, input *ListActionsInput) (*ListActionsOutput, error)

	// DrawActions fills a character's hand from the active deck
	DrawActions(ctx context.Context, input *DrawActionsInput) (*DrawActionsOutput, error)

	// GiveActions grants chosen deck entries to a character; GM only
	GiveActions(ctx context.Context, input *GiveActionsInput) (*GiveActionsOutput, error)

	// RemoveActions takes tokens away from a character; GM only
	RemoveActions(ctx context.Context, input *RemoveActionsInput) (*RemoveActionsOutput, error)

	// DiscardAction drops one token; discarding an absent token does nothing
	DiscardAction(ctx context.Context, input *DiscardActionInput) (*DiscardActionOutput, error)

	// UseAction spends hero points and removes the token
	UseAction(ctx context.Context, input *UseActionInput) (*UseActionOutput, error)

	// InitiateTrade proposes a one-for-one exchange
	InitiateTrade(ctx context.Context, input *InitiateTradeInput) (*InitiateTradeOutput, error)

	// RespondTrade accepts or rejects a trade offered to this participant
	RespondTrade(ctx context.Context, input *RespondTradeInput) (*RespondTradeOutput, error)

	// PendingTrades lists trades waiting for this participant's answer
	PendingTrades(ctx context.Context) (*PendingTradesOutput, error)

	// HandlePacket processes one inbound packet
	HandlePacket(ctx context.Context, packet *bus.Packet) error

	// Run subscribes to this participant's packets and handles them until ctx ends
	Run(ctx context.Context) error
}
