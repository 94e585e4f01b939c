package heroactions

import (
	"github.com/KirkDiggler/heroactions/internal/bus"
	"github.com/KirkDiggler/heroactions/internal/common/clock"
	"github.com/KirkDiggler/heroactions/internal/common/uuid"
	"github.com/KirkDiggler/heroactions/internal/models"
	actionRepo "github.com/KirkDiggler/heroactions/internal/repositories/actionlist"
	characterRepo "github.com/KirkDiggler/heroactions/internal/repositories/character"
	"github.com/KirkDiggler/heroactions/internal/services/authority"
	"github.com/KirkDiggler/heroactions/internal/services/deck"
	"github.com/KirkDiggler/heroactions/internal/services/messaging"
	"github.com/KirkDiggler/heroactions/internal/services/notice"
	"go.uber.org/zap"
)

// Rules are the table settings for drawing and using actions
type Rules struct {
	// HandSize is how many tokens a draw tops a hand up to
	HandSize int

	// FixedDraw clears the hand and draws FixedCount instead of topping up
	FixedDraw bool

	// FixedCount is the draw size when FixedDraw is set
	FixedCount int

	// UseCost is the hero points spent per use
	UseCost int
}

// DefaultRules returns a hand of three and one point per use
func DefaultRules() Rules {
	return Rules{
		HandSize:   3,
		FixedCount: 3,
		UseCost:    1,
	}
}

// Config holds the participant this node acts for and its dependencies
type Config struct {
	// Participant is who this node acts as
	Participant *models.Participant

	Rules Rules

	// Repository dependencies
	ActionRepo    actionRepo.Repository
	CharacterRepo characterRepo.Repository

	// Service dependencies
	Authority     authority.Service
	Deck          deck.Service
	Messaging     messaging.Service
	Notifier      notice.Notifier
	Bus           bus.Bus
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *zap.SugaredLogger
}

// ListActionsInput contains parameters for reading a hand
type ListActionsInput struct {
	CharacterID string
}

// ListActionsOutput contains a character and its hand
type ListActionsOutput struct {
	Character *models.Character
	Actions   []models.ActionToken
}

// DrawActionsInput contains parameters for drawing
type DrawActionsInput struct {
	CharacterID string
}

// DrawActionsOutput reports either the local draw or the relay
type DrawActionsOutput struct {
	// Relayed is set when the deck owner was asked to draw instead
	Relayed   bool
	Recipient string

	// Drawn are the new tokens; empty when relayed
	Drawn []models.ActionToken

	// Actions is the hand after a local draw
	Actions []models.ActionToken

	// Unresolved is set when the batch stopped on a misconfigured entry
	Unresolved bool
}

// GiveActionsInput contains parameters for granting deck entries
type GiveActionsInput struct {
	CharacterID string
	EntryIDs    []string
	MarkDrawn   bool
}

// GiveActionsOutput reports the grant or the relay
type GiveActionsOutput struct {
	Relayed   bool
	Recipient string
	Given     []models.ActionToken
}

// RemoveActionsInput contains parameters for taking tokens away
type RemoveActionsInput struct {
	CharacterID string
	ActionUUIDs []string
}

// RemoveActionsOutput reports the removal or the relay
type RemoveActionsOutput struct {
	Relayed   bool
	Recipient string
	Removed   []models.ActionToken
}

// DiscardActionInput contains parameters for discarding a token
type DiscardActionInput struct {
	CharacterID string
	ActionUUID  string
}

// DiscardActionOutput reports the discarded token, nil when it was absent
type DiscardActionOutput struct {
	Discarded *models.ActionToken
	Actions   []models.ActionToken
}

// UseActionInput contains parameters for using a token
type UseActionInput struct {
	CharacterID string
	ActionUUID  string
}

// UseActionOutput reports the used token and the remaining points
type UseActionOutput struct {
	Used            models.ActionToken
	RemainingPoints int
	Actions         []models.ActionToken
}

// InitiateTradeInput proposes giving OriginAction for a token of the target.
// TargetAction may be left empty when the target chooses.
type InitiateTradeInput struct {
	OriginCharacterID string
	OriginAction      string
	TargetCharacterID string
	TargetAction      string
}

// InitiateTradeOutput reports how the trade proceeded
type InitiateTradeOutput struct {
	Trade *models.TradeRequest

	// Exchanged is set when both hands were local and the swap is done
	Exchanged bool

	// Relayed is set when a trade-request was sent to Recipient
	Relayed   bool
	Recipient string
}

// RespondTradeInput answers a pending trade
type RespondTradeInput struct {
	TradeID string
	Accept  bool

	// TargetAction picks the offered token when the initiator left it open
	TargetAction string
}

// RespondTradeOutput reports what the answer led to
type RespondTradeOutput struct {
	Trade     *models.TradeRequest
	Exchanged bool
	Relayed   bool
	Recipient string
}

// PendingTradesOutput lists trades waiting on this participant
type PendingTradesOutput struct {
	Trades []*models.TradeRequest
}
