package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/heroactions/internal/models"
)

// service implements the Service interface
type service struct {
	tone MessageTone

	// Random number generator for selecting flavour messages
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		config = &ServiceConfig{}
	}

	tone := config.Tone
	if tone == "" {
		tone = ToneNeutral
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &service{
		tone: tone,
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetNoticeMessage returns the title and body for an outcome
func (s *service) GetNoticeMessage(ctx context.Context, input *GetNoticeMessageInput) (*GetNoticeMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	actor := input.ActorName
	other := input.OtherName
	tokens := joinNames(input.Tokens)

	var title string
	var messages []string

	switch input.Kind {
	case models.NoticeKindDraw:
		title = "Hero Actions Drawn"
		if len(input.Tokens) == 0 {
			messages = []string{
				fmt.Sprintf("%s drew nothing; the deck came up empty.", actor),
				fmt.Sprintf("%s reaches for the deck and comes back empty-handed.", actor),
			}
		} else {
			messages = []string{
				fmt.Sprintf("%s draws %s.", actor, tokens),
				fmt.Sprintf("Fate deals %s to %s.", tokens, actor),
				fmt.Sprintf("%s pockets %s for later. Use it wisely!", actor, tokens),
			}
			if input.Requested > len(input.Tokens) {
				messages[0] = fmt.Sprintf("%s draws %s (%d of %d).", actor, tokens, len(input.Tokens), input.Requested)
			}
		}
	case models.NoticeKindGive:
		title = "Hero Actions Granted"
		messages = []string{
			fmt.Sprintf("%s receives %s.", actor, tokens),
			fmt.Sprintf("The GM smiles upon %s: %s.", actor, tokens),
		}
	case models.NoticeKindRemove:
		title = "Hero Actions Removed"
		messages = []string{
			fmt.Sprintf("%s loses %s.", actor, tokens),
			fmt.Sprintf("The GM takes %s back from %s.", tokens, actor),
		}
	case models.NoticeKindDiscard:
		title = "Hero Action Discarded"
		messages = []string{
			fmt.Sprintf("%s discards %s.", actor, tokens),
			fmt.Sprintf("%s tosses %s aside.", actor, tokens),
		}
	case models.NoticeKindUse:
		title = "Hero Action Used"
		messages = []string{
			fmt.Sprintf("%s uses %s!", actor, tokens),
			fmt.Sprintf("%s plays %s. Heroic!", actor, tokens),
			fmt.Sprintf("Stand back: %s unleashes %s!", actor, tokens),
		}
	case models.NoticeKindTradeOffered:
		title = "Trade Offered"
		messages = []string{
			fmt.Sprintf("%s offers %s to %s. Use /hero accept or /hero reject.", other, tokens, actor),
			fmt.Sprintf("%s wants to swap %s with %s. Use /hero accept or /hero reject.", other, tokens, actor),
		}
	case models.NoticeKindTradeSent:
		title = "Trade Sent"
		messages = []string{
			fmt.Sprintf("%s offered %s to %s.", actor, tokens, other),
		}
	case models.NoticeKindTradeAccepted:
		title = "Trade Accepted"
		messages = []string{
			fmt.Sprintf("%s accepted the trade with %s.", actor, other),
		}
	case models.NoticeKindTradeRejected:
		title = "Trade Rejected"
		messages = []string{
			fmt.Sprintf("%s declined to trade with %s.", other, actor),
			fmt.Sprintf("%s says no deal, %s.", other, actor),
		}
	case models.NoticeKindTradeComplete:
		title = "Trade Complete"
		messages = []string{
			fmt.Sprintf("%s gave %s to %s and received %s.", actor, tokens, other, joinNames(input.Received)),
			fmt.Sprintf("Deal! %s swaps %s for %s with %s.", actor, tokens, joinNames(input.Received), other),
		}
	default:
		return nil, fmt.Errorf("unknown notice kind %q", input.Kind)
	}

	return &GetNoticeMessageOutput{
		Title:   title,
		Message: s.pick(messages),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	title := "Hero Actions"
	var messages []string

	switch input.ErrorType {
	case ErrorTypeNotArbitrator:
		title = "GM Only"
		messages = []string{
			"Only the active GM can do that.",
			"Nice try! That one is reserved for the GM.",
		}
	case ErrorTypeInvalidCharacterType:
		title = "Not Eligible"
		messages = []string{
			fmt.Sprintf("%s cannot hold hero actions.", input.ActorName),
		}
	case ErrorTypeDeckUnresolved:
		title = "No Deck"
		messages = []string{
			"No hero action deck is configured.",
			"The deck has wandered off. Ask the GM to set one up.",
		}
	case ErrorTypeNoFormula:
		title = "Deck Not Ready"
		messages = []string{
			"The deck has not been set up for drawing yet. Ask the GM to draw once.",
		}
	case ErrorTypeInsufficientResource:
		title = "Out of Hero Points"
		messages = []string{
			fmt.Sprintf("%s has no hero points left to spend.", input.ActorName),
			fmt.Sprintf("%s is running on empty. No hero points left!", input.ActorName),
		}
	case ErrorTypeStaleReference:
		title = "Trade Failed"
		messages = []string{
			"The trade fell through: one of the actions is no longer there.",
			"Too slow! One side of the trade changed before it could happen.",
		}
	case ErrorTypeNoArbitratorOnline:
		title = "No GM Online"
		messages = []string{
			"That needs a GM, and none is online right now.",
		}
	case ErrorTypeNotOwner:
		title = "Not Yours"
		messages = []string{
			fmt.Sprintf("You do not control %s.", input.ActorName),
		}
	case ErrorTypeTradeNotFound:
		title = "No Such Trade"
		messages = []string{
			"There is no pending trade with that id.",
		}
	case ErrorTypeActionNotFound:
		title = "No Such Action"
		messages = []string{
			fmt.Sprintf("%s does not have that hero action.", input.ActorName),
		}
	case ErrorTypeDuplicateAction:
		title = "Trade Failed"
		messages = []string{
			"The trade fell through: one side already holds the action it would receive.",
		}
	default:
		messages = []string{
			"Something went wrong! Try again later.",
			"The deck got shuffled into the void. Try again.",
		}
	}

	return &GetErrorMessageOutput{
		Title:   title,
		Message: s.pick(messages),
	}, nil
}

// pick returns the plain message for the neutral tone, otherwise a random one
func (s *service) pick(messages []string) string {
	if s.tone != ToneFunny || len(messages) == 1 {
		return messages[0]
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

func joinNames(tokens []models.ActionToken) string {
	names := make([]string, 0, len(tokens))
	for _, token := range tokens {
		names = append(names, "**"+token.Name+"**")
	}

	switch len(names) {
	case 0:
		return "nothing"
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
