package heroactions

import (
	"context"
	"errors"
	"sync"

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

// Hand writes that lose an optimistic transaction are retried this often
const maxConflictRetries = 3

// service implements the Service interface
type service struct {
	// mu makes the participant single-threaded
	mu sync.Mutex

	self  *models.Participant
	rules Rules

	// pending holds trades offered to this participant, keyed by trade ID
	pending map[string]*models.TradeRequest

	actionRepo    actionRepo.Repository
	characterRepo characterRepo.Repository
	authority     authority.Service
	deck          deck.Service
	messaging     messaging.Service
	notifier      notice.Notifier
	bus           bus.Bus
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *zap.SugaredLogger
}

// New creates a hero actions node for one participant
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Participant == nil || cfg.Participant.ID == "" {
		return nil, ErrNilParticipant
	}

	if cfg.ActionRepo == nil {
		return nil, ErrNilActionRepo
	}

	if cfg.CharacterRepo == nil {
		return nil, ErrNilCharacterRepo
	}

	if cfg.Authority == nil {
		return nil, ErrNilAuthority
	}

	if cfg.Deck == nil {
		return nil, ErrNilDeck
	}

	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.Bus == nil {
		return nil, ErrNilBus
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	rules := cfg.Rules
	if rules == (Rules{}) {
		rules = DefaultRules()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &service{
		self:          cfg.Participant,
		rules:         rules,
		pending:       make(map[string]*models.TradeRequest),
		actionRepo:    cfg.ActionRepo,
		characterRepo: cfg.CharacterRepo,
		authority:     cfg.Authority,
		deck:          cfg.Deck,
		messaging:     cfg.Messaging,
		notifier:      cfg.Notifier,
		bus:           cfg.Bus,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger.With("participant", cfg.Participant.ID),
	}, nil
}

// ListActions returns a character's hand
func (s *service) ListActions(ctx context.Context, input *ListActionsInput) (*ListActionsOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, ErrCharacterNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	char, err := s.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	actions, err := s.getActions(ctx, char.ID)
	if err != nil {
		return nil, err
	}

	return &ListActionsOutput{
		Character: char,
		Actions:   actions,
	}, nil
}

// DrawActions tops up a hand, or asks the deck owner to when the deck is not ours
func (s *service) DrawActions(ctx context.Context, input *DrawActionsInput) (*DrawActionsOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, ErrCharacterNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	char, err := s.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if err := s.requireEligible(char); err != nil {
		return nil, err
	}

	if err := s.requireAuthority(ctx, s.self.ID, char.Owners); err != nil {
		return nil, err
	}

	d, err := s.deck.GetActiveDeck(ctx)
	if err != nil {
		return nil, classify(err)
	}

	route, err := s.route(ctx, d.Owners, false)
	if err != nil {
		return nil, err
	}

	if route.Route == authority.RouteRelay {
		// The whole batch goes to the deck owner as one request
		recipient := route.Recipient
		if err := s.send(ctx, bus.PacketDrawRequest, recipient, &drawRequest{
			Actor:   char.ID,
			DeckRef: d.ID,
		}); err != nil {
			return nil, err
		}

		return &DrawActionsOutput{
			Relayed:   true,
			Recipient: recipient,
		}, nil
	}

	return s.drawFor(ctx, s.self.ID, char, d.ID)
}

// drawFor draws a batch for a character and writes the hand once
func (s *service) drawFor(ctx context.Context, requester string, char *models.Character, deckID string) (*DrawActionsOutput, error) {
	hand, err := s.getActions(ctx, char.ID)
	if err != nil {
		return nil, err
	}

	count := s.rules.HandSize - len(hand)
	if s.rules.FixedDraw {
		count = s.rules.FixedCount
	}

	if count <= 0 {
		return &DrawActionsOutput{
			Drawn:   []models.ActionToken{},
			Actions: hand,
		}, nil
	}

	drawn, err := s.deck.DrawMany(ctx, &deck.DrawManyInput{
		ParticipantID: s.self.ID,
		DeckID:        deckID,
		Count:         count,
	})
	if err != nil {
		return nil, classify(err)
	}

	var added []models.ActionToken
	var skipped []string
	written, err := s.updateActions(ctx, []string{char.ID}, func(hands map[string][]models.ActionToken) (map[string][]models.ActionToken, error) {
		hand := hands[char.ID]
		if s.rules.FixedDraw {
			hand = []models.ActionToken{}
		}

		added = []models.ActionToken{}
		skipped = []string{}
		for i, token := range drawn.Tokens {
			if models.ContainsAction(hand, token.UUID) {
				skipped = append(skipped, drawn.EntryIDs[i])
				continue
			}
			hand = append(hand, token)
			added = append(added, token)
		}

		return map[string][]models.ActionToken{char.ID: hand}, nil
	})
	if err != nil {
		s.release(ctx, deckID, drawn.EntryIDs)
		return nil, err
	}

	// Entries whose token the hand already held go back in the deck
	s.release(ctx, deckID, skipped)

	level := models.NoticeLevelInfo
	if drawn.Unresolved {
		level = models.NoticeLevelWarn
		s.logger.Warnw("deck entry has no usable reference",
			"deck", deckID,
			"character", char.ID,
		)
	}

	s.announce(ctx, requester, level, char, "", &messaging.GetNoticeMessageInput{
		Kind:      models.NoticeKindDraw,
		ActorName: char.Name,
		Tokens:    added,
		Requested: count,
	})

	return &DrawActionsOutput{
		Drawn:      added,
		Actions:    written[char.ID],
		Unresolved: drawn.Unresolved,
	}, nil
}

// release clears drawn markers for entries no hand received; failures are logged
func (s *service) release(ctx context.Context, deckID string, entryIDs []string) {
	if len(entryIDs) == 0 {
		return
	}

	if err := s.deck.ReleaseDrawn(ctx, &deck.ReleaseDrawnInput{
		DeckID:   deckID,
		EntryIDs: entryIDs,
	}); err != nil {
		s.logger.Warnw("failed to release drawn entries",
			"deck", deckID,
			"entries", entryIDs,
			"error", err,
		)
	}
}

// GiveActions grants deck entries to a character. Only GMs may give; a GM
// who is not the arbitrator relays the grant to the arbitrator.
func (s *service) GiveActions(ctx context.Context, input *GiveActionsInput) (*GiveActionsOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, ErrCharacterNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.self.IsGM {
		return nil, ErrNotArbitrator
	}

	char, err := s.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if err := s.requireEligible(char); err != nil {
		return nil, err
	}

	d, err := s.deck.GetActiveDeck(ctx)
	if err != nil {
		return nil, classify(err)
	}

	resolved, err := s.deck.ResolveEntries(ctx, &deck.ResolveEntriesInput{
		DeckID:   d.ID,
		EntryIDs: input.EntryIDs,
	})
	if err != nil {
		return nil, classify(err)
	}

	route, err := s.route(ctx, nil, true)
	if err != nil {
		return nil, err
	}

	if route.Route == authority.RouteRelay {
		recipient := route.Recipient
		if err := s.send(ctx, bus.PacketGiveRequest, recipient, &giveRequest{
			Actor:     char.ID,
			Tokens:    resolved.Tokens,
			MarkDrawn: input.MarkDrawn,
			DeckRef:   d.ID,
			Entries:   resolved.EntryIDs,
		}); err != nil {
			return nil, err
		}

		return &GiveActionsOutput{
			Relayed:   true,
			Recipient: recipient,
		}, nil
	}

	given, err := s.giveLocal(ctx, s.self.ID, char, d.ID, resolved.Tokens, resolved.EntryIDs, input.MarkDrawn)
	if err != nil {
		return nil, err
	}

	return &GiveActionsOutput{
		Given: given,
	}, nil
}

// giveLocal appends tokens the hand does not hold yet. With markDrawn the
// deck entries of exactly the appended tokens are marked.
func (s *service) giveLocal(ctx context.Context, requester string, char *models.Character, deckID string, tokens []models.ActionToken, entryIDs []string, markDrawn bool) ([]models.ActionToken, error) {
	var added []models.ActionToken
	var consumed []string

	_, err := s.updateActions(ctx, []string{char.ID}, func(hands map[string][]models.ActionToken) (map[string][]models.ActionToken, error) {
		hand := hands[char.ID]
		added = []models.ActionToken{}
		consumed = []string{}

		for i, token := range tokens {
			if models.ContainsAction(hand, token.UUID) {
				continue
			}
			hand = append(hand, token)
			added = append(added, token)
			if i < len(entryIDs) {
				consumed = append(consumed, entryIDs[i])
			}
		}

		return map[string][]models.ActionToken{char.ID: hand}, nil
	})
	if err != nil {
		return nil, err
	}

	if markDrawn && deckID != "" && len(consumed) > 0 {
		if err := s.deck.MarkDrawn(ctx, &deck.MarkDrawnInput{
			DeckID:   deckID,
			EntryIDs: consumed,
		}); err != nil {
			return nil, classify(err)
		}
	}

	s.announce(ctx, requester, models.NoticeLevelInfo, char, "", &messaging.GetNoticeMessageInput{
		Kind:      models.NoticeKindGive,
		ActorName: char.Name,
		Tokens:    added,
	})

	return added, nil
}

// RemoveActions takes tokens from a character; same authority as giving
func (s *service) RemoveActions(ctx context.Context, input *RemoveActionsInput) (*RemoveActionsOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, ErrCharacterNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.self.IsGM {
		return nil, ErrNotArbitrator
	}

	char, err := s.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	route, err := s.route(ctx, nil, true)
	if err != nil {
		return nil, err
	}

	if route.Route == authority.RouteRelay {
		recipient := route.Recipient
		if err := s.send(ctx, bus.PacketRemoveRequest, recipient, &removeRequest{
			Actor:  char.ID,
			Tokens: input.ActionUUIDs,
		}); err != nil {
			return nil, err
		}

		return &RemoveActionsOutput{
			Relayed:   true,
			Recipient: recipient,
		}, nil
	}

	removed, err := s.removeLocal(ctx, s.self.ID, char, input.ActionUUIDs)
	if err != nil {
		return nil, err
	}

	return &RemoveActionsOutput{
		Removed: removed,
	}, nil
}

func (s *service) removeLocal(ctx context.Context, requester string, char *models.Character, uuids []string) ([]models.ActionToken, error) {
	var removed []models.ActionToken

	_, err := s.updateActions(ctx, []string{char.ID}, func(hands map[string][]models.ActionToken) (map[string][]models.ActionToken, error) {
		hand := hands[char.ID]
		removed = []models.ActionToken{}

		for _, id := range uuids {
			var token *models.ActionToken
			hand, token = models.SpliceFind(hand, models.ByUUID(id))
			if token != nil {
				removed = append(removed, *token)
			}
		}

		return map[string][]models.ActionToken{char.ID: hand}, nil
	})
	if err != nil {
		return nil, err
	}

	if len(removed) > 0 {
		s.announce(ctx, requester, models.NoticeLevelInfo, char, "", &messaging.GetNoticeMessageInput{
			Kind:      models.NoticeKindRemove,
			ActorName: char.Name,
			Tokens:    removed,
		})
	}

	return removed, nil
}

// DiscardAction removes at most one token; an absent token is not an error
func (s *service) DiscardAction(ctx context.Context, input *DiscardActionInput) (*DiscardActionOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, ErrCharacterNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	char, err := s.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if err := s.requireAuthority(ctx, s.self.ID, char.Owners); err != nil {
		return nil, err
	}

	var discarded *models.ActionToken
	var remaining []models.ActionToken

	_, err = s.updateActions(ctx, []string{char.ID}, func(hands map[string][]models.ActionToken) (map[string][]models.ActionToken, error) {
		remaining, discarded = models.SpliceFind(hands[char.ID], models.ByUUID(input.ActionUUID))
		if discarded == nil {
			// Nothing to write
			return map[string][]models.ActionToken{}, nil
		}
		return map[string][]models.ActionToken{char.ID: remaining}, nil
	})
	if err != nil {
		return nil, err
	}

	if discarded != nil {
		s.announce(ctx, s.self.ID, models.NoticeLevelInfo, char, "", &messaging.GetNoticeMessageInput{
			Kind:      models.NoticeKindDiscard,
			ActorName: char.Name,
			Tokens:    []models.ActionToken{*discarded},
		})
	}

	return &DiscardActionOutput{
		Discarded: discarded,
		Actions:   remaining,
	}, nil
}

// UseAction spends hero points, then removes the token. Nothing is removed
// when the points are short, and the points are refunded if the token
// vanished in between.
func (s *service) UseAction(ctx context.Context, input *UseActionInput) (*UseActionOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, ErrCharacterNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	char, err := s.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if err := s.requireEligible(char); err != nil {
		return nil, err
	}

	if err := s.requireAuthority(ctx, s.self.ID, char.Owners); err != nil {
		return nil, err
	}

	hand, err := s.getActions(ctx, char.ID)
	if err != nil {
		return nil, err
	}

	if !models.ContainsAction(hand, input.ActionUUID) {
		return nil, ErrActionNotFound
	}

	remainingPoints := char.HeroPoints
	if s.rules.UseCost > 0 {
		spent, err := s.characterRepo.SpendPoints(ctx, &characterRepo.SpendPointsInput{
			CharacterID: char.ID,
			Amount:      s.rules.UseCost,
		})
		if err != nil {
			return nil, classify(err)
		}
		remainingPoints = spent.Remaining
	}

	var used *models.ActionToken
	written, err := s.updateActions(ctx, []string{char.ID}, func(hands map[string][]models.ActionToken) (map[string][]models.ActionToken, error) {
		var hand []models.ActionToken
		hand, used = models.SpliceFind(hands[char.ID], models.ByUUID(input.ActionUUID))
		if used == nil {
			return nil, ErrActionNotFound
		}
		return map[string][]models.ActionToken{char.ID: hand}, nil
	})
	if err != nil {
		if s.rules.UseCost > 0 {
			if _, refundErr := s.characterRepo.AddPoints(ctx, &characterRepo.AddPointsInput{
				CharacterID: char.ID,
				Amount:      s.rules.UseCost,
			}); refundErr != nil {
				s.logger.Errorw("failed to refund hero points",
					"character", char.ID,
					"amount", s.rules.UseCost,
					"error", refundErr,
				)
			}
		}
		return nil, err
	}

	s.announce(ctx, s.self.ID, models.NoticeLevelInfo, char, "", &messaging.GetNoticeMessageInput{
		Kind:      models.NoticeKindUse,
		ActorName: char.Name,
		Tokens:    []models.ActionToken{*used},
	})

	return &UseActionOutput{
		Used:            *used,
		RemainingPoints: remainingPoints,
		Actions:         written[char.ID],
	}, nil
}

func (s *service) getCharacter(ctx context.Context, characterID string) (*models.Character, error) {
	char, err := s.characterRepo.GetCharacter(ctx, &characterRepo.GetCharacterInput{
		CharacterID: characterID,
	})
	if err != nil {
		return nil, classify(err)
	}
	return char, nil
}

func (s *service) requireEligible(char *models.Character) error {
	if !char.Type.CanHoldActions() {
		return ErrInvalidCharacterType
	}
	return nil
}

func (s *service) getActions(ctx context.Context, characterID string) ([]models.ActionToken, error) {
	output, err := s.actionRepo.GetActions(ctx, &actionRepo.GetActionsInput{
		CharacterID: characterID,
	})
	if err != nil {
		return nil, err
	}
	return output.Actions, nil
}

// updateActions retries single-owner writes that lost a race
func (s *service) updateActions(ctx context.Context, characterIDs []string, mutate actionRepo.MutateFunc) (map[string][]models.ActionToken, error) {
	for attempt := 0; ; attempt++ {
		output, err := s.actionRepo.UpdateActions(ctx, &actionRepo.UpdateActionsInput{
			CharacterIDs: characterIDs,
			Mutate:       mutate,
		})
		if err == nil {
			return output.Actions, nil
		}
		if errors.Is(err, actionRepo.ErrConflict) && attempt < maxConflictRetries {
			continue
		}
		return nil, err
	}
}

// route asks the authority router whether this participant applies a
// mutation itself or relays it, and to whom
func (s *service) route(ctx context.Context, owners []string, arbitratorOnly bool) (*authority.ResolveOutput, error) {
	output, err := s.authority.Resolve(ctx, &authority.ResolveInput{
		ParticipantID:  s.self.ID,
		Owners:         owners,
		ArbitratorOnly: arbitratorOnly,
	})
	if err != nil {
		return nil, classify(err)
	}
	return output, nil
}

func (s *service) hasAuthority(ctx context.Context, participantID string, owners []string) (bool, error) {
	ok, err := s.authority.HasAuthority(ctx, &authority.HasAuthorityInput{
		ParticipantID: participantID,
		Owners:        owners,
	})
	if err != nil {
		return false, classify(err)
	}
	return ok, nil
}

func (s *service) isArbitrator(ctx context.Context, participantID string) (bool, error) {
	ok, err := s.authority.HasAuthority(ctx, &authority.HasAuthorityInput{
		ParticipantID:  participantID,
		ArbitratorOnly: true,
	})
	if err != nil {
		return false, classify(err)
	}
	return ok, nil
}

func (s *service) requireAuthority(ctx context.Context, participantID string, owners []string) error {
	ok, err := s.hasAuthority(ctx, participantID, owners)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotOwner
	}
	return nil
}

func (s *service) requireArbitrator(ctx context.Context, participantID string) error {
	ok, err := s.isArbitrator(ctx, participantID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotArbitrator
	}
	return nil
}

// requireGM checks the sender of a relayed give or remove
func (s *service) requireGM(ctx context.Context, participantID string) error {
	ok, err := s.authority.IsGM(ctx, &authority.IsGMInput{
		ParticipantID: participantID,
	})
	if err != nil {
		return classify(err)
	}
	if !ok {
		return ErrNotArbitrator
	}
	return nil
}

// notify shows a notice here, or sends it to the participant it is for
func (s *service) notify(ctx context.Context, to string, n *models.Notice) error {
	if to == s.self.ID {
		return s.notifier.Notify(ctx, n)
	}
	return s.send(ctx, bus.PacketNotice, to, n)
}

// announce composes and delivers an outcome notice. Delivery problems are
// logged; the outcome itself already happened.
func (s *service) announce(ctx context.Context, to string, level models.NoticeLevel, char *models.Character, tradeID string, input *messaging.GetNoticeMessageInput) {
	msg, err := s.messaging.GetNoticeMessage(ctx, input)
	if err != nil {
		s.logger.Errorw("failed to compose notice", "kind", input.Kind, "error", err)
		return
	}

	n := &models.Notice{
		ID:          s.uuidGenerator.NewUUID(),
		Participant: to,
		Kind:        input.Kind,
		Level:       level,
		Title:       msg.Title,
		Message:     msg.Message,
		Tokens:      input.Tokens,
		TradeID:     tradeID,
		Timestamp:   s.clock.Now(),
	}
	if char != nil {
		n.Character = char.ID
	}

	if err := s.notify(ctx, to, n); err != nil {
		s.logger.Warnw("failed to deliver notice", "to", to, "kind", input.Kind, "error", err)
	}
}

// fail tells a participant an operation they asked for did not happen and
// returns the classified error
func (s *service) fail(ctx context.Context, to string, actorName string, err error) error {
	err = classify(err)

	msg, msgErr := s.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		ErrorType: errorType(err),
		ActorName: actorName,
	})
	if msgErr != nil {
		s.logger.Errorw("failed to compose error notice", "error", msgErr)
		return err
	}

	n := &models.Notice{
		ID:          s.uuidGenerator.NewUUID(),
		Participant: to,
		Kind:        models.NoticeKindFailure,
		Level:       severity(err),
		Title:       msg.Title,
		Message:     msg.Message,
		Timestamp:   s.clock.Now(),
	}

	if notifyErr := s.notify(ctx, to, n); notifyErr != nil {
		s.logger.Warnw("failed to deliver error notice", "to", to, "error", notifyErr)
	}

	return err
}
