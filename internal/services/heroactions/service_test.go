package heroactions

import (
	"context"
	"testing"

	"github.com/KirkDiggler/heroactions/internal/bus"
	"github.com/KirkDiggler/heroactions/internal/common/clock"
	"github.com/KirkDiggler/heroactions/internal/common/uuid"
	diceMocks "github.com/KirkDiggler/heroactions/internal/dice/mocks"
	"github.com/KirkDiggler/heroactions/internal/models"
	actionRepo "github.com/KirkDiggler/heroactions/internal/repositories/actionlist"
	characterRepo "github.com/KirkDiggler/heroactions/internal/repositories/character"
	deckRepo "github.com/KirkDiggler/heroactions/internal/repositories/deck"
	documentRepo "github.com/KirkDiggler/heroactions/internal/repositories/document"
	participantRepo "github.com/KirkDiggler/heroactions/internal/repositories/participant"
	"github.com/KirkDiggler/heroactions/internal/services/authority"
	"github.com/KirkDiggler/heroactions/internal/services/deck"
	"github.com/KirkDiggler/heroactions/internal/services/messaging"
	noticeMocks "github.com/KirkDiggler/heroactions/internal/services/notice/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	parry = models.ActionToken{UUID: "Item.t1", Name: "Parry"}
	rally = models.ActionToken{UUID: "Item.t2", Name: "Rally"}
	dodge = models.ActionToken{UUID: "Item.t3", Name: "Dodge"}
)

// HeroActionsTestSuite runs one node per participant against shared
// miniredis state. Packets wait on the memory bus until pump delivers them.
type HeroActionsTestSuite struct {
	suite.Suite
	mr              *miniredis.Miniredis
	client          *redis.Client
	mockCtrl        *gomock.Controller
	mockRoller      *diceMocks.MockRoller
	actionRepo      actionRepo.Repository
	characterRepo   characterRepo.Repository
	participantRepo participantRepo.Repository
	deckRepo        deckRepo.Repository
	authority       authority.Service
	deck            deck.Service
	messaging       messaging.Service
	bus             *bus.Memory
	nodes           map[string]Service
	notices         map[string][]*models.Notice
	ctx             context.Context
}

func (s *HeroActionsTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s.ctx = context.Background()

	actions, err := actionRepo.NewRedis(&actionRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.actionRepo = actions

	characters, err := characterRepo.NewRedis(&characterRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.characterRepo = characters

	participants, err := participantRepo.NewRedis(&participantRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.participantRepo = participants

	decks, err := deckRepo.NewRedis(&deckRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.deckRepo = decks

	documents, err := documentRepo.NewRedis(&documentRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	auth, err := authority.New(&authority.Config{ParticipantRepo: participants})
	s.Require().NoError(err)
	s.authority = auth

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)

	deckService, err := deck.New(&deck.Config{
		DefaultDeckName: "Hero Actions",
		BuiltinDeckID:   "builtin",
		DeckRepo:        decks,
		DocumentRepo:    documents,
		Authority:       auth,
		DiceRoller:      s.mockRoller,
		UUIDGenerator:   uuid.New(),
	})
	s.Require().NoError(err)
	s.deck = deckService

	msgs, err := messaging.NewService(&messaging.ServiceConfig{Tone: messaging.ToneNeutral})
	s.Require().NoError(err)
	s.messaging = msgs

	s.bus = bus.NewMemory()
	s.nodes = make(map[string]Service)
	s.notices = make(map[string][]*models.Notice)

	s.addNode(&models.Participant{ID: "gm", Name: "Game Master", IsGM: true}, DefaultRules())
	s.addNode(&models.Participant{ID: "px", Name: "Player X"}, DefaultRules())
	s.addNode(&models.Participant{ID: "py", Name: "Player Y"}, DefaultRules())

	s.saveCharacter(&models.Character{ID: "x", Name: "Xena", Type: models.CharacterTypeCharacter, Owners: []string{"px"}, HeroPoints: 1})
	s.saveCharacter(&models.Character{ID: "y", Name: "Yorick", Type: models.CharacterTypeCharacter, Owners: []string{"py"}, HeroPoints: 1})
	s.saveCharacter(&models.Character{ID: "npc", Name: "Goblin", Type: models.CharacterTypeNPC, Owners: []string{"px"}})
}

func (s *HeroActionsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.client.Close()
	s.mr.Close()
}

func TestHeroActionsTestSuite(t *testing.T) {
	suite.Run(t, new(HeroActionsTestSuite))
}

// addNode registers an online participant and builds its node
func (s *HeroActionsTestSuite) addNode(p *models.Participant, rules Rules) Service {
	s.Require().NoError(s.participantRepo.SaveParticipant(s.ctx, &participantRepo.SaveParticipantInput{Participant: p}))
	s.Require().NoError(s.participantRepo.Heartbeat(s.ctx, &participantRepo.HeartbeatInput{ParticipantID: p.ID}))

	id := p.ID
	notifier := noticeMocks.NewMockNotifier(s.mockCtrl)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n *models.Notice) error {
		s.notices[id] = append(s.notices[id], n)
		return nil
	}).AnyTimes()

	node, err := New(&Config{
		Participant:   p,
		Rules:         rules,
		ActionRepo:    s.actionRepo,
		CharacterRepo: s.characterRepo,
		Authority:     s.authority,
		Deck:          s.deck,
		Messaging:     s.messaging,
		Notifier:      notifier,
		Bus:           s.bus,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	s.Require().NoError(err)

	s.nodes[id] = node
	return node
}

func (s *HeroActionsTestSuite) saveCharacter(c *models.Character, hand ...models.ActionToken) {
	s.Require().NoError(s.characterRepo.SaveCharacter(s.ctx, &characterRepo.SaveCharacterInput{Character: c}))
	s.setHand(c.ID, hand...)
}

func (s *HeroActionsTestSuite) setHand(characterID string, hand ...models.ActionToken) {
	s.Require().NoError(s.actionRepo.SetActions(s.ctx, &actionRepo.SetActionsInput{
		CharacterID: characterID,
		Actions:     hand,
	}))
}

func (s *HeroActionsTestSuite) hand(characterID string) []models.ActionToken {
	output, err := s.actionRepo.GetActions(s.ctx, &actionRepo.GetActionsInput{CharacterID: characterID})
	s.Require().NoError(err)
	return output.Actions
}

func (s *HeroActionsTestSuite) uuids(characterID string) []string {
	ids := []string{}
	for _, token := range s.hand(characterID) {
		ids = append(ids, token.UUID)
	}
	return ids
}

// pump delivers queued packets until the bus is quiet
func (s *HeroActionsTestSuite) pump() {
	for i := 0; i < 100; i++ {
		packet, ok := s.bus.Next()
		if !ok {
			return
		}

		node, found := s.nodes[packet.To]
		s.Require().True(found, "packet for unknown participant %s", packet.To)
		_ = node.HandlePacket(s.ctx, packet)
	}
	s.Fail("bus did not go quiet")
}

func (s *HeroActionsTestSuite) kinds(participantID string) []models.NoticeKind {
	kinds := []models.NoticeKind{}
	for _, n := range s.notices[participantID] {
		kinds = append(kinds, n.Kind)
	}
	return kinds
}

func (s *HeroActionsTestSuite) lastNotice(participantID string) *models.Notice {
	notices := s.notices[participantID]
	s.Require().NotEmpty(notices, "no notices for %s", participantID)
	return notices[len(notices)-1]
}

// drawnEntries lists the builtin deck's drawn markers; nil when it was never written
func (s *HeroActionsTestSuite) drawnEntries() []string {
	d, err := s.deckRepo.GetDeck(s.ctx, &deckRepo.GetDeckInput{DeckID: "builtin"})
	if err != nil {
		s.Require().ErrorIs(err, deckRepo.ErrDeckNotFound)
		return nil
	}

	ids := []string{}
	for _, e := range d.Entries {
		if e.Drawn {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// offerParryForRally has px offer Xena's Parry to Yorick and delivers the request
func (s *HeroActionsTestSuite) offerParryForRally() string {
	s.setHand("x", parry)
	s.setHand("y", rally)

	output, err := s.nodes["px"].InitiateTrade(s.ctx, &InitiateTradeInput{
		OriginCharacterID: "x",
		OriginAction:      parry.UUID,
		TargetCharacterID: "y",
	})
	s.Require().NoError(err)
	s.True(output.Relayed)
	s.Equal("py", output.Recipient)
	s.Equal("px", output.Trade.Origin.User)

	s.pump()

	pending, err := s.nodes["py"].PendingTrades(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(pending.Trades, 1)
	return pending.Trades[0].ID
}

func (s *HeroActionsTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilParticipant)

	_, err = New(&Config{Participant: &models.Participant{ID: "p"}})
	s.ErrorIs(err, ErrNilActionRepo)
}

func (s *HeroActionsTestSuite) TestTradeAcrossOwnersIsExchangedByArbitrator() {
	tradeID := s.offerParryForRally()

	output, err := s.nodes["py"].RespondTrade(s.ctx, &RespondTradeInput{
		TradeID:      tradeID,
		Accept:       true,
		TargetAction: rally.UUID,
	})
	s.Require().NoError(err)
	s.True(output.Relayed)
	s.Equal("gm", output.Recipient)

	// Nothing moves until the arbitrator runs the exchange
	s.Equal([]string{parry.UUID}, s.uuids("x"))
	s.Equal([]string{rally.UUID}, s.uuids("y"))

	s.pump()

	s.Equal([]models.ActionToken{rally}, s.hand("x"))
	s.Equal([]models.ActionToken{parry}, s.hand("y"))

	s.Equal([]models.NoticeKind{models.NoticeKindTradeSent, models.NoticeKindTradeComplete}, s.kinds("px"))
	s.Equal([]models.NoticeKind{models.NoticeKindTradeOffered, models.NoticeKindTradeAccepted, models.NoticeKindTradeComplete}, s.kinds("py"))
	s.Empty(s.notices["gm"])
	s.Equal(tradeID, s.lastNotice("px").TradeID)

	pending, err := s.nodes["py"].PendingTrades(s.ctx)
	s.Require().NoError(err)
	s.Empty(pending.Trades)
}

func (s *HeroActionsTestSuite) TestTradeAbortsWhenTokenDiscardedBeforeExchange() {
	tradeID := s.offerParryForRally()

	_, err := s.nodes["py"].RespondTrade(s.ctx, &RespondTradeInput{
		TradeID:      tradeID,
		Accept:       true,
		TargetAction: rally.UUID,
	})
	s.Require().NoError(err)

	discarded, err := s.nodes["py"].DiscardAction(s.ctx, &DiscardActionInput{
		CharacterID: "y",
		ActionUUID:  rally.UUID,
	})
	s.Require().NoError(err)
	s.Require().NotNil(discarded.Discarded)

	s.pump()

	s.Equal([]models.ActionToken{parry}, s.hand("x"))
	s.Empty(s.hand("y"))

	s.Equal(models.NoticeKindTradeError, s.lastNotice("px").Kind)
	s.Equal(models.NoticeKindTradeError, s.lastNotice("py").Kind)
	s.Equal(tradeID, s.lastNotice("px").TradeID)
	s.NotContains(s.kinds("px"), models.NoticeKindTradeComplete)
}

func (s *HeroActionsTestSuite) TestTradeRequestForLostTokenIsRefused() {
	s.setHand("x", parry)
	s.setHand("y", rally)

	_, err := s.nodes["px"].InitiateTrade(s.ctx, &InitiateTradeInput{
		OriginCharacterID: "x",
		OriginAction:      parry.UUID,
		TargetCharacterID: "y",
	})
	s.Require().NoError(err)

	// Gone before the responder reads the request
	s.setHand("x")

	s.pump()

	pending, err := s.nodes["py"].PendingTrades(s.ctx)
	s.Require().NoError(err)
	s.Empty(pending.Trades)

	s.Equal(models.NoticeKindTradeError, s.lastNotice("px").Kind)
	s.Empty(s.notices["py"])
	s.Equal([]string{rally.UUID}, s.uuids("y"))
}

func (s *HeroActionsTestSuite) TestRejectedTradeChangesNothing() {
	tradeID := s.offerParryForRally()

	_, err := s.nodes["py"].RespondTrade(s.ctx, &RespondTradeInput{
		TradeID: tradeID,
		Accept:  false,
	})
	s.Require().NoError(err)

	s.pump()

	s.Equal([]models.ActionToken{parry}, s.hand("x"))
	s.Equal([]models.ActionToken{rally}, s.hand("y"))

	last := s.lastNotice("px")
	s.Equal(models.NoticeKindTradeRejected, last.Kind)
	s.Equal(models.NoticeLevelWarn, last.Level)

	_, err = s.nodes["py"].RespondTrade(s.ctx, &RespondTradeInput{TradeID: tradeID, Accept: true})
	s.ErrorIs(err, ErrTradeNotFound)
}

func (s *HeroActionsTestSuite) TestRespondTradeNeedsAValidPick() {
	tradeID := s.offerParryForRally()

	_, err := s.nodes["py"].RespondTrade(s.ctx, &RespondTradeInput{TradeID: tradeID, Accept: true})
	s.ErrorIs(err, ErrTargetActionRequired)

	_, err = s.nodes["py"].RespondTrade(s.ctx, &RespondTradeInput{
		TradeID:      tradeID,
		Accept:       true,
		TargetAction: dodge.UUID,
	})
	s.ErrorIs(err, ErrActionNotFound)

	// Still open for a valid pick
	pending, err := s.nodes["py"].PendingTrades(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(pending.Trades, 1)
	s.Empty(pending.Trades[0].Target.Action)

	_, err = s.nodes["py"].RespondTrade(s.ctx, &RespondTradeInput{
		TradeID:      tradeID,
		Accept:       true,
		TargetAction: rally.UUID,
	})
	s.Require().NoError(err)
	s.pump()

	s.Equal([]models.ActionToken{rally}, s.hand("x"))
}

func (s *HeroActionsTestSuite) TestRespondUnknownTrade() {
	_, err := s.nodes["py"].RespondTrade(s.ctx, &RespondTradeInput{TradeID: "nope", Accept: true})
	s.ErrorIs(err, ErrTradeNotFound)
}

func (s *HeroActionsTestSuite) TestArbitratorTradesWithoutMessages() {
	s.setHand("x", parry, dodge)
	s.setHand("y", rally)

	output, err := s.nodes["gm"].InitiateTrade(s.ctx, &InitiateTradeInput{
		OriginCharacterID: "x",
		OriginAction:      parry.UUID,
		TargetCharacterID: "y",
		TargetAction:      rally.UUID,
	})
	s.Require().NoError(err)
	s.True(output.Exchanged)
	s.False(output.Relayed)

	s.Empty(s.bus.Pending())
	s.Equal([]models.ActionToken{dodge, rally}, s.hand("x"))
	s.Equal([]models.ActionToken{parry}, s.hand("y"))
	s.Equal([]models.NoticeKind{models.NoticeKindTradeComplete}, s.kinds("gm"))
}

func (s *HeroActionsTestSuite) TestTradesConserveTokens() {
	s.setHand("x", parry, dodge)
	s.setHand("y", rally)

	swaps := []struct {
		give string
		take string
	}{
		{give: parry.UUID, take: rally.UUID},
		{give: dodge.UUID, take: parry.UUID},
		{give: rally.UUID, take: dodge.UUID},
	}

	for _, swap := range swaps {
		_, err := s.nodes["gm"].InitiateTrade(s.ctx, &InitiateTradeInput{
			OriginCharacterID: "x",
			OriginAction:      swap.give,
			TargetCharacterID: "y",
			TargetAction:      swap.take,
		})
		s.Require().NoError(err)

		s.Len(s.hand("x"), 2)
		s.Len(s.hand("y"), 1)
		s.ElementsMatch([]string{parry.UUID, rally.UUID, dodge.UUID}, append(s.uuids("x"), s.uuids("y")...))
	}

	s.Equal([]string{parry.UUID, dodge.UUID}, s.uuids("x"))
	s.Equal([]string{rally.UUID}, s.uuids("y"))
}

func (s *HeroActionsTestSuite) TestArbitratorTradeIntoDuplicateIsRefused() {
	s.setHand("x", parry, rally)
	s.setHand("y", rally)

	_, err := s.nodes["gm"].InitiateTrade(s.ctx, &InitiateTradeInput{
		OriginCharacterID: "x",
		OriginAction:      parry.UUID,
		TargetCharacterID: "y",
		TargetAction:      rally.UUID,
	})
	s.ErrorIs(err, ErrDuplicateAction)

	s.Equal([]models.ActionToken{parry, rally}, s.hand("x"))
	s.Equal([]models.ActionToken{rally}, s.hand("y"))
	s.Empty(s.bus.Pending())
}

func (s *HeroActionsTestSuite) TestTradeRequestForHeldTokenIsRefused() {
	s.setHand("x", parry)
	s.setHand("y", rally, parry)

	_, err := s.nodes["px"].InitiateTrade(s.ctx, &InitiateTradeInput{
		OriginCharacterID: "x",
		OriginAction:      parry.UUID,
		TargetCharacterID: "y",
	})
	s.Require().NoError(err)

	s.pump()

	pending, err := s.nodes["py"].PendingTrades(s.ctx)
	s.Require().NoError(err)
	s.Empty(pending.Trades)

	s.Equal(models.NoticeKindTradeError, s.lastNotice("px").Kind)
	s.Equal([]models.ActionToken{parry}, s.hand("x"))
	s.Equal([]models.ActionToken{rally, parry}, s.hand("y"))
}

func (s *HeroActionsTestSuite) TestExchangeAbortsWhenHandGainedTheToken() {
	tradeID := s.offerParryForRally()

	_, err := s.nodes["py"].RespondTrade(s.ctx, &RespondTradeInput{
		TradeID:      tradeID,
		Accept:       true,
		TargetAction: rally.UUID,
	})
	s.Require().NoError(err)

	// Xena picks up a Rally of her own before the arbitrator swaps
	s.setHand("x", parry, rally)

	s.pump()

	s.Equal([]models.ActionToken{parry, rally}, s.hand("x"))
	s.Equal([]models.ActionToken{rally}, s.hand("y"))

	s.Equal(models.NoticeKindTradeError, s.lastNotice("px").Kind)
	s.Equal(models.NoticeKindTradeError, s.lastNotice("py").Kind)
	s.NotContains(s.kinds("px"), models.NoticeKindTradeComplete)
}

func (s *HeroActionsTestSuite) TestAcceptedTradeFollowsNewArbitrator() {
	tradeID := s.offerParryForRally()

	output, err := s.nodes["py"].RespondTrade(s.ctx, &RespondTradeInput{
		TradeID:      tradeID,
		Accept:       true,
		TargetAction: rally.UUID,
	})
	s.Require().NoError(err)
	s.Equal("gm", output.Recipient)

	// A GM with a lower id takes over arbitration before the accept arrives
	s.addNode(&models.Participant{ID: "agm", Name: "Head GM", IsGM: true}, DefaultRules())

	s.pump()

	s.Equal([]models.ActionToken{rally}, s.hand("x"))
	s.Equal([]models.ActionToken{parry}, s.hand("y"))
	s.Equal(models.NoticeKindTradeComplete, s.lastNotice("px").Kind)
	s.Empty(s.notices["gm"])
	s.Empty(s.notices["agm"])
}

func (s *HeroActionsTestSuite) TestInitiateTradeGuards() {
	s.setHand("x", parry)
	s.setHand("y", rally)

	_, err := s.nodes["px"].InitiateTrade(s.ctx, &InitiateTradeInput{
		OriginCharacterID: "x", OriginAction: parry.UUID, TargetCharacterID: "x",
	})
	s.ErrorIs(err, ErrSelfTrade)

	_, err = s.nodes["px"].InitiateTrade(s.ctx, &InitiateTradeInput{
		OriginCharacterID: "y", OriginAction: rally.UUID, TargetCharacterID: "x",
	})
	s.ErrorIs(err, ErrNotOwner)

	_, err = s.nodes["px"].InitiateTrade(s.ctx, &InitiateTradeInput{
		OriginCharacterID: "x", OriginAction: parry.UUID, TargetCharacterID: "npc",
	})
	s.ErrorIs(err, ErrInvalidCharacterType)

	_, err = s.nodes["px"].InitiateTrade(s.ctx, &InitiateTradeInput{
		OriginCharacterID: "x", OriginAction: dodge.UUID, TargetCharacterID: "y",
	})
	s.ErrorIs(err, ErrActionNotFound)

	_, err = s.nodes["gm"].InitiateTrade(s.ctx, &InitiateTradeInput{
		OriginCharacterID: "x", OriginAction: parry.UUID, TargetCharacterID: "y",
	})
	s.ErrorIs(err, ErrTargetActionRequired)

	_, err = s.nodes["px"].InitiateTrade(s.ctx, &InitiateTradeInput{
		OriginCharacterID: "x", OriginAction: parry.UUID, TargetCharacterID: "ghost",
	})
	s.ErrorIs(err, ErrCharacterNotFound)

	s.Empty(s.bus.Pending())
}

func (s *HeroActionsTestSuite) TestDrawIsRelayedToDeckOwner() {
	gomock.InOrder(
		s.mockRoller.EXPECT().Roll(10).Return(1),
		s.mockRoller.EXPECT().Roll(10).Return(2),
		s.mockRoller.EXPECT().Roll(10).Return(3),
	)

	output, err := s.nodes["px"].DrawActions(s.ctx, &DrawActionsInput{CharacterID: "x"})
	s.Require().NoError(err)
	s.True(output.Relayed)
	s.Equal("gm", output.Recipient)
	s.Empty(s.hand("x"))

	s.pump()

	s.Equal([]string{
		"Compendium.hero.actions.ha01",
		"Compendium.hero.actions.ha02",
		"Compendium.hero.actions.ha03",
	}, s.uuids("x"))
	s.Equal("Press the Advantage", s.hand("x")[0].Name)

	s.Equal([]models.NoticeKind{models.NoticeKindDraw}, s.kinds("px"))
	s.Len(s.lastNotice("px").Tokens, 3)
	s.Empty(s.notices["gm"])
}

func (s *HeroActionsTestSuite) TestDrawTopsUpHand() {
	s.setHand("x", parry)
	gomock.InOrder(
		s.mockRoller.EXPECT().Roll(10).Return(4),
		s.mockRoller.EXPECT().Roll(10).Return(5),
	)

	output, err := s.nodes["gm"].DrawActions(s.ctx, &DrawActionsInput{CharacterID: "x"})
	s.Require().NoError(err)
	s.False(output.Relayed)
	s.Len(output.Drawn, 2)
	s.Equal([]string{parry.UUID, "Compendium.hero.actions.ha04", "Compendium.hero.actions.ha05"}, s.uuids("x"))

	// A full hand draws nothing
	output, err = s.nodes["gm"].DrawActions(s.ctx, &DrawActionsInput{CharacterID: "x"})
	s.Require().NoError(err)
	s.Empty(output.Drawn)
	s.Len(output.Actions, 3)
}

func (s *HeroActionsTestSuite) TestDrawReleasesEntriesAlreadyInHand() {
	s.setHand("x", models.ActionToken{UUID: "Compendium.hero.actions.ha02", Name: "Second Wind"})
	gomock.InOrder(
		s.mockRoller.EXPECT().Roll(10).Return(1),
		s.mockRoller.EXPECT().Roll(10).Return(2),
	)

	output, err := s.nodes["gm"].DrawActions(s.ctx, &DrawActionsInput{CharacterID: "x"})
	s.Require().NoError(err)
	s.Require().Len(output.Drawn, 1)
	s.Equal("Compendium.hero.actions.ha01", output.Drawn[0].UUID)

	s.Equal([]string{"Compendium.hero.actions.ha02", "Compendium.hero.actions.ha01"}, s.uuids("x"))
	s.Equal([]string{"ha-01"}, s.drawnEntries())
}

func (s *HeroActionsTestSuite) TestFixedDrawReplacesHand() {
	s.setHand("x", parry, rally, dodge)
	s.addNode(&models.Participant{ID: "gm", Name: "Game Master", IsGM: true}, Rules{
		HandSize:   3,
		FixedDraw:  true,
		FixedCount: 2,
		UseCost:    1,
	})
	gomock.InOrder(
		s.mockRoller.EXPECT().Roll(10).Return(1),
		s.mockRoller.EXPECT().Roll(10).Return(2),
	)

	output, err := s.nodes["gm"].DrawActions(s.ctx, &DrawActionsInput{CharacterID: "x"})
	s.Require().NoError(err)
	s.Len(output.Drawn, 2)
	s.Equal([]string{"Compendium.hero.actions.ha01", "Compendium.hero.actions.ha02"}, s.uuids("x"))
}

func (s *HeroActionsTestSuite) TestDrawGuards() {
	_, err := s.nodes["px"].DrawActions(s.ctx, &DrawActionsInput{CharacterID: "npc"})
	s.ErrorIs(err, ErrInvalidCharacterType)

	_, err = s.nodes["py"].DrawActions(s.ctx, &DrawActionsInput{CharacterID: "x"})
	s.ErrorIs(err, ErrNotOwner)

	s.Require().NoError(s.participantRepo.SetOffline(s.ctx, &participantRepo.SetOfflineInput{ParticipantID: "gm"}))
	_, err = s.nodes["px"].DrawActions(s.ctx, &DrawActionsInput{CharacterID: "x"})
	s.ErrorIs(err, ErrNoArbitratorOnline)

	s.Empty(s.bus.Pending())
}

func (s *HeroActionsTestSuite) TestDrawRequestFromNonOwnerIsRefused() {
	packet, err := bus.NewPacket("p1", bus.PacketDrawRequest, "py", "gm", &drawRequest{Actor: "x", DeckRef: "builtin"})
	s.Require().NoError(err)

	err = s.nodes["gm"].HandlePacket(s.ctx, packet)
	s.ErrorIs(err, ErrNotOwner)

	s.pump()

	last := s.lastNotice("py")
	s.Equal(models.NoticeKindFailure, last.Kind)
	s.Equal(models.NoticeLevelWarn, last.Level)
	s.Empty(s.hand("x"))
}

func (s *HeroActionsTestSuite) TestGiveMarksOnlyGrantedEntries() {
	s.setHand("x", models.ActionToken{UUID: "Compendium.hero.actions.ha02", Name: "Second Wind"})

	output, err := s.nodes["gm"].GiveActions(s.ctx, &GiveActionsInput{
		CharacterID: "x",
		EntryIDs:    []string{"ha-01", "ha-02"},
		MarkDrawn:   true,
	})
	s.Require().NoError(err)
	s.False(output.Relayed)
	s.Require().Len(output.Given, 1)
	s.Equal("Compendium.hero.actions.ha01", output.Given[0].UUID)

	s.Equal([]string{"Compendium.hero.actions.ha02", "Compendium.hero.actions.ha01"}, s.uuids("x"))

	d, err := s.deckRepo.GetDeck(s.ctx, &deckRepo.GetDeckInput{DeckID: "builtin"})
	s.Require().NoError(err)
	s.True(d.Entry("ha-01").Drawn)
	s.False(d.Entry("ha-02").Drawn)

	s.Equal([]models.NoticeKind{models.NoticeKindGive}, s.kinds("gm"))
}

func (s *HeroActionsTestSuite) TestGiveWithoutMarkLeavesDeckAlone() {
	_, err := s.nodes["gm"].GiveActions(s.ctx, &GiveActionsInput{
		CharacterID: "x",
		EntryIDs:    []string{"ha-01"},
		MarkDrawn:   true,
	})
	s.Require().NoError(err)
	s.Equal([]string{"ha-01"}, s.drawnEntries())

	output, err := s.nodes["gm"].GiveActions(s.ctx, &GiveActionsInput{
		CharacterID: "y",
		EntryIDs:    []string{"ha-02", "ha-03"},
		MarkDrawn:   false,
	})
	s.Require().NoError(err)
	s.Len(output.Given, 2)
	s.Equal([]string{"Compendium.hero.actions.ha02", "Compendium.hero.actions.ha03"}, s.uuids("y"))
	s.Equal([]string{"ha-01"}, s.drawnEntries())
}

func (s *HeroActionsTestSuite) TestGiveAndRemoveRequestsFromPlayersAreRefused() {
	s.setHand("x", parry)

	give, err := bus.NewPacket("p1", bus.PacketGiveRequest, "px", "gm", &giveRequest{
		Actor:  "x",
		Tokens: []models.ActionToken{rally, dodge},
	})
	s.Require().NoError(err)
	s.ErrorIs(s.nodes["gm"].HandlePacket(s.ctx, give), ErrNotArbitrator)

	remove, err := bus.NewPacket("p2", bus.PacketRemoveRequest, "px", "gm", &removeRequest{
		Actor:  "x",
		Tokens: []string{parry.UUID},
	})
	s.Require().NoError(err)
	s.ErrorIs(s.nodes["gm"].HandlePacket(s.ctx, remove), ErrNotArbitrator)

	s.pump()

	s.Equal([]models.ActionToken{parry}, s.hand("x"))
	s.Equal([]models.NoticeKind{models.NoticeKindFailure, models.NoticeKindFailure}, s.kinds("px"))
	s.Empty(s.notices["gm"])
}

func (s *HeroActionsTestSuite) TestGiveAndRemoveNeedGM() {
	_, err := s.nodes["px"].GiveActions(s.ctx, &GiveActionsInput{CharacterID: "x", EntryIDs: []string{"ha-01"}})
	s.ErrorIs(err, ErrNotArbitrator)

	_, err = s.nodes["px"].RemoveActions(s.ctx, &RemoveActionsInput{CharacterID: "x", ActionUUIDs: []string{parry.UUID}})
	s.ErrorIs(err, ErrNotArbitrator)

	s.Empty(s.bus.Pending())
}

func (s *HeroActionsTestSuite) TestSecondGMRelaysGiveAndRemove() {
	s.addNode(&models.Participant{ID: "zgm", Name: "Co-GM", IsGM: true}, DefaultRules())
	s.setHand("y", parry, rally)

	give, err := s.nodes["zgm"].GiveActions(s.ctx, &GiveActionsInput{
		CharacterID: "y",
		EntryIDs:    []string{"ha-03"},
	})
	s.Require().NoError(err)
	s.True(give.Relayed)
	s.Equal("gm", give.Recipient)

	remove, err := s.nodes["zgm"].RemoveActions(s.ctx, &RemoveActionsInput{
		CharacterID: "y",
		ActionUUIDs: []string{parry.UUID, dodge.UUID},
	})
	s.Require().NoError(err)
	s.True(remove.Relayed)

	s.pump()

	s.Equal([]string{rally.UUID, "Compendium.hero.actions.ha03"}, s.uuids("y"))
	s.Equal([]models.NoticeKind{models.NoticeKindGive, models.NoticeKindRemove}, s.kinds("zgm"))
	s.Equal([]models.ActionToken{parry}, s.lastNotice("zgm").Tokens)
	s.Empty(s.notices["gm"])
}

func (s *HeroActionsTestSuite) TestRemoveByArbitrator() {
	s.setHand("x", parry, rally)

	output, err := s.nodes["gm"].RemoveActions(s.ctx, &RemoveActionsInput{
		CharacterID: "x",
		ActionUUIDs: []string{rally.UUID},
	})
	s.Require().NoError(err)
	s.Equal([]models.ActionToken{rally}, output.Removed)
	s.Equal([]models.ActionToken{parry}, s.hand("x"))
}

func (s *HeroActionsTestSuite) TestDiscardIsIdempotent() {
	s.setHand("x", parry, rally)

	first, err := s.nodes["px"].DiscardAction(s.ctx, &DiscardActionInput{CharacterID: "x", ActionUUID: parry.UUID})
	s.Require().NoError(err)
	s.Require().NotNil(first.Discarded)
	s.Equal(parry, *first.Discarded)
	s.Equal([]models.ActionToken{rally}, first.Actions)

	second, err := s.nodes["px"].DiscardAction(s.ctx, &DiscardActionInput{CharacterID: "x", ActionUUID: parry.UUID})
	s.Require().NoError(err)
	s.Nil(second.Discarded)
	s.Equal([]models.ActionToken{rally}, second.Actions)

	s.Equal([]models.ActionToken{rally}, s.hand("x"))
	s.Equal([]models.NoticeKind{models.NoticeKindDiscard}, s.kinds("px"))

	_, err = s.nodes["py"].DiscardAction(s.ctx, &DiscardActionInput{CharacterID: "x", ActionUUID: rally.UUID})
	s.ErrorIs(err, ErrNotOwner)
}

func (s *HeroActionsTestSuite) TestUseSpendsPoints() {
	s.setHand("x", parry, rally)

	output, err := s.nodes["px"].UseAction(s.ctx, &UseActionInput{CharacterID: "x", ActionUUID: parry.UUID})
	s.Require().NoError(err)
	s.Equal(parry, output.Used)
	s.Equal(0, output.RemainingPoints)
	s.Equal([]models.ActionToken{rally}, output.Actions)

	// No points left, so the token stays
	_, err = s.nodes["px"].UseAction(s.ctx, &UseActionInput{CharacterID: "x", ActionUUID: rally.UUID})
	s.ErrorIs(err, ErrInsufficientResource)
	s.Equal([]models.ActionToken{rally}, s.hand("x"))

	_, err = s.nodes["px"].UseAction(s.ctx, &UseActionInput{CharacterID: "x", ActionUUID: dodge.UUID})
	s.ErrorIs(err, ErrActionNotFound)

	s.Equal([]models.NoticeKind{models.NoticeKindUse}, s.kinds("px"))
}

func (s *HeroActionsTestSuite) TestListActions() {
	s.setHand("y", rally)

	output, err := s.nodes["px"].ListActions(s.ctx, &ListActionsInput{CharacterID: "y"})
	s.Require().NoError(err)
	s.Equal("Yorick", output.Character.Name)
	s.Equal([]models.ActionToken{rally}, output.Actions)

	_, err = s.nodes["px"].ListActions(s.ctx, &ListActionsInput{CharacterID: "ghost"})
	s.ErrorIs(err, ErrCharacterNotFound)
}

func (s *HeroActionsTestSuite) TestUnknownPacket() {
	packet, err := bus.NewPacket("p1", bus.PacketType("bogus"), "px", "gm", struct{}{})
	s.Require().NoError(err)

	s.ErrorIs(s.nodes["gm"].HandlePacket(s.ctx, packet), ErrUnknownPacket)
}
