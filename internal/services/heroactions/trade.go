package heroactions

import (
	"context"
	"errors"
	"sort"

	"github.com/KirkDiggler/heroactions/internal/bus"
	"github.com/KirkDiggler/heroactions/internal/models"
	actionRepo "github.com/KirkDiggler/heroactions/internal/repositories/actionlist"
	"github.com/KirkDiggler/heroactions/internal/services/authority"
	"github.com/KirkDiggler/heroactions/internal/services/messaging"
)

// InitiateTrade proposes giving OriginAction for a token of the target
// character. When this participant also controls the target the exchange runs
// at once and no packet is sent.
func (s *service) InitiateTrade(ctx context.Context, input *InitiateTradeInput) (*InitiateTradeOutput, error) {
	if input == nil || input.OriginCharacterID == "" || input.TargetCharacterID == "" {
		return nil, ErrCharacterNotFound
	}

	if input.OriginCharacterID == input.TargetCharacterID {
		return nil, ErrSelfTrade
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	origin, err := s.getCharacter(ctx, input.OriginCharacterID)
	if err != nil {
		return nil, err
	}

	target, err := s.getCharacter(ctx, input.TargetCharacterID)
	if err != nil {
		return nil, err
	}

	if err := s.requireEligible(origin); err != nil {
		return nil, err
	}

	if err := s.requireEligible(target); err != nil {
		return nil, err
	}

	if err := s.requireAuthority(ctx, s.self.ID, origin.Owners); err != nil {
		return nil, err
	}

	originHand, err := s.getActions(ctx, origin.ID)
	if err != nil {
		return nil, err
	}

	offered := models.FindAction(originHand, input.OriginAction)
	if offered == nil {
		return nil, ErrActionNotFound
	}

	if input.TargetAction != "" && input.TargetAction != input.OriginAction &&
		models.ContainsAction(originHand, input.TargetAction) {
		return nil, ErrDuplicateAction
	}

	trade := &models.TradeRequest{
		ID: s.uuidGenerator.NewUUID(),
		Origin: models.TradeParty{
			Actor:  origin.ID,
			User:   s.self.ID,
			Action: input.OriginAction,
		},
		Target: models.TradeParty{
			Actor:  target.ID,
			Action: input.TargetAction,
		},
	}

	route, err := s.route(ctx, target.Owners, false)
	if err != nil {
		return nil, err
	}

	if route.Route == authority.RouteLocal {
		if trade.Target.Action == "" {
			return nil, ErrTargetActionRequired
		}
		trade.Target.User = s.self.ID

		if err := s.exchange(ctx, trade); err != nil {
			return nil, err
		}

		return &InitiateTradeOutput{
			Trade:     trade,
			Exchanged: true,
		}, nil
	}

	recipient := route.Recipient
	trade.Target.User = recipient

	if err := s.send(ctx, bus.PacketTradeRequest, recipient, trade); err != nil {
		return nil, err
	}

	s.announce(ctx, s.self.ID, models.NoticeLevelInfo, origin, trade.ID, &messaging.GetNoticeMessageInput{
		Kind:      models.NoticeKindTradeSent,
		ActorName: origin.Name,
		OtherName: target.Name,
		Tokens:    []models.ActionToken{*offered},
	})

	return &InitiateTradeOutput{
		Trade:     trade,
		Relayed:   true,
		Recipient: recipient,
	}, nil
}

// handleTradeRequest validates an offer against current state and keeps it
// until this participant answers
func (s *service) handleTradeRequest(ctx context.Context, trade *models.TradeRequest) error {
	origin, target, offered, err := s.validateTrade(ctx, trade)
	if err == nil {
		err = s.requireAuthority(ctx, s.self.ID, target.Owners)
	}
	if err != nil {
		s.logger.Infow("trade request refused",
			"trade", trade.ID,
			"origin", trade.Origin.Actor,
			"target", trade.Target.Actor,
			"error", err,
		)
		s.tradeFailed(ctx, trade, err, trade.Origin.User)
		return nil
	}

	trade.Target.User = s.self.ID
	s.pending[trade.ID] = trade

	s.announce(ctx, s.self.ID, models.NoticeLevelInfo, target, trade.ID, &messaging.GetNoticeMessageInput{
		Kind:      models.NoticeKindTradeOffered,
		ActorName: target.Name,
		OtherName: origin.Name,
		Tokens:    []models.ActionToken{*offered},
	})

	return nil
}

// RespondTrade answers a pending trade. An accepted trade is exchanged here
// when this participant controls both characters, otherwise the arbitrator
// is asked to exchange it.
func (s *service) RespondTrade(ctx context.Context, input *RespondTradeInput) (*RespondTradeOutput, error) {
	if input == nil || input.TradeID == "" {
		return nil, ErrTradeNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	trade, ok := s.pending[input.TradeID]
	if !ok {
		return nil, ErrTradeNotFound
	}

	if !input.Accept {
		delete(s.pending, trade.ID)

		if err := s.send(ctx, bus.PacketTradeReject, trade.Origin.User, &tradeReject{
			ID:     trade.ID,
			Origin: trade.Origin,
			Target: trade.Target,
			User:   s.self.ID,
		}); err != nil {
			return nil, err
		}

		return &RespondTradeOutput{
			Trade: trade,
		}, nil
	}

	chosen := false
	if trade.Target.Action == "" {
		if input.TargetAction == "" {
			return nil, ErrTargetActionRequired
		}
		trade.Target.Action = input.TargetAction
		chosen = true
	}

	origin, target, _, err := s.validateTrade(ctx, trade)
	if errors.Is(err, ErrActionNotFound) && chosen {
		// A bad pick leaves the offer open for another choice
		trade.Target.Action = ""
		return nil, err
	}

	delete(s.pending, trade.ID)
	if err != nil {
		s.tradeFailed(ctx, trade, err, trade.Origin.User, s.self.ID)
		return nil, classify(err)
	}

	route, err := s.routeTrade(ctx, origin, target)
	if err != nil {
		s.tradeFailed(ctx, trade, err, trade.Origin.User, s.self.ID)
		return nil, err
	}

	if route.Route == authority.RouteLocal {
		if err := s.exchange(ctx, trade); err != nil {
			return nil, err
		}

		return &RespondTradeOutput{
			Trade:     trade,
			Exchanged: true,
		}, nil
	}

	recipient := route.Recipient
	if err := s.send(ctx, bus.PacketTradeAccept, recipient, trade); err != nil {
		return nil, err
	}

	s.announce(ctx, s.self.ID, models.NoticeLevelInfo, target, trade.ID, &messaging.GetNoticeMessageInput{
		Kind:      models.NoticeKindTradeAccepted,
		ActorName: target.Name,
		OtherName: origin.Name,
	})

	return &RespondTradeOutput{
		Trade:     trade,
		Relayed:   true,
		Recipient: recipient,
	}, nil
}

// handleTradeAccept runs an accepted trade. Authority is checked again
// because arbitration may have moved since the accept was sent.
func (s *service) handleTradeAccept(ctx context.Context, trade *models.TradeRequest) error {
	if !trade.Complete() {
		s.tradeFailed(ctx, trade, ErrTargetActionRequired, trade.Origin.User, trade.Target.User)
		return nil
	}

	origin, err := s.getCharacter(ctx, trade.Origin.Actor)
	if err != nil {
		s.tradeFailed(ctx, trade, ErrStaleReference, trade.Origin.User, trade.Target.User)
		return nil
	}

	target, err := s.getCharacter(ctx, trade.Target.Actor)
	if err != nil {
		s.tradeFailed(ctx, trade, ErrStaleReference, trade.Origin.User, trade.Target.User)
		return nil
	}

	route, err := s.routeTrade(ctx, origin, target)
	if err != nil {
		s.tradeFailed(ctx, trade, err, trade.Origin.User, trade.Target.User)
		return nil
	}

	if route.Route == authority.RouteRelay {
		s.logger.Infow("forwarding accepted trade", "trade", trade.ID, "arbitrator", route.Recipient)
		return s.send(ctx, bus.PacketTradeAccept, route.Recipient, trade)
	}

	// Aborted exchanges have already told both users
	if err := s.exchange(ctx, trade); err != nil && !isTradeAbort(err) {
		return err
	}
	return nil
}

func (s *service) handleTradeReject(ctx context.Context, reject *tradeReject) error {
	origin, err := s.getCharacter(ctx, reject.Origin.Actor)
	if err != nil {
		return err
	}

	targetName := reject.Target.Actor
	if target, err := s.getCharacter(ctx, reject.Target.Actor); err == nil {
		targetName = target.Name
	}

	s.announce(ctx, s.self.ID, models.NoticeLevelWarn, origin, reject.ID, &messaging.GetNoticeMessageInput{
		Kind:      models.NoticeKindTradeRejected,
		ActorName: origin.Name,
		OtherName: targetName,
	})
	return nil
}

// handleTradeError drops any pending copy of the trade and tells this
// participant why it failed
func (s *service) handleTradeError(ctx context.Context, tradeErr *tradeError) error {
	delete(s.pending, tradeErr.ID)

	actor := tradeErr.Origin.Actor
	if tradeErr.Target.User == s.self.ID {
		actor = tradeErr.Target.Actor
	}

	s.tradeNotice(ctx, tradeErr.ID, actor, tradeErr.Reason)
	return nil
}

// PendingTrades lists trades waiting for this participant's answer
func (s *service) PendingTrades(ctx context.Context) (*PendingTradesOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trades := make([]*models.TradeRequest, 0, len(s.pending))
	for _, trade := range s.pending {
		trades = append(trades, trade)
	}

	sort.Slice(trades, func(i, j int) bool {
		return trades[i].ID < trades[j].ID
	})

	return &PendingTradesOutput{
		Trades: trades,
	}, nil
}

// exchange swaps the two offered tokens in one transaction. Both tokens are
// looked up again inside it; if either is gone nothing is written and both
// users get a trade-error.
func (s *service) exchange(ctx context.Context, trade *models.TradeRequest) error {
	var given, received *models.ActionToken

	_, err := s.actionRepo.UpdateActions(ctx, &actionRepo.UpdateActionsInput{
		CharacterIDs: []string{trade.Origin.Actor, trade.Target.Actor},
		Mutate: func(hands map[string][]models.ActionToken) (map[string][]models.ActionToken, error) {
			var originHand, targetHand []models.ActionToken
			originHand, given = models.SpliceFind(hands[trade.Origin.Actor], models.ByUUID(trade.Origin.Action))
			targetHand, received = models.SpliceFind(hands[trade.Target.Actor], models.ByUUID(trade.Target.Action))
			if given == nil || received == nil {
				return nil, ErrStaleReference
			}
			if models.ContainsAction(originHand, received.UUID) || models.ContainsAction(targetHand, given.UUID) {
				return nil, ErrDuplicateAction
			}

			return map[string][]models.ActionToken{
				trade.Origin.Actor: append(originHand, *received),
				trade.Target.Actor: append(targetHand, *given),
			}, nil
		},
	})
	if err != nil {
		if errors.Is(err, actionRepo.ErrConflict) {
			err = ErrStaleReference
		}
		if isTradeAbort(err) {
			s.logger.Warnw("trade aborted",
				"trade", trade.ID,
				"origin", trade.Origin.Actor,
				"target", trade.Target.Actor,
				"error", err,
			)
			s.tradeFailed(ctx, trade, err, trade.Origin.User, trade.Target.User)
		}
		return err
	}

	s.logger.Infow("trade exchanged",
		"trade", trade.ID,
		"origin_user", trade.Origin.User,
		"origin_character", trade.Origin.Actor,
		"origin_action", given.UUID,
		"target_user", trade.Target.User,
		"target_character", trade.Target.Actor,
		"target_action", received.UUID,
	)

	originName, targetName := trade.Origin.Actor, trade.Target.Actor
	origin, originErr := s.getCharacter(ctx, trade.Origin.Actor)
	if originErr == nil {
		originName = origin.Name
	}
	target, targetErr := s.getCharacter(ctx, trade.Target.Actor)
	if targetErr == nil {
		targetName = target.Name
	}

	s.announce(ctx, trade.Origin.User, models.NoticeLevelInfo, origin, trade.ID, &messaging.GetNoticeMessageInput{
		Kind:      models.NoticeKindTradeComplete,
		ActorName: originName,
		OtherName: targetName,
		Tokens:    []models.ActionToken{*given},
		Received:  []models.ActionToken{*received},
	})

	if trade.Target.User != trade.Origin.User {
		s.announce(ctx, trade.Target.User, models.NoticeLevelInfo, target, trade.ID, &messaging.GetNoticeMessageInput{
			Kind:      models.NoticeKindTradeComplete,
			ActorName: targetName,
			OtherName: originName,
			Tokens:    []models.ActionToken{*received},
			Received:  []models.ActionToken{*given},
		})
	}

	return nil
}

// validateTrade re-reads both characters and hands. The target token is only
// checked once it has been chosen.
func (s *service) validateTrade(ctx context.Context, trade *models.TradeRequest) (*models.Character, *models.Character, *models.ActionToken, error) {
	origin, err := s.getCharacter(ctx, trade.Origin.Actor)
	if err != nil {
		return nil, nil, nil, ErrStaleReference
	}

	target, err := s.getCharacter(ctx, trade.Target.Actor)
	if err != nil {
		return nil, nil, nil, ErrStaleReference
	}

	if err := s.requireEligible(origin); err != nil {
		return nil, nil, nil, err
	}

	if err := s.requireEligible(target); err != nil {
		return nil, nil, nil, err
	}

	originHand, err := s.getActions(ctx, origin.ID)
	if err != nil {
		return nil, nil, nil, err
	}

	offered := models.FindAction(originHand, trade.Origin.Action)
	if offered == nil {
		return nil, nil, nil, ErrStaleReference
	}

	targetHand, err := s.getActions(ctx, target.ID)
	if err != nil {
		return nil, nil, nil, err
	}

	if trade.Target.Action != "" && !models.ContainsAction(targetHand, trade.Target.Action) {
		return nil, nil, nil, ErrActionNotFound
	}

	// Each side must not already hold the token it would receive
	if trade.Target.Action != trade.Origin.Action {
		if models.ContainsAction(targetHand, trade.Origin.Action) ||
			(trade.Target.Action != "" && models.ContainsAction(originHand, trade.Target.Action)) {
			return nil, nil, nil, ErrDuplicateAction
		}
	}

	return origin, target, offered, nil
}

// routeTrade runs an exchange here only when this participant may write
// both hands; otherwise it goes to the arbitrator
func (s *service) routeTrade(ctx context.Context, origin, target *models.Character) (*authority.ResolveOutput, error) {
	for _, owners := range [][]string{origin.Owners, target.Owners} {
		route, err := s.route(ctx, owners, false)
		if err != nil {
			return nil, err
		}
		if route.Route == authority.RouteRelay {
			return s.route(ctx, nil, true)
		}
	}

	return &authority.ResolveOutput{
		Route: authority.RouteLocal,
	}, nil
}

func isTradeAbort(err error) bool {
	return errors.Is(err, ErrStaleReference) || errors.Is(err, ErrDuplicateAction)
}

// tradeFailed sends a trade-error to each listed user once
func (s *service) tradeFailed(ctx context.Context, trade *models.TradeRequest, err error, users ...string) {
	reason := errorType(classify(err))
	seen := make(map[string]bool, len(users))

	for _, user := range users {
		if user == "" || seen[user] {
			continue
		}
		seen[user] = true

		if sendErr := s.send(ctx, bus.PacketTradeError, user, &tradeError{
			ID:     trade.ID,
			Origin: trade.Origin,
			Target: trade.Target,
			Reason: reason,
		}); sendErr != nil {
			s.logger.Warnw("failed to send trade error",
				"trade", trade.ID,
				"to", user,
				"error", sendErr,
			)
		}
	}
}

// tradeNotice shows a trade failure to this participant
func (s *service) tradeNotice(ctx context.Context, tradeID, characterID string, reason messaging.ErrorType) {
	actorName := characterID
	if char, err := s.getCharacter(ctx, characterID); err == nil {
		actorName = char.Name
	}

	msg, err := s.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		ErrorType: reason,
		ActorName: actorName,
	})
	if err != nil {
		s.logger.Errorw("failed to compose trade error", "trade", tradeID, "error", err)
		return
	}

	n := &models.Notice{
		ID:          s.uuidGenerator.NewUUID(),
		Participant: s.self.ID,
		Kind:        models.NoticeKindTradeError,
		Level:       models.NoticeLevelError,
		Title:       msg.Title,
		Message:     msg.Message,
		Character:   characterID,
		TradeID:     tradeID,
		Timestamp:   s.clock.Now(),
	}

	if err := s.notifier.Notify(ctx, n); err != nil {
		s.logger.Warnw("failed to deliver trade error", "trade", tradeID, "error", err)
	}
}
