package heroactions

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/heroactions/internal/bus"
	"github.com/KirkDiggler/heroactions/internal/models"
	"github.com/KirkDiggler/heroactions/internal/services/messaging"
)

// drawRequest asks the deck owner to draw a batch for a character
type drawRequest struct {
	Actor   string `json:"actor"`
	DeckRef string `json:"deckRef"`
}

// giveRequest asks the arbitrator to grant already resolved tokens
type giveRequest struct {
	Actor     string               `json:"actor"`
	Tokens    []models.ActionToken `json:"tokens"`
	MarkDrawn bool                 `json:"markDrawn"`
	DeckRef   string               `json:"deckRef,omitempty"`

	// Entries pairs each token with the deck entry it came from
	Entries []string `json:"entries,omitempty"`
}

// removeRequest asks the arbitrator to take tokens away
type removeRequest struct {
	Actor  string   `json:"actor"`
	Tokens []string `json:"tokens"`
}

type tradeReject struct {
	ID     string            `json:"id"`
	Origin models.TradeParty `json:"origin"`
	Target models.TradeParty `json:"target"`
	User   string            `json:"user"`
}

type tradeError struct {
	ID     string              `json:"id"`
	Origin models.TradeParty   `json:"origin"`
	Target models.TradeParty   `json:"target"`
	Reason messaging.ErrorType `json:"reason"`
}

// HandlePacket processes one inbound packet
func (s *service) HandlePacket(ctx context.Context, packet *bus.Packet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.handle(ctx, packet)
}

// Run subscribes to this participant's packets and handles them until ctx ends
func (s *service) Run(ctx context.Context) error {
	sub, err := s.bus.Subscribe(ctx, s.self.ID)
	if err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}
	defer sub.Close()

	s.logger.Info("listening for packets")

	errs := sub.Errors()
	for {
		select {
		case <-ctx.Done():
			return nil
		case packet, ok := <-sub.Packets():
			if !ok {
				return nil
			}
			if err := s.HandlePacket(ctx, packet); err != nil {
				s.logger.Warnw("failed to handle packet",
					"type", packet.Type,
					"from", packet.From,
					"error", err,
				)
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			s.logger.Warnw("bad packet", "error", err)
		}
	}
}

func (s *service) handle(ctx context.Context, packet *bus.Packet) error {
	switch packet.Type {
	case bus.PacketTradeRequest:
		var trade models.TradeRequest
		if err := packet.Decode(&trade); err != nil {
			return err
		}
		return s.handleTradeRequest(ctx, &trade)
	case bus.PacketTradeAccept:
		var trade models.TradeRequest
		if err := packet.Decode(&trade); err != nil {
			return err
		}
		return s.handleTradeAccept(ctx, &trade)
	case bus.PacketTradeReject:
		var reject tradeReject
		if err := packet.Decode(&reject); err != nil {
			return err
		}
		return s.handleTradeReject(ctx, &reject)
	case bus.PacketTradeError:
		var tradeErr tradeError
		if err := packet.Decode(&tradeErr); err != nil {
			return err
		}
		return s.handleTradeError(ctx, &tradeErr)
	case bus.PacketDrawRequest:
		var req drawRequest
		if err := packet.Decode(&req); err != nil {
			return err
		}
		return s.handleDrawRequest(ctx, packet.From, &req)
	case bus.PacketGiveRequest:
		var req giveRequest
		if err := packet.Decode(&req); err != nil {
			return err
		}
		return s.handleGiveRequest(ctx, packet.From, &req)
	case bus.PacketRemoveRequest:
		var req removeRequest
		if err := packet.Decode(&req); err != nil {
			return err
		}
		return s.handleRemoveRequest(ctx, packet.From, &req)
	case bus.PacketNotice:
		var n models.Notice
		if err := packet.Decode(&n); err != nil {
			return err
		}
		return s.notifier.Notify(ctx, &n)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownPacket, packet.Type)
	}
}

// send addresses a packet. A packet to this participant is handled in place
// and never touches the bus.
func (s *service) send(ctx context.Context, packetType bus.PacketType, to string, payload any) error {
	packet, err := bus.NewPacket(s.uuidGenerator.NewUUID(), packetType, s.self.ID, to, payload)
	if err != nil {
		return err
	}

	if to == s.self.ID {
		return s.handle(ctx, packet)
	}

	return s.bus.Publish(ctx, packet)
}

func (s *service) handleDrawRequest(ctx context.Context, from string, req *drawRequest) error {
	char, err := s.getCharacter(ctx, req.Actor)
	if err == nil {
		err = s.requireEligible(char)
	}
	if err == nil {
		err = s.requireAuthority(ctx, from, char.Owners)
	}
	if err != nil {
		return s.fail(ctx, from, req.Actor, err)
	}

	if _, err := s.drawFor(ctx, from, char, req.DeckRef); err != nil {
		return s.fail(ctx, from, char.Name, err)
	}
	return nil
}

func (s *service) handleGiveRequest(ctx context.Context, from string, req *giveRequest) error {
	char, err := s.getCharacter(ctx, req.Actor)
	if err == nil {
		err = s.requireEligible(char)
	}
	if err == nil {
		err = s.requireGM(ctx, from)
	}
	if err == nil {
		err = s.requireArbitrator(ctx, s.self.ID)
	}
	if err != nil {
		return s.fail(ctx, from, req.Actor, err)
	}

	if _, err := s.giveLocal(ctx, from, char, req.DeckRef, req.Tokens, req.Entries, req.MarkDrawn); err != nil {
		return s.fail(ctx, from, char.Name, err)
	}
	return nil
}

func (s *service) handleRemoveRequest(ctx context.Context, from string, req *removeRequest) error {
	char, err := s.getCharacter(ctx, req.Actor)
	if err == nil {
		err = s.requireGM(ctx, from)
	}
	if err == nil {
		err = s.requireArbitrator(ctx, s.self.ID)
	}
	if err != nil {
		return s.fail(ctx, from, req.Actor, err)
	}

	if _, err := s.removeLocal(ctx, from, char, req.Tokens); err != nil {
		return s.fail(ctx, from, char.Name, err)
	}
	return nil
}
