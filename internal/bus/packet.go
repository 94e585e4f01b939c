package bus

import (
	"encoding/json"
	"errors"
	"fmt"
)

// PacketType names a message kind on the bus
type PacketType string

const (
	PacketTradeRequest  PacketType = "trade-request"
	PacketTradeAccept   PacketType = "trade-accept"
	PacketTradeReject   PacketType = "trade-reject"
	PacketTradeError    PacketType = "trade-error"
	PacketDrawRequest   PacketType = "draw-request"
	PacketGiveRequest   PacketType = "give-request"
	PacketRemoveRequest PacketType = "remove-request"
	PacketNotice        PacketType = "notice"
)

// ErrNoRecipient is returned when a packet has no addressee
var ErrNoRecipient = errors.New("packet has no recipient")

// Packet is a message addressed to exactly one participant
type Packet struct {
	ID      string          `json:"id"`
	Type    PacketType      `json:"type"`
	From    string          `json:"from"`
	To      string          `json:"to"`
	Payload json.RawMessage `json:"payload"`
}

// NewPacket encodes the payload into a packet
func NewPacket(id string, packetType PacketType, from, to string, payload any) (*Packet, error) {
	if to == "" {
		return nil, ErrNoRecipient
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", packetType, err)
	}

	return &Packet{
		ID:      id,
		Type:    packetType,
		From:    from,
		To:      to,
		Payload: raw,
	}, nil
}

// Decode unmarshals the payload into v
func (p *Packet) Decode(v any) error {
	if err := json.Unmarshal(p.Payload, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s payload: %w", p.Type, err)
	}
	return nil
}
