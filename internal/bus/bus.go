// Package bus carries packets between participants. Delivery is at-most-once
// and only to the addressed participant; there is no broadcast.
package bus

import (
	"context"
	"fmt"
	"sync"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_bus.go github.com/KirkDiggler/heroactions/internal/bus Bus

// Bus publishes packets and subscribes a participant to its own packets
type Bus interface {
	// Publish sends a packet to its addressee
	Publish(ctx context.Context, packet *Packet) error

	// Subscribe streams packets addressed to the participant until closed
	Subscribe(ctx context.Context, participantID string) (*Subscription, error)
}

// PacketChannel is the pub/sub channel a participant listens on
func PacketChannel(participantID string) string {
	return fmt.Sprintf("heroactions:participant:%s:packets", participantID)
}

// Subscription represents an active subscription to one participant's packets.
// Caller must call Close() when done.
type Subscription struct {
	packets <-chan *Packet
	errors  <-chan error
	cancel  func()
	once    sync.Once
}

// Packets returns the channel of received packets
func (s *Subscription) Packets() <-chan *Packet {
	return s.packets
}

// Errors returns non-fatal receive errors; bad packets are skipped.
func (s *Subscription) Errors() <-chan error {
	return s.errors
}

// Close stops the subscription. Safe to call multiple times.
func (s *Subscription) Close() error {
	s.once.Do(s.cancel)
	return nil
}
