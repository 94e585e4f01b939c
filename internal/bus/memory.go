package bus

import (
	"context"
	"errors"
	"sync"
)

// Memory is an in-process bus. Packets for a subscribed participant go
// straight to its subscription; anything else waits in a FIFO queue that
// Next drains in publish order.
type Memory struct {
	mu          sync.Mutex
	queue       []*Packet
	subscribers map[string]*memorySubscriber
}

type memorySubscriber struct {
	packets chan *Packet
	done    chan struct{}
}

// NewMemory creates an empty in-process bus
func NewMemory() *Memory {
	return &Memory{
		subscribers: make(map[string]*memorySubscriber),
	}
}

// Publish hands the packet to the addressee's subscription or queues it
func (m *Memory) Publish(ctx context.Context, packet *Packet) error {
	if packet == nil {
		return errors.New("packet cannot be nil")
	}

	if packet.To == "" {
		return ErrNoRecipient
	}

	m.mu.Lock()
	sub, ok := m.subscribers[packet.To]
	if !ok {
		m.queue = append(m.queue, packet)
		m.mu.Unlock()
		return nil
	}
	m.mu.Unlock()

	select {
	case sub.packets <- packet:
		return nil
	case <-sub.done:
		// Unsubscribed while waiting; at-most-once delivery drops it
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribe registers the participant; a second subscription replaces the
// first. The packets channel is never closed, so readers also watch ctx.
func (m *Memory) Subscribe(ctx context.Context, participantID string) (*Subscription, error) {
	if participantID == "" {
		return nil, errors.New("participant ID cannot be empty")
	}

	sub := &memorySubscriber{
		packets: make(chan *Packet, subscriptionBuffer),
		done:    make(chan struct{}),
	}
	errorsChan := make(chan error)

	m.mu.Lock()
	m.subscribers[participantID] = sub
	m.mu.Unlock()

	subCtx, cancelFunc := context.WithCancel(ctx)
	go func() {
		<-subCtx.Done()

		m.mu.Lock()
		if m.subscribers[participantID] == sub {
			delete(m.subscribers, participantID)
		}
		m.mu.Unlock()
		close(sub.done)
		close(errorsChan)
	}()

	return &Subscription{
		packets: sub.packets,
		errors:  errorsChan,
		cancel:  cancelFunc,
	}, nil
}

// Next pops the oldest queued packet
func (m *Memory) Next() (*Packet, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.queue) == 0 {
		return nil, false
	}

	packet := m.queue[0]
	m.queue = m.queue[1:]
	return packet, true
}

// Pending returns a copy of the queued packets without removing them
func (m *Memory) Pending() []*Packet {
	m.mu.Lock()
	defer m.mu.Unlock()

	pending := make([]*Packet, len(m.queue))
	copy(pending, m.queue)
	return pending
}
