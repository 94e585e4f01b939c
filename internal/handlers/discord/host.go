package discord

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/heroactions/internal/models"
	participantRepo "github.com/KirkDiggler/heroactions/internal/repositories/participant"
	"github.com/KirkDiggler/heroactions/internal/services/heroactions"
	"go.uber.org/zap"
)

const defaultHeartbeatInterval = 10 * time.Second

// ErrHostNotStarted is returned when a node is requested before Start
var ErrHostNotStarted = errors.New("host has not been started")

// NodeFactory builds the hero actions node for a participant
type NodeFactory func(p *models.Participant) (heroactions.Service, error)

// HostConfig holds the dependencies of a Host
type HostConfig struct {
	ParticipantRepo   participantRepo.Repository
	NewNode           NodeFactory
	HeartbeatInterval time.Duration
	Logger            *zap.SugaredLogger
}

type hostedNode struct {
	participant *models.Participant
	node        heroactions.Service
	cancel      context.CancelFunc
	done        chan struct{}
}

// Host keeps one node per Discord user. Each node listens for its packets
// and the host keeps every hosted participant's presence alive.
type Host struct {
	participantRepo participantRepo.Repository
	newNode         NodeFactory
	interval        time.Duration
	logger          *zap.SugaredLogger

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	nodes  map[string]*hostedNode
	wg     sync.WaitGroup
}

// NewHost creates a host; call Start before asking for nodes
func NewHost(cfg *HostConfig) (*Host, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.ParticipantRepo == nil {
		return nil, errors.New("participant repository cannot be nil")
	}

	if cfg.NewNode == nil {
		return nil, errors.New("node factory cannot be nil")
	}

	interval := cfg.HeartbeatInterval
	if interval <= 0 {
		interval = defaultHeartbeatInterval
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Host{
		participantRepo: cfg.ParticipantRepo,
		newNode:         cfg.NewNode,
		interval:        interval,
		logger:          logger,
		nodes:           make(map[string]*hostedNode),
	}, nil
}

// Start begins heartbeating. Nodes run until Stop or until ctx ends.
func (h *Host) Start(ctx context.Context) {
	h.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	h.ctx, h.cancel = runCtx, cancel
	h.mu.Unlock()

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()

		ticker := time.NewTicker(h.interval)
		defer ticker.Stop()

		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				h.Heartbeat(runCtx)
			}
		}
	}()
}

// Node returns the participant's node, creating it on first use. A change of
// GM status replaces the node.
func (h *Host) Node(ctx context.Context, p *models.Participant) (heroactions.Service, error) {
	if p == nil || p.ID == "" {
		return nil, errors.New("participant cannot be empty")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.ctx == nil || h.ctx.Err() != nil {
		return nil, ErrHostNotStarted
	}

	hosted, ok := h.nodes[p.ID]
	if ok && hosted.participant.IsGM == p.IsGM {
		return hosted.node, nil
	}

	if ok {
		h.logger.Infow("replacing node", "participant", p.ID, "gm", p.IsGM)
		hosted.cancel()
		<-hosted.done
		delete(h.nodes, p.ID)
	}

	if err := h.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{
		Participant: p,
	}); err != nil {
		return nil, err
	}

	if err := h.participantRepo.Heartbeat(ctx, &participantRepo.HeartbeatInput{
		ParticipantID: p.ID,
	}); err != nil {
		return nil, err
	}

	node, err := h.newNode(p)
	if err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancel(h.ctx)
	hosted = &hostedNode{
		participant: p,
		node:        node,
		cancel:      cancel,
		done:        make(chan struct{}),
	}

	go func() {
		defer close(hosted.done)
		if err := node.Run(runCtx); err != nil {
			h.logger.Errorw("node stopped", "participant", p.ID, "error", err)
		}
	}()

	h.nodes[p.ID] = hosted
	h.logger.Infow("node started", "participant", p.ID, "gm", p.IsGM)
	return node, nil
}

// Participants lists the hosted participant IDs in order
func (h *Host) Participants() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	ids := make([]string, 0, len(h.nodes))
	for id := range h.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Heartbeat refreshes the presence of every hosted participant
func (h *Host) Heartbeat(ctx context.Context) {
	for _, id := range h.Participants() {
		if err := h.participantRepo.Heartbeat(ctx, &participantRepo.HeartbeatInput{
			ParticipantID: id,
		}); err != nil {
			h.logger.Warnw("heartbeat failed", "participant", id, "error", err)
		}
	}
}

// Stop ends every node and marks its participant offline
func (h *Host) Stop(ctx context.Context) {
	h.mu.Lock()
	if h.cancel != nil {
		h.cancel()
	}
	nodes := h.nodes
	h.nodes = make(map[string]*hostedNode)
	h.mu.Unlock()

	for id, hosted := range nodes {
		<-hosted.done
		if err := h.participantRepo.SetOffline(ctx, &participantRepo.SetOfflineInput{
			ParticipantID: id,
		}); err != nil {
			h.logger.Warnw("failed to mark participant offline", "participant", id, "error", err)
		}
	}

	h.wg.Wait()
}
