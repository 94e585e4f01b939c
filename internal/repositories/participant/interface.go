package participant

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/heroactions/internal/repositories/participant Repository

import (
	"context"

	"github.com/KirkDiggler/heroactions/internal/models"
)

// Repository defines the interface for participant data and presence
type Repository interface {
	// SaveParticipant persists a participant
	SaveParticipant(ctx context.Context, input *SaveParticipantInput) error

	// GetParticipant retrieves a participant by ID
	GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error)

	// Heartbeat marks a participant as online for the presence TTL
	Heartbeat(ctx context.Context, input *HeartbeatInput) error

	// SetOffline drops a participant's presence immediately
	SetOffline(ctx context.Context, input *SetOfflineInput) error

	// GetActiveParticipants retrieves every participant with live presence
	GetActiveParticipants(ctx context.Context, input *GetActiveParticipantsInput) (*GetActiveParticipantsOutput, error)
}
