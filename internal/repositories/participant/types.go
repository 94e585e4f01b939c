package participant

import "github.com/KirkDiggler/heroactions/internal/models"

// SaveParticipantInput contains parameters for saving a participant
type SaveParticipantInput struct {
	Participant *models.Participant
}

// GetParticipantInput contains parameters for retrieving a participant
type GetParticipantInput struct {
	ParticipantID string
}

// HeartbeatInput contains parameters for refreshing presence
type HeartbeatInput struct {
	ParticipantID string
}

// SetOfflineInput contains parameters for dropping presence
type SetOfflineInput struct {
	ParticipantID string
}

// GetActiveParticipantsInput contains parameters for listing online participants
type GetActiveParticipantsInput struct {
	// GMOnly restricts the result to game masters
	GMOnly bool
}

// GetActiveParticipantsOutput contains online participants sorted by ID
type GetActiveParticipantsOutput struct {
	Participants []*models.Participant
}
