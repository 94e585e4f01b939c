package models

import "time"

// Participant is a connected user of the system. Several participants may be
// game masters but only one of the active ones is the arbitrator.
type Participant struct {
	// ID is the Discord user ID of the participant
	ID string `json:"id"`

	// Name is the display name of the participant
	Name string `json:"name"`

	// IsGM marks a privileged participant eligible for arbitration
	IsGM bool `json:"isGM"`

	// LastSeen is when the participant last sent a heartbeat
	LastSeen time.Time `json:"lastSeen"`
}
