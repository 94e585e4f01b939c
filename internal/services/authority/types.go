package authority

import (
	"github.com/KirkDiggler/heroactions/internal/models"
	participantRepo "github.com/KirkDiggler/heroactions/internal/repositories/participant"
)

// AuthorityError is a custom error type for authority errors
type AuthorityError string

// Error implements the error interface
func (e AuthorityError) Error() string {
	return string(e)
}

const (
	ErrNoArbitratorOnline AuthorityError = "no arbitrator is online"
	ErrNilConfig          AuthorityError = "config cannot be nil"
	ErrNilParticipantRepo AuthorityError = "participant repository cannot be nil"
	ErrEmptyParticipantID AuthorityError = "participant ID cannot be empty"
)

// Route is where an operation runs
type Route string

const (
	// RouteLocal applies the operation in this process
	RouteLocal Route = "local"

	// RouteRelay sends the operation as a packet to another participant
	RouteRelay Route = "relay"
)

// Config holds the dependencies of the authority service
type Config struct {
	ParticipantRepo participantRepo.Repository
}

type ArbitratorOutput struct {
	Participant *models.Participant
}

// HasAuthorityInput names the acting participant and the document's owners
type HasAuthorityInput struct {
	ParticipantID string
	Owners        []string

	// ArbitratorOnly ignores ownership; used for give, remove and table creation
	ArbitratorOnly bool
}

type ResolveInput struct {
	ParticipantID  string
	Owners         []string
	ArbitratorOnly bool
}

type ResolveOutput struct {
	Route Route

	// Recipient is set when Route is RouteRelay
	Recipient string
}

type RecipientInput struct {
	Owners []string

	// ArbitratorOnly skips owners and always picks the arbitrator
	ArbitratorOnly bool
}

type IsGMInput struct {
	ParticipantID string
}
