package authority

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/heroactions/internal/services/authority Service

import "context"

// Service decides who may mutate what. Nothing is cached: every call reads
// current presence, so arbitration changes between request and reply are
// always observed.
type Service interface {
	// Arbitrator returns the elected arbitrator
	Arbitrator(ctx context.Context) (*ArbitratorOutput, error)

	// HasAuthority reports whether a participant may mutate a document
	HasAuthority(ctx context.Context, input *HasAuthorityInput) (bool, error)

	// Resolve decides between applying locally and relaying
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)

	// Recipient picks the participant a relay about a document goes to
	Recipient(ctx context.Context, input *RecipientInput) (string, error)

	// IsGM reports whether a known participant is a game master
	IsGM(ctx context.Context, input *IsGMInput) (bool, error)
}
