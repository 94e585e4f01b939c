package authority

import (
	"context"
	"errors"

	participantRepo "github.com/KirkDiggler/heroactions/internal/repositories/participant"
)

type service struct {
	participantRepo participantRepo.Repository
}

// New creates a new authority service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ParticipantRepo == nil {
		return nil, ErrNilParticipantRepo
	}

	return &service{
		participantRepo: cfg.ParticipantRepo,
	}, nil
}

// Arbitrator elects the active game master with the lowest ID
func (s *service) Arbitrator(ctx context.Context) (*ArbitratorOutput, error) {
	output, err := s.participantRepo.GetActiveParticipants(ctx, &participantRepo.GetActiveParticipantsInput{
		GMOnly: true,
	})
	if err != nil {
		return nil, err
	}

	if len(output.Participants) == 0 {
		return nil, ErrNoArbitratorOnline
	}

	return &ArbitratorOutput{
		Participant: output.Participants[0],
	}, nil
}

// HasAuthority is true for an owner, or for the arbitrator
func (s *service) HasAuthority(ctx context.Context, input *HasAuthorityInput) (bool, error) {
	if input == nil || input.ParticipantID == "" {
		return false, ErrEmptyParticipantID
	}

	if !input.ArbitratorOnly && contains(input.Owners, input.ParticipantID) {
		return true, nil
	}

	arbitrator, err := s.Arbitrator(ctx)
	if err != nil {
		if err == ErrNoArbitratorOnline {
			return false, nil
		}
		return false, err
	}

	return arbitrator.Participant.ID == input.ParticipantID, nil
}

// Resolve routes locally when the participant has authority, otherwise to
// the recipient for the document
func (s *service) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrEmptyParticipantID
	}

	local, err := s.HasAuthority(ctx, &HasAuthorityInput{
		ParticipantID:  input.ParticipantID,
		Owners:         input.Owners,
		ArbitratorOnly: input.ArbitratorOnly,
	})
	if err != nil {
		return nil, err
	}

	if local {
		return &ResolveOutput{
			Route: RouteLocal,
		}, nil
	}

	recipient, err := s.Recipient(ctx, &RecipientInput{
		Owners:         input.Owners,
		ArbitratorOnly: input.ArbitratorOnly,
	})
	if err != nil {
		return nil, err
	}

	return &ResolveOutput{
		Route:     RouteRelay,
		Recipient: recipient,
	}, nil
}

// Recipient prefers an active player owner, then the arbitrator
func (s *service) Recipient(ctx context.Context, input *RecipientInput) (string, error) {
	if input == nil {
		input = &RecipientInput{}
	}

	active, err := s.participantRepo.GetActiveParticipants(ctx, &participantRepo.GetActiveParticipantsInput{})
	if err != nil {
		return "", err
	}

	var arbitrator string
	for _, p := range active.Participants {
		// Participants are sorted by ID, so the first GM is the arbitrator
		if p.IsGM {
			if arbitrator == "" {
				arbitrator = p.ID
			}
			continue
		}

		if !input.ArbitratorOnly && contains(input.Owners, p.ID) {
			return p.ID, nil
		}
	}

	if arbitrator == "" {
		return "", ErrNoArbitratorOnline
	}

	return arbitrator, nil
}

// IsGM is false for a participant that was never registered
func (s *service) IsGM(ctx context.Context, input *IsGMInput) (bool, error) {
	if input == nil || input.ParticipantID == "" {
		return false, ErrEmptyParticipantID
	}

	p, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		ParticipantID: input.ParticipantID,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return false, nil
		}
		return false, err
	}

	return p.IsGM, nil
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
