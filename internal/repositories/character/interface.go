package character

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/heroactions/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/heroactions/internal/models"
)

// Repository defines the interface for character data persistence
type Repository interface {
	// SaveCharacter persists a character
	SaveCharacter(ctx context.Context, input *SaveCharacterInput) error

	// GetCharacter retrieves a character by ID
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*models.Character, error)

	// SpendPoints atomically deducts hero points, failing if too few remain
	SpendPoints(ctx context.Context, input *SpendPointsInput) (*SpendPointsOutput, error)

	// AddPoints adds hero points (negative amounts are clamped at zero)
	AddPoints(ctx context.Context, input *AddPointsInput) (*AddPointsOutput, error)
}
