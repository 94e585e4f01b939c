package deck

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/heroactions/internal/repositories/deck Repository

import (
	"context"

	"github.com/KirkDiggler/heroactions/internal/models"
)

// Repository defines the interface for deck persistence and the world-level
// deck setting
type Repository interface {
	// SaveDeck persists a deck and indexes it by name
	SaveDeck(ctx context.Context, input *SaveDeckInput) error

	// GetDeck retrieves a deck by ID
	GetDeck(ctx context.Context, input *GetDeckInput) (*models.Deck, error)

	// GetDeckByName retrieves a deck by its display name
	GetDeckByName(ctx context.Context, input *GetDeckByNameInput) (*models.Deck, error)

	// ListDecks retrieves every indexed deck
	ListDecks(ctx context.Context, input *ListDecksInput) (*ListDecksOutput, error)

	// DeleteDeck removes a deck and its name index entry
	DeleteDeck(ctx context.Context, input *DeleteDeckInput) error

	// UpdateDeck applies a mutation to a stored deck, aborting on concurrent writes
	UpdateDeck(ctx context.Context, input *UpdateDeckInput) (*models.Deck, error)

	// GetCustomDeckRef returns the configured custom deck reference, empty when unset
	GetCustomDeckRef(ctx context.Context) (string, error)

	// SetCustomDeckRef stores the custom deck reference; empty clears it
	SetCustomDeckRef(ctx context.Context, input *SetCustomDeckRefInput) error
}
