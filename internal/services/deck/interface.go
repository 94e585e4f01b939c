package deck

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/heroactions/internal/services/deck Service

import (
	"context"

	"github.com/KirkDiggler/heroactions/internal/models"
)

// Service draws action tokens from the shared deck
type Service interface {
	// GetActiveDeck resolves the custom deck, then the world default, then the builtin deck
	GetActiveDeck(ctx context.Context) (*models.Deck, error)

	// Draw performs a single draw
	Draw(ctx context.Context, input *DrawInput) (*DrawOutput, error)

	// DrawMany draws up to Count tokens, stopping on a misconfigured entry
	DrawMany(ctx context.Context, input *DrawManyInput) (*DrawManyOutput, error)

	// ResolveEntries turns chosen entries into tokens without rolling
	ResolveEntries(ctx context.Context, input *ResolveEntriesInput) (*ResolveEntriesOutput, error)

	// MarkDrawn sets the drawn marker on exactly the given entries
	MarkDrawn(ctx context.Context, input *MarkDrawnInput) error

	// ReleaseDrawn clears the drawn marker so the entries can come up again
	ReleaseDrawn(ctx context.Context, input *ReleaseDrawnInput) error

	// EnsureWorldDeck creates the world default deck from the builtin one
	EnsureWorldDeck(ctx context.Context, input *EnsureWorldDeckInput) (*models.Deck, error)
}
