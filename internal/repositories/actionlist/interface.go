package actionlist

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/heroactions/internal/repositories/actionlist Repository

import (
	"context"
)

// Repository persists each character's hero action hand.
// It does not check authority; callers go through the authority router first.
type Repository interface {
	// GetActions returns the persisted hand, or an empty one if none exists
	GetActions(ctx context.Context, input *GetActionsInput) (*GetActionsOutput, error)

	// SetActions replaces a character's hand in a single write
	SetActions(ctx context.Context, input *SetActionsInput) error

	// UpdateActions reads one or more hands, applies a mutation and writes
	// every hand back all-or-nothing
	UpdateActions(ctx context.Context, input *UpdateActionsInput) (*UpdateActionsOutput, error)
}
