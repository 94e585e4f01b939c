package actionlist

import "github.com/KirkDiggler/heroactions/internal/models"

// GetActionsInput contains parameters for reading a hand
type GetActionsInput struct {
	CharacterID string
}

// GetActionsOutput contains the hand of a character
type GetActionsOutput struct {
	Actions []models.ActionToken
}

// SetActionsInput contains parameters for replacing a hand
type SetActionsInput struct {
	CharacterID string
	Actions     []models.ActionToken
}

// MutateFunc receives the current hands keyed by character ID and returns the
// hands to write. Returning an error aborts without writing anything.
type MutateFunc func(hands map[string][]models.ActionToken) (map[string][]models.ActionToken, error)

// UpdateActionsInput contains parameters for an atomic multi-hand update
type UpdateActionsInput struct {
	CharacterIDs []string
	Mutate       MutateFunc
}

// UpdateActionsOutput contains the hands as written
type UpdateActionsOutput struct {
	Actions map[string][]models.ActionToken
}
