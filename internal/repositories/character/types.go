package character

import "github.com/KirkDiggler/heroactions/internal/models"

// SaveCharacterInput contains parameters for saving a character
type SaveCharacterInput struct {
	Character *models.Character
}

// GetCharacterInput contains parameters for retrieving a character
type GetCharacterInput struct {
	CharacterID string
}

// SpendPointsInput contains parameters for spending hero points
type SpendPointsInput struct {
	CharacterID string
	Amount      int
}

// SpendPointsOutput contains the balance after spending
type SpendPointsOutput struct {
	Remaining int
}

// AddPointsInput contains parameters for granting hero points
type AddPointsInput struct {
	CharacterID string
	Amount      int
}

// AddPointsOutput contains the balance after granting
type AddPointsOutput struct {
	Total int
}
