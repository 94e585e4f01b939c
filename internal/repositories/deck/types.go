package deck

import "github.com/KirkDiggler/heroactions/internal/models"

type SaveDeckInput struct {
	Deck *models.Deck
}

type GetDeckInput struct {
	DeckID string
}

type GetDeckByNameInput struct {
	Name string
}

type ListDecksInput struct {
}

type ListDecksOutput struct {
	Decks []*models.Deck
}

type DeleteDeckInput struct {
	DeckID string
}

// UpdateDeckInput mutates a deck in place; an error from Mutate aborts the write
type UpdateDeckInput struct {
	DeckID string
	Mutate func(deck *models.Deck) error
}

type SetCustomDeckRefInput struct {
	DeckRef string
}
