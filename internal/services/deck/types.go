package deck

import (
	"github.com/KirkDiggler/heroactions/internal/common/uuid"
	"github.com/KirkDiggler/heroactions/internal/dice"
	"github.com/KirkDiggler/heroactions/internal/models"
	deckRepo "github.com/KirkDiggler/heroactions/internal/repositories/deck"
	documentRepo "github.com/KirkDiggler/heroactions/internal/repositories/document"
	"github.com/KirkDiggler/heroactions/internal/services/authority"
)

// DeckError is a custom error type for deck errors
type DeckError string

// Error implements the error interface
func (e DeckError) Error() string {
	return string(e)
}

const (
	ErrDeckUnresolved   DeckError = "no hero action deck could be resolved"
	ErrNoFormula        DeckError = "deck has no formula and cannot be normalized"
	ErrNotArbitrator    DeckError = "only the arbitrator can create the world deck"
	ErrEntryNotFound    DeckError = "deck entry not found"
	ErrNilConfig        DeckError = "config cannot be nil"
	ErrNilDeckRepo      DeckError = "deck repository cannot be nil"
	ErrNilDocumentRepo  DeckError = "document repository cannot be nil"
	ErrNilAuthority     DeckError = "authority service cannot be nil"
	ErrNilDiceRoller    DeckError = "dice roller cannot be nil"
	ErrNilUUIDGenerator DeckError = "UUID generator cannot be nil"
)

// Outcome is the result kind of a single draw
type Outcome string

const (
	// OutcomeDrawn yielded a token
	OutcomeDrawn Outcome = "drawn"

	// OutcomeEmpty yielded nothing; keep going with the next attempt
	OutcomeEmpty Outcome = "empty"

	// OutcomeUnresolved hit an entry with no usable reference; stop the batch
	OutcomeUnresolved Outcome = "unresolved"
)

// Config holds the deck service settings and dependencies
type Config struct {
	// DefaultDeckName finds the world default deck
	DefaultDeckName string

	// BuiltinDeckID is where the embedded fallback deck is stored
	BuiltinDeckID string

	DeckRepo      deckRepo.Repository
	DocumentRepo  documentRepo.Repository
	Authority     authority.Service
	DiceRoller    dice.Roller
	UUIDGenerator uuid.UUID
}

// DrawInput names who draws from which deck
type DrawInput struct {
	ParticipantID string
	DeckID        string
}

type DrawOutput struct {
	Outcome Outcome
	Token   *models.ActionToken
	EntryID string
	Roll    int

	// Reshuffled is set when every drawn marker was reset before rolling
	Reshuffled bool
}

type DrawManyInput struct {
	ParticipantID string
	DeckID        string
	Count         int
}

type DrawManyOutput struct {
	Tokens   []models.ActionToken
	EntryIDs []string

	// Empty counts draws that produced nothing and were rolled again
	Empty int

	// Unresolved is set when the batch stopped on a misconfigured entry
	Unresolved bool

	Reshuffled bool
}

type ResolveEntriesInput struct {
	DeckID   string
	EntryIDs []string
}

type ResolveEntriesOutput struct {
	Tokens []models.ActionToken

	// EntryIDs are the entries that produced Tokens, in the same order
	EntryIDs []string
}

type MarkDrawnInput struct {
	DeckID   string
	EntryIDs []string
}

// ReleaseDrawnInput lists drawn entries whose tokens never reached a hand
type ReleaseDrawnInput struct {
	DeckID   string
	EntryIDs []string
}

type EnsureWorldDeckInput struct {
	ParticipantID string
}
