package deck

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/KirkDiggler/heroactions/internal/common/uuid"
	"github.com/KirkDiggler/heroactions/internal/dice"
	"github.com/KirkDiggler/heroactions/internal/models"
	deckRepo "github.com/KirkDiggler/heroactions/internal/repositories/deck"
	documentRepo "github.com/KirkDiggler/heroactions/internal/repositories/document"
	"github.com/KirkDiggler/heroactions/internal/services/authority"
)

const (
	// Empty draws in a row before a batch gives up on the deck
	maxEmptyDraws = 20

	// Optimistic transaction retries when another node wrote the deck
	maxConflictRetries = 3
)

//go:embed builtin.json
var builtinJSON []byte

// Matches @UUID[Compendium.pack.id]{Label}; the label is optional
var referencePattern = regexp.MustCompile(`@UUID\[([^\]]+)\](?:\{([^}]*)\})?`)

type service struct {
	defaultDeckName string
	builtinDeckID   string
	builtin         *models.Deck

	deckRepo      deckRepo.Repository
	documentRepo  documentRepo.Repository
	authority     authority.Service
	diceRoller    dice.Roller
	uuidGenerator uuid.UUID
}

// New creates a new deck service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.DeckRepo == nil {
		return nil, ErrNilDeckRepo
	}

	if cfg.DocumentRepo == nil {
		return nil, ErrNilDocumentRepo
	}

	if cfg.Authority == nil {
		return nil, ErrNilAuthority
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	var builtin models.Deck
	if err := json.Unmarshal(builtinJSON, &builtin); err != nil {
		return nil, fmt.Errorf("failed to load builtin deck: %w", err)
	}
	if cfg.BuiltinDeckID != "" {
		builtin.ID = cfg.BuiltinDeckID
	}

	return &service{
		defaultDeckName: cfg.DefaultDeckName,
		builtinDeckID:   cfg.BuiltinDeckID,
		builtin:         &builtin,
		deckRepo:        cfg.DeckRepo,
		documentRepo:    cfg.DocumentRepo,
		authority:       cfg.Authority,
		diceRoller:      cfg.DiceRoller,
		uuidGenerator:   cfg.UUIDGenerator,
	}, nil
}

// GetActiveDeck walks custom deck, world default, builtin deck
func (s *service) GetActiveDeck(ctx context.Context) (*models.Deck, error) {
	ref, err := s.deckRepo.GetCustomDeckRef(ctx)
	if err != nil {
		return nil, err
	}

	if ref != "" {
		d, err := s.deckRepo.GetDeck(ctx, &deckRepo.GetDeckInput{
			DeckID: ref,
		})
		if err == nil {
			return d, nil
		}
		if !errors.Is(err, deckRepo.ErrDeckNotFound) {
			return nil, err
		}
	}

	if s.defaultDeckName != "" {
		d, err := s.deckRepo.GetDeckByName(ctx, &deckRepo.GetDeckByNameInput{
			Name: s.defaultDeckName,
		})
		if err == nil {
			return d, nil
		}
		if !errors.Is(err, deckRepo.ErrDeckNotFound) {
			return nil, err
		}
	}

	if s.builtinDeckID != "" {
		return s.getDeck(ctx, s.builtinDeckID)
	}

	return nil, ErrDeckUnresolved
}

// Draw rolls once against the deck and resolves the entry it lands on
func (s *service) Draw(ctx context.Context, input *DrawInput) (*DrawOutput, error) {
	if input == nil || input.DeckID == "" {
		return nil, ErrDeckUnresolved
	}

	var output *DrawOutput
	err := s.update(ctx, input.DeckID, func(d *models.Deck) error {
		if d.Formula == "" {
			ok, err := s.authority.HasAuthority(ctx, &authority.HasAuthorityInput{
				ParticipantID: input.ParticipantID,
				Owners:        d.Owners,
			})
			if err != nil {
				return err
			}
			if !ok {
				return ErrNoFormula
			}
			normalize(d)
		}

		formula, err := dice.ParseFormula(d.Formula)
		if err != nil {
			return fmt.Errorf("deck %s: %w", d.ID, err)
		}

		out := &DrawOutput{}
		if !d.Replacement && d.AllDrawn() {
			for i := range d.Entries {
				d.Entries[i].Drawn = false
			}
			out.Reshuffled = true
		}

		entry, roll := s.roll(d, formula)
		out.Roll = roll
		output = out

		if entry == nil {
			out.Outcome = OutcomeEmpty
			return nil
		}

		out.EntryID = entry.ID
		token, err := s.resolve(ctx, entry)
		if err != nil {
			return err
		}
		if token == nil {
			out.Outcome = OutcomeUnresolved
			return nil
		}

		if !d.Replacement {
			entry.Drawn = true
		}
		out.Outcome = OutcomeDrawn
		out.Token = token
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// DrawMany calls Draw until Count tokens are drawn. An empty draw is retried
// without using up an attempt; an unresolved entry stops the batch and keeps
// what was already drawn.
func (s *service) DrawMany(ctx context.Context, input *DrawManyInput) (*DrawManyOutput, error) {
	if input == nil {
		return nil, ErrDeckUnresolved
	}

	output := &DrawManyOutput{
		Tokens:   []models.ActionToken{},
		EntryIDs: []string{},
	}

	emptyRun := 0
	for len(output.Tokens) < input.Count {
		drawn, err := s.Draw(ctx, &DrawInput{
			ParticipantID: input.ParticipantID,
			DeckID:        input.DeckID,
		})
		if err != nil {
			return nil, err
		}

		output.Reshuffled = output.Reshuffled || drawn.Reshuffled

		switch drawn.Outcome {
		case OutcomeEmpty:
			output.Empty++
			emptyRun++
			if emptyRun >= maxEmptyDraws {
				return output, nil
			}
			continue
		case OutcomeUnresolved:
			output.Unresolved = true
			return output, nil
		}

		emptyRun = 0
		output.Tokens = append(output.Tokens, *drawn.Token)
		output.EntryIDs = append(output.EntryIDs, drawn.EntryID)
	}

	return output, nil
}

// ResolveEntries resolves chosen entries the way a natural draw would.
// Entries without a usable reference are skipped and left out of EntryIDs.
func (s *service) ResolveEntries(ctx context.Context, input *ResolveEntriesInput) (*ResolveEntriesOutput, error) {
	if input == nil || input.DeckID == "" {
		return nil, ErrDeckUnresolved
	}

	d, err := s.getDeck(ctx, input.DeckID)
	if err != nil {
		return nil, err
	}

	output := &ResolveEntriesOutput{
		Tokens:   []models.ActionToken{},
		EntryIDs: []string{},
	}
	for _, entryID := range input.EntryIDs {
		entry := d.Entry(entryID)
		if entry == nil {
			return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, entryID)
		}

		token, err := s.resolve(ctx, entry)
		if err != nil {
			return nil, err
		}
		if token == nil {
			continue
		}

		output.Tokens = append(output.Tokens, *token)
		output.EntryIDs = append(output.EntryIDs, entryID)
	}

	return output, nil
}

// MarkDrawn flags exactly the listed entries and leaves the rest alone
func (s *service) MarkDrawn(ctx context.Context, input *MarkDrawnInput) error {
	if input == nil || input.DeckID == "" {
		return ErrDeckUnresolved
	}

	if len(input.EntryIDs) == 0 {
		return nil
	}

	return s.update(ctx, input.DeckID, func(d *models.Deck) error {
		for _, entryID := range input.EntryIDs {
			entry := d.Entry(entryID)
			if entry == nil {
				return fmt.Errorf("%w: %s", ErrEntryNotFound, entryID)
			}
			entry.Drawn = true
		}
		return nil
	})
}

// ReleaseDrawn clears the listed markers. Entries removed from the deck since
// the draw are ignored.
func (s *service) ReleaseDrawn(ctx context.Context, input *ReleaseDrawnInput) error {
	if input == nil || input.DeckID == "" {
		return ErrDeckUnresolved
	}

	if len(input.EntryIDs) == 0 {
		return nil
	}

	return s.update(ctx, input.DeckID, func(d *models.Deck) error {
		for _, entryID := range input.EntryIDs {
			if entry := d.Entry(entryID); entry != nil {
				entry.Drawn = false
			}
		}
		return nil
	})
}

// EnsureWorldDeck returns the world default deck, copying the builtin deck
// under the default name when none exists yet
func (s *service) EnsureWorldDeck(ctx context.Context, input *EnsureWorldDeckInput) (*models.Deck, error) {
	if input == nil || s.defaultDeckName == "" {
		return nil, ErrDeckUnresolved
	}

	ok, err := s.authority.HasAuthority(ctx, &authority.HasAuthorityInput{
		ParticipantID:  input.ParticipantID,
		ArbitratorOnly: true,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotArbitrator
	}

	existing, err := s.deckRepo.GetDeckByName(ctx, &deckRepo.GetDeckByNameInput{
		Name: s.defaultDeckName,
	})
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, deckRepo.ErrDeckNotFound) {
		return nil, err
	}

	d := s.builtinCopy()
	d.ID = s.uuidGenerator.NewUUID()
	d.Name = s.defaultDeckName

	if err := s.deckRepo.SaveDeck(ctx, &deckRepo.SaveDeckInput{
		Deck: d,
	}); err != nil {
		return nil, err
	}

	return d, nil
}

// update runs a deck mutation, retrying lost optimistic transactions and
// installing the builtin deck the first time it is written
func (s *service) update(ctx context.Context, deckID string, mutate func(*models.Deck) error) error {
	installed := false
	for attempt := 0; ; attempt++ {
		_, err := s.deckRepo.UpdateDeck(ctx, &deckRepo.UpdateDeckInput{
			DeckID: deckID,
			Mutate: mutate,
		})

		switch {
		case err == nil:
			return nil
		case errors.Is(err, deckRepo.ErrConflict) && attempt < maxConflictRetries:
			continue
		case errors.Is(err, deckRepo.ErrDeckNotFound) && deckID == s.builtinDeckID && !installed:
			if err := s.deckRepo.SaveDeck(ctx, &deckRepo.SaveDeckInput{
				Deck: s.builtinCopy(),
			}); err != nil {
				return err
			}
			installed = true
			continue
		case errors.Is(err, deckRepo.ErrDeckNotFound):
			return ErrDeckUnresolved
		default:
			return err
		}
	}
}

// getDeck reads a stored deck, falling back to the embedded builtin deck
func (s *service) getDeck(ctx context.Context, deckID string) (*models.Deck, error) {
	d, err := s.deckRepo.GetDeck(ctx, &deckRepo.GetDeckInput{
		DeckID: deckID,
	})
	if err == nil {
		return d, nil
	}

	if !errors.Is(err, deckRepo.ErrDeckNotFound) {
		return nil, err
	}

	if deckID == s.builtinDeckID {
		return s.builtinCopy(), nil
	}

	return nil, ErrDeckUnresolved
}

func (s *service) builtinCopy() *models.Deck {
	d := *s.builtin
	d.Owners = append([]string{}, s.builtin.Owners...)
	d.Entries = append([]models.DeckEntry{}, s.builtin.Entries...)
	return &d
}

// roll finds the entry a formula total lands on. Without replacement a total
// that misses the undrawn entries is rolled again over just those entries, so
// a deck with anything left never comes up empty.
func (s *service) roll(d *models.Deck, formula dice.Formula) (*models.DeckEntry, int) {
	total := formula.Roll(s.diceRoller)

	entry := covering(d, total)
	if d.Replacement || (entry != nil && !entry.Drawn) {
		return entry, total
	}

	span := 0
	for i := range d.Entries {
		if !d.Entries[i].Drawn {
			span += width(&d.Entries[i])
		}
	}
	if span == 0 {
		return nil, total
	}

	pick := s.diceRoller.Roll(span)
	for i := range d.Entries {
		e := &d.Entries[i]
		if e.Drawn {
			continue
		}
		if pick <= width(e) {
			return e, e.Range[0] + pick - 1
		}
		pick -= width(e)
	}

	return nil, total
}

// width is how many totals an entry covers, at least one
func width(e *models.DeckEntry) int {
	if w := e.Range[1] - e.Range[0] + 1; w > 0 {
		return w
	}
	return 1
}

func covering(d *models.Deck, total int) *models.DeckEntry {
	for i := range d.Entries {
		if d.Entries[i].Covers(total) {
			return &d.Entries[i]
		}
	}
	return nil
}

// normalize sizes the formula to the total entry weight and lays the
// entries' ranges end to end in table order
func normalize(d *models.Deck) {
	low := 1
	for i := range d.Entries {
		if d.Entries[i].Weight < 1 {
			d.Entries[i].Weight = 1
		}
		d.Entries[i].Range = [2]int{low, low + d.Entries[i].Weight - 1}
		low += d.Entries[i].Weight
	}

	total := low - 1
	if total == 0 {
		d.Formula = "0"
		return
	}
	d.Formula = fmt.Sprintf("1d%d", total)
}

// resolve turns an entry into a token, or nil when it has no usable reference
func (s *service) resolve(ctx context.Context, entry *models.DeckEntry) (*models.ActionToken, error) {
	var ref, name string

	switch entry.Type {
	case models.EntryTypeText, "":
		m := referencePattern.FindStringSubmatch(entry.Text)
		if m == nil {
			return nil, nil
		}
		ref, name = m[1], m[2]
	case models.EntryTypeDocument, models.EntryTypeCompendium:
		ref, name = entry.Reference(), entry.Text
	default:
		return nil, nil
	}

	if ref == "" {
		return nil, nil
	}

	if name == "" {
		resolved, err := s.documentName(ctx, ref)
		if err != nil {
			return nil, err
		}
		name = resolved
	}

	return &models.ActionToken{
		UUID: ref,
		Name: name,
	}, nil
}

// documentName looks up a reference's display name, using the reference
// itself when the document is unknown
func (s *service) documentName(ctx context.Context, ref string) (string, error) {
	doc, err := s.documentRepo.GetDocument(ctx, &documentRepo.GetDocumentInput{
		Reference: ref,
	})
	if err != nil {
		if errors.Is(err, documentRepo.ErrDocumentNotFound) {
			return ref, nil
		}
		return "", err
	}

	return doc.Name, nil
}
