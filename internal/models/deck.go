package models

import "fmt"

// EntryType describes how a deck entry references its action document
type EntryType string

const (
	// EntryTypeText holds free text containing an @UUID[...]{label} link
	EntryTypeText EntryType = "text"

	// EntryTypeDocument references a world document by collection and id
	EntryTypeDocument EntryType = "document"

	// EntryTypeCompendium references a compendium document by pack and id
	EntryTypeCompendium EntryType = "compendium"
)

// DeckEntry is one result row of a deck
type DeckEntry struct {
	// ID is the unique identifier of the entry within its deck
	ID string `json:"id" yaml:"id"`

	// Type decides how the entry resolves to an action reference
	Type EntryType `json:"type" yaml:"type"`

	// Text is the free text, or the cached label for document entries
	Text string `json:"text" yaml:"text"`

	// Collection is the document collection or compendium pack
	Collection string `json:"collection,omitempty" yaml:"collection,omitempty"`

	// DocumentID is the id of the referenced document
	DocumentID string `json:"documentId,omitempty" yaml:"documentId,omitempty"`

	// Weight is the share of the roll range this entry covers
	Weight int `json:"weight" yaml:"weight"`

	// Range is the inclusive [low, high] roll range, set on normalize
	Range [2]int `json:"range" yaml:"range"`

	// Drawn is only meaningful when the deck draws without replacement
	Drawn bool `json:"drawn" yaml:"drawn"`
}

// Covers reports whether a roll total lands on this entry
func (e *DeckEntry) Covers(total int) bool {
	return total >= e.Range[0] && total <= e.Range[1]
}

// Reference builds the document reference for document and compendium entries
func (e *DeckEntry) Reference() string {
	if e.Collection == "" || e.DocumentID == "" {
		return ""
	}

	switch e.Type {
	case EntryTypeDocument:
		return fmt.Sprintf("%s.%s", e.Collection, e.DocumentID)
	case EntryTypeCompendium:
		return fmt.Sprintf("Compendium.%s.%s", e.Collection, e.DocumentID)
	default:
		return ""
	}
}

// Deck is the shared table hero actions are drawn from
type Deck struct {
	// ID is the unique identifier for the deck
	ID string `json:"id" yaml:"id"`

	// Name is the display name, also used to find the world default deck
	Name string `json:"name" yaml:"name"`

	// Formula sizes the draw; empty until the deck is normalized
	Formula string `json:"formula" yaml:"formula"`

	// Replacement draws with replacement when true
	Replacement bool `json:"replacement" yaml:"replacement"`

	// Owners are the participant IDs with write access to the deck
	Owners []string `json:"owners" yaml:"owners"`

	// Entries are the results in table order
	Entries []DeckEntry `json:"entries" yaml:"entries"`
}

// AllDrawn reports whether every entry carries the drawn marker
func (d *Deck) AllDrawn() bool {
	if len(d.Entries) == 0 {
		return false
	}
	for _, entry := range d.Entries {
		if !entry.Drawn {
			return false
		}
	}
	return true
}

// Entry returns the entry with the given id, or nil
func (d *Deck) Entry(entryID string) *DeckEntry {
	for i := range d.Entries {
		if d.Entries[i].ID == entryID {
			return &d.Entries[i]
		}
	}
	return nil
}
