package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpliceFind(t *testing.T) {
	list := []ActionToken{
		{UUID: "a", Name: "Alpha"},
		{UUID: "b", Name: "Bravo"},
		{UUID: "b", Name: "Bravo again"},
	}

	t.Run("removes the first match only", func(t *testing.T) {
		out, found := SpliceFind(list, ByUUID("b"))
		assert.NotNil(t, found)
		assert.Equal(t, "Bravo", found.Name)
		assert.Equal(t, []ActionToken{{UUID: "a", Name: "Alpha"}, {UUID: "b", Name: "Bravo again"}}, out)
	})

	t.Run("leaves the input untouched", func(t *testing.T) {
		_, _ = SpliceFind(list, ByUUID("a"))
		assert.Len(t, list, 3)
		assert.Equal(t, "a", list[0].UUID)
	})

	t.Run("returns nil when nothing matches", func(t *testing.T) {
		out, found := SpliceFind(list, ByUUID("zzz"))
		assert.Nil(t, found)
		assert.Equal(t, list, out)
	})

	t.Run("empty list", func(t *testing.T) {
		out, found := SpliceFind(nil, ByUUID("a"))
		assert.Nil(t, found)
		assert.Empty(t, out)
	})
}

func TestDeckEntryReference(t *testing.T) {
	tests := []struct {
		name  string
		entry DeckEntry
		want  string
	}{
		{"document", DeckEntry{Type: EntryTypeDocument, Collection: "JournalEntry", DocumentID: "abc"}, "JournalEntry.abc"},
		{"compendium", DeckEntry{Type: EntryTypeCompendium, Collection: "hero.actions", DocumentID: "xyz"}, "Compendium.hero.actions.xyz"},
		{"text has no direct reference", DeckEntry{Type: EntryTypeText, Text: "@UUID[Item.a]"}, ""},
		{"missing id", DeckEntry{Type: EntryTypeDocument, Collection: "Item"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.Reference())
		})
	}
}

func TestDeckAllDrawn(t *testing.T) {
	deck := &Deck{Entries: []DeckEntry{{ID: "1", Drawn: true}, {ID: "2"}}}
	assert.False(t, deck.AllDrawn())

	deck.Entries[1].Drawn = true
	assert.True(t, deck.AllDrawn())

	assert.False(t, (&Deck{}).AllDrawn())
}
