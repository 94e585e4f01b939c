package models

// Document is a named item an action token can point at. The ID is the full
// reference, e.g. "Item.abc123" or "Compendium.hero.actions.abc123".
type Document struct {
	// ID is the reference string
	ID string `json:"id" yaml:"id"`

	// Name is the display name used for tokens
	Name string `json:"name" yaml:"name"`

	// Description is optional flavour text
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}
