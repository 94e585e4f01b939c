package models

// CharacterType classifies a character document
type CharacterType string

const (
	// CharacterTypeCharacter is a player character, the only type that may hold hero actions
	CharacterTypeCharacter CharacterType = "character"

	// CharacterTypeNPC is a non-player character
	CharacterTypeNPC CharacterType = "npc"

	// CharacterTypeVehicle is a vehicle or other non-character actor
	CharacterTypeVehicle CharacterType = "vehicle"
)

// CanHoldActions reports whether characters of this type may draw and trade hero actions
func (t CharacterType) CanHoldActions() bool {
	return t == CharacterTypeCharacter
}

// Character is an actor whose hero actions are managed by this system
type Character struct {
	// ID is the unique identifier for the character
	ID string `json:"id"`

	// Name is the display name of the character
	Name string `json:"name"`

	// Type decides whether the character is eligible for hero actions
	Type CharacterType `json:"type"`

	// Owners are the participant IDs holding owner permission on the character
	Owners []string `json:"owners"`

	// HeroPoints is the spendable counter consumed when an action is used
	HeroPoints int `json:"heroPoints"`
}
