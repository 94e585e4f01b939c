package models

// ActionToken is a hero action held by a character.
// UUID references the document describing what the action does; Name is a
// cached label so a hand can be shown without resolving the reference.
type ActionToken struct {
	// UUID is the document reference, also the token's identity
	UUID string `json:"uuid"`

	// Name is the display label
	Name string `json:"name"`
}

// SpliceFind removes the first token matching pred and returns the shortened
// list together with the removed token. When nothing matches the list is
// returned untouched and the token is nil.
func SpliceFind(list []ActionToken, pred func(ActionToken) bool) ([]ActionToken, *ActionToken) {
	for i, token := range list {
		if !pred(token) {
			continue
		}

		found := token
		out := make([]ActionToken, 0, len(list)-1)
		out = append(out, list[:i]...)
		out = append(out, list[i+1:]...)
		return out, &found
	}

	return list, nil
}

// ByUUID returns a predicate matching tokens with the given reference
func ByUUID(uuid string) func(ActionToken) bool {
	return func(t ActionToken) bool {
		return t.UUID == uuid
	}
}

// ContainsAction reports whether the list holds a token with the given reference
func ContainsAction(list []ActionToken, uuid string) bool {
	for _, token := range list {
		if token.UUID == uuid {
			return true
		}
	}
	return false
}

// FindAction returns the token with the given reference, or nil
func FindAction(list []ActionToken, uuid string) *ActionToken {
	for i := range list {
		if list[i].UUID == uuid {
			return &list[i]
		}
	}
	return nil
}
