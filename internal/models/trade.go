package models

// TradeParty is one side of a trade
type TradeParty struct {
	// Actor is the character ID
	Actor string `json:"actor"`

	// User is the participant acting for the character
	User string `json:"user"`

	// Action is the offered token uuid; optional for the target until accepted
	Action string `json:"action,omitempty"`
}

// TradeRequest is a one-for-one exchange proposal. It lives for one round of
// negotiation and is never persisted.
type TradeRequest struct {
	// ID correlates every packet of one negotiation
	ID string `json:"id"`

	// Origin is the initiating side
	Origin TradeParty `json:"origin"`

	// Target is the side asked to give up a token
	Target TradeParty `json:"target"`
}

// Complete reports whether both sides name the token they give up
func (r *TradeRequest) Complete() bool {
	return r.Origin.Action != "" && r.Target.Action != ""
}
