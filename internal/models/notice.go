package models

import "time"

// NoticeLevel is the severity a notice is shown with
type NoticeLevel string

const (
	NoticeLevelInfo  NoticeLevel = "info"
	NoticeLevelWarn  NoticeLevel = "warn"
	NoticeLevelError NoticeLevel = "error"
)

// NoticeKind identifies what happened
type NoticeKind string

const (
	NoticeKindDraw          NoticeKind = "draw"
	NoticeKindGive          NoticeKind = "give"
	NoticeKindRemove        NoticeKind = "remove"
	NoticeKindDiscard       NoticeKind = "discard"
	NoticeKindUse           NoticeKind = "use"
	NoticeKindTradeOffered  NoticeKind = "trade_offered"
	NoticeKindTradeSent     NoticeKind = "trade_sent"
	NoticeKindTradeAccepted NoticeKind = "trade_accepted"
	NoticeKindTradeRejected NoticeKind = "trade_rejected"
	NoticeKindTradeError    NoticeKind = "trade_error"
	NoticeKindTradeComplete NoticeKind = "trade_complete"
	NoticeKindFailure       NoticeKind = "failure"
)

// Notice is a human-readable outcome handed to the presentation layer
type Notice struct {
	// ID is the unique identifier for the notice
	ID string `json:"id"`

	// Participant is who the notice is shown to
	Participant string `json:"participant"`

	// Kind identifies the event
	Kind NoticeKind `json:"kind"`

	// Level is the severity
	Level NoticeLevel `json:"level"`

	// Title is a short headline
	Title string `json:"title"`

	// Message is the body text
	Message string `json:"message"`

	// Character is the character the notice is about, if any
	Character string `json:"character,omitempty"`

	// Tokens lists the actions involved
	Tokens []ActionToken `json:"tokens,omitempty"`

	// TradeID correlates trade notices
	TradeID string `json:"tradeId,omitempty"`

	// Timestamp is when the notice was produced
	Timestamp time.Time `json:"timestamp"`
}
