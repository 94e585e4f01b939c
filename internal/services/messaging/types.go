package messaging

import (
	"github.com/KirkDiggler/heroactions/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral always picks the plain message
	ToneNeutral MessageTone = "neutral"

	// ToneFunny picks a random flavoured message
	ToneFunny MessageTone = "funny"
)

// ErrorType names a failure a notice can explain
type ErrorType string

const (
	ErrorTypeNotArbitrator        ErrorType = "not_arbitrator"
	ErrorTypeInvalidCharacterType ErrorType = "invalid_character_type"
	ErrorTypeDeckUnresolved       ErrorType = "deck_unresolved"
	ErrorTypeNoFormula            ErrorType = "no_formula"
	ErrorTypeInsufficientResource ErrorType = "insufficient_resource"
	ErrorTypeStaleReference       ErrorType = "stale_reference"
	ErrorTypeNoArbitratorOnline   ErrorType = "no_arbitrator_online"
	ErrorTypeNotOwner             ErrorType = "not_owner"
	ErrorTypeTradeNotFound        ErrorType = "trade_not_found"
	ErrorTypeActionNotFound       ErrorType = "action_not_found"
	ErrorTypeDuplicateAction      ErrorType = "duplicate_action"
	ErrorTypeUnknown              ErrorType = "unknown"
)

// GetNoticeMessageInput describes an outcome to put into words
type GetNoticeMessageInput struct {
	// Kind is what happened
	Kind models.NoticeKind

	// ActorName is the character the notice is about
	ActorName string

	// OtherName is the counterpart character in a trade
	OtherName string

	// Tokens are the actions gained, lost or offered
	Tokens []models.ActionToken

	// Received are the actions gained in a trade
	Received []models.ActionToken

	// Requested is how many tokens a draw asked for
	Requested int
}

// GetNoticeMessageOutput contains the composed notice text
type GetNoticeMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// ErrorType is the type of error
	ErrorType ErrorType

	// ActorName is the character involved, if any
	ActorName string
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Title   string
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Tone defaults to ToneNeutral
	Tone MessageTone

	// Seed makes flavour selection repeatable; zero uses the clock
	Seed int64
}
