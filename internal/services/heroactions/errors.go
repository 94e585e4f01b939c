package heroactions

import (
	"errors"

	"github.com/KirkDiggler/heroactions/internal/models"
	characterRepo "github.com/KirkDiggler/heroactions/internal/repositories/character"
	"github.com/KirkDiggler/heroactions/internal/services/authority"
	"github.com/KirkDiggler/heroactions/internal/services/deck"
	"github.com/KirkDiggler/heroactions/internal/services/messaging"
)

// HeroError is a custom error type for hero action errors
type HeroError string

// Error implements the error interface
func (e HeroError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotArbitrator        HeroError = "only the arbitrator can do that"
	ErrInvalidCharacterType HeroError = "character cannot hold hero actions"
	ErrDeckUnresolved       HeroError = "no hero action deck could be resolved"
	ErrNoFormula            HeroError = "deck has no formula and cannot be normalized"
	ErrInsufficientResource HeroError = "not enough hero points"
	ErrStaleReference       HeroError = "a referenced action or character no longer exists"
	ErrNoArbitratorOnline   HeroError = "no arbitrator is online"
	ErrNotOwner             HeroError = "you do not control that character"
	ErrTradeNotFound        HeroError = "trade not found"
	ErrTargetActionRequired HeroError = "the target action must be chosen"
	ErrActionNotFound       HeroError = "character does not have that action"
	ErrDuplicateAction      HeroError = "character already holds that action"
	ErrCharacterNotFound    HeroError = "character not found"
	ErrSelfTrade            HeroError = "a character cannot trade with itself"
	ErrUnknownPacket        HeroError = "unknown packet type"
	ErrNilConfig            HeroError = "config cannot be nil"
	ErrNilParticipant       HeroError = "participant cannot be nil"
	ErrNilActionRepo        HeroError = "action repository cannot be nil"
	ErrNilCharacterRepo     HeroError = "character repository cannot be nil"
	ErrNilAuthority         HeroError = "authority service cannot be nil"
	ErrNilDeck              HeroError = "deck service cannot be nil"
	ErrNilMessaging         HeroError = "messaging service cannot be nil"
	ErrNilNotifier          HeroError = "notifier cannot be nil"
	ErrNilBus               HeroError = "bus cannot be nil"
	ErrNilClock             HeroError = "clock cannot be nil"
	ErrNilUUIDGenerator     HeroError = "UUID generator cannot be nil"
)

// classify maps collaborator errors onto hero action errors
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, authority.ErrNoArbitratorOnline):
		return ErrNoArbitratorOnline
	case errors.Is(err, deck.ErrDeckUnresolved):
		return ErrDeckUnresolved
	case errors.Is(err, deck.ErrNoFormula):
		return ErrNoFormula
	case errors.Is(err, deck.ErrNotArbitrator):
		return ErrNotArbitrator
	case errors.Is(err, characterRepo.ErrCharacterNotFound):
		return ErrCharacterNotFound
	case errors.Is(err, characterRepo.ErrInsufficientPoints):
		return ErrInsufficientResource
	}
	return err
}

// severity is the notice level an error is shown with
func severity(err error) models.NoticeLevel {
	var heroErr HeroError
	if !errors.As(err, &heroErr) {
		return models.NoticeLevelError
	}

	switch heroErr {
	case ErrNotArbitrator, ErrInvalidCharacterType, ErrInsufficientResource,
		ErrNotOwner, ErrTradeNotFound, ErrTargetActionRequired, ErrActionNotFound, ErrSelfTrade, ErrDuplicateAction:
		return models.NoticeLevelWarn
	default:
		return models.NoticeLevelError
	}
}

// errorType picks the message family for an error
func errorType(err error) messaging.ErrorType {
	var heroErr HeroError
	if !errors.As(err, &heroErr) {
		return messaging.ErrorTypeUnknown
	}

	switch heroErr {
	case ErrNotArbitrator:
		return messaging.ErrorTypeNotArbitrator
	case ErrInvalidCharacterType:
		return messaging.ErrorTypeInvalidCharacterType
	case ErrDeckUnresolved:
		return messaging.ErrorTypeDeckUnresolved
	case ErrNoFormula:
		return messaging.ErrorTypeNoFormula
	case ErrInsufficientResource:
		return messaging.ErrorTypeInsufficientResource
	case ErrStaleReference:
		return messaging.ErrorTypeStaleReference
	case ErrNoArbitratorOnline:
		return messaging.ErrorTypeNoArbitratorOnline
	case ErrNotOwner:
		return messaging.ErrorTypeNotOwner
	case ErrTradeNotFound:
		return messaging.ErrorTypeTradeNotFound
	case ErrActionNotFound:
		return messaging.ErrorTypeActionNotFound
	case ErrDuplicateAction:
		return messaging.ErrorTypeDuplicateAction
	default:
		return messaging.ErrorTypeUnknown
	}
}
