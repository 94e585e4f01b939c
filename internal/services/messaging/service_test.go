package messaging

import (
	"context"
	"testing"

	"github.com/KirkDiggler/heroactions/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNoticeMessage(t *testing.T) {
	svc, err := NewService(&ServiceConfig{Tone: ToneNeutral})
	require.NoError(t, err)
	ctx := context.Background()

	parry := models.ActionToken{UUID: "Item.a", Name: "Parry"}
	rally := models.ActionToken{UUID: "Item.b", Name: "Rally"}
	dodge := models.ActionToken{UUID: "Item.c", Name: "Dodge"}

	tests := []struct {
		name    string
		input   *GetNoticeMessageInput
		title   string
		message string
	}{
		{
			name:    "draw lists tokens",
			input:   &GetNoticeMessageInput{Kind: models.NoticeKindDraw, ActorName: "Vex", Tokens: []models.ActionToken{parry, rally, dodge}},
			title:   "Hero Actions Drawn",
			message: "Vex draws **Parry**, **Rally** and **Dodge**.",
		},
		{
			name:    "short draw reports count",
			input:   &GetNoticeMessageInput{Kind: models.NoticeKindDraw, ActorName: "Vex", Tokens: []models.ActionToken{parry}, Requested: 3},
			title:   "Hero Actions Drawn",
			message: "Vex draws **Parry** (1 of 3).",
		},
		{
			name:    "empty draw",
			input:   &GetNoticeMessageInput{Kind: models.NoticeKindDraw, ActorName: "Vex"},
			title:   "Hero Actions Drawn",
			message: "Vex drew nothing; the deck came up empty.",
		},
		{
			name:    "trade complete",
			input:   &GetNoticeMessageInput{Kind: models.NoticeKindTradeComplete, ActorName: "Vex", OtherName: "Ash", Tokens: []models.ActionToken{parry}, Received: []models.ActionToken{rally}},
			title:   "Trade Complete",
			message: "Vex gave **Parry** to Ash and received **Rally**.",
		},
		{
			name:    "trade rejected",
			input:   &GetNoticeMessageInput{Kind: models.NoticeKindTradeRejected, ActorName: "Vex", OtherName: "Ash"},
			title:   "Trade Rejected",
			message: "Ash declined to trade with Vex.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := svc.GetNoticeMessage(ctx, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.title, output.Title)
			assert.Equal(t, tt.message, output.Message)
		})
	}

	_, err = svc.GetNoticeMessage(ctx, &GetNoticeMessageInput{Kind: "bogus"})
	assert.Error(t, err)
}

func TestGetErrorMessage(t *testing.T) {
	svc, err := NewService(nil)
	require.NoError(t, err)

	output, err := svc.GetErrorMessage(context.Background(), &GetErrorMessageInput{
		ErrorType: ErrorTypeInsufficientResource,
		ActorName: "Vex",
	})
	require.NoError(t, err)
	assert.Equal(t, "Out of Hero Points", output.Title)
	assert.Equal(t, "Vex has no hero points left to spend.", output.Message)

	output, err = svc.GetErrorMessage(context.Background(), &GetErrorMessageInput{
		ErrorType: ErrorTypeDuplicateAction,
	})
	require.NoError(t, err)
	assert.Equal(t, "Trade Failed", output.Title)
}

func TestFunnyToneStaysInPool(t *testing.T) {
	svc, err := NewService(&ServiceConfig{Tone: ToneFunny, Seed: 7})
	require.NoError(t, err)

	pool := []string{
		"Vex uses **Parry**!",
		"Vex plays **Parry**. Heroic!",
		"Stand back: Vex unleashes **Parry**!",
	}
	for i := 0; i < 20; i++ {
		output, err := svc.GetNoticeMessage(context.Background(), &GetNoticeMessageInput{
			Kind:      models.NoticeKindUse,
			ActorName: "Vex",
			Tokens:    []models.ActionToken{{UUID: "Item.a", Name: "Parry"}},
		})
		require.NoError(t, err)
		assert.Contains(t, pool, output.Message)
	}
}
