package dice

import (
	"testing"

	"github.com/KirkDiggler/heroactions/internal/dice/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParseFormula(t *testing.T) {
	tests := []struct {
		expr    string
		want    Formula
		wantErr bool
	}{
		{expr: "1d20", want: Formula{Count: 1, Sides: 20}},
		{expr: "d6", want: Formula{Count: 1, Sides: 6}},
		{expr: "2d10+1", want: Formula{Count: 2, Sides: 10, Modifier: 1}},
		{expr: "3D4 - 2", want: Formula{Count: 3, Sides: 4, Modifier: -2}},
		{expr: "7", want: Formula{Modifier: 7}},
		{expr: "", wantErr: true},
		{expr: "0d6", wantErr: true},
		{expr: "1d0", wantErr: true},
		{expr: "banana", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := ParseFormula(tt.expr)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormula)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormulaRoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mocks.NewMockRoller(ctrl)

	gomock.InOrder(
		roller.EXPECT().Roll(10).Return(4),
		roller.EXPECT().Roll(10).Return(9),
	)

	f := Formula{Count: 2, Sides: 10, Modifier: -1}
	assert.Equal(t, 12, f.Roll(roller))
}

func TestFormulaString(t *testing.T) {
	assert.Equal(t, "1d12", Formula{Count: 1, Sides: 12}.String())
	assert.Equal(t, "2d6+3", Formula{Count: 2, Sides: 6, Modifier: 3}.String())
	assert.Equal(t, "1d6-1", Formula{Count: 1, Sides: 6, Modifier: -1}.String())
	assert.Equal(t, "4", Formula{Modifier: 4}.String())
}

func TestRollerStaysInRange(t *testing.T) {
	r := New(&Config{Seed: 42})
	for i := 0; i < 500; i++ {
		v := r.Roll(8)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 8)
	}
}
