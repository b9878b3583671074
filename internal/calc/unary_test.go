package calc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnaryOperations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		screen string
		op     func(*Engine) error
		want   string
	}{
		{name: "sqrt", screen: "16", op: (*Engine).SquareRoot, want: "4"},
		{name: "sqrt of expression", screen: "2+2", op: (*Engine).SquareRoot, want: "2"},
		{name: "inverse", screen: "4", op: (*Engine).Inverse, want: "0.25"},
		{name: "percent", screen: "50", op: (*Engine).Percent, want: "0.5"},
		{name: "sign", screen: "5", op: (*Engine).ToggleSign, want: "-5"},
		{name: "sign of negative", screen: "-2.5", op: (*Engine).ToggleSign, want: "2.5"},
		{name: "sign of zero", screen: "0", op: (*Engine).ToggleSign, want: "-0"},
		{name: "pending expression", screen: "5*", op: (*Engine).Percent, want: DefaultMessages().MissingOperand.Screen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := engineWith(t, tt.screen)
			_ = tt.op(e)
			require.Equal(t, tt.want, e.Screen())
		})
	}
}

func TestUnaryNonFinite(t *testing.T) {
	t.Parallel()

	e := engineWith(t, "0")
	require.ErrorIs(t, e.Inverse(), ErrOverflow)

	e = engineWith(t, "-4")
	require.ErrorIs(t, e.SquareRoot(), ErrOverflow)
	require.Equal(t, DefaultMessages().Overflow.Screen, e.Screen())

	// Still inert until cleared.
	require.NoError(t, e.ToggleSign())
	require.Equal(t, DefaultMessages().Overflow.Screen, e.Screen())
}

func TestSignThenDigits(t *testing.T) {
	t.Parallel()

	e := New()
	require.NoError(t, e.ToggleSign())
	require.NoError(t, e.Append("7"))
	require.Equal(t, "-7", e.Screen())
}
