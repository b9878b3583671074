package calc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		screen, text, want string
	}{
		{screen: "0", text: "5", want: "5"},
		{screen: "3+0", text: "5", want: "3+5"},
		{screen: "3*0", text: "0", want: "3*0"},
		{screen: "0", text: "0", want: "0"},
		{screen: "-0", text: "0", want: "-0"},
		{screen: "-0", text: "7", want: "-7"},
		{screen: "10", text: "5", want: "105"},
		{screen: "2^0", text: "3", want: "2^3"},
		{screen: "0", text: "+", want: "0+"},
		{screen: "12", text: ".", want: "12."},
	}
	for _, tt := range tests {
		t.Run(tt.screen+"|"+tt.text, func(t *testing.T) {
			e := engineWith(t, tt.screen)
			require.NoError(t, e.Append(tt.text))
			require.Equal(t, tt.want, e.Screen())
			require.Equal(t, len(tt.want), e.Cursor())
		})
	}
}

func TestAppendOverflow(t *testing.T) {
	t.Parallel()

	e := engineWith(t, "123456789012345")
	err := e.Append("6")
	require.ErrorIs(t, err, ErrOverflow)
	require.Equal(t, DefaultMessages().Overflow.Screen, e.Screen())

	e = engineWith(t, "1+123456789012345")
	require.ErrorIs(t, e.Append("6"), ErrOverflow)
}

func TestAppendOperator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		screen string
		op     Operator
		want   string
	}{
		{screen: "5", op: OpAdd, want: "5+"},
		{screen: "5+3", op: OpMultiply, want: "8*"},
		{screen: "5+", op: OpMultiply, want: "5+"},
		{screen: "5*", op: OpSubtract, want: "5*-"},
		{screen: "5*-", op: OpSubtract, want: "5*-"},
		{screen: "5-", op: OpSubtract, want: "5--"},
		{screen: "5--", op: OpSubtract, want: "5--"},
		{screen: "-", op: OpSubtract, want: "-"},
		{screen: "-5", op: OpSubtract, want: "-5-"},
	}
	for _, tt := range tests {
		t.Run(tt.screen+tt.op.String(), func(t *testing.T) {
			e := engineWith(t, tt.screen)
			require.NoError(t, e.AppendOperator(tt.op))
			require.Equal(t, tt.want, e.Screen())
		})
	}
}

func TestAppendOperatorSurfacesSolveErrors(t *testing.T) {
	t.Parallel()

	e := engineWith(t, "8/0")
	require.ErrorIs(t, e.AppendOperator(OpAdd), ErrDivisionByZero)
	require.Equal(t, DefaultMessages().DivisionByZero.Screen, e.Screen())

	require.Error(t, New().AppendOperator(Operator('%')))
}

func TestAppendDecimalPoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		screen, want string
	}{
		{screen: "0", want: "0."},
		{screen: "0.", want: "0."},
		{screen: "1.5", want: "1.5"},
		{screen: "5+", want: "5+"},
		{screen: "5+3", want: "5+3."},
		{screen: "5+3.", want: "5+3."},
		{screen: "1.5+3", want: "1.5+3."},
		{screen: "5+3.2", want: "5+3.2"},
	}
	for _, tt := range tests {
		t.Run(tt.screen, func(t *testing.T) {
			e := engineWith(t, tt.screen)
			require.NoError(t, e.AppendDecimalPoint())
			require.Equal(t, tt.want, e.Screen())
		})
	}

	e := engineWith(t, "2", WithLocale(FixedLocale(commaLocale)))
	require.NoError(t, e.AppendDecimalPoint())
	require.Equal(t, "2,", e.Screen())
	require.NoError(t, e.AppendDecimalPoint())
	require.Equal(t, "2,", e.Screen())
}

func TestBackspace(t *testing.T) {
	t.Parallel()

	e := engineWith(t, "12")
	e.Backspace()
	require.Equal(t, "1", e.Screen())
	e.Backspace()
	require.Equal(t, "0", e.Screen())

	e = engineWith(t, "5+")
	e.Backspace()
	require.Equal(t, "5", e.Screen())

	e = engineWith(t, "5/0")
	require.Error(t, e.Equals())
	e.Backspace()
	require.Equal(t, DefaultMessages().DivisionByZero.Screen, e.Screen())

	seps := Separators{Decimal: ',', Group: ' ', Grouping: true}
	e = engineWith(t, "1 234", WithLocale(FixedLocale(seps)))
	e.Backspace()
	e.Backspace()
	e.Backspace()
	e.Backspace()
	require.Equal(t, "1", e.Screen())
}

func TestClearLeavesErrorState(t *testing.T) {
	t.Parallel()

	e := engineWith(t, "5+")
	require.Error(t, e.Equals())
	require.Error(t, e.Err())
	e.Clear()
	require.NoError(t, e.Err())
	require.Equal(t, "0", e.Screen())
	require.Equal(t, 1, e.Cursor())
}

func TestRestoreRoundTrip(t *testing.T) {
	t.Parallel()

	drive := func(e *Engine) []string {
		var screens []string
		require.NoError(t, e.AppendOperator(OpMultiply))
		screens = append(screens, e.Screen())
		require.NoError(t, e.Append("4"))
		require.NoError(t, e.MemoryPlus())
		screens = append(screens, e.Screen())
		require.NoError(t, e.Equals())
		screens = append(screens, e.Screen())
		return screens
	}

	a := engineWith(t, "2+1")
	a.memory = 1.5
	b := New()
	b.Restore(a.Snapshot())
	require.Equal(t, a.Snapshot(), b.Snapshot())
	require.Equal(t, drive(a), drive(b))
	require.Equal(t, a.Memory(), b.Memory())

	b.Restore(State{})
	require.Equal(t, "0", b.Screen())
	require.Equal(t, 0.0, b.Memory())
}
