package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOverflows(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"123456789012345":    false,
		"1234567890123456":   true,
		"-123456789012345":   false,
		"12345678901234.5":   false,
		"12345678901234.56":  true,
		"123456789012345+1":  false,
		"1+1234567890123456": true,
		"1234567890123456+":  false,
		"abc":                false,
	}
	for in, want := range tests {
		require.Equal(t, want, Overflows(in, DefaultSeparators), in)
	}
}

func TestOverflowsIgnoresSeparators(t *testing.T) {
	t.Parallel()

	grouped := Separators{Decimal: ',', Group: '.', Grouping: true}
	require.False(t, Overflows("123.456.789.012.345", grouped))
	require.True(t, Overflows("1.234.567.890.123.456", grouped))
}

func TestOverflowsValue(t *testing.T) {
	t.Parallel()

	require.True(t, OverflowsValue(1e16, DefaultSeparators))
	require.False(t, OverflowsValue(999999999999999, DefaultSeparators))
	require.False(t, OverflowsValue(1.0/3, DefaultSeparators))
	require.True(t, OverflowsValue(math.NaN(), DefaultSeparators))
	require.True(t, OverflowsValue(math.Inf(1), DefaultSeparators))
	require.True(t, OverflowsValue(math.Inf(-1), DefaultSeparators))
}
