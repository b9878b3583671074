package locale

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/config"
)

func TestDerive(t *testing.T) {
	t.Parallel()

	require.Equal(t, calc.Separators{Decimal: '.', Group: ','}, Derive(language.English))
	require.Equal(t, calc.Separators{Decimal: ',', Group: '.'}, Derive(language.German))
	require.Equal(t, ',', Derive(language.French).Decimal)
}

func TestResolverOverrides(t *testing.T) {
	t.Parallel()

	r, err := FromConfig(config.LocaleConfig{Tag: "de", GroupingSeparator: "'", Grouping: true})
	require.NoError(t, err)
	require.Equal(t, calc.Separators{Decimal: ',', Group: '\'', Grouping: true}, r.Separators())

	r, err = FromConfig(config.LocaleConfig{Tag: "en", DecimalSeparator: ","})
	require.NoError(t, err)
	// The derived grouping comma gives way to the decimal override.
	require.Equal(t, calc.Separators{Decimal: ','}, r.Separators())
}

func TestResolverRejectsBadSeparators(t *testing.T) {
	t.Parallel()

	for _, cfg := range []config.LocaleConfig{
		{Tag: "en", DecimalSeparator: "-"},
		{Tag: "en", GroupingSeparator: "7"},
		{Tag: "en", DecimalSeparator: ".."},
		{Tag: "en", DecimalSeparator: ",", GroupingSeparator: ","},
		{Tag: "not a tag!"},
	} {
		_, err := FromConfig(cfg)
		require.Error(t, err, "%+v", cfg)
	}
}

func TestResolverSetTag(t *testing.T) {
	t.Parallel()

	r, err := FromConfig(config.LocaleConfig{})
	require.NoError(t, err)
	require.Equal(t, "en", r.Tag())

	e := calc.New(calc.WithLocale(r))
	require.NoError(t, e.Append("1"))
	require.NoError(t, e.AppendDecimalPoint())
	require.NoError(t, e.Append("5"))
	require.Equal(t, "1.5", e.Screen())

	require.NoError(t, r.SetTag("de"))
	require.Equal(t, "de", r.Tag())
	e.Clear()
	require.NoError(t, e.Append("1"))
	require.NoError(t, e.AppendDecimalPoint())
	require.NoError(t, e.Append("5"))
	require.NoError(t, e.AppendOperator(calc.OpMultiply))
	require.NoError(t, e.Append("3"))
	require.Equal(t, "1,5*3", e.Screen())
	require.NoError(t, e.Equals())
	require.Equal(t, "4,5", e.Screen())
}
