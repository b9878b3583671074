package calc

import (
	"strconv"
	"strings"
)

// maxFraction is the widest fractional part Format tries.
const maxFraction = 15

// Separators are the locale characters used on the screen.
type Separators struct {
	Decimal rune
	Group   rune
	// Grouping inserts Group every three integer digits when formatting.
	Grouping bool
}

// DefaultSeparators is the '.'/',' pair without grouping.
var DefaultSeparators = Separators{Decimal: '.', Group: ','}

// Locale supplies separators. Engines query it at the start of every
// operation.
type Locale interface {
	Separators() Separators
}

// LocaleFunc adapts a function to Locale.
type LocaleFunc func() Separators

// Separators implements Locale.
func (f LocaleFunc) Separators() Separators { return f() }

// FixedLocale returns a Locale that always yields seps.
func FixedLocale(seps Separators) Locale {
	return LocaleFunc(func() Separators { return seps })
}

// Format renders v with the widest fractional part, from 15 digits down to
// none, whose digit count does not overflow. If every width overflows the
// integer rendering is returned and the caller's overflow check catches it.
func Format(v float64, seps Separators) string {
	var s string
	for digits := maxFraction; digits >= 0; digits-- {
		s = render(v, digits, seps)
		if !Overflows(s, seps) {
			return s
		}
	}
	return s
}

func render(v float64, digits int, seps Separators) string {
	s := strconv.FormatFloat(v, 'f', digits, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if seps.Grouping && seps.Group != 0 {
		intPart = group(intPart, seps.Group)
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(intPart)
	if hasFrac {
		dec := seps.Decimal
		if dec == 0 {
			dec = '.'
		}
		b.WriteRune(dec)
		b.WriteString(frac)
	}
	return b.String()
}

// group inserts sep between thousands of an unsigned digit string.
func group(digits string, sep rune) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteRune(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
