// Package locale derives calculator separators from a BCP 47 language tag.
package locale

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/config"
)

// probe has enough integer digits to show grouping in every locale.
const probe = 1234567.5

// Resolver implements calc.Locale. It derives separators on every call, so
// SetTag takes effect on the next engine operation.
type Resolver struct {
	tag      language.Tag
	decimal  rune
	group    rune
	grouping bool
}

// FromConfig builds a Resolver from the locale section of the config.
func FromConfig(cfg config.LocaleConfig) (*Resolver, error) {
	r := &Resolver{grouping: cfg.Grouping}
	if err := r.SetTag(cfg.Tag); err != nil {
		return nil, err
	}
	var err error
	if r.decimal, err = separator("decimal", cfg.DecimalSeparator); err != nil {
		return nil, err
	}
	if r.group, err = separator("grouping", cfg.GroupingSeparator); err != nil {
		return nil, err
	}
	if r.decimal != 0 && r.decimal == r.group {
		return nil, fmt.Errorf("locale: decimal and grouping separators are both %q", r.decimal)
	}
	return r, nil
}

// SetTag switches the language tag. An empty tag means English.
func (r *Resolver) SetTag(tag string) error {
	if strings.TrimSpace(tag) == "" {
		r.tag = language.English
		return nil
	}
	t, err := language.Parse(tag)
	if err != nil {
		return fmt.Errorf("locale: parse tag %q: %w", tag, err)
	}
	r.tag = t
	return nil
}

// Tag returns the current language tag.
func (r *Resolver) Tag() string { return r.tag.String() }

// Separators implements calc.Locale. Configured separators override the
// derived ones.
func (r *Resolver) Separators() calc.Separators {
	seps := Derive(r.tag)
	if r.decimal != 0 {
		seps.Decimal = r.decimal
	}
	if r.group != 0 {
		seps.Group = r.group
	}
	if seps.Group == seps.Decimal {
		seps.Group = 0
	}
	seps.Grouping = r.grouping && seps.Group != 0
	return seps
}

// Derive formats a probe number for tag and reads the separators out of the
// rendering: the first mark is the grouping separator, the last the decimal
// one.
func Derive(tag language.Tag) calc.Separators {
	p := message.NewPrinter(tag)
	s := p.Sprintf("%v", number.Decimal(probe, number.MaxFractionDigits(1)))

	var marks []rune
	for _, c := range s {
		if !unicode.IsDigit(c) {
			marks = append(marks, c)
		}
	}
	seps := calc.Separators{Decimal: '.'}
	switch {
	case len(marks) == 0:
		return calc.DefaultSeparators
	case len(marks) == 1:
		seps.Decimal = marks[0]
	default:
		seps.Decimal = marks[len(marks)-1]
		if marks[0] != seps.Decimal {
			seps.Group = marks[0]
		}
	}
	if !usable(seps.Decimal) {
		return calc.DefaultSeparators
	}
	if seps.Group != 0 && !usable(seps.Group) {
		seps.Group = 0
	}
	return seps
}

func separator(name, s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	c, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return 0, fmt.Errorf("locale: %s separator %q must be a single character", name, s)
	}
	if !usable(c) {
		return 0, fmt.Errorf("locale: %s separator %q clashes with digits or operators", name, s)
	}
	return c, nil
}

// usable rejects characters the screen grammar already uses.
func usable(c rune) bool {
	return !unicode.IsDigit(c) && !strings.ContainsRune("+-*/^", c)
}
