package calc

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	numberA = regexp.MustCompile(`^-?[0-9]+\.?[0-9]*$`)
	numberB = regexp.MustCompile(`^-?[0-9]*\.[0-9]+$`)
)

// Class is the shape of a screen string.
type Class int

const (
	ClassNeither Class = iota
	ClassNumber
	ClassExpression
)

func (c Class) String() string {
	switch c {
	case ClassNumber:
		return "number"
	case ClassExpression:
		return "expression"
	default:
		return "neither"
	}
}

// normalize strips grouping separators and maps the decimal separator to '.'.
func normalize(text string, seps Separators) string {
	if seps.Group != 0 {
		text = strings.ReplaceAll(text, string(seps.Group), "")
	}
	if seps.Decimal != 0 && seps.Decimal != '.' {
		text = strings.ReplaceAll(text, string(seps.Decimal), ".")
	}
	return text
}

// IsNumber reports whether text is a plain decimal number under seps.
func IsNumber(text string, seps Separators) bool {
	if text == "" {
		return false
	}
	t := normalize(text, seps)
	return numberA.MatchString(t) || numberB.MatchString(t)
}

// IsExpression reports whether text splits into two valid numbers.
func IsExpression(text string, seps Separators) bool {
	_, ok := expressionOperands(text, seps)
	return ok
}

func expressionOperands(text string, seps Separators) (Operands, bool) {
	ops, ok := Split(text)
	if !ok || !IsNumber(ops.A, seps) || !IsNumber(ops.B, seps) {
		return Operands{}, false
	}
	return ops, true
}

// Classify returns exactly one of ClassNumber, ClassExpression or
// ClassNeither for text.
func Classify(text string, seps Separators) Class {
	switch {
	case IsNumber(text, seps):
		return ClassNumber
	case IsExpression(text, seps):
		return ClassExpression
	default:
		return ClassNeither
	}
}

// ParseNumber converts a Number token to a float64.
func ParseNumber(text string, seps Separators) (float64, error) {
	return strconv.ParseFloat(normalize(text, seps), 64)
}
