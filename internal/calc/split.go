package calc

import "strings"

// Operator is one of the five binary operators.
type Operator byte

const (
	OpAdd      Operator = '+'
	OpSubtract Operator = '-'
	OpMultiply Operator = '*'
	OpDivide   Operator = '/'
	OpPower    Operator = '^'
)

// Operators lists every operator in keypad order.
var Operators = []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide, OpPower}

// Valid reports whether o is a known operator.
func (o Operator) Valid() bool {
	return isOperator(byte(o))
}

func (o Operator) String() string { return string(rune(o)) }

func isOperator(c byte) bool {
	switch Operator(c) {
	case OpAdd, OpSubtract, OpMultiply, OpDivide, OpPower:
		return true
	}
	return false
}

// Operands are the two halves of a split expression, operator excluded.
type Operands struct {
	A, B string
}

// Split cuts text into two operands at its binary operator. It reports false
// when text is not decomposable into exactly two parts.
//
// Any of + * / ^ takes priority over '-': exactly one of them may occur and
// the text is cut there. Otherwise one dash cuts at that dash, and two or
// three dashes cut at the second, leaving leading signs on either side. A
// second dash right after the first is the sign of the right operand, so
// the cut moves back to the first: 3--2 is 3 minus -2.
func Split(text string) (Operands, bool) {
	at, n := -1, 0
	for i := 0; i < len(text); i++ {
		switch Operator(text[i]) {
		case OpAdd, OpMultiply, OpDivide, OpPower:
			if n == 0 {
				at = i
			}
			n++
		}
	}
	if n > 0 {
		if n != 1 {
			return Operands{}, false
		}
		return cut(text, at)
	}

	switch strings.Count(text, "-") {
	case 1:
		return cut(text, strings.IndexByte(text, '-'))
	case 2, 3:
		i := secondDash(text)
		if i > 0 && text[i-1] == '-' {
			if i == len(text)-1 {
				return Operands{}, false
			}
			i--
		}
		return cut(text, i)
	default:
		return Operands{}, false
	}
}

func secondDash(text string) int {
	seen := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '-' {
			continue
		}
		if seen == 1 {
			return i
		}
		seen++
	}
	return -1
}

// cut splits around the operator at i. An empty right side means the
// operator is dangling.
func cut(text string, i int) (Operands, bool) {
	if i < 0 || i == len(text)-1 {
		return Operands{}, false
	}
	return Operands{A: text[:i], B: text[i+1:]}, true
}

// operatorBetween recovers the operator from the operand lengths so that it
// always agrees with Split.
func operatorBetween(text string, ops Operands) string {
	return text[len(ops.A) : len(text)-len(ops.B)]
}

// endsWithOperator reports whether text ends in a binary operator character.
func endsWithOperator(text string) bool {
	return text != "" && isOperator(text[len(text)-1])
}
