package keypad

import (
	"fmt"
	"unicode"

	"github.com/jask/jaskcalc/internal/calc"
)

// Type feeds text to e one character at a time, as if typed on the keypad.
// Digits, operators, '=' and the locale decimal separator are accepted; '.'
// always works as a decimal point. Spaces and the grouping separator are
// skipped. A leading '-' on a fresh screen toggles the sign.
func Type(e *calc.Engine, text string) error {
	fresh := true
	for i, c := range text {
		seps := e.Separators()
		var err error
		switch {
		case unicode.IsSpace(c):
			continue
		case c >= '0' && c <= '9':
			err = e.Append(string(c))
		case c == '.' || (seps.Decimal != 0 && c == seps.Decimal):
			err = e.AppendDecimalPoint()
		case seps.Group != 0 && c == seps.Group:
			continue
		case c == '-' && fresh && e.Screen() == "0":
			err = e.ToggleSign()
		case c == '+' || c == '-' || c == '*' || c == '/' || c == '^':
			err = e.AppendOperator(calc.Operator(c))
		case c == '=':
			err = e.Equals()
		default:
			return fmt.Errorf("keypad: unexpected %q at offset %d", c, i)
		}
		if err != nil {
			return err
		}
		fresh = false
	}
	return nil
}
