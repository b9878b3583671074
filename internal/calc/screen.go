package calc

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Append adds text to the right of the screen. A placeholder zero left by
// Clear or typed after an operator is replaced by an incoming number.
func (e *Engine) Append(text string) error {
	return e.append(text, e.Separators())
}

func (e *Engine) append(text string, seps Separators) error {
	if e.inError() {
		return nil
	}
	t := e.screen
	if text == "0" && (t == "0" || t == "-0") {
		return nil
	}
	if IsNumber(text, seps) && endsWithPlaceholderZero(t) {
		t = t[:len(t)-1]
	}
	return e.commit(t+text, seps)
}

func endsWithPlaceholderZero(t string) bool {
	if t == "0" {
		return true
	}
	if len(t) < 2 || t[len(t)-1] != '0' {
		return false
	}
	return isOperator(t[len(t)-2])
}

// AppendOperator reduces a complete expression, then appends op. After a
// dangling operator only a '-' sign for the second operand is accepted:
// 5* then - gives 5*-, while 5* then + or 5*- then - leave the screen as it
// is. Rejected operators are ignored without an error.
func (e *Engine) AppendOperator(op Operator) error {
	if !op.Valid() {
		return fmt.Errorf("calc: unknown operator %q", rune(op))
	}
	seps := e.Separators()
	if e.inError() {
		return nil
	}
	if _, err := e.solve(seps, true); err != nil {
		return err
	}
	if t := e.screen; endsWithOperator(t) {
		if op != OpSubtract || len(t) < 2 || isOperator(t[len(t)-2]) {
			return nil
		}
	}
	return e.append(op.String(), seps)
}

// AppendDecimalPoint appends the locale decimal separator to the active
// operand if it has none yet. It is refused after a dangling operator.
func (e *Engine) AppendDecimalPoint() error {
	seps := e.Separators()
	if e.inError() {
		return nil
	}
	dec := "."
	if seps.Decimal != 0 {
		dec = string(seps.Decimal)
	}
	s := e.screen
	if ops, ok := expressionOperands(s, seps); ok {
		if strings.Contains(ops.B, dec) || strings.HasSuffix(s, dec) {
			return nil
		}
		return e.append(dec, seps)
	}
	if IsNumber(s, seps) && !strings.Contains(s, dec) {
		return e.append(dec, seps)
	}
	return nil
}

// Backspace drops the last character. An emptied screen shows "0".
func (e *Engine) Backspace() {
	if e.inError() {
		return
	}
	_, size := utf8.DecodeLastRuneInString(e.screen)
	t := e.screen[:len(e.screen)-size]
	if t == "" {
		t = "0"
	}
	e.setScreen(t)
}

// Clear resets the screen to "0" and leaves an error state. Memory is kept.
func (e *Engine) Clear() {
	e.setScreen("0")
}
