/*
Package calc implements a two-operand infix calculator engine.

The engine keeps a single screen string that holds either a number, a binary
expression such as "12.5*-3", a pending prefix such as "7^", or one of three
error texts. Every mutation is gated by the validator and the overflow guard,
and expressions are reduced to a single formatted number on demand.

# Screen grammar

A number is "-?digits(.digits?)?" or "-?.digits" once the locale separators
are normalized. An expression is two numbers joined by one of + - * / ^.
Because '-' is both a sign and an operator, Split resolves it by counting:
one dash splits at that dash, two or three dashes split at the second one.

	Split("3--2")  // "3", "-2"
	Split("-3-2")  // "-3", "2"
	Split("1-2-3") // "1-2", "3" (then rejected by IsNumber)

# Overflow

A value overflows when its rendered form has more than OverflowLimit digits.
Overflow is judged on the formatted text, not on the raw magnitude, so the
screen never shows a number the guard has not seen.

# Errors

Failures put the screen into an error state that only Clear leaves. The
returned error wraps one of ErrMissingOperand, ErrDivisionByZero or
ErrOverflow:

	if err := e.Equals(); errors.Is(err, calc.ErrDivisionByZero) {
	    toast(e.Messages().For(calc.ErrorDivisionByZero).Detail)
	}

An Engine is not safe for concurrent use.
*/
package calc
