package calc

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrMissingOperand is returned when an operator has no second operand.
	ErrMissingOperand = errors.New("missing operand")
	// ErrDivisionByZero is returned for a '/' with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrOverflow is returned when an operand or result exceeds OverflowLimit
	// digits, or when a result is not finite.
	ErrOverflow = errors.New("overflow")
)

// ErrorKind tags the error state shown on the screen.
type ErrorKind int

const (
	ErrorNone ErrorKind = iota
	ErrorMissingOperand
	ErrorDivisionByZero
	ErrorOverflow
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorMissingOperand:
		return "missing_operand"
	case ErrorDivisionByZero:
		return "division_by_zero"
	case ErrorOverflow:
		return "overflow"
	default:
		return "none"
	}
}

// Err returns the sentinel for k, or nil for ErrorNone.
func (k ErrorKind) Err() error {
	switch k {
	case ErrorMissingOperand:
		return ErrMissingOperand
	case ErrorDivisionByZero:
		return ErrDivisionByZero
	case ErrorOverflow:
		return ErrOverflow
	default:
		return nil
	}
}

// ParseErrorKind is the inverse of ErrorKind.String.
func ParseErrorKind(s string) ErrorKind {
	for _, k := range []ErrorKind{ErrorMissingOperand, ErrorDivisionByZero, ErrorOverflow} {
		if k.String() == s {
			return k
		}
	}
	return ErrorNone
}

// Error is returned by engine operations that put the screen into an error
// state.
type Error struct {
	Kind ErrorKind
	// Screen is the text that was on the screen before the failure.
	Screen string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Screen == "" {
		return fmt.Sprintf("calc: %v", e.Kind.Err())
	}
	return fmt.Sprintf("calc: %v in %q", e.Kind.Err(), e.Screen)
}

// Unwrap returns the sentinel for use with errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind.Err()
}

// Message is the text shown for one error kind: a short form that replaces
// the screen and a longer form for a toast or status line.
type Message struct {
	Screen string
	Detail string
}

// Messages holds the user-facing text of every error kind. The host supplies
// localized values; empty fields fall back to DefaultMessages.
type Messages struct {
	MissingOperand Message
	DivisionByZero Message
	Overflow       Message
}

// DefaultMessages returns the built-in English messages.
func DefaultMessages() Messages {
	return Messages{
		MissingOperand: Message{Screen: "Error: operand", Detail: "An operator needs a second operand."},
		DivisionByZero: Message{Screen: "Error: div by 0", Detail: "Cannot divide by zero."},
		Overflow:       Message{Screen: "Error: overflow", Detail: "The number is too large to display."},
	}
}

// For returns the message for kind.
func (m Messages) For(kind ErrorKind) Message {
	switch kind {
	case ErrorMissingOperand:
		return m.MissingOperand
	case ErrorDivisionByZero:
		return m.DivisionByZero
	case ErrorOverflow:
		return m.Overflow
	default:
		return Message{}
	}
}

// withDefaults fills empty fields from DefaultMessages.
func (m Messages) withDefaults() Messages {
	def := DefaultMessages()
	fill := func(dst *Message, src Message) {
		if dst.Screen == "" {
			dst.Screen = src.Screen
		}
		if dst.Detail == "" {
			dst.Detail = src.Detail
		}
	}
	fill(&m.MissingOperand, def.MissingOperand)
	fill(&m.DivisionByZero, def.DivisionByZero)
	fill(&m.Overflow, def.Overflow)
	return m
}

// kindOf reports which error text screen shows, if any.
func (m Messages) kindOf(screen string) ErrorKind {
	switch screen {
	case m.MissingOperand.Screen:
		return ErrorMissingOperand
	case m.DivisionByZero.Screen:
		return ErrorDivisionByZero
	case m.Overflow.Screen:
		return ErrorOverflow
	default:
		return ErrorNone
	}
}
