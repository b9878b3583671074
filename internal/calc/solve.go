package calc

import (
	"math"

	"go.uber.org/zap"
)

// Outcome is the result of a solve attempt.
type Outcome int

const (
	// NoOp means nothing changed: an error was already showing, a pending
	// expression was left alone, or an operand could not be parsed.
	NoOp Outcome = iota
	// AlreadyNumber means the screen already held a number.
	AlreadyNumber
	// Solved means the expression was replaced by its result.
	Solved
	// Failed means the screen now shows an error.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case AlreadyNumber:
		return "already_number"
	case Solved:
		return "solved"
	case Failed:
		return "failed"
	default:
		return "noop"
	}
}

// Solve reduces the screen to a number, showing an error when it cannot.
func (e *Engine) Solve() (Outcome, error) {
	return e.solve(e.Separators(), false)
}

// TrySolve reduces a complete expression and leaves a pending one alone.
// Division by zero and overflow are still reported.
func (e *Engine) TrySolve() (Outcome, error) {
	return e.solve(e.Separators(), true)
}

// Equals is the "=" key.
func (e *Engine) Equals() error {
	_, err := e.Solve()
	return err
}

func (e *Engine) solve(seps Separators, suppress bool) (Outcome, error) {
	if e.inError() {
		return NoOp, nil
	}
	s := e.screen
	if IsNumber(s, seps) {
		return AlreadyNumber, nil
	}

	ops, ok := expressionOperands(s, seps)
	if !ok {
		if suppress {
			return NoOp, nil
		}
		return Failed, e.fail(ErrorMissingOperand)
	}

	a, errA := ParseNumber(ops.A, seps)
	b, errB := ParseNumber(ops.B, seps)
	if errA != nil || errB != nil {
		e.log.Debug("operand parse failed", zap.String("screen", s), zap.NamedError("a", errA), zap.NamedError("b", errB))
		return NoOp, nil
	}

	var v float64
	switch Operator(operatorBetween(s, ops)[0]) {
	case OpAdd:
		v = a + b
	case OpSubtract:
		v = a - b
	case OpMultiply:
		v = a * b
	case OpDivide:
		if b == 0 {
			err := e.fail(ErrorDivisionByZero)
			e.record(Record{Expression: s, Kind: ErrorDivisionByZero})
			return Failed, err
		}
		v = a / b
	case OpPower:
		v = math.Pow(a, b)
	}

	if OverflowsValue(v, seps) {
		err := e.fail(ErrorOverflow)
		e.record(Record{Expression: s, Kind: ErrorOverflow})
		return Failed, err
	}
	result := Format(v, seps)
	e.setScreen(result)
	e.record(Record{Expression: s, Result: result})
	return Solved, nil
}
