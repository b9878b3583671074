package calc

import "math"

// Inverse replaces the screen value x with 1/x.
func (e *Engine) Inverse() error {
	return e.apply(func(x float64) float64 { return 1 / x })
}

// Percent replaces x with x/100.
func (e *Engine) Percent() error {
	return e.apply(func(x float64) float64 { return x / 100 })
}

// SquareRoot replaces x with its square root.
func (e *Engine) SquareRoot() error {
	return e.apply(math.Sqrt)
}

// ToggleSign replaces x with -x.
func (e *Engine) ToggleSign() error {
	return e.apply(func(x float64) float64 { return -x })
}

// apply solves the screen first; non-finite results show the overflow error.
func (e *Engine) apply(fn func(float64) float64) error {
	seps := e.Separators()
	if e.inError() {
		return nil
	}
	if _, err := e.solve(seps, false); err != nil {
		return err
	}
	v, ok := e.value(seps)
	if !ok {
		return nil
	}
	return e.commitValue(fn(v), seps)
}
