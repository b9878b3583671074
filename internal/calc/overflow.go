package calc

import "math"

// OverflowLimit is the most digits a number may carry, sign and separators
// excluded.
const OverflowLimit = 15

// Overflows reports whether text, a number or both operands of an
// expression, carries more than OverflowLimit digits. Text that is neither
// never overflows.
func Overflows(text string, seps Separators) bool {
	if ops, ok := expressionOperands(text, seps); ok {
		return tooManyDigits(ops.A) || tooManyDigits(ops.B)
	}
	if IsNumber(text, seps) {
		return tooManyDigits(text)
	}
	return false
}

// OverflowsValue formats v and checks the rendering. NaN and infinities
// always overflow.
func OverflowsValue(v float64, seps Separators) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return true
	}
	return Overflows(Format(v, seps), seps)
}

func tooManyDigits(s string) bool {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			n++
		}
	}
	return n > OverflowLimit
}
