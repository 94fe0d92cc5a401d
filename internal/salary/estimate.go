// Package salary turns a possibly one-sided salary range into one number.
package salary

const (
	fromOnlyFactor = 1.2
	toOnlyFactor   = 0.8
)

// Predict estimates a representative salary from the lower and upper bounds
// of a range. A zero bound counts as absent. The second result is false when
// both bounds are absent.
func Predict(from, to float64) (float64, bool) {
	switch {
	case from != 0 && to != 0:
		return (from + to) / 2, true
	case from != 0:
		return from * fromOnlyFactor, true
	case to != 0:
		return to * toOnlyFactor, true
	default:
		return 0, false
	}
}

// PredictInt is Predict truncated to an integer after averaging.
func PredictInt(from, to float64) (int, bool) {
	v, ok := Predict(from, to)
	if !ok {
		return 0, false
	}
	return int(v), true
}
