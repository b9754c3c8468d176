package seqcore

import "math"

// Constraint is a residual the external NLP optimizer must drive
// between Lower and Upper: an equality constraint sets both bounds to
// the same value, an inequality constraint leaves one of them at
// +/-Inf.
type Constraint struct {
	Name  string
	Calc  Calc
	Lower []float64
	Upper []float64
	Scale []float64
}

// NewConstraint validates that Lower and Upper (when given) match the
// calc's arity and that at least one bound is specified, then returns a
// Constraint. A nil Lower or Upper is expanded to -Inf/+Inf respectively
// so the caller need only name the side that actually bounds the
// residual.
func NewConstraint(name string, calc Calc, lower, upper []float64) (*Constraint, error) {
	n := calc.Arity()
	if lower == nil && upper == nil {
		return nil, &NoBoundsSpecifiedError{Name: name}
	}
	if lower != nil && len(lower) != n {
		return nil, &BoundsLengthMismatchError{Field: "lower", Expected: n, Got: len(lower)}
	}
	if upper != nil && len(upper) != n {
		return nil, &BoundsLengthMismatchError{Field: "upper", Expected: n, Got: len(upper)}
	}
	if lower == nil {
		lower = fillConst(n, math.Inf(-1))
	}
	if upper == nil {
		upper = fillConst(n, math.Inf(1))
	}
	scale := fillConst(n, 1)
	return &Constraint{Name: name, Calc: calc, Lower: lower, Upper: upper, Scale: scale}, nil
}

func fillConst(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
