package seqcore

// SolverVariable is a decision variable exposed to the external NLP
// optimizer: a Calc the solver may Set, together with the bounds and
// scaling the optimizer needs to non-dimensionalize it.
type SolverVariable struct {
	Name  string
	Calc  Calc
	Lower []float64
	Upper []float64
	Shift []float64
	Scale []float64
	Guess []float64
}

// NewSolverVariable validates that every bound vector matches the
// calc's arity and returns a SolverVariable. Shift is set to all zeros
// and Scale to all ones.
func NewSolverVariable(name string, calc Calc, lower, upper, guess []float64) (*SolverVariable, error) {
	n := calc.Arity()
	if len(lower) != n {
		return nil, &BoundsLengthMismatchError{Field: "lower", Expected: n, Got: len(lower)}
	}
	if len(upper) != n {
		return nil, &BoundsLengthMismatchError{Field: "upper", Expected: n, Got: len(upper)}
	}
	if len(guess) != n {
		return nil, &BoundsLengthMismatchError{Field: "guess", Expected: n, Got: len(guess)}
	}
	shift := make([]float64, n)
	scale := make([]float64, n)
	for i := range scale {
		scale[i] = 1
	}
	return &SolverVariable{
		Name: name, Calc: calc, Lower: lower, Upper: upper, Shift: shift, Scale: scale, Guess: guess,
	}, nil
}
