package seqcore

// SolverFun is the bridge an external NLP optimizer calls once per
// evaluation: given a candidate decision vector x, reset every stateful
// subject to the manager's baseline, assign x onto the decision
// variables, replay the sequence's events in order, then collect the
// constraint residuals. It is generic over the residual's element type
// S: the residual is returned as []S.
//
// x is a plain []float64, and Calc Get/Set work on float64, so no
// derivative information is carried from x into the residual. lift
// converts each float64 read off a Calc into S; any derivative part of
// the returned values is whatever lift assigns (with a Dual lift such as
// NewDual(v, 0), every derivative is zero).
type SolverFun[S Scalar] struct {
	Manager *SequenceManager
	Lift    func(float64) S
}

// NewSolverFun returns a SolverFun bound to the given manager, lifting
// plain float64 residual components via lift.
func NewSolverFun[S Scalar](m *SequenceManager, lift func(float64) S) *SolverFun[S] {
	return &SolverFun[S]{Manager: m, Lift: lift}
}

// Eval resets every stateful subject, assigns x onto the decision
// variables, then replays the sequence event by event — evaluating each
// event's own constraints immediately after its effect runs, before
// moving to the next event. A constraint naming a mid-trajectory
// quantity (apoapsis altitude after one burn but before the next) is
// only meaningful evaluated at that point in the replay, not after the
// whole sequence has finished.
func (sf *SolverFun[S]) Eval(x []float64) ([]S, error) {
	sf.Manager.ResetStateful()
	if err := sf.Manager.SetVarValues(x); err != nil {
		return nil, err
	}
	vals, err := sf.Manager.ReplayAndCollect()
	if err != nil {
		return nil, err
	}
	return ToScalars(vals, sf.Lift), nil
}

// X0 returns the solver's initial guess vector.
func (sf *SolverFun[S]) X0() []float64 { return sf.Manager.GetVarGuess() }

// Lx returns the solver's decision-variable lower bound vector.
func (sf *SolverFun[S]) Lx() []float64 { return sf.Manager.GetVarLower() }

// Ux returns the solver's decision-variable upper bound vector.
func (sf *SolverFun[S]) Ux() []float64 { return sf.Manager.GetVarUpper() }

// Lg returns the solver's constraint-residual lower bound vector.
func (sf *SolverFun[S]) Lg() []float64 { return sf.Manager.GetFunLower() }

// Ug returns the solver's constraint-residual upper bound vector.
func (sf *SolverFun[S]) Ug() []float64 { return sf.Manager.GetFunUpper() }
