package seqcore

import "fmt"

// ArityMismatchError is raised when a value supplied to a Calc's Set does
// not have a length equal to the tag's arity.
type ArityMismatchError struct {
	Tag      string
	Expected int
	Got      int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("arity mismatch for %s: expected %d component(s), got %d", e.Tag, e.Expected, e.Got)
}

// UnsettableCalcError is raised when Set is called on a Calc whose tag has
// no defined inverse. NewSequenceManager also returns it, with Tag naming
// the variable, when two distinct SolverVariables share a name.
type UnsettableCalcError struct {
	Tag string
}

func (e *UnsettableCalcError) Error() string {
	return fmt.Sprintf("%s is not settable", e.Tag)
}

// MissingMuError is raised when a representation conversion needs a
// gravitational parameter but the coordinate system's origin does not
// carry one.
type MissingMuError struct {
	From, To string
	Origin   string
}

func (e *MissingMuError) Error() string {
	return fmt.Sprintf("cannot convert from %s to %s: origin %q has no gravitational parameter (μ)", e.From, e.To, e.Origin)
}

// ConversionUndefinedError is raised when no converter exists between two
// representations.
type ConversionUndefinedError struct {
	From, To string
}

func (e *ConversionUndefinedError) Error() string {
	return fmt.Sprintf("no converter defined from %s to %s", e.From, e.To)
}

// SequenceCycleError is raised when topological sort cannot linearize the
// sequence graph because it contains a cycle.
type SequenceCycleError struct {
	Remaining int
	Total     int
}

func (e *SequenceCycleError) Error() string {
	return fmt.Sprintf("sequence has a cycle: only %d of %d events could be ordered", e.Total-e.Remaining, e.Total)
}

// BoundsLengthMismatchError is raised when a Constraint or SolverVariable
// is constructed with bound vectors whose length does not equal the
// calc's arity.
type BoundsLengthMismatchError struct {
	Field    string
	Expected int
	Got      int
}

func (e *BoundsLengthMismatchError) Error() string {
	return fmt.Sprintf("%s has length %d, expected arity %d", e.Field, e.Got, e.Expected)
}

// NoBoundsSpecifiedError is raised when a Constraint is built without
// naming either a lower or an upper bound.
type NoBoundsSpecifiedError struct {
	Name string
}

func (e *NoBoundsSpecifiedError) Error() string {
	if e.Name == "" {
		return "constraint must specify a lower bound, an upper bound, or both"
	}
	return fmt.Sprintf("constraint %q must specify a lower bound, an upper bound, or both", e.Name)
}
