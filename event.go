package seqcore

// Event is one node of a Sequence: an Effect closure that mutates the
// Stateful subjects it closes over (typically applying an
// ImpulsiveManeuver's Δv to a Spacecraft's velocity, or advancing its
// epoch), plus the SolverVariables and Constraints that effect exposes
// to the optimizer.
type Event struct {
	Name        string
	Effect      func()
	Variables   []*SolverVariable
	Constraints []*Constraint
}

// NewEvent returns an Event with the given name and effect and no
// variables or constraints; use AddVariable/AddConstraint to attach
// them.
func NewEvent(name string, effect func()) *Event {
	return &Event{Name: name, Effect: effect}
}

// AddVariable attaches a SolverVariable to this event.
func (e *Event) AddVariable(v *SolverVariable) {
	e.Variables = append(e.Variables, v)
}

// AddConstraint attaches a Constraint to this event.
func (e *Event) AddConstraint(c *Constraint) {
	e.Constraints = append(e.Constraints, c)
}

// String implements the Stringer interface.
func (e *Event) String() string { return e.Name }
