package seqcore

import (
	"os"

	kitlog "github.com/go-kit/kit/log"
)

// SequenceManager bridges a topologically-sorted Sequence to an
// external NLP optimizer. Construction runs in five steps: (1) sort the
// sequence, (2) flatten every event's SolverVariables into one ordered
// decision-variable vector, validating that no two distinct variables
// collide on name, (3) flatten every event's Constraints into one
// ordered residual vector (never deduplicated), (4) discover every
// Stateful subject reachable from the flattened variables' and
// constraints' Calcs, (5) snapshot that subject set as the manager's
// reset point.
type SequenceManager struct {
	Ordered     []*Event
	subjects    []Stateful
	baseline    []interface{}
	variables   []*SolverVariable
	constraints []*Constraint
	logger      kitlog.Logger
}

// NewSequenceManager builds a manager from a sequence. The stateful
// subjects a solver must snapshot and restore (every Spacecraft and
// ImpulsiveManeuver touched by a variable's or constraint's Calc) are
// discovered automatically from the flattened variables and
// constraints; the caller never supplies them directly.
func NewSequenceManager(seq *Sequence) (*SequenceManager, error) {
	ordered, err := TopoSort(seq)
	if err != nil {
		return nil, err
	}

	logger := kitlog.With(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout)), "subsys", "manager")
	m := &SequenceManager{Ordered: ordered, logger: logger}

	seen := make(map[string]*SolverVariable)
	for _, e := range ordered {
		for _, v := range e.Variables {
			if prior, ok := seen[v.Name]; ok {
				if prior == v {
					continue // the same variable shared across two events' effects
				}
				return nil, &UnsettableCalcError{Tag: v.Name + " (duplicate solver variable name)"}
			}
			seen[v.Name] = v
			m.variables = append(m.variables, v)
		}
	}
	for _, e := range ordered {
		for _, c := range e.Constraints {
			m.constraints = append(m.constraints, c)
		}
	}

	m.subjects = discoverSubjects(m.variables, m.constraints)
	m.baseline = m.snapshotSubjects()
	m.logger.Log("level", "info", "events", len(ordered), "variables", len(m.variables), "constraints", len(m.constraints), "subjects", len(m.subjects))
	return m, nil
}

// discoverSubjects walks every variable's and constraint's Calc and
// collects the Stateful subjects it touches: an *OrbitCalc contributes
// its Spacecraft, a *ManeuverCalc contributes its ImpulsiveManeuver and
// its Spacecraft, a *BodyCalc contributes nothing (a CelestialObject is
// not stateful across a solver evaluation). Subjects are deduplicated
// by pointer identity and returned in discovery order: every variable's
// Calc first, then every constraint's Calc, each in flattened order.
func discoverSubjects(variables []*SolverVariable, constraints []*Constraint) []Stateful {
	var subjects []Stateful
	seen := make(map[interface{}]bool)
	add := func(s Stateful) {
		if s == nil || seen[s] {
			return
		}
		seen[s] = true
		subjects = append(subjects, s)
	}
	collect := func(c Calc) {
		switch calc := c.(type) {
		case *OrbitCalc:
			add(calc.SC)
		case *ManeuverCalc:
			add(calc.Maneuver)
			add(calc.SC)
		case *BodyCalc:
			// CelestialObjects are not stateful subjects.
		}
	}
	for _, v := range variables {
		collect(v.Calc)
	}
	for _, c := range constraints {
		collect(c.Calc)
	}
	return subjects
}

func (m *SequenceManager) snapshotSubjects() []interface{} {
	out := make([]interface{}, len(m.subjects))
	for i, s := range m.subjects {
		out[i] = s.Snapshot()
	}
	return out
}

// ResetStateful restores every subject to the state it was in when the
// manager was constructed. A solver calls this before replaying events
// with a new candidate decision vector.
func (m *SequenceManager) ResetStateful() {
	for i, s := range m.subjects {
		s.Restore(m.baseline[i])
	}
}

// ReplayAndCollect runs every event's effect in topological order and,
// immediately after each event's effect returns, reads every constraint
// attached to that event and appends its residual components. This
// interleaving is load-bearing: a constraint naming a mid-trajectory
// quantity (apoapsis altitude after burn 1 but before burn 2, say) is
// only meaningful if it is evaluated at that point in the replay rather
// than after every event has already run.
func (m *SequenceManager) ReplayAndCollect() ([]float64, error) {
	var residual []float64
	for _, e := range m.Ordered {
		e.Effect()
		for _, c := range e.Constraints {
			vals, err := c.Calc.Get()
			if err != nil {
				return nil, err
			}
			residual = append(residual, vals...)
		}
	}
	return residual, nil
}

// Variables returns the flattened, ordered decision variables.
func (m *SequenceManager) Variables() []*SolverVariable { return m.variables }

// Constraints returns the flattened, ordered constraints.
func (m *SequenceManager) Constraints() []*Constraint { return m.constraints }

// GetVarValues reads every decision variable's current value off its
// Calc, in flattened order.
func (m *SequenceManager) GetVarValues() ([]float64, error) {
	var out []float64
	for _, v := range m.variables {
		vals, err := v.Calc.Get()
		if err != nil {
			return nil, err
		}
		out = append(out, vals...)
	}
	return out, nil
}

// SetVarValues writes x into every decision variable's Calc, in
// flattened order. len(x) must equal the sum of the variables' arities.
func (m *SequenceManager) SetVarValues(x []float64) error {
	offset := 0
	for _, v := range m.variables {
		n := v.Calc.Arity()
		if offset+n > len(x) {
			return &ArityMismatchError{Tag: v.Name, Expected: offset + n, Got: len(x)}
		}
		if err := v.Calc.Set(x[offset : offset+n]); err != nil {
			return err
		}
		offset += n
	}
	return nil
}

// GetFunLower returns the flattened lower bound vector across all
// constraints, in the same order ReplayAndCollect emits residuals.
func (m *SequenceManager) GetFunLower() []float64 {
	var out []float64
	for _, c := range m.constraints {
		out = append(out, c.Lower...)
	}
	return out
}

// GetFunUpper returns the flattened upper bound vector across all
// constraints.
func (m *SequenceManager) GetFunUpper() []float64 {
	var out []float64
	for _, c := range m.constraints {
		out = append(out, c.Upper...)
	}
	return out
}

// GetVarLower returns the flattened lower bound vector across all
// decision variables.
func (m *SequenceManager) GetVarLower() []float64 {
	var out []float64
	for _, v := range m.variables {
		out = append(out, v.Lower...)
	}
	return out
}

// GetVarUpper returns the flattened upper bound vector across all
// decision variables.
func (m *SequenceManager) GetVarUpper() []float64 {
	var out []float64
	for _, v := range m.variables {
		out = append(out, v.Upper...)
	}
	return out
}

// GetVarGuess returns the flattened initial-guess vector across all
// decision variables.
func (m *SequenceManager) GetVarGuess() []float64 {
	var out []float64
	for _, v := range m.variables {
		out = append(out, v.Guess...)
	}
	return out
}
