package seqcore

import "testing"

func buildTestManager(t *testing.T) (*SequenceManager, *Spacecraft) {
	t.Helper()
	sc := newTestSpacecraft()
	incCalc := &OrbitCalc{SC: sc, Tag: Inc}
	incVar, err := NewSolverVariable("inclination", incCalc, []float64{0}, []float64{Deg2rad(180)}, []float64{Deg2rad(30)})
	if err != nil {
		t.Fatalf("unexpected error building variable: %s", err)
	}

	eccCalc := &OrbitCalc{SC: sc, Tag: Ecc}
	eccConstraint, err := NewConstraint("eccentricity-bound", eccCalc, []float64{0}, []float64{0.5})
	if err != nil {
		t.Fatalf("unexpected error building constraint: %s", err)
	}

	e := NewEvent("set-inclination", func() { sc.recordIfEnabled() })
	e.AddVariable(incVar)
	e.AddConstraint(eccConstraint)

	seq := NewSequence()
	seq.AddEvent(e)

	m, err := NewSequenceManager(seq)
	if err != nil {
		t.Fatalf("unexpected error building manager: %s", err)
	}
	return m, sc
}

func TestSequenceManagerSetGetVarValues(t *testing.T) {
	m, _ := buildTestManager(t)
	if err := m.SetVarValues([]float64{Deg2rad(45)}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	vals, err := m.GetVarValues()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if vals[0] < Deg2rad(44.999) || vals[0] > Deg2rad(45.001) {
		t.Fatalf("expected ~45 deg, got %f deg", Rad2deg(vals[0]))
	}
}

func TestSequenceManagerResetStateful(t *testing.T) {
	m, sc := buildTestManager(t)
	before := sc.OrbitState
	if err := m.SetVarValues([]float64{Deg2rad(90)}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	m.ResetStateful()
	if sc.OrbitState != before {
		t.Fatal("ResetStateful did not restore the baseline orbital state")
	}
}

func TestSequenceManagerBoundsVectors(t *testing.T) {
	m, _ := buildTestManager(t)
	if len(m.GetVarLower()) != 1 || len(m.GetVarUpper()) != 1 || len(m.GetVarGuess()) != 1 {
		t.Fatal("expected one-element variable bound vectors")
	}
	if len(m.GetFunLower()) != 1 || len(m.GetFunUpper()) != 1 {
		t.Fatal("expected one-element constraint bound vectors")
	}
}

func TestSequenceManagerSharedVariableAcrossEventsIsNotDuplicated(t *testing.T) {
	sc := newTestSpacecraft()
	incCalc := &OrbitCalc{SC: sc, Tag: Inc}
	incVar, err := NewSolverVariable("inclination", incCalc, []float64{0}, []float64{Deg2rad(180)}, []float64{Deg2rad(30)})
	if err != nil {
		t.Fatalf("unexpected error building variable: %s", err)
	}

	first := NewEvent("burn-1", func() {})
	first.AddVariable(incVar)
	second := NewEvent("burn-2", func() {})
	second.AddVariable(incVar)

	seq := NewSequence()
	seq.AddEdge(first, second)

	m, err := NewSequenceManager(seq)
	if err != nil {
		t.Fatalf("expected sharing one SolverVariable across two events to be allowed: %s", err)
	}
	if len(m.Variables()) != 1 {
		t.Fatalf("expected the shared variable to appear once, got %d", len(m.Variables()))
	}
}

func TestSequenceManagerRejectsDistinctVariablesWithSameName(t *testing.T) {
	sc := newTestSpacecraft()
	a, err := NewSolverVariable("inclination", &OrbitCalc{SC: sc, Tag: Inc}, []float64{0}, []float64{1}, []float64{0})
	if err != nil {
		t.Fatalf("unexpected error building variable: %s", err)
	}
	b, err := NewSolverVariable("inclination", &OrbitCalc{SC: sc, Tag: RAAN}, []float64{0}, []float64{1}, []float64{0})
	if err != nil {
		t.Fatalf("unexpected error building variable: %s", err)
	}

	first := NewEvent("burn-1", func() {})
	first.AddVariable(a)
	second := NewEvent("burn-2", func() {})
	second.AddVariable(b)

	seq := NewSequence()
	seq.AddEdge(first, second)

	if _, err := NewSequenceManager(seq); err == nil {
		t.Fatal("expected an error for two distinct variables sharing a name")
	}
}

func TestSequenceManagerConstraintOrderingAppearsTwiceWhenSharedAcrossEvents(t *testing.T) {
	sc := newTestSpacecraft()
	eccConstraint, err := NewConstraint("eccentricity-bound", &OrbitCalc{SC: sc, Tag: Ecc}, []float64{0}, []float64{0.5})
	if err != nil {
		t.Fatalf("unexpected error building constraint: %s", err)
	}

	first := NewEvent("burn-1", func() {})
	first.AddConstraint(eccConstraint)
	second := NewEvent("burn-2", func() {})
	second.AddConstraint(eccConstraint)

	seq := NewSequence()
	seq.AddEdge(first, second)

	m, err := NewSequenceManager(seq)
	if err != nil {
		t.Fatalf("unexpected error building manager: %s", err)
	}
	if len(m.Constraints()) != 2 {
		t.Fatalf("expected the same Constraint attached to two events to appear twice, got %d", len(m.Constraints()))
	}
	if len(m.GetFunLower()) != 2 || len(m.GetFunUpper()) != 2 {
		t.Fatalf("expected bound vectors to reflect both occurrences")
	}
}

func TestSequenceManagerDiscoversSubjectsFromCalcs(t *testing.T) {
	sc := newTestSpacecraft()
	man := NewImpulsiveManeuver("toi", VNB, 300)

	dvVar, err := NewSolverVariable("toi-dvy", &ManeuverCalc{Maneuver: man, SC: sc, Tag: DeltaVy}, []float64{-1}, []float64{1}, []float64{0})
	if err != nil {
		t.Fatalf("unexpected error building variable: %s", err)
	}
	eccConstraint, err := NewConstraint("eccentricity-bound", &OrbitCalc{SC: sc, Tag: Ecc}, []float64{0}, []float64{0.5})
	if err != nil {
		t.Fatalf("unexpected error building constraint: %s", err)
	}

	e := NewEvent("burn", func() {})
	e.AddVariable(dvVar)
	e.AddConstraint(eccConstraint)

	seq := NewSequence()
	seq.AddEvent(e)

	m, err := NewSequenceManager(seq)
	if err != nil {
		t.Fatalf("unexpected error building manager: %s", err)
	}
	if len(m.subjects) != 2 {
		t.Fatalf("expected the maneuver and the spacecraft to be discovered, got %d subjects", len(m.subjects))
	}
	// The spacecraft is reachable from both the variable's ManeuverCalc
	// and the constraint's OrbitCalc; discovery must not add it twice.
	seenSC := 0
	for _, s := range m.subjects {
		if s == Stateful(sc) {
			seenSC++
		}
	}
	if seenSC != 1 {
		t.Fatalf("expected the spacecraft to be deduplicated by identity, appeared %d times", seenSC)
	}
}
