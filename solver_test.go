package seqcore

import "testing"

func TestSolverFunEvalFloat64(t *testing.T) {
	m, _ := buildTestManager(t)
	sf := NewSolverFun[Float64Scalar](m, func(v float64) Float64Scalar { return Float64Scalar(v) })
	residual, err := sf.Eval([]float64{Deg2rad(45)})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(residual) != 1 {
		t.Fatalf("expected 1 residual component, got %d", len(residual))
	}
	if residual[0].Float64() <= 0 {
		t.Fatal("expected a positive eccentricity residual for this test orbit")
	}
}

func TestSolverFunEvalDual(t *testing.T) {
	m, _ := buildTestManager(t)
	sf := NewSolverFun[Dual](m, func(v float64) Dual { return NewDual(v, 0) })
	residual, err := sf.Eval([]float64{Deg2rad(45)})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(residual) != 1 {
		t.Fatalf("expected 1 residual component, got %d", len(residual))
	}
	// No seeded derivative on the inputs to this residual: zero flows through.
	if residual[0].Eps != 0 {
		t.Fatalf("expected zero derivative with an unseeded lift, got %f", residual[0].Eps)
	}
}

func TestSolverFunBoundsVectorsMatchManager(t *testing.T) {
	m, _ := buildTestManager(t)
	sf := NewSolverFun[Float64Scalar](m, func(v float64) Float64Scalar { return Float64Scalar(v) })
	if len(sf.X0()) != 1 || len(sf.Lx()) != 1 || len(sf.Ux()) != 1 || len(sf.Lg()) != 1 || len(sf.Ug()) != 1 {
		t.Fatal("expected SolverFun's bound vectors to mirror the manager's")
	}
}
