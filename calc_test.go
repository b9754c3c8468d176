package seqcore

import (
	"testing"
	"time"
)

func newTestSpacecraft() *Spacecraft {
	state := OrbitState{Repr: Cartesian, Components: [6]float64{
		-6045, -3490, 2500, -3.457, 6.618, 2.533,
	}}
	sc := NewSpacecraft("test-sc", state, Earth, time.Now(), 500, 100)
	sc.RecordHistory = false
	return sc
}

func TestOrbitCalcGetSet(t *testing.T) {
	sc := newTestSpacecraft()
	calc := &OrbitCalc{SC: sc, Tag: Inc}
	vals, err := calc.Get()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(vals) != 1 {
		t.Fatalf("expected arity 1, got %d", len(vals))
	}

	if err := calc.Set([]float64{Deg2rad(60)}); err != nil {
		t.Fatalf("unexpected error on set: %s", err)
	}
	if sc.OrbitState.Repr != Cartesian {
		t.Fatal("expected the spacecraft's stored representation to remain Cartesian after Set")
	}
	vals, err = calc.Get()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if vals[0] < Deg2rad(59.999) || vals[0] > Deg2rad(60.001) {
		t.Fatalf("expected inclination ~60 deg, got %f deg", Rad2deg(vals[0]))
	}
}

func TestOrbitCalcArityMismatch(t *testing.T) {
	sc := newTestSpacecraft()
	calc := &OrbitCalc{SC: sc, Tag: Ecc}
	if err := calc.Set([]float64{0.1, 0.2}); err == nil {
		t.Fatal("expected ArityMismatchError")
	}
}

func TestOrbitCalcMissingMu(t *testing.T) {
	sc := newTestSpacecraft()
	sc.Origin = CelestialObject{Name: "Fake"} // GM() == 0
	calc := &OrbitCalc{SC: sc, Tag: SMA}
	if _, err := calc.Get(); err == nil {
		t.Fatal("expected MissingMuError when origin has no gravitational parameter")
	}
}

func TestBodyCalcGravParam(t *testing.T) {
	body := Mars
	calc := &BodyCalc{Body: &body, Tag: GravParam}
	vals, err := calc.Get()
	if err != nil || vals[0] != Mars.GM() {
		t.Fatalf("unexpected GravParam get: %v, %s", vals, err)
	}
	if err := calc.Set([]float64{123.4}); err != nil {
		t.Fatalf("unexpected error setting GravParam: %s", err)
	}
	if body.GM() != 123.4 {
		t.Fatal("SetGM via BodyCalc did not take effect")
	}
}

func TestManeuverCalcGetSet(t *testing.T) {
	m := NewImpulsiveManeuver("tcm1", VNB, 300)
	calc := &ManeuverCalc{Maneuver: m, Tag: DeltaVy}
	if err := calc.Set([]float64{0.25}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	vals, err := calc.Get()
	if err != nil || vals[0] != 0.25 {
		t.Fatalf("unexpected maneuver get: %v, %s", vals, err)
	}
}

func TestOrbitCalcVectorTagArityAndRoundTrip(t *testing.T) {
	sc := newTestSpacecraft()
	calc := &OrbitCalc{SC: sc, Tag: PositionVector}
	if calc.Arity() != 3 {
		t.Fatalf("expected PositionVector arity 3, got %d", calc.Arity())
	}
	if err := calc.Set([]float64{7100, 0, 100}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	vals, err := calc.Get()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !VectorsEqual(vals, []float64{7100, 0, 100}, 1e-6) {
		t.Fatalf("expected [7100 0 100], got %v", vals)
	}
}

func TestOrbitCalcDerivedTagNotSettable(t *testing.T) {
	sc := newTestSpacecraft()
	calc := &OrbitCalc{SC: sc, Tag: PosMag}
	if calc.Settable() {
		t.Fatal("expected PosMag to be non-settable")
	}
	if err := calc.Set([]float64{1000}); err == nil {
		t.Fatal("expected UnsettableCalcError when setting PosMag")
	}
	vals, err := calc.Get()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(vals) != 1 || vals[0] <= 0 {
		t.Fatalf("expected a positive position magnitude, got %v", vals)
	}
}

func TestManeuverCalcDeltaVVectorRoutesThroughInertialFrame(t *testing.T) {
	sc := newTestSpacecraft()
	m := NewImpulsiveManeuver("toi", VNB, 300)
	calc := &ManeuverCalc{Maneuver: m, SC: sc, Tag: DeltaVVector}

	inertialDv := []float64{0.1, 0.05, -0.02}
	if err := calc.Set(inertialDv); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	// Writing through DeltaVVector should rotate into the maneuver's own
	// VNB frame, so the raw components differ from the inertial input...
	if m.Components == [3]float64{inertialDv[0], inertialDv[1], inertialDv[2]} {
		t.Fatal("expected VNB storage to differ from the raw inertial input")
	}
	// ...but reading back through DeltaVVector recovers the inertial value.
	got, err := calc.Get()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !VectorsEqual(got, inertialDv, 1e-9) {
		t.Fatalf("expected round trip to recover %v, got %v", inertialDv, got)
	}

	magCalc := &ManeuverCalc{Maneuver: m, SC: sc, Tag: DeltaVMag}
	if magCalc.Settable() {
		t.Fatal("expected DeltaVMag to be non-settable")
	}
	mag, err := magCalc.Get()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !VectorsEqual([]float64{mag[0]}, []float64{Norm(inertialDv)}, 1e-9) {
		t.Fatalf("expected DeltaVMag %f, got %f", Norm(inertialDv), mag[0])
	}
}
