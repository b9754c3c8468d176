package seqcore

import (
	"math"
	"time"
)

// AdvanceKeplerian returns the state reached dt after state, propagated
// analytically via the two-body Kepler equation and expressed in the
// same Representation as the input state. It is the
// building block an Event's effect uses to move a spacecraft's clock and
// position forward between maneuvers, replacing the teacher's numerical
// integrator: SPEC_FULL.md's event model calls for discrete jumps, not a
// continuously-stepped propagator, so a closed-form Kepler solve is
// enough to carry a spacecraft from one event to the next.
//
// Only elliptical orbits (e < 1) are supported; hyperbolic and parabolic
// advance is not implemented.
func AdvanceKeplerian(state OrbitState, dt time.Duration, mu float64) (OrbitState, error) {
	kep, err := Convert(state, Keplerian, mu)
	if err != nil {
		return OrbitState{}, err
	}
	a, e, inc, Ω, ω, ν := kep.Components[0], kep.Components[1], kep.Components[2], kep.Components[3], kep.Components[4], kep.Components[5]
	if e >= 1 {
		return OrbitState{}, &ConversionUndefinedError{From: "hyperbolic/parabolic Keplerian", To: "Keplerian advance"}
	}

	sinν, cosν := math.Sincos(ν)
	cosE := (e + cosν) / (1 + e*cosν)
	sinE := math.Sqrt(1-e*e) * sinν / (1 + e*cosν)
	E0 := math.Atan2(sinE, cosE)
	M0 := E0 - e*math.Sin(E0)

	n := math.Sqrt(mu / math.Pow(a, 3))
	M := math.Mod(M0+n*dt.Seconds(), 2*math.Pi)
	if M < 0 {
		M += 2 * math.Pi
	}

	E := M
	for i := 0; i < 50; i++ {
		dE := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= dE
		if math.Abs(dE) < 1e-12 {
			break
		}
	}

	sinHalfE, cosHalfE := math.Sincos(E / 2)
	νNext := 2 * math.Atan2(math.Sqrt(1+e)*sinHalfE, math.Sqrt(1-e)*cosHalfE)
	if νNext < 0 {
		νNext += 2 * math.Pi
	}

	advanced := OrbitState{Repr: Keplerian, Components: [6]float64{a, e, inc, Ω, ω, νNext}}
	return Convert(advanced, state.Repr, mu)
}
