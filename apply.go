package seqcore

import "fmt"

// ApplyManeuver sums the inertial Δv of an impulsive maneuver into a
// spacecraft's velocity and burns the corresponding propellant. It is
// the event-effect building block a sequence's maneuver events call:
// wherever an Event's Effect closure needs to execute "fire this
// maneuver," it calls ApplyManeuver rather than touching sc.OrbitState
// or m.Components directly.
//
// The spacecraft's OrbitState is converted to Cartesian to compute the
// inertial Δv (InertialDeltaV needs inertial r, v), the Δv is added to
// velocity, and the result is converted back to the spacecraft's
// original Representation so ApplyManeuver never changes how the
// caller's state is stored. A conversion fails here only when no
// converter exists between the spacecraft's representation and
// Cartesian (a ConversionUndefinedError); a missing gravitational
// parameter on the origin is not checked. The effect closure has no way
// to recover from such a failure, so it panics rather than threading an
// error return through Event.Effect.
func ApplyManeuver(sc *Spacecraft, m *ImpulsiveManeuver) {
	mu := sc.Origin.GM()
	cart, err := Convert(sc.OrbitState, Cartesian, mu)
	if err != nil {
		panic(fmt.Errorf("ApplyManeuver: %s", err))
	}

	r, v := cart.R(), cart.V()
	dv := m.InertialDeltaV(r, v)
	for i := 0; i < 3; i++ {
		cart.Components[3+i] = v[i] + dv[i]
	}

	restored, err := Convert(cart, sc.OrbitState.Repr, mu)
	if err != nil {
		panic(fmt.Errorf("ApplyManeuver: %s", err))
	}
	sc.OrbitState = restored
	sc.ApplyBurn(Norm(dv), m.Isp)
}
