package seqcore

// Representation names one of the coordinate systems an OrbitState's six
// components can be expressed in. Spacecraft remember which
// Representation they were last stored in, and a Calc converts to and
// from it transparently (see conversion.go).
type Representation uint8

const (
	// Cartesian stores [rx, ry, rz, vx, vy, vz] in kilometers and
	// kilometers per second.
	Cartesian Representation = iota
	// Keplerian stores [a, e, i, Ω, ω, ν] — semi-major axis in
	// kilometers, eccentricity dimensionless, the remaining four angles
	// in radians.
	Keplerian
	// ModEquinoctial stores the modified equinoctial elements. Conversion
	// to and from this representation is not yet implemented; see
	// conversion.go.
	ModEquinoctial
	// Spherical stores [r, lon, lat, v, fpa, heading]. Conversion to and
	// from this representation is not yet implemented; see conversion.go.
	Spherical
)

// String implements the Stringer interface.
func (r Representation) String() string {
	switch r {
	case Cartesian:
		return "Cartesian"
	case Keplerian:
		return "Keplerian"
	case ModEquinoctial:
		return "ModEquinoctial"
	case Spherical:
		return "Spherical"
	default:
		return "UnknownRepresentation"
	}
}

// OrbitState is a snapshot of a spacecraft's orbital state expressed in
// one Representation. It carries no origin body: the μ needed to convert
// between representations comes from whichever CelestialObject the
// calling Spacecraft orbits.
type OrbitState struct {
	Components [6]float64
	Repr       Representation
}

// R returns the position vector. Only meaningful when Repr is Cartesian;
// callers that don't know the representation should go through
// Convert first.
func (s OrbitState) R() []float64 {
	return []float64{s.Components[0], s.Components[1], s.Components[2]}
}

// V returns the velocity vector. Only meaningful when Repr is Cartesian.
func (s OrbitState) V() []float64 {
	return []float64{s.Components[3], s.Components[4], s.Components[5]}
}
