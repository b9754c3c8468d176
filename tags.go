package seqcore

// OrbitVar names a gettable/settable component of a spacecraft's orbital
// state. Each tag has a fixed arity and a Representation its underlying
// storage must be converted to before the value can be read or written.
type OrbitVar uint8

const (
	SMA OrbitVar = iota
	Ecc
	Inc
	RAAN
	AOP
	TA
	PosX
	PosY
	PosZ
	VelX
	VelY
	VelZ
	// PositionVector addresses all three Cartesian position components
	// at once; arity 3.
	PositionVector
	// VelocityVector addresses all three Cartesian velocity components
	// at once; arity 3.
	VelocityVector
	// PosMag is the Euclidean norm of the position vector. Derived,
	// not settable.
	PosMag
	// VelMag is the Euclidean norm of the velocity vector. Derived,
	// not settable.
	VelMag
	// PosDotVel is the dot product of position and velocity. Derived,
	// not settable.
	PosDotVel
	// IncomingAsymptote is the angle between the incoming hyperbolic
	// asymptote and periapsis, defined only for Ecc > 1. Derived, not
	// settable.
	IncomingAsymptote
)

var orbitVarNames = map[OrbitVar]string{
	SMA: "SMA", Ecc: "Ecc", Inc: "Inc", RAAN: "RAAN", AOP: "AOP", TA: "TA",
	PosX: "PosX", PosY: "PosY", PosZ: "PosZ",
	VelX: "VelX", VelY: "VelY", VelZ: "VelZ",
	PositionVector: "PositionVector", VelocityVector: "VelocityVector",
	PosMag: "PosMag", VelMag: "VelMag", PosDotVel: "PosDotVel",
	IncomingAsymptote: "IncomingAsymptote",
}

// String implements the Stringer interface.
func (v OrbitVar) String() string {
	if n, ok := orbitVarNames[v]; ok {
		return n
	}
	return "UnknownOrbitVar"
}

// Arity is 3 for the vector tags (PositionVector, VelocityVector) and 1
// for every scalar or derived-scalar tag.
func (v OrbitVar) Arity() int {
	switch v {
	case PositionVector, VelocityVector:
		return 3
	default:
		return 1
	}
}

// Settable reports whether Set is defined for this tag. The derived
// scalar quantities (PosMag, VelMag, PosDotVel, IncomingAsymptote) have
// no inverse and are read-only.
func (v OrbitVar) Settable() bool {
	switch v {
	case PosMag, VelMag, PosDotVel, IncomingAsymptote:
		return false
	default:
		return true
	}
}

// RequiredRepr returns the Representation the OrbitState must be
// converted to before this tag's component can be read.
func (v OrbitVar) RequiredRepr() Representation {
	switch v {
	case SMA, Ecc, Inc, RAAN, AOP, TA, IncomingAsymptote:
		return Keplerian
	default:
		return Cartesian
	}
}

// componentIndex returns the index into OrbitState.Components that this
// tag reads or writes once the state has been converted to
// RequiredRepr().
func (v OrbitVar) componentIndex() int {
	switch v {
	case SMA, PosX:
		return 0
	case Ecc, PosY:
		return 1
	case Inc, PosZ:
		return 2
	case RAAN, VelX:
		return 3
	case AOP, VelY:
		return 4
	case TA, VelZ:
		return 5
	default:
		return 0
	}
}

// BodyVar names a gettable/settable attribute of a CelestialObject.
type BodyVar uint8

const (
	// GravParam addresses a body's μ.
	GravParam BodyVar = iota
)

// String implements the Stringer interface.
func (v BodyVar) String() string {
	switch v {
	case GravParam:
		return "GravParam"
	default:
		return "UnknownBodyVar"
	}
}

// Arity is always 1 for a BodyVar.
func (v BodyVar) Arity() int { return 1 }

// Settable reports whether Set is defined for this tag.
func (v BodyVar) Settable() bool { return true }

// ManeuverVar names a gettable/settable component of an impulsive
// maneuver's Δv, or its specific impulse.
type ManeuverVar uint8

const (
	DeltaVx ManeuverVar = iota
	DeltaVy
	DeltaVz
	Isp
	// DeltaVVector addresses all three Δv components at once; arity 3.
	DeltaVVector
	// DeltaVMag is the Euclidean norm of the Δv vector. Derived, not
	// settable.
	DeltaVMag
)

var maneuverVarNames = map[ManeuverVar]string{
	DeltaVx: "DeltaVx", DeltaVy: "DeltaVy", DeltaVz: "DeltaVz", Isp: "Isp",
	DeltaVVector: "DeltaVVector", DeltaVMag: "DeltaVMag",
}

// String implements the Stringer interface.
func (v ManeuverVar) String() string {
	if n, ok := maneuverVarNames[v]; ok {
		return n
	}
	return "UnknownManeuverVar"
}

// Arity is 3 for DeltaVVector and 1 for every other ManeuverVar.
func (v ManeuverVar) Arity() int {
	if v == DeltaVVector {
		return 3
	}
	return 1
}

// Settable reports whether Set is defined for this tag. DeltaVMag is
// derived (the Δv vector's norm) and has no inverse.
func (v ManeuverVar) Settable() bool { return v != DeltaVMag }
