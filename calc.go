package seqcore

// Stateful is implemented by anything a SequenceManager must snapshot
// before a solver evaluation and restore afterwards: Spacecraft and
// ImpulsiveManeuver.
type Stateful interface {
	Snapshot() interface{}
	Restore(snap interface{})
}

// Calc is the common interface OrbitCalc, BodyCalc and ManeuverCalc
// satisfy: a named, typed get/set handle onto one component of a
// stateful subject's value. An Event's SolverVariable and Constraint
// are both built around a Calc.
type Calc interface {
	Name() string
	Arity() int
	Settable() bool
	Get() ([]float64, error)
	Set(vals []float64) error
}

// OrbitCalc is a Calc bound to one OrbitVar component of a Spacecraft's
// orbital state. Get and Set implement the conversion-on-read and
// conversion-on-write protocol: the spacecraft's OrbitState is converted
// to the tag's required Representation, read or written, then (for Set)
// converted back to the spacecraft's original representation so the
// stored representation never silently changes as a side effect of a
// Set call.
type OrbitCalc struct {
	SC  *Spacecraft
	Tag OrbitVar
}

// Name implements Calc.
func (c *OrbitCalc) Name() string { return "Orbit." + c.Tag.String() }

// Arity implements Calc.
func (c *OrbitCalc) Arity() int { return c.Tag.Arity() }

// Settable implements Calc.
func (c *OrbitCalc) Settable() bool { return c.Tag.Settable() }

// Get implements Calc. If the spacecraft's origin carries no
// gravitational parameter, Get still succeeds when the state is already
// in the tag's required representation (no conversion is needed), and
// returns MissingMuError before attempting any conversion otherwise.
func (c *OrbitCalc) Get() ([]float64, error) {
	mu := c.SC.Origin.GM()
	if mu == 0 && c.SC.OrbitState.Repr != c.Tag.RequiredRepr() {
		return nil, &MissingMuError{From: c.SC.OrbitState.Repr.String(), To: c.Tag.RequiredRepr().String(), Origin: c.SC.Origin.Name}
	}
	return EvalOrbit(c.SC.OrbitState, c.Tag, mu)
}

// Set implements Calc.
func (c *OrbitCalc) Set(vals []float64) error {
	if !c.Settable() {
		return &UnsettableCalcError{Tag: c.Name()}
	}
	if len(vals) != c.Arity() {
		return &ArityMismatchError{Tag: c.Name(), Expected: c.Arity(), Got: len(vals)}
	}
	mu := c.SC.Origin.GM()
	if mu == 0 && c.SC.OrbitState.Repr != c.Tag.RequiredRepr() {
		return &MissingMuError{From: c.SC.OrbitState.Repr.String(), To: c.Tag.RequiredRepr().String(), Origin: c.SC.Origin.Name}
	}
	next, err := SetOrbit(c.SC.OrbitState, c.Tag, vals, mu)
	if err != nil {
		return err
	}
	c.SC.OrbitState = next
	return nil
}

// BodyCalc is a Calc bound to one BodyVar attribute of a CelestialObject.
type BodyCalc struct {
	Body *CelestialObject
	Tag  BodyVar
}

// Name implements Calc.
func (c *BodyCalc) Name() string { return "Body." + c.Tag.String() }

// Arity implements Calc.
func (c *BodyCalc) Arity() int { return c.Tag.Arity() }

// Settable implements Calc.
func (c *BodyCalc) Settable() bool { return c.Tag.Settable() }

// Get implements Calc.
func (c *BodyCalc) Get() ([]float64, error) {
	switch c.Tag {
	case GravParam:
		return []float64{c.Body.GM()}, nil
	default:
		return nil, &UnsettableCalcError{Tag: c.Name()}
	}
}

// Set implements Calc.
func (c *BodyCalc) Set(vals []float64) error {
	if len(vals) != c.Arity() {
		return &ArityMismatchError{Tag: c.Name(), Expected: c.Arity(), Got: len(vals)}
	}
	switch c.Tag {
	case GravParam:
		c.Body.SetGM(vals[0])
		return nil
	default:
		return &UnsettableCalcError{Tag: c.Name()}
	}
}

// ManeuverCalc is a Calc bound to one ManeuverVar component of an
// ImpulsiveManeuver. SC is present because DeltaVVector and DeltaVMag
// are frame-dependent: converting a maneuver's stored Components to or
// from the inertial frame requires the spacecraft's position and
// velocity at the time the maneuver is applied.
type ManeuverCalc struct {
	Maneuver *ImpulsiveManeuver
	SC       *Spacecraft
	Tag      ManeuverVar
}

// Name implements Calc.
func (c *ManeuverCalc) Name() string { return "Maneuver." + c.Tag.String() }

// Arity implements Calc.
func (c *ManeuverCalc) Arity() int { return c.Tag.Arity() }

// Settable implements Calc.
func (c *ManeuverCalc) Settable() bool { return c.Tag.Settable() }

// inertialRV converts the spacecraft's current orbital state to
// Cartesian, returning position and velocity in the inertial frame
// InertialDeltaV/FromInertialDeltaV expect.
func (c *ManeuverCalc) inertialRV() (r, v []float64, err error) {
	mu := c.SC.Origin.GM()
	if mu == 0 && c.SC.OrbitState.Repr != Cartesian {
		return nil, nil, &MissingMuError{From: c.SC.OrbitState.Repr.String(), To: Cartesian.String(), Origin: c.SC.Origin.Name}
	}
	cart, err := Convert(c.SC.OrbitState, Cartesian, mu)
	if err != nil {
		return nil, nil, err
	}
	return cart.R(), cart.V(), nil
}

// Get implements Calc. DeltaVVector and DeltaVMag report the maneuver's
// Δv rotated into the spacecraft's inertial frame; DeltaVx/y/z and Isp
// report the maneuver's own stored components directly.
func (c *ManeuverCalc) Get() ([]float64, error) {
	switch c.Tag {
	case DeltaVx:
		return []float64{c.Maneuver.Components[0]}, nil
	case DeltaVy:
		return []float64{c.Maneuver.Components[1]}, nil
	case DeltaVz:
		return []float64{c.Maneuver.Components[2]}, nil
	case Isp:
		return []float64{c.Maneuver.Isp}, nil
	case DeltaVVector:
		r, v, err := c.inertialRV()
		if err != nil {
			return nil, err
		}
		return c.Maneuver.InertialDeltaV(r, v), nil
	case DeltaVMag:
		r, v, err := c.inertialRV()
		if err != nil {
			return nil, err
		}
		return []float64{Norm(c.Maneuver.InertialDeltaV(r, v))}, nil
	default:
		return nil, &UnsettableCalcError{Tag: c.Name()}
	}
}

// Set implements Calc. Setting DeltaVVector rotates the supplied
// inertial-frame Δv back into the maneuver's own Frame via
// FromInertialDeltaV before writing Components.
func (c *ManeuverCalc) Set(vals []float64) error {
	if !c.Settable() {
		return &UnsettableCalcError{Tag: c.Name()}
	}
	if len(vals) != c.Arity() {
		return &ArityMismatchError{Tag: c.Name(), Expected: c.Arity(), Got: len(vals)}
	}
	switch c.Tag {
	case DeltaVx:
		c.Maneuver.Components[0] = vals[0]
	case DeltaVy:
		c.Maneuver.Components[1] = vals[0]
	case DeltaVz:
		c.Maneuver.Components[2] = vals[0]
	case Isp:
		c.Maneuver.Isp = vals[0]
	case DeltaVVector:
		r, v, err := c.inertialRV()
		if err != nil {
			return err
		}
		native := c.Maneuver.FromInertialDeltaV(r, v, vals)
		c.Maneuver.Components = [3]float64{native[0], native[1], native[2]}
	default:
		return &UnsettableCalcError{Tag: c.Name()}
	}
	return nil
}
