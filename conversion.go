package seqcore

import "math"

// eccentricityε and angleε guard the same near-singular cases the
// teacher's Elements() guarded: near-circular and near-equatorial
// orbits, where Ω and ω are undefined.
const (
	eccentricityε = 5e-5
	angleε        = (5e-3 / 360) * (2 * math.Pi)
)

// Convert transforms an OrbitState into the requested Representation.
// μ is the gravitational parameter of the body the state orbits; it is
// required for every conversion that touches Keplerian elements.
// Converting to the state's own representation is a no-op. Converting
// to or from ModEquinoctial or Spherical is not yet implemented and
// returns a ConversionUndefinedError.
func Convert(s OrbitState, to Representation, mu float64) (OrbitState, error) {
	if s.Repr == to {
		return s, nil
	}
	switch {
	case s.Repr == Cartesian && to == Keplerian:
		return rv2coe(s, mu), nil
	case s.Repr == Keplerian && to == Cartesian:
		return coe2rv(s, mu), nil
	default:
		return OrbitState{}, &ConversionUndefinedError{From: s.Repr.String(), To: to.String()}
	}
}

// rv2coe implements Vallado's RV2COE algorithm: Cartesian state vectors
// to classical orbital elements.
func rv2coe(s OrbitState, mu float64) OrbitState {
	r := s.R()
	v := s.V()
	h := Cross(r, v)
	n := Cross([]float64{0, 0, 1}, h)
	rNorm := Norm(r)
	vNorm := Norm(v)
	ξ := (vNorm*vNorm)/2 - mu/rNorm
	a := -mu / (2 * ξ)

	eVec := make([]float64, 3)
	rdotv := Dot(r, v)
	for i := 0; i < 3; i++ {
		eVec[i] = ((vNorm*vNorm-mu/rNorm)*r[i] - rdotv*v[i]) / mu
	}
	e := Norm(eVec)
	if e < eccentricityε {
		e = eccentricityε
	}

	i := math.Acos(h[2] / Norm(h))
	if i < angleε {
		i = angleε
	}

	ω := math.Acos(Dot(n, eVec) / (Norm(n) * e))
	if math.IsNaN(ω) {
		ω = 0
	}
	if eVec[2] < 0 {
		ω = 2*math.Pi - ω
	}

	Ω := math.Acos(n[0] / Norm(n))
	if math.IsNaN(Ω) {
		Ω = angleε
	}
	if n[1] < 0 {
		Ω = 2*math.Pi - Ω
	}

	cosν := Dot(eVec, r) / (e * rNorm)
	if cosν > 1 {
		cosν = 1
	} else if cosν < -1 {
		cosν = -1
	}
	ν := math.Acos(cosν)
	if math.IsNaN(ν) {
		ν = 0
	}
	if rdotv < 0 {
		ν = 2*math.Pi - ν
	}

	return OrbitState{Repr: Keplerian, Components: [6]float64{
		a, e, math.Mod(i, 2*math.Pi), math.Mod(Ω, 2*math.Pi), math.Mod(ω, 2*math.Pi), math.Mod(ν, 2*math.Pi),
	}}
}

// coe2rv implements Vallado's COE2RV algorithm: classical orbital
// elements to Cartesian state vectors.
func coe2rv(s OrbitState, mu float64) OrbitState {
	a, e, inc, Ω, ω, ν := s.Components[0], s.Components[1], s.Components[2], s.Components[3], s.Components[4], s.Components[5]
	p := a * (1 - e*e)
	muOverP := math.Sqrt(mu / p)
	sinν, cosν := math.Sincos(ν)
	rPQW := []float64{p * cosν / (1 + e*cosν), p * sinν / (1 + e*cosν), 0}
	vPQW := []float64{-muOverP * sinν, muOverP * (e + cosν), 0}
	rIJK := Rot313Vec(-ω, -inc, -Ω, rPQW)
	vIJK := Rot313Vec(-ω, -inc, -Ω, vPQW)
	return OrbitState{Repr: Cartesian, Components: [6]float64{
		rIJK[0], rIJK[1], rIJK[2], vIJK[0], vIJK[1], vIJK[2],
	}}
}

// RequiredInputRepr returns the Representation an OrbitState must be
// converted to before the given OrbitVar's component can be read or
// written.
func RequiredInputRepr(tag OrbitVar) Representation {
	return tag.RequiredRepr()
}

// EvalOrbit reads the value(s) addressed by tag out of an OrbitState,
// converting it to the tag's required representation first if needed.
// The returned slice has length tag.Arity().
func EvalOrbit(s OrbitState, tag OrbitVar, mu float64) ([]float64, error) {
	converted, err := Convert(s, tag.RequiredRepr(), mu)
	if err != nil {
		return nil, err
	}
	switch tag {
	case PositionVector:
		return converted.R(), nil
	case VelocityVector:
		return converted.V(), nil
	case PosMag:
		return []float64{Norm(converted.R())}, nil
	case VelMag:
		return []float64{Norm(converted.V())}, nil
	case PosDotVel:
		return []float64{Dot(converted.R(), converted.V())}, nil
	case IncomingAsymptote:
		e := converted.Components[1]
		if e <= 1 {
			return nil, &ConversionUndefinedError{From: "elliptical orbit", To: "IncomingAsymptote"}
		}
		return []float64{math.Acos(-1 / e)}, nil
	default:
		return []float64{converted.Components[tag.componentIndex()]}, nil
	}
}

// SetOrbit writes vals into the component(s) addressed by tag,
// converting the OrbitState to the tag's required representation first,
// writing the component(s), then converting back to the state's
// original representation so the caller's stored representation is
// preserved across the Set call. len(vals) must equal tag.Arity().
func SetOrbit(s OrbitState, tag OrbitVar, vals []float64, mu float64) (OrbitState, error) {
	origRepr := s.Repr
	converted, err := Convert(s, tag.RequiredRepr(), mu)
	if err != nil {
		return OrbitState{}, err
	}
	switch tag {
	case PositionVector:
		converted.Components[0], converted.Components[1], converted.Components[2] = vals[0], vals[1], vals[2]
	case VelocityVector:
		converted.Components[3], converted.Components[4], converted.Components[5] = vals[0], vals[1], vals[2]
	default:
		converted.Components[tag.componentIndex()] = vals[0]
	}
	return Convert(converted, origRepr, mu)
}
