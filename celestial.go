package seqcore

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/soniakeys/meeus/julian"
	"github.com/soniakeys/meeus/planetposition"
	"github.com/soniakeys/meeus/pluto"
	"github.com/soniakeys/unit"
)

// AU is one astronomical unit in kilometers.
const AU = 1.49597870700e8

// CelestialObject defines a celestial body: its gravitational parameter
// (settable through a BodyCalc), its radii, and an optional VSOP87
// ephemeris handle. CelestialObject itself is not a stateful subject per
// spec.md §4.4 — its μ changes only through an explicit BodyCalc.Set call,
// never through an event effect, so it never participates in
// snapshot/restore.
type CelestialObject struct {
	Name       string
	Radius     float64
	SMA        float64 // heliocentric semi-major axis, used by HelioOrbit
	μ          float64
	SOI        float64 // sphere of influence, w.r.t. the Sun
	J2, J3, J4 float64
	pp         *planetposition.V87Planet
	vsopIndex  int // 0 if this body has no VSOP87 ephemeris (e.g. the Sun)
}

// GM returns μ, the gravitational parameter.
func (c CelestialObject) GM() float64 { return c.μ }

// SetGM sets μ. Used by BodyCalc.Set(GravParam, ...).
func (c *CelestialObject) SetGM(mu float64) { c.μ = mu }

// J returns the perturbing J_n zonal harmonic coefficient for the given n.
// Only J2 through J4 are modeled; any other n returns 0.
func (c CelestialObject) J(n uint8) float64 {
	switch n {
	case 2:
		return c.J2
	case 3:
		return c.J3
	case 4:
		return c.J4
	default:
		return 0
	}
}

// String implements the Stringer interface.
func (c CelestialObject) String() string { return c.Name + " body" }

// Equals returns whether two celestial objects name the same body.
func (c CelestialObject) Equals(b CelestialObject) bool {
	return c.Name == b.Name
}

// HelioOrbit returns the heliocentric Cartesian state of this body at dt.
// The Sun itself returns the origin. Pluto is a special case: it has no
// VSOP87 series, so its longitude/latitude/radius come from
// soniakeys/meeus's dedicated pluto.Heliocentric series instead. Every
// other body with no ephemeris wired (no vsopIndex and not Pluto)
// returns a descriptive error rather than a panic.
func (c *CelestialObject) HelioOrbit(dt time.Time) (*OrbitState, error) {
	if c.Name == Sun.Name {
		return &OrbitState{Repr: Cartesian, Components: [6]float64{0, 0, 0, 0, 0, 0}}, nil
	}

	var l, b unit.Angle
	var r float64
	if c.Name == Pluto.Name {
		l, b, r = pluto.Heliocentric(julian.TimeToJD(dt))
	} else {
		if c.vsopIndex == 0 {
			return nil, fmt.Errorf("no VSOP87 ephemeris wired for %s", c.Name)
		}
		if c.pp == nil {
			planet, err := planetposition.LoadPlanetPath(c.vsopIndex-1, runningConfig().VSOP87Dir)
			if err != nil {
				return nil, fmt.Errorf("could not load VSOP87 series for %s: %w", c.Name, err)
			}
			c.pp = planet
		}
		l, b, r = c.pp.Position2000(julian.TimeToJD(dt))
	}

	r *= AU
	v := math.Sqrt(2*Sun.μ/r - Sun.μ/c.SMA)
	sB, cB := math.Sincos(b.Rad())
	sL, cL := math.Sincos(l.Rad())
	R := []float64{r * cB * cL, r * cB * sL, r * sB}
	vDir := Unit(Cross(R, []float64{0, 0, -1}))
	V := []float64{v * vDir[0], v * vDir[1], v * vDir[2]}
	return &OrbitState{Repr: Cartesian, Components: [6]float64{R[0], R[1], R[2], V[0], V[1], V[2]}}, nil
}

// CelestialObjectFromString returns the named body, or an error if it is
// not one of the bodies this package ships.
func CelestialObjectFromString(name string) (CelestialObject, error) {
	switch strings.ToLower(name) {
	case "sun":
		return Sun, nil
	case "earth":
		return Earth, nil
	case "venus":
		return Venus, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	case "saturn":
		return Saturn, nil
	case "uranus":
		return Uranus, nil
	case "pluto":
		return Pluto, nil
	default:
		return CelestialObject{}, fmt.Errorf("undefined body %q", name)
	}
}

// Sun is our closest star.
var Sun = CelestialObject{Name: "Sun", Radius: 695700, μ: 1.32712440017987e11, SOI: -1}

// Venus is poisonous.
var Venus = CelestialObject{Name: "Venus", Radius: 6051.8, SMA: 108208601, μ: 3.24858599e5, SOI: 0.616e6, J2: 0.000027, vsopIndex: 2}

// Earth is home.
var Earth = CelestialObject{Name: "Earth", Radius: 6378.1363, SMA: 149598023, μ: 3.98600433e5, SOI: 924645.0, J2: 1082.6269e-6, J3: -2.5324e-6, J4: -1.6204e-6, vsopIndex: 3}

// Mars is the vacation place.
var Mars = CelestialObject{Name: "Mars", Radius: 3396.19, SMA: 227939282.5616, μ: 4.28283100e4, SOI: 576000, J2: 1964e-6, J3: 36e-6, J4: -18e-6, vsopIndex: 4}

// Jupiter is big.
var Jupiter = CelestialObject{Name: "Jupiter", Radius: 71492.0, SMA: 778298361, μ: 1.266865361e8, SOI: 48.2e6, J2: 0.01475, J4: -0.00058, vsopIndex: 5}

// Saturn has the rings.
var Saturn = CelestialObject{Name: "Saturn", Radius: 60268.0, SMA: 1429394133, μ: 3.79312077e7, SOI: 54.5e6, J2: 16298e-6, J4: -932e-6, vsopIndex: 6}

// Uranus is sideways.
var Uranus = CelestialObject{Name: "Uranus", Radius: 25559.0, SMA: 2875038615, μ: 5.793966e6, SOI: 51.8e6, J2: 3343.43e-6, J4: -29.0e-6, vsopIndex: 7}

// Pluto is not a planet, but HelioOrbit still finds it via the meeus
// pluto package's own series rather than VSOP87.
var Pluto = CelestialObject{Name: "Pluto", Radius: 1188.0, SMA: 5906440628, μ: 8.71e2, SOI: 3.08e6}
