package seqcore

import (
	"math"

	"github.com/gonum/floats"
)

const (
	deg2rad = math.Pi / 180
	rad2deg = 1 / deg2rad
)

// Norm returns the Euclidean norm of a 3-vector.
func Norm(v []float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Unit returns the unit vector of a, or an unscaled copy of a if its norm
// is (near) zero.
func Unit(a []float64) []float64 {
	n := Norm(a)
	if floats.EqualWithinAbs(n, 0, 1e-12) {
		b := make([]float64, len(a))
		copy(b, a)
		return b
	}
	b := make([]float64, len(a))
	for i, val := range a {
		b[i] = val / n
	}
	return b
}

// Sign returns +1 or -1, treating (near) zero as positive, matching the
// teacher's convention for picking a burn direction.
func Sign(v float64) float64 {
	if floats.EqualWithinAbs(v, 0, 1e-12) {
		return 1
	}
	return v / math.Abs(v)
}

// Dot returns the inner product of two equal-length vectors.
func Dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// Cross returns the cross product of two 3-vectors.
func Cross(a, b []float64) []float64 {
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// VectorsEqual returns whether two vectors are element-wise equal within
// an absolute tolerance. Vectors of different length are never equal.
func VectorsEqual(a, b []float64, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !floats.EqualWithinAbs(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

// Deg2rad converts degrees to radians, folding negative angles positive.
func Deg2rad(a float64) float64 {
	if a < 0 {
		a += 360
	}
	return math.Mod(a*deg2rad, 2*math.Pi)
}

// Rad2deg converts radians to degrees, folding negative angles positive.
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	return math.Mod(a/deg2rad, 360)
}
