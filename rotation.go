package seqcore

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// Rot313Vec converts a given vector from PQW frame to ECI frame.
func Rot313Vec(θ1, θ2, θ3 float64, vI []float64) []float64 {
	return MxV33(R3R1R3(θ1, θ2, θ3), vI)
}

// R3R1R3 performs a 3-1-3 Euler parameter rotation.
// From Schaub and Junkins (the one in Vallado is wrong... surprisingly, right? =/)
func R3R1R3(θ1, θ2, θ3 float64) *mat64.Dense {
	sθ1, cθ1 := math.Sincos(θ1)
	sθ2, cθ2 := math.Sincos(θ2)
	sθ3, cθ3 := math.Sincos(θ3)
	return mat64.NewDense(3, 3, []float64{cθ3*cθ1 - sθ3*cθ2*sθ1, cθ3*sθ1 + sθ3*cθ2*cθ1, sθ3 * sθ2,
		-sθ3*cθ1 - cθ3*cθ2*sθ1, -sθ3*sθ1 + cθ3*cθ2*cθ1, cθ3 * sθ2,
		sθ2 * sθ1, -sθ2 * cθ1, cθ2})
}

// R1 rotation about the 1st axis.
func R1(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R2 rotation about the 2nd axis.
func R2(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m *mat64.Dense, v []float64) (o []float64) {
	vVec := mat64.NewVector(len(v), v)
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return []float64{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}

// VNB2Inertial rotates a vector expressed in the velocity-normal-binormal
// frame of a position/velocity pair into the inertial frame that pair is
// itself expressed in.
func VNB2Inertial(r, v, vVNB []float64) []float64 {
	vHat := Unit(v)
	hHat := Unit(Cross(r, v))
	nHat := Unit(Cross(hHat, vHat))
	out := make([]float64, 3)
	for i := 0; i < 3; i++ {
		out[i] = vVNB[0]*vHat[i] + vVNB[1]*nHat[i] + vVNB[2]*hHat[i]
	}
	return out
}

// Inertial2VNB rotates a vector expressed in the inertial frame into the
// velocity-normal-binormal frame of the given position/velocity pair.
func Inertial2VNB(r, v, vInertial []float64) []float64 {
	vHat := Unit(v)
	hHat := Unit(Cross(r, v))
	nHat := Unit(Cross(hHat, vHat))
	return []float64{Dot(vInertial, vHat), Dot(vInertial, nHat), Dot(vInertial, hHat)}
}

// RIC2Inertial rotates a vector expressed in the radial-intrack-crosstrack
// frame of a position/velocity pair into the inertial frame that pair is
// itself expressed in.
func RIC2Inertial(r, v, vRIC []float64) []float64 {
	rHat := Unit(r)
	cHat := Unit(Cross(r, v))
	iHat := Unit(Cross(cHat, rHat))
	out := make([]float64, 3)
	for i := 0; i < 3; i++ {
		out[i] = vRIC[0]*rHat[i] + vRIC[1]*iHat[i] + vRIC[2]*cHat[i]
	}
	return out
}

// Inertial2RIC rotates a vector expressed in the inertial frame into the
// radial-intrack-crosstrack frame of the given position/velocity pair.
func Inertial2RIC(r, v, vInertial []float64) []float64 {
	rHat := Unit(r)
	cHat := Unit(Cross(r, v))
	iHat := Unit(Cross(cHat, rHat))
	return []float64{Dot(vInertial, rHat), Dot(vInertial, iHat), Dot(vInertial, cHat)}
}
