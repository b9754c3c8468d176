package seqcore

import (
	"fmt"
	"strings"

	"github.com/soniakeys/unit"
)

// SequenceReport renders a human-readable summary of a sequence's
// topological order, along with the decision variables and constraints
// each event exposes.
func SequenceReport(m *SequenceManager) string {
	var b strings.Builder
	for i, e := range m.Ordered {
		fmt.Fprintf(&b, "%d. %s\n", i+1, e.Name)
		for _, v := range e.Variables {
			fmt.Fprintf(&b, "   var  %s  lower=%v upper=%v\n", v.Name, v.Lower, v.Upper)
		}
		for _, c := range e.Constraints {
			fmt.Fprintf(&b, "   cons %s  lower=%v upper=%v\n", c.Name, c.Lower, c.Upper)
		}
	}
	return b.String()
}

// SolutionReport renders the solved decision vector against each
// variable's name, and reports orbital angles (inclination, RAAN,
// argument of periapsis, true anomaly) in degrees via unit.Angle rather
// than a bare radian float.
func SolutionReport(m *SequenceManager, x []float64) (string, error) {
	if err := m.SetVarValues(x); err != nil {
		return "", err
	}
	var b strings.Builder
	offset := 0
	for _, v := range m.Variables() {
		n := v.Calc.Arity()
		fmt.Fprintf(&b, "%s = %v\n", v.Name, x[offset:offset+n])
		if oc, ok := v.Calc.(*OrbitCalc); ok {
			switch oc.Tag {
			case Inc, RAAN, AOP, TA:
				angle := unit.Angle(x[offset])
				fmt.Fprintf(&b, "  (%.6f deg)\n", angle.Deg())
			}
		}
		offset += n
	}
	return b.String(), nil
}

// FlybyReport reports the turn angle a gravity assist about body would
// impart for the given hyperbolic excess speed and periapsis radius.
func FlybyReport(vInf, rP float64, body CelestialObject) string {
	turn := unit.Angle(GATurnAngle(vInf, rP, body))
	return fmt.Sprintf("%s flyby: vInf=%.4f km/s rP=%.1f km -> turn=%s", body.Name, vInf, rP, turn)
}
