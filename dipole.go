package magcoord

import (
	"fmt"
	"math"

	"magcoord/igrf"
)

// DipoleAxis is the centered-dipole frame geometry for one epoch.
type DipoleAxis struct {
	Axis     Vec3    // unit vector from Earth center toward the north geomagnetic pole, ECEF
	PoleLat  float64 // geocentric latitude of the north geomagnetic pole, degrees
	PoleLon  float64 // east longitude of the north geomagnetic pole, degrees, (-180, 180]
	MomentNT float64 // dipole strength B0 = sqrt(g10^2 + g11^2 + h11^2), nanotesla
}

// ResolveDipoleAxis derives the dipole axis from degree-1 Gauss coefficients.
// The axis points at the north geomagnetic pole, the antipode of the dipole
// moment vector. The result is a pure function of the coefficients: equal
// inputs give bit-identical outputs.
func ResolveDipoleAxis(c igrf.Coefficients) (DipoleAxis, error) {
	b0 := math.Sqrt(c.G10*c.G10 + c.G11*c.G11 + c.H11*c.H11)
	if b0 == 0 || math.IsNaN(b0) || math.IsInf(b0, 0) {
		return DipoleAxis{}, fmt.Errorf("%w: moment %v nT from g10=%v g11=%v h11=%v",
			ErrDegenerateField, b0, c.G10, c.G11, c.H11)
	}
	colat := math.Acos(clamp(-c.G10/b0, -1, 1))
	v := Vec3{X: -c.G11, Y: -c.H11, Z: -c.G10}
	return DipoleAxis{
		Axis:     v.Normalize(),
		PoleLat:  90 - radToDeg(colat),
		PoleLon:  wrapLonDeg(radToDeg(math.Atan2(c.H11, c.G11)) - 180),
		MomentNT: b0,
	}, nil
}
