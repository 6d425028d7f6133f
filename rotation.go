package magcoord

import "math"

// Rotation maps ECEF vectors into the centered-dipole frame and back. In the
// dipole frame +Z is the north geomagnetic pole and +Y lies in the geographic
// equatorial plane.
type Rotation struct {
	xx, yy, zz Vec3 // rows of the geocentric-to-dipole matrix
}

// NewRotation builds the rotation for a resolved dipole axis. The matrix is
// Ry(colatitude) * Rz(pole longitude); its rows are recovered directly from
// the axis components so no angle is re-evaluated.
func NewRotation(axis DipoleAxis) Rotation {
	n := axis.Axis
	sinT := math.Hypot(n.X, n.Y)
	cosT := n.Z
	cosP, sinP := 1.0, 0.0
	if sinT > 0 {
		cosP = n.X / sinT
		sinP = n.Y / sinT
	}
	return Rotation{
		xx: Vec3{X: cosT * cosP, Y: cosT * sinP, Z: -sinT},
		yy: Vec3{X: -sinP, Y: cosP},
		zz: n,
	}
}

// ToDipole rotates an ECEF vector into the dipole frame.
func (r Rotation) ToDipole(v Vec3) Vec3 {
	return Vec3{X: r.xx.Dot(v), Y: r.yy.Dot(v), Z: r.zz.Dot(v)}
}

// FromDipole rotates a dipole-frame vector back to ECEF, applying the
// transpose of the forward matrix.
func (r Rotation) FromDipole(v Vec3) Vec3 {
	return Vec3{
		X: r.xx.X*v.X + r.yy.X*v.Y + r.zz.X*v.Z,
		Y: r.xx.Y*v.X + r.yy.Y*v.Y + r.zz.Y*v.Z,
		Z: r.xx.Z*v.X + r.yy.Z*v.Y + r.zz.Z*v.Z,
	}
}
