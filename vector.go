package magcoord

import "math"

const (
	radDeg = 180 / math.Pi
	degRad = math.Pi / 180
)

// Vec3 is a Cartesian vector, in meters for positions and unitless for
// directions, in whichever frame the caller is working in.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Mul(k float64) Vec3 {
	return Vec3{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec3) Normalize() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	return v.Mul(1 / n)
}

func clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func degToRad(deg float64) float64 {
	return deg * degRad
}

func radToDeg(rad float64) float64 {
	return rad * radDeg
}

// wrapLonDeg normalizes a longitude to (-180, 180] degrees.
func wrapLonDeg(lonDeg float64) float64 {
	l := math.Mod(lonDeg+180.0, 360.0)
	if l < 0 {
		l += 360.0
	}
	l -= 180.0
	if l == -180 {
		return 180
	}
	return l
}

// latLonToVec returns the unit vector for a geocentric latitude/longitude.
func latLonToVec(latDeg, lonDeg float64) Vec3 {
	lat := degToRad(latDeg)
	lon := degToRad(lonDeg)
	clat := math.Cos(lat)
	return Vec3{
		X: clat * math.Cos(lon),
		Y: clat * math.Sin(lon),
		Z: math.Sin(lat),
	}
}
