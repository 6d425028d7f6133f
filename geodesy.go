package magcoord

import "math"

// Ellipsoid is a geodetic reference ellipsoid described by its equatorial
// radius and flattening.
type Ellipsoid struct {
	SemiMajorM float64 // equatorial radius a, meters
	Flattening float64 // f = (a - b) / a
}

// WGS84 is the ellipsoid all package-level transforms use.
var WGS84 = Ellipsoid{SemiMajorM: 6378137.0, Flattening: 1 / 298.257223563}

// e2 is the first eccentricity squared.
func (e Ellipsoid) e2() float64 {
	return e.Flattening * (2 - e.Flattening)
}

// ECEFFromGeodetic converts geodetic latitude/longitude in degrees and
// altitude above the ellipsoid in meters to Earth-centered Earth-fixed
// Cartesian coordinates in meters.
func (e Ellipsoid) ECEFFromGeodetic(latDeg, lonDeg, altM float64) Vec3 {
	lat := degToRad(latDeg)
	lon := degToRad(lonDeg)
	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	e2 := e.e2()
	// Prime-vertical radius of curvature.
	n := e.SemiMajorM / math.Sqrt(1-e2*sinLat*sinLat)
	return Vec3{
		X: (n + altM) * cosLat * math.Cos(lon),
		Y: (n + altM) * cosLat * math.Sin(lon),
		Z: (n*(1-e2) + altM) * sinLat,
	}
}

// GeodeticFromECEF converts an ECEF position in meters to geodetic
// latitude/longitude in degrees and altitude above the ellipsoid in meters.
// Bowring's parametric-latitude form is iterated to a fixed point, which
// keeps the round trip with ECEFFromGeodetic below a millimeter from -1 km
// to well past geostationary altitude. The poles and the antimeridian are
// well defined; longitude comes back in (-180, 180]. Positions within
// roughly 43 km of the center sit inside the evolute of the meridian
// ellipse, where the foot-point problem has no single nearest solution and
// the iteration leaves [-90, 90]; the transform facade keeps such inputs
// out via MinCDRadiusM.
func (e Ellipsoid) GeodeticFromECEF(v Vec3) (latDeg, lonDeg, altM float64) {
	a := e.SemiMajorM
	f := e.Flattening
	b := a * (1 - f)
	e2 := e.e2()
	ep2 := e2 / (1 - e2) // second eccentricity squared

	p := math.Hypot(v.X, v.Y)
	lon := math.Atan2(v.Y, v.X)

	beta := math.Atan2(v.Z, (1-f)*p)
	lat := bowringLat(v.Z, p, a, b, e2, ep2, beta)
	for i := 0; i < 8; i++ {
		next := math.Atan2((1-f)*math.Sin(lat), math.Cos(lat))
		if next == beta {
			break
		}
		beta = next
		lat = bowringLat(v.Z, p, a, b, e2, ep2, beta)
	}

	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	// Pole-safe altitude; the usual p/cos(lat)-N form degenerates there.
	alt := p*cosLat + v.Z*sinLat - a*math.Sqrt(1-e2*sinLat*sinLat)
	return radToDeg(lat), wrapLonDeg(radToDeg(lon)), alt
}

func bowringLat(z, p, a, b, e2, ep2, beta float64) float64 {
	sb := math.Sin(beta)
	cb := math.Cos(beta)
	return math.Atan2(z+ep2*b*sb*sb*sb, p-e2*a*cb*cb*cb)
}
