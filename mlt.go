package magcoord

import (
	"fmt"
	"math"
	"time"
)

// Height for mapping the subsolar point into the dipole frame, meters.
// 50 Earth radii is the conventional magnetic local-time mapping height;
// that far out the geodetic-geocentric latitude offset no longer shifts
// the hour angle.
const mltMappingAltM = 50 * 6371e3

// SubsolarPoint returns the geographic latitude and longitude, in degrees,
// of the point where the sun is overhead at time t. Solar position follows
// the NOAA low-precision formulation (Julian centuries from J2000, apparent
// longitude, equation of time), good to a few hundredths of a degree over
// 1900-2100.
func SubsolarPoint(t time.Time) (latDeg, lonDeg float64) {
	utc := t.UTC()
	jc := (julianDay(utc) - 2451545.0) / 36525.0

	meanLong := math.Mod(280.46646+jc*(36000.76983+jc*0.0003032), 360.0)
	meanAnom := 357.52911 + jc*(35999.05029-0.0001537*jc)
	eccent := 0.016708634 - jc*(0.000042037+0.0000001267*jc)

	center := math.Sin(degToRad(meanAnom))*(1.914602-jc*(0.004817+0.000014*jc)) +
		math.Sin(degToRad(2*meanAnom))*(0.019993-0.000101*jc) +
		math.Sin(degToRad(3*meanAnom))*0.000289

	omega := 125.04 - 1934.136*jc
	apparentLong := meanLong + center - 0.00569 - 0.00478*math.Sin(degToRad(omega))

	meanObliq := 23.0 + (26.0+(21.448-jc*(46.815+jc*(0.00059-0.001813*jc)))/60.0)/60.0
	obliq := meanObliq + 0.00256*math.Cos(degToRad(omega))

	decl := math.Asin(math.Sin(degToRad(obliq)) * math.Sin(degToRad(apparentLong)))

	y := math.Tan(degToRad(obliq) / 2.0)
	y *= y
	eqTimeMin := 4 * radToDeg(
		y*math.Sin(2*degToRad(meanLong))-
			2*eccent*math.Sin(degToRad(meanAnom))+
			4*eccent*y*math.Sin(degToRad(meanAnom))*math.Cos(2*degToRad(meanLong))-
			0.5*y*y*math.Sin(4*degToRad(meanLong))-
			1.25*eccent*eccent*math.Sin(2*degToRad(meanAnom)),
	)

	minutes := float64(utc.Hour()*60+utc.Minute()) + float64(utc.Second())/60.0 + float64(utc.Nanosecond())/6e10
	return radToDeg(decl), wrapLonDeg((720 - (minutes + eqTimeMin)) / 4)
}

func julianDay(t time.Time) float64 {
	y, m, d := t.Date()
	if m <= 2 {
		y--
		m += 12
	}
	a := y / 100
	b := 2 - a + a/4
	day := float64(d) + float64(t.Hour())/24.0 + float64(t.Minute())/1440.0 +
		float64(t.Second())/86400.0 + float64(t.Nanosecond())/8.64e13
	return float64(int(365.25*float64(y+4716))) + float64(int(30.6001*float64(m+1))) + day + float64(b) - 1524.5
}

// MagneticLocalTime converts a CD longitude in degrees to magnetic local
// time in hours [0, 24) at time t: the hour angle between the point and the
// subsolar point in the dipole frame, offset so magnetic midnight faces away
// from the sun.
func (t *Transformer) MagneticLocalTime(cdLonDeg float64, at time.Time) (float64, error) {
	if math.IsNaN(cdLonDeg) || math.IsInf(cdLonDeg, 0) {
		return 0, fmt.Errorf("%w: CD longitude %v is not finite", ErrNumericDomain, cdLonDeg)
	}
	ssLat, ssLon := SubsolarPoint(at)
	_, ssCDLon, _, err := t.CDFromGeodetic(ssLat, ssLon, mltMappingAltM, DecimalYear(at))
	if err != nil {
		return 0, err
	}
	h := math.Mod((180+cdLonDeg-ssCDLon)/15, 24)
	if h < 0 {
		h += 24
	}
	return h, nil
}

// MagneticLocalTime converts a CD longitude to magnetic local time with the
// default transformer.
func MagneticLocalTime(cdLonDeg float64, at time.Time) (float64, error) {
	return defaultTransformer().MagneticLocalTime(cdLonDeg, at)
}
