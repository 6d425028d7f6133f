// Package magcoord converts between geodetic coordinates and centered-dipole
// (CD) geomagnetic coordinates.
//
// The CD frame for a given epoch is fixed by the three degree-1 Gauss
// coefficients of an IGRF-generation magnetic model: they define the dipole
// moment, and the frame's +Z axis points at the north geomagnetic pole. A
// forward transform chains geodetic -> ECEF (WGS84) -> dipole-frame rotation
// -> spherical CD latitude/longitude plus geocentric radius; the inverse
// runs the same chain backwards. Angles are degrees, lengths meters, and
// epochs decimal years (DecimalYear bridges time.Time callers).
//
// Package-level functions use the latest embedded IGRF generation. A
// Transformer carries its own coefficient source, extrapolation policy and
// counters, and is safe for concurrent use.
package magcoord

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"magcoord/igrf"
)

// CoefficientSource supplies degree-1 Gauss coefficients per decimal year.
// *igrf.Table implements it; EpochRange reports the years Coefficients will
// accept without reduced accuracy.
type CoefficientSource interface {
	Coefficients(year float64) (igrf.Coefficients, error)
	EpochRange() (min, max float64)
}

// Transformer converts between geodetic and CD coordinates against one
// coefficient source. The dipole axis derived for the most recent year is
// memoized, so sweeps over many points at one epoch resolve it once.
type Transformer struct {
	source    CoefficientSource
	ellipsoid Ellipsoid

	axisMu   sync.RWMutex
	axisYear float64
	axis     DipoleAxis
	rot      Rotation
	axisOK   bool

	calls    atomic.Uint64
	points   atomic.Uint64
	axisHits atomic.Uint64
	rejected atomic.Uint64
}

// Stats is a point-in-time snapshot of a Transformer's counters.
type Stats struct {
	Calls          uint64 // facade calls, scalar and slice
	Points         uint64 // coordinate tuples converted
	AxisCacheHits  uint64 // axis reuses from the per-year cache
	RejectedInputs uint64 // calls that failed validation or epoch lookup
}

// NewTransformer builds a Transformer from cfg. logf, when non-nil, receives
// reduced-accuracy warnings in log.Printf style; nil keeps the transformer
// silent.
func NewTransformer(cfg Config, logf func(format string, args ...any)) (*Transformer, error) {
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	source, err := cfg.source(logf)
	if err != nil {
		return nil, err
	}
	return &Transformer{source: source, ellipsoid: WGS84}, nil
}

// NewTransformerWithSource wires a custom coefficient source, typically an
// *igrf.Table loaded from a specific published file. A supplied source keeps
// whatever warning hook it already carries; a nil source falls back to the
// latest embedded generation with logf as its hook.
func NewTransformerWithSource(source CoefficientSource, logf func(format string, args ...any)) *Transformer {
	if source == nil {
		table := igrf.Current()
		table.Logf = logf
		source = table
	}
	return &Transformer{source: source, ellipsoid: WGS84}
}

// EpochRange reports the year span the underlying coefficient source covers.
func (t *Transformer) EpochRange() (min, max float64) {
	return t.source.EpochRange()
}

// Stats returns a snapshot of the transformer's counters.
func (t *Transformer) Stats() Stats {
	return Stats{
		Calls:          t.calls.Load(),
		Points:         t.points.Load(),
		AxisCacheHits:  t.axisHits.Load(),
		RejectedInputs: t.rejected.Load(),
	}
}

// DipoleAxis resolves the centered-dipole pole geometry for a year.
func (t *Transformer) DipoleAxis(year float64) (DipoleAxis, error) {
	if err := validYear(year); err != nil {
		return DipoleAxis{}, err
	}
	axis, _, err := t.axisFor(year)
	return axis, err
}

// CDFromGeodetic converts one geodetic point (degrees, meters above the
// ellipsoid) to CD latitude/longitude in degrees and geocentric radius in
// meters, for the magnetic model at the given decimal year.
func (t *Transformer) CDFromGeodetic(latDeg, lonDeg, altM, year float64) (cdLatDeg, cdLonDeg, radiusM float64, err error) {
	t.calls.Add(1)
	if err := validYear(year); err != nil {
		t.rejected.Add(1)
		return 0, 0, 0, err
	}
	if err := validGeodetic(latDeg, lonDeg, altM); err != nil {
		t.rejected.Add(1)
		return 0, 0, 0, err
	}
	_, rot, err := t.axisFor(year)
	if err != nil {
		t.rejected.Add(1)
		return 0, 0, 0, err
	}
	cdLatDeg, cdLonDeg, radiusM = forwardOne(t.ellipsoid, rot, latDeg, lonDeg, altM)
	t.points.Add(1)
	return cdLatDeg, cdLonDeg, radiusM, nil
}

// GeodeticFromCD converts one CD point (degrees, geocentric radius in
// meters) back to geodetic latitude/longitude in degrees and altitude above
// the ellipsoid in meters. Radii below MinCDRadiusM are rejected; note the
// radius is a geocentric distance, not an altitude.
func (t *Transformer) GeodeticFromCD(cdLatDeg, cdLonDeg, radiusM, year float64) (latDeg, lonDeg, altM float64, err error) {
	t.calls.Add(1)
	if err := validYear(year); err != nil {
		t.rejected.Add(1)
		return 0, 0, 0, err
	}
	if err := validCD(cdLatDeg, cdLonDeg, radiusM); err != nil {
		t.rejected.Add(1)
		return 0, 0, 0, err
	}
	_, rot, err := t.axisFor(year)
	if err != nil {
		t.rejected.Add(1)
		return 0, 0, 0, err
	}
	latDeg, lonDeg, altM = inverseOne(t.ellipsoid, rot, cdLatDeg, cdLonDeg, radiusM)
	t.points.Add(1)
	return latDeg, lonDeg, altM, nil
}

// CDFromGeodeticSlice converts parallel slices of geodetic points for one
// year. Element i of each output corresponds to element i of the inputs.
// All inputs are validated before any element is transformed; on error no
// partial results are returned.
func (t *Transformer) CDFromGeodeticSlice(latDeg, lonDeg, altM []float64, year float64) (cdLatDeg, cdLonDeg, radiusM []float64, err error) {
	t.calls.Add(1)
	if len(latDeg) != len(lonDeg) || len(latDeg) != len(altM) {
		t.rejected.Add(1)
		return nil, nil, nil, fmt.Errorf("%w: lat %d, lon %d, alt %d",
			ErrShapeMismatch, len(latDeg), len(lonDeg), len(altM))
	}
	if err := validYear(year); err != nil {
		t.rejected.Add(1)
		return nil, nil, nil, err
	}
	for i := range latDeg {
		if err := validGeodetic(latDeg[i], lonDeg[i], altM[i]); err != nil {
			t.rejected.Add(1)
			return nil, nil, nil, fmt.Errorf("element %d: %w", i, err)
		}
	}
	_, rot, err := t.axisFor(year)
	if err != nil {
		t.rejected.Add(1)
		return nil, nil, nil, err
	}

	cdLatDeg = make([]float64, len(latDeg))
	cdLonDeg = make([]float64, len(latDeg))
	radiusM = make([]float64, len(latDeg))
	for i := range latDeg {
		cdLatDeg[i], cdLonDeg[i], radiusM[i] = forwardOne(t.ellipsoid, rot, latDeg[i], lonDeg[i], altM[i])
	}
	t.points.Add(uint64(len(latDeg)))
	return cdLatDeg, cdLonDeg, radiusM, nil
}

// GeodeticFromCDSlice converts parallel slices of CD points for one year,
// with the same shape and validation contract as CDFromGeodeticSlice.
func (t *Transformer) GeodeticFromCDSlice(cdLatDeg, cdLonDeg, radiusM []float64, year float64) (latDeg, lonDeg, altM []float64, err error) {
	t.calls.Add(1)
	if len(cdLatDeg) != len(cdLonDeg) || len(cdLatDeg) != len(radiusM) {
		t.rejected.Add(1)
		return nil, nil, nil, fmt.Errorf("%w: lat %d, lon %d, radius %d",
			ErrShapeMismatch, len(cdLatDeg), len(cdLonDeg), len(radiusM))
	}
	if err := validYear(year); err != nil {
		t.rejected.Add(1)
		return nil, nil, nil, err
	}
	for i := range cdLatDeg {
		if err := validCD(cdLatDeg[i], cdLonDeg[i], radiusM[i]); err != nil {
			t.rejected.Add(1)
			return nil, nil, nil, fmt.Errorf("element %d: %w", i, err)
		}
	}
	_, rot, err := t.axisFor(year)
	if err != nil {
		t.rejected.Add(1)
		return nil, nil, nil, err
	}

	latDeg = make([]float64, len(cdLatDeg))
	lonDeg = make([]float64, len(cdLatDeg))
	altM = make([]float64, len(cdLatDeg))
	for i := range cdLatDeg {
		latDeg[i], lonDeg[i], altM[i] = inverseOne(t.ellipsoid, rot, cdLatDeg[i], cdLonDeg[i], radiusM[i])
	}
	t.points.Add(uint64(len(cdLatDeg)))
	return latDeg, lonDeg, altM, nil
}

// axisFor returns the dipole axis and rotation for a year, reusing the most
// recently resolved year when it matches.
func (t *Transformer) axisFor(year float64) (DipoleAxis, Rotation, error) {
	t.axisMu.RLock()
	if t.axisOK && t.axisYear == year {
		axis, rot := t.axis, t.rot
		t.axisMu.RUnlock()
		t.axisHits.Add(1)
		return axis, rot, nil
	}
	t.axisMu.RUnlock()

	c, err := t.source.Coefficients(year)
	if err != nil {
		return DipoleAxis{}, Rotation{}, err
	}
	axis, err := ResolveDipoleAxis(c)
	if err != nil {
		return DipoleAxis{}, Rotation{}, err
	}
	rot := NewRotation(axis)

	t.axisMu.Lock()
	t.axisYear, t.axis, t.rot, t.axisOK = year, axis, rot, true
	t.axisMu.Unlock()
	return axis, rot, nil
}

// forwardOne chains geodetic -> ECEF -> dipole frame -> spherical. The
// radius is taken from the ECEF vector before rotation, so it is exactly
// the geocentric radial distance of the input point.
func forwardOne(e Ellipsoid, rot Rotation, latDeg, lonDeg, altM float64) (cdLat, cdLon, radiusM float64) {
	ecef := e.ECEFFromGeodetic(latDeg, lonDeg, altM)
	radiusM = ecef.Norm()
	d := rot.ToDipole(ecef)
	cdLat = 90 - radToDeg(math.Atan2(math.Hypot(d.X, d.Y), d.Z))
	cdLon = wrapLonDeg(radToDeg(math.Atan2(d.Y, d.X)))
	return cdLat, cdLon, radiusM
}

// inverseOne chains spherical CD -> dipole frame -> ECEF -> geodetic.
func inverseOne(e Ellipsoid, rot Rotation, cdLatDeg, cdLonDeg, radiusM float64) (lat, lon, alt float64) {
	d := latLonToVec(cdLatDeg, cdLonDeg).Mul(radiusM)
	return e.GeodeticFromECEF(rot.FromDipole(d))
}

func validYear(year float64) error {
	if math.IsNaN(year) || math.IsInf(year, 0) {
		return fmt.Errorf("%w: year %v is not finite", ErrNumericDomain, year)
	}
	return nil
}

func validGeodetic(latDeg, lonDeg, altM float64) error {
	switch {
	case math.IsNaN(latDeg) || math.IsInf(latDeg, 0):
		return fmt.Errorf("%w: latitude %v is not finite", ErrNumericDomain, latDeg)
	case latDeg < -90 || latDeg > 90:
		return fmt.Errorf("%w: latitude %v outside [-90, 90]", ErrNumericDomain, latDeg)
	case math.IsNaN(lonDeg) || math.IsInf(lonDeg, 0):
		return fmt.Errorf("%w: longitude %v is not finite", ErrNumericDomain, lonDeg)
	case math.IsNaN(altM) || math.IsInf(altM, 0):
		return fmt.Errorf("%w: altitude %v m is not finite", ErrNumericDomain, altM)
	}
	return nil
}

// MinCDRadiusM is the smallest geocentric radius the inverse transforms
// accept, in meters. Within roughly 43 km of Earth's center the ellipsoidal
// foot-point problem degenerates and the geodetic inverse returns latitudes
// outside [-90, 90]; the floor sits far above that region and still several
// hundred kilometers below the radius of any point near the surface.
const MinCDRadiusM = 6.0e6

func validCD(cdLatDeg, cdLonDeg, radiusM float64) error {
	switch {
	case math.IsNaN(cdLatDeg) || math.IsInf(cdLatDeg, 0):
		return fmt.Errorf("%w: CD latitude %v is not finite", ErrNumericDomain, cdLatDeg)
	case cdLatDeg < -90 || cdLatDeg > 90:
		return fmt.Errorf("%w: CD latitude %v outside [-90, 90]", ErrNumericDomain, cdLatDeg)
	case math.IsNaN(cdLonDeg) || math.IsInf(cdLonDeg, 0):
		return fmt.Errorf("%w: CD longitude %v is not finite", ErrNumericDomain, cdLonDeg)
	case math.IsNaN(radiusM) || math.IsInf(radiusM, 0) || radiusM <= 0:
		return fmt.Errorf("%w: radius %v m must be positive and finite", ErrNumericDomain, radiusM)
	case radiusM < MinCDRadiusM:
		return fmt.Errorf("%w: radius %v m below the %v m minimum geocentric radius", ErrNumericDomain, radiusM, MinCDRadiusM)
	}
	return nil
}

// DecimalYear converts a time to the fractional-year form the coefficient
// tables are parameterized by.
func DecimalYear(t time.Time) float64 {
	u := t.UTC()
	y := u.Year()
	start := time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(y+1, 1, 1, 0, 0, 0, 0, time.UTC)
	return float64(y) + float64(u.Sub(start))/float64(end.Sub(start))
}

var (
	defaultOnce sync.Once
	defaultTx   *Transformer
)

// defaultTransformer backs the package-level functions: latest embedded
// generation, warn extrapolation, silent.
func defaultTransformer() *Transformer {
	defaultOnce.Do(func() {
		defaultTx = &Transformer{source: igrf.Current(), ellipsoid: WGS84}
	})
	return defaultTx
}

// CDFromGeodetic converts one geodetic point using the latest embedded IGRF
// generation and the WGS84 ellipsoid.
func CDFromGeodetic(latDeg, lonDeg, altM, year float64) (cdLatDeg, cdLonDeg, radiusM float64, err error) {
	return defaultTransformer().CDFromGeodetic(latDeg, lonDeg, altM, year)
}

// GeodeticFromCD converts one CD point using the latest embedded IGRF
// generation and the WGS84 ellipsoid.
func GeodeticFromCD(cdLatDeg, cdLonDeg, radiusM, year float64) (latDeg, lonDeg, altM float64, err error) {
	return defaultTransformer().GeodeticFromCD(cdLatDeg, cdLonDeg, radiusM, year)
}

// CDFromGeodeticSlice converts parallel geodetic slices with the default
// transformer.
func CDFromGeodeticSlice(latDeg, lonDeg, altM []float64, year float64) (cdLatDeg, cdLonDeg, radiusM []float64, err error) {
	return defaultTransformer().CDFromGeodeticSlice(latDeg, lonDeg, altM, year)
}

// GeodeticFromCDSlice converts parallel CD slices with the default
// transformer.
func GeodeticFromCDSlice(cdLatDeg, cdLonDeg, radiusM []float64, year float64) (latDeg, lonDeg, altM []float64, err error) {
	return defaultTransformer().GeodeticFromCDSlice(cdLatDeg, cdLonDeg, radiusM, year)
}
