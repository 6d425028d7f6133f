// Package igrf carries the degree-1 spherical harmonic coefficients of the
// International Geomagnetic Reference Field and evaluates them at arbitrary
// decimal years. Degree 1 (g10, g11, h11) is all the centered-dipole
// coordinate system needs; the higher-degree terms of the published tables
// are deliberately not stored.
//
// Two model generations ship embedded (IGRF-14 and IGRF-13), and Parse reads
// the officially distributed igrfXXcoeffs.txt format so newer generations can
// be loaded from disk without a code change.
package igrf

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnsupportedEpoch reports a year outside the range a table can evaluate.
var ErrUnsupportedEpoch = errors.New("igrf: unsupported epoch")

const epochStep = 5.0 // years between tabulated main-field epochs

// Coefficients holds the degree-1 Gauss coefficients in nanotesla
// (nanotesla per year when used as a secular-variation rate).
type Coefficients struct {
	G10 float64
	G11 float64
	H11 float64
}

// Policy selects how a Table treats years beyond the published validity span.
type Policy int

const (
	// PolicyWarn accepts years up to ten years past the last tabulated
	// epoch; the final five are computed with a logged reduced-accuracy
	// warning. This mirrors how the tables are used operationally between
	// model releases.
	PolicyWarn Policy = iota
	// PolicyStrict rejects any year outside [first epoch, last epoch + 5].
	PolicyStrict
)

// Table evaluates degree-1 coefficients for one model generation.
// Between tabulated epochs the coefficients are linearly interpolated;
// past the last epoch they are extrapolated with the predictive
// secular-variation rates. The zero Policy is PolicyWarn. Logf, when set,
// receives reduced-accuracy warnings; nil keeps the table silent.
//
// A Table is safe for concurrent use once its fields are set.
type Table struct {
	Name   string
	Policy Policy
	Logf   func(format string, args ...any)

	baseYear float64
	epochs   []Coefficients
	sv       Coefficients
}

// IGRF14 returns the 14th-generation table (epochs 1900.0-2025.0,
// secular variation 2025-2030).
func IGRF14() *Table {
	return &Table{Name: "IGRF-14", baseYear: 1900, epochs: igrf14Epochs, sv: igrf14SV}
}

// IGRF13 returns the 13th-generation table (epochs 1900.0-2020.0,
// secular variation 2020-2025).
func IGRF13() *Table {
	return &Table{Name: "IGRF-13", baseYear: 1900, epochs: igrf13Epochs, sv: igrf13SV}
}

// Current returns the latest embedded generation.
func Current() *Table {
	return IGRF14()
}

// EpochRange reports the published validity span [first epoch, last epoch+5].
// PolicyWarn additionally accepts five more years past the upper bound.
func (t *Table) EpochRange() (min, max float64) {
	return t.baseYear, t.lastEpoch() + epochStep
}

func (t *Table) lastEpoch() float64 {
	return t.baseYear + epochStep*float64(len(t.epochs)-1)
}

// Coefficients evaluates the table at the given decimal year.
func (t *Table) Coefficients(year float64) (Coefficients, error) {
	if math.IsNaN(year) || math.IsInf(year, 0) {
		return Coefficients{}, fmt.Errorf("%w: year is not finite", ErrUnsupportedEpoch)
	}
	min, max := t.EpochRange()
	hard := max
	if t.Policy == PolicyWarn {
		hard = max + epochStep
	}
	if year < min || year > hard {
		return Coefficients{}, fmt.Errorf("%w: year %.2f outside %s range [%.1f, %.1f]",
			ErrUnsupportedEpoch, year, t.Name, min, hard)
	}
	if year > max {
		t.logf("%s: year %.2f is past the %.1f validity horizon, coefficients carry reduced accuracy", t.Name, year, max)
	}

	last := t.lastEpoch()
	if year >= last {
		dt := year - last
		c := t.epochs[len(t.epochs)-1]
		return Coefficients{
			G10: c.G10 + dt*t.sv.G10,
			G11: c.G11 + dt*t.sv.G11,
			H11: c.H11 + dt*t.sv.H11,
		}, nil
	}

	f := (year - t.baseYear) / epochStep
	i := int(f)
	frac := f - float64(i)
	a, b := t.epochs[i], t.epochs[i+1]
	return Coefficients{
		G10: a.G10 + frac*(b.G10-a.G10),
		G11: a.G11 + frac*(b.G11-a.G11),
		H11: a.H11 + frac*(b.H11-a.H11),
	}, nil
}

func (t *Table) logf(format string, args ...any) {
	if t.Logf == nil {
		return
	}
	t.Logf(format, args...)
}
