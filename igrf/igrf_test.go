package igrf

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestCoefficientsAtTabulatedEpochs(t *testing.T) {
	cases := []struct {
		table *Table
		year  float64
		want  Coefficients
	}{
		{IGRF14(), 1900.0, Coefficients{G10: -31543, G11: -2298, H11: 5922}},
		{IGRF14(), 2020.0, Coefficients{G10: -29403.41, G11: -1451.37, H11: 4653.35}},
		{IGRF14(), 2025.0, Coefficients{G10: -29350.0, G11: -1410.3, H11: 4545.5}},
		{IGRF13(), 2020.0, Coefficients{G10: -29404.8, G11: -1450.9, H11: 4652.5}},
		{IGRF13(), 2015.0, Coefficients{G10: -29441.46, G11: -1501.77, H11: 4795.99}},
	}
	for _, tc := range cases {
		got, err := tc.table.Coefficients(tc.year)
		if err != nil {
			t.Fatalf("%s at %.1f: %v", tc.table.Name, tc.year, err)
		}
		if got != tc.want {
			t.Fatalf("%s at %.1f: got %+v want %+v", tc.table.Name, tc.year, got, tc.want)
		}
	}
}

func TestCoefficientsInterpolateBetweenEpochs(t *testing.T) {
	got, err := IGRF13().Coefficients(2017.5)
	if err != nil {
		t.Fatalf("2017.5: %v", err)
	}
	want := Coefficients{
		G10: (-29441.46 - 29404.8) / 2,
		G11: (-1501.77 - 1450.9) / 2,
		H11: (4795.99 + 4652.5) / 2,
	}
	if math.Abs(got.G10-want.G10) > 1e-9 || math.Abs(got.G11-want.G11) > 1e-9 || math.Abs(got.H11-want.H11) > 1e-9 {
		t.Fatalf("midpoint 2017.5: got %+v want %+v", got, want)
	}

	got, err = IGRF13().Coefficients(1903.0)
	if err != nil {
		t.Fatalf("1903.0: %v", err)
	}
	wantG10 := -31543 + 0.6*(-31464.0+31543.0)
	if math.Abs(got.G10-wantG10) > 1e-9 {
		t.Fatalf("1903.0 g10: got %v want %v", got.G10, wantG10)
	}
}

func TestCoefficientsExtrapolateWithSecularVariation(t *testing.T) {
	got, err := IGRF13().Coefficients(2021.0)
	if err != nil {
		t.Fatalf("2021.0: %v", err)
	}
	want := Coefficients{G10: -29404.8 + 5.7, G11: -1450.9 + 7.4, H11: 4652.5 - 25.9}
	if math.Abs(got.G10-want.G10) > 1e-9 || math.Abs(got.G11-want.G11) > 1e-9 || math.Abs(got.H11-want.H11) > 1e-9 {
		t.Fatalf("2021.0: got %+v want %+v", got, want)
	}

	got, err = IGRF14().Coefficients(2027.25)
	if err != nil {
		t.Fatalf("2027.25: %v", err)
	}
	wantG10 := -29350.0 + 2.25*12.6
	if math.Abs(got.G10-wantG10) > 1e-9 {
		t.Fatalf("2027.25 g10: got %v want %v", got.G10, wantG10)
	}
}

func TestEpochRange(t *testing.T) {
	min, max := IGRF14().EpochRange()
	if min != 1900 || max != 2030 {
		t.Fatalf("IGRF-14 range: got [%v, %v] want [1900, 2030]", min, max)
	}
	min, max = IGRF13().EpochRange()
	if min != 1900 || max != 2025 {
		t.Fatalf("IGRF-13 range: got [%v, %v] want [1900, 2025]", min, max)
	}
}

func TestPolicyBounds(t *testing.T) {
	warn := IGRF14()
	for _, year := range []float64{1900, 1954.21, 2030, 2033, 2035} {
		if _, err := warn.Coefficients(year); err != nil {
			t.Fatalf("warn policy rejected year %v: %v", year, err)
		}
	}
	for _, year := range []float64{1899.99, 2035.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := warn.Coefficients(year)
		if !errors.Is(err, ErrUnsupportedEpoch) {
			t.Fatalf("warn policy year %v: got %v want ErrUnsupportedEpoch", year, err)
		}
	}

	strict := IGRF14()
	strict.Policy = PolicyStrict
	if _, err := strict.Coefficients(2030); err != nil {
		t.Fatalf("strict policy rejected boundary year 2030: %v", err)
	}
	if _, err := strict.Coefficients(2030.01); !errors.Is(err, ErrUnsupportedEpoch) {
		t.Fatalf("strict policy year 2030.01: got %v want ErrUnsupportedEpoch", err)
	}
}

func TestReducedAccuracyWarning(t *testing.T) {
	var logged []string
	table := IGRF14()
	table.Logf = func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	}

	if _, err := table.Coefficients(2028.0); err != nil {
		t.Fatalf("2028.0: %v", err)
	}
	if len(logged) != 0 {
		t.Fatalf("no warning expected inside the validity span, got %q", logged)
	}

	if _, err := table.Coefficients(2032.0); err != nil {
		t.Fatalf("2032.0: %v", err)
	}
	if len(logged) != 1 {
		t.Fatalf("expected one reduced-accuracy warning, got %d: %q", len(logged), logged)
	}
}
