package magcoord

import (
	"errors"
	"math"
	"testing"

	"magcoord/igrf"
)

// Published dipole pole positions (SPENVIS tables): 2015.0 at 80.31N 72.61W,
// 2000.0 at 79.54N 288.43E.
func TestResolveDipoleAxisPolePositions(t *testing.T) {
	c, err := igrf.IGRF14().Coefficients(2015.0)
	if err != nil {
		t.Fatalf("coefficients 2015: %v", err)
	}
	axis, err := ResolveDipoleAxis(c)
	if err != nil {
		t.Fatalf("resolve 2015: %v", err)
	}
	if math.Abs(axis.PoleLat-80.31) > 0.01 {
		t.Fatalf("2015 pole latitude: expected 80.31, got %v", axis.PoleLat)
	}
	if math.Abs(axis.PoleLon-(-72.61)) > 0.01 {
		t.Fatalf("2015 pole longitude: expected -72.61, got %v", axis.PoleLon)
	}
	if math.Abs(axis.MomentNT-29867.3) > 0.5 {
		t.Fatalf("2015 moment: expected about 29867.3 nT, got %v", axis.MomentNT)
	}

	c, err = igrf.IGRF14().Coefficients(2000.0)
	if err != nil {
		t.Fatalf("coefficients 2000: %v", err)
	}
	axis, err = ResolveDipoleAxis(c)
	if err != nil {
		t.Fatalf("resolve 2000: %v", err)
	}
	if math.Abs(axis.PoleLat-79.54) > 0.01 {
		t.Fatalf("2000 pole latitude: expected 79.54, got %v", axis.PoleLat)
	}
	if math.Abs(axis.PoleLon-(288.43-360)) > 0.01 {
		t.Fatalf("2000 pole longitude: expected -71.57, got %v", axis.PoleLon)
	}
}

func TestResolveDipoleAxisGeometry(t *testing.T) {
	c := igrf.Coefficients{G10: -29404.8, G11: -1450.9, H11: 4652.5}
	axis, err := ResolveDipoleAxis(c)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if math.Abs(axis.Axis.Norm()-1) > 1e-12 {
		t.Fatalf("expected unit axis, got norm %v", axis.Axis.Norm())
	}
	want := Vec3{X: -c.G11, Y: -c.H11, Z: -c.G10}.Normalize()
	if math.Abs(axis.Axis.X-want.X) > 1e-12 || math.Abs(axis.Axis.Y-want.Y) > 1e-12 || math.Abs(axis.Axis.Z-want.Z) > 1e-12 {
		t.Fatalf("axis direction: expected %+v, got %+v", want, axis.Axis)
	}
	fromAngles := latLonToVec(axis.PoleLat, axis.PoleLon)
	if math.Abs(fromAngles.X-axis.Axis.X) > 1e-12 || math.Abs(fromAngles.Y-axis.Axis.Y) > 1e-12 || math.Abs(fromAngles.Z-axis.Axis.Z) > 1e-12 {
		t.Fatalf("pole angles disagree with axis: %+v vs %+v", fromAngles, axis.Axis)
	}
	wantMoment := math.Sqrt(c.G10*c.G10 + c.G11*c.G11 + c.H11*c.H11)
	if axis.MomentNT != wantMoment {
		t.Fatalf("moment: expected %v, got %v", wantMoment, axis.MomentNT)
	}
}

func TestResolveDipoleAxisDeterministic(t *testing.T) {
	c := igrf.Coefficients{G10: -29441.46, G11: -1501.77, H11: 4795.99}
	a, err := ResolveDipoleAxis(c)
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	b, err := ResolveDipoleAxis(c)
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if a != b {
		t.Fatalf("expected bit-identical results, got %+v and %+v", a, b)
	}
}

func TestResolveDipoleAxisDegenerate(t *testing.T) {
	cases := []igrf.Coefficients{
		{},
		{G10: math.NaN(), G11: 1, H11: 1},
		{G10: math.Inf(1), G11: 1, H11: 1},
	}
	for _, c := range cases {
		if _, err := ResolveDipoleAxis(c); !errors.Is(err, ErrDegenerateField) {
			t.Fatalf("coefficients %+v: expected ErrDegenerateField, got %v", c, err)
		}
	}
}
