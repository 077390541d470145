package spectrum

import (
	"math"
	"testing"

	"github.com/attilaasghari/signals-systems-simulator/internal/testutil"
)

func TestMagnitude(t *testing.T) {
	got := Magnitude([]complex128{3 + 4i, 0, -1})
	testutil.RequireSliceNearlyEqual(t, got, []float64{5, 0, 1}, 1e-12)

	if Magnitude(nil) != nil {
		t.Fatal("expected nil for empty input")
	}
}

func TestPower(t *testing.T) {
	got := Power([]complex128{3 + 4i, 2i})
	testutil.RequireSliceNearlyEqual(t, got, []float64{25, 4}, 1e-12)
}

func TestMagnitudeDB(t *testing.T) {
	got := MagnitudeDB([]complex128{1, 10, 0})

	if math.Abs(got[0]) > 1e-12 {
		t.Fatalf("0 dB bin = %v", got[0])
	}
	if math.Abs(got[1]-20) > 1e-12 {
		t.Fatalf("10x bin = %v, want 20 dB", got[1])
	}
	if !math.IsInf(got[2], -1) {
		t.Fatalf("zero bin = %v, want -Inf", got[2])
	}
}

func TestPhase(t *testing.T) {
	got := Phase([]complex128{1, 1i, -1})
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, math.Pi / 2, math.Pi}, 1e-12)
}

func TestUnwrapPhase(t *testing.T) {
	// A phase ramp wrapped into (-pi, pi] unwraps back to a straight line.
	n := 32
	wrapped := make([]float64, n)
	want := make([]float64, n)
	for i := range wrapped {
		want[i] = -0.5 * float64(i)
		wrapped[i] = math.Atan2(math.Sin(want[i]), math.Cos(want[i]))
	}

	got := UnwrapPhase(wrapped)
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
}

func TestUnwrapPhaseEmpty(t *testing.T) {
	if UnwrapPhase(nil) != nil {
		t.Fatal("expected nil for empty input")
	}
}
