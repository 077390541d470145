package lti

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/attilaasghari/signals-systems-simulator/internal/testutil"
)

func TestNewTrimsLeadingZeros(t *testing.T) {
	tf, err := New([]float64{0, 1, 2}, []float64{0, 1}, 1000)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, tf.B, []float64{1, 2}, 0)
	testutil.RequireSliceNearlyEqual(t, tf.A, []float64{1}, 0)
}

func TestNewRejectsEmptyDenominator(t *testing.T) {
	if _, err := New([]float64{1}, []float64{0}, 1000); !errors.Is(err, ErrInvalidCoefficients) {
		t.Fatalf("error = %v, want ErrInvalidCoefficients", err)
	}
	if _, err := New([]float64{1}, nil, 1000); !errors.Is(err, ErrInvalidCoefficients) {
		t.Fatalf("error = %v, want ErrInvalidCoefficients", err)
	}
}

func TestNewRejectsEmptyNumerator(t *testing.T) {
	if _, err := New([]float64{0, 0}, []float64{1}, 1000); !errors.Is(err, ErrInvalidCoefficients) {
		t.Fatalf("error = %v, want ErrInvalidCoefficients", err)
	}
}

func TestNewCopiesCoefficients(t *testing.T) {
	b := []float64{1, 2}
	a := []float64{1}

	tf, err := New(b, a, 1000)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	b[0] = 99
	if tf.B[0] != 1 {
		t.Fatal("TransferFunction aliases caller's slice")
	}
}

func TestEvalZ(t *testing.T) {
	tf, err := New([]float64{1, -1}, []float64{1}, 1000)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// H(z) = 1 - z^-1: zero at z=1, gain 2 at z=-1.
	testutil.RequireComplexNearlyEqual(t, tf.EvalZ(1), 0, 1e-12)
	testutil.RequireComplexNearlyEqual(t, tf.EvalZ(-1), 2, 1e-12)
}

func TestPoleZero(t *testing.T) {
	// H(z) = (1 - 0.25*z^-2) / (1 - 0.5*z^-1): zeros +-0.5, pole 0.5.
	tf, err := New([]float64{1, 0, -0.25}, []float64{1, -0.5}, 1000)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	pz, err := tf.PoleZero()
	if err != nil {
		t.Fatalf("PoleZero() error = %v", err)
	}

	if len(pz.Zeros) != 2 {
		t.Fatalf("zeros = %v, want 2 roots", pz.Zeros)
	}
	for _, z := range pz.Zeros {
		if math.Abs(cmplx.Abs(z)-0.5) > 1e-9 {
			t.Fatalf("zero %v, want magnitude 0.5", z)
		}
	}

	if len(pz.Poles) != 1 || cmplx.Abs(pz.Poles[0]-0.5) > 1e-9 {
		t.Fatalf("poles = %v, want [0.5]", pz.Poles)
	}
}

func TestPoleZeroConstant(t *testing.T) {
	tf, err := New([]float64{2}, []float64{1}, 1000)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	pz, err := tf.PoleZero()
	if err != nil {
		t.Fatalf("PoleZero() error = %v", err)
	}
	if len(pz.Zeros) != 0 || len(pz.Poles) != 0 {
		t.Fatalf("constant system should have empty root sets: %+v", pz)
	}
}

func TestStable(t *testing.T) {
	stable, err := New([]float64{1}, []float64{1, -0.99}, 1000)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !stable.Stable() {
		t.Fatal("pole at 0.99 should be stable")
	}

	unstable, err := New([]float64{1}, []float64{1, -1.5}, 1000)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if unstable.Stable() {
		t.Fatal("pole at 1.5 should be unstable")
	}
}
