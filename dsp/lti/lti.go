// Package lti constructs and analyzes linear time-invariant discrete
// systems described by rational transfer functions in z^-1.
package lti

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/attilaasghari/signals-systems-simulator/dsp/core"
	"github.com/attilaasghari/signals-systems-simulator/internal/polyroot"
)

// ErrInvalidCoefficients is returned when a coefficient array is empty
// after trimming or the leading denominator coefficient is near zero.
var ErrInvalidCoefficients = errors.New("lti: invalid coefficients")

// TransferFunction is H(z) = B(z)/A(z) with coefficients in ascending
// delay order: B[k] multiplies z^-k. The denominator is non-empty with
// |A[0]| above the coefficient epsilon. Immutable by convention.
type TransferFunction struct {
	B          []float64
	A          []float64
	SampleRate float64
}

// New validates and normalizes coefficient arrays into a TransferFunction.
// Leading (highest-degree) near-zero coefficients are trimmed from both
// arrays; an array that is empty afterwards, or a near-zero leading
// denominator coefficient, fails with ErrInvalidCoefficients.
func New(b, a []float64, sampleRate float64) (TransferFunction, error) {
	b = core.TrimLeadingNearZero(b, core.CoefficientEpsilon)
	a = core.TrimLeadingNearZero(a, core.CoefficientEpsilon)

	if len(b) == 0 {
		return TransferFunction{}, fmt.Errorf("%w: numerator empty after trimming", ErrInvalidCoefficients)
	}

	if len(a) == 0 {
		return TransferFunction{}, fmt.Errorf("%w: denominator empty after trimming", ErrInvalidCoefficients)
	}

	if math.Abs(a[0]) < core.CoefficientEpsilon {
		return TransferFunction{}, fmt.Errorf("%w: leading denominator coefficient %g", ErrInvalidCoefficients, a[0])
	}

	return TransferFunction{
		B:          append([]float64(nil), b...),
		A:          append([]float64(nil), a...),
		SampleRate: sampleRate,
	}, nil
}

// Order returns the denominator degree.
func (tf TransferFunction) Order() int {
	return len(tf.A) - 1
}

// EvalZ evaluates H(z) = (sum_k B[k]*z^-k) / (sum_k A[k]*z^-k).
func (tf TransferFunction) EvalZ(z complex128) complex128 {
	return evalDelayPoly(tf.B, z) / evalDelayPoly(tf.A, z)
}

func evalDelayPoly(c []float64, z complex128) complex128 {
	// Horner's method over z^-1.
	zi := 1 / z

	v := complex(0, 0)
	for i := len(c) - 1; i >= 0; i-- {
		v = v*zi + complex(c[i], 0)
	}

	return v
}

// PoleZeroSet holds the roots of the numerator and denominator
// polynomials. Degree is len(coefficients)-1; constant polynomials have
// an empty root set.
type PoleZeroSet struct {
	Zeros []complex128
	Poles []complex128
}

// PoleZero computes the pole and zero locations on demand; nothing is
// cached. Coefficients in ascending delay order are the descending-power
// coefficients of the underlying polynomial in z, so they feed the root
// finder directly.
func (tf TransferFunction) PoleZero() (PoleZeroSet, error) {
	zeros, err := polyroot.Roots(tf.B)
	if err != nil {
		return PoleZeroSet{}, fmt.Errorf("lti: numerator roots: %w", err)
	}

	poles, err := polyroot.Roots(tf.A)
	if err != nil {
		return PoleZeroSet{}, fmt.Errorf("lti: denominator roots: %w", err)
	}

	return PoleZeroSet{Zeros: zeros, Poles: poles}, nil
}

// Stable reports whether all poles lie strictly inside the unit circle.
// Root-finding failure counts as unstable.
func (tf TransferFunction) Stable() bool {
	pz, err := tf.PoleZero()
	if err != nil {
		return false
	}

	for _, p := range pz.Poles {
		if cmplx.Abs(p) >= 1 {
			return false
		}
	}

	return true
}
