package response

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// errNumeric marks internal state-space failures. It never escapes this
// package; callers substitute the filtering-kernel fallback instead.
var errNumeric = errors.New("response: numeric failure")

// stateSpace is the controllable canonical realization of a proper
// transfer function: x[n+1] = A*x[n] + B*u[n], y[n] = C*x[n] + D*u[n].
type stateSpace struct {
	a *mat.Dense
	b *mat.VecDense
	c *mat.VecDense
	d float64
	n int
}

// newStateSpace builds the realization for b, a with len(b) <= len(a) and
// len(a) >= 2. Coefficients are normalized by a[0] first.
func newStateSpace(b, a []float64) (*stateSpace, error) {
	n := len(a) - 1
	if n < 1 || len(b) > len(a) {
		return nil, fmt.Errorf("%w: not a proper dynamic system (len(b)=%d, len(a)=%d)", errNumeric, len(b), len(a))
	}

	a0 := a[0]
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return nil, fmt.Errorf("%w: leading denominator coefficient %g", errNumeric, a0)
	}

	an := make([]float64, n+1)
	for i, v := range a {
		an[i] = v / a0
	}

	bn := make([]float64, n+1)
	for i, v := range b {
		bn[i] = v / a0
	}

	am := mat.NewDense(n, n, nil)
	for j := 1; j <= n; j++ {
		am.Set(0, j-1, -an[j])
	}
	for i := 1; i < n; i++ {
		am.Set(i, i-1, 1)
	}

	bv := mat.NewVecDense(n, nil)
	bv.SetVec(0, 1)

	d := bn[0]

	cv := mat.NewVecDense(n, nil)
	for i := 1; i <= n; i++ {
		cv.SetVec(i-1, bn[i]-d*an[i])
	}

	return &stateSpace{a: am, b: bv, c: cv, d: d, n: n}, nil
}

// impulse simulates the response to a unit impulse over samples steps.
func (ss *stateSpace) impulse(samples int) ([]float64, error) {
	return ss.simulate(samples, func(k int) float64 {
		if k == 0 {
			return 1
		}
		return 0
	})
}

// step simulates the response to a unit step over samples steps.
func (ss *stateSpace) step(samples int) ([]float64, error) {
	return ss.simulate(samples, func(int) float64 { return 1 })
}

func (ss *stateSpace) simulate(samples int, input func(int) float64) ([]float64, error) {
	y := make([]float64, samples)
	x := mat.NewVecDense(ss.n, nil)
	next := mat.NewVecDense(ss.n, nil)

	for k := range samples {
		u := input(k)
		y[k] = mat.Dot(ss.c, x) + ss.d*u

		if math.IsNaN(y[k]) || math.IsInf(y[k], 0) {
			return nil, fmt.Errorf("%w: non-finite output at sample %d", errNumeric, k)
		}

		next.MulVec(ss.a, x)
		if u != 0 {
			next.AddScaledVec(next, u, ss.b)
		}

		x, next = next, x
	}

	return y, nil
}
