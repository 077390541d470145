package response

// Filter runs the direct-form linear recurrence
//
//	y[n] = ( sum_k b[k]*x[n-k] - sum_{k>=1} a[k]*y[n-k] ) / a[0]
//
// over x, reading any sample with a negative index as zero. This is the
// single primitive every response computation reduces to; impulse and
// step responses are this kernel driven by a unit impulse or unit step.
// The recurrence is inherently sequential, each output depends on prior
// outputs. An empty input yields an empty output.
func Filter(b, a, x []float64) []float64 {
	y := make([]float64, len(x))
	if len(x) == 0 || len(a) == 0 {
		return y
	}

	a0 := a[0]

	for n := range x {
		acc := 0.0

		for k, bk := range b {
			if n-k < 0 {
				break
			}
			acc += bk * x[n-k]
		}

		for k := 1; k < len(a); k++ {
			if n-k < 0 {
				break
			}
			acc -= a[k] * y[n-k]
		}

		y[n] = acc / a0
	}

	return y
}
