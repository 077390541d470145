package transform

// EvalLaplace evaluates the factored transfer function
// H(s) = gain * prod(s - zero_i) / prod(s - pole_i).
func EvalLaplace(s complex128, zeros, poles []complex128, gain float64) complex128 {
	num := complex(gain, 0)
	for _, z := range zeros {
		num *= s - z
	}

	den := complex(1, 0)
	for _, p := range poles {
		den *= s - p
	}

	return num / den
}

// EvalZ evaluates H(z) = (sum_k b[k]*z^-k) / (sum_k a[k]*z^-k), indices
// from zero.
func EvalZ(z complex128, b, a []float64) complex128 {
	return delayPoly(b, z) / delayPoly(a, z)
}

func delayPoly(c []float64, z complex128) complex128 {
	zi := 1 / z

	v := complex(0, 0)
	for i := len(c) - 1; i >= 0; i-- {
		v = v*zi + complex(c[i], 0)
	}

	return v
}
