package core

import "math"

// CoefficientEpsilon is the magnitude below which a polynomial coefficient
// is treated as zero when trimming and validating transfer functions.
const CoefficientEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps, using an
// absolute comparison for small values and a relative one otherwise.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = CoefficientEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// TrimLeadingNearZero drops leading (highest-degree) coefficients whose
// magnitude is below eps and returns the remaining slice. The slice is in
// ascending delay order, index 0 being the z^0 coefficient, so "leading"
// means the front of the slice. The result shares backing storage with c.
func TrimLeadingNearZero(c []float64, eps float64) []float64 {
	if eps <= 0 {
		eps = CoefficientEpsilon
	}

	i := 0
	for i < len(c) && math.Abs(c[i]) < eps {
		i++
	}

	return c[i:]
}

// AllFinite reports whether every element is neither NaN nor Inf.
func AllFinite(data []float64) bool {
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// TimeVector returns the sample instants i/sampleRate for
// i in [0, floor(sampleRate*duration)).
func TimeVector(sampleRate, duration float64) []float64 {
	if sampleRate <= 0 || duration <= 0 {
		return nil
	}

	n := int(sampleRate * duration)
	t := make([]float64, n)
	for i := range t {
		t[i] = float64(i) / sampleRate
	}

	return t
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
