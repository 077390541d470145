package lti

import (
	"math"
	"math/cmplx"

	"github.com/attilaasghari/signals-systems-simulator/internal/polyroot"
)

// The Butterworth designs below follow the classic zpk pipeline: place
// the analog prototype poles on the unit circle, frequency-transform the
// prototype to the requested band, map to the z-plane with the bilinear
// transform, and expand the pole/zero form into polynomial coefficients.

// zpk is an analog or digital system in zero/pole/gain form.
type zpk struct {
	zeros []complex128
	poles []complex128
	gain  float64
}

func (s zpk) degree() int {
	return len(s.poles) - len(s.zeros)
}

// butterPrototype returns the normalized analog Butterworth prototype of
// the given order: no zeros, unit gain, poles evenly spaced on the unit
// circle in the left half plane at angles pi*(2k+order+1)/(2*order).
func butterPrototype(order int) zpk {
	poles := make([]complex128, order)
	for k := range order {
		theta := math.Pi * float64(2*k+order+1) / float64(2*order)
		poles[k] = cmplx.Exp(complex(0, theta))
	}

	return zpk{poles: poles, gain: 1}
}

// prewarp maps a digital frequency in Hz to the analog frequency that the
// bilinear transform folds back onto it.
func prewarp(freq, sampleRate float64) float64 {
	return 2 * sampleRate * math.Tan(math.Pi*freq/sampleRate)
}

// lowpassToLowpass scales the prototype to cutoff wo (rad/s).
func lowpassToLowpass(s zpk, wo float64) zpk {
	out := zpk{
		zeros: make([]complex128, len(s.zeros)),
		poles: make([]complex128, len(s.poles)),
		gain:  s.gain * math.Pow(wo, float64(s.degree())),
	}

	w := complex(wo, 0)
	for i, z := range s.zeros {
		out.zeros[i] = z * w
	}
	for i, p := range s.poles {
		out.poles[i] = p * w
	}

	return out
}

// lowpassToHighpass mirrors the prototype via s -> wo/s.
func lowpassToHighpass(s zpk, wo float64) zpk {
	degree := s.degree()
	w := complex(wo, 0)

	out := zpk{
		zeros: make([]complex128, 0, len(s.poles)),
		poles: make([]complex128, len(s.poles)),
	}

	num := complex(1, 0)
	for _, z := range s.zeros {
		out.zeros = append(out.zeros, w/z)
		num *= -z
	}

	den := complex(1, 0)
	for i, p := range s.poles {
		out.poles[i] = w / p
		den *= -p
	}

	// The inversion moves the original degree gap to zeros at the origin.
	for range degree {
		out.zeros = append(out.zeros, 0)
	}

	out.gain = s.gain * real(num/den)

	return out
}

// lowpassToBandpass transforms the prototype to a band centered at wo
// (rad/s) with bandwidth bw (rad/s). Every prototype root splits into a
// conjugate-free pair, doubling the system order.
func lowpassToBandpass(s zpk, wo, bw float64) zpk {
	degree := s.degree()
	wo2 := complex(wo*wo, 0)
	half := complex(bw/2, 0)

	split := func(roots []complex128) []complex128 {
		out := make([]complex128, 0, 2*len(roots))
		for _, r := range roots {
			scaled := r * half
			d := cmplx.Sqrt(scaled*scaled - wo2)
			out = append(out, scaled+d, scaled-d)
		}
		return out
	}

	out := zpk{
		zeros: split(s.zeros),
		poles: split(s.poles),
		gain:  s.gain * math.Pow(bw, float64(degree)),
	}

	for range degree {
		out.zeros = append(out.zeros, 0)
	}

	return out
}

// bilinear maps an analog zpk system to the z-plane via
// z = (2fs + s)/(2fs - s), filling the degree gap with zeros at z = -1.
func bilinear(s zpk, sampleRate float64) zpk {
	fs2 := complex(2*sampleRate, 0)
	degree := s.degree()

	out := zpk{
		zeros: make([]complex128, 0, len(s.poles)),
		poles: make([]complex128, len(s.poles)),
	}

	num := complex(1, 0)
	for _, z := range s.zeros {
		out.zeros = append(out.zeros, (fs2+z)/(fs2-z))
		num *= fs2 - z
	}

	den := complex(1, 0)
	for i, p := range s.poles {
		out.poles[i] = (fs2 + p) / (fs2 - p)
		den *= fs2 - p
	}

	for range degree {
		out.zeros = append(out.zeros, -1)
	}

	out.gain = s.gain * real(num/den)

	return out
}

// coefficients expands the pole/zero form into real polynomial
// coefficients, numerator scaled by the gain. Roots occur in conjugate
// pairs so the imaginary residue is rounding noise and is dropped.
func (s zpk) coefficients() (b, a []float64) {
	bc := polyroot.FromRoots(s.zeros)
	ac := polyroot.FromRoots(s.poles)

	b = make([]float64, len(bc))
	for i, c := range bc {
		b[i] = s.gain * real(c)
	}

	a = make([]float64, len(ac))
	for i, c := range ac {
		a[i] = real(c)
	}

	return b, a
}

func butterLowpass(order int, cutoff, sampleRate float64) ([]float64, []float64) {
	proto := butterPrototype(order)
	analog := lowpassToLowpass(proto, prewarp(cutoff, sampleRate))
	return bilinear(analog, sampleRate).coefficients()
}

func butterHighpass(order int, cutoff, sampleRate float64) ([]float64, []float64) {
	proto := butterPrototype(order)
	analog := lowpassToHighpass(proto, prewarp(cutoff, sampleRate))
	return bilinear(analog, sampleRate).coefficients()
}

func butterBandpass(order int, low, high, sampleRate float64) ([]float64, []float64) {
	w1 := prewarp(low, sampleRate)
	w2 := prewarp(high, sampleRate)

	proto := butterPrototype(order)
	analog := lowpassToBandpass(proto, math.Sqrt(w1*w2), w2-w1)
	return bilinear(analog, sampleRate).coefficients()
}

// BilinearTransform converts an analog second-order polynomial
// c0*s^2 + c1*s + c2 into the digital z^-1-domain polynomial
// d0 + d1*z^-1 + d2*z^-2 using the bilinear transform.
//
// The returned coefficients are normalized such that d0 = 1. It is the
// scalar-section counterpart of the zpk pipeline above and doubles as an
// independent cross-check for second-order designs.
func BilinearTransform(sCoeffs [3]float64, sampleRate float64) [3]float64 {
	if sampleRate <= 0 {
		return [3]float64{1, 0, 0}
	}

	k := 2 * sampleRate
	c0, c1, c2 := sCoeffs[0], sCoeffs[1], sCoeffs[2]

	d0 := c0*k*k + c1*k + c2
	d1 := -2*c0*k*k + 2*c2
	d2 := c0*k*k - c1*k + c2

	if d0 == 0 || math.IsNaN(d0) || math.IsInf(d0, 0) {
		return [3]float64{1, 0, 0}
	}

	return [3]float64{1, d1 / d0, d2 / d0}
}
