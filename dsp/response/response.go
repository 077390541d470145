// Package response computes impulse, step and frequency responses of
// discrete LTI systems and applies them to arbitrary input signals.
//
// Response computations never fail: internal numeric trouble on the
// primary state-space path is recovered by rerunning the request through
// the direct-form filtering kernel, and a degenerate frequency-response
// evaluation yields an all-zero response over the same grid. The caller
// always receives arrays of the expected shape.
package response

import (
	"math"
	"math/cmplx"

	"github.com/attilaasghari/signals-systems-simulator/dsp/core"
	"github.com/attilaasghari/signals-systems-simulator/dsp/lti"
	"github.com/attilaasghari/signals-systems-simulator/dsp/signal"
)

// DefaultFrequencyPoints is the frequency-grid size used when the caller
// does not request one.
const DefaultFrequencyPoints = 1024

// responseDuration is the default span of impulse/step responses in
// seconds.
const responseDuration = 2.0

// FrequencyResponse is H(e^jw) sampled over [0, fs/2]. Frequencies and
// Response always have equal length.
type FrequencyResponse struct {
	Frequencies []float64
	Response    []complex128
}

// Computer evaluates system responses. The zero value uses the engine
// defaults; all methods are pure and safe for concurrent use.
type Computer struct {
	cfg core.Config
}

// NewComputer creates a response computer with the given sampling options.
func NewComputer(opts ...core.Option) *Computer {
	return &Computer{cfg: core.ApplyOptions(opts...)}
}

// sampleRate prefers the system's own rate over the computer's.
func (c *Computer) sampleRate(tf lti.TransferFunction) float64 {
	if tf.SampleRate > 0 {
		return tf.SampleRate
	}

	if c.cfg.SampleRate > 0 {
		return c.cfg.SampleRate
	}

	return core.DefaultConfig().SampleRate
}

// defaultTime returns two seconds of sample instants at the system rate.
func (c *Computer) defaultTime(tf lti.TransferFunction) []float64 {
	return core.TimeVector(c.sampleRate(tf), responseDuration)
}

// Impulse computes the impulse response over the given time vector, or
// over the default two seconds at the system rate when t is nil.
//
// Static-gain systems return a scaled unit impulse directly. Improper
// systems (more numerator than denominator coefficients) go straight
// through the filtering kernel. Proper systems take the state-space path
// first and fall back to the kernel on numeric failure.
func (c *Computer) Impulse(tf lti.TransferFunction, t []float64) ([]float64, []float64) {
	if t == nil {
		t = c.defaultTime(tf)
	}

	b, a := tf.B, tf.A

	if len(a) == 1 && len(b) == 1 {
		h := make([]float64, len(t))
		if len(h) > 0 {
			h[0] = b[0] / a[0]
		}
		return t, h
	}

	if len(b) > len(a) {
		return t, Filter(b, a, unitImpulse(len(t)))
	}

	h := fallbackFinite(
		func() ([]float64, error) {
			ss, err := newStateSpace(b, a)
			if err != nil {
				return nil, err
			}
			return ss.impulse(len(t))
		},
		func() []float64 {
			return Filter(b, a, unitImpulse(len(t)))
		},
	)

	return t, h
}

// Step computes the step response with the same case split and fallback
// behavior as Impulse. The static-gain case is a constant b0/a0.
func (c *Computer) Step(tf lti.TransferFunction, t []float64) ([]float64, []float64) {
	if t == nil {
		t = c.defaultTime(tf)
	}

	b, a := tf.B, tf.A

	if len(a) == 1 && len(b) == 1 {
		s := make([]float64, len(t))
		gain := b[0] / a[0]
		for i := range s {
			s[i] = gain
		}
		return t, s
	}

	if len(b) > len(a) {
		return t, Filter(b, a, unitStep(len(t)))
	}

	s := fallbackFinite(
		func() ([]float64, error) {
			ss, err := newStateSpace(b, a)
			if err != nil {
				return nil, err
			}
			return ss.step(len(t))
		},
		func() []float64 {
			return Filter(b, a, unitStep(len(t)))
		},
	)

	return t, s
}

// Frequency evaluates H(e^jw) at nPoints frequencies linearly spaced over
// [0, fs/2] by direct polynomial evaluation in e^-jw. Non-finite results
// are sanitized to zero; a degenerate system yields an all-zero response
// over the same grid. nPoints <= 0 uses DefaultFrequencyPoints.
func (c *Computer) Frequency(tf lti.TransferFunction, nPoints int) FrequencyResponse {
	if nPoints <= 0 {
		nPoints = DefaultFrequencyPoints
	}

	nyquist := c.sampleRate(tf) / 2

	freqs := make([]float64, nPoints)
	resp := make([]complex128, nPoints)

	for i := range freqs {
		if nPoints > 1 {
			freqs[i] = nyquist * float64(i) / float64(nPoints-1)
		}
	}

	if len(tf.A) == 0 || len(tf.B) == 0 {
		return FrequencyResponse{Frequencies: freqs, Response: resp}
	}

	for i, f := range freqs {
		omega := math.Pi * f / nyquist
		h := tf.EvalZ(cmplx.Exp(complex(0, omega)))

		if isFiniteComplex(h) {
			resp[i] = h
		}
	}

	return FrequencyResponse{Frequencies: freqs, Response: resp}
}

// Apply runs the system over an input signal, preserving its time vector.
// An empty input yields an empty output.
func (c *Computer) Apply(tf lti.TransferFunction, in signal.Signal) signal.Signal {
	return signal.Signal{
		Times:   in.Times,
		Samples: Filter(tf.B, tf.A, in.Samples),
	}
}

// fallbackFinite tries the primary computation and substitutes the
// fallback when it errors or produces non-finite output. This is the one
// recovery point for internal numeric failures.
func fallbackFinite(primary func() ([]float64, error), fallback func() []float64) []float64 {
	out, err := primary()
	if err == nil && core.AllFinite(out) {
		return out
	}

	return fallback()
}

func unitImpulse(n int) []float64 {
	x := make([]float64, n)
	if n > 0 {
		x[0] = 1
	}

	return x
}

func unitStep(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = 1
	}

	return x
}

func isFiniteComplex(z complex128) bool {
	return !math.IsNaN(real(z)) && !math.IsInf(real(z), 0) &&
		!math.IsNaN(imag(z)) && !math.IsInf(imag(z), 0)
}
