package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/attilaasghari/signals-systems-simulator/dsp/core"
	"github.com/attilaasghari/signals-systems-simulator/internal/expr"
)

// ErrUnknownWaveform is returned for waveform variants the generator does
// not recognize, including a nil Waveform.
var ErrUnknownWaveform = errors.New("signal: unknown waveform type")

// ErrInvalidExpression wraps custom-function parse and evaluation failures.
var ErrInvalidExpression = errors.New("signal: invalid expression")

// Generator produces sampled signals from a shared sampling configuration.
//
// The configuration is mutated only by SetParameters; a single Generator
// used from multiple goroutines needs external locking, while independent
// Generators are fully concurrent.
type Generator struct {
	cfg core.Config
}

// NewGenerator creates a generator with the given sampling options.
func NewGenerator(opts ...core.Option) *Generator {
	return &Generator{cfg: core.ApplyOptions(opts...)}
}

// Config returns the current sampling configuration.
func (g *Generator) Config() core.Config {
	return g.cfg
}

// SetParameters updates the sampling rate and/or duration. The time vector
// of subsequent Generate calls reflects the new settings; there is no other
// observable side effect.
func (g *Generator) SetParameters(opts ...core.Option) {
	g.cfg.Apply(opts...)
}

// Generate produces a sampled signal for the given waveform over
// t[i] = i/fs, i in [0, floor(fs*duration)).
func (g *Generator) Generate(w Waveform) (Signal, error) {
	t := core.TimeVector(g.cfg.SampleRate, g.cfg.Duration)

	switch w := w.(type) {
	case Sine:
		return sampled(t, func(ti float64) float64 {
			return w.Amplitude*math.Sin(2*math.Pi*w.Frequency*ti+w.Phase) + w.DCOffset
		}), nil

	case Cosine:
		return sampled(t, func(ti float64) float64 {
			return w.Amplitude*math.Cos(2*math.Pi*w.Frequency*ti+w.Phase) + w.DCOffset
		}), nil

	case Square:
		duty := core.Clamp(w.Duty, 0, 1)
		return sampled(t, func(ti float64) float64 {
			return w.Amplitude*squareSample(2*math.Pi*w.Frequency*ti+w.Phase, duty) + w.DCOffset
		}), nil

	case Triangle:
		width := core.Clamp(w.Width, 0, 1)
		return sampled(t, func(ti float64) float64 {
			return w.Amplitude*triangleSample(2*math.Pi*w.Frequency*ti+w.Phase, width) + w.DCOffset
		}), nil

	case Sawtooth:
		return sampled(t, func(ti float64) float64 {
			return w.Amplitude*triangleSample(2*math.Pi*w.Frequency*ti+w.Phase, 1) + w.DCOffset
		}), nil

	case ExponentialDecay:
		return sampled(t, func(ti float64) float64 {
			return w.Amplitude*math.Exp(-w.Rate*ti) + w.DCOffset
		}), nil

	case UnitStep:
		return sampled(t, func(ti float64) float64 {
			if ti >= w.StepTime {
				return w.Amplitude + w.DCOffset
			}
			return w.DCOffset
		}), nil

	case Impulse:
		return g.impulse(t, w), nil

	case GaussianPulse:
		center := w.Center
		if math.IsNaN(center) {
			center = g.cfg.Duration / 2
		}
		return sampled(t, func(ti float64) float64 {
			d := (ti - center) / w.StdDev
			return w.Amplitude*math.Exp(-0.5*d*d) + w.DCOffset
		}), nil

	case CustomFunction:
		return g.custom(t, w)

	case WhiteNoise:
		return g.noise(t, w), nil
	}

	return Signal{}, fmt.Errorf("%w: %T", ErrUnknownWaveform, w)
}

// sampled evaluates f over the time vector.
func sampled(t []float64, f func(float64) float64) Signal {
	x := make([]float64, len(t))
	for i, ti := range t {
		x[i] = f(ti)
	}

	return Signal{Times: t, Samples: x}
}

// squareSample evaluates one sample of a +-1 square wave at angle theta,
// positive for the first duty fraction of each 2*pi cycle.
func squareSample(theta, duty float64) float64 {
	frac := math.Mod(theta, 2*math.Pi) / (2 * math.Pi)
	if frac < 0 {
		frac++
	}

	if frac < duty {
		return 1
	}

	return -1
}

// triangleSample evaluates one sample of a +-1 triangle wave at angle
// theta: a ramp from -1 to 1 over the width fraction of the cycle, then a
// fall back to -1 over the remainder. Width 1 is a pure rising sawtooth.
func triangleSample(theta, width float64) float64 {
	frac := math.Mod(theta, 2*math.Pi) / (2 * math.Pi)
	if frac < 0 {
		frac++
	}

	if frac < width {
		return -1 + 2*frac/width
	}

	return 1 - 2*(frac-width)/(1-width)
}

// impulse places the amplitude at the sample whose instant is nearest the
// requested time. No DC offset is applied.
func (g *Generator) impulse(t []float64, w Impulse) Signal {
	x := make([]float64, len(t))
	if len(t) == 0 {
		return Signal{Times: t, Samples: x}
	}

	nearest := 0
	best := math.Abs(t[0] - w.Time)
	for i, ti := range t {
		if d := math.Abs(ti - w.Time); d < best {
			best = d
			nearest = i
		}
	}

	x[nearest] = w.Amplitude

	return Signal{Times: t, Samples: x}
}

func (g *Generator) custom(t []float64, w CustomFunction) (Signal, error) {
	parsed, err := expr.Parse(w.Function)
	if err != nil {
		return Signal{}, fmt.Errorf("%w: %v", ErrInvalidExpression, err)
	}

	x := make([]float64, len(t))
	for i, ti := range t {
		v := parsed.Eval(ti) + w.DCOffset
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Signal{}, fmt.Errorf("%w: %q is non-finite at t=%g", ErrInvalidExpression, w.Function, ti)
		}
		x[i] = v
	}

	return Signal{Times: t, Samples: x}, nil
}

func (g *Generator) noise(t []float64, w WhiteNoise) Signal {
	rng := rand.New(rand.NewSource(w.Seed))

	x := make([]float64, len(t))
	for i := range x {
		x[i] = (rng.Float64()*2-1)*w.Amplitude + w.DCOffset
	}

	return Signal{Times: t, Samples: x}
}
