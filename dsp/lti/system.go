package lti

import (
	"errors"
	"fmt"

	"github.com/attilaasghari/signals-systems-simulator/dsp/core"
)

// ErrUnknownSystem is returned for system variants Design does not
// recognize, including a nil System.
var ErrUnknownSystem = errors.New("lti: unknown system type")

// System is the closed set of system descriptions Design accepts. The
// New* constructors return the documented defaults; fields may be
// overridden afterwards.
type System interface {
	isSystem()
}

// Lowpass is a digital Butterworth low-pass filter. A non-positive Cutoff
// resolves to the 10 Hz default, a non-positive Order to 4.
type Lowpass struct {
	Cutoff float64
	Order  int
}

// NewLowpass returns a 4th-order low-pass at 10 Hz.
func NewLowpass() Lowpass {
	return Lowpass{Cutoff: 10, Order: 4}
}

// Highpass is a digital Butterworth high-pass filter with the same
// defaulting rules as Lowpass.
type Highpass struct {
	Cutoff float64
	Order  int
}

// NewHighpass returns a 4th-order high-pass at 10 Hz.
func NewHighpass() Highpass {
	return Highpass{Cutoff: 10, Order: 4}
}

// Bandpass is a digital Butterworth band-pass filter. The band is clamped
// to [0.1 Hz, 0.99*Nyquist]; an inverted band after clamping silently
// falls back to 5-15 Hz so interactive callers always get a usable
// filter. Order is the prototype order; the digital filter has twice as
// many poles.
type Bandpass struct {
	Low   float64
	High  float64
	Order int
}

// NewBandpass returns a 4th-order prototype band-pass over 5-15 Hz.
func NewBandpass() Bandpass {
	return Bandpass{Low: 5, High: 15, Order: 4}
}

// MovingAverage is a pure FIR averaging filter: b = [1/N]*N, a = [1].
// A zero Window resolves to the default 5, negative values clamp to 1.
type MovingAverage struct {
	Window int
}

// NewMovingAverage returns a 5-sample moving average.
func NewMovingAverage() MovingAverage {
	return MovingAverage{Window: 5}
}

// Differentiator is the stable IIR approximation
// H(z) = (1 - z^-1)/(1 - Alpha*z^-1) with Alpha clamped to [0, 0.999].
// A pure differentiator pole on the unit circle is deliberately avoided.
type Differentiator struct {
	Alpha float64
}

// NewDifferentiator returns the default Alpha of 0.95.
func NewDifferentiator() Differentiator {
	return Differentiator{Alpha: 0.95}
}

// Integrator is the leaky integrator H(z) = 1/(1 - Beta*z^-1) with Beta
// clamped to [0, 0.9999], keeping the pole off the marginal z=1 point.
type Integrator struct {
	Beta float64
}

// NewIntegrator returns the default Beta of 0.99.
func NewIntegrator() Integrator {
	return Integrator{Beta: 0.99}
}

// Custom parses numerator and denominator coefficient lists. Elements are
// constant expressions separated by commas and/or spaces, with optional
// surrounding brackets: "[1, 0.5, -1/3]".
type Custom struct {
	Numerator   string
	Denominator string
}

// NewCustom returns the identity system.
func NewCustom() Custom {
	return Custom{Numerator: "[1]", Denominator: "[1]"}
}

func (Lowpass) isSystem()        {}
func (Highpass) isSystem()       {}
func (Bandpass) isSystem()       {}
func (MovingAverage) isSystem()  {}
func (Differentiator) isSystem() {}
func (Integrator) isSystem()     {}
func (Custom) isSystem()         {}

// Design builds the transfer function for the given system description at
// the given sampling rate.
func Design(sys System, sampleRate float64) (TransferFunction, error) {
	switch sys := sys.(type) {
	case Lowpass:
		b, a := butterLowpass(designOrder(sys.Order), clampCutoff(sys.Cutoff, sampleRate), sampleRate)
		return New(b, a, sampleRate)

	case Highpass:
		b, a := butterHighpass(designOrder(sys.Order), clampCutoff(sys.Cutoff, sampleRate), sampleRate)
		return New(b, a, sampleRate)

	case Bandpass:
		low, high := clampBand(sys.Low, sys.High, sampleRate)
		b, a := butterBandpass(designOrder(sys.Order), low, high, sampleRate)
		return New(b, a, sampleRate)

	case MovingAverage:
		window := sys.Window
		if window == 0 {
			window = 5
		}
		if window < 1 {
			window = 1
		}

		b := make([]float64, window)
		for i := range b {
			b[i] = 1 / float64(window)
		}

		return New(b, []float64{1}, sampleRate)

	case Differentiator:
		alpha := core.Clamp(sys.Alpha, 0, 0.999)
		return New([]float64{1, -1}, []float64{1, -alpha}, sampleRate)

	case Integrator:
		beta := core.Clamp(sys.Beta, 0, 0.9999)
		return New([]float64{1}, []float64{1, -beta}, sampleRate)

	case Custom:
		b, err := parseCoefficients(sys.Numerator)
		if err != nil {
			return TransferFunction{}, fmt.Errorf("%w: numerator: %v", ErrInvalidCoefficients, err)
		}

		a, err := parseCoefficients(sys.Denominator)
		if err != nil {
			return TransferFunction{}, fmt.Errorf("%w: denominator: %v", ErrInvalidCoefficients, err)
		}

		return New(b, a, sampleRate)
	}

	return TransferFunction{}, fmt.Errorf("%w: %T", ErrUnknownSystem, sys)
}

func designOrder(order int) int {
	if order <= 0 {
		return 4
	}

	return order
}

// clampCutoff keeps the cutoff below 0.99*Nyquist and substitutes the
// 10 Hz default for non-positive values.
func clampCutoff(cutoff, sampleRate float64) float64 {
	if cutoff <= 0 {
		cutoff = 10
	}

	nyquist := sampleRate / 2
	if cutoff >= nyquist {
		cutoff = 0.99 * nyquist
	}

	return cutoff
}

// clampBand clamps the band edges into [0.1, 0.99*Nyquist] and falls back
// to 5-15 Hz when the clamped band is inverted or empty.
func clampBand(low, high, sampleRate float64) (float64, float64) {
	nyquist := sampleRate / 2

	if low < 0.1 {
		low = 0.1
	}

	if high > 0.99*nyquist {
		high = 0.99 * nyquist
	}

	if low >= high {
		low, high = 5, 15
	}

	return low, high
}
