package signal

import "math"

// Waveform is the closed set of signal descriptions the generator accepts.
// Each variant carries its own typed parameters; the New* constructors
// return the documented defaults, fields may be overridden afterwards.
type Waveform interface {
	isWaveform()
}

// Sine is A*sin(2*pi*f*t + phase) + DCOffset.
type Sine struct {
	Amplitude float64
	Frequency float64
	Phase     float64
	DCOffset  float64
}

// NewSine returns a unit-amplitude 1 Hz sine.
func NewSine() Sine {
	return Sine{Amplitude: 1, Frequency: 1}
}

// Cosine is A*cos(2*pi*f*t + phase) + DCOffset.
type Cosine struct {
	Amplitude float64
	Frequency float64
	Phase     float64
	DCOffset  float64
}

// NewCosine returns a unit-amplitude 1 Hz cosine.
func NewCosine() Cosine {
	return Cosine{Amplitude: 1, Frequency: 1}
}

// Square is a periodic +-1 waveform of period 1/f, positive for the Duty
// fraction of each cycle, phase-shifted, scaled and offset.
type Square struct {
	Amplitude float64
	Frequency float64
	Phase     float64
	DCOffset  float64
	Duty      float64
}

// NewSquare returns a unit-amplitude 1 Hz square wave with 50% duty cycle.
func NewSquare() Square {
	return Square{Amplitude: 1, Frequency: 1, Duty: 0.5}
}

// Triangle rises linearly from -1 to 1 over the Width fraction of each
// cycle, then falls linearly back over the remainder.
type Triangle struct {
	Amplitude float64
	Frequency float64
	Phase     float64
	DCOffset  float64
	Width     float64
}

// NewTriangle returns a unit-amplitude 1 Hz symmetric triangle wave.
func NewTriangle() Triangle {
	return Triangle{Amplitude: 1, Frequency: 1, Width: 0.5}
}

// Sawtooth is a pure rising ramp wrapping at each period boundary, the
// width-1 limit of Triangle.
type Sawtooth struct {
	Amplitude float64
	Frequency float64
	Phase     float64
	DCOffset  float64
}

// NewSawtooth returns a unit-amplitude 1 Hz sawtooth.
func NewSawtooth() Sawtooth {
	return Sawtooth{Amplitude: 1, Frequency: 1}
}

// ExponentialDecay is A*exp(-Rate*t) + DCOffset.
type ExponentialDecay struct {
	Amplitude float64
	Rate      float64
	DCOffset  float64
}

// NewExponentialDecay returns a unit-amplitude decay with rate 1.
func NewExponentialDecay() ExponentialDecay {
	return ExponentialDecay{Amplitude: 1, Rate: 1}
}

// UnitStep is A for t >= StepTime and 0 before, plus DCOffset.
type UnitStep struct {
	Amplitude float64
	StepTime  float64
	DCOffset  float64
}

// NewUnitStep returns a unit step at t=0.
func NewUnitStep() UnitStep {
	return UnitStep{Amplitude: 1}
}

// Impulse is an all-zero signal except the sample nearest Time, which is
// set to Amplitude. Unlike every other waveform it carries no DC offset;
// the impulse stays a pure scaled delta.
type Impulse struct {
	Amplitude float64
	Time      float64
}

// NewImpulse returns a unit impulse at t=0.
func NewImpulse() Impulse {
	return Impulse{Amplitude: 1}
}

// GaussianPulse is A*exp(-0.5*((t-Center)/StdDev)^2) + DCOffset.
// A NaN Center resolves to half the configured duration at generate time.
type GaussianPulse struct {
	Amplitude float64
	Center    float64
	StdDev    float64
	DCOffset  float64
}

// NewGaussianPulse returns a unit pulse centered mid-signal with
// standard deviation 0.1 s.
func NewGaussianPulse() GaussianPulse {
	return GaussianPulse{Amplitude: 1, Center: math.NaN(), StdDev: 0.1}
}

// CustomFunction evaluates a restricted arithmetic expression of t over the
// time vector and adds DCOffset. See the internal expression grammar for
// the accepted operators and functions.
type CustomFunction struct {
	Function string
	DCOffset float64
}

// NewCustomFunction returns the default expression sin(2*pi*t).
func NewCustomFunction() CustomFunction {
	return CustomFunction{Function: "sin(2*pi*t)"}
}

// WhiteNoise is uniform noise in [-Amplitude, Amplitude] from a
// deterministic seed, plus DCOffset.
type WhiteNoise struct {
	Amplitude float64
	DCOffset  float64
	Seed      int64
}

// NewWhiteNoise returns unit-amplitude noise with seed 1.
func NewWhiteNoise() WhiteNoise {
	return WhiteNoise{Amplitude: 1, Seed: 1}
}

func (Sine) isWaveform()             {}
func (Cosine) isWaveform()           {}
func (Square) isWaveform()           {}
func (Triangle) isWaveform()         {}
func (Sawtooth) isWaveform()         {}
func (ExponentialDecay) isWaveform() {}
func (UnitStep) isWaveform()         {}
func (Impulse) isWaveform()          {}
func (GaussianPulse) isWaveform()    {}
func (CustomFunction) isWaveform()   {}
func (WhiteNoise) isWaveform()       {}
