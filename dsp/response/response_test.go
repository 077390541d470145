package response

import (
	"math"
	"testing"

	"github.com/attilaasghari/signals-systems-simulator/dsp/core"
	"github.com/attilaasghari/signals-systems-simulator/dsp/lti"
	"github.com/attilaasghari/signals-systems-simulator/dsp/signal"
	"github.com/attilaasghari/signals-systems-simulator/internal/testutil"
)

func mustTF(t *testing.T, b, a []float64, fs float64) lti.TransferFunction {
	t.Helper()
	tf, err := lti.New(b, a, fs)
	if err != nil {
		t.Fatalf("lti.New() error = %v", err)
	}
	return tf
}

func TestImpulseStaticGain(t *testing.T) {
	c := NewComputer()
	tf := mustTF(t, []float64{3}, []float64{2}, 1000)

	_, h := c.Impulse(tf, nil)
	if len(h) != 2000 {
		t.Fatalf("len = %d, want 2000", len(h))
	}
	if h[0] != 1.5 {
		t.Fatalf("h[0] = %v, want 1.5", h[0])
	}
	for i := 1; i < len(h); i++ {
		if h[i] != 0 {
			t.Fatalf("h[%d] = %v, want 0", i, h[i])
		}
	}
}

func TestStepStaticGain(t *testing.T) {
	c := NewComputer()
	tf := mustTF(t, []float64{3}, []float64{2}, 1000)

	_, s := c.Step(tf, nil)
	for i, v := range s {
		if v != 1.5 {
			t.Fatalf("s[%d] = %v, want 1.5", i, v)
		}
	}
}

func TestImpulseImproperSystem(t *testing.T) {
	// FIR b with a scalar denominator is improper (len(b) > len(a)); the
	// impulse response is the coefficient sequence itself.
	c := NewComputer()
	tf := mustTF(t, []float64{1, 2, 3}, []float64{1}, 1000)

	tv := make([]float64, 8)
	for i := range tv {
		tv[i] = float64(i) / 1000
	}

	_, h := c.Impulse(tf, tv)
	testutil.RequireSliceNearlyEqual(t, h, []float64{1, 2, 3, 0, 0, 0, 0, 0}, 1e-12)
}

func TestImpulseProperSystem(t *testing.T) {
	// H(z) = 1/(1 - 0.5*z^-1): h[n] = 0.5^n via the state-space path.
	c := NewComputer()
	tf := mustTF(t, []float64{1}, []float64{1, -0.5}, 1000)

	tv := core.TimeVector(1000, 0.02)
	_, h := c.Impulse(tf, tv)

	want := make([]float64, len(tv))
	for i := range want {
		want[i] = math.Pow(0.5, float64(i))
	}
	testutil.RequireSliceNearlyEqual(t, h, want, 1e-12)
}

func TestImpulseStateSpaceMatchesKernel(t *testing.T) {
	// The state-space and direct-filter paths must agree on a biquad.
	c := NewComputer()
	b := []float64{0.2, 0.3, 0.1}
	a := []float64{1, -0.6, 0.25}
	tf := mustTF(t, b, a, 1000)

	tv := core.TimeVector(1000, 0.1)
	_, h := c.Impulse(tf, tv)

	want := Filter(b, a, testutil.Impulse(len(tv), 0))
	testutil.RequireSliceNearlyEqual(t, h, want, 1e-9)
}

func TestStepProperSystem(t *testing.T) {
	// Leaky integrator step response converges to 1/(1-beta).
	c := NewComputer()
	tf := mustTF(t, []float64{1}, []float64{1, -0.9}, 1000)

	tv := core.TimeVector(1000, 1)
	_, s := c.Step(tf, tv)

	want := Filter(tf.B, tf.A, unitStep(len(tv)))
	testutil.RequireSliceNearlyEqual(t, s, want, 1e-9)

	if math.Abs(s[len(s)-1]-10) > 1e-6 {
		t.Fatalf("final value = %v, want 10", s[len(s)-1])
	}
}

func TestStepMatchesCumulativeImpulse(t *testing.T) {
	c := NewComputer()
	tf := mustTF(t, []float64{0.5, 0.5}, []float64{1, -0.3}, 1000)

	tv := core.TimeVector(1000, 0.05)
	_, h := c.Impulse(tf, tv)
	_, s := c.Step(tf, tv)

	sum := 0.0
	for i := range h {
		sum += h[i]
		if math.Abs(s[i]-sum) > 1e-9 {
			t.Fatalf("step[%d] = %v, want cumulative %v", i, s[i], sum)
		}
	}
}

func TestDefaultTimeVectorUsesSystemRate(t *testing.T) {
	c := NewComputer(core.WithSampleRate(8000))
	tf := mustTF(t, []float64{1}, []float64{1, -0.5}, 100)

	tv, h := c.Impulse(tf, nil)
	if len(tv) != 200 || len(h) != 200 {
		t.Fatalf("lengths = %d/%d, want 200 (2 s at the system's 100 Hz)", len(tv), len(h))
	}

	// Without a system rate the computer's own rate applies.
	bare := lti.TransferFunction{B: []float64{1}, A: []float64{1, -0.5}}
	tv, _ = c.Impulse(bare, nil)
	if len(tv) != 16000 {
		t.Fatalf("len = %d, want 16000", len(tv))
	}
}

func TestFilterEmptyInput(t *testing.T) {
	if got := Filter([]float64{1, 2}, []float64{1, -0.5}, nil); len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestFilterNormalizesByA0(t *testing.T) {
	// Doubling every coefficient leaves the response unchanged.
	x := []float64{1, 0, 0, 0, 0}
	y1 := Filter([]float64{1, 1}, []float64{1, -0.5}, x)
	y2 := Filter([]float64{2, 2}, []float64{2, -1}, x)
	testutil.RequireSliceNearlyEqual(t, y1, y2, 1e-12)
}

func TestApplyMovingAverageConstant(t *testing.T) {
	// A moving average passes a constant through unchanged after a
	// transient shorter than the window.
	const window = 5

	c := NewComputer()
	tf, err := lti.Design(lti.MovingAverage{Window: window}, 1000)
	if err != nil {
		t.Fatalf("Design() error = %v", err)
	}

	in := signal.Signal{
		Times:   core.TimeVector(1000, 0.05),
		Samples: testutil.DC(3, 50),
	}

	out := c.Apply(tf, in)
	if len(out.Samples) != 50 {
		t.Fatalf("len = %d, want 50", len(out.Samples))
	}

	for i := window - 1; i < len(out.Samples); i++ {
		if !core.NearlyEqual(out.Samples[i], 3, 1e-12) {
			t.Fatalf("samples[%d] = %v, want 3", i, out.Samples[i])
		}
	}
}

func TestApplyEmptySignal(t *testing.T) {
	c := NewComputer()
	tf := mustTF(t, []float64{1, 2}, []float64{1, -0.5}, 1000)

	out := c.Apply(tf, signal.Signal{})
	if len(out.Samples) != 0 {
		t.Fatalf("got %d samples, want 0", len(out.Samples))
	}
}

func TestFrequencyGrid(t *testing.T) {
	c := NewComputer()
	tf := mustTF(t, []float64{1}, []float64{1, -0.5}, 1000)

	fr := c.Frequency(tf, 256)
	if len(fr.Frequencies) != 256 || len(fr.Response) != 256 {
		t.Fatalf("lengths = %d/%d, want 256", len(fr.Frequencies), len(fr.Response))
	}
	if fr.Frequencies[0] != 0 {
		t.Fatalf("first frequency = %v, want 0", fr.Frequencies[0])
	}
	if !core.NearlyEqual(fr.Frequencies[255], 500, 1e-9) {
		t.Fatalf("last frequency = %v, want 500", fr.Frequencies[255])
	}
	for i := 1; i < len(fr.Frequencies); i++ {
		if fr.Frequencies[i] < fr.Frequencies[i-1] {
			t.Fatalf("frequencies decrease at %d", i)
		}
	}
}

func TestFrequencyDefaultPoints(t *testing.T) {
	c := NewComputer()
	tf := mustTF(t, []float64{1}, []float64{1, -0.5}, 1000)

	fr := c.Frequency(tf, 0)
	if len(fr.Response) != DefaultFrequencyPoints {
		t.Fatalf("len = %d, want %d", len(fr.Response), DefaultFrequencyPoints)
	}
}

func TestFrequencyLowpassShape(t *testing.T) {
	c := NewComputer()
	tf, err := lti.Design(lti.Lowpass{Cutoff: 50, Order: 4}, 1000)
	if err != nil {
		t.Fatalf("Design() error = %v", err)
	}

	fr := c.Frequency(tf, 512)

	dc := fr.Response[0]
	nyq := fr.Response[511]

	if math.Abs(real(dc)-1) > 1e-6 || math.Abs(imag(dc)) > 1e-6 {
		t.Fatalf("H(0) = %v, want 1", dc)
	}
	if v := math.Hypot(real(nyq), imag(nyq)); v > 1e-9 {
		t.Fatalf("|H(Nyquist)| = %v, want ~0", v)
	}
}

func TestFrequencySanitizesNonFinite(t *testing.T) {
	// A transfer function built by hand with a zero denominator produces
	// non-finite values; they must come back as exact zeros.
	c := NewComputer(core.WithSampleRate(1000))
	tf := lti.TransferFunction{B: []float64{1}, A: []float64{0}}

	fr := c.Frequency(tf, 64)
	for i, v := range fr.Response {
		if v != 0 {
			t.Fatalf("response[%d] = %v, want 0", i, v)
		}
	}
}

func TestFrequencyDegenerateAllZero(t *testing.T) {
	c := NewComputer(core.WithSampleRate(1000))
	tf := lti.TransferFunction{}

	fr := c.Frequency(tf, 32)
	if len(fr.Frequencies) != 32 || len(fr.Response) != 32 {
		t.Fatalf("lengths = %d/%d, want 32", len(fr.Frequencies), len(fr.Response))
	}
	for i, v := range fr.Response {
		if v != 0 {
			t.Fatalf("response[%d] = %v, want 0", i, v)
		}
	}
}
