// Command sigfilt generates a test waveform, designs a filter, applies it,
// and writes the input and output as WAV files.
//
// Usage:
//
//	sigfilt [flags]
//
// Examples:
//
//	sigfilt -wave sine -freq 5 -filter lowpass -cutoff 50
//	sigfilt -wave square -filter bandpass -low 5 -high 15 -order 2
//	sigfilt -wave noise -filter movavg -window 9 -out smoothed.wav
package main

import (
	"flag"
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"text/tabwriter"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/attilaasghari/signals-systems-simulator/dsp/core"
	"github.com/attilaasghari/signals-systems-simulator/dsp/lti"
	"github.com/attilaasghari/signals-systems-simulator/dsp/response"
	"github.com/attilaasghari/signals-systems-simulator/dsp/signal"
)

func main() {
	var (
		waveName   = flag.String("wave", "sine", "waveform: sine, cosine, square, triangle, sawtooth, noise, step, impulse, gauss")
		freq       = flag.Float64("freq", 5, "waveform frequency in Hz")
		amp        = flag.Float64("amp", 1, "waveform amplitude")
		rate       = flag.Float64("rate", 1000, "sampling rate in Hz")
		duration   = flag.Float64("dur", 2, "duration in seconds")
		filterName = flag.String("filter", "lowpass", "filter: lowpass, highpass, bandpass, movavg, diff, integ")
		cutoff     = flag.Float64("cutoff", 50, "low/high-pass cutoff in Hz")
		low        = flag.Float64("low", 5, "band-pass lower edge in Hz")
		high       = flag.Float64("high", 15, "band-pass upper edge in Hz")
		order      = flag.Int("order", 4, "Butterworth order")
		window     = flag.Int("window", 5, "moving-average window")
		inPath     = flag.String("in", "input.wav", "input WAV path")
		outPath    = flag.String("out", "output.wav", "output WAV path")
	)
	flag.Parse()

	gen := signal.NewGenerator(core.WithSampleRate(*rate), core.WithDuration(*duration))

	wave, err := waveFor(*waveName, *freq, *amp)
	if err != nil {
		fatal(err)
	}

	in, err := gen.Generate(wave)
	if err != nil {
		fatal(err)
	}

	sys, err := systemFor(*filterName, *cutoff, *low, *high, *order, *window)
	if err != nil {
		fatal(err)
	}

	tf, err := lti.Design(sys, *rate)
	if err != nil {
		fatal(err)
	}

	comp := response.NewComputer(core.WithSampleRate(*rate))
	out := comp.Apply(tf, in)

	if err := writeWAV(*inPath, in.Samples, int(*rate)); err != nil {
		fatal(err)
	}
	if err := writeWAV(*outPath, out.Samples, int(*rate)); err != nil {
		fatal(err)
	}

	printSummary(tf, *inPath, *outPath)
}

func waveFor(name string, freq, amp float64) (signal.Waveform, error) {
	switch name {
	case "sine":
		w := signal.NewSine()
		w.Frequency = freq
		w.Amplitude = amp
		return w, nil
	case "cosine":
		w := signal.NewCosine()
		w.Frequency = freq
		w.Amplitude = amp
		return w, nil
	case "square":
		w := signal.NewSquare()
		w.Frequency = freq
		w.Amplitude = amp
		return w, nil
	case "triangle":
		w := signal.NewTriangle()
		w.Frequency = freq
		w.Amplitude = amp
		return w, nil
	case "sawtooth":
		w := signal.NewSawtooth()
		w.Frequency = freq
		w.Amplitude = amp
		return w, nil
	case "noise":
		w := signal.NewWhiteNoise()
		w.Amplitude = amp
		return w, nil
	case "step":
		w := signal.NewUnitStep()
		w.Amplitude = amp
		return w, nil
	case "impulse":
		w := signal.NewImpulse()
		w.Amplitude = amp
		return w, nil
	case "gauss":
		w := signal.NewGaussianPulse()
		w.Amplitude = amp
		return w, nil
	}

	return nil, fmt.Errorf("unknown waveform %q", name)
}

func systemFor(name string, cutoff, low, high float64, order, window int) (lti.System, error) {
	switch name {
	case "lowpass":
		return lti.Lowpass{Cutoff: cutoff, Order: order}, nil
	case "highpass":
		return lti.Highpass{Cutoff: cutoff, Order: order}, nil
	case "bandpass":
		return lti.Bandpass{Low: low, High: high, Order: order}, nil
	case "movavg":
		return lti.MovingAverage{Window: window}, nil
	case "diff":
		return lti.NewDifferentiator(), nil
	case "integ":
		return lti.NewIntegrator(), nil
	}

	return nil, fmt.Errorf("unknown filter %q", name)
}

// writeWAV stores samples as 16-bit mono PCM, peak-normalized to 90% full
// scale so filter overshoot cannot clip.
func writeWAV(path string, samples []float64, sampleRate int) error {
	peak := 0.0
	for _, v := range samples {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	scale := 0.0
	if peak > 0 {
		scale = 0.9 * math.MaxInt16 / peak
	}

	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = int(v * scale)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return err
	}

	return enc.Close()
}

func printSummary(tf lti.TransferFunction, inPath, outPath string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "numerator\t%v\n", tf.B)
	fmt.Fprintf(w, "denominator\t%v\n", tf.A)
	fmt.Fprintf(w, "dc gain\t%.6g\n", cmplx.Abs(tf.EvalZ(1)))
	fmt.Fprintf(w, "nyquist gain\t%.6g\n", cmplx.Abs(tf.EvalZ(-1)))
	fmt.Fprintf(w, "stable\t%v\n", tf.Stable())

	if pz, err := tf.PoleZero(); err == nil {
		for i, p := range pz.Poles {
			fmt.Fprintf(w, "pole %d\t%.4f + %.4fi\t|p| = %.4f\n", i, real(p), imag(p), cmplx.Abs(p))
		}
	}

	fmt.Fprintf(w, "wrote\t%s, %s\n", inPath, outPath)
	w.Flush()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "sigfilt:", err)
	os.Exit(1)
}
