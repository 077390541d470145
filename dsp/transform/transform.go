// Package transform provides discrete Fourier transforms and pointwise
// Laplace- and z-domain evaluators.
package transform

import (
	algofft "github.com/MeKo-Christian/algo-fft"
	godsp "github.com/mjibson/go-dsp/fft"
)

// FFT computes the discrete Fourier transform of a real signal sampled at
// fs Hz and the matching frequency vector in conventional bin order
// (non-negative bins first, negative bins folded onto the tail).
//
// Power-of-two lengths go through a planned FFT; other lengths use a
// Bluestein-capable fallback so any input length transforms exactly.
func FFT(x []float64, fs float64) ([]float64, []complex128) {
	n := len(x)
	if n == 0 {
		return nil, nil
	}

	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	return FFTFreq(n, fs), forward(in)
}

// IFFT reconstructs a real signal from its spectrum, discarding the
// imaginary rounding residue of the inverse transform.
func IFFT(spectrum []complex128) []float64 {
	n := len(spectrum)
	if n == 0 {
		return nil
	}

	out := inverse(spectrum)

	x := make([]float64, n)
	for i, v := range out {
		x[i] = real(v)
	}

	return x
}

// FFTFreq returns the conventional FFT bin frequencies for an n-point
// transform at sampling rate fs: k*fs/n for k < ceil(n/2), then the
// negative frequencies (k-n)*fs/n.
func FFTFreq(n int, fs float64) []float64 {
	freq := make([]float64, n)
	step := fs / float64(n)
	half := (n + 1) / 2

	for k := range n {
		if k < half {
			freq[k] = float64(k) * step
		} else {
			freq[k] = float64(k-n) * step
		}
	}

	return freq
}

func forward(in []complex128) []complex128 {
	if isPowerOfTwo(len(in)) {
		if plan, err := algofft.NewPlan64(len(in)); err == nil {
			out := make([]complex128, len(in))
			if err := plan.Forward(out, in); err == nil {
				return out
			}
		}
	}

	return godsp.FFT(in)
}

func inverse(in []complex128) []complex128 {
	if isPowerOfTwo(len(in)) {
		if plan, err := algofft.NewPlan64(len(in)); err == nil {
			out := make([]complex128, len(in))
			if err := plan.Inverse(out, in); err == nil {
				return out
			}
		}
	}

	return godsp.IFFT(in)
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
