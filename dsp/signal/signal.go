// Package signal generates sampled time-domain test signals from typed
// waveform descriptions.
package signal

import "math"

// Signal is a sampled waveform: sample instants and values of equal length.
// The time vector is strictly increasing with constant spacing 1/fs.
// Signals are immutable by convention once returned.
type Signal struct {
	Times   []float64
	Samples []float64
}

// Len returns the number of samples.
func (s Signal) Len() int {
	return len(s.Samples)
}

// SampleRate returns the sampling rate derived from the time spacing,
// or 0 for signals with fewer than two samples.
func (s Signal) SampleRate() float64 {
	if len(s.Times) < 2 {
		return 0
	}

	dt := s.Times[1] - s.Times[0]
	if dt <= 0 {
		return 0
	}

	return 1 / dt
}

// Duration returns the covered time span in seconds including the final
// sample interval, or 0 for signals with fewer than two samples.
func (s Signal) Duration() float64 {
	rate := s.SampleRate()
	if rate == 0 {
		return 0
	}

	return float64(len(s.Samples)) / rate
}

// Valid reports whether the signal holds its structural invariants:
// equal lengths, strictly increasing times, finite samples.
func (s Signal) Valid() bool {
	if len(s.Times) != len(s.Samples) {
		return false
	}

	for i := 1; i < len(s.Times); i++ {
		if !(s.Times[i] > s.Times[i-1]) {
			return false
		}
	}

	for _, v := range s.Samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
