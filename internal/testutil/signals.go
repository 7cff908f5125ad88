// Package testutil provides deterministic signal generators and tolerance
// assertions for wavelet transform tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// NoiseBatch generates rows of deterministic white noise, each row seeded
// independently so batches are reproducible row by row.
func NoiseBatch(seed int64, rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = DeterministicNoise(seed+int64(i), 1.0, cols)
	}
	return out
}

// SpikeWaveform generates a deterministic biphasic spike-like pulse with its
// zero crossing at sample peak (derivative-of-Gaussian shape).
func SpikeWaveform(length, peak int, amplitude float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		t := float64(i - peak)
		out[i] = amplitude * t * math.Exp(-t*t/8)
	}
	return out
}

// Ramp generates the sequence 1, 2, ..., length.
func Ramp(length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
