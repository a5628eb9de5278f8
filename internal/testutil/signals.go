// Package testutil provides deterministic signal builders and tolerance
// assertions shared by the engine package tests.
package testutil

import (
	"math"
	"math/rand/v2"
)

// DeterministicSine generates a sine wave sampled at integer indices.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// DeterministicNoise generates seeded uniform noise in [-amplitude, amplitude).
func DeterministicNoise(seed uint64, amplitude float64, length int) []float64 {
	rng := rand.New(rand.NewPCG(seed, 0))

	out := make([]float64, length)
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
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

// Ones returns a slice of length n filled with 1.0, handy as an
// always-open gate signal.
func Ones(n int) []float64 {
	return DC(1, n)
}
