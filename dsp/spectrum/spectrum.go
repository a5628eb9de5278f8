// Package spectrum provides magnitude spectrum analysis of finite signals.
// It exists so generated and filtered material can be inspected in the
// frequency domain, and it backs the spectral assertions in the filter
// tests.
package spectrum

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/alxrsngrtn/huh-computer-music/dsp/core"
)

// FFTSize returns the transform length Analyze uses for an input of n
// samples: the next power of two at or above n.
func FFTSize(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}

	return size
}

// Analyze returns the single-sided magnitude spectrum |X[k]| of x for bins
// k = 0..FFTSize(len(x))/2, zero-padding x up to the transform length.
func Analyze(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("spectrum: input must not be empty: %w", core.ErrInvalidArgument)
	}

	size := FFTSize(len(x))

	in := make([]complex128, size)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("spectrum: plan: %w", err)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward transform: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

// BinFreq returns the center frequency in Hz of bin k in an fftSize-point
// transform at the given sample rate.
func BinFreq(k, fftSize int, sampleRate float64) float64 {
	return float64(k) * sampleRate / float64(fftSize)
}

// NearestBin returns the bin index whose center frequency is nearest freqHz.
func NearestBin(freqHz float64, fftSize int, sampleRate float64) int {
	bin := int(freqHz*float64(fftSize)/sampleRate + 0.5)
	if max := fftSize / 2; bin > max {
		bin = max
	}

	return bin
}
