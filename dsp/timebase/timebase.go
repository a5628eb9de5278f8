// Package timebase produces the uniformly spaced time vectors every
// generator in this module consumes.
package timebase

import (
	"fmt"
	"math"

	"github.com/alxrsngrtn/huh-computer-music/dsp/core"
)

// Vector returns floor(duration*sampleRate) evenly spaced timestamps
// covering [t0, t0+duration] inclusive of both endpoints.
func Vector(t0, duration, sampleRate float64) ([]float64, error) {
	if math.IsNaN(t0) || math.IsInf(t0, 0) {
		return nil, fmt.Errorf("timebase: start time must be finite: %v: %w", t0, core.ErrInvalidArgument)
	}

	if !(duration > 0) || math.IsInf(duration, 0) {
		return nil, fmt.Errorf("timebase: duration must be > 0 and finite: %v: %w", duration, core.ErrInvalidArgument)
	}

	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("timebase: sample rate must be > 0 and finite: %v: %w", sampleRate, core.ErrInvalidArgument)
	}

	n := int(math.Floor(duration * sampleRate))
	if n <= 0 {
		return nil, fmt.Errorf("timebase: duration %v at rate %v spans no samples: %w", duration, sampleRate, core.ErrInvalidArgument)
	}

	t := make([]float64, n)
	if n == 1 {
		t[0] = t0
		return t, nil
	}

	step := duration / float64(n-1)
	for i := range t {
		t[i] = t0 + step*float64(i)
	}

	// Pin the endpoint exactly; accumulated rounding in the loop above can
	// leave the final element a few ulps off t0+duration.
	t[n-1] = t0 + duration

	return t, nil
}
