// Package vc provides voltage-control style utility transforms: a
// multiply-add amplifier, peak normalization, a threshold gate, and a
// sample-and-hold resampler. They are the generic post-processing stages
// applied to any finite signal.
package vc

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/alxrsngrtn/huh-computer-music/dsp/core"
	"github.com/alxrsngrtn/huh-computer-music/dsp/interp"
	"github.com/alxrsngrtn/huh-computer-music/dsp/timebase"
)

const defaultThreshold = 0.5

// Option mutates utility configuration.
type Option func(*config) error

type config struct {
	gain      core.Param
	bias      core.Param
	threshold float64
}

func defaultConfig() config {
	return config{
		gain:      core.Const(1),
		bias:      core.Const(0),
		threshold: defaultThreshold,
	}
}

// WithGain sets the amplifier gain. Defaults to 1.
func WithGain(gain core.Param) Option {
	return func(cfg *config) error {
		cfg.gain = gain
		return nil
	}
}

// WithBias sets the amplifier output offset. Defaults to 0.
func WithBias(bias core.Param) Option {
	return func(cfg *config) error {
		cfg.bias = bias
		return nil
	}
}

// WithThreshold sets the gate threshold. Defaults to 0.5.
func WithThreshold(threshold float64) Option {
	return func(cfg *config) error {
		if math.IsNaN(threshold) {
			return fmt.Errorf("vc: threshold must not be NaN: %w", core.ErrInvalidArgument)
		}

		cfg.threshold = threshold

		return nil
	}
}

// Amplifier multiplies x1 by x2 sample-wise, scales by gain, and offsets by
// bias: gain*x1*x2 + bias. The analog is a voltage-controlled amplifier
// with x2 as the control voltage; x2, gain, and bias may each be constant
// or per-sample.
func Amplifier(x1 []float64, x2 core.Param, opts ...Option) ([]float64, error) {
	cfg, err := apply(opts)
	if err != nil {
		return nil, err
	}

	if len(x1) == 0 {
		return nil, fmt.Errorf("vc: input must not be empty: %w", core.ErrInvalidArgument)
	}

	n := len(x1)

	if err := x2.Validate("control", n); err != nil {
		return nil, fmt.Errorf("vc: %w", err)
	}

	if err := cfg.gain.Validate("gain", n); err != nil {
		return nil, fmt.Errorf("vc: %w", err)
	}

	if err := cfg.bias.Validate("bias", n); err != nil {
		return nil, fmt.Errorf("vc: %w", err)
	}

	out := make([]float64, n)

	if s := x2.Series(); s != nil && !cfg.gain.IsPerSample() && !cfg.bias.IsPerSample() {
		vecmath.MulBlock(out, x1, s)

		if g := cfg.gain.At(0); g != 1 {
			vecmath.ScaleBlockInPlace(out, g)
		}

		if b := cfg.bias.At(0); b != 0 {
			for i := range out {
				out[i] += b
			}
		}

		return out, nil
	}

	for i := range out {
		out[i] = cfg.gain.At(i)*x1[i]*x2.At(i) + cfg.bias.At(i)
	}

	return out, nil
}

// Normalize scales x by the extremum of larger magnitude, mapping it into
// [-1, 1]. The divisor keeps its sign, so a signal dominated by negative
// values comes out flipped. Identically zero input cannot be scaled and is
// an error.
func Normalize(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("vc: input must not be empty: %w", core.ErrInvalidArgument)
	}

	max, min := x[0], x[0]
	for _, v := range x[1:] {
		if v > max {
			max = v
		}

		if v < min {
			min = v
		}
	}

	m := max
	if math.Abs(min) > math.Abs(max) {
		m = min
	}

	if m == 0 {
		return nil, fmt.Errorf("vc: cannot normalize an identically zero signal: %w", core.ErrDegenerate)
	}

	out := make([]float64, len(x))
	vecmath.ScaleBlock(out, x, 1/m)

	return out, nil
}

// Gate maps x to a binary signal: 1 where the sample is at or above the
// threshold, 0 below it.
func Gate(x []float64, opts ...Option) ([]float64, error) {
	cfg, err := apply(opts)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	for i, v := range x {
		if v >= cfg.threshold {
			out[i] = 1
		}
	}

	return out, nil
}

// SampleAndHold stair-steps x to the time resolution implied by holdRate:
// it decimates x onto a uniform grid spanning the time vector t at holdRate
// with zero-order interpolation, then reconstructs onto t the same way,
// holding the last coarse value past the end of the coarse grid.
func SampleAndHold(t, x []float64, holdRate float64) ([]float64, error) {
	if len(t) != len(x) {
		return nil, fmt.Errorf("vc: time vector has %d samples for %d values: %w", len(t), len(x), core.ErrLengthMismatch)
	}

	if len(t) < 2 {
		return nil, fmt.Errorf("vc: sample and hold needs at least 2 samples: %w", core.ErrInvalidArgument)
	}

	if math.IsNaN(holdRate) || math.IsInf(holdRate, 0) || holdRate <= 0 {
		return nil, fmt.Errorf("vc: hold rate must be > 0 and finite: %v: %w", holdRate, core.ErrInvalidArgument)
	}

	span := t[len(t)-1] - t[0]

	coarse, err := timebase.Vector(t[0], span, holdRate)
	if err != nil {
		return nil, fmt.Errorf("vc: hold grid: %w", err)
	}

	held, err := interp.ZeroOrder(t, x, coarse, false)
	if err != nil {
		return nil, fmt.Errorf("vc: decimate: %w", err)
	}

	out, err := interp.ZeroOrder(coarse, held, t, true)
	if err != nil {
		return nil, fmt.Errorf("vc: reconstruct: %w", err)
	}

	return out, nil
}

func apply(opts []Option) (config, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}
