// Package osc provides periodic waveform generators over a shared time
// vector: sine, pulse/square, and sawtooth/triangle oscillators with
// frequency, phase, amplitude, and duty-cycle control. Every parameter is a
// core.Param, so each one may be a constant or a per-sample series of the
// same length as the time vector.
package osc

import (
	"fmt"
	"math"

	"github.com/alxrsngrtn/huh-computer-music/dsp/core"
)

const twoPi = 2 * math.Pi

// Option mutates oscillator configuration.
type Option func(*config) error

type config struct {
	phase     core.Param
	amplitude core.Param
	duty      core.Param
	dutySet   bool
}

func defaultConfig() config {
	return config{
		phase:     core.Const(0),
		amplitude: core.Const(1),
	}
}

// WithPhase sets the phase offset in radians. Defaults to 0.
func WithPhase(phase core.Param) Option {
	return func(cfg *config) error {
		cfg.phase = phase
		return nil
	}
}

// WithAmplitude sets the peak amplitude. Defaults to 1.
func WithAmplitude(amplitude core.Param) Option {
	return func(cfg *config) error {
		cfg.amplitude = amplitude
		return nil
	}
}

// WithDuty sets the duty cycle in [0, 1]. For Square it is the fraction of
// each period spent at the positive level (default 0.5). For Sawtooth it is
// the fraction spent rising: 0 is a falling saw, 1 a rising saw, 0.5 a
// triangle (default 0). Sine ignores it.
func WithDuty(duty core.Param) Option {
	return func(cfg *config) error {
		cfg.duty = duty
		cfg.dutySet = true

		return nil
	}
}

// Sine generates A*sin(2*pi*f*t + phi) over the time vector t.
func Sine(t []float64, freq core.Param, opts ...Option) ([]float64, error) {
	cfg, err := prepare(t, freq, opts)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(t))
	for i, ti := range t {
		theta := twoPi*freq.At(i)*ti + cfg.phase.At(i)
		out[i] = cfg.amplitude.At(i) * math.Sin(theta)
	}

	return out, nil
}

// Square generates a pulse wave: +A while the wrapped phase falls in the
// first duty fraction of the period, -A for the remainder.
func Square(t []float64, freq core.Param, opts ...Option) ([]float64, error) {
	cfg, err := prepare(t, freq, opts)
	if err != nil {
		return nil, err
	}

	duty := cfg.duty
	if !cfg.dutySet {
		duty = core.Const(0.5)
	}

	if err := validateDuty(duty, len(t)); err != nil {
		return nil, err
	}

	out := make([]float64, len(t))
	for i, ti := range t {
		theta := twoPi*freq.At(i)*ti + cfg.phase.At(i)

		a := cfg.amplitude.At(i)
		if wrap(theta) < duty.At(i) {
			out[i] = a
		} else {
			out[i] = -a
		}
	}

	return out, nil
}

// Sawtooth generates a sawtooth/triangle wave rising from -A to A over the
// first duty fraction of each period and falling back over the rest.
func Sawtooth(t []float64, freq core.Param, opts ...Option) ([]float64, error) {
	cfg, err := prepare(t, freq, opts)
	if err != nil {
		return nil, err
	}

	// Duty 0 is a pure falling saw.
	duty := cfg.duty
	if !cfg.dutySet {
		duty = core.Const(0)
	}

	if err := validateDuty(duty, len(t)); err != nil {
		return nil, err
	}

	out := make([]float64, len(t))
	for i, ti := range t {
		theta := twoPi*freq.At(i)*ti + cfg.phase.At(i)
		p := wrap(theta)
		d := duty.At(i)

		var y float64
		if p < d {
			y = 2*p/d - 1
		} else {
			y = (d + 1 - 2*p) / (1 - d)
		}

		out[i] = cfg.amplitude.At(i) * y
	}

	return out, nil
}

func prepare(t []float64, freq core.Param, opts []Option) (config, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return cfg, err
		}
	}

	if len(t) == 0 {
		return cfg, fmt.Errorf("osc: time vector must not be empty: %w", core.ErrInvalidArgument)
	}

	n := len(t)
	if err := freq.Validate("frequency", n); err != nil {
		return cfg, fmt.Errorf("osc: %w", err)
	}

	if err := cfg.phase.Validate("phase", n); err != nil {
		return cfg, fmt.Errorf("osc: %w", err)
	}

	if err := cfg.amplitude.Validate("amplitude", n); err != nil {
		return cfg, fmt.Errorf("osc: %w", err)
	}

	return cfg, nil
}

func validateDuty(duty core.Param, n int) error {
	if err := duty.Validate("duty", n); err != nil {
		return fmt.Errorf("osc: %w", err)
	}

	if !duty.IsPerSample() {
		if d := duty.At(0); d < 0 || d > 1 {
			return fmt.Errorf("osc: duty must be in [0, 1]: %v: %w", d, core.ErrInvalidArgument)
		}

		return nil
	}

	for i := range n {
		if d := duty.At(i); d < 0 || d > 1 {
			return fmt.Errorf("osc: duty must be in [0, 1] at sample %d: %v: %w", i, d, core.ErrInvalidArgument)
		}
	}

	return nil
}

// wrap maps an angle in radians to normalized phase in [0, 1).
func wrap(theta float64) float64 {
	p := math.Mod(theta/twoPi, 1)
	if p < 0 {
		p++
	}

	return p
}
