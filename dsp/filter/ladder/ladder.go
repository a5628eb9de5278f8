package ladder

import (
	"fmt"
	"math"

	"github.com/alxrsngrtn/huh-computer-music/dsp/core"
)

// State holds the four one-pole stage outputs of a cascade at one sample
// index. It only lives across consecutive samples within one run of the
// recurrence; nothing persists between calls unless the caller threads it.
type State struct {
	Y1, Y2, Y3, Y4 float64
}

// Output returns the cascade output at this state, the fourth stage.
func (s State) Output() float64 { return s.Y4 }

// Lowpass filters x through the four-stage low-pass cascade and returns the
// fourth stage output. Cutoff and feedback may be constants or per-sample
// series covering at least indices 0..len(x)-2.
func Lowpass(x []float64, cutoff, feedback core.Param, sampleRate float64) ([]float64, error) {
	if err := validate(x, cutoff, feedback, sampleRate); err != nil {
		return nil, err
	}

	dt := 1 / sampleRate

	out := make([]float64, len(x))

	s := LowpassInit(x[0], cutoff.At(0))
	out[0] = s.Y4

	for n := 0; n+1 < len(x); n++ {
		s = LowpassStep(s, x[n], cutoff.At(n), feedback.At(n), dt)
		out[n+1] = s.Y4
	}

	return out, nil
}

// LowpassInit charges the low-pass stages serially from the first input
// sample: each stage starts at omega/(1+omega) times its predecessor.
func LowpassInit(x0, cutoffHz float64) State {
	omega := 2 * math.Pi * cutoffHz
	g := omega / (1 + omega)

	var s State
	s.Y1 = g * x0
	s.Y2 = g * s.Y1
	s.Y3 = g * s.Y2
	s.Y4 = g * s.Y3

	return s
}

// LowpassStep advances the low-pass recurrence by one sample. The input x,
// cutoff, and feedback belong to the current sample; the returned State is
// the next sample's state, whose Y4 is the next output.
func LowpassStep(s State, x, cutoffHz, feedback, dt float64) State {
	c := dt * 2 * math.Pi * cutoffHz

	return State{
		Y1: s.Y1 + c*(x-s.Y1-feedback*s.Y4),
		Y2: s.Y2 + c*(s.Y1-s.Y2),
		Y3: s.Y3 + c*(s.Y2-s.Y3),
		Y4: s.Y4 + c*(s.Y3-s.Y4),
	}
}

// Highpass filters x through the four-stage high-pass cascade and returns
// the fourth stage output. Cutoff and feedback follow the same per-sample
// rules as Lowpass.
func Highpass(x []float64, cutoff, feedback core.Param, sampleRate float64) ([]float64, error) {
	if err := validate(x, cutoff, feedback, sampleRate); err != nil {
		return nil, err
	}

	dt := 1 / sampleRate

	out := make([]float64, len(x))

	s := HighpassInit(x[0])
	out[0] = s.Y4

	for n := 0; n+1 < len(x); n++ {
		s = HighpassStep(s, x[n+1], x[n], cutoff.At(n), feedback.At(n), dt)
		out[n+1] = s.Y4
	}

	return out, nil
}

// HighpassInit charges all four high-pass stages to the first input sample.
func HighpassInit(x0 float64) State {
	return State{Y1: x0, Y2: x0, Y3: x0, Y4: x0}
}

// HighpassStep advances the high-pass recurrence by one sample. It needs
// both the next and the current input because each stage differentiates its
// input.
func HighpassStep(s State, xNext, x, cutoffHz, feedback, dt float64) State {
	alpha := 1 / (2*math.Pi*dt*cutoffHz + 1)

	y1 := alpha * (s.Y1 + xNext - x - feedback*s.Y4)
	y2 := alpha * (s.Y2 + y1 - s.Y1)
	y3 := alpha * (s.Y3 + y2 - s.Y2)
	y4 := alpha * (s.Y4 + y3 - s.Y3)

	return State{Y1: y1, Y2: y2, Y3: y3, Y4: y4}
}

func validate(x []float64, cutoff, feedback core.Param, sampleRate float64) error {
	if math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) || sampleRate <= 0 {
		return fmt.Errorf("ladder: sample rate must be > 0 and finite: %v: %w", sampleRate, core.ErrInvalidArgument)
	}

	if len(x) == 0 {
		return fmt.Errorf("ladder: input must not be empty: %w", core.ErrInvalidArgument)
	}

	// The init step reads cutoff[0]; the recurrence reads indices 0..N-2.
	need := len(x) - 1
	if need < 1 {
		need = 1
	}

	if err := cutoff.ValidateMin("cutoff", need); err != nil {
		return fmt.Errorf("ladder: %w", err)
	}

	if err := feedback.ValidateMin("feedback", len(x)-1); err != nil {
		return fmt.Errorf("ladder: %w", err)
	}

	return nil
}
