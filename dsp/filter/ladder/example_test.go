package ladder_test

import (
	"fmt"
	"math"

	"github.com/alxrsngrtn/huh-computer-music/dsp/core"
	"github.com/alxrsngrtn/huh-computer-music/dsp/filter/ladder"
)

func ExampleLowpass() {
	// A unit-cutoff cascade (omega = 1) at a 1 Hz sample rate charges up
	// toward a constant input one stage at a time.
	x := []float64{1, 1, 1}
	cutoff := core.Const(1 / (2 * math.Pi))

	y, err := ladder.Lowpass(x, cutoff, core.Const(0), 1)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.4f %.4f %.4f\n", y[0], y[1], y[2])
	// Output:
	// 0.0625 0.1250 0.2500
}

func ExampleLowpassStep() {
	// Thread filter state through an external loop, sweeping the cutoff.
	const sampleRate = 8000.0

	dt := 1 / sampleRate
	s := ladder.LowpassInit(0, 200)

	var out float64
	for n := range 64 {
		x := math.Sin(2 * math.Pi * 440 * float64(n) / sampleRate)
		cutoff := 200 + 10*float64(n)

		s = ladder.LowpassStep(s, x, cutoff, 0.5, dt)
		out = s.Output()
	}

	fmt.Printf("finite: %v\n", !math.IsNaN(out) && !math.IsInf(out, 0))
	// Output:
	// finite: true
}
