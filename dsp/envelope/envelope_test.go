package envelope

import (
	"errors"
	"testing"

	"github.com/alxrsngrtn/huh-computer-music/dsp/core"
	"github.com/alxrsngrtn/huh-computer-music/internal/testutil"
)

func TestSingleHighRun(t *testing.T) {
	gate := testutil.Ones(10)

	got, err := ADSR(gate, 3, 2, 0.5, 2)
	if err != nil {
		t.Fatalf("ADSR() error = %v", err)
	}

	// Attack ramps i/3, decay follows 1 - i*0.5/2, sustain holds 0.5.
	want := []float64{
		0, 1.0 / 3, 2.0 / 3,
		1, 0.75,
		0.5, 0.5, 0.5, 0.5, 0.5,
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-15)
}

func TestLeadingLowRunIsSilent(t *testing.T) {
	gate := append(make([]float64, 4), testutil.Ones(6)...)

	got, err := ADSR(gate, 2, 2, 0.5, 3)
	if err != nil {
		t.Fatalf("ADSR() error = %v", err)
	}

	want := []float64{
		0, 0, 0, 0, // no release before any attack
		0, 0.5, 1, 0.75, 0.5, 0.5,
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-15)
}

func TestReleaseAndRetrigger(t *testing.T) {
	gate := make([]float64, 0, 19)
	gate = append(gate, testutil.Ones(8)...)
	gate = append(gate, make([]float64, 6)...)
	gate = append(gate, testutil.Ones(5)...)

	got, err := ADSR(gate, 2, 2, 0.5, 3)
	if err != nil {
		t.Fatalf("ADSR() error = %v", err)
	}

	want := []float64{
		// first note: attack, decay, sustain
		0, 0.5, 1, 0.75, 0.5, 0.5, 0.5, 0.5,
		// release from sustain, then silence
		0.5, 0.5 - 0.5/3, 0.5 - 1.0/3, 0, 0, 0,
		// retrigger
		0, 0.5, 1, 0.75, 0.5,
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-15)
}

func TestShortRunsTruncateSegments(t *testing.T) {
	// High run shorter than the attack, low run shorter than the release.
	gate := []float64{1, 1, 0, 0, 1}

	got, err := ADSR(gate, 3, 2, 0.5, 4)
	if err != nil {
		t.Fatalf("ADSR() error = %v", err)
	}

	want := []float64{
		0, 1.0 / 3, // truncated attack
		0.5, 0.5 - 0.125, // truncated release
		0, // retriggered attack start
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-15)
}

func TestZeroLengthSegments(t *testing.T) {
	gate := []float64{1, 1, 1, 0, 0}

	got, err := ADSR(gate, 0, 0, 0.75, 0)
	if err != nil {
		t.Fatalf("ADSR() error = %v", err)
	}

	want := []float64{0.75, 0.75, 0.75, 0, 0}

	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestLengthPreserved(t *testing.T) {
	gate := make([]float64, 0, 64)
	for i := range 64 {
		if i/9%2 == 0 {
			gate = append(gate, 1)
		} else {
			gate = append(gate, 0)
		}
	}

	got, err := ADSR(gate, 5, 5, 0.3, 5)
	if err != nil {
		t.Fatalf("ADSR() error = %v", err)
	}

	if len(got) != len(gate) {
		t.Fatalf("length = %d, want %d", len(got), len(gate))
	}

	testutil.RequireFinite(t, got)
}

func TestValidation(t *testing.T) {
	if _, err := ADSR(nil, 1, 1, 0.5, 1); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("empty gate: error = %v, want ErrInvalidArgument", err)
	}

	if _, err := ADSR([]float64{0, 0.5, 1}, 1, 1, 0.5, 1); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("non-binary gate: error = %v, want ErrInvalidArgument", err)
	}

	if _, err := ADSR(testutil.Ones(4), -1, 1, 0.5, 1); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("negative attack: error = %v, want ErrInvalidArgument", err)
	}

	if _, err := ADSR(testutil.Ones(4), 1, 1, 1.5, 1); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("sustain > 1: error = %v, want ErrInvalidArgument", err)
	}
}
