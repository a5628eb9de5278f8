package timebase

import (
	"errors"
	"math"
	"testing"

	"github.com/alxrsngrtn/huh-computer-music/dsp/core"
)

func TestVectorLengthAndEndpoints(t *testing.T) {
	cases := []struct {
		t0, duration, rate float64
	}{
		{0, 1, 8000},
		{2.5, 0.25, 44100},
		{-1, 3, 100},
		{0, 0.5, 3},
	}

	for _, tc := range cases {
		v, err := Vector(tc.t0, tc.duration, tc.rate)
		if err != nil {
			t.Fatalf("Vector(%v, %v, %v) error = %v", tc.t0, tc.duration, tc.rate, err)
		}

		wantLen := int(math.Floor(tc.duration * tc.rate))
		if len(v) != wantLen {
			t.Fatalf("Vector(%v, %v, %v) length = %d, want %d", tc.t0, tc.duration, tc.rate, len(v), wantLen)
		}

		if v[0] != tc.t0 {
			t.Fatalf("first element = %v, want %v", v[0], tc.t0)
		}

		if got, want := v[len(v)-1], tc.t0+tc.duration; math.Abs(got-want) > 1e-9 {
			t.Fatalf("last element = %v, want %v", got, want)
		}
	}
}

func TestVectorMonotonic(t *testing.T) {
	v, err := Vector(0, 1, 1000)
	if err != nil {
		t.Fatalf("Vector() error = %v", err)
	}

	for i := 1; i < len(v); i++ {
		if v[i] <= v[i-1] {
			t.Fatalf("not strictly increasing at %d: %v <= %v", i, v[i], v[i-1])
		}
	}
}

func TestVectorSingleSample(t *testing.T) {
	v, err := Vector(3, 0.5, 2) // floor(0.5*2) == 1
	if err != nil {
		t.Fatalf("Vector() error = %v", err)
	}

	if len(v) != 1 || v[0] != 3 {
		t.Fatalf("Vector() = %v, want [3]", v)
	}
}

func TestVectorValidation(t *testing.T) {
	cases := []struct {
		name               string
		t0, duration, rate float64
	}{
		{"zero duration", 0, 0, 8000},
		{"negative duration", 0, -1, 8000},
		{"zero rate", 0, 1, 0},
		{"negative rate", 0, 1, -44100},
		{"nan start", math.NaN(), 1, 8000},
		{"span below one sample", 0, 0.1, 2},
	}

	for _, tc := range cases {
		if _, err := Vector(tc.t0, tc.duration, tc.rate); !errors.Is(err, core.ErrInvalidArgument) {
			t.Fatalf("%s: error = %v, want ErrInvalidArgument", tc.name, err)
		}
	}
}
