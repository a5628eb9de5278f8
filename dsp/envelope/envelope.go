// Package envelope builds gain trajectories from binary gate signals using
// the classic attack-decay-sustain-release shape.
package envelope

import (
	"fmt"

	"github.com/alxrsngrtn/huh-computer-music/dsp/core"
)

// ADSR builds a gain trajectory over gate, a {0,1}-valued signal whose high
// regions mark held notes. Attack, decay, and release are segment lengths
// in samples; sustain is the held level in [0, 1].
//
// The gate is partitioned into maximal constant runs. A high run plays the
// attack ramp and decay slope, then holds sustain for its remainder. A low
// run plays the release slope down from sustain, then holds zero — except
// the very first run, which is forced entirely to zero when it starts low:
// no release can sound before any attack has occurred. Runs shorter than
// their segment prefix simply truncate it.
//
// The decay slope follows 1 - i*sustain/decay, so it approaches 1-sustain
// rather than landing exactly on sustain; the held level then snaps to
// sustain. This mirrors the generator this package descends from.
//
// The output always has the same length as gate.
func ADSR(gate []float64, attack, decay int, sustain float64, release int) ([]float64, error) {
	if len(gate) == 0 {
		return nil, fmt.Errorf("envelope: gate must not be empty: %w", core.ErrInvalidArgument)
	}

	for i, v := range gate {
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("envelope: gate value at %d must be 0 or 1: %v: %w", i, v, core.ErrInvalidArgument)
		}
	}

	if attack < 0 || decay < 0 || release < 0 {
		return nil, fmt.Errorf("envelope: segment lengths must be >= 0: A=%d D=%d R=%d: %w", attack, decay, release, core.ErrInvalidArgument)
	}

	if sustain < 0 || sustain > 1 {
		return nil, fmt.Errorf("envelope: sustain must be in [0, 1]: %v: %w", sustain, core.ErrInvalidArgument)
	}

	attackDecay := attackDecayShape(attack, decay, sustain)
	rel := releaseShape(release, sustain)

	out := make([]float64, len(gate))

	first := true
	for start := 0; start < len(gate); {
		end := start + 1
		for end < len(gate) && gate[end] == gate[start] {
			end++
		}

		seg := out[start:end]

		switch {
		case gate[start] == 1:
			n := copy(seg, attackDecay)
			core.Fill(seg[n:], sustain)
		case first:
			// Leading silence: no attack has happened, so nothing to
			// release. Zeros already in place.
		default:
			copy(seg, rel)
		}

		first = false
		start = end
	}

	return out, nil
}

func attackDecayShape(attack, decay int, sustain float64) []float64 {
	shape := make([]float64, attack+decay)

	for i := range attack {
		shape[i] = float64(i) / float64(attack)
	}

	for i := range decay {
		shape[attack+i] = 1 - float64(i)*sustain/float64(decay)
	}

	return shape
}

func releaseShape(release int, sustain float64) []float64 {
	shape := make([]float64, release)
	for i := range shape {
		shape[i] = sustain - float64(i)*sustain/float64(release)
	}

	return shape
}
