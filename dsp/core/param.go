package core

import (
	"fmt"
	"math"
)

// Param is a generator or filter parameter: either a single constant that is
// broadcast to every sample, or a per-sample series. The zero value behaves
// as Const(0).
type Param struct {
	series []float64
	value  float64
}

// Const returns a Param that yields value at every sample index.
func Const(value float64) Param {
	return Param{value: value}
}

// PerSample returns a Param backed by one value per sample. The series is
// referenced, not copied; callers must not mutate it while the Param is in
// use.
func PerSample(series []float64) Param {
	return Param{series: series}
}

// IsPerSample reports whether the Param carries a per-sample series.
func (p Param) IsPerSample() bool { return p.series != nil }

// Series returns the backing per-sample series, or nil for a constant
// Param. Block-processing fast paths use it to reach the raw values.
func (p Param) Series() []float64 { return p.series }

// At returns the parameter value at sample index i. Constant Params ignore
// the index; per-sample Params panic on out-of-range indices like any slice
// access, which Validate and ValidateMin exist to rule out up front.
func (p Param) At(i int) float64 {
	if p.series != nil {
		return p.series[i]
	}

	return p.value
}

// Validate checks that a per-sample Param has exactly n values and that all
// values are finite. Constant Params only get the finiteness check.
func (p Param) Validate(name string, n int) error {
	if p.series == nil {
		if !isFinite(p.value) {
			return fmt.Errorf("core: %s must be finite: %v: %w", name, p.value, ErrInvalidArgument)
		}

		return nil
	}

	if len(p.series) != n {
		return fmt.Errorf("core: per-sample %s must have %d values, got %d: %w", name, n, len(p.series), ErrLengthMismatch)
	}

	return p.checkFinite(name)
}

// ValidateMin checks that a per-sample Param has at least n values. The
// recursive filters consume parameters at indices 0..N-2 and accept any
// series that covers that range.
func (p Param) ValidateMin(name string, n int) error {
	if p.series == nil {
		if !isFinite(p.value) {
			return fmt.Errorf("core: %s must be finite: %v: %w", name, p.value, ErrInvalidArgument)
		}

		return nil
	}

	if len(p.series) < n {
		return fmt.Errorf("core: per-sample %s must have at least %d values, got %d: %w", name, n, len(p.series), ErrLengthMismatch)
	}

	return p.checkFinite(name)
}

func (p Param) checkFinite(name string) error {
	for i, v := range p.series {
		if !isFinite(v) {
			return fmt.Errorf("core: per-sample %s has non-finite value at %d: %v: %w", name, i, v, ErrInvalidArgument)
		}
	}

	return nil
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
