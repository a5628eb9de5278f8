// Package interp provides zero-order-hold interpolation over non-uniform
// time grids. It is the reconstruction primitive behind the sample-and-hold
// resampler.
package interp

import (
	"fmt"
	"sort"

	"github.com/alxrsngrtn/huh-computer-music/dsp/core"
)

// ZeroOrder evaluates the piecewise-constant extension of (tSrc, xSrc) at
// every timestamp in tQuery: each query takes the source value at the
// largest tSrc not after it. tSrc must be strictly increasing. Queries
// outside [tSrc[0], tSrc[last]] are an error unless extrapolate is set, in
// which case the nearest edge value holds.
func ZeroOrder(tSrc, xSrc, tQuery []float64, extrapolate bool) ([]float64, error) {
	if len(tSrc) == 0 {
		return nil, fmt.Errorf("interp: source grid must not be empty: %w", core.ErrInvalidArgument)
	}

	if len(tSrc) != len(xSrc) {
		return nil, fmt.Errorf("interp: source grid has %d timestamps for %d values: %w", len(tSrc), len(xSrc), core.ErrLengthMismatch)
	}

	for i := 1; i < len(tSrc); i++ {
		if tSrc[i] <= tSrc[i-1] {
			return nil, fmt.Errorf("interp: source grid must be strictly increasing at %d: %w", i, core.ErrInvalidArgument)
		}
	}

	out := make([]float64, len(tQuery))

	for i, q := range tQuery {
		switch {
		case q < tSrc[0]:
			if !extrapolate {
				return nil, fmt.Errorf("interp: query %v before grid start %v: %w", q, tSrc[0], core.ErrInvalidArgument)
			}

			out[i] = xSrc[0]
		case q > tSrc[len(tSrc)-1]:
			if !extrapolate {
				return nil, fmt.Errorf("interp: query %v past grid end %v: %w", q, tSrc[len(tSrc)-1], core.ErrInvalidArgument)
			}

			out[i] = xSrc[len(xSrc)-1]
		default:
			// First index with tSrc >= q; step back unless it is an exact hit.
			idx := sort.SearchFloat64s(tSrc, q)
			if idx == len(tSrc) || tSrc[idx] != q {
				idx--
			}

			out[i] = xSrc[idx]
		}
	}

	return out, nil
}
