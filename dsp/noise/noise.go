// Package noise provides seeded stochastic signal generators: uniform white
// noise and a cumulative brown (Wiener-like) process.
package noise

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/alxrsngrtn/huh-computer-music/dsp/core"
)

const defaultSeed = 1

// Generator creates deterministic noise signals from a fixed seed. Each call
// derives a fresh random stream from the seed, so repeated calls with equal
// arguments produce equal output and a Generator may be shared across
// goroutines.
type Generator struct {
	seed uint64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// New creates a configured noise generator.
func New(opts ...Option) *Generator {
	g := &Generator{seed: defaultSeed}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// Seed returns the generator seed.
func (g *Generator) Seed() uint64 { return g.seed }

// White returns n independent samples drawn uniformly from [-1, 1).
func (g *Generator) White(n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("noise: sample count must be > 0: %d: %w", n, core.ErrInvalidArgument)
	}

	rng := rand.New(rand.NewPCG(g.seed, 0))

	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}

	return out, nil
}

// Brown returns a cumulative-sum noise signal over the time vector t.
//
// x[0] is 0. For n >= 1 the increment is drawn from Normal(0, sqrt(t[n])):
// the standard deviation grows with the absolute time value at each index,
// not with a fixed step, so the process spreads faster the further the time
// vector sits from zero. This matches the generator this package descends
// from and is kept deliberately.
func (g *Generator) Brown(t []float64) ([]float64, error) {
	if len(t) == 0 {
		return nil, fmt.Errorf("noise: time vector must not be empty: %w", core.ErrInvalidArgument)
	}

	for i, ti := range t {
		if math.IsNaN(ti) || math.IsInf(ti, 0) || ti < 0 {
			return nil, fmt.Errorf("noise: time value at %d must be finite and >= 0: %v: %w", i, ti, core.ErrInvalidArgument)
		}
	}

	src := rand.NewPCG(g.seed, 0)

	out := make([]float64, len(t))
	for n := 1; n < len(t); n++ {
		step := distuv.Normal{Mu: 0, Sigma: math.Sqrt(t[n]), Src: src}
		out[n] = out[n-1] + step.Rand()
	}

	return out, nil
}
