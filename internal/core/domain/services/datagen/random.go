package datagen

import "math/rand/v2"

// DefaultSeed is the seed used when none is configured.
const DefaultSeed uint64 = 1

// Random is the draw surface shared by every generator component.
type Random interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
	Bool() bool
	// NormFloat64 returns a standard normal sample.
	NormFloat64() float64
}

// Source is a Random backed by a PCG generator.
type Source struct {
	rng *rand.Rand
}

var _ Random = (*Source)(nil)

func NewSource(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (s *Source) Float64() float64     { return s.rng.Float64() }
func (s *Source) IntN(n int) int       { return s.rng.IntN(n) }
func (s *Source) Bool() bool           { return s.rng.IntN(2) == 0 }
func (s *Source) NormFloat64() float64 { return s.rng.NormFloat64() }
