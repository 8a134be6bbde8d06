package datagen

import (
	"math"

	"bakery/internal/pkg/errs"
)

// Picker supplies reference entities to the synthesizer.
type Picker[T any] interface {
	Pick() T
	Len() int
}

// UniformPicker draws every element with equal probability.
type UniformPicker[T any] struct {
	items []T
	rng   Random
}

func NewUniformPicker[T any](items []T, rng Random) (*UniformPicker[T], error) {
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("picker items")
	}
	return &UniformPicker[T]{items: append([]T(nil), items...), rng: rng}, nil
}

func (p *UniformPicker[T]) Pick() T  { return p.items[p.rng.IntN(len(p.items))] }
func (p *UniformPicker[T]) Len() int { return len(p.items) }

// PopularityPicker favours the middle of the pool. Which elements are popular
// therefore depends on insertion order.
type PopularityPicker[T any] struct {
	items []T
	rng   Random
}

func NewPopularityPicker[T any](items []T, rng Random) (*PopularityPicker[T], error) {
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("picker items")
	}
	return &PopularityPicker[T]{items: append([]T(nil), items...), rng: rng}, nil
}

func (p *PopularityPicker[T]) Pick() T {
	return p.items[PopularityIndex(p.rng.NormFloat64(), len(p.items))]
}

func (p *PopularityPicker[T]) Len() int { return len(p.items) }

const popularityCutoff = 2.5

// PopularityIndex maps a standard normal sample onto [0, size-1]. The sample is
// clamped to ±2.5, rescaled to [0, 1] and truncated, so the top index is only
// reached by samples at or beyond the cutoff.
func PopularityIndex(sample float64, size int) int {
	g := math.Max(-popularityCutoff, math.Min(popularityCutoff, sample))
	g = (g + popularityCutoff) / (popularityCutoff * 2)
	return int(g * float64(size-1))
}
