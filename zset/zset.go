package zset

import (
	"iter"

	"github.com/katalvlaran/dbsp/abelian"
)

// ZSet maps elements to signed integer weights. Entries with weight zero
// are never stored; an element is a member iff its weight is non-zero.
// The zero value is the empty Z-set and is ready to use.
type ZSet[T comparable] struct {
	weights map[T]int
}

// New returns an empty Z-set.
func New[T comparable]() ZSet[T] {
	return ZSet[T]{weights: make(map[T]int)}
}

// FromMap builds a Z-set from an element→weight map, skipping zero weights.
// The map is copied; the caller keeps ownership of its argument.
func FromMap[T comparable](weights map[T]int) ZSet[T] {
	z := ZSet[T]{weights: make(map[T]int, len(weights))}
	for v, w := range weights {
		if w != 0 {
			z.weights[v] = w
		}
	}

	return z
}

// Weight returns the weight of v, zero when absent.
func (z ZSet[T]) Weight(v T) int { return z.weights[v] }

// Contains reports whether v has non-zero weight.
func (z ZSet[T]) Contains(v T) bool { return z.weights[v] != 0 }

// Len returns the number of elements with non-zero weight.
func (z ZSet[T]) Len() int { return len(z.weights) }

// All iterates element/weight pairs in unspecified order.
func (z ZSet[T]) All() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		for v, w := range z.weights {
			if !yield(v, w) {
				return
			}
		}
	}
}

// Equal reports whether both Z-sets assign the same weight to every element.
func (z ZSet[T]) Equal(other ZSet[T]) bool {
	if len(z.weights) != len(other.weights) {
		return false
	}
	for v, w := range z.weights {
		if other.weights[v] != w {
			return false
		}
	}

	return true
}

// Addition is the Abelian group over Z-sets: pointwise weight addition,
// pointwise negation, empty identity. The zero value is ready to use.
type Addition[T comparable] struct{}

var _ abelian.Group[ZSet[string]] = Addition[string]{}

// Add sums weights pointwise, dropping entries that cancel to zero.
func (Addition[T]) Add(a, b ZSet[T]) ZSet[T] {
	out := ZSet[T]{weights: make(map[T]int, len(a.weights)+len(b.weights))}
	for v, w := range a.weights {
		out.weights[v] = w
	}
	for v, w := range b.weights {
		sum := out.weights[v] + w
		if sum == 0 {
			delete(out.weights, v)
		} else {
			out.weights[v] = sum
		}
	}

	return out
}

// Neg flips the sign of every weight.
func (Addition[T]) Neg(a ZSet[T]) ZSet[T] {
	out := ZSet[T]{weights: make(map[T]int, len(a.weights))}
	for v, w := range a.weights {
		out.weights[v] = -w
	}

	return out
}

// Identity returns the empty Z-set.
func (Addition[T]) Identity() ZSet[T] { return New[T]() }

// Equal delegates to ZSet.Equal.
func (Addition[T]) Equal(a, b ZSet[T]) bool { return a.Equal(b) }
