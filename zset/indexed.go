package zset

import "iter"

// Indexer maps an element to its index key.
type Indexer[T, I any] func(T) I

// IndexedZSet groups a Z-set's elements under an indexing function: one
// Z-set per index key, holding the elements that mapped to it with their
// original weights. The zero value is the empty indexed Z-set.
type IndexedZSet[I, T comparable] struct {
	groups map[I]ZSet[T]
}

// Index builds an IndexedZSet by grouping z under idx.
func Index[I, T comparable](z ZSet[T], idx Indexer[T, I]) IndexedZSet[I, T] {
	out := IndexedZSet[I, T]{groups: make(map[I]ZSet[T])}
	for v, w := range z.weights {
		key := idx(v)
		g, ok := out.groups[key]
		if !ok {
			g = New[T]()
			out.groups[key] = g
		}
		g.weights[v] = w
	}

	return out
}

// At returns the Z-set grouped under key, empty when the key is absent.
func (iz IndexedZSet[I, T]) At(key I) ZSet[T] {
	if g, ok := iz.groups[key]; ok {
		return g
	}

	return ZSet[T]{}
}

// Len returns the number of distinct index keys.
func (iz IndexedZSet[I, T]) Len() int { return len(iz.groups) }

// All iterates key/group pairs in unspecified order.
func (iz IndexedZSet[I, T]) All() iter.Seq2[I, ZSet[T]] {
	return func(yield func(I, ZSet[T]) bool) {
		for key, g := range iz.groups {
			if !yield(key, g) {
				return
			}
		}
	}
}

// Equal reports whether both indexed Z-sets hold equal groups under the
// same keys.
func (iz IndexedZSet[I, T]) Equal(other IndexedZSet[I, T]) bool {
	if len(iz.groups) != len(other.groups) {
		return false
	}
	for key, g := range iz.groups {
		og, ok := other.groups[key]
		if !ok || !g.Equal(og) {
			return false
		}
	}

	return true
}
