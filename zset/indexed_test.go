package zset_test

import (
	"testing"

	"github.com/katalvlaran/dbsp/zset"
	"github.com/stretchr/testify/assert"
)

// TestIndex_GroupsByKey verifies elements land under their index key with
// their original weights.
func TestIndex_GroupsByKey(t *testing.T) {
	z := zset.FromMap(map[string]int{"ann": 1, "axel": 2, "bob": -1})

	byInitial := zset.Index(z, func(name string) byte { return name[0] })

	assert.Equal(t, 2, byInitial.Len())
	a := byInitial.At('a')
	assert.Equal(t, 1, a.Weight("ann"))
	assert.Equal(t, 2, a.Weight("axel"))
	assert.Equal(t, -1, byInitial.At('b').Weight("bob"))
}

// TestIndex_AbsentKey verifies lookups under an unused key yield the empty
// Z-set rather than failing.
func TestIndex_AbsentKey(t *testing.T) {
	z := zset.FromMap(map[string]int{"ann": 1})
	idx := zset.Index(z, func(name string) byte { return name[0] })

	missing := idx.At('z')
	assert.Equal(t, 0, missing.Len())
	assert.False(t, missing.Contains("ann"))
}

// TestIndexedZSet_Equal compares group structure and per-group weights.
func TestIndexedZSet_Equal(t *testing.T) {
	z := zset.FromMap(map[int]int{1: 1, 2: 1, 11: 3})
	mod10 := func(v int) int { return v % 10 }

	a := zset.Index(z, mod10)
	b := zset.Index(z, mod10)
	assert.True(t, a.Equal(b))

	other := zset.Index(zset.FromMap(map[int]int{1: 1, 2: 1}), mod10)
	assert.False(t, a.Equal(other))
}

// TestIndexedZSet_All iterates every index group exactly once.
func TestIndexedZSet_All(t *testing.T) {
	z := zset.FromMap(map[int]int{1: 1, 11: 2, 5: 1})
	idx := zset.Index(z, func(v int) int { return v % 10 })

	keys := make(map[int]int)
	for key, g := range idx.All() {
		keys[key] = g.Len()
	}
	assert.Equal(t, map[int]int{1: 2, 5: 1}, keys)
}
