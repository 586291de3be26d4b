// Package zset implements Z-sets: finite maps from elements to signed
// integer weights, the classic value type of incremental view maintenance.
//
// 🚀 What is a Z-set?
//
//	A relation generalized with multiplicities that may go negative.
//	Weight +2 means "present twice", −1 means "retracted once". Z-sets
//	form an Abelian group under pointwise weight addition, which makes
//	them directly usable as stream elements: a stream of Z-set deltas
//	integrated over time is a changing relation.
//
// ✨ Key pieces:
//   - ZSet       — the weighted set; zero-weight entries are never stored
//   - Addition   — the abelian.Group over Z-sets (pointwise +, negation)
//   - Join       — bilinear nested-loop join with weight multiplication
//   - Index      — group a Z-set under an indexing function (IndexedZSet)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dbsp/zset"
//
//	users := zset.FromMap(map[string]int{"ann": 1, "bob": 1})
//	gone := zset.FromMap(map[string]int{"bob": -1})
//	left := zset.Addition[string]{}.Add(users, gone) // {"ann": 1}
//
// The stream machinery treats Z-sets opaquely through abelian.Group; nothing
// here inspects or depends on stream internals.
package zset
