// Package abelian declares the Abelian-group capability that every value
// type flowing through a dbsp stream must provide, plus ready-made groups
// for common numeric types.
//
// 🚀 What is an Abelian group here?
//
//	A value type T together with an operation set {Add, Neg, Identity}
//	satisfying, exactly (no tolerance for approximate equality):
//	  • Closure:       Add(a, b) is a T
//	  • Associativity: Add(Add(a, b), c) == Add(a, Add(b, c))
//	  • Commutativity: Add(a, b) == Add(b, a)
//	  • Identity:      Add(a, Identity()) == a
//	  • Inverses:      Add(a, Neg(a)) == Identity()
//
// The Group interface additionally carries Equal, the equality the stream
// machinery uses for default-value compression and stream comparison.
// For plain comparable types Equal is ==; for structured values (Z-sets,
// nested streams) it is the type's own semantic equality.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dbsp/abelian"
//
//	g := abelian.Ints()           // Group[int] under +, -, 0
//	sum := g.Add(3, 5)            // 8
//	zero := g.Add(sum, g.Neg(sum))
//
// Implementations for richer types live next to those types: see
// stream.Addition (streams as group values) and zset.Addition.
package abelian
