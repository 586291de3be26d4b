package abelian

// Group captures the Abelian-group capability for a value type T.
//
// Add, Neg and Identity must satisfy the group laws exactly (closure,
// associativity, commutativity, identity, inverses). Equal is the equality
// relation the laws are stated against; the stream machinery also relies on
// it for sparse default-value compression, so it must be a true equivalence,
// not an approximation.
//
// Implementations must be stateless with respect to the values they combine:
// the same Group value may be shared by any number of streams and operators.
type Group[T any] interface {
	// Add combines two elements. Must be commutative and associative.
	Add(a, b T) T

	// Neg returns the additive inverse: Add(a, Neg(a)) == Identity().
	Neg(a T) T

	// Identity returns the neutral element of the group.
	Identity() T

	// Equal reports semantic equality of two elements.
	Equal(a, b T) bool
}
