package abelian

// Number enumerates the built-in numeric types that form a group under +.
//
// Floating-point types are included for convenience; note that IEEE
// arithmetic only approximates the group laws, so exact-law consumers
// (property tests, nested circuits) should prefer the integral types.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Sum is the additive group over any Number type: +, unary minus, zero.
// The zero value of Sum is ready to use.
type Sum[N Number] struct{}

// Add returns a + b.
func (Sum[N]) Add(a, b N) N { return a + b }

// Neg returns -a.
func (Sum[N]) Neg(a N) N { return -a }

// Identity returns the zero of N.
func (Sum[N]) Identity() N {
	var zero N

	return zero
}

// Equal reports a == b.
func (Sum[N]) Equal(a, b N) bool { return a == b }

// Ints returns the additive group over int, the group used throughout the
// examples and tests.
func Ints() Group[int] { return Sum[int]{} }
