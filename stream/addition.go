package stream

import "github.com/katalvlaran/dbsp/abelian"

// Addition makes *Stream[T] itself an Abelian-group value by lifting the
// inner group's operations elementwise: both operands are wrapped in fresh
// handles, a lifted operator is drained to fixpoint, and its output stream
// is the result. This recursive typing is what allows streams of streams at
// arbitrary nesting depth — wrap an Addition in another Addition to go one
// level deeper.
type Addition[T any] struct {
	inner abelian.Group[T]
}

var _ abelian.Group[*Stream[int]] = Addition[int]{}

// NewAddition builds the stream group over the given inner group.
func NewAddition[T any](inner abelian.Group[T]) Addition[T] {
	return Addition[T]{inner: inner}
}

// InnerGroup returns the group the stream elements belong to.
func (g Addition[T]) InnerGroup() abelian.Group[T] { return g.inner }

// mustDrain drains an internal lifted operator. The group laws make these
// drains total: both operands exist, frontiers never go negative, and the
// inner group's operations do not fail. An error here means a broken
// circuit invariant, so it escalates.
func mustDrain[T any](op Operator[T]) *Stream[T] {
	out, err := StepUntilFixpointAndReturn(op)
	if err != nil {
		panic("stream: lifted group operation failed: " + err.Error())
	}

	return out
}

// Add sums two streams elementwise, up to the larger of their cursors (the
// shorter operand is lazily extended with its default). If either operand
// is an identity stream — never departed from its default — the result
// inherits the other operand's default, propagating "already settled"
// status through addition.
func (g Addition[T]) Add(a, b *Stream[T]) *Stream[T] {
	lifted, err := NewLiftedGroupAdd(HandleOf(a), HandleOf(b))
	if err != nil {
		panic("stream: lifted group operation failed: " + err.Error())
	}
	out := mustDrain[T](lifted)
	if a.IsIdentity() {
		out.SetDefault(b.Default())
	}
	if b.IsIdentity() {
		out.SetDefault(a.Default())
	}

	return out
}

// Neg negates a stream elementwise.
func (g Addition[T]) Neg(a *Stream[T]) *Stream[T] {
	lifted, err := NewLiftedGroupNegate(HandleOf(a))
	if err != nil {
		panic("stream: lifted group operation failed: " + err.Error())
	}

	return mustDrain[T](lifted)
}

// Identity returns a fresh empty stream over the inner group.
func (g Addition[T]) Identity() *Stream[T] {
	return New(g.inner)
}

// Equal delegates to Stream.Equal, including the rule that two identity
// streams are equal regardless of cursor.
func (g Addition[T]) Equal(a, b *Stream[T]) bool {
	return a.Equal(b)
}
