package stream

import "github.com/katalvlaran/dbsp/abelian"

// Fn1 is a unary function lifted over a stream. Errors propagate unchanged
// to whoever drives the lifting operator.
type Fn1[T, R any] func(T) (R, error)

// Fn2 is a binary function lifted over two streams.
type Fn2[T, R, S any] func(T, R) (S, error)

// Lift1 applies a unary function elementwise to a stream.
//
// The operator owns a frontier: the next timestamp not yet consumed from
// the input line, tracked independently of the output's write cursor. Each
// Step advances by exactly one timestamp, which lets circuits built from
// several lifting operators be driven toward a joint fixpoint by stepping
// each of them once per outer round.
type Lift1[T, R any] struct {
	UnaryOperator[T, R]
	fn       Fn1[T, R]
	frontier int
}

// NewLift1 builds the operator and, when h is non-nil, binds it. A nil h
// defers binding to a later SetInput. outGroup overrides the output group;
// nil derives it from the input (valid when T and R coincide).
func NewLift1[T, R any](h *Handle[T], fn Fn1[T, R], outGroup abelian.Group[R]) (*Lift1[T, R], error) {
	l := &Lift1[T, R]{fn: fn}
	if h != nil {
		if err := l.SetInput(h, outGroup); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Step consumes one timestamp from the input line, if any line is behind.
//
// The join (max) and meet (min) over {input cursor, output cursor, frontier}
// coincide exactly when all lines are level — the fixpoint for currently
// available input. Otherwise the input is read at frontier+1 (lazily
// extending it if needed), the function applied, and the result appended.
func (l *Lift1[T, R]) Step() (bool, error) {
	in, err := l.input()
	if err != nil {
		return false, err
	}
	out, err := l.output()
	if err != nil {
		return false, err
	}

	join := max(in.Time(), out.Time(), l.frontier)
	meet := min(in.Time(), out.Time(), l.frontier)
	if join == meet {
		return true, nil
	}

	next := l.frontier + 1
	v, err := in.Get(next)
	if err != nil {
		return false, err
	}
	r, err := l.fn(v)
	if err != nil {
		return false, err
	}
	out.Send(r)
	l.frontier = next

	return false, nil
}

// Lift2 applies a binary function elementwise to two streams, with one
// frontier per input line. Both frontiers advance in lock-step: every Step
// consumes exactly one timestamp from each line.
type Lift2[T, R, S any] struct {
	BinaryOperator[T, R, S]
	fn        Fn2[T, R, S]
	frontierA int
	frontierB int
}

// NewLift2 builds the operator, binding input A (and input B when non-nil).
// A nil b defers the second binding — the feedback case. outGroup overrides
// the output group; nil derives it from input A.
func NewLift2[T, R, S any](a *Handle[T], b *Handle[R], fn Fn2[T, R, S], outGroup abelian.Group[S]) (*Lift2[T, R, S], error) {
	l := &Lift2[T, R, S]{fn: fn}
	if err := l.SetInputA(a, outGroup); err != nil {
		return nil, err
	}
	if b != nil {
		l.SetInputB(b)
	}

	return l, nil
}

// Step consumes one timestamp from each input line, if any line is behind.
// Join and meet range over both input cursors, the output cursor and both
// frontiers; they coincide exactly at the fixpoint.
func (l *Lift2[T, R, S]) Step() (bool, error) {
	a, err := l.inputA()
	if err != nil {
		return false, err
	}
	b, err := l.inputB()
	if err != nil {
		return false, err
	}
	out, err := l.output()
	if err != nil {
		return false, err
	}

	join := max(a.Time(), b.Time(), out.Time(), l.frontierA, l.frontierB)
	meet := min(a.Time(), b.Time(), out.Time(), l.frontierA, l.frontierB)
	if join == meet {
		return true, nil
	}

	nextA, nextB := l.frontierA+1, l.frontierB+1
	va, err := a.Get(nextA)
	if err != nil {
		return false, err
	}
	vb, err := b.Get(nextB)
	if err != nil {
		return false, err
	}
	v, err := l.fn(va, vb)
	if err != nil {
		return false, err
	}
	out.Send(v)
	l.frontierA, l.frontierB = nextA, nextB

	return false, nil
}

// NewLiftedGroupAdd lifts the input group's Add over two streams. With a
// nil b the second line is left for a later SetInputB (feedback wiring).
// The group is resolved through the handle on every application, so the
// lift stays valid even if the handle's target is swapped.
func NewLiftedGroupAdd[T any](a, b *Handle[T]) (*Lift2[T, T, T], error) {
	if a == nil {
		return nil, ErrNotInitialized
	}
	fn := func(x, y T) (T, error) {
		return a.Get().Group().Add(x, y), nil
	}

	return NewLift2(a, b, fn, nil)
}

// NewLiftedGroupNegate lifts the input group's Neg over a stream.
func NewLiftedGroupNegate[T any](h *Handle[T]) (*Lift1[T, T], error) {
	if h == nil {
		return nil, ErrNotInitialized
	}
	fn := func(x T) (T, error) {
		return h.Get().Group().Neg(x), nil
	}

	return NewLift1(h, fn, nil)
}
