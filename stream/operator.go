package stream

import "github.com/katalvlaran/dbsp/abelian"

// Operator is one node of a circuit: it consumes input stream handles and
// owns an output stream exposed through OutputHandle.
//
// Step performs at most one unit of work. It returns true when the operator
// has reached its fixpoint for the currently available input (no work was
// performed), false when exactly one unit of output was produced. Any error
// from a lifted function or an out-of-range read propagates unchanged.
type Operator[T any] interface {
	Step() (done bool, err error)
	OutputHandle() *Handle[T]
}

// StepUntilFixpoint drains an operator: it steps until Step reports true.
// Termination is the caller's responsibility — a malformed feedback circuit
// or an input that never stops growing loops unboundedly.
func StepUntilFixpoint[T any](op Operator[T]) error {
	for {
		done, err := op.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// StepUntilFixpointAndReturn drains an operator and resolves its output.
func StepUntilFixpointAndReturn[T any](op Operator[T]) (*Stream[T], error) {
	if err := StepUntilFixpoint(op); err != nil {
		return nil, err
	}

	return op.OutputHandle().Get(), nil
}

// deriveGroup performs the checked input-group-to-output-group conversion
// used when no explicit output group is supplied at bind time. It succeeds
// exactly when the input and output value types coincide.
func deriveGroup[T, R any](in abelian.Group[T]) (abelian.Group[R], error) {
	g, ok := any(in).(abelian.Group[R])
	if !ok {
		return nil, ErrNoOutputGroup
	}

	return g, nil
}

// UnaryOperator is the base for operators with one input line. It binds the
// input handle and creates the owned output stream at bind time, deriving
// the output group from the input's group unless an override is supplied.
type UnaryOperator[T, R any] struct {
	in  *Handle[T]
	out *Handle[R]
}

// SetInput binds the input handle and creates the output stream. The handle
// must resolve at bind time (the output group is read from its stream when
// outGroup is nil). Passing a nil outGroup with differing input/output value
// types fails with ErrNoOutputGroup.
func (u *UnaryOperator[T, R]) SetInput(h *Handle[T], outGroup abelian.Group[R]) error {
	if h == nil {
		return ErrNotInitialized
	}
	u.in = h
	if outGroup == nil {
		g, err := deriveGroup[T, R](h.Get().Group())
		if err != nil {
			return err
		}
		outGroup = g
	}
	u.out = HandleOf(New(outGroup))

	return nil
}

// OutputHandle returns the handle to the owned output stream, or nil before
// SetInput has run.
func (u *UnaryOperator[T, R]) OutputHandle() *Handle[R] { return u.out }

// input resolves the bound input stream.
func (u *UnaryOperator[T, R]) input() (*Stream[T], error) {
	if u.in == nil {
		return nil, ErrNotInitialized
	}
	s := u.in.Get()
	if s == nil {
		return nil, ErrNotInitialized
	}

	return s, nil
}

// output resolves the owned output stream.
func (u *UnaryOperator[T, R]) output() (*Stream[R], error) {
	if u.out == nil {
		return nil, ErrNotInitialized
	}

	return u.out.Get(), nil
}

// BinaryOperator is the base for operators with two independently-settable
// input lines. Binding input A creates the output stream; input B may be
// bound later, which is what feedback circuits rely on.
type BinaryOperator[T, R, S any] struct {
	inA *Handle[T]
	inB *Handle[R]
	out *Handle[S]
}

// SetInputA binds the first input and creates the output stream, deriving
// the output group from input A's group unless outGroup is supplied.
func (b *BinaryOperator[T, R, S]) SetInputA(h *Handle[T], outGroup abelian.Group[S]) error {
	if h == nil {
		return ErrNotInitialized
	}
	b.inA = h
	if outGroup == nil {
		g, err := deriveGroup[T, S](h.Get().Group())
		if err != nil {
			return err
		}
		outGroup = g
	}
	b.out = HandleOf(New(outGroup))

	return nil
}

// SetInputB binds the second input. The handle may be deferred: it only has
// to resolve by the time Step runs.
func (b *BinaryOperator[T, R, S]) SetInputB(h *Handle[R]) {
	b.inB = h
}

// OutputHandle returns the handle to the owned output stream, or nil before
// SetInputA has run.
func (b *BinaryOperator[T, R, S]) OutputHandle() *Handle[S] { return b.out }

// inputA resolves the first input stream.
func (b *BinaryOperator[T, R, S]) inputA() (*Stream[T], error) {
	if b.inA == nil {
		return nil, ErrNotInitialized
	}
	s := b.inA.Get()
	if s == nil {
		return nil, ErrNotInitialized
	}

	return s, nil
}

// inputB resolves the second input stream.
func (b *BinaryOperator[T, R, S]) inputB() (*Stream[R], error) {
	if b.inB == nil {
		return nil, ErrNotInitialized
	}
	s := b.inB.Get()
	if s == nil {
		return nil, ErrNotInitialized
	}

	return s, nil
}

// output resolves the owned output stream.
func (b *BinaryOperator[T, R, S]) output() (*Stream[S], error) {
	if b.out == nil {
		return nil, ErrNotInitialized
	}

	return b.out.Get(), nil
}
