package stream

// Delay shifts its input one timestamp forward: after draining,
// output[t] == input[t-1] for t ≥ 1, and output[0] is the group identity
// recorded at construction.
type Delay[T any] struct {
	UnaryOperator[T, T]
}

// NewDelay builds a delay. A nil h defers binding to a later SetInput.
func NewDelay[T any](h *Handle[T]) (*Delay[T], error) {
	d := &Delay[T]{}
	if h != nil {
		if err := d.SetInput(h, nil); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Step appends the input value at the output's current cursor position
// while the output cursor has not passed the input cursor.
func (d *Delay[T]) Step() (bool, error) {
	in, err := d.input()
	if err != nil {
		return false, err
	}
	out, err := d.output()
	if err != nil {
		return false, err
	}

	if out.Time() <= in.Time() {
		v, err := in.Get(out.Time())
		if err != nil {
			return false, err
		}
		out.Send(v)

		return false, nil
	}

	return true, nil
}

// Differentiate computes consecutive differences:
// output[t] == input[t] − input[t-1]. It is the fixed pipeline
// Delay → lifted negate → lifted add, stepped once each per Step.
type Differentiate[T any] struct {
	in    *Handle[T]
	delay *Delay[T]
	neg   *Lift1[T, T]
	diff  *Lift2[T, T, T]
}

// NewDifferentiate wires the differentiation pipeline over h.
func NewDifferentiate[T any](h *Handle[T]) (*Differentiate[T], error) {
	if h == nil {
		return nil, ErrNotInitialized
	}
	delay, err := NewDelay(h)
	if err != nil {
		return nil, err
	}
	neg, err := NewLiftedGroupNegate(delay.OutputHandle())
	if err != nil {
		return nil, err
	}
	diff, err := NewLiftedGroupAdd(h, neg.OutputHandle())
	if err != nil {
		return nil, err
	}

	return &Differentiate[T]{in: h, delay: delay, neg: neg, diff: diff}, nil
}

// Step advances delay, negate and add once each, in pipeline order, and
// reports completion once the output cursor has caught up with the input.
func (d *Differentiate[T]) Step() (bool, error) {
	if _, err := d.delay.Step(); err != nil {
		return false, err
	}
	if _, err := d.neg.Step(); err != nil {
		return false, err
	}
	if _, err := d.diff.Step(); err != nil {
		return false, err
	}

	return d.diff.OutputHandle().Get().Time() == d.in.Get().Time(), nil
}

// OutputHandle exposes the final adder's output.
func (d *Differentiate[T]) OutputHandle() *Handle[T] { return d.diff.OutputHandle() }

// Integrate computes the running sum: output[t] == Σ_{k≤t} input[k].
//
// It is a feedback circuit: a lifted group add whose second input is the
// delayed version of its own output, wired through a handle that resolves
// to the adder's not-yet-populated output stream.
type Integrate[T any] struct {
	in    *Handle[T]
	sum   *Lift2[T, T, T]
	delay *Delay[T]
}

// NewIntegrate wires the integration feedback loop over h.
func NewIntegrate[T any](h *Handle[T]) (*Integrate[T], error) {
	if h == nil {
		return nil, ErrNotInitialized
	}
	sum, err := NewLiftedGroupAdd(h, nil)
	if err != nil {
		return nil, err
	}
	delay, err := NewDelay(sum.OutputHandle())
	if err != nil {
		return nil, err
	}
	sum.SetInputB(delay.OutputHandle())

	return &Integrate[T]{in: h, sum: sum, delay: delay}, nil
}

// Step advances the internal delay then the adder once each, and reports
// completion once the output cursor has caught up with the input.
func (i *Integrate[T]) Step() (bool, error) {
	if _, err := i.delay.Step(); err != nil {
		return false, err
	}
	if _, err := i.sum.Step(); err != nil {
		return false, err
	}

	return i.sum.OutputHandle().Get().Time() == i.in.Get().Time(), nil
}

// OutputHandle exposes the adder's output.
func (i *Integrate[T]) OutputHandle() *Handle[T] { return i.sum.OutputHandle() }

// StepUntilFixpointAndSettle drains an operator to fixpoint and then marks
// its output as settled: the latest value becomes the output's new default,
// so later reads past the cursor repeat it instead of the group identity.
// Meaningful for Delay and Integrate, whose drained tail is their steady
// state; used by the lifted nested-stream operators.
func StepUntilFixpointAndSettle[T any](op Operator[T]) (*Stream[T], error) {
	out, err := StepUntilFixpointAndReturn(op)
	if err != nil {
		return nil, err
	}
	out.SetDefault(out.Latest())

	return out, nil
}

// NewLiftedDelay lifts Delay elementwise over a stream of streams: every
// inner stream is delayed, drained and settled independently.
func NewLiftedDelay[T any](h *Handle[*Stream[T]]) (*Lift1[*Stream[T], *Stream[T]], error) {
	fn := func(s *Stream[T]) (*Stream[T], error) {
		d, err := NewDelay(HandleOf(s))
		if err != nil {
			return nil, err
		}

		return StepUntilFixpointAndSettle[T](d)
	}

	return NewLift1(h, fn, nil)
}

// NewLiftedIntegrate lifts Integrate elementwise over a stream of streams.
func NewLiftedIntegrate[T any](h *Handle[*Stream[T]]) (*Lift1[*Stream[T], *Stream[T]], error) {
	fn := func(s *Stream[T]) (*Stream[T], error) {
		i, err := NewIntegrate(HandleOf(s))
		if err != nil {
			return nil, err
		}

		return StepUntilFixpointAndSettle[T](i)
	}

	return NewLift1(h, fn, nil)
}

// NewLiftedDifferentiate lifts Differentiate elementwise over a stream of
// streams. No settling: differencing does not assume a settled future.
func NewLiftedDifferentiate[T any](h *Handle[*Stream[T]]) (*Lift1[*Stream[T], *Stream[T]], error) {
	fn := func(s *Stream[T]) (*Stream[T], error) {
		d, err := NewDifferentiate(HandleOf(s))
		if err != nil {
			return nil, err
		}

		return StepUntilFixpointAndReturn[T](d)
	}

	return NewLift1(h, fn, nil)
}
