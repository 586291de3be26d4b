// Package stream implements the computational core of dbsp: time-indexed
// streams of Abelian-group values, the operators that transform them, and
// the fixpoint stepping protocol that drives circuits of such operators.
//
// 🚀 What is a stream here?
//
//	A conceptually infinite sequence indexed by timestamp ≥ 0, stored
//	sparsely: only values differing from the prevailing default are kept
//	(construction establishes the group identity at timestamp 0). Reading
//	past the write cursor lazily extends the stream with the default —
//	absence of future data reads as "still at default". That read has a
//	write side effect and is not bounded internally; bounding input growth
//	is the caller's job.
//
// ✨ Key pieces:
//   - Stream / Handle — the container plus a lazy indirection that lets a
//     circuit reference a stream before it exists (feedback wiring)
//   - UnaryOperator / BinaryOperator — bases that bind inputs and own the
//     output stream, deriving its group from input A unless overridden
//   - Lift1 / Lift2 — elementwise application of a function to one or two
//     streams, advancing one timestamp per Step in lock-step across lines
//   - Delay / Differentiate / Integrate — the linear circuits; Integrate
//     feeds its own delayed output back into its adder
//   - Addition — makes *Stream[T] itself an Abelian-group value, enabling
//     streams of streams and the lifted operators over them
//
// ⚙️ Usage:
//
//	import (
//		"github.com/katalvlaran/dbsp/abelian"
//		"github.com/katalvlaran/dbsp/stream"
//	)
//
//	s := stream.New(abelian.Ints())
//	s.Send(3)
//	s.Send(5)
//	s.Send(2)
//
//	integ, _ := stream.NewIntegrate(stream.HandleOf(s))
//	out, _ := stream.StepUntilFixpointAndReturn[int](integ)
//	// out.ToSlice() == [0 3 8 10]
//
// Concurrency: none. Stepping is single-threaded and cooperative; only the
// operator that owns a stream may write to it, while any number of readers
// may hold handles. A StepUntilFixpoint loop terminates only when every
// line of the operator has caught up, so a malformed feedback circuit can
// loop unboundedly.
//
// Errors:
//
//	ErrNegativeTimestamp - negative timestamp passed to Stream.Get.
//	ErrNotInitialized    - operator stepped or read before its bindings exist.
//	ErrNoOutputGroup     - output group neither supplied nor derivable.
package stream
