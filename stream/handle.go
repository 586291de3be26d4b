package stream

// Handle is a lazy, zero-state indirection to a Stream: a nullary accessor
// resolved on every Get. Operator graphs wire handles rather than streams so
// that a handle can be created before its target stream exists, which is
// what makes feedback circuits (Integrate) expressible.
type Handle[T any] struct {
	ref func() *Stream[T]
}

// NewHandle wraps an accessor. The accessor may legitimately return a stream
// that did not exist when the handle was created.
func NewHandle[T any](ref func() *Stream[T]) *Handle[T] {
	return &Handle[T]{ref: ref}
}

// HandleOf wraps an already-materialized stream.
func HandleOf[T any](s *Stream[T]) *Handle[T] {
	return &Handle[T]{ref: func() *Stream[T] { return s }}
}

// Get resolves the handle to its stream.
func (h *Handle[T]) Get() *Stream[T] { return h.ref() }
