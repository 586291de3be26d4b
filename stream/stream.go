package stream

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/dbsp/abelian"
)

// defaultChange is one entry of a stream's default-value timeline:
// from timestamp at onward, value is the prevailing default.
type defaultChange[T any] struct {
	at    int
	value T
}

// Stream is a time-indexed sequence of values drawn from an Abelian group.
//
// Conceptually the sequence is infinite; concretely only values that differ
// from the prevailing default are stored (sparse compression), together with
// a monotonic write cursor and an ordered timeline of default changes.
// Construction records the group identity at timestamp 0, so a fresh stream
// already has cursor 0.
//
// Past timestamps are immutable: the cursor only advances, via Send or via
// the lazy extension performed by Get (see Get).
type Stream[T any] struct {
	group    abelian.Group[T]
	time     int                // write cursor: greatest timestamp written so far
	inner    map[int]T          // explicit values, only where != prevailing default
	identity bool               // true until the first non-default Send
	def      T                  // compression default for subsequent sends
	changes  []defaultChange[T] // default timeline, ascending; seeded with {0, identity}
}

// New creates a Stream over the given group and performs the construction
// send of the group identity, leaving the cursor at timestamp 0.
func New[T any](group abelian.Group[T]) *Stream[T] {
	s := &Stream[T]{
		group:    group,
		time:     -1,
		inner:    make(map[int]T),
		identity: true,
		def:      group.Identity(),
		changes:  []defaultChange[T]{{at: 0, value: group.Identity()}},
	}
	s.Send(group.Identity())

	return s
}

// Send appends an element at cursor+1 and advances the cursor.
// Values equal to the current default are not stored.
func (s *Stream[T]) Send(element T) {
	if !s.group.Equal(element, s.def) {
		s.inner[s.time+1] = element
		s.identity = false
	}
	s.time++
}

// Group returns the Abelian group this stream's values belong to.
func (s *Stream[T]) Group() abelian.Group[T] { return s.group }

// Time returns the current write cursor (the greatest timestamp written).
func (s *Stream[T]) Time() int { return s.time }

// IsIdentity reports whether the stream has never received a non-default
// value. Two identity streams compare equal regardless of their cursors.
func (s *Stream[T]) IsIdentity() bool { return s.identity }

// Default returns the current compression default.
func (s *Stream[T]) Default() T { return s.def }

// SetDefault designates v as the prevailing default from cursor+1 onward:
// it is recorded on the default timeline and becomes the compression default
// for subsequent sends. Past values are unaffected. Used after an operator
// has run to fixpoint, to mark the settled tail of its output.
func (s *Stream[T]) SetDefault(v T) {
	s.def = v
	at := s.time + 1
	if n := len(s.changes); s.changes[n-1].at == at {
		s.changes[n-1].value = v

		return
	}
	s.changes = append(s.changes, defaultChange[T]{at: at, value: v})
}

// defaultAt resolves the default in force at timestamp t: the timeline entry
// with the greatest recorded timestamp ≤ t, falling back to the
// construction-time entry at 0.
func (s *Stream[T]) defaultAt(t int) T {
	v := s.changes[0].value
	for _, c := range s.changes {
		if c.at > t {
			break
		}
		v = c.value
	}

	return v
}

// Get returns the element at timestamp t.
//
// Negative t fails with ErrNegativeTimestamp. For t ≤ Time() the explicit
// value is returned if one was recorded, otherwise the default in force at t.
// For t > Time() the stream is lazily extended by sending the current
// default until the cursor reaches t — a deliberate side-effecting read:
// absence of future data reads as "still at default".
func (s *Stream[T]) Get(t int) (T, error) {
	if t < 0 {
		var zero T

		return zero, fmt.Errorf("%w: %d", ErrNegativeTimestamp, t)
	}
	for t > s.time {
		s.Send(s.def)
	}
	if v, ok := s.inner[t]; ok {
		return v, nil
	}

	return s.defaultAt(t), nil
}

// Latest returns the element at the current cursor.
func (s *Stream[T]) Latest() T {
	v, _ := s.Get(s.time) // cursor is never negative
	return v
}

// All iterates timestamp/value pairs over [0, Time()] as of the moment the
// iteration starts. Restartable; in-range iteration has no side effect.
func (s *Stream[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		limit := s.time
		for t := 0; t <= limit; t++ {
			v, _ := s.Get(t) // in range, cannot fail
			if !yield(t, v) {
				return
			}
		}
	}
}

// ToSlice materializes the written range [0, Time()] as a slice.
func (s *Stream[T]) ToSlice() []T {
	out := make([]T, 0, s.time+1)
	for _, v := range s.All() {
		out = append(out, v)
	}

	return out
}

// Equal compares two streams over all written timestamps. Two streams that
// have each never received a non-default value are equal unconditionally;
// otherwise the cursors must match and the explicit values must match
// exactly under the group's equality.
func (s *Stream[T]) Equal(other *Stream[T]) bool {
	if other == nil {
		return false
	}
	if s.identity && other.identity {
		return true
	}
	if s.time != other.time {
		return false
	}
	if len(s.inner) != len(other.inner) {
		return false
	}
	for t, v := range s.inner {
		w, ok := other.inner[t]
		if !ok || !s.group.Equal(v, w) {
			return false
		}
	}

	return true
}

// String renders the written range, e.g. "[0 3 8 10]".
func (s *Stream[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for t, v := range s.All() {
		if t > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte(']')

	return b.String()
}
