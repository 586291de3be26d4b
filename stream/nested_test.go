package stream_test

import (
	"testing"

	"github.com/katalvlaran/dbsp/abelian"
	"github.com/katalvlaran/dbsp/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newOuter builds a stream of int streams and sends the given inner streams.
func newOuter(inner ...*stream.Stream[int]) *stream.Stream[*stream.Stream[int]] {
	outer := stream.New[*stream.Stream[int]](stream.NewAddition(abelian.Ints()))
	for _, s := range inner {
		outer.Send(s)
	}

	return outer
}

// innerAt reads, and fails the test on error, the inner stream at ts.
func innerAt(t *testing.T, s *stream.Stream[*stream.Stream[int]], ts int) *stream.Stream[int] {
	t.Helper()
	v, err := s.Get(ts)
	require.NoError(t, err)

	return v
}

// TestLiftedIntegrate verifies each inner stream is integrated and settled
// independently: its drained tail becomes its new default.
func TestLiftedIntegrate(t *testing.T) {
	outer := newOuter(fromValues(1, 2, 3), fromValues(10, 10))

	lifted, err := stream.NewLiftedIntegrate(stream.HandleOf(outer))
	require.NoError(t, err)

	out, err := stream.StepUntilFixpointAndReturn[*stream.Stream[int]](lifted)
	require.NoError(t, err)
	require.Equal(t, outer.Time(), out.Time())

	first := innerAt(t, out, 1)
	assert.Equal(t, []int{0, 1, 3, 6}, first.ToSlice())
	assert.Equal(t, 6, first.Default(), "integrated inner streams are settled")

	second := innerAt(t, out, 2)
	assert.Equal(t, []int{0, 10, 20}, second.ToSlice())
	assert.Equal(t, 20, second.Default())
}

// TestLiftedDelay verifies each inner stream is delayed and settled.
func TestLiftedDelay(t *testing.T) {
	outer := newOuter(fromValues(3, 5))

	lifted, err := stream.NewLiftedDelay(stream.HandleOf(outer))
	require.NoError(t, err)

	out, err := stream.StepUntilFixpointAndReturn[*stream.Stream[int]](lifted)
	require.NoError(t, err)

	delayed := innerAt(t, out, 1)
	assert.Equal(t, []int{0, 0, 3, 5}, delayed.ToSlice())
	assert.Equal(t, 5, delayed.Default(), "delayed inner streams are settled")
}

// TestLiftedDifferentiate verifies each inner stream is differentiated,
// without settling: differencing does not assume a settled future.
func TestLiftedDifferentiate(t *testing.T) {
	outer := newOuter(fromValues(3, 8, 10))

	lifted, err := stream.NewLiftedDifferentiate(stream.HandleOf(outer))
	require.NoError(t, err)

	out, err := stream.StepUntilFixpointAndReturn[*stream.Stream[int]](lifted)
	require.NoError(t, err)

	diffed := innerAt(t, out, 1)
	assert.Equal(t, []int{0, 3, 5, 2}, diffed.ToSlice())
	assert.Equal(t, 0, diffed.Default(), "no settling for differentiation")
}

// TestLifted_RoundTrip verifies the nested round-trip: lifted integration
// followed by lifted differentiation reproduces each inner stream.
func TestLifted_RoundTrip(t *testing.T) {
	in := fromValues(2, -1, 4)
	outer := newOuter(in)

	integ, err := stream.NewLiftedIntegrate(stream.HandleOf(outer))
	require.NoError(t, err)
	_, err = stream.StepUntilFixpointAndReturn[*stream.Stream[int]](integ)
	require.NoError(t, err)

	diff, err := stream.NewLiftedDifferentiate(integ.OutputHandle())
	require.NoError(t, err)
	out, err := stream.StepUntilFixpointAndReturn[*stream.Stream[int]](diff)
	require.NoError(t, err)

	got := innerAt(t, out, 1)
	assert.True(t, in.Equal(got), "lifted differentiation undoes lifted integration")
}
