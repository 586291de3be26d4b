package stream_test

import (
	"testing"

	"github.com/katalvlaran/dbsp/abelian"
	"github.com/katalvlaran/dbsp/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddition_Add verifies elementwise addition of two streams.
func TestAddition_Add(t *testing.T) {
	g := stream.NewAddition(abelian.Ints())
	a := fromValues(1, 2, 3)
	b := fromValues(10, 20, 30)

	out := g.Add(a, b)
	assert.Equal(t, []int{0, 11, 22, 33}, out.ToSlice())
}

// TestAddition_Commutativity verifies add(a,b) == add(b,a) up to the larger
// of the operands' cursors, including uneven operands.
func TestAddition_Commutativity(t *testing.T) {
	g := stream.NewAddition(abelian.Ints())
	a := fromValues(1, -4, 9)
	b := fromValues(7)

	ab := g.Add(a, b)
	ba := g.Add(b, a)
	assert.True(t, g.Equal(ab, ba), "stream addition commutes")
}

// TestAddition_InverseLaw verifies add(a, neg(a)) is the identity stream.
func TestAddition_InverseLaw(t *testing.T) {
	g := stream.NewAddition(abelian.Ints())
	a := fromValues(3, -5, 8)

	sum := g.Add(a, g.Neg(a))
	assert.True(t, sum.IsIdentity(), "every element cancels to the identity")
	assert.True(t, g.Equal(sum, g.Identity()))
}

// TestAddition_Identity verifies the identity element is a fresh empty
// stream and is neutral for addition.
func TestAddition_Identity(t *testing.T) {
	g := stream.NewAddition(abelian.Ints())
	a := fromValues(4, 2)

	out := g.Add(a, g.Identity())
	assert.True(t, g.Equal(a, out), "adding the identity stream changes nothing")
}

// TestAddition_DefaultPropagation verifies "already settled" status flows
// through addition: adding an identity stream yields the other operand's
// default.
func TestAddition_DefaultPropagation(t *testing.T) {
	g := stream.NewAddition(abelian.Ints())
	a := fromValues(3, 5)
	a.SetDefault(9)

	out := g.Add(g.Identity(), a)
	assert.Equal(t, 9, out.Default(), "the settled operand's default carries over")

	out = g.Add(a, g.Identity())
	assert.Equal(t, 9, out.Default())
}

// TestAddition_InnerGroup exposes the underlying element group.
func TestAddition_InnerGroup(t *testing.T) {
	inner := abelian.Ints()
	g := stream.NewAddition(inner)
	assert.Equal(t, inner, g.InnerGroup())
}

// TestAddition_Nested verifies the recursive typing one level up: streams
// of streams under the lifted group, with commutativity intact.
func TestAddition_Nested(t *testing.T) {
	inner := stream.NewAddition(abelian.Ints())
	outerGroup := stream.NewAddition[*stream.Stream[int]](inner)

	oa := stream.New[*stream.Stream[int]](inner)
	oa.Send(fromValues(1, 2))
	ob := stream.New[*stream.Stream[int]](inner)
	ob.Send(fromValues(10, 20))

	sum := outerGroup.Add(oa, ob)
	require.Equal(t, 1, sum.Time())

	got, err := sum.Get(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 11, 22}, got.ToSlice())

	assert.True(t, outerGroup.Equal(outerGroup.Add(oa, ob), outerGroup.Add(ob, oa)))
}
