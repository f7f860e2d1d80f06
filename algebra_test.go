package bitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgebraScenario(t *testing.T) {
	a := fromIndices(t, 1, 3, 5)
	b := fromIndices(t, 3, 5, 7)

	got, err := a.Intersection(b).GetRange(0, 8)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false, true, false, true, false, false}, got)

	got, err = a.SymmetricDifference(b).GetRange(0, 8)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false, false, false, false, false, true}, got)

	assert.Equal(t, 4, a.Union(b).Count())
	assert.Equal(t, []int{1}, a.Difference(b).Indices())
	assert.Equal(t, []int{7}, b.Difference(a).Indices())
}

func TestAlgebraLengthMismatch(t *testing.T) {
	// long has 4 words, short has 1.
	newLong := func() *Bitset { return fromIndices(t, 3, 31, 100) }
	newShort := func() *Bitset { return fromIndices(t, 3, 4) }

	tests := []struct {
		name      string
		op        func(a, b *Bitset) *Bitset
		a, b      func() *Bitset
		want      []int
		wantWords int
	}{
		{"Intersection long short", (*Bitset).Intersection, newLong, newShort, []int{3}, 1},
		{"Intersection short long", (*Bitset).Intersection, newShort, newLong, []int{3}, 1},
		{"Union long short", (*Bitset).Union, newLong, newShort, []int{3, 4, 31, 100}, 4},
		{"Union short long", (*Bitset).Union, newShort, newLong, []int{3, 4, 31, 100}, 4},
		{"Difference long short", (*Bitset).Difference, newLong, newShort, []int{31, 100}, 4},
		{"Difference short long", (*Bitset).Difference, newShort, newLong, []int{4}, 1},
		{"SymmetricDifference long short", (*Bitset).SymmetricDifference, newLong, newShort, []int{4, 31, 100}, 4},
		{"SymmetricDifference short long", (*Bitset).SymmetricDifference, newShort, newLong, []int{4, 31, 100}, 4},

		{"InPlaceIntersection long short", (*Bitset).InPlaceIntersection, newLong, newShort, []int{3}, 1},
		{"InPlaceIntersection short long", (*Bitset).InPlaceIntersection, newShort, newLong, []int{3}, 1},
		{"InPlaceUnion long short", (*Bitset).InPlaceUnion, newLong, newShort, []int{3, 4, 31, 100}, 4},
		{"InPlaceUnion short long", (*Bitset).InPlaceUnion, newShort, newLong, []int{3, 4, 31, 100}, 4},
		{"InPlaceDifference long short", (*Bitset).InPlaceDifference, newLong, newShort, []int{31, 100}, 4},
		{"InPlaceDifference short long", (*Bitset).InPlaceDifference, newShort, newLong, []int{4}, 1},
		{"InPlaceSymmetricDifference long short", (*Bitset).InPlaceSymmetricDifference, newLong, newShort, []int{4, 31, 100}, 4},
		{"InPlaceSymmetricDifference short long", (*Bitset).InPlaceSymmetricDifference, newShort, newLong, []int{4, 31, 100}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := tt.a(), tt.b()
			got := tt.op(a, b)

			assert.Equal(t, tt.want, got.Indices())
			assert.Equal(t, tt.wantWords, got.WordLen())
		})
	}
}

func TestConstructiveLeavesOperandsUntouched(t *testing.T) {
	ops := map[string]func(a, b *Bitset) *Bitset{
		"Intersection":        Intersection,
		"Union":               Union,
		"Difference":          Difference,
		"SymmetricDifference": SymmetricDifference,
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			a := fromIndices(t, 1, 2, 64, 200)
			b := fromIndices(t, 2, 3)
			aWords, bWords := a.Words(), b.Words()

			out := op(a, b)
			require.NotSame(t, a, out)
			require.NotSame(t, b, out)

			// Writing to the result must not reach either operand.
			require.NoError(t, out.SetRange(0, 300))

			assert.Equal(t, aWords, a.Words())
			assert.Equal(t, bWords, b.Words())
		})
	}
}

func TestInPlaceReturnsReceiver(t *testing.T) {
	a := fromIndices(t, 1)
	b := fromIndices(t, 2)

	assert.Same(t, a, a.InPlaceUnion(b))
	assert.Same(t, a, a.InPlaceIntersection(b))
	assert.Same(t, a, a.InPlaceDifference(b))
	assert.Same(t, a, a.InPlaceSymmetricDifference(b))

	// Right operand is never modified.
	assert.Equal(t, []int{2}, b.Indices())
}

func TestInPlaceUnionCopiesTail(t *testing.T) {
	a := fromIndices(t, 1)
	b := fromIndices(t, 40, 70, 127)

	a.InPlaceUnion(b)

	assert.Equal(t, b.WordLen(), a.WordLen())
	assert.Equal(t, []int{1, 40, 70, 127}, a.Indices())
}

func TestInPlaceIntersectionShrinks(t *testing.T) {
	a := fromIndices(t, 1, 2, 500)
	b := fromIndices(t, 2)

	a.InPlaceIntersection(b)

	assert.Equal(t, 1, a.WordLen())
	assert.Equal(t, []int{2}, a.Indices())
	assert.Equal(t, len(a.words), cap(a.words), "shrink reallocates the buffer")

	// The shrunk bitset grows again with zeroed high words.
	require.NoError(t, a.Set(100))
	assert.Equal(t, []int{2, 100}, a.Indices())
}

func TestSelfAliasing(t *testing.T) {
	newA := func() *Bitset { return fromIndices(t, 0, 33, 99) }

	a := newA()
	assert.True(t, a.InPlaceUnion(a).Equal(newA()))

	a = newA()
	assert.True(t, a.InPlaceIntersection(a).Equal(newA()))

	a = newA()
	assert.True(t, a.InPlaceDifference(a).IsEmpty())

	a = newA()
	assert.True(t, a.InPlaceSymmetricDifference(a).IsEmpty())

	a = newA()
	assert.True(t, a.Union(a).Equal(a))
	assert.True(t, a.Intersection(a).Equal(a))
	assert.Equal(t, 0, a.Difference(a).Count())
	assert.Equal(t, 0, a.SymmetricDifference(a).Count())
}

func BenchmarkUnion(b *testing.B) {
	x, _ := Alloc(1<<16, true)
	y := New()
	for i := 0; i < 1<<17; i += 3 {
		_ = y.Set(i)
	}

	b.Run("constructive", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = x.Union(y)
		}
	})

	b.Run("in-place", func(b *testing.B) {
		z := x.Clone()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			z.InPlaceUnion(y)
		}
	})
}
