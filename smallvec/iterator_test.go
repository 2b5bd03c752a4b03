package smallvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorWalk(t *testing.T) {
	v := mustFromSlice(t, seq(1, 7))

	var got []int

	for it := v.Begin(); it.NotEqual(v.End()); it.Next() {
		got = append(got, it.Get())
	}

	assert.Equal(t, seq(1, 7), got)

	got = got[:0]

	for it := v.End(); it.Greater(v.Begin()); {
		got = append(got, it.Prev().Get())
	}

	assert.Equal(t, []int{7, 6, 5, 4, 3, 2, 1}, got)
}

func TestIteratorArithmetic(t *testing.T) {
	v := mustFromSlice(t, seq(10, 19))
	it := v.Begin()

	assert.Equal(t, 13, it.Add(3).Get())
	assert.Equal(t, 15, it.At(5))
	assert.Equal(t, 0, it.Index(), "binary Add leaves the receiver alone")

	it.AddAssign(4)
	assert.Equal(t, 14, it.Get())
	assert.Equal(t, 12, it.Sub(2).Get())

	it.SubAssign(1)
	assert.Equal(t, 3, it.Index())

	old := it.PostNext()
	assert.Equal(t, 3, old.Index())
	assert.Equal(t, 4, it.Index())

	old = it.PostPrev()
	assert.Equal(t, 4, old.Index())
	assert.Equal(t, 3, it.Index())

	assert.Equal(t, 5, it.Next().Next().Index())

	d, err := v.End().Distance(v.Begin())
	require.NoError(t, err)
	assert.Equal(t, 10, d)

	d, err = v.Begin().Distance(it)
	require.NoError(t, err)
	assert.Equal(t, -5, d)
}

func TestIteratorWrites(t *testing.T) {
	v := mustFromSlice(t, seq(1, 4))
	it := v.Begin().Add(1)

	it.Set(20)
	*it.Add(1).Ptr() = 30

	assert.Equal(t, []int{1, 20, 30, 4}, v.Data())

	IterSwap(v.Begin(), v.End().Sub(1))
	assert.Equal(t, []int{4, 20, 30, 1}, v.Data())
}

func TestIteratorComparisons(t *testing.T) {
	v := mustFromSlice(t, seq(1, 5))
	a, b := v.Begin().Add(1), v.Begin().Add(3)

	assert.True(t, a.Less(b))
	assert.True(t, a.LessOrEqual(b))
	assert.True(t, a.LessOrEqual(a))
	assert.False(t, a.Greater(b))
	assert.True(t, b.Greater(a))
	assert.True(t, b.GreaterOrEqual(b))
	assert.True(t, a.Equal(v.Begin().Add(1)))

	c, err := a.Compare(b)
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = b.Compare(a)
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	a.Swap(&b)
	assert.Equal(t, 3, a.Index())
	assert.Equal(t, 1, b.Index())
}

func TestIteratorsOfDifferentVectors(t *testing.T) {
	v := mustFromSlice(t, seq(1, 5))
	w := mustFromSlice(t, seq(1, 5))

	a, b := v.Begin(), w.Begin()

	assert.False(t, a.Equal(b))
	assert.True(t, a.NotEqual(b))
	assert.False(t, a.Less(b))
	assert.False(t, a.LessOrEqual(b))
	assert.False(t, a.Greater(b))
	assert.False(t, a.GreaterOrEqual(b))

	_, err := a.Compare(b)
	assert.ErrorIs(t, err, ErrIncomparable)

	_, err = a.Distance(b)
	assert.ErrorIs(t, err, ErrIncomparable)

	_, err = v.InsertAt(b, 0)
	assert.ErrorIs(t, err, ErrForeignIterator)

	_, err = v.EraseAt(b)
	assert.ErrorIs(t, err, ErrForeignIterator)
}

func TestSentinelIterator(t *testing.T) {
	var a, b Iterator[int, [5]int]

	v := mustFromSlice(t, seq(1, 3))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(v.Begin()))
	assert.False(t, v.End().Equal(a))
	assert.False(t, a.Valid())

	var ca, cb ConstIterator[int, [5]int]
	assert.True(t, ca.Equal(cb))
	assert.False(t, ca.Equal(v.CBegin()))
}

func TestIteratorSurvivesReallocation(t *testing.T) {
	v := mustFromSlice(t, seq(1, 5))
	it := v.Begin().Add(2)
	end := v.End()

	require.NoError(t, v.PushBack(6))
	require.Equal(t, Heap, v.Mode())

	assert.Equal(t, 3, it.Get(), "iterators address by index")
	assert.True(t, it.Less(end))
	assert.False(t, end.Equal(v.End()))
}

func TestIteratorValid(t *testing.T) {
	v := mustFromSlice(t, seq(1, 3))

	assert.True(t, v.Begin().Valid())
	assert.True(t, v.End().Sub(1).Valid())
	assert.False(t, v.End().Valid())
	assert.False(t, v.Begin().Sub(1).Valid())

	var empty vec5
	assert.False(t, empty.Begin().Valid())
	assert.True(t, empty.Begin().Equal(empty.End()))
}

func TestInsertAtEraseAt(t *testing.T) {
	v := mustFromSlice(t, []int{1, 2, 4, 5, 6})

	it, err := v.InsertAt(v.Begin().Add(2), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, it.Get())
	assert.Equal(t, seq(1, 6), v.Data())

	it, err = v.EraseAt(v.Begin())
	require.NoError(t, err)
	assert.Equal(t, 2, it.Get())

	_, err = v.EraseAt(v.End())
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestConstIterator(t *testing.T) {
	v := mustFromSlice(t, seq(1, 6))

	var got []int

	for it := v.CBegin(); it.Less(v.CEnd()); it.Next() {
		got = append(got, it.Value())
	}

	assert.Equal(t, seq(1, 6), got)

	it := v.Begin().Add(2).Const()
	assert.Equal(t, 3, it.Value())
	assert.Equal(t, 5, it.At(2))
	assert.Equal(t, 4, it.Add(1).Value())
	assert.Equal(t, 2, it.Sub(1).Value())
	assert.True(t, it.Valid())

	old := it.PostNext()
	assert.Equal(t, 2, old.Index())
	it.PostPrev()
	it.AddAssign(2).SubAssign(1)
	assert.Equal(t, 3, it.Index())
	assert.Equal(t, 2, it.Prev().Index())

	d, err := v.CEnd().Distance(it)
	require.NoError(t, err)
	assert.Equal(t, 4, d)

	c, err := it.Compare(v.CBegin())
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	assert.True(t, it.GreaterOrEqual(v.CBegin()))
	assert.True(t, it.LessOrEqual(v.CEnd()))
	assert.False(t, it.Greater(v.CEnd()))
	assert.True(t, it.NotEqual(v.CEnd()))

	end := v.CEnd()
	it.Swap(&end)
	assert.Equal(t, 6, it.Index())
	assert.Equal(t, 2, end.Index())

	other := mustFromSlice(t, seq(1, 6))
	_, err = it.Compare(other.CEnd())
	assert.ErrorIs(t, err, ErrIncomparable)
	_, err = it.Distance(other.CEnd())
	assert.ErrorIs(t, err, ErrIncomparable)
}
