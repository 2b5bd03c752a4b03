package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webbmaffian/go-smallvec/matrix/internal/gonum"
)

func TestNewDense(t *testing.T) {
	m, err := NewDense[int](2, 3)
	require.NoError(t, err)

	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 0, m.At(1, 2))
	assert.True(t, m.data.IsInline())

	big, err := NewDense[int](5, 5)
	require.NoError(t, err)
	assert.False(t, big.data.IsInline())

	_, err = NewDense[int](0, 3)
	assert.ErrorIs(t, err, ErrEmptyMatrix)

	_, err = NewDenseFrom(2, 2, []int{1, 2, 3})
	assert.ErrorIs(t, err, ErrShape)
}

func TestDenseAccess(t *testing.T) {
	m, err := NewDenseFrom(2, 3, []int{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	assert.Equal(t, 6, m.At(1, 2))
	assert.Equal(t, []int{4, 5, 6}, m.RawRow(1))

	m.Set(0, 1, 20)
	assert.Equal(t, 20, m.At(0, 1))

	assert.PanicsWithValue(t, ErrIndexRange, func() { m.At(2, 0) })
	assert.PanicsWithValue(t, ErrIndexRange, func() { m.At(0, 3) })
	assert.PanicsWithValue(t, ErrIndexRange, func() { m.Set(-1, 0, 1) })
}

func TestIdentity(t *testing.T) {
	id, err := Identity[float64](3)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}

			assert.Equal(t, want, id.At(i, j))
		}
	}
}

func TestTranspose(t *testing.T) {
	m, err := NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	tr, err := m.Transpose()
	require.NoError(t, err)

	r, c := tr.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 6.0, tr.At(2, 1))
	assert.Equal(t, 2.0, tr.At(1, 0))

	var view gonum.Matrix = m.T()
	require.NotNil(t, view)

	r, c = view.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, tr.At(2, 1), view.At(2, 1))

	m.Set(0, 2, 30)
	assert.Equal(t, 30.0, view.At(2, 0), "the view shares elements")
	assert.Same(t, m, view.T())

	ints, err := NewDense[int](2, 2)
	require.NoError(t, err)
	assert.Nil(t, ints.T())
}

func TestEqualAddSub(t *testing.T) {
	a, err := NewDenseFrom(2, 2, []int{1, 2, 3, 4})
	require.NoError(t, err)
	b, err := NewDenseFrom(2, 2, []int{10, 20, 30, 40})
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)

	want, err := NewDenseFrom(2, 2, []int{11, 22, 33, 44})
	require.NoError(t, err)
	assert.True(t, sum.Equal(want))

	back, err := sum.Sub(b)
	require.NoError(t, err)
	assert.True(t, back.Equal(a))
	assert.False(t, back.Equal(b))

	wide, err := NewDense[int](2, 3)
	require.NoError(t, err)
	assert.False(t, a.Equal(wide))

	_, err = a.Add(wide)
	assert.ErrorIs(t, err, ErrShape)
}

func TestEqualApprox(t *testing.T) {
	a, err := NewDenseFrom(1, 2, []float64{1, 2})
	require.NoError(t, err)
	b, err := NewDenseFrom(1, 2, []float64{1.0000001, 1.9999999})
	require.NoError(t, err)

	assert.False(t, a.Equal(b))
	assert.True(t, a.EqualApprox(b, 1e-6))
	assert.False(t, a.EqualApprox(b, 1e-9))

	u, err := NewDenseFrom(1, 2, []uint8{3, 9})
	require.NoError(t, err)
	v, err := NewDenseFrom(1, 2, []uint8{5, 8})
	require.NoError(t, err)
	assert.True(t, u.EqualApprox(v, 2))
	assert.False(t, u.EqualApprox(v, 1))
}
