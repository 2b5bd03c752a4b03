package matrix

import (
	"github.com/webbmaffian/go-smallvec/matrix/internal/gonum"
	"github.com/webbmaffian/go-smallvec/smallvec"
)

var (
	_ gonum.Symmetric = (*SymMatrix[float64])(nil)
	_ gonum.Mutable   = (*SymMatrix[float64])(nil)
)

// SymMatrix is an n x n symmetric matrix storing only its upper triangle,
// diagonal included.
type SymMatrix[T Number] struct {
	data smallvec.Vector[T, [16]T]
	size int
}

// NewSym returns an n x n symmetric matrix of zeros.
func NewSym[T Number](n int) (m *SymMatrix[T], err error) {
	if n <= 0 {
		return nil, ErrEmptyMatrix
	}

	m = &SymMatrix[T]{
		size: n,
	}

	if err = m.data.Resize(packedLen(n)); err != nil {
		return nil, err
	}

	return
}

// NewSymFrom returns a symmetric matrix over a copy of packed, the upper
// triangle in row-major order. The size is derived from len(packed).
func NewSymFrom[T Number](packed []T) (m *SymMatrix[T], err error) {
	n := countFromHandshakes(len(packed)) - 1

	if n <= 0 || packedLen(n) != len(packed) {
		return nil, ErrShape
	}

	m = &SymMatrix[T]{
		size: n,
	}

	if err = m.data.AssignSlice(packed); err != nil {
		return nil, err
	}

	return
}

// Dims returns the dimensions (rows + columns) of a Matrix.
func (m *SymMatrix[T]) Dims() (r, c int) {
	return m.size, m.size
}

// SymmetricDim returns the number of rows/columns in the matrix.
func (m *SymMatrix[T]) SymmetricDim() int {
	return m.size
}

// T returns the matrix itself, which is its own transpose. Only float64
// matrices are gonum matrices; for other element types T returns nil.
func (m *SymMatrix[T]) T() gonum.Matrix {
	var self any = m

	mat, _ := self.(gonum.Matrix)
	return mat
}

// At returns the value of a matrix element at row i, column j.
func (m *SymMatrix[T]) At(i, j int) T {
	return m.data.Index(m.pos(i, j))
}

// Set alters the matrix element at row i, column j, and with it the element at
// row j, column i.
func (m *SymMatrix[T]) Set(i, j int, val T) {
	m.data.SetUnchecked(m.pos(i, j), val)
}

// Get returns a pointer to the element at row i, column j.
func (m *SymMatrix[T]) Get(i, j int) *T {
	return m.data.Ptr(m.pos(i, j))
}

// Packed returns the upper triangle in row-major order, backed by the matrix.
func (m *SymMatrix[T]) Packed() []T {
	return m.data.Data()
}

// Dense returns the full n x n matrix.
func (m *SymMatrix[T]) Dense() (d *Dense[T], err error) {
	if d, err = NewDense[T](m.size, m.size); err != nil {
		return
	}

	for i := 0; i < m.size; i++ {
		for j := 0; j < m.size; j++ {
			d.Set(i, j, m.At(i, j))
		}
	}

	return
}

func (m *SymMatrix[T]) Free() {
	m.data.Free()
	m.size = 0
}

func (m *SymMatrix[T]) pos(i, j int) int {
	if i < 0 || j < 0 || i >= m.size || j >= m.size {
		panic(ErrIndexRange)
	}

	i, j = minMax(i, j)

	// Row i of the triangle starts after the rows above it, which hold
	// n, n-1, ..., n-i+1 elements.
	return i*m.size - handshakes(i) + j - i
}

func minMax(a, b int) (min, max int) {
	if a > b {
		return b, a
	}

	return a, b
}
