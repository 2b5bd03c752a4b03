// Package matrix implements small dense and packed symmetric matrices whose
// elements live in a smallvec.Vector: matrices of up to 16 elements need no
// heap allocation.
//
// Indexing outside the matrix panics with ErrIndexRange, like slice indexing.
// Operations that allocate report allocation failures as errors.
package matrix

import (
	"golang.org/x/exp/constraints"

	"github.com/webbmaffian/go-smallvec/matrix/internal/gonum"
	"github.com/webbmaffian/go-smallvec/smallvec"
)

var (
	_ gonum.Matrix  = (*Dense[float64])(nil)
	_ gonum.Mutable = (*Dense[float64])(nil)
	_ gonum.Matrix  = transposed[float64]{}
)

// Number is the set of element types a matrix can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Dense is a row-major r x c matrix.
type Dense[T Number] struct {
	rows int
	cols int
	data smallvec.Vector[T, [16]T]
}

// NewDense returns an r x c matrix of zeros.
func NewDense[T Number](r, c int) (m *Dense[T], err error) {
	if r <= 0 || c <= 0 {
		return nil, ErrEmptyMatrix
	}

	m = &Dense[T]{
		rows: r,
		cols: c,
	}

	if err = m.data.Resize(r * c); err != nil {
		return nil, err
	}

	return
}

// NewDenseFrom returns an r x c matrix holding a copy of data, in row-major
// order.
func NewDenseFrom[T Number](r, c int, data []T) (m *Dense[T], err error) {
	if r <= 0 || c <= 0 {
		return nil, ErrEmptyMatrix
	}

	if len(data) != r*c {
		return nil, ErrShape
	}

	m = &Dense[T]{
		rows: r,
		cols: c,
	}

	if err = m.data.AssignSlice(data); err != nil {
		return nil, err
	}

	return
}

// Identity returns the n x n identity matrix.
func Identity[T Number](n int) (m *Dense[T], err error) {
	if m, err = NewDense[T](n, n); err != nil {
		return
	}

	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}

	return
}

// Dims returns the number of rows and columns.
func (m *Dense[T]) Dims() (r, c int) {
	return m.rows, m.cols
}

// At returns the element at row i, column j.
func (m *Dense[T]) At(i, j int) T {
	return m.data.Index(m.pos(i, j))
}

// Set alters the element at row i, column j.
func (m *Dense[T]) Set(i, j int, val T) {
	m.data.SetUnchecked(m.pos(i, j), val)
}

// RawRow returns row i as a slice backed by the matrix.
func (m *Dense[T]) RawRow(i int) []T {
	if i < 0 || i >= m.rows {
		panic(ErrIndexRange)
	}

	return m.data.Data()[i*m.cols : (i+1)*m.cols]
}

// T returns a transposed view of the matrix sharing its elements. Only
// float64 matrices have a gonum view; for other element types T returns nil,
// use Transpose instead.
func (m *Dense[T]) T() gonum.Matrix {
	var view any = transposed[T]{m}

	mat, _ := view.(gonum.Matrix)
	return mat
}

// Transpose returns a new c x r matrix.
func (m *Dense[T]) Transpose() (t *Dense[T], err error) {
	if t, err = NewDense[T](m.cols, m.rows); err != nil {
		return
	}

	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.Set(j, i, m.At(i, j))
		}
	}

	return
}

// Equal reports whether both matrices have the same dimensions and elements.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}

	a, b := m.data.Data(), o.data.Data()

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// EqualApprox reports whether both matrices have the same dimensions and
// elements that differ by at most tol.
func (m *Dense[T]) EqualApprox(o *Dense[T], tol T) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}

	a, b := m.data.Data(), o.data.Data()

	for i := range a {
		d := a[i] - b[i]

		if a[i] < b[i] {
			d = b[i] - a[i]
		}

		if d > tol {
			return false
		}
	}

	return true
}

// Add returns m + o.
func (m *Dense[T]) Add(o *Dense[T]) (*Dense[T], error) {
	return m.zip(o, func(a, b T) T { return a + b })
}

// Sub returns m - o.
func (m *Dense[T]) Sub(o *Dense[T]) (*Dense[T], error) {
	return m.zip(o, func(a, b T) T { return a - b })
}

func (m *Dense[T]) zip(o *Dense[T], fn func(a, b T) T) (res *Dense[T], err error) {
	if m.rows != o.rows || m.cols != o.cols {
		return nil, ErrShape
	}

	if res, err = NewDense[T](m.rows, m.cols); err != nil {
		return
	}

	a, b, c := m.data.Data(), o.data.Data(), res.data.Data()

	for i := range c {
		c[i] = fn(a[i], b[i])
	}

	return
}

// Free releases the matrix storage. The matrix must not be used afterwards.
func (m *Dense[T]) Free() {
	m.data.Free()
	m.rows, m.cols = 0, 0
}

func (m *Dense[T]) pos(i, j int) int {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(ErrIndexRange)
	}

	return i*m.cols + j
}

// transposed is a read-only view of a Dense matrix with rows and columns
// exchanged.
type transposed[T Number] struct {
	m *Dense[T]
}

func (t transposed[T]) Dims() (r, c int) {
	return t.m.cols, t.m.rows
}

func (t transposed[T]) At(i, j int) T {
	return t.m.At(j, i)
}

func (t transposed[T]) T() gonum.Matrix {
	var m any = t.m

	mat, _ := m.(gonum.Matrix)
	return mat
}
