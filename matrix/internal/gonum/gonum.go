// Package gonum mirrors the float64 matrix interfaces of gonum.org/v1/gonum/mat
// that the matrix types implement, so they can be handed to code written
// against those interfaces without importing gonum.
package gonum

type Matrix interface {
	// Dims returns the number of rows and columns.
	Dims() (r, c int)

	// At returns the element at row i, column j.
	At(i, j int) float64

	// T returns the transpose. Whether it copies the elements is up to the
	// implementation.
	T() Matrix
}

type Mutable interface {
	Matrix

	// Set alters the element at row i, column j.
	Set(i, j int, v float64)
}

// Symmetric is a square matrix whose element at {i, j} equals the one at
// {j, i}.
type Symmetric interface {
	Matrix

	SymmetricDim() int
}
