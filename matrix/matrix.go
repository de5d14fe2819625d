// Package matrix provides the public API for the dense 2-D matrix type the
// network core is built on.
//
// The implementation lives in internal/matrix; this package re-exports the
// stable surface:
//   - Matrix[T]: dense row-major container with copy-on-write arithmetic
//   - Float: element type constraint (float32 or float64)
//   - Offset/RowOf/ColOf: flat-index arithmetic helpers
//
// Example:
//
//	a := matrix.New[float64](2, 3)
//	b := matrix.New[float64](3, 2)
//	c := a.Mul(b) // 2x2
package matrix

import (
	"github.com/balmanth/digit-guesser/internal/matrix"
)

// Float is the constraint for supported matrix element types.
type Float = matrix.Float

// Matrix is a dense 2-D container with a flat row-major buffer.
type Matrix[T Float] = matrix.Matrix[T]

// New creates a zero-filled matrix with the given dimensions.
func New[T Float](rows, cols int) *Matrix[T] {
	return matrix.New[T](rows, cols)
}

// FromSlice creates a matrix from a flat row-major value sequence over the
// given column count.
func FromSlice[T Float](values []T, cols int) (*Matrix[T], error) {
	return matrix.FromSlice(values, cols)
}

// FromColumn creates a single-column matrix from a flat value sequence.
func FromColumn[T Float](values []T) *Matrix[T] {
	return matrix.FromColumn(values)
}

// Offset returns the flat buffer offset of (row, col) for the given column
// count.
func Offset(cols, row, col int) int {
	return matrix.Offset(cols, row, col)
}

// RowOf returns the row of a flat offset for the given column count.
func RowOf(cols, offset int) int {
	return matrix.RowOf(cols, offset)
}

// ColOf returns the column of a flat offset for the given column count.
func ColOf(cols, offset int) int {
	return matrix.ColOf(cols, offset)
}
