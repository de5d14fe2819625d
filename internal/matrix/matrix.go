// Package matrix provides the dense 2-D numeric container the network is built on.
package matrix

import "fmt"

// Float is the constraint for supported matrix element types.
// The element width is fixed per matrix instance at construction.
type Float interface {
	~float32 | ~float64
}

// Matrix is a dense 2-D container with a flat row-major buffer.
//
// The element at logical (row, col) lives at offset row*cols+col; the buffer
// length is always rows*cols. Every derived operation (Map, Add, Mul,
// Transpose, ...) allocates a fresh Matrix; a matrix never aliases another's
// storage. The only in-place entry points are Set, Fill and FillFunc.
//
// Example:
//
//	m := matrix.New[float64](3, 4)
//	m.Set(1, 2, 0.5)
//	t := m.Transpose() // new 4x3 matrix
type Matrix[T Float] struct {
	rows int
	cols int
	data []T
}

// New creates a zero-filled matrix with the given dimensions.
// Panics if either dimension is not positive.
func New[T Float](rows, cols int) *Matrix[T] {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("matrix: invalid dimensions %dx%d (must be positive)", rows, cols))
	}
	return &Matrix[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}
}

// FromSlice creates a matrix from a flat value sequence laid out row-major
// over the given column count. Returns an error when the length is not an
// exact multiple of cols.
func FromSlice[T Float](values []T, cols int) (*Matrix[T], error) {
	if cols <= 0 {
		return nil, fmt.Errorf("matrix: invalid column count %d", cols)
	}
	if len(values) == 0 || len(values)%cols != 0 {
		return nil, fmt.Errorf("matrix: %d values do not fill rows of %d columns", len(values), cols)
	}
	m := New[T](len(values)/cols, cols)
	copy(m.data, values)
	return m, nil
}

// FromColumn creates a single-column matrix from a flat value sequence.
// Panics on an empty sequence; this is the programmer-error path used to lift
// input vectors into the matrix world.
func FromColumn[T Float](values []T) *Matrix[T] {
	if len(values) == 0 {
		panic("matrix: cannot build a column from an empty sequence")
	}
	m := New[T](len(values), 1)
	copy(m.data, values)
	return m
}

// Rows returns the row count.
func (m *Matrix[T]) Rows() int {
	return m.rows
}

// Cols returns the column count.
func (m *Matrix[T]) Cols() int {
	return m.cols
}

// Size returns the total element count (rows*cols).
func (m *Matrix[T]) Size() int {
	return len(m.data)
}

// Get returns the element at (row, col).
// Panics when the position is out of range.
func (m *Matrix[T]) Get(row, col int) T {
	m.check(row, col)
	return m.data[Offset(m.cols, row, col)]
}

// Set overwrites the element at (row, col) and returns the previous value.
// Panics when the position is out of range.
func (m *Matrix[T]) Set(row, col int, value T) T {
	m.check(row, col)
	off := Offset(m.cols, row, col)
	prev := m.data[off]
	m.data[off] = value
	return prev
}

// At is the non-panicking variant of Get; the second result reports whether
// the position was in range.
func (m *Matrix[T]) At(row, col int) (T, bool) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		var zero T
		return zero, false
	}
	return m.data[Offset(m.cols, row, col)], true
}

// Fill overwrites every element with the given constant.
func (m *Matrix[T]) Fill(value T) {
	for i := range m.data {
		m.data[i] = value
	}
}

// FillFunc overwrites every element with the result of the generator, which
// receives the position and the current value. Used for randomization.
func (m *Matrix[T]) FillFunc(generate func(row, col int, current T) T) {
	for i := range m.data {
		m.data[i] = generate(RowOf(m.cols, i), ColOf(m.cols, i), m.data[i])
	}
}

// Each visits every element in row-major order.
func (m *Matrix[T]) Each(visit func(value T, row, col int)) {
	for i, v := range m.data {
		visit(v, RowOf(m.cols, i), ColOf(m.cols, i))
	}
}

// Map produces a new matrix of identical shape whose elements are the result
// of the transform.
func (m *Matrix[T]) Map(transform func(value T, row, col int) T) *Matrix[T] {
	out := New[T](m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = transform(v, RowOf(m.cols, i), ColOf(m.cols, i))
	}
	return out
}

// Clone returns a deep copy of the matrix.
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := New[T](m.rows, m.cols)
	copy(out.data, m.data)
	return out
}

// Flatten returns the elements in row-major order as a fresh slice.
func (m *Matrix[T]) Flatten() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)
	return out
}

// Equal reports whether both matrices have the same shape and elements.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// String returns a human-readable shape description.
func (m *Matrix[T]) String() string {
	return fmt.Sprintf("Matrix(%dx%d)", m.rows, m.cols)
}

func (m *Matrix[T]) check(row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("matrix: position (%d,%d) out of range for %dx%d matrix", row, col, m.rows, m.cols))
	}
}
