package matrix

import "fmt"

// Add returns the elementwise sum as a new matrix.
// Panics when the shapes differ.
func (m *Matrix[T]) Add(other *Matrix[T]) *Matrix[T] {
	m.checkSameShape("Add", other)
	return m.Map(func(v T, row, col int) T {
		return v + other.data[Offset(other.cols, row, col)]
	})
}

// Sub returns the elementwise difference as a new matrix.
// Panics when the shapes differ.
func (m *Matrix[T]) Sub(other *Matrix[T]) *Matrix[T] {
	m.checkSameShape("Sub", other)
	return m.Map(func(v T, row, col int) T {
		return v - other.data[Offset(other.cols, row, col)]
	})
}

// Hadamard returns the elementwise product as a new matrix.
// This is not the matrix product; see Mul.
// Panics when the shapes differ.
func (m *Matrix[T]) Hadamard(other *Matrix[T]) *Matrix[T] {
	m.checkSameShape("Hadamard", other)
	return m.Map(func(v T, row, col int) T {
		return v * other.data[Offset(other.cols, row, col)]
	})
}

// Scale returns a new matrix with every element multiplied by factor.
func (m *Matrix[T]) Scale(factor T) *Matrix[T] {
	return m.Map(func(v T, _, _ int) T {
		return v * factor
	})
}

// Mul returns the matrix product m·other as a new (m.rows × other.cols)
// matrix. Panics when the inner dimensions disagree.
func (m *Matrix[T]) Mul(other *Matrix[T]) *Matrix[T] {
	if m.cols != other.rows {
		panic(fmt.Sprintf("matrix: Mul dimension mismatch: %dx%d · %dx%d", m.rows, m.cols, other.rows, other.cols))
	}
	out := New[T](m.rows, other.cols)
	for row := 0; row < m.rows; row++ {
		for col := 0; col < other.cols; col++ {
			var sum T
			for k := 0; k < m.cols; k++ {
				sum += m.data[Offset(m.cols, row, k)] * other.data[Offset(other.cols, k, col)]
			}
			out.data[Offset(out.cols, row, col)] = sum
		}
	}
	return out
}

// Transpose returns a new (cols × rows) matrix with out[c][r] = m[r][c].
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := New[T](m.cols, m.rows)
	for i, v := range m.data {
		out.data[Offset(out.cols, ColOf(m.cols, i), RowOf(m.cols, i))] = v
	}
	return out
}

func (m *Matrix[T]) checkSameShape(op string, other *Matrix[T]) {
	if m.rows != other.rows || m.cols != other.cols {
		panic(fmt.Sprintf("matrix: %s shape mismatch: %dx%d vs %dx%d", op, m.rows, m.cols, other.rows, other.cols))
	}
}
