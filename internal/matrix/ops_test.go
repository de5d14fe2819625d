package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFromSlice(t *testing.T, values []float64, cols int) *Matrix[float64] {
	t.Helper()
	m, err := FromSlice(values, cols)
	require.NoError(t, err)
	return m
}

func TestAdd(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4}, 2)
	b := mustFromSlice(t, []float64{10, 20, 30, 40}, 2)

	sum := a.Add(b)
	assert.Equal(t, []float64{11, 22, 33, 44}, sum.Flatten())
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Flatten(), "Add must not mutate the receiver")
}

func TestSub(t *testing.T) {
	a := mustFromSlice(t, []float64{10, 20, 30, 40}, 2)
	b := mustFromSlice(t, []float64{1, 2, 3, 4}, 2)
	assert.Equal(t, []float64{9, 18, 27, 36}, a.Sub(b).Flatten())
}

func TestHadamard(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4}, 2)
	b := mustFromSlice(t, []float64{2, 3, 4, 5}, 2)
	assert.Equal(t, []float64{2, 6, 12, 20}, a.Hadamard(b).Flatten())
}

func TestElementwiseShapeMismatch(t *testing.T) {
	a := New[float64](2, 3)
	b := New[float64](3, 2)
	assert.Panics(t, func() { a.Add(b) })
	assert.Panics(t, func() { a.Sub(b) })
	assert.Panics(t, func() { a.Hadamard(b) })
}

func TestScale(t *testing.T) {
	a := mustFromSlice(t, []float64{1, -2, 3}, 1)
	assert.Equal(t, []float64{2, -4, 6}, a.Scale(2).Flatten())
}

func TestMul(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, 3)    // 2x3
	b := mustFromSlice(t, []float64{7, 8, 9, 10, 11, 12}, 2) // 3x2

	product := a.Mul(b)
	assert.Equal(t, 2, product.Rows())
	assert.Equal(t, 2, product.Cols())
	assert.Equal(t, []float64{58, 64, 139, 154}, product.Flatten())
}

func TestMulShapes(t *testing.T) {
	tests := []struct {
		name               string
		r1, c1, r2, c2     int
		wantRows, wantCols int
		wantPanic          bool
	}{
		{"square", 2, 2, 2, 2, 2, 2, false},
		{"rect", 4, 3, 3, 5, 4, 5, false},
		{"column", 3, 4, 4, 1, 3, 1, false},
		{"mismatch", 2, 3, 2, 3, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New[float64](tt.r1, tt.c1)
			b := New[float64](tt.r2, tt.c2)
			if tt.wantPanic {
				assert.Panics(t, func() { a.Mul(b) })
				return
			}
			product := a.Mul(b)
			assert.Equal(t, tt.wantRows, product.Rows())
			assert.Equal(t, tt.wantCols, product.Cols())
		})
	}
}

func TestTranspose(t *testing.T) {
	m := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, 3) // 2x3

	tr := m.Transpose()
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			assert.Equal(t, m.Get(row, col), tr.Get(col, row))
		}
	}
}

func TestTransposeInvolution(t *testing.T) {
	m := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, 4)
	assert.True(t, m.Equal(m.Transpose().Transpose()))
}
