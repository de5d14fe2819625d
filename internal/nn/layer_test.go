package nn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balmanth/digit-guesser/internal/matrix"
)

func TestNewLayerShape(t *testing.T) {
	l := NewLayer[float64](4, 3, Sigmoid())
	assert.Equal(t, 4, l.In())
	assert.Equal(t, 3, l.Out())
	assert.Equal(t, 3, l.Weight().Rows())
	assert.Equal(t, 4, l.Weight().Cols())
	assert.Equal(t, 3, l.Bias().Rows())
	assert.Equal(t, 1, l.Bias().Cols())
	assert.Equal(t, l.Weight().Rows(), l.Bias().Rows())
}

func TestNewLayerInvalid(t *testing.T) {
	assert.Panics(t, func() { NewLayer[float64](0, 3, Sigmoid()) })
	assert.Panics(t, func() { NewLayer[float64](3, 0, Sigmoid()) })
}

func TestLayerProcess(t *testing.T) {
	// Linear(1) activation makes the affine result directly observable.
	l := NewLayer[float64](2, 2, Linear(1))
	l.Weight().Set(0, 0, 1)
	l.Weight().Set(0, 1, 2)
	l.Weight().Set(1, 0, 3)
	l.Weight().Set(1, 1, 4)
	l.Bias().Set(0, 0, 10)
	l.Bias().Set(1, 0, 20)

	out := l.Process(matrix.FromColumn([]float64{1, 1}))
	assert.Equal(t, []float64{13, 27}, out.Flatten())
}

func TestLayerProcessActivated(t *testing.T) {
	// Zero weight and bias: sigmoid(0) = 0.5 everywhere.
	l := NewLayer[float64](3, 2, Sigmoid())
	out := l.Process(matrix.FromColumn([]float64{1, 0, 1}))
	assert.InDelta(t, 0.5, out.Get(0, 0), 1e-12)
	assert.InDelta(t, 0.5, out.Get(1, 0), 1e-12)
}

func TestLayerProcessWrongWidth(t *testing.T) {
	l := NewLayer[float64](4, 3, Sigmoid())
	assert.Panics(t, func() { l.Process(matrix.FromColumn([]float64{1, 0})) })
}

func TestLayerRandomize(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	l := NewLayer[float64](5, 4, Sigmoid())
	l.Randomize(rng, -1, 1)

	inRange := func(v float64, _, _ int) {
		assert.GreaterOrEqual(t, v, -1.0)
		assert.Less(t, v, 1.0)
	}
	l.Weight().Each(inRange)
	l.Bias().Each(inRange)

	// A 20-element uniform draw landing on all zeros means the fill never ran.
	assert.NotEqual(t, make([]float64, 20), l.Weight().Flatten())
}

func TestLayerAdjust(t *testing.T) {
	l := NewLayer[float64](2, 2, Sigmoid())
	before := l.Weight()

	wDelta, err := matrix.FromSlice([]float64{1, 2, 3, 4}, 2)
	require.NoError(t, err)
	bDelta := matrix.FromColumn([]float64{5, 6})

	l.Adjust(wDelta, bDelta)
	assert.Equal(t, []float64{1, 2, 3, 4}, l.Weight().Flatten())
	assert.Equal(t, []float64{5, 6}, l.Bias().Flatten())

	// Whole-matrix replacement: the previous weight matrix is untouched.
	assert.Equal(t, make([]float64, 4), before.Flatten())
}

func TestLayerAdjustShapeMismatch(t *testing.T) {
	l := NewLayer[float64](2, 2, Sigmoid())
	assert.Panics(t, func() {
		l.Adjust(matrix.New[float64](3, 3), matrix.New[float64](2, 1))
	})
}
