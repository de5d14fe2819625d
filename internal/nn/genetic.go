package nn

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/balmanth/digit-guesser/internal/matrix"
	"github.com/balmanth/digit-guesser/internal/randutil"
)

// Genetic operators over the flattened parameter space. These are free
// functions rather than methods: they reach across two layers at once and
// treat weight and bias as flat index spaces, not as row/column structures.

// Crossover produces a child layer of the same shape and activation as a,
// interleaving parameter values from both parents with a two-pointer walk:
// position i from the front and size-1-i from the back are filled with
// parent b's back value and parent a's front value respectively.
//
// The walk over the bias stops before the midpoint while the walk over the
// weight includes it. The asymmetry is part of the pinned recombination
// contract; with an odd-sized bias the middle element stays zero.
//
// Panics when the parents' shapes differ.
func Crossover[T matrix.Float](a, b *Layer[T]) *Layer[T] {
	if a.in != b.in || a.out != b.out {
		panic(fmt.Sprintf("nn: crossover requires identical layer shapes, got %d->%d and %d->%d", a.in, a.out, b.in, b.out))
	}
	child := NewLayer[T](a.in, a.out, a.act)

	biasSize := a.bias.Size()
	for i := 0; i < biasSize/2; i++ {
		j := biasSize - 1 - i
		child.bias.Set(i, 0, b.bias.Get(j, 0))
		child.bias.Set(j, 0, a.bias.Get(i, 0))
	}

	cols := a.weight.Cols()
	weightSize := a.weight.Size()
	for i := 0; i <= weightSize/2; i++ {
		j := weightSize - 1 - i
		child.weight.Set(matrix.RowOf(cols, i), matrix.ColOf(cols, i),
			b.weight.Get(matrix.RowOf(cols, j), matrix.ColOf(cols, j)))
		child.weight.Set(matrix.RowOf(cols, j), matrix.ColOf(cols, j),
			a.weight.Get(matrix.RowOf(cols, i), matrix.ColOf(cols, i)))
	}

	return child
}

// MutateLayer perturbs round(size·rate) distinct parameters, drawn
// independently for the weight matrix and the bias column, adding a fresh
// uniform value in [min, max) to each selected element in place.
func MutateLayer[T matrix.Float](rng *rand.Rand, l *Layer[T], min, max, rate float64) {
	mutateMatrix(rng, l.weight, min, max, rate)
	mutateMatrix(rng, l.bias, min, max, rate)
}

func mutateMatrix[T matrix.Float](rng *rand.Rand, m *matrix.Matrix[T], min, max, rate float64) {
	size := m.Size()
	count := int(math.Round(float64(size) * rate))
	for _, off := range randutil.Indices(rng, count, size) {
		row, col := matrix.RowOf(m.Cols(), off), matrix.ColOf(m.Cols(), off)
		m.Set(row, col, m.Get(row, col)+T(randutil.Uniform(rng, min, max)))
	}
}
