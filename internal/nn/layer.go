package nn

import (
	"fmt"
	"math/rand"

	"github.com/balmanth/digit-guesser/internal/matrix"
	"github.com/balmanth/digit-guesser/internal/randutil"
)

// Layer is one affine transform (weight·input + bias) followed by an
// activation function.
//
// The weight matrix has shape (out × in) and the bias column (out × 1), so
// Process right-multiplies the weight against a column vector of height in.
// The invariant weight.Rows == bias.Rows == out holds at all times, including
// after every crossover and mutation.
//
// During training the weight and bias are replaced wholesale on every
// Adjust, never updated element by element, so no two layers ever share a
// matrix.
// The genetic operators are the exception: Crossover builds a fresh child and
// MutateLayer perturbs elements in place via Set.
type Layer[T matrix.Float] struct {
	in     int
	out    int
	act    Activation
	weight *matrix.Matrix[T]
	bias   *matrix.Matrix[T]
}

// NewLayer creates a layer with zero weight and bias.
// Panics when either neuron count is not positive.
func NewLayer[T matrix.Float](in, out int, act Activation) *Layer[T] {
	if in <= 0 || out <= 0 {
		panic(fmt.Sprintf("nn: invalid layer shape %d->%d (neuron counts must be positive)", in, out))
	}
	return &Layer[T]{
		in:     in,
		out:    out,
		act:    act,
		weight: matrix.New[T](out, in),
		bias:   matrix.New[T](out, 1),
	}
}

// In returns the expected input width.
func (l *Layer[T]) In() int {
	return l.in
}

// Out returns the number of neurons (output width).
func (l *Layer[T]) Out() int {
	return l.out
}

// Activation returns the layer's activation function.
func (l *Layer[T]) Activation() Activation {
	return l.act
}

// Weight returns the weight matrix (out × in).
func (l *Layer[T]) Weight() *matrix.Matrix[T] {
	return l.weight
}

// Bias returns the bias column (out × 1).
func (l *Layer[T]) Bias() *matrix.Matrix[T] {
	return l.bias
}

// Process applies the layer to a column vector of height In, returning the
// activated (Out × 1) column. A wrong-width input surfaces as the matrix
// dimension-mismatch panic from Mul.
func (l *Layer[T]) Process(input *matrix.Matrix[T]) *matrix.Matrix[T] {
	return l.weight.Mul(input).Add(l.bias).Map(func(v T, _, _ int) T {
		return T(l.act.Generate(float64(v)))
	})
}

// Randomize fills the weight and bias independently with uniform values in
// [min, max).
func (l *Layer[T]) Randomize(rng *rand.Rand, min, max float64) {
	l.weight.FillFunc(func(_, _ int, _ T) T {
		return T(randutil.Uniform(rng, min, max))
	})
	l.bias.FillFunc(func(_, _ int, _ T) T {
		return T(randutil.Uniform(rng, min, max))
	})
}

// Adjust replaces the weight with weight+weightDelta and the bias with
// bias+biasDelta. This is the sole parameter-update entry point used by
// training; both assignments allocate new matrices. Panics when a delta's
// shape disagrees with the parameter it adjusts.
func (l *Layer[T]) Adjust(weightDelta, biasDelta *matrix.Matrix[T]) {
	l.weight = l.weight.Add(weightDelta)
	l.bias = l.bias.Add(biasDelta)
}
