// Package nn provides the public API for the neural-network core.
//
// The implementation lives in internal/nn; this package re-exports the
// stable surface: activation variants, Layer, Network, the training
// entry points and the genetic operators.
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	net := nn.FromRandom[float64](rng, []int{225, 16, 10}, nn.Config{})
//	net.Train(input, expected)
//	scores := net.Predict(input)
package nn

import (
	"math/rand"

	"github.com/balmanth/digit-guesser/internal/matrix"
	"github.com/balmanth/digit-guesser/internal/nn"
)

// DefaultRate is the learning rate used when Config.Rate is zero.
const DefaultRate = nn.DefaultRate

// ActivationKind enumerates the closed set of activation variants.
type ActivationKind = nn.ActivationKind

// Activation variant tags.
const (
	KindSigmoid   ActivationKind = nn.KindSigmoid
	KindLinear    ActivationKind = nn.KindLinear
	KindReLU      ActivationKind = nn.KindReLU
	KindLeakyReLU ActivationKind = nn.KindLeakyReLU
	KindELU       ActivationKind = nn.KindELU
)

// Activation is a stateless scalar nonlinearity paired with its derivative.
type Activation = nn.Activation

// Sigmoid returns the logistic activation 1/(1+e^-x).
func Sigmoid() Activation { return nn.Sigmoid() }

// Linear returns the identity activation scaled by the given factor.
func Linear(scale float64) Activation { return nn.Linear(scale) }

// ReLU returns the rectified linear activation scaled by the given factor.
func ReLU(scale float64) Activation { return nn.ReLU(scale) }

// LeakyReLU returns the leaky rectified linear activation.
func LeakyReLU(alpha, scale float64) Activation { return nn.LeakyReLU(alpha, scale) }

// ELU returns the exponential linear activation.
func ELU(alpha, scale float64) Activation { return nn.ELU(alpha, scale) }

// Layer is one affine transform followed by an activation function.
type Layer[T matrix.Float] = nn.Layer[T]

// Network is an ordered stack of layers sharing a learning rate.
type Network[T matrix.Float] = nn.Network[T]

// Config holds the optional network settings.
type Config = nn.Config

// Sample pairs an input vector with its expected output vector.
type Sample[T matrix.Float] = nn.Sample[T]

// NewLayer creates a layer with zero weight and bias.
func NewLayer[T matrix.Float](in, out int, act Activation) *Layer[T] {
	return nn.NewLayer[T](in, out, act)
}

// NewNetwork creates a network with zero parameters from layer sizes.
func NewNetwork[T matrix.Float](sizes []int, cfg Config) *Network[T] {
	return nn.NewNetwork[T](sizes, cfg)
}

// FromRandom creates a network with weights and biases randomized in [-1, 1).
func FromRandom[T matrix.Float](rng *rand.Rand, sizes []int, cfg Config) *Network[T] {
	return nn.FromRandom[T](rng, sizes, cfg)
}

// FromCrossover produces a child network by layer-wise recombination of two
// parents with identical topology.
func FromCrossover[T matrix.Float](a, b *Network[T]) *Network[T] {
	return nn.FromCrossover(a, b)
}

// Crossover produces a child layer interleaving both parents' parameters.
func Crossover[T matrix.Float](a, b *Layer[T]) *Layer[T] {
	return nn.Crossover(a, b)
}

// MutateLayer perturbs a random subset of a layer's parameters in place.
func MutateLayer[T matrix.Float](rng *rand.Rand, l *Layer[T], min, max, rate float64) {
	nn.MutateLayer(rng, l, min, max, rate)
}

// MutateNetwork applies MutateLayer to every layer independently.
func MutateNetwork[T matrix.Float](rng *rand.Rand, n *Network[T], min, max, rate float64) {
	nn.MutateNetwork(rng, n, min, max, rate)
}
