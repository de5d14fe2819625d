// Package nn implements the neural-network core: activation functions,
// layers, the network with forward propagation and gradient-descent
// training, and the genetic operators (crossover, mutation) that combine or
// perturb networks outside of gradient descent.
//
// The engine is single-threaded and purely synchronous; ownership of a
// Network and everything under it belongs to exactly one caller at a time.
package nn

import (
	"fmt"
	"math/rand"

	"github.com/balmanth/digit-guesser/internal/matrix"
)

// DefaultRate is the learning rate used when Config.Rate is zero.
const DefaultRate = 0.1

// Config holds the optional network settings.
// The zero value means: learning rate DefaultRate, Sigmoid everywhere.
type Config struct {
	// Rate is the learning rate (default: DefaultRate).
	Rate float64
	// Activation is the activation shared by all layers (default: Sigmoid).
	Activation Activation
	// Activations optionally overrides the activation per layer. When set,
	// its length must equal the layer count (len(sizes)-1).
	Activations []Activation
}

// Network is an ordered stack of layers sharing a learning rate.
//
// A network built from sizes [s0, s1, ..., sn] accepts inputs of length s0
// and produces outputs of length sn; layer k maps width s_k to width s_{k+1},
// so adjacent layers always agree by construction.
//
// Example:
//
//	net := nn.FromRandom[float64](rng, []int{225, 16, 10}, nn.Config{})
//	net.Train(input, expected)
//	scores := net.Predict(input)
type Network[T matrix.Float] struct {
	layers []*Layer[T]
	rate   float64
	act    Activation
}

// Sample pairs an input vector with its expected output vector.
type Sample[T matrix.Float] struct {
	Input    []T
	Expected []T
}

// NewNetwork creates a network with zero parameters from a sequence of layer
// sizes. sizes[0] is the raw input width; each later entry is a layer's
// neuron count. Panics when fewer than two sizes are given, when a size is
// not positive, or when Config.Activations has the wrong length.
func NewNetwork[T matrix.Float](sizes []int, cfg Config) *Network[T] {
	if len(sizes) < 2 {
		panic(fmt.Sprintf("nn: network needs at least 2 layer sizes, got %d", len(sizes)))
	}
	if cfg.Rate == 0 {
		cfg.Rate = DefaultRate
	}
	if cfg.Rate < 0 {
		panic(fmt.Sprintf("nn: learning rate must be positive, got %g", cfg.Rate))
	}
	if cfg.Activations != nil && len(cfg.Activations) != len(sizes)-1 {
		panic(fmt.Sprintf("nn: %d per-layer activations for %d layers", len(cfg.Activations), len(sizes)-1))
	}

	layers := make([]*Layer[T], len(sizes)-1)
	for k := range layers {
		act := cfg.Activation
		if cfg.Activations != nil {
			act = cfg.Activations[k]
		}
		layers[k] = NewLayer[T](sizes[k], sizes[k+1], act)
	}
	return &Network[T]{
		layers: layers,
		rate:   cfg.Rate,
		act:    cfg.Activation,
	}
}

// FromRandom creates a network and randomizes every layer's weight and bias
// in [-1, 1).
func FromRandom[T matrix.Float](rng *rand.Rand, sizes []int, cfg Config) *Network[T] {
	n := NewNetwork[T](sizes, cfg)
	for _, l := range n.layers {
		l.Randomize(rng, -1, 1)
	}
	return n
}

// FromCrossover produces a child whose layer k is the crossover of both
// parents' layer k and whose learning rate is the mean of the parents'
// rates. Panics when the parents' topologies differ.
func FromCrossover[T matrix.Float](a, b *Network[T]) *Network[T] {
	if len(a.layers) != len(b.layers) {
		panic(fmt.Sprintf("nn: crossover requires identical topologies, got %d and %d layers", len(a.layers), len(b.layers)))
	}
	layers := make([]*Layer[T], len(a.layers))
	for k := range layers {
		layers[k] = Crossover(a.layers[k], b.layers[k])
	}
	return &Network[T]{
		layers: layers,
		rate:   (a.rate + b.rate) / 2,
		act:    a.act,
	}
}

// MutateNetwork applies MutateLayer to every layer independently.
func MutateNetwork[T matrix.Float](rng *rand.Rand, n *Network[T], min, max, rate float64) {
	for _, l := range n.layers {
		MutateLayer(rng, l, min, max, rate)
	}
}

// Len returns the number of layers.
func (n *Network[T]) Len() int {
	return len(n.layers)
}

// Layer returns the layer at the given index.
// Panics when the index is out of bounds.
func (n *Network[T]) Layer(index int) *Layer[T] {
	if index < 0 || index >= len(n.layers) {
		panic(fmt.Sprintf("nn: layer index %d out of bounds for %d layers", index, len(n.layers)))
	}
	return n.layers[index]
}

// Rate returns the learning rate.
func (n *Network[T]) Rate() float64 {
	return n.rate
}

// InputSize returns the expected input vector length.
func (n *Network[T]) InputSize() int {
	return n.layers[0].In()
}

// OutputSize returns the produced output vector length.
func (n *Network[T]) OutputSize() int {
	return n.layers[len(n.layers)-1].Out()
}

// ProcessAll runs the forward pass and returns every intermediate
// activation: element 0 is the input lifted to a column, element i+1 is
// layer i's activated output. The backward pass needs the whole chain, not
// just the final column.
func (n *Network[T]) ProcessAll(input []T) []*matrix.Matrix[T] {
	outputs := make([]*matrix.Matrix[T], 0, len(n.layers)+1)
	current := matrix.FromColumn(input)
	outputs = append(outputs, current)
	for _, l := range n.layers {
		current = l.Process(current)
		outputs = append(outputs, current)
	}
	return outputs
}

// Predict runs the forward pass and returns the final activation's values.
func (n *Network[T]) Predict(input []T) []T {
	outputs := n.ProcessAll(input)
	return outputs[len(outputs)-1].Flatten()
}

// Train runs one round of backpropagation on a single example, adjusting
// every layer's parameters in place.
//
// The output-layer error is expected − output. Walking layers from output to
// input, each step computes delta = rate · (Derivative(activated) ⊙ error),
// adjusts the layer by (delta · previousᵀ, delta), and then propagates
// error := weightᵀ · error through the freshly adjusted weight. Using the
// post-adjust weight is deliberate; the pre-update weight changes
// convergence behavior.
func (n *Network[T]) Train(input, expected []T) {
	outputs := n.ProcessAll(input)
	errCol := matrix.FromColumn(expected).Sub(outputs[len(outputs)-1])

	rate := T(n.rate)
	for i := len(n.layers) - 1; i >= 0; i-- {
		l := n.layers[i]
		activated := outputs[i+1]

		delta := activated.Map(func(v T, _, _ int) T {
			return T(l.act.Derivative(float64(v)))
		}).Hadamard(errCol).Scale(rate)

		weightDelta := delta.Mul(outputs[i].Transpose())
		l.Adjust(weightDelta, delta)

		if i > 0 {
			errCol = l.Weight().Transpose().Mul(errCol)
		}
	}
}

// TrainSet runs Train over every sample, the whole set repeated for the
// given number of rounds.
func (n *Network[T]) TrainSet(samples []Sample[T], rounds int) {
	for r := 0; r < rounds; r++ {
		for _, s := range samples {
			n.Train(s.Input, s.Expected)
		}
	}
}

// Loss returns the mean squared distance between Predict(input) and the
// expected vector.
func (n *Network[T]) Loss(input, expected []T) float64 {
	output := n.Predict(input)
	if len(output) != len(expected) {
		panic(fmt.Sprintf("nn: expected vector of length %d, got %d", len(output), len(expected)))
	}
	var sum float64
	for i, v := range output {
		d := float64(v) - float64(expected[i])
		sum += d * d
	}
	return sum / float64(len(output))
}
