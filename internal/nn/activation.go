package nn

import (
	"fmt"
	"math"
)

// ActivationKind enumerates the closed set of activation variants.
type ActivationKind int

// Supported activation variants.
const (
	KindSigmoid ActivationKind = iota
	KindLinear
	KindReLU
	KindLeakyReLU
	KindELU
)

// Activation is a stateless scalar nonlinearity paired with its derivative.
//
// It is a closed tagged variant: each value carries only the kind tag and its
// scalar hyperparameters (scale, alpha). Both Generate and Derivative are
// pure functions of one scalar.
//
// Convention: for Sigmoid, Derivative takes the already-activated value y and
// returns y*(1-y). The backward pass relies on this: it feeds activated
// outputs, never raw pre-activations, into Derivative.
//
// The zero value is Sigmoid.
type Activation struct {
	kind  ActivationKind
	scale float64
	alpha float64
}

// Sigmoid returns the logistic activation 1/(1+e^-x).
func Sigmoid() Activation {
	return Activation{kind: KindSigmoid}
}

// Linear returns the identity activation scaled by the given factor.
func Linear(scale float64) Activation {
	return Activation{kind: KindLinear, scale: scale}
}

// ReLU returns the rectified linear activation scaled by the given factor.
func ReLU(scale float64) Activation {
	return Activation{kind: KindReLU, scale: scale}
}

// LeakyReLU returns the leaky rectified linear activation: negative inputs
// pass through damped by alpha, the whole result scaled by scale.
func LeakyReLU(alpha, scale float64) Activation {
	return Activation{kind: KindLeakyReLU, alpha: alpha, scale: scale}
}

// ELU returns the exponential linear activation: negative inputs map to
// alpha*(e^x - 1), the whole result scaled by scale.
func ELU(alpha, scale float64) Activation {
	return Activation{kind: KindELU, alpha: alpha, scale: scale}
}

// Kind returns the variant tag.
func (a Activation) Kind() ActivationKind {
	return a.kind
}

// Generate maps a pre-activation scalar to its activated value.
func (a Activation) Generate(x float64) float64 {
	switch a.kind {
	case KindSigmoid:
		return 1 / (1 + math.Exp(-x))
	case KindLinear:
		return x * a.scale
	case KindReLU:
		if x < 0 {
			return 0
		}
		return x * a.scale
	case KindLeakyReLU:
		if x < 0 {
			return x * a.alpha * a.scale
		}
		return x * a.scale
	case KindELU:
		if x < 0 {
			return a.alpha * (math.Exp(x) - 1) * a.scale
		}
		return x * a.scale
	default:
		panic(fmt.Sprintf("nn: unknown activation kind %d", a.kind))
	}
}

// Derivative maps a value to the local gradient factor.
// For Sigmoid the argument is the activated value y; for every other variant
// it is the pre-activation x.
func (a Activation) Derivative(x float64) float64 {
	switch a.kind {
	case KindSigmoid:
		return x * (1 - x)
	case KindLinear:
		return a.scale
	case KindReLU:
		if x > 0 {
			return a.scale
		}
		return 0
	case KindLeakyReLU:
		if x > 0 {
			return a.scale
		}
		return a.alpha * a.scale
	case KindELU:
		if x > 0 {
			return a.scale
		}
		return a.alpha * math.Exp(x) * a.scale
	default:
		panic(fmt.Sprintf("nn: unknown activation kind %d", a.kind))
	}
}

// String returns a human-readable name for the variant.
func (a Activation) String() string {
	switch a.kind {
	case KindSigmoid:
		return "sigmoid"
	case KindLinear:
		return fmt.Sprintf("linear(scale=%g)", a.scale)
	case KindReLU:
		return fmt.Sprintf("relu(scale=%g)", a.scale)
	case KindLeakyReLU:
		return fmt.Sprintf("leaky-relu(alpha=%g, scale=%g)", a.alpha, a.scale)
	case KindELU:
		return fmt.Sprintf("elu(alpha=%g, scale=%g)", a.alpha, a.scale)
	default:
		return "unknown"
	}
}
