package autodiff

import (
	"math"

	"github.com/born-ml/beacon/internal/dense"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Exp returns e^a elementwise.
//
// Backward: grad_a = outputGrad * e^a.
func Exp(a any) (*Tensor, error) {
	return unary("exp", a, math.Exp, func(_, y float64) float64 { return y })
}

// Log returns the natural logarithm of a elementwise.
//
// Backward: grad_a = outputGrad / a.
func Log(a any) (*Tensor, error) {
	return unary("log", a, math.Log, func(x, _ float64) float64 { return 1 / x })
}

// Sqrt returns the square root of a elementwise.
//
// Backward: grad_a = outputGrad / (2 * sqrt(a)).
func Sqrt(a any) (*Tensor, error) {
	return unary("sqrt", a, math.Sqrt, func(_, y float64) float64 { return 1 / (2 * y) })
}

// Tanh returns the hyperbolic tangent of a elementwise.
//
// Backward: grad_a = outputGrad * (1 - tanh²(a)).
func Tanh(a any) (*Tensor, error) {
	return unary("tanh", a, math.Tanh, func(_, y float64) float64 { return 1 - y*y })
}

// Sigmoid returns σ(a) = 1 / (1 + e^-a) elementwise.
//
// Backward: grad_a = outputGrad * σ(a) * (1 - σ(a)).
func Sigmoid(a any) (*Tensor, error) {
	return unary("sigmoid", a,
		func(x float64) float64 { return 1 / (1 + math.Exp(-x)) },
		func(_, y float64) float64 { return y * (1 - y) },
	)
}

// ReLU returns max(0, a) elementwise.
//
// Backward: grad_a = outputGrad where a > 0, else 0.
func ReLU(a any) (*Tensor, error) {
	return unary("relu", a,
		func(x float64) float64 { return math.Max(0, x) },
		func(x, _ float64) float64 {
			if x > 0 {
				return 1
			}
			return 0
		},
	)
}

// unary builds an elementwise operation from its forward function f and its
// derivative df, which receives both the input x and the output y = f(x).
func unary(name string, a any, f func(float64) float64, df func(x, y float64) float64) (*Tensor, error) {
	x, err := AsTensor(a)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	out := dense.Map(x.data, f)
	return record(out,
		operand{x, func(g *mat.Dense) (*mat.Dense, error) {
			local, err := dense.Apply(x.data, out, df)
			if err != nil {
				return nil, err
			}
			return chain(g, local, mul, x.Shape())
		}},
	), nil
}
