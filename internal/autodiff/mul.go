package autodiff

import (
	"github.com/born-ml/beacon/internal/dense"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Mul returns the elementwise product a * b with broadcasting.
//
// Backward:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
func Mul(a, b any) (*Tensor, error) {
	x, y, err := binary("mul", a, b)
	if err != nil {
		return nil, err
	}
	data, err := dense.Apply(x.data, y.data, mul)
	if err != nil {
		return nil, errors.Wrap(err, "mul")
	}
	return record(data,
		operand{x, func(g *mat.Dense) (*mat.Dense, error) {
			return chain(g, y.data, mul, x.Shape())
		}},
		operand{y, func(g *mat.Dense) (*mat.Dense, error) {
			return chain(g, x.data, mul, y.Shape())
		}},
	), nil
}

// Div returns the elementwise quotient a / b with broadcasting.
//
// Backward:
//   - d(a/b)/da = 1/b, so grad_a = outputGrad / b
//   - d(a/b)/db = -a/b², so grad_b = -outputGrad * a / b²
func Div(a, b any) (*Tensor, error) {
	x, y, err := binary("div", a, b)
	if err != nil {
		return nil, err
	}
	data, err := dense.Apply(x.data, y.data, func(p, q float64) float64 { return p / q })
	if err != nil {
		return nil, errors.Wrap(err, "div")
	}
	return record(data,
		operand{x, func(g *mat.Dense) (*mat.Dense, error) {
			return chain(g, y.data, func(g, l float64) float64 { return g / l }, x.Shape())
		}},
		operand{y, func(g *mat.Dense) (*mat.Dense, error) {
			local, err := dense.Apply(x.data, y.data, func(p, q float64) float64 { return p / (q * q) })
			if err != nil {
				return nil, err
			}
			return chain(g, local, func(g, l float64) float64 { return -g * l }, y.Shape())
		}},
	), nil
}
