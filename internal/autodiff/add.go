package autodiff

import (
	"github.com/born-ml/beacon/internal/dense"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Add returns a + b with broadcasting.
//
// Backward:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
//
// Both gradients are summed over the axes broadcasting expanded.
func Add(a, b any) (*Tensor, error) {
	x, y, err := binary("add", a, b)
	if err != nil {
		return nil, err
	}
	data, err := dense.Apply(x.data, y.data, func(p, q float64) float64 { return p + q })
	if err != nil {
		return nil, errors.Wrap(err, "add")
	}
	return record(data,
		operand{x, reduceTo(x)},
		operand{y, reduceTo(y)},
	), nil
}

// Sub returns a - b with broadcasting.
//
// Backward:
//   - d(a-b)/da = 1, so grad_a = outputGrad
//   - d(a-b)/db = -1, so grad_b = -outputGrad
func Sub(a, b any) (*Tensor, error) {
	x, y, err := binary("sub", a, b)
	if err != nil {
		return nil, err
	}
	data, err := dense.Apply(x.data, y.data, func(p, q float64) float64 { return p - q })
	if err != nil {
		return nil, errors.Wrap(err, "sub")
	}
	return record(data,
		operand{x, reduceTo(x)},
		operand{y, func(g *mat.Dense) (*mat.Dense, error) {
			return dense.SumTo(dense.Map(g, neg), y.Shape())
		}},
	), nil
}

// Neg returns -a.
//
// Backward: grad_a = -outputGrad.
func Neg(a any) (*Tensor, error) {
	x, err := AsTensor(a)
	if err != nil {
		return nil, errors.Wrap(err, "neg")
	}
	return record(dense.Map(x.data, neg),
		operand{x, func(g *mat.Dense) (*mat.Dense, error) {
			return dense.Map(g, neg), nil
		}},
	), nil
}
