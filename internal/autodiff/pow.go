package autodiff

import (
	"math"

	"github.com/born-ml/beacon/internal/dense"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Pow returns a raised elementwise to the power b, with broadcasting.
//
// Backward:
//   - d(a^b)/da = b * a^(b-1), so grad_a = outputGrad * b * a^(b-1)
//   - d(a^b)/db = a^b * ln(a), so grad_b = outputGrad * a^b * ln(a)
//
// grad_b is NaN where a <= 0.
func Pow(a, b any) (*Tensor, error) {
	x, y, err := binary("pow", a, b)
	if err != nil {
		return nil, err
	}
	data, err := dense.Apply(x.data, y.data, math.Pow)
	if err != nil {
		return nil, errors.Wrap(err, "pow")
	}
	return record(data,
		operand{x, func(g *mat.Dense) (*mat.Dense, error) {
			local, err := dense.Apply(x.data, y.data, func(p, q float64) float64 {
				return q * math.Pow(p, q-1)
			})
			if err != nil {
				return nil, err
			}
			return chain(g, local, mul, x.Shape())
		}},
		operand{y, func(g *mat.Dense) (*mat.Dense, error) {
			local, err := dense.Apply(x.data, y.data, func(p, q float64) float64 {
				return math.Pow(p, q) * math.Log(p)
			})
			if err != nil {
				return nil, err
			}
			return chain(g, local, mul, y.Shape())
		}},
	), nil
}
