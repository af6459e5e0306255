package autodiff

import (
	"github.com/born-ml/beacon/internal/dense"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// MatMul returns the matrix product a @ b.
//
// Backward:
//   - grad_a = outputGrad @ b^T
//   - grad_b = a^T @ outputGrad
func MatMul(a, b any) (*Tensor, error) {
	x, y, err := binary("matmul", a, b)
	if err != nil {
		return nil, err
	}
	sx, sy := x.Shape(), y.Shape()
	if sx.Cols() != sy.Rows() {
		return nil, errors.Wrapf(ErrShape, "matmul: inner dimensions differ for %v and %v", sx, sy)
	}

	var data mat.Dense
	data.Mul(x.data, y.data)
	out := dense.Shape{sx.Rows(), sy.Cols()}
	return record(&data,
		operand{x, func(g *mat.Dense) (*mat.Dense, error) {
			if gs := dense.ShapeOf(g); gs != out {
				return nil, errors.Wrapf(ErrShape, "matmul: gradient shape %v, want %v", gs, out)
			}
			var grad mat.Dense
			grad.Mul(g, y.data.T())
			return &grad, nil
		}},
		operand{y, func(g *mat.Dense) (*mat.Dense, error) {
			if gs := dense.ShapeOf(g); gs != out {
				return nil, errors.Wrapf(ErrShape, "matmul: gradient shape %v, want %v", gs, out)
			}
			var grad mat.Dense
			grad.Mul(x.data.T(), g)
			return &grad, nil
		}},
	), nil
}

// Transpose returns a^T.
//
// Backward: grad_a = outputGrad^T.
func Transpose(a any) (*Tensor, error) {
	x, err := AsTensor(a)
	if err != nil {
		return nil, errors.Wrap(err, "transpose")
	}
	return record(mat.DenseCopyOf(x.data.T()),
		operand{x, func(g *mat.Dense) (*mat.Dense, error) {
			return mat.DenseCopyOf(g.T()), nil
		}},
	), nil
}
