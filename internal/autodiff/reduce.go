package autodiff

import (
	"github.com/born-ml/beacon/internal/dense"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Sum adds up the elements of a. Without an axis the result is (1, 1);
// with axis 0 it is (1, cols) and with axis 1 it is (rows, 1).
//
// Backward: outputGrad is broadcast back to a's shape.
func Sum(a any, axis ...int) (*Tensor, error) {
	return reduce("sum", a, axis, false)
}

// Mean averages the elements of a, with the same axis handling as Sum.
//
// Backward: outputGrad / n is broadcast back to a's shape, where n is the
// number of elements averaged.
func Mean(a any, axis ...int) (*Tensor, error) {
	return reduce("mean", a, axis, true)
}

func reduce(name string, a any, axis []int, mean bool) (*Tensor, error) {
	x, err := AsTensor(a)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}

	s := x.Shape()
	var data *mat.Dense
	var n int
	switch len(axis) {
	case 0:
		data = mat.NewDense(1, 1, []float64{dense.Sum(x.data)})
		n = s.Size()
	case 1:
		ax, err := dense.NormalizeAxis(axis[0])
		if err != nil {
			return nil, errors.Wrap(err, name)
		}
		data = dense.SumAxis(x.data, ax)
		n = s[ax]
	default:
		return nil, errors.Wrapf(ErrShape, "%s: expected at most one axis, got %d", name, len(axis))
	}

	scale := 1.0
	if mean {
		scale = 1 / float64(n)
		data.Scale(scale, data)
	}

	return record(data,
		operand{x, func(g *mat.Dense) (*mat.Dense, error) {
			grad, err := dense.BroadcastTo(g, s)
			if err != nil {
				return nil, err
			}
			if mean {
				grad.Scale(scale, grad)
			}
			return grad, nil
		}},
	), nil
}
