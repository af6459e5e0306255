package autodiff

import (
	"github.com/born-ml/beacon/internal/dense"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// operand pairs an operation input with its local derivative.
type operand struct {
	t  *Tensor
	fn GradFn
}

// record wraps an operation's forward result and attaches one edge per
// operand that requires grad.
func record(data *mat.Dense, operands ...operand) *Tensor {
	out := &Tensor{data: data}
	for _, op := range operands {
		if !op.t.requiresGrad {
			continue
		}
		out.edges = append(out.edges, Edge{Input: op.t, Grad: op.fn})
	}
	if len(out.edges) > 0 {
		out.requiresGrad = true
		out.grad = &Tensor{data: dense.Zeros(out.Shape())}
	}
	return out
}

// binary coerces both operands of a two-input operation.
func binary(name string, a, b any) (*Tensor, *Tensor, error) {
	x, err := AsTensor(a)
	if err != nil {
		return nil, nil, errors.Wrap(err, name)
	}
	y, err := AsTensor(b)
	if err != nil {
		return nil, nil, errors.Wrap(err, name)
	}
	return x, y, nil
}

// chain multiplies the upstream gradient by a local factor with fn and
// reduces the product to target.
func chain(g, local mat.Matrix, fn func(g, l float64) float64, target dense.Shape) (*mat.Dense, error) {
	p, err := dense.Apply(g, local, fn)
	if err != nil {
		return nil, err
	}
	return dense.SumTo(p, target)
}

func reduceTo(t *Tensor) GradFn {
	return func(g *mat.Dense) (*mat.Dense, error) {
		return dense.SumTo(g, t.Shape())
	}
}

func mul(x, y float64) float64 { return x * y }
func neg(x float64) float64    { return -x }
