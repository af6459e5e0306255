package autodiff

import (
	"github.com/born-ml/beacon/internal/dense"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ZeroGrad resets the gradient to zeros. It is a no-op for tensors that do
// not require grad.
//
// Gradients accumulate across Backward calls until ZeroGrad is called, so a
// training loop calls it once per step.
func (t *Tensor) ZeroGrad() {
	if !t.requiresGrad {
		return
	}
	t.grad.data.Zero()
}

// Backward computes gradients of t with respect to every tracked ancestor,
// seeding the pass with ones of t's shape. For a (1, 1) loss this is dL/dL = 1;
// for larger outputs it differentiates the sum of all elements.
func (t *Tensor) Backward() error {
	return t.BackwardWithSeed(nil)
}

// BackwardWithSeed is like Backward but starts from the given upstream
// gradient, which must have exactly t's shape.
//
// Algorithm:
//  1. Add the seed to t's gradient
//  2. For every edge, in the order it was recorded, map the seed through the
//     edge's GradFn
//  3. Recurse into the edge's input with that result as its seed
//
// Ancestors reachable along several paths are visited once per path. Each
// visit adds its contribution, which is the sum rule of differentiation.
func (t *Tensor) BackwardWithSeed(seed any) error {
	if !t.requiresGrad {
		return errors.Wrap(ErrPrecondition, "backward: tensor does not require grad")
	}

	g := dense.Ones(t.Shape())
	if seed != nil {
		s, err := AsTensor(seed)
		if err != nil {
			return errors.Wrap(err, "backward: seed")
		}
		if s.Shape() != t.Shape() {
			return errors.Wrapf(ErrShape, "backward: seed shape %v does not match tensor shape %v",
				s.Shape(), t.Shape())
		}
		g = s.data
	}

	if err := t.accumulate(g); err != nil {
		return errors.Wrap(err, "backward")
	}
	return nil
}

func (t *Tensor) accumulate(g *mat.Dense) error {
	t.grad.data.Add(t.grad.data, g)

	for _, e := range t.edges {
		down, err := e.Grad(g)
		if err != nil {
			return err
		}
		if s := dense.ShapeOf(down); s != e.Input.Shape() {
			return errors.Wrapf(ErrShape, "gradient of shape %v for input of shape %v", s, e.Input.Shape())
		}
		if err := e.Input.accumulate(down); err != nil {
			return err
		}
	}
	return nil
}
