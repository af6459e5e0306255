// Package autodiff implements reverse-mode automatic differentiation over a
// dynamically built computation graph.
//
// Architecture:
//   - Tensor: wraps a dense float64 matrix and optionally tracks its gradient
//   - Edge: links an operation's output to one tracked input together with the
//     local vector-Jacobian product for that input
//   - Operations (Add, Mul, Pow, Slice, ...): compute the forward value and
//     record edges when any input requires grad
//   - Backward: walks edges depth-first from an output, accumulating gradients
//     into every tracked ancestor
//
// Usage:
//
//	x := autodiff.MustNew([]float64{2.0}, true)
//	y := autodiff.Must(x.Mul(x)) // y = x²
//
//	if err := y.Backward(); err != nil {
//	    return err
//	}
//	fmt.Println(x.Grad()) // dy/dx = 2x = 4.0
//
// The graph is only ever extended from existing tensors, so it cannot contain
// cycles. A tensor reached along several paths receives one contribution per
// path; contributions are summed.
package autodiff

import (
	"fmt"

	"github.com/born-ml/beacon/internal/dense"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// GradFn maps the upstream gradient of an operation's output to the gradient
// owed to one of its inputs. The result must have the input's shape.
type GradFn func(upstream *mat.Dense) (*mat.Dense, error)

// Edge connects a tensor to an input of the operation that produced it.
type Edge struct {
	Input *Tensor
	Grad  GradFn
}

// Tensor is a dense matrix that records the operations applied to it.
//
// Tensors with requiresGrad set own a zero-initialized gradient of the same
// shape as their data. Tensors produced by operations require grad iff any
// of their inputs do, and hold one Edge per tracked input.
type Tensor struct {
	data         *mat.Dense
	requiresGrad bool
	grad         *Tensor
	edges        []Edge
}

// New creates a leaf tensor from data.
//
// Accepted inputs are scalars (float64, float32, int), flat slices
// ([]float64, []float32, []int), nested [][]float64, gonum matrices and
// *Tensor. Scalars become (1, 1) and flat slices become a (1, n) row.
// A *mat.Dense is used as is, without copying.
func New(data any, requiresGrad bool) (*Tensor, error) {
	m, err := toDense(data)
	if err != nil {
		return nil, err
	}
	return newLeaf(m, requiresGrad), nil
}

// MustNew is like New but panics on error.
func MustNew(data any, requiresGrad bool) *Tensor {
	return Must(New(data, requiresGrad))
}

// Must returns t and panics if err is non-nil. It is intended for chaining
// operations whose shapes are known to be valid.
//
//	loss := autodiff.Must(autodiff.Must(x.Sub(5.0)).Pow(2.0))
func Must(t *Tensor, err error) *Tensor {
	if err != nil {
		panic(err)
	}
	return t
}

// Zeros creates a zero-filled leaf tensor.
func Zeros(rows, cols int, requiresGrad bool) (*Tensor, error) {
	return Full(rows, cols, 0, requiresGrad)
}

// Ones creates a leaf tensor filled with 1.
func Ones(rows, cols int, requiresGrad bool) (*Tensor, error) {
	return Full(rows, cols, 1, requiresGrad)
}

// Full creates a leaf tensor filled with v.
func Full(rows, cols int, v float64, requiresGrad bool) (*Tensor, error) {
	s := dense.Shape{rows, cols}
	if err := s.Validate(); err != nil {
		return nil, errors.Wrap(ErrConstruction, err.Error())
	}
	return newLeaf(dense.Full(s, v), requiresGrad), nil
}

// AsTensor coerces v into a tensor. A *Tensor is returned unchanged; any
// other value becomes a new leaf that does not require grad.
func AsTensor(v any) (*Tensor, error) {
	if t, ok := v.(*Tensor); ok {
		if t == nil {
			return nil, errors.Wrap(ErrConstruction, "nil tensor")
		}
		return t, nil
	}
	return New(v, false)
}

func newLeaf(m *mat.Dense, requiresGrad bool) *Tensor {
	t := &Tensor{data: m, requiresGrad: requiresGrad}
	if requiresGrad {
		t.grad = &Tensor{data: dense.Zeros(t.Shape())}
	}
	return t
}

// Data returns the underlying matrix. Optimizers update it in place.
func (t *Tensor) Data() *mat.Dense {
	return t.data
}

// Grad returns the accumulated gradient, or nil if t does not require grad.
func (t *Tensor) Grad() *Tensor {
	return t.grad
}

// RequiresGrad reports whether t tracks its gradient.
func (t *Tensor) RequiresGrad() bool {
	return t.requiresGrad
}

// Shape returns the (rows, cols) shape of t.
func (t *Tensor) Shape() dense.Shape {
	return dense.ShapeOf(t.data)
}

// Edges returns the recorded graph edges in the order they were created.
func (t *Tensor) Edges() []Edge {
	edges := make([]Edge, len(t.edges))
	copy(edges, t.edges)
	return edges
}

// Item returns the only element of t.
func (t *Tensor) Item() (float64, error) {
	if s := t.Shape(); s.Size() != 1 {
		return 0, errors.Wrapf(ErrPrecondition, "item: tensor of shape %v has %d elements", s, s.Size())
	}
	return t.data.At(0, 0), nil
}

// ArgMax returns the indices of the maximum values as an untracked tensor.
//
// Without an axis, the index into the row-major flattened data is returned
// as a (1, 1) tensor. With axis 0 (or -2) the result holds one index per
// column, with axis 1 (or -1) one index per row; both are returned as a row.
//
// ArgMax is not differentiable and records no edges.
func (t *Tensor) ArgMax(axis ...int) (*Tensor, error) {
	var idx []int
	switch len(axis) {
	case 0:
		idx = dense.ArgMax(t.data, 0, true)
	case 1:
		ax, err := dense.NormalizeAxis(axis[0])
		if err != nil {
			return nil, errors.Wrap(err, "argmax")
		}
		idx = dense.ArgMax(t.data, ax, false)
	default:
		return nil, errors.Wrapf(ErrShape, "argmax: expected at most one axis, got %d", len(axis))
	}

	data := make([]float64, len(idx))
	for i, v := range idx {
		data[i] = float64(v)
	}
	return newLeaf(mat.NewDense(1, len(data), data), false), nil
}

// SubInPlace subtracts v from t's data, broadcasting v to t's shape.
// No edge is recorded and the gradient is left untouched.
func (t *Tensor) SubInPlace(v any) error {
	other, err := AsTensor(v)
	if err != nil {
		return errors.Wrap(err, "sub in place")
	}
	upd, err := dense.BroadcastTo(other.data, t.Shape())
	if err != nil {
		return errors.Wrap(err, "sub in place")
	}
	t.data.Sub(t.data, upd)
	return nil
}

func (t *Tensor) String() string {
	return fmt.Sprintf("<Tensor data=%v, requires_grad=%t>",
		mat.Formatted(t.data, mat.FormatPython()), t.requiresGrad)
}
