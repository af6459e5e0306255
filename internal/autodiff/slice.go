package autodiff

import (
	"github.com/born-ml/beacon/internal/dense"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Slice returns the copy of rows [r0, r1) and columns [c0, c1) of a.
//
// Backward: grad_a is zero everywhere except the sliced region, which
// receives outputGrad.
func Slice(a any, r0, r1, c0, c1 int) (*Tensor, error) {
	x, err := AsTensor(a)
	if err != nil {
		return nil, errors.Wrap(err, "slice")
	}
	s := x.Shape()
	if r0 < 0 || r1 > s[0] || r0 >= r1 || c0 < 0 || c1 > s[1] || c0 >= c1 {
		return nil, errors.Wrapf(ErrShape, "slice: [%d:%d, %d:%d] out of range for shape %v", r0, r1, c0, c1, s)
	}

	data := mat.DenseCopyOf(x.data.Slice(r0, r1, c0, c1))
	region := dense.Shape{r1 - r0, c1 - c0}
	return record(data,
		operand{x, func(g *mat.Dense) (*mat.Dense, error) {
			if gs := dense.ShapeOf(g); gs != region {
				return nil, errors.Wrapf(ErrShape, "slice: gradient shape %v, want %v", gs, region)
			}
			scattered := dense.Zeros(x.Shape())
			scattered.Slice(r0, r1, c0, c1).(*mat.Dense).Copy(g)
			return scattered, nil
		}},
	), nil
}

// Row returns row i of t as a (1, cols) tensor.
func (t *Tensor) Row(i int) (*Tensor, error) {
	return Slice(t, i, i+1, 0, t.Shape().Cols())
}

// Col returns column j of t as a (rows, 1) tensor.
func (t *Tensor) Col(j int) (*Tensor, error) {
	return Slice(t, 0, t.Shape().Rows(), j, j+1)
}

// At returns element (i, j) of t as a (1, 1) tensor.
func (t *Tensor) At(i, j int) (*Tensor, error) {
	return Slice(t, i, i+1, j, j+1)
}
