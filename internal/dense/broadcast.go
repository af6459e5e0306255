package dense

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// BroadcastTo materializes m at shape s.
func BroadcastTo(m mat.Matrix, s Shape) (*mat.Dense, error) {
	src := ShapeOf(m)
	out, err := BroadcastShapes(src, s)
	if err != nil {
		return nil, err
	}
	if out != s {
		return nil, errors.Wrapf(ErrShape, "cannot broadcast %v to %v", src, s)
	}

	res := mat.NewDense(s[0], s[1], nil)
	for i := 0; i < s[0]; i++ {
		for j := 0; j < s[1]; j++ {
			res.Set(i, j, m.At(source(i, src[0]), source(j, src[1])))
		}
	}
	return res, nil
}

// Apply combines a and b elementwise with fn after broadcasting them to a
// common shape.
func Apply(a, b mat.Matrix, fn func(x, y float64) float64) (*mat.Dense, error) {
	sa, sb := ShapeOf(a), ShapeOf(b)
	s, err := BroadcastShapes(sa, sb)
	if err != nil {
		return nil, err
	}

	res := mat.NewDense(s[0], s[1], nil)
	for i := 0; i < s[0]; i++ {
		for j := 0; j < s[1]; j++ {
			x := a.At(source(i, sa[0]), source(j, sa[1]))
			y := b.At(source(i, sb[0]), source(j, sb[1]))
			res.Set(i, j, fn(x, y))
		}
	}
	return res, nil
}

// Map applies fn to every element of a.
func Map(a mat.Matrix, fn func(float64) float64) *mat.Dense {
	var res mat.Dense
	res.Apply(func(_, _ int, v float64) float64 {
		return fn(v)
	}, a)
	return &res
}

// SumTo reduces g to the target shape by summing over the axes that
// broadcasting expanded. The target must broadcast to g's shape.
//
// Example:
//
//	Forward:  a(1, 3) + b(3, 3) -> c(3, 3)
//	Backward: SumTo(grad_c(3, 3), (1, 3)) -> grad_a, column sums of grad_c
//
// The result never aliases g.
func SumTo(g mat.Matrix, target Shape) (*mat.Dense, error) {
	src := ShapeOf(g)
	if src == target {
		return mat.DenseCopyOf(g), nil
	}

	if s, err := BroadcastShapes(target, src); err != nil || s != src {
		return nil, errors.Wrapf(ErrShape, "cannot reduce %v to %v", src, target)
	}

	res := mat.DenseCopyOf(g)
	if target[0] == 1 && src[0] != 1 {
		res = SumAxis(res, 0)
	}
	if target[1] == 1 && src[1] != 1 {
		res = SumAxis(res, 1)
	}
	return res, nil
}
