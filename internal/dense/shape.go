package dense

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Shape is the (rows, cols) extent of an array.
type Shape [2]int

// Rows returns the number of rows.
func (s Shape) Rows() int {
	return s[0]
}

// Cols returns the number of columns.
func (s Shape) Cols() int {
	return s[1]
}

// Size returns the total number of elements.
func (s Shape) Size() int {
	return s[0] * s[1]
}

// Validate checks that both extents are positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return errors.Wrapf(ErrShape, "invalid extent at axis %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d)", s[0], s[1])
}

// ShapeOf returns the shape of m.
func ShapeOf(m mat.Matrix) Shape {
	r, c := m.Dims()
	return Shape{r, c}
}

// BroadcastShapes returns the shape produced by combining a and b elementwise.
//
// Examples:
//
//	(3, 1) + (3, 5) -> (3, 5)
//	(1, 5) + (3, 5) -> (3, 5)
//	(3, 4) + (3, 5) -> ErrShape
func BroadcastShapes(a, b Shape) (Shape, error) {
	var out Shape
	for i := range a {
		switch {
		case a[i] == b[i]:
			out[i] = a[i]
		case a[i] == 1:
			out[i] = b[i]
		case b[i] == 1:
			out[i] = a[i]
		default:
			return Shape{}, errors.Wrapf(ErrShape, "shapes %v and %v are not broadcastable (axis %d: %d vs %d)",
				a, b, i, a[i], b[i])
		}
	}
	return out, nil
}

// NormalizeAxis maps a possibly negative axis onto 0 or 1.
func NormalizeAxis(axis int) (int, error) {
	switch axis {
	case 0, -2:
		return 0, nil
	case 1, -1:
		return 1, nil
	}
	return 0, errors.Wrapf(ErrShape, "axis %d out of range for 2 dimensions", axis)
}

// source maps a broadcast coordinate back onto an operand with the given extent.
func source(i, extent int) int {
	if extent == 1 {
		return 0
	}
	return i
}
