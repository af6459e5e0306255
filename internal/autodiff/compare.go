package autodiff

import (
	"github.com/born-ml/beacon/internal/dense"
	"github.com/pkg/errors"
)

// Comparisons are elementwise predicates. They broadcast like arithmetic,
// yield 1 where the predicate holds and 0 elsewhere, and never track
// gradients. Go's == on *Tensor remains pointer identity.

// Equal returns a == b elementwise.
func Equal(a, b any) (*Tensor, error) {
	return compare("equal", a, b, func(x, y float64) bool { return x == y })
}

// NotEqual returns a != b elementwise.
func NotEqual(a, b any) (*Tensor, error) {
	return compare("not equal", a, b, func(x, y float64) bool { return x != y })
}

// LessThan returns a < b elementwise.
func LessThan(a, b any) (*Tensor, error) {
	return compare("less than", a, b, func(x, y float64) bool { return x < y })
}

// GreaterThan returns a > b elementwise.
func GreaterThan(a, b any) (*Tensor, error) {
	return compare("greater than", a, b, func(x, y float64) bool { return x > y })
}

// LessOrEqual returns a <= b elementwise.
func LessOrEqual(a, b any) (*Tensor, error) {
	return compare("less or equal", a, b, func(x, y float64) bool { return x <= y })
}

// GreaterOrEqual returns a >= b elementwise.
func GreaterOrEqual(a, b any) (*Tensor, error) {
	return compare("greater or equal", a, b, func(x, y float64) bool { return x >= y })
}

func compare(name string, a, b any, pred func(x, y float64) bool) (*Tensor, error) {
	x, y, err := binary(name, a, b)
	if err != nil {
		return nil, err
	}
	data, err := dense.Apply(x.data, y.data, func(p, q float64) float64 {
		if pred(p, q) {
			return 1
		}
		return 0
	})
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return newLeaf(data, false), nil
}
