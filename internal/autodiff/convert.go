package autodiff

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// toDense converts user data into a matrix, promoting scalars to (1, 1) and
// flat slices to a (1, n) row.
func toDense(data any) (*mat.Dense, error) {
	switch v := data.(type) {
	case *Tensor:
		if v == nil {
			return nil, errors.Wrap(ErrConstruction, "nil tensor")
		}
		return v.data, nil
	case *mat.Dense:
		if v == nil || v.IsEmpty() {
			return nil, errors.Wrap(ErrConstruction, "empty matrix")
		}
		return v, nil
	case mat.Matrix:
		if r, c := v.Dims(); r == 0 || c == 0 {
			return nil, errors.Wrap(ErrConstruction, "empty matrix")
		}
		return mat.DenseCopyOf(v), nil
	case float64:
		return scalar(v), nil
	case float32:
		return scalar(float64(v)), nil
	case int:
		return scalar(float64(v)), nil
	case []float64:
		return row(v)
	case []float32:
		return row(widen(v))
	case []int:
		return row(widen(v))
	case [][]float64:
		return matrix(v)
	case nil:
		return nil, errors.Wrap(ErrConstruction, "nil data")
	}
	return nil, errors.Wrapf(ErrConstruction, "unsupported data type %T", data)
}

func scalar(v float64) *mat.Dense {
	return mat.NewDense(1, 1, []float64{v})
}

func row(v []float64) (*mat.Dense, error) {
	if len(v) == 0 {
		return nil, errors.Wrap(ErrConstruction, "empty slice")
	}
	data := make([]float64, len(v))
	copy(data, v)
	return mat.NewDense(1, len(data), data), nil
}

func matrix(v [][]float64) (*mat.Dense, error) {
	if len(v) == 0 || len(v[0]) == 0 {
		return nil, errors.Wrap(ErrConstruction, "empty slice")
	}
	cols := len(v[0])
	data := make([]float64, 0, len(v)*cols)
	for i, r := range v {
		if len(r) != cols {
			return nil, errors.Wrapf(ErrConstruction, "ragged rows: row %d has %d elements, want %d", i, len(r), cols)
		}
		data = append(data, r...)
	}
	return mat.NewDense(len(v), cols, data), nil
}

func widen[T float32 | int](v []T) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
