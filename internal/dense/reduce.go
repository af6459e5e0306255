package dense

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Sum returns the sum of all elements of m.
func Sum(m mat.Matrix) float64 {
	return mat.Sum(m)
}

// SumAxis sums m along a normalized axis (0 or 1), keeping the reduced axis
// with extent 1.
func SumAxis(m mat.Matrix, axis int) *mat.Dense {
	r, c := m.Dims()
	if axis == 0 {
		res := mat.NewDense(1, c, nil)
		col := make([]float64, r)
		for j := 0; j < c; j++ {
			res.Set(0, j, floats.Sum(mat.Col(col, j, m)))
		}
		return res
	}

	res := mat.NewDense(r, 1, nil)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		res.Set(i, 0, floats.Sum(mat.Row(row, i, m)))
	}
	return res
}

// ArgMax returns the index of the first maximum. With flat set the whole
// array is searched in row-major order and a single index is returned;
// otherwise one index is returned per column (axis 0) or per row (axis 1).
func ArgMax(m mat.Matrix, axis int, flat bool) []int {
	r, c := m.Dims()
	if flat {
		return []int{floats.MaxIdx(mat.DenseCopyOf(m).RawMatrix().Data)}
	}

	if axis == 0 {
		idx := make([]int, c)
		col := make([]float64, r)
		for j := range idx {
			idx[j] = floats.MaxIdx(mat.Col(col, j, m))
		}
		return idx
	}

	idx := make([]int, r)
	row := make([]float64, c)
	for i := range idx {
		idx[i] = floats.MaxIdx(mat.Row(row, i, m))
	}
	return idx
}

// Full returns an array of shape s filled with v.
func Full(s Shape, v float64) *mat.Dense {
	data := make([]float64, s.Size())
	if v != 0 {
		for i := range data {
			data[i] = v
		}
	}
	return mat.NewDense(s[0], s[1], data)
}

// Zeros returns a zero-filled array of shape s.
func Zeros(s Shape) *mat.Dense {
	return mat.NewDense(s[0], s[1], nil)
}

// Ones returns an array of shape s filled with 1.
func Ones(s Shape) *mat.Dense {
	return Full(s, 1)
}
