package autodiff_test

import (
	"math"
	"testing"

	"github.com/born-ml/beacon/internal/autodiff"
	"github.com/born-ml/beacon/internal/dense"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiv_Gradients(t *testing.T) {
	a := autodiff.MustNew([]float64{6}, true)
	b := autodiff.MustNew([]float64{2}, true)
	c := autodiff.Must(a.Div(b))
	assert.Equal(t, [][]float64{{3}}, rows(c))

	require.NoError(t, c.Backward())
	assert.Equal(t, [][]float64{{0.5}}, rows(a.Grad()))
	// -a / b² = -6 / 4
	assert.Equal(t, [][]float64{{-1.5}}, rows(b.Grad()))
}

func TestPow_Gradients(t *testing.T) {
	a := autodiff.MustNew([]float64{3}, true)
	b := autodiff.MustNew([]float64{2}, true)
	c := autodiff.Must(a.Pow(b))
	assert.Equal(t, [][]float64{{9}}, rows(c))

	require.NoError(t, c.Backward())
	assert.Equal(t, [][]float64{{6}}, rows(a.Grad()))
	assert.InDelta(t, 9*math.Log(3), rows(b.Grad())[0][0], 1e-12)
}

func TestPow_ConstantExponent(t *testing.T) {
	a := autodiff.MustNew([]float64{1, 2, 3}, true)
	c := autodiff.Must(a.Pow(3.0))
	require.Len(t, c.Edges(), 1)

	require.NoError(t, c.Backward())
	assert.Equal(t, [][]float64{{3, 12, 27}}, rows(a.Grad()))
}

func TestNeg(t *testing.T) {
	a := autodiff.MustNew([]float64{1, -2}, true)
	c := autodiff.Must(a.Neg())
	assert.Equal(t, [][]float64{{-1, 2}}, rows(c))

	require.NoError(t, c.Backward())
	assert.Equal(t, [][]float64{{-1, -1}}, rows(a.Grad()))
}

func TestReversedOperands(t *testing.T) {
	x := autodiff.MustNew([]float64{2}, true)

	y := autodiff.Must(autodiff.Sub(10.0, x))
	assert.Equal(t, [][]float64{{8}}, rows(y))
	require.NoError(t, y.Backward())
	assert.Equal(t, [][]float64{{-1}}, rows(x.Grad()))

	x.ZeroGrad()
	z := autodiff.Must(autodiff.Div(1.0, x))
	assert.Equal(t, [][]float64{{0.5}}, rows(z))
	require.NoError(t, z.Backward())
	assert.Equal(t, [][]float64{{-0.25}}, rows(x.Grad()))

	x.ZeroGrad()
	p := autodiff.Must(autodiff.Pow(2.0, x))
	assert.Equal(t, [][]float64{{4}}, rows(p))
	require.NoError(t, p.Backward())
	assert.InDelta(t, 4*math.Ln2, rows(x.Grad())[0][0], 1e-12)
}

func TestSlice_ScattersGradient(t *testing.T) {
	x := autodiff.MustNew([][]float64{{1, 2, 3}, {4, 5, 6}}, true)
	s := autodiff.Must(x.Slice(0, 2, 1, 3))
	assert.Equal(t, [][]float64{{2, 3}, {5, 6}}, rows(s))

	require.NoError(t, autodiff.Must(s.Sum()).Backward())
	assert.Equal(t, [][]float64{{0, 1, 1}, {0, 1, 1}}, rows(x.Grad()))
}

func TestSlice_RowColAt(t *testing.T) {
	x := autodiff.MustNew([][]float64{{1, 2}, {3, 4}}, true)

	r := autodiff.Must(x.Row(1))
	assert.Equal(t, [][]float64{{3, 4}}, rows(r))
	c := autodiff.Must(x.Col(0))
	assert.Equal(t, [][]float64{{1}, {3}}, rows(c))
	e := autodiff.Must(x.At(0, 1))
	v, err := e.Item()
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	require.NoError(t, r.Backward())
	require.NoError(t, c.Backward())
	require.NoError(t, e.Backward())
	assert.Equal(t, [][]float64{{1, 1}, {2, 1}}, rows(x.Grad()))
}

func TestSlice_OutOfRange(t *testing.T) {
	x := autodiff.MustNew([][]float64{{1, 2}, {3, 4}}, true)
	for _, idx := range [][4]int{{0, 3, 0, 1}, {-1, 1, 0, 1}, {1, 1, 0, 2}, {0, 1, 2, 3}} {
		_, err := x.Slice(idx[0], idx[1], idx[2], idx[3])
		assert.ErrorIs(t, err, autodiff.ErrShape, "slice %v", idx)
	}
	_, err := x.Row(2)
	assert.ErrorIs(t, err, autodiff.ErrShape)
}

func TestComparisons(t *testing.T) {
	a := autodiff.MustNew([]float64{1, 2, 3}, true)
	b := autodiff.MustNew([]float64{2, 2, 2}, true)

	tests := []struct {
		name string
		op   func(any) (*autodiff.Tensor, error)
		want []float64
	}{
		{"equal", a.Equal, []float64{0, 1, 0}},
		{"not equal", a.NotEqual, []float64{1, 0, 1}},
		{"less than", a.LessThan, []float64{1, 0, 0}},
		{"greater than", a.GreaterThan, []float64{0, 0, 1}},
		{"less or equal", a.LessOrEqual, []float64{1, 1, 0}},
		{"greater or equal", a.GreaterOrEqual, []float64{0, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op(b)
			require.NoError(t, err)
			assert.Equal(t, [][]float64{tt.want}, rows(got))
			assert.False(t, got.RequiresGrad())
			assert.Empty(t, got.Edges())
		})
	}

	// Scalars broadcast like arithmetic operands.
	got := autodiff.Must(autodiff.GreaterThan(a, 1.5))
	assert.Equal(t, [][]float64{{0, 1, 1}}, rows(got))
}

func TestReductionShapes(t *testing.T) {
	x := autodiff.MustNew([][]float64{{1, 2, 3}, {4, 5, 6}}, true)

	assert.Equal(t, dense.Shape{1, 1}, autodiff.Must(x.Sum()).Shape())
	assert.Equal(t, [][]float64{{5, 7, 9}}, rows(autodiff.Must(x.Sum(0))))
	assert.Equal(t, [][]float64{{6}, {15}}, rows(autodiff.Must(x.Sum(1))))
	assert.Equal(t, [][]float64{{3.5}}, rows(autodiff.Must(x.Mean())))
	assert.Equal(t, [][]float64{{2}, {5}}, rows(autodiff.Must(x.Mean(-1))))

	_, err := x.Sum(0, 1)
	assert.ErrorIs(t, err, autodiff.ErrShape)

	m := autodiff.Must(x.Mean())
	require.NoError(t, m.Backward())
	for _, r := range rows(x.Grad()) {
		for _, v := range r {
			assert.InDelta(t, 1.0/6, v, 1e-12)
		}
	}
}

func TestMatMul_Forward(t *testing.T) {
	a := autodiff.MustNew([][]float64{{1, 2}, {3, 4}}, true)
	b := autodiff.MustNew([][]float64{{5}, {6}}, true)
	c := autodiff.Must(a.MatMul(b))
	assert.Equal(t, [][]float64{{17}, {39}}, rows(c))

	require.NoError(t, c.Backward())
	assert.Equal(t, [][]float64{{5, 6}, {5, 6}}, rows(a.Grad()))
	assert.Equal(t, [][]float64{{4}, {6}}, rows(b.Grad()))
}

func TestTranspose(t *testing.T) {
	a := autodiff.MustNew([][]float64{{1, 2, 3}}, true)
	at := autodiff.Must(a.T())
	assert.Equal(t, dense.Shape{3, 1}, at.Shape())

	require.NoError(t, at.BackwardWithSeed([][]float64{{1}, {2}, {3}}))
	assert.Equal(t, [][]float64{{1, 2, 3}}, rows(a.Grad()))
}
