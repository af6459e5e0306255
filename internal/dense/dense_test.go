package dense

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Shape
		want    Shape
		wantErr bool
	}{
		{"equal", Shape{3, 4}, Shape{3, 4}, Shape{3, 4}, false},
		{"row vector", Shape{1, 3}, Shape{3, 3}, Shape{3, 3}, false},
		{"column vector", Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, false},
		{"outer", Shape{3, 1}, Shape{1, 4}, Shape{3, 4}, false},
		{"scalar", Shape{1, 1}, Shape{2, 7}, Shape{2, 7}, false},
		{"mismatch", Shape{2, 3}, Shape{3, 3}, Shape{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BroadcastShapes(tt.a, tt.b)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrShape))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShape(t *testing.T) {
	s := Shape{2, 3}
	assert.Equal(t, 2, s.Rows())
	assert.Equal(t, 3, s.Cols())
	assert.Equal(t, 6, s.Size())
	assert.Equal(t, "(2, 3)", s.String())
	assert.NoError(t, s.Validate())
	assert.ErrorIs(t, Shape{0, 3}.Validate(), ErrShape)
}

func TestNormalizeAxis(t *testing.T) {
	for in, want := range map[int]int{0: 0, 1: 1, -1: 1, -2: 0} {
		got, err := NormalizeAxis(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, "axis %d", in)
	}
	_, err := NormalizeAxis(2)
	assert.ErrorIs(t, err, ErrShape)
}

func TestApplyBroadcast(t *testing.T) {
	a := mat.NewDense(1, 3, []float64{1, 2, 3})
	b := mat.NewDense(2, 1, []float64{10, 20})

	got, err := Apply(a, b, func(x, y float64) float64 { return x + y })
	require.NoError(t, err)

	want := mat.NewDense(2, 3, []float64{11, 12, 13, 21, 22, 23})
	assert.True(t, mat.Equal(want, got))
}

func TestApplyShapeMismatch(t *testing.T) {
	a := mat.NewDense(2, 3, nil)
	b := mat.NewDense(3, 3, nil)
	_, err := Apply(a, b, func(x, y float64) float64 { return x })
	assert.ErrorIs(t, err, ErrShape)
}

func TestBroadcastTo(t *testing.T) {
	m := mat.NewDense(1, 2, []float64{1, 2})
	got, err := BroadcastTo(m, Shape{3, 2})
	require.NoError(t, err)
	assert.True(t, mat.Equal(mat.NewDense(3, 2, []float64{1, 2, 1, 2, 1, 2}), got))

	// Broadcasting never shrinks an axis.
	_, err = BroadcastTo(mat.NewDense(3, 2, nil), Shape{1, 2})
	assert.ErrorIs(t, err, ErrShape)
}

func TestSumTo(t *testing.T) {
	g := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})

	t.Run("rows", func(t *testing.T) {
		got, err := SumTo(g, Shape{1, 3})
		require.NoError(t, err)
		assert.True(t, mat.Equal(mat.NewDense(1, 3, []float64{12, 15, 18}), got))
	})

	t.Run("cols", func(t *testing.T) {
		got, err := SumTo(g, Shape{3, 1})
		require.NoError(t, err)
		assert.True(t, mat.Equal(mat.NewDense(3, 1, []float64{6, 15, 24}), got))
	})

	t.Run("scalar", func(t *testing.T) {
		got, err := SumTo(g, Shape{1, 1})
		require.NoError(t, err)
		assert.Equal(t, 45.0, got.At(0, 0))
	})

	t.Run("same shape copies", func(t *testing.T) {
		got, err := SumTo(g, Shape{3, 3})
		require.NoError(t, err)
		got.Set(0, 0, 100)
		assert.Equal(t, 1.0, g.At(0, 0))
	})

	t.Run("incompatible", func(t *testing.T) {
		_, err := SumTo(g, Shape{2, 3})
		assert.ErrorIs(t, err, ErrShape)
	})
}

func TestArgMax(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{
		1, 9, 3,
		7, 2, 8,
	})
	assert.Equal(t, []int{1}, ArgMax(m, 0, true))
	assert.Equal(t, []int{1, 0, 1}, ArgMax(m, 0, false))
	assert.Equal(t, []int{1, 2}, ArgMax(m, 1, false))
}

func TestConstructors(t *testing.T) {
	s := Shape{2, 2}
	assert.True(t, mat.Equal(mat.NewDense(2, 2, []float64{1, 1, 1, 1}), Ones(s)))
	assert.True(t, mat.Equal(mat.NewDense(2, 2, nil), Zeros(s)))
	assert.True(t, mat.Equal(mat.NewDense(2, 2, []float64{3, 3, 3, 3}), Full(s, 3)))
	assert.Equal(t, 4.0, Sum(Ones(s)))
}
