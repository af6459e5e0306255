package nn_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/born-ml/beacon/internal/autodiff"
	"github.com/born-ml/beacon/internal/dense"
	"github.com/born-ml/beacon/internal/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() rand.Source { return rand.NewPCG(1, 2) }

func TestXavier_Bound(t *testing.T) {
	w := nn.Xavier(4, 8, 8, 4, seeded())
	assert.Equal(t, dense.Shape{8, 4}, w.Shape())
	assert.True(t, w.RequiresGrad())

	bound := math.Sqrt(6.0 / 12.0)
	for _, v := range w.Data().RawMatrix().Data {
		assert.LessOrEqual(t, math.Abs(v), bound)
	}
}

func TestLinear_Forward(t *testing.T) {
	l := nn.NewLinear(2, 3, seeded())
	assert.Equal(t, 2, l.InFeatures())
	assert.Equal(t, 3, l.OutFeatures())
	assert.Equal(t, dense.Shape{3, 2}, l.Weight().Shape())
	assert.Equal(t, dense.Shape{1, 3}, l.Bias().Shape())

	// W = [[1, 0], [0, 1], [1, 1]], b = [0.5, 0.5, 0.5]
	w := l.Weight().Data()
	w.Set(0, 0, 1)
	w.Set(0, 1, 0)
	w.Set(1, 0, 0)
	w.Set(1, 1, 1)
	w.Set(2, 0, 1)
	w.Set(2, 1, 1)
	require.NoError(t, l.Bias().SubInPlace(-0.5))

	x := autodiff.MustNew([][]float64{{1, 2}, {3, 4}}, false)
	y, err := l.Forward(x)
	require.NoError(t, err)
	assert.Equal(t, dense.Shape{2, 3}, y.Shape())
	assert.Equal(t, []float64{1.5, 2.5, 3.5, 3.5, 4.5, 7.5}, y.Data().RawMatrix().Data)
}

func TestLinear_Gradients(t *testing.T) {
	l := nn.NewLinear(2, 1, seeded())
	x := autodiff.MustNew([][]float64{{1, 2}, {3, 4}}, false)

	y, err := l.Forward(x)
	require.NoError(t, err)
	s, err := y.Sum()
	require.NoError(t, err)
	require.NoError(t, s.Backward())

	// d(sum(x @ W.T + b))/dW = column sums of x; /db = batch size.
	assert.Equal(t, []float64{4, 6}, l.Weight().Grad().Data().RawMatrix().Data)
	assert.Equal(t, []float64{2}, l.Bias().Grad().Data().RawMatrix().Data)
}

func TestLinear_InputMismatch(t *testing.T) {
	l := nn.NewLinear(3, 1, seeded())
	_, err := l.Forward(autodiff.MustNew([]float64{1, 2}, false))
	assert.ErrorIs(t, err, autodiff.ErrShape)
}

func TestSequential(t *testing.T) {
	model := nn.NewSequential(
		nn.NewLinear(2, 4, seeded()),
		nn.NewReLU(),
	)
	model.Add(nn.NewLinear(4, 1, seeded()))
	model.Add(nn.NewSigmoid())
	assert.Equal(t, 4, model.Len())
	assert.Len(t, model.Parameters(), 4)

	y, err := model.Forward(autodiff.MustNew([][]float64{{1, -1}, {0.5, 2}, {0, 0}}, false))
	require.NoError(t, err)
	assert.Equal(t, dense.Shape{3, 1}, y.Shape())
	for _, v := range y.Data().RawMatrix().Data {
		assert.Greater(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestSequential_WrapsModuleError(t *testing.T) {
	model := nn.NewSequential(nn.NewLinear(2, 2, seeded()), nn.NewLinear(3, 1, seeded()))
	_, err := model.Forward(autodiff.MustNew([]float64{1, 2}, false))
	assert.ErrorIs(t, err, autodiff.ErrShape)
	assert.Contains(t, err.Error(), "module 1")
}

func TestActivations(t *testing.T) {
	x := autodiff.MustNew([]float64{-1, 0, 2}, false)

	r, err := nn.NewReLU().Forward(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 2}, r.Data().RawMatrix().Data)

	th, err := nn.NewTanh().Forward(x)
	require.NoError(t, err)
	assert.InDelta(t, math.Tanh(2), th.Data().At(0, 2), 1e-12)

	sg, err := nn.NewSigmoid().Forward(x)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, sg.Data().At(0, 1), 1e-12)

	assert.Nil(t, nn.NewReLU().Parameters())
}

func TestMSELoss(t *testing.T) {
	pred := autodiff.MustNew([]float64{1, 2, 3}, true)
	target := autodiff.MustNew([]float64{1, 0, 0}, false)

	loss, err := nn.NewMSELoss().Forward(pred, target)
	require.NoError(t, err)
	v, err := loss.Item()
	require.NoError(t, err)
	assert.InDelta(t, 13.0/3.0, v, 1e-12)

	require.NoError(t, loss.Backward())
	// d/dp mean((p - t)²) = 2(p - t)/n
	g := pred.Grad().Data().RawMatrix().Data
	assert.InDelta(t, 0.0, g[0], 1e-12)
	assert.InDelta(t, 4.0/3.0, g[1], 1e-12)
	assert.InDelta(t, 2.0, g[2], 1e-12)
}

func TestMSELoss_ShapeMismatch(t *testing.T) {
	_, err := nn.NewMSELoss().Forward(
		autodiff.MustNew([]float64{1, 2}, false),
		autodiff.MustNew([][]float64{{1}, {2}}, false),
	)
	assert.ErrorIs(t, err, autodiff.ErrShape)
}
