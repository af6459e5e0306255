// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/born-ml/beacon/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicAPI_Quadratic(t *testing.T) {
	x := tensor.MustNew([]float64{3.0}, true)
	y := tensor.Must(tensor.Pow(tensor.Must(tensor.Sub(x, 5.0)), 2.0))

	require.NoError(t, y.Backward())
	assert.InDelta(t, -4.0, x.Grad().Data().At(0, 0), 1e-12)
}

func TestPublicAPI_Shapes(t *testing.T) {
	assert.Equal(t, tensor.Shape{1, 1}, tensor.MustNew(2.0, false).Shape())
	assert.Equal(t, tensor.Shape{1, 3}, tensor.MustNew([]float64{1, 2, 3}, false).Shape())
	assert.Equal(t, tensor.Shape{2, 1}, tensor.MustNew([][]float64{{1}, {2}}, false).Shape())

	z, err := tensor.Zeros(2, 3, false)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, z.Shape())
}

func TestPublicAPI_Broadcasting(t *testing.T) {
	a := tensor.MustNew([][]float64{{1}, {2}, {3}}, true)
	b := tensor.MustNew([]float64{10, 20}, true)

	c, err := tensor.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 2}, c.Shape())

	require.NoError(t, c.Backward())
	assert.Equal(t, tensor.Shape{3, 1}, a.Grad().Shape())
	assert.Equal(t, []float64{2, 2, 2}, a.Grad().Data().RawMatrix().Data)
	assert.Equal(t, []float64{3, 3}, b.Grad().Data().RawMatrix().Data)
}

func TestPublicAPI_Errors(t *testing.T) {
	_, err := tensor.New([][]float64{{1, 2}, {3}}, false)
	assert.ErrorIs(t, err, tensor.ErrConstruction)

	_, err = tensor.Add([]float64{1, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, tensor.ErrShape)

	err = tensor.MustNew(1.0, false).Backward()
	assert.ErrorIs(t, err, tensor.ErrPrecondition)
}

func TestPublicAPI_Comparisons(t *testing.T) {
	a := tensor.MustNew([]float64{1, 2, 3}, true)

	lt, err := tensor.LessThan(a, 2.0)
	require.NoError(t, err)
	assert.False(t, lt.RequiresGrad())
	assert.Equal(t, []float64{1, 0, 0}, lt.Data().RawMatrix().Data)
}
