// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/beacon/internal/autodiff"
	"github.com/born-ml/beacon/internal/dense"
)

// Tensor is a differentiable dense matrix.
type Tensor = autodiff.Tensor

// Edge links a tensor to one input of the operation that produced it.
type Edge = autodiff.Edge

// GradFn maps an output gradient to the gradient owed to one input.
type GradFn = autodiff.GradFn

// Shape is the (rows, cols) shape of a tensor.
type Shape = dense.Shape

// Errors returned by tensor operations.
var (
	ErrShape        = autodiff.ErrShape
	ErrPrecondition = autodiff.ErrPrecondition
	ErrConstruction = autodiff.ErrConstruction
)

// New creates a leaf tensor from a scalar, slice, nested slice, gonum matrix
// or another Tensor.
//
// Example:
//
//	w, err := tensor.New([][]float64{{0.1, 0.2}, {0.3, 0.4}}, true)
func New(data any, requiresGrad bool) (*Tensor, error) {
	return autodiff.New(data, requiresGrad)
}

// MustNew is like New but panics on error.
func MustNew(data any, requiresGrad bool) *Tensor {
	return autodiff.MustNew(data, requiresGrad)
}

// Must returns t and panics if err is non-nil.
func Must(t *Tensor, err error) *Tensor {
	return autodiff.Must(t, err)
}

// Zeros creates a zero-filled tensor.
func Zeros(rows, cols int, requiresGrad bool) (*Tensor, error) {
	return autodiff.Zeros(rows, cols, requiresGrad)
}

// Ones creates a tensor filled with 1.
func Ones(rows, cols int, requiresGrad bool) (*Tensor, error) {
	return autodiff.Ones(rows, cols, requiresGrad)
}

// Full creates a tensor filled with v.
func Full(rows, cols int, v float64, requiresGrad bool) (*Tensor, error) {
	return autodiff.Full(rows, cols, v, requiresGrad)
}

// AsTensor returns v if it is a *Tensor, otherwise an untracked tensor
// holding v.
func AsTensor(v any) (*Tensor, error) {
	return autodiff.AsTensor(v)
}
