// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/beacon/internal/autodiff"

// Arithmetic

// Add returns a + b with broadcasting.
func Add(a, b any) (*Tensor, error) { return autodiff.Add(a, b) }

// Sub returns a - b with broadcasting.
func Sub(a, b any) (*Tensor, error) { return autodiff.Sub(a, b) }

// Mul returns the elementwise product a * b with broadcasting.
func Mul(a, b any) (*Tensor, error) { return autodiff.Mul(a, b) }

// Div returns the elementwise quotient a / b with broadcasting.
func Div(a, b any) (*Tensor, error) { return autodiff.Div(a, b) }

// Pow returns a raised elementwise to b with broadcasting.
func Pow(a, b any) (*Tensor, error) { return autodiff.Pow(a, b) }

// Neg returns -a.
func Neg(a any) (*Tensor, error) { return autodiff.Neg(a) }

// Indexing

// Slice returns rows [r0, r1) and columns [c0, c1) of a.
func Slice(a any, r0, r1, c0, c1 int) (*Tensor, error) { return autodiff.Slice(a, r0, r1, c0, c1) }

// Linear algebra

// MatMul returns the matrix product of a and b.
func MatMul(a, b any) (*Tensor, error) { return autodiff.MatMul(a, b) }

// Transpose returns the transpose of a.
func Transpose(a any) (*Tensor, error) { return autodiff.Transpose(a) }

// Elementwise functions

// Exp returns e raised to each element of a.
func Exp(a any) (*Tensor, error) { return autodiff.Exp(a) }

// Log returns the natural logarithm of each element of a.
func Log(a any) (*Tensor, error) { return autodiff.Log(a) }

// Sqrt returns the square root of each element of a.
func Sqrt(a any) (*Tensor, error) { return autodiff.Sqrt(a) }

// Tanh returns the hyperbolic tangent of each element of a.
func Tanh(a any) (*Tensor, error) { return autodiff.Tanh(a) }

// Sigmoid returns 1 / (1 + exp(-a)) for each element of a.
func Sigmoid(a any) (*Tensor, error) { return autodiff.Sigmoid(a) }

// ReLU returns max(0, a) for each element of a.
func ReLU(a any) (*Tensor, error) { return autodiff.ReLU(a) }

// Reductions

// Sum adds up the elements of a, optionally along one axis.
func Sum(a any, axis ...int) (*Tensor, error) { return autodiff.Sum(a, axis...) }

// Mean averages the elements of a, optionally along one axis.
func Mean(a any, axis ...int) (*Tensor, error) { return autodiff.Mean(a, axis...) }

// Comparisons. Results hold 1 where the predicate holds and 0 elsewhere, and
// never require grad.

// Equal compares a == b elementwise.
func Equal(a, b any) (*Tensor, error) { return autodiff.Equal(a, b) }

// NotEqual compares a != b elementwise.
func NotEqual(a, b any) (*Tensor, error) { return autodiff.NotEqual(a, b) }

// LessThan compares a < b elementwise.
func LessThan(a, b any) (*Tensor, error) { return autodiff.LessThan(a, b) }

// GreaterThan compares a > b elementwise.
func GreaterThan(a, b any) (*Tensor, error) { return autodiff.GreaterThan(a, b) }

// LessOrEqual compares a <= b elementwise.
func LessOrEqual(a, b any) (*Tensor, error) { return autodiff.LessOrEqual(a, b) }

// GreaterOrEqual compares a >= b elementwise.
func GreaterOrEqual(a, b any) (*Tensor, error) { return autodiff.GreaterOrEqual(a, b) }
