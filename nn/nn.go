// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks for beacon tensors.
//
// Modules take a (batch, features) tensor and return a new tensor. Their
// parameters are tensors that require grad and can be passed straight to
// an optimizer:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(4, 16, nil),
//	    nn.NewReLU(),
//	    nn.NewLinear(16, 1, nil),
//	)
//	opt := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 0.01})
//
//	pred, err := model.Forward(x)
//	loss, err := nn.NewMSELoss().Forward(pred, y)
package nn

import (
	"math/rand/v2"

	"github.com/born-ml/beacon/internal/nn"
	"github.com/born-ml/beacon/tensor"
)

// Module is the base interface for all neural network components.
type Module = nn.Module

// Linear is a fully connected layer computing x @ W.T + b.
type Linear = nn.Linear

// NewLinear creates a Linear layer. A nil src uses the global random source.
func NewLinear(inFeatures, outFeatures int, src rand.Source) *Linear {
	return nn.NewLinear(inFeatures, outFeatures, src)
}

// Xavier returns a (rows, cols) trainable tensor with Glorot uniform values.
func Xavier(fanIn, fanOut, rows, cols int, src rand.Source) *tensor.Tensor {
	return nn.Xavier(fanIn, fanOut, rows, cols, src)
}

// Activations

// ReLU applies max(0, x) elementwise.
type ReLU = nn.ReLU

// NewReLU creates a ReLU module.
func NewReLU() *ReLU { return nn.NewReLU() }

// Sigmoid applies 1 / (1 + exp(-x)) elementwise.
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a Sigmoid module.
func NewSigmoid() *Sigmoid { return nn.NewSigmoid() }

// Tanh applies the hyperbolic tangent elementwise.
type Tanh = nn.Tanh

// NewTanh creates a Tanh module.
func NewTanh() *Tanh { return nn.NewTanh() }

// Containers

// Sequential chains modules in order.
type Sequential = nn.Sequential

// NewSequential creates a Sequential container.
func NewSequential(modules ...Module) *Sequential { return nn.NewSequential(modules...) }

// Loss functions

// MSELoss computes mean((predictions - targets)²).
type MSELoss = nn.MSELoss

// NewMSELoss creates an MSE loss function.
func NewMSELoss() *MSELoss { return nn.NewMSELoss() }
