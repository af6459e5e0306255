// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train runs optimization loops over beacon tensors.
//
// Each step zeroes gradients, evaluates the loss, back-propagates it and
// applies one optimizer update. Progress is logged with zerolog, steps are
// traced with OpenTelemetry and counted by Prometheus collectors registered
// on the default registry.
//
// Example:
//
//	x := tensor.MustNew(0.0, true)
//	opt := optim.NewSGD([]*tensor.Tensor{x}, optim.SGDConfig{LR: 0.1})
//
//	res, err := train.New(opt, train.Config{Steps: 100}).Run(ctx,
//	    func(context.Context) (*tensor.Tensor, error) {
//	        d, err := x.Sub(5.0)
//	        if err != nil {
//	            return nil, err
//	        }
//	        return d.Pow(2.0)
//	    })
package train

import (
	"github.com/born-ml/beacon/internal/optim"
	"github.com/born-ml/beacon/internal/train"
)

// LossFunc runs the forward pass and returns a (1, 1) loss tensor.
type LossFunc = train.LossFunc

// Config holds configuration for a training run.
type Config = train.Config

// Result summarizes a finished run.
type Result = train.Result

// Trainer drives an optimizer through a fixed number of steps.
type Trainer = train.Trainer

// Option configures a Trainer.
type Option = train.Option

// New creates a Trainer.
func New(opt optim.Optimizer, cfg Config, opts ...Option) *Trainer {
	return train.New(opt, cfg, opts...)
}

// WithLogger sets the logger used for progress reports.
var WithLogger = train.WithLogger

// WithTracer sets the tracer used for per-step spans.
var WithTracer = train.WithTracer
