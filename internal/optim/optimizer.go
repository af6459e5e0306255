// Package optim implements optimization algorithms over autodiff tensors.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read each parameter's accumulated gradient and update the
// parameter's data in place. They never touch graph edges and never call
// Backward; zeroing gradients between steps is the caller's job.
//
// Example usage:
//
//	x := autodiff.MustNew([]float64{0}, true)
//	optimizer := optim.NewSGD([]*autodiff.Tensor{x}, optim.SGDConfig{LR: 0.1})
//
//	for range steps {
//	    optimizer.ZeroGrad()
//	    loss := autodiff.Must(autodiff.Must(x.Sub(5.0)).Pow(2.0))
//	    if err := loss.Backward(); err != nil {
//	        return err
//	    }
//	    if err := optimizer.Step(); err != nil {
//	        return err
//	    }
//	}
package optim

import "github.com/born-ml/beacon/internal/autodiff"

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one update to every parameter that tracks a gradient.
	Step() error

	// ZeroGrad clears all parameter gradients.
	//
	// Call it before each backward pass unless gradients should accumulate
	// across passes (e.g. micro-batches).
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// trainable filters params down to those that track a gradient.
func trainable(params []*autodiff.Tensor) []*autodiff.Tensor {
	out := make([]*autodiff.Tensor, 0, len(params))
	for _, p := range params {
		if p != nil && p.RequiresGrad() {
			out = append(out, p)
		}
	}
	return out
}

func zeroGrad(params []*autodiff.Tensor) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
