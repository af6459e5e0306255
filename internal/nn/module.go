// Package nn implements neural network modules on top of autodiff tensors.
//
// This package provides building blocks for constructing models:
//   - Module interface: Base interface for all NN components
//   - Linear: Fully connected layer
//   - Activations: ReLU, Sigmoid, Tanh
//   - MSELoss: Mean squared error
//   - Sequential: Container for stacking layers
//
// Parameters are plain tensors that require grad, so any optimizer from
// internal/optim can update them directly.
package nn

import "github.com/born-ml/beacon/internal/autodiff"

// Module is the base interface for all neural network components.
//
//	model := nn.NewSequential(
//	    nn.NewLinear(4, 16, nil),
//	    nn.NewReLU(),
//	    nn.NewLinear(16, 1, nil),
//	)
type Module interface {
	// Forward computes the output of the module for a (batch, features) input.
	Forward(input *autodiff.Tensor) (*autodiff.Tensor, error)

	// Parameters returns all trainable tensors of this module, including
	// those of nested modules. Modules without weights return nil.
	Parameters() []*autodiff.Tensor
}
