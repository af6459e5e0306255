package optim

import (
	"github.com/born-ml/beacon/internal/autodiff"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// SGD implements Stochastic Gradient Descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD struct {
	params     []*autodiff.Tensor
	lr         float64
	momentum   float64
	velocities map[*autodiff.Tensor]*mat.Dense
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer. Parameters that do not require grad
// are ignored.
func NewSGD(params []*autodiff.Tensor, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     trainable(params),
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*autodiff.Tensor]*mat.Dense),
	}
}

// Step performs a single optimization step.
func (s *SGD) Step() error {
	for i, param := range s.params {
		update := mat.DenseCopyOf(param.Grad().Data())

		if s.momentum != 0 {
			velocity, ok := s.velocities[param]
			if !ok {
				r, c := update.Dims()
				velocity = mat.NewDense(r, c, nil)
				s.velocities[param] = velocity
			}
			// velocity = momentum * velocity + grad
			velocity.Scale(s.momentum, velocity)
			velocity.Add(velocity, update)
			update.Copy(velocity)
		}

		update.Scale(s.lr, update)
		if err := param.SubInPlace(update); err != nil {
			return errors.Wrapf(err, "sgd: parameter %d", i)
		}
	}
	return nil
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	zeroGrad(s.params)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
