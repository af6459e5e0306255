package nn

import (
	"github.com/born-ml/beacon/internal/autodiff"
	"github.com/pkg/errors"
)

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²)
//
// Example:
//
//	mse := nn.NewMSELoss()
//	loss, err := mse.Forward(predictions, targets)
type MSELoss struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward returns the (1, 1) mean squared error. Predictions and targets
// must have the same shape.
func (m *MSELoss) Forward(predictions, targets *autodiff.Tensor) (*autodiff.Tensor, error) {
	if predictions.Shape() != targets.Shape() {
		return nil, errors.Wrapf(autodiff.ErrShape, "mse: predictions %v, targets %v",
			predictions.Shape(), targets.Shape())
	}
	diff, err := predictions.Sub(targets)
	if err != nil {
		return nil, err
	}
	sq, err := diff.Mul(diff)
	if err != nil {
		return nil, err
	}
	return sq.Mean()
}
