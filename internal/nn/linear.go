package nn

import (
	"math/rand/v2"

	"github.com/born-ml/beacon/internal/autodiff"
	"github.com/pkg/errors"
)

// Linear implements a fully connected layer.
//
// Performs the transformation: y = x @ W.T + b
// where:
//   - x has shape (batch, in)
//   - W has shape (out, in)
//   - b has shape (1, out) and is broadcast over the batch
//   - y has shape (batch, out)
//
// Weights use Xavier initialization and biases start at zero.
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *autodiff.Tensor
	bias        *autodiff.Tensor
}

// NewLinear creates a Linear layer. A nil src uses the global random source.
func NewLinear(inFeatures, outFeatures int, src rand.Source) *Linear {
	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      Xavier(inFeatures, outFeatures, outFeatures, inFeatures, src),
		bias:        autodiff.Must(autodiff.Zeros(1, outFeatures, true)),
	}
}

// Forward computes x @ W.T + b.
func (l *Linear) Forward(input *autodiff.Tensor) (*autodiff.Tensor, error) {
	if cols := input.Shape().Cols(); cols != l.inFeatures {
		return nil, errors.Wrapf(autodiff.ErrShape, "linear: input has %d features, want %d", cols, l.inFeatures)
	}
	wt, err := l.weight.T()
	if err != nil {
		return nil, err
	}
	out, err := input.MatMul(wt)
	if err != nil {
		return nil, err
	}
	return out.Add(l.bias)
}

// Parameters returns [weight, bias].
func (l *Linear) Parameters() []*autodiff.Tensor {
	return []*autodiff.Tensor{l.weight, l.bias}
}

// Weight returns the (out, in) weight tensor.
func (l *Linear) Weight() *autodiff.Tensor { return l.weight }

// Bias returns the (1, out) bias tensor.
func (l *Linear) Bias() *autodiff.Tensor { return l.bias }

// InFeatures returns the input dimension.
func (l *Linear) InFeatures() int { return l.inFeatures }

// OutFeatures returns the output dimension.
func (l *Linear) OutFeatures() int { return l.outFeatures }
