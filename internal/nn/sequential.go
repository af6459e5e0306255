package nn

import (
	"github.com/born-ml/beacon/internal/autodiff"
	"github.com/pkg/errors"
)

// Sequential chains modules so that each module's output becomes the next
// module's input.
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128, nil),
//	    nn.NewReLU(),
//	    nn.NewLinear(128, 10, nil),
//	)
type Sequential struct {
	modules []Module
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{modules: modules}
}

// Forward applies all modules in order.
func (s *Sequential) Forward(input *autodiff.Tensor) (*autodiff.Tensor, error) {
	output := input
	for i, m := range s.modules {
		var err error
		if output, err = m.Forward(output); err != nil {
			return nil, errors.Wrapf(err, "sequential: module %d", i)
		}
	}
	return output, nil
}

// Parameters returns the parameters of all modules in order.
func (s *Sequential) Parameters() []*autodiff.Tensor {
	var params []*autodiff.Tensor
	for _, m := range s.modules {
		params = append(params, m.Parameters()...)
	}
	return params
}

// Add appends a module to the sequence.
func (s *Sequential) Add(m Module) {
	s.modules = append(s.modules, m)
}

// Len returns the number of modules.
func (s *Sequential) Len() int {
	return len(s.modules)
}
