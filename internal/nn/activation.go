package nn

import "github.com/born-ml/beacon/internal/autodiff"

// ReLU applies f(x) = max(0, x) elementwise.
type ReLU struct{}

// NewReLU creates a new ReLU activation module.
func NewReLU() *ReLU { return &ReLU{} }

// Forward applies ReLU activation.
func (r *ReLU) Forward(input *autodiff.Tensor) (*autodiff.Tensor, error) { return input.ReLU() }

// Parameters returns nil.
func (r *ReLU) Parameters() []*autodiff.Tensor { return nil }

// Sigmoid applies f(x) = 1 / (1 + exp(-x)) elementwise.
type Sigmoid struct{}

// NewSigmoid creates a new Sigmoid activation module.
func NewSigmoid() *Sigmoid { return &Sigmoid{} }

// Forward applies sigmoid activation.
func (s *Sigmoid) Forward(input *autodiff.Tensor) (*autodiff.Tensor, error) { return input.Sigmoid() }

// Parameters returns nil.
func (s *Sigmoid) Parameters() []*autodiff.Tensor { return nil }

// Tanh applies the hyperbolic tangent elementwise.
type Tanh struct{}

// NewTanh creates a new Tanh activation module.
func NewTanh() *Tanh { return &Tanh{} }

// Forward applies tanh activation.
func (t *Tanh) Forward(input *autodiff.Tensor) (*autodiff.Tensor, error) { return input.Tanh() }

// Parameters returns nil.
func (t *Tanh) Parameters() []*autodiff.Tensor { return nil }
