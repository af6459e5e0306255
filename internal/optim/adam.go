package optim

import (
	"math"

	"github.com/born-ml/beacon/internal/autodiff"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)   // Parameter update
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	params []*autodiff.Tensor
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	t      int                             // Timestep for bias correction
	m      map[*autodiff.Tensor]*mat.Dense // First moment estimates
	v      map[*autodiff.Tensor]*mat.Dense // Second moment estimates
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer, filling unset hyperparameters with
// their defaults.
func NewAdam(params []*autodiff.Tensor, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam{
		params: trainable(params),
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		m:      make(map[*autodiff.Tensor]*mat.Dense),
		v:      make(map[*autodiff.Tensor]*mat.Dense),
	}
}

// Step performs a single optimization step.
func (a *Adam) Step() error {
	a.t++

	biasCorrection1 := 1 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1 - math.Pow(a.beta2, float64(a.t))

	for i, param := range a.params {
		grad := param.Grad().Data()
		r, c := grad.Dims()

		m, ok := a.m[param]
		if !ok {
			m = mat.NewDense(r, c, nil)
			a.m[param] = m
		}
		v, ok := a.v[param]
		if !ok {
			v = mat.NewDense(r, c, nil)
			a.v[param] = v
		}

		// m_t = beta1 * m_{t-1} + (1-beta1) * grad
		m.Scale(a.beta1, m)
		m.AddScaled(m, 1-a.beta1, grad)

		// v_t = beta2 * v_{t-1} + (1-beta2) * grad²
		var sq mat.Dense
		sq.MulElem(grad, grad)
		v.Scale(a.beta2, v)
		v.AddScaled(v, 1-a.beta2, &sq)

		var update mat.Dense
		update.Apply(func(row, col int, mt float64) float64 {
			mHat := mt / biasCorrection1
			vHat := v.At(row, col) / biasCorrection2
			return a.lr * mHat / (math.Sqrt(vHat) + a.eps)
		}, m)

		if err := param.SubInPlace(&update); err != nil {
			return errors.Wrapf(err, "adam: parameter %d", i)
		}
	}
	return nil
}

// ZeroGrad clears gradients for all parameters.
func (a *Adam) ZeroGrad() {
	zeroGrad(a.params)
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}
