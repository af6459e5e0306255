package autodiff

// Method forms of the operation library. Each delegates to the package
// function of the same name with t as the first operand, so scalars, slices
// and matrices are accepted wherever a *Tensor is.

// Add returns t + other.
func (t *Tensor) Add(other any) (*Tensor, error) { return Add(t, other) }

// Sub returns t - other.
func (t *Tensor) Sub(other any) (*Tensor, error) { return Sub(t, other) }

// Mul returns t * other elementwise.
func (t *Tensor) Mul(other any) (*Tensor, error) { return Mul(t, other) }

// Div returns t / other elementwise.
func (t *Tensor) Div(other any) (*Tensor, error) { return Div(t, other) }

// Pow returns t raised to other elementwise.
func (t *Tensor) Pow(other any) (*Tensor, error) { return Pow(t, other) }

// Neg returns -t.
func (t *Tensor) Neg() (*Tensor, error) { return Neg(t) }

// Slice returns rows [r0, r1) and columns [c0, c1) of t.
func (t *Tensor) Slice(r0, r1, c0, c1 int) (*Tensor, error) { return Slice(t, r0, r1, c0, c1) }

// MatMul returns t @ other.
func (t *Tensor) MatMul(other any) (*Tensor, error) { return MatMul(t, other) }

// T returns the transpose of t.
func (t *Tensor) T() (*Tensor, error) { return Transpose(t) }

// Exp returns e^t.
func (t *Tensor) Exp() (*Tensor, error) { return Exp(t) }

// Log returns ln(t).
func (t *Tensor) Log() (*Tensor, error) { return Log(t) }

// Sqrt returns sqrt(t).
func (t *Tensor) Sqrt() (*Tensor, error) { return Sqrt(t) }

// Tanh returns tanh(t).
func (t *Tensor) Tanh() (*Tensor, error) { return Tanh(t) }

// Sigmoid returns σ(t).
func (t *Tensor) Sigmoid() (*Tensor, error) { return Sigmoid(t) }

// ReLU returns max(0, t).
func (t *Tensor) ReLU() (*Tensor, error) { return ReLU(t) }

// Sum adds up t, optionally along one axis.
func (t *Tensor) Sum(axis ...int) (*Tensor, error) { return Sum(t, axis...) }

// Mean averages t, optionally along one axis.
func (t *Tensor) Mean(axis ...int) (*Tensor, error) { return Mean(t, axis...) }

// Equal returns t == other elementwise as an untracked tensor.
func (t *Tensor) Equal(other any) (*Tensor, error) { return Equal(t, other) }

// NotEqual returns t != other elementwise as an untracked tensor.
func (t *Tensor) NotEqual(other any) (*Tensor, error) { return NotEqual(t, other) }

// LessThan returns t < other elementwise as an untracked tensor.
func (t *Tensor) LessThan(other any) (*Tensor, error) { return LessThan(t, other) }

// GreaterThan returns t > other elementwise as an untracked tensor.
func (t *Tensor) GreaterThan(other any) (*Tensor, error) { return GreaterThan(t, other) }

// LessOrEqual returns t <= other elementwise as an untracked tensor.
func (t *Tensor) LessOrEqual(other any) (*Tensor, error) { return LessOrEqual(t, other) }

// GreaterOrEqual returns t >= other elementwise as an untracked tensor.
func (t *Tensor) GreaterOrEqual(other any) (*Tensor, error) { return GreaterOrEqual(t, other) }
