// Package dense adapts gonum's mat.Dense into the array primitive used by the
// autodiff engine.
//
// Every array is a two-dimensional float64 matrix. Binary operations follow
// NumPy broadcasting rules restricted to two axes: extents must be equal or
// one of them must be 1.
//
//	a (1, 3) + b (3, 3) -> (3, 3)   // a broadcast along rows
//	a (3, 1) * b (1, 4) -> (3, 4)   // both operands broadcast
//	a (2, 3) - b (3, 3) -> ErrShape
//
// SumTo is the inverse of broadcasting and is what every derivative rule uses
// to bring an upstream gradient back to an operand's original shape.
package dense
