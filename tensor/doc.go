// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides differentiable matrices for the beacon engine.
//
// # Overview
//
// A Tensor wraps a dense float64 matrix. Tensors created with requiresGrad
// set track a gradient; every operation applied to them records an edge back
// to its inputs, building a computation graph as the program runs. Backward
// walks that graph from an output and accumulates gradients into every
// tracked ancestor.
//
// # Basic Usage
//
//	import "github.com/born-ml/beacon/tensor"
//
//	func main() {
//	    x := tensor.MustNew([]float64{3.0}, true)
//
//	    // y = (x - 5)²
//	    y := tensor.Must(tensor.Must(x.Sub(5.0)).Pow(2.0))
//
//	    if err := y.Backward(); err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(x.Grad()) // dy/dx = 2(x - 5) = -4
//	}
//
// # Shapes
//
// Every tensor is two-dimensional. Scalars become (1, 1) and flat slices
// become a (1, n) row:
//
//	tensor.MustNew(2.0, false).Shape()                 // (1, 1)
//	tensor.MustNew([]float64{1, 2, 3}, false).Shape()  // (1, 3)
//	tensor.MustNew([][]float64{{1}, {2}}, false).Shape() // (2, 1)
//
// # Broadcasting
//
// Elementwise operations follow NumPy broadcasting rules. A dimension of
// size 1 is stretched to match the other operand:
//
//	a := tensor.MustNew([][]float64{{1}, {2}, {3}}, true) // (3, 1)
//	b := tensor.MustNew([]float64{10, 20}, true)          // (1, 2)
//	c := tensor.Must(a.Add(b))                            // (3, 2)
//
// During Backward the gradient flowing to a broadcast operand is summed back
// to that operand's shape.
//
// # Gradients
//
// Gradients accumulate across Backward calls. Call ZeroGrad (or an
// optimizer's ZeroGrad) before each new pass. An ancestor reached along
// several paths receives the sum of all path contributions.
//
// # Errors
//
// Operations return ErrShape for incompatible shapes, ErrConstruction for
// data that cannot form a tensor and ErrPrecondition for calls invalid in
// the tensor's state. Test for them with errors.Is.
package tensor
