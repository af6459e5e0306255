package nn

import (
	"math"
	"math/rand/v2"

	"github.com/born-ml/beacon/internal/autodiff"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Xavier returns a (rows, cols) tensor that requires grad, drawn from
// U(-sqrt(6/(fanIn + fanOut)), sqrt(6/(fanIn + fanOut))).
//
// A nil src uses the global random source.
func Xavier(fanIn, fanOut, rows, cols int, src rand.Source) *autodiff.Tensor {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	dist := distuv.Uniform{Min: -bound, Max: bound, Src: src}

	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = dist.Rand()
	}
	return autodiff.MustNew(mat.NewDense(rows, cols, data), true)
}
