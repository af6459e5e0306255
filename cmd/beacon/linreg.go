package main

import (
	"context"
	"flag"
	"math/rand/v2"

	"github.com/born-ml/beacon/internal/autodiff"
	"github.com/born-ml/beacon/internal/nn"
	"github.com/born-ml/beacon/internal/train"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"
)

type linregOptions struct {
	samples   int
	lr        float64
	steps     int
	weight    float64
	bias      float64
	noise     float64
	seed      uint64
	optimizer string
}

func linregCmd(ctx context.Context, args []string) error {
	var (
		common commonFlags
		opts   linregOptions
	)
	fs := flag.NewFlagSet("linreg", flag.ExitOnError)
	common.register(fs)
	fs.IntVar(&opts.samples, "samples", 64, "Number of synthetic samples")
	fs.Float64Var(&opts.lr, "lr", 0.1, "Learning rate")
	fs.IntVar(&opts.steps, "steps", 500, "Number of optimization steps")
	fs.Float64Var(&opts.weight, "weight", 3, "True slope of the synthetic data")
	fs.Float64Var(&opts.bias, "bias", 2, "True intercept of the synthetic data")
	fs.Float64Var(&opts.noise, "noise", 0.01, "Standard deviation of label noise")
	fs.Uint64Var(&opts.seed, "seed", 1, "Random seed")
	fs.StringVar(&opts.optimizer, "optimizer", "sgd", "Optimizer (sgd, adam)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	done, err := common.setup()
	if err != nil {
		return err
	}
	defer done()

	w, b, res, err := runLinreg(ctx, opts)
	if err != nil {
		return err
	}
	log.Info().
		Float64("w", w).
		Float64("b", b).
		Float64("loss", res.Loss).
		Int("steps", res.Steps).
		Dur("elapsed", res.Elapsed).
		Msg("Linear model fitted")
	return nil
}

// syntheticData samples x uniformly from [-1, 1) and labels it with
// y = weight*x + bias + noise.
func syntheticData(opts linregOptions) (x, y *mat.Dense) {
	rng := rand.New(rand.NewPCG(opts.seed, opts.seed^0x9e3779b97f4a7c15))
	x = mat.NewDense(opts.samples, 1, nil)
	y = mat.NewDense(opts.samples, 1, nil)
	for i := range opts.samples {
		xi := 2*rng.Float64() - 1
		x.Set(i, 0, xi)
		y.Set(i, 0, opts.weight*xi+opts.bias+opts.noise*rng.NormFloat64())
	}
	return x, y
}

// runLinreg fits a one-feature linear layer by minimizing the mean squared
// error and returns its weight and bias.
func runLinreg(ctx context.Context, opts linregOptions) (w, b float64, res train.Result, err error) {
	xd, yd := syntheticData(opts)
	x := autodiff.MustNew(xd, false)
	y := autodiff.MustNew(yd, false)

	model := nn.NewLinear(1, 1, rand.NewPCG(opts.seed, 0))
	mse := nn.NewMSELoss()
	opt, err := newOptimizer(opts.optimizer, model.Parameters(), opts.lr, 0)
	if err != nil {
		return 0, 0, res, err
	}

	trainer := train.New(opt, train.Config{Steps: opts.steps, LogEvery: 50}, train.WithLogger(log.Logger))
	res, err = trainer.Run(ctx, func(context.Context) (*autodiff.Tensor, error) {
		pred, err := model.Forward(x)
		if err != nil {
			return nil, err
		}
		return mse.Forward(pred, y)
	})
	if err != nil {
		return 0, 0, res, err
	}

	if w, err = model.Weight().Item(); err != nil {
		return 0, 0, res, err
	}
	b, err = model.Bias().Item()
	return w, b, res, err
}
