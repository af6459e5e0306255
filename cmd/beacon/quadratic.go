package main

import (
	"context"
	"flag"

	"github.com/born-ml/beacon/internal/autodiff"
	"github.com/born-ml/beacon/internal/train"
	"github.com/rs/zerolog/log"
)

type quadraticOptions struct {
	target    float64
	lr        float64
	momentum  float64
	steps     int
	optimizer string
}

func quadraticCmd(ctx context.Context, args []string) error {
	var (
		common commonFlags
		opts   quadraticOptions
	)
	fs := flag.NewFlagSet("quadratic", flag.ExitOnError)
	common.register(fs)
	fs.Float64Var(&opts.target, "target", 5, "Minimum of the quadratic")
	fs.Float64Var(&opts.lr, "lr", 0.1, "Learning rate")
	fs.Float64Var(&opts.momentum, "momentum", 0, "SGD momentum")
	fs.IntVar(&opts.steps, "steps", 100, "Number of optimization steps")
	fs.StringVar(&opts.optimizer, "optimizer", "sgd", "Optimizer (sgd, adam)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	done, err := common.setup()
	if err != nil {
		return err
	}
	defer done()

	x, res, err := runQuadratic(ctx, opts)
	if err != nil {
		return err
	}
	log.Info().
		Float64("x", x).
		Float64("target", opts.target).
		Float64("loss", res.Loss).
		Int("steps", res.Steps).
		Dur("elapsed", res.Elapsed).
		Msg("Quadratic minimized")
	return nil
}

// runQuadratic minimizes (x - target)² starting from x = 0 and returns the
// final x.
func runQuadratic(ctx context.Context, opts quadraticOptions) (float64, train.Result, error) {
	x := autodiff.MustNew(0.0, true)
	opt, err := newOptimizer(opts.optimizer, []*autodiff.Tensor{x}, opts.lr, opts.momentum)
	if err != nil {
		return 0, train.Result{}, err
	}

	trainer := train.New(opt, train.Config{Steps: opts.steps}, train.WithLogger(log.Logger))
	res, err := trainer.Run(ctx, func(context.Context) (*autodiff.Tensor, error) {
		d, err := x.Sub(opts.target)
		if err != nil {
			return nil, err
		}
		return d.Pow(2.0)
	})
	if err != nil {
		return 0, res, err
	}

	v, err := x.Item()
	return v, res, err
}
