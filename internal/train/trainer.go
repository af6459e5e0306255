// Package train runs gradient-based optimization loops over autodiff tensors.
//
// Each step zeroes the optimizer's gradients, evaluates a scalar loss,
// back-propagates it and applies one optimizer update. Steps are traced with
// OpenTelemetry, counted in Prometheus and logged with zerolog.
package train

import (
	"context"
	"time"

	"github.com/born-ml/beacon/internal/autodiff"
	"github.com/born-ml/beacon/internal/optim"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// LossFunc runs the forward pass and returns a (1, 1) loss tensor.
type LossFunc func(ctx context.Context) (*autodiff.Tensor, error)

// Config holds configuration for a training run.
type Config struct {
	Steps     int     // Number of optimization steps (default: 100)
	LogEvery  int     // Log progress every N steps (default: 10)
	Tolerance float64 // Stop once loss <= Tolerance (default: 0, disabled)
}

// Result summarizes a finished run.
type Result struct {
	Steps   int
	Loss    float64
	Elapsed time.Duration
}

// Trainer drives an optimizer through a fixed number of steps.
type Trainer struct {
	opt    optim.Optimizer
	cfg    Config
	logger zerolog.Logger
	tracer trace.Tracer
}

// Option configures a Trainer.
type Option func(*Trainer)

// WithLogger sets the logger used for progress reports.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Trainer) {
		t.logger = logger
	}
}

// WithTracer sets the tracer used for per-step spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(t *Trainer) {
		t.tracer = tracer
	}
}

// New creates a Trainer. Without options it logs nothing and traces through
// the global OpenTelemetry provider.
func New(opt optim.Optimizer, cfg Config, opts ...Option) *Trainer {
	if cfg.Steps == 0 {
		cfg.Steps = 100
	}
	if cfg.LogEvery == 0 {
		cfg.LogEvery = 10
	}

	t := &Trainer{
		opt:    opt,
		cfg:    cfg,
		logger: zerolog.Nop(),
		tracer: otel.Tracer("github.com/born-ml/beacon/train"),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Run executes the training loop. It returns early when ctx is done, when a
// step fails, or when the loss falls to the configured tolerance.
func (t *Trainer) Run(ctx context.Context, loss LossFunc) (Result, error) {
	start := time.Now()
	var res Result

	t.logger.Info().
		Int("steps", t.cfg.Steps).
		Float64("lr", t.opt.GetLR()).
		Msg("Training started")

	for step := 1; step <= t.cfg.Steps; step++ {
		if err := ctx.Err(); err != nil {
			return res, errors.Wrapf(err, "train: step %d", step)
		}

		value, err := t.step(ctx, step, loss)
		if err != nil {
			t.logger.Error().Err(err).Int("step", step).Msg("Training step failed")
			return res, err
		}
		res.Steps, res.Loss, res.Elapsed = step, value, time.Since(start)

		if step == 1 || step%t.cfg.LogEvery == 0 {
			t.logger.Debug().Int("step", step).Float64("loss", value).Msg("Step completed")
		}
		if t.cfg.Tolerance > 0 && value <= t.cfg.Tolerance {
			t.logger.Info().Int("step", step).Float64("loss", value).Msg("Loss within tolerance")
			break
		}
	}

	t.logger.Info().
		Int("steps", res.Steps).
		Float64("loss", res.Loss).
		Dur("elapsed", res.Elapsed).
		Msg("Training finished")
	return res, nil
}

func (t *Trainer) step(ctx context.Context, step int, loss LossFunc) (float64, error) {
	ctx, span := t.tracer.Start(ctx, "train.step", trace.WithAttributes(attribute.Int("step", step)))
	defer span.End()

	start := time.Now()
	fail := func(stage string, err error) (float64, error) {
		stepErrors.WithLabelValues(stage).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, stage)
		return 0, errors.Wrapf(err, "train: step %d: %s", step, stage)
	}

	t.opt.ZeroGrad()

	out, err := loss(ctx)
	if err != nil {
		return fail("forward", err)
	}
	value, err := out.Item()
	if err != nil {
		return fail("forward", err)
	}
	if err := out.Backward(); err != nil {
		return fail("backward", err)
	}
	if err := t.opt.Step(); err != nil {
		return fail("update", err)
	}

	stepsTotal.Inc()
	lossValue.Set(value)
	stepDuration.Observe(time.Since(start).Seconds())
	span.SetAttributes(attribute.Float64("loss", value))
	return value, nil
}
