// Package main provides the beacon CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/born-ml/beacon/internal/autodiff"
	"github.com/born-ml/beacon/internal/optim"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const version = "v0.1.0-dev"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch os.Args[1] {
	case "version":
		fmt.Printf("beacon %s\n", version)
	case "quadratic":
		err = quadraticCmd(ctx, os.Args[2:])
	case "linreg":
		err = linregCmd(ctx, os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", os.Args[1]).Msg("Command failed")
	}
}

func usage() {
	fmt.Println("beacon - dynamic-graph automatic differentiation")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  quadratic  Minimize (x - target)^2 from x = 0")
	fmt.Println("  linreg     Fit y = w*x + b on synthetic data")
}

// commonFlags are shared by every training subcommand.
type commonFlags struct {
	logLevel    string
	otel        bool
	metricsAddr string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.BoolVar(&c.otel, "otel", false, "Enable OpenTelemetry tracing (stdout)")
	fs.StringVar(&c.metricsAddr, "metrics-addr", "", "Address to serve Prometheus metrics on (e.g. :9090)")
}

// setup applies the flags and returns a function that flushes pending spans.
func (c *commonFlags) setup() (func(), error) {
	level, err := zerolog.ParseLevel(c.logLevel)
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(level)

	if c.metricsAddr != "" {
		go serveMetrics(c.metricsAddr)
	}

	if !c.otel {
		return func() {}, nil
	}
	shutdown, err := initTracer()
	if err != nil {
		return nil, err
	}
	return func() {
		if err := shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to shut down tracer")
		}
	}, nil
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Info().Str("addr", addr).Msg("Serving metrics")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error().Err(err).Msg("Metrics server stopped")
	}
}

func initTracer() (func(context.Context) error, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("beacon"),
			semconv.ServiceVersionKey.String(version),
		)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp.Shutdown, nil
}

// newOptimizer builds the optimizer selected on the command line.
func newOptimizer(name string, params []*autodiff.Tensor, lr, momentum float64) (optim.Optimizer, error) {
	switch name {
	case "sgd":
		return optim.NewSGD(params, optim.SGDConfig{LR: lr, Momentum: momentum}), nil
	case "adam":
		return optim.NewAdam(params, optim.AdamConfig{LR: lr}), nil
	}
	return nil, errors.Errorf("unknown optimizer %q (want sgd or adam)", name)
}
