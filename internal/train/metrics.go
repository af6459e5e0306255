package train

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	stepsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "beacon_train_steps_total",
		Help: "Total number of completed optimization steps",
	})

	lossValue = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "beacon_train_loss",
		Help: "Loss value of the last completed step",
	})

	stepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "beacon_train_step_duration_seconds",
		Help:    "Time spent in one forward, backward and update step",
		Buckets: prometheus.DefBuckets,
	})

	stepErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "beacon_train_errors_total",
		Help: "Total number of failed steps by stage",
	}, []string{"stage"})
)
