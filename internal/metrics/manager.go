package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

type Manager struct {
	// counters
	CounterRequests    *prometheus.CounterVec
	CounterStoreWrites *prometheus.CounterVec
	CounterTips        *prometheus.CounterVec
	CounterBackups     *prometheus.CounterVec

	// gauges
	GaugeActiveWorkout prometheus.Gauge

	// histograms
	HistRequestDuration prometheus.Histogram
	HistTipDuration     prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("fitclick", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("fitclick", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterStoreWrites := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "store_writes",
		Help:      "Collection writes by collection and outcome",
	}, []string{"collection", "outcome"})
	counterTips := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "coach_tips",
		Help:      "Coach tips by source: ai, cached, fallback or skipped",
	}, []string{"source"})
	counterBackups := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "backups",
		Help:      "Snapshot backups by outcome",
	}, []string{"outcome"})

	gaugeActiveWorkout := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "active_workout",
		Help:      "1 while a workout is in progress",
	})

	histRequestDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Request duration in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	histTipDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "coach_tip_duration_seconds",
		Help:      "Time spent producing a coach tip",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 16},
	})

	return &Manager{
		CounterRequests:     counterRequests,
		CounterStoreWrites:  counterStoreWrites,
		CounterTips:         counterTips,
		CounterBackups:      counterBackups,
		GaugeActiveWorkout:  gaugeActiveWorkout,
		HistRequestDuration: histRequestDuration,
		HistTipDuration:     histTipDuration,
	}
}

// Outcome maps an error to an outcome label.
func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}
