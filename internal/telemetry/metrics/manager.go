package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter
	CounterSessionsStarted     *prometheus.CounterVec
	CounterSessionsCompleted   *prometheus.CounterVec
	CounterSessionsAbandoned   *prometheus.CounterVec
	CounterQuestsCompleted     *prometheus.CounterVec
	CounterDiamondsGranted     prometheus.Counter
	CounterPersistenceErrors   *prometheus.CounterVec

	// gauges
	GaugeRequests      prometheus.Gauge
	GaugeLifeSignal    prometheus.Gauge
	GaugeStreak        prometheus.Gauge
	GaugeActiveSession prometheus.Gauge

	// histograms
	HistSessionDuration      *prometheus.HistogramVec
	HistogramRequestDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("gymquest", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("gymquest", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})
	counterSessionsStarted := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "sessions_started",
		Help:      "The total number of started sessions",
	}, []string{"kind"})
	counterSessionsCompleted := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "sessions_completed",
		Help:      "The total number of completed sessions",
	}, []string{"kind"})
	counterSessionsAbandoned := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "sessions_abandoned",
		Help:      "The total number of sessions exited or replaced before completion",
	}, []string{"kind"})
	counterQuestsCompleted := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "quests_completed",
		Help:      "The total number of completed quests",
	}, []string{"period"})
	counterDiamondsGranted := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "diamonds_granted",
		Help:      "The total number of diamonds granted by quests",
	})
	counterPersistenceErrors := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "persistence_errors",
		Help:      "The total number of failed progress store operations",
	}, []string{"op"})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})
	gaugeStreak := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "streak_days",
		Help:      "Current streak in days",
	})
	gaugeActiveSession := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "active_session",
		Help:      "1 while a session is in progress",
	})

	histSessionDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "session_active_duration_seconds",
		Help:      "Active (worked) time of completed sessions in seconds",
		Buckets:   []float64{10, 30, 60, 120, 300, 600, 1200, 1800, 3600},
	}, []string{"kind"})

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})

	return &Manager{
		CounterRequests:            counterRequests,
		CounterHandleRequestPanic:  counterHandleRequestPanic,
		CounterRateLimitedRequests: counterRateLimitedRequests,
		CounterSessionsStarted:     counterSessionsStarted,
		CounterSessionsCompleted:   counterSessionsCompleted,
		CounterSessionsAbandoned:   counterSessionsAbandoned,
		CounterQuestsCompleted:     counterQuestsCompleted,
		CounterDiamondsGranted:     counterDiamondsGranted,
		CounterPersistenceErrors:   counterPersistenceErrors,
		GaugeRequests:              gaugeRequests,
		GaugeLifeSignal:            gaugeLifeSignal,
		GaugeStreak:                gaugeStreak,
		GaugeActiveSession:         gaugeActiveSession,
		HistSessionDuration:        histSessionDuration,
		HistogramRequestDuration:   histogramRequestDuration,
	}
}
