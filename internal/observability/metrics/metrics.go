package metrics

import "github.com/prometheus/client_golang/prometheus"

// EngineMetrics exposes counters/histograms for the conversation
// engine. All methods tolerate a nil receiver so metrics stay
// optional in tests.
type EngineMetrics struct {
	turnsTotal     *prometheus.CounterVec
	turnLatency    prometheus.Histogram
	raceOutcomes   *prometheus.CounterVec
	fallbacksTotal prometheus.Counter
	intelExtracted *prometheus.CounterVec
	reportsTotal   *prometheus.CounterVec
	activeSessions prometheus.Gauge
	snapshotErrors *prometheus.CounterVec
}

// NewEngineMetrics registers the engine metrics on reg, defaulting to
// the global registerer.
func NewEngineMetrics(reg prometheus.Registerer) *EngineMetrics {
	m := &EngineMetrics{
		turnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "honeypot",
			Subsystem: "engine",
			Name:      "turns_total",
			Help:      "Total processed turns",
		}, []string{"phase", "scam_detected"}),
		turnLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "honeypot",
			Subsystem: "engine",
			Name:      "turn_latency_seconds",
			Help:      "Latency of full turn processing",
			Buckets:   prometheus.DefBuckets,
		}),
		raceOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "honeypot",
			Subsystem: "llm",
			Name:      "race_outcomes_total",
			Help:      "Generation race outcomes by winning provider",
		}, []string{"provider", "outcome"}),
		fallbacksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "honeypot",
			Subsystem: "engine",
			Name:      "fallback_replies_total",
			Help:      "Turns answered from the canned fallback pool",
		}),
		intelExtracted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "honeypot",
			Subsystem: "intel",
			Name:      "extracted_total",
			Help:      "Extracted intelligence items by category",
		}, []string{"category"}),
		reportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "honeypot",
			Subsystem: "report",
			Name:      "callbacks_total",
			Help:      "Outbound case-report callbacks",
		}, []string{"status"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "honeypot",
			Subsystem: "engine",
			Name:      "active_sessions",
			Help:      "Live sessions in the in-memory store",
		}),
		snapshotErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "honeypot",
			Subsystem: "engine",
			Name:      "snapshot_errors_total",
			Help:      "Snapshot store failures by operation",
		}, []string{"op"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.turnsTotal, m.turnLatency, m.raceOutcomes, m.fallbacksTotal,
		m.intelExtracted, m.reportsTotal, m.activeSessions, m.snapshotErrors,
	)
	return m
}

func (m *EngineMetrics) ObserveTurn(phase string, scamDetected bool, seconds float64) {
	if m == nil {
		return
	}
	detected := "false"
	if scamDetected {
		detected = "true"
	}
	m.turnsTotal.WithLabelValues(phase, detected).Inc()
	m.turnLatency.Observe(seconds)
}

func (m *EngineMetrics) ObserveRace(provider, outcome string) {
	if m == nil {
		return
	}
	m.raceOutcomes.WithLabelValues(provider, outcome).Inc()
}

func (m *EngineMetrics) ObserveFallback() {
	if m == nil {
		return
	}
	m.fallbacksTotal.Inc()
}

func (m *EngineMetrics) ObserveIntel(category string, count int) {
	if m == nil || count <= 0 {
		return
	}
	m.intelExtracted.WithLabelValues(category).Add(float64(count))
}

func (m *EngineMetrics) ObserveReport(status string) {
	if m == nil {
		return
	}
	m.reportsTotal.WithLabelValues(status).Inc()
}

func (m *EngineMetrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}

func (m *EngineMetrics) ObserveSnapshotError(op string) {
	if m == nil {
		return
	}
	m.snapshotErrors.WithLabelValues(op).Inc()
}
