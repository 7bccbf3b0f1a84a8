// Package metrics exposes ledger counters to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "marketplace_ledger"

// Metrics implements ports.LedgerMetrics.
type Metrics struct {
	registry *prometheus.Registry

	settlementsTotal      *prometheus.CounterVec
	partialSettlements    *prometheus.CounterVec
	txRetriesTotal        *prometheus.CounterVec
	approvalCodeEvents    *prometheus.CounterVec
	withdrawalDecisions   *prometheus.CounterVec
	sweepRunsTotal        prometheus.Counter
	sweepRemovedTotal     prometheus.Counter
	sweepLastRunUnix      prometheus.Gauge
	httpRequestsTotal     *prometheus.CounterVec
	httpRequestDurationMs *prometheus.HistogramVec
}

// New registers every collector on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		settlementsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "settlement",
				Name:      "recorded_total",
				Help:      "Commission credits applied, partitioned by kind.",
			},
			[]string{"kind"},
		),
		partialSettlements: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "settlement",
				Name:      "partial_total",
				Help:      "Committed events whose follow-up credit could not be recorded.",
			},
			[]string{"kind"},
		),
		txRetriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      "tx_retries_total",
				Help:      "Transactions re-run after a transient store failure.",
			},
			[]string{"op"},
		),
		approvalCodeEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "approval",
				Name:      "code_events_total",
				Help:      "Manual approval code issues and confirmations by outcome.",
			},
			[]string{"outcome"},
		),
		withdrawalDecisions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "withdrawal",
				Name:      "decisions_total",
				Help:      "Withdrawal requests created and decided, by action.",
			},
			[]string{"action"},
		),
		sweepRunsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "sweeper",
				Name:      "runs_total",
				Help:      "Completed sweeps of OTP state and caches.",
			},
		),
		sweepRemovedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "sweeper",
				Name:      "removed_total",
				Help:      "Expired OTP entries removed by the sweeper.",
			},
		),
		sweepLastRunUnix: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "sweeper",
				Name:      "last_run_unix",
				Help:      "Unix time of the most recent sweep.",
			},
		),
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests by route and status code.",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDurationMs: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_ms",
				Help:      "HTTP request latency in milliseconds.",
				Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500},
			},
			[]string{"method", "route"},
		),
	}
}

func (m *Metrics) SettlementRecorded(kind string) {
	m.settlementsTotal.WithLabelValues(kind).Inc()
}

func (m *Metrics) PartialSettlement(kind string) {
	m.partialSettlements.WithLabelValues(kind).Inc()
}

func (m *Metrics) TxRetried(op string) {
	m.txRetriesTotal.WithLabelValues(op).Inc()
}

func (m *Metrics) ApprovalCodeEvent(outcome string) {
	m.approvalCodeEvents.WithLabelValues(outcome).Inc()
}

func (m *Metrics) WithdrawalDecided(action string) {
	m.withdrawalDecisions.WithLabelValues(action).Inc()
}

func (m *Metrics) SweepCompleted(removed int) {
	m.sweepRunsTotal.Inc()
	m.sweepRemovedTotal.Add(float64(removed))
	m.sweepLastRunUnix.Set(float64(time.Now().Unix()))
}

// ObserveHTTP records one served request. route is the gin route template,
// never the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTP(method, route, status string, elapsed time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDurationMs.WithLabelValues(method, route).Observe(float64(elapsed.Milliseconds()))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
