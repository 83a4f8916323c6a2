package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "oracular"

const (
	SubsystemScheduler = "scheduler"
	SubsystemProcessor = "processor"
)

// Config ... Metrics server configuration
type Config struct {
	Host              string
	Port              int
	Enabled           bool
	ReadHeaderTimeout int
}

// Metricer ... Metrics interface consumed by the scheduler and processor
type Metricer interface {
	IncActiveOracles()
	DecActiveOracles()
	RecordPriceUpdate(originType string)
	RecordTickFailure(stage string)
	SetPendingTransactions(n int)
	RecordCallbackDispatch(callbackType string, outcome string)
}

// Metrics ... Prometheus implementation of Metricer
type Metrics struct {
	ActiveOracles       prometheus.Gauge
	PriceUpdates        *prometheus.CounterVec
	TickFailures        *prometheus.CounterVec
	PendingTransactions prometheus.Gauge
	CallbackDispatches  *prometheus.CounterVec

	registry *prometheus.Registry
}

var _ Metricer = (*Metrics)(nil)

// NewMetrics ... Initializer
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(registry)

	return &Metrics{
		ActiveOracles: factory.NewGauge(prometheus.GaugeOpts{
			Name:      "active_oracles",
			Help:      "Number of oracles with an armed timer",
			Namespace: metricsNamespace,
			Subsystem: SubsystemScheduler,
		}),

		PriceUpdates: factory.NewCounterVec(prometheus.CounterOpts{
			Name:      "price_updates_total",
			Help:      "Number of successfully broadcast price update transactions",
			Namespace: metricsNamespace,
			Subsystem: SubsystemScheduler,
		}, []string{"origin"}),

		TickFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name:      "tick_failures_total",
			Help:      "Number of swallowed scheduler tick failures by stage",
			Namespace: metricsNamespace,
			Subsystem: SubsystemScheduler,
		}, []string{"stage"}),

		PendingTransactions: factory.NewGauge(prometheus.GaugeOpts{
			Name:      "pending_transactions",
			Help:      "Number of transactions awaiting a terminal state",
			Namespace: metricsNamespace,
			Subsystem: SubsystemProcessor,
		}),

		CallbackDispatches: factory.NewCounterVec(prometheus.CounterOpts{
			Name:      "callback_dispatches_total",
			Help:      "Number of terminal callback dispatches by type and outcome",
			Namespace: metricsNamespace,
			Subsystem: SubsystemProcessor,
		}, []string{"callback", "outcome"}),

		registry: registry,
	}
}

// IncActiveOracles ... Increments the active oracle gauge
func (m *Metrics) IncActiveOracles() {
	m.ActiveOracles.Inc()
}

// DecActiveOracles ... Decrements the active oracle gauge
func (m *Metrics) DecActiveOracles() {
	m.ActiveOracles.Dec()
}

// RecordPriceUpdate ... Counts a successful broadcast for an origin type
func (m *Metrics) RecordPriceUpdate(originType string) {
	m.PriceUpdates.WithLabelValues(originType).Inc()
}

// RecordTickFailure ... Counts a swallowed tick failure
func (m *Metrics) RecordTickFailure(stage string) {
	m.TickFailures.WithLabelValues(stage).Inc()
}

// SetPendingTransactions ... Records the pending registry size
func (m *Metrics) SetPendingTransactions(n int) {
	m.PendingTransactions.Set(float64(n))
}

// RecordCallbackDispatch ... Counts a terminal callback dispatch
func (m *Metrics) RecordCallbackDispatch(callbackType string, outcome string) {
	m.CallbackDispatches.WithLabelValues(callbackType, outcome).Inc()
}

// noopMetricer ... No-op implementation for tests and disabled configs
type noopMetricer struct{}

// NoopMetrics ... Metricer that does nothing
var NoopMetrics Metricer = &noopMetricer{}

func (n *noopMetricer) IncActiveOracles()                     {}
func (n *noopMetricer) DecActiveOracles()                     {}
func (n *noopMetricer) RecordPriceUpdate(string)              {}
func (n *noopMetricer) RecordTickFailure(string)              {}
func (n *noopMetricer) SetPendingTransactions(int)            {}
func (n *noopMetricer) RecordCallbackDispatch(string, string) {}
