// Package metrics exposes prometheus counters for ledger operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts ledger operations and their failures by operation name.
type Metrics struct {
	Ops      *prometheus.CounterVec
	Failures *prometheus.CounterVec
}

// New creates the ledger metric set and registers it with the registry. A
// nil registry skips registration, which tests use.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "veralux_ledger_ops_total",
			Help: "Total ledger operations invoked, by operation.",
		}, []string{"op"}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "veralux_ledger_op_failures_total",
			Help: "Total ledger operations that returned an error, by operation.",
		}, []string{"op"}),
	}
	if reg != nil {
		reg.MustRegister(m.Ops, m.Failures)
	}
	return m
}

// Observe records one operation invocation and its outcome.
func (m *Metrics) Observe(op string, err error) {
	if m == nil {
		return
	}
	m.Ops.WithLabelValues(op).Inc()
	if err != nil {
		m.Failures.WithLabelValues(op).Inc()
	}
}
