package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "abc"

// NewCounterVec creates a counter in the abc namespace partitioned by labels
func NewCounterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	}, labels)
}

// NewGaugeVec creates a gauge in the abc namespace partitioned by labels
func NewGaugeVec(name, help string, labels ...string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	}, labels)
}
