// Package metrics counts fixture calls for the native CLI and exports them in
// the Prometheus textfile format so a node exporter can pick them up.
package metrics

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"wasmiot-abc/internal/mount"
)

// OutcomeOK labels calls that returned a value rather than a failure code.
const OutcomeOK = "ok"

// Recorder implements mount.Observer on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	// CallsTotal counts calls per function and outcome (ok, deploy, exec, out)
	CallsTotal *prometheus.CounterVec

	// LastResult holds the value most recently returned per function
	LastResult *prometheus.GaugeVec
}

var _ mount.Observer = (*Recorder)(nil)

// NewRecorder creates and registers the call metrics.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		CallsTotal: NewCounterVec(
			"calls_total",
			"Total fixture function calls by outcome.",
			"function", "outcome",
		),
		LastResult: NewGaugeVec(
			"last_result",
			"Value returned by the most recent call of each function.",
			"function",
		),
	}
	r.registry.MustRegister(r.CallsTotal, r.LastResult)
	return r
}

// Observe records one completed call.
func (r *Recorder) Observe(c mount.Call) {
	r.CallsTotal.WithLabelValues(c.Function, Outcome(c)).Inc()
	r.LastResult.WithLabelValues(c.Function).Set(c.Result)
}

// Gatherer exposes the registry for tests and custom exporters.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the registry to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

// Outcome returns the outcome label for c.
func Outcome(c mount.Call) string {
	if !c.Failed() {
		return OutcomeOK
	}
	return strings.ToLower(c.Failure.String())
}
