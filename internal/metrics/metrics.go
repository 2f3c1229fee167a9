// Package metrics exposes counters describing block execution. There is no
// HTTP exposition; callers render the counters to a writer in the Prometheus
// text format when they want them.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Recorder owns the registry and counters for one runtime. A nil Recorder
// is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	blocksExecuted    prometheus.Counter
	extrinsicsApplied prometheus.Counter
	extrinsicsFailed  *prometheus.CounterVec
}

// NewRecorder returns a Recorder backed by its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		blocksExecuted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "statechain_blocks_executed_total",
			Help: "Blocks fully executed, including blocks containing failed extrinsics.",
		}),
		extrinsicsApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "statechain_extrinsics_applied_total",
			Help: "Extrinsics whose dispatch succeeded.",
		}),
		extrinsicsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "statechain_extrinsics_failed_total",
			Help: "Extrinsics whose dispatch returned an error, by reason.",
		}, []string{"reason"}),
	}
	r.registry.MustRegister(r.blocksExecuted, r.extrinsicsApplied, r.extrinsicsFailed)
	return r
}

// BlockExecuted counts one fully executed block.
func (r *Recorder) BlockExecuted() {
	if r == nil {
		return
	}
	r.blocksExecuted.Inc()
}

// ExtrinsicApplied counts one successfully dispatched extrinsic.
func (r *Recorder) ExtrinsicApplied() {
	if r == nil {
		return
	}
	r.extrinsicsApplied.Inc()
}

// ExtrinsicFailed counts one failed dispatch under its error reason.
func (r *Recorder) ExtrinsicFailed(reason string) {
	if r == nil {
		return
	}
	r.extrinsicsFailed.WithLabelValues(reason).Inc()
}

// WriteText renders the current counter values in the Prometheus text
// exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	if r == nil {
		return nil
	}
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := enc.Encode(family); err != nil {
			return fmt.Errorf("failed to encode metric family %q: %w", family.GetName(), err)
		}
	}
	return nil
}
