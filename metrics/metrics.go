// Package metrics counts raised error kinds with Prometheus.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	jsuerror "github.com/xgx-io/jsu-error"
)

// UnknownKind labels errors that carry no jsuerror instance.
const UnknownKind = "unknown"

// Recorder owns the jsu_errors_raised_total counter.
type Recorder struct {
	raised *prometheus.CounterVec
}

// NewRecorder registers the counter on reg. A nil reg uses
// prometheus.DefaultRegisterer. Registering twice on the same registry reuses
// the existing collector.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	cv := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "jsu_errors_raised_total",
		Help: "Errors observed, by kind template.",
	}, []string{"kind"})

	if err := reg.Register(cv); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}
		cv = existing
	}
	return &Recorder{raised: cv}, nil
}

// Observe increments the counter once per distinct kind found in err. Errors
// without an instance count as UnknownKind. Nil is ignored.
func (r *Recorder) Observe(err error) {
	if err == nil {
		return
	}
	kinds := jsuerror.Kinds(err)
	if len(kinds) == 0 {
		r.raised.WithLabelValues(UnknownKind).Inc()
		return
	}
	for _, k := range kinds {
		r.raised.WithLabelValues(k.Template()).Inc()
	}
}

// Counter exposes the underlying vector, mainly for tests and custom exporters.
func (r *Recorder) Counter() *prometheus.CounterVec { return r.raised }
