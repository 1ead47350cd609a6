// Package metrics implements the core metrics sink on top of Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/campsched/campsched/core/metrics"
	"github.com/campsched/campsched/core/planner"
)

// PromSink records planning events as Prometheus metrics.
type PromSink struct {
	plans       *prometheus.CounterVec
	slots       *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	suggestions prometheus.Counter
}

// NewPromSink registers planning metrics on the default Prometheus
// registerer. The metrics server is started separately with
// StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer. A
// nil registerer defaults to the global one. Registration tolerates
// collectors already registered by a previous sink.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	plans := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_schedules_generated_total",
		Help: "Total number of schedule options generated",
	}, []string{"focus"})
	slots := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_slots_total",
		Help: "Week/child slots by outcome",
	}, []string{"focus", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "planner_generation_duration_seconds",
		Help:    "Time to build one schedule option",
		Buckets: prometheus.DefBuckets,
	}, []string{"focus"})
	suggestions := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planner_suggestions_total",
		Help: "Total number of additional camp suggestions returned",
	})

	if err := reg.Register(plans); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			plans = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(slots); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			slots = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(suggestions); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			suggestions = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	return &PromSink{plans: plans, slots: slots, duration: duration, suggestions: suggestions}, nil
}

// RecordPlan implements coremetrics.Sink.
func (s *PromSink) RecordPlan(ev planner.PlanEvent) error {
	s.plans.WithLabelValues(ev.Focus).Inc()
	s.slots.WithLabelValues(ev.Focus, "assigned").Add(float64(ev.Assigned))
	s.slots.WithLabelValues(ev.Focus, "unfilled").Add(float64(ev.Unfilled))
	s.duration.WithLabelValues(ev.Focus).Observe(ev.Duration.Seconds())
	return nil
}

// RecordSuggestions implements coremetrics.SuggestionRecorder.
func (s *PromSink) RecordSuggestions(count int) error {
	s.suggestions.Add(float64(count))
	return nil
}

var _ coremetrics.Sink = (*PromSink)(nil)
var _ coremetrics.SuggestionRecorder = (*PromSink)(nil)
