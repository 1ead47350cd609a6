// Package metrics defines the observability seam of the planning engine.
// Concrete sinks live in infra/metrics; the core only knows this interface.
package metrics

import "github.com/campsched/campsched/core/planner"

// Sink records planning events for observability purposes.
type Sink interface {
	RecordPlan(ev planner.PlanEvent) error
}

// SuggestionRecorder is implemented by sinks that also track suggestion
// requests.
type SuggestionRecorder interface {
	RecordSuggestions(count int) error
}

// Nop discards all events.
type Nop struct{}

func (Nop) RecordPlan(planner.PlanEvent) error { return nil }
func (Nop) RecordSuggestions(int) error        { return nil }
