package metrics

import (
	"context"

	coremetrics "github.com/campsched/campsched/core/metrics"
	"github.com/campsched/campsched/core/planner"
	"github.com/campsched/campsched/internal/eventbus"
)

// StartEventCollector subscribes to the plan event bus and forwards events
// to the sink. It stops when the context is canceled.
func StartEventCollector(ctx context.Context, bus *eventbus.Bus[planner.PlanEvent], sink coremetrics.Sink) {
	if bus == nil || sink == nil {
		return
	}
	sub := bus.Subscribe()
	go func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				_ = sink.RecordPlan(ev)
			}
		}
	}()
}
