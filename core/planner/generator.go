package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/campsched/campsched/core/logger"
	"github.com/campsched/campsched/core/model"
	"github.com/campsched/campsched/internal/eventbus"
)

// PlanEvent describes one generated schedule variant. Events are published
// on the bus for observability consumers; the engine itself never blocks on
// them.
type PlanEvent struct {
	Focus     string
	Children  int
	Weeks     int
	Assigned  int
	Unfilled  int
	TotalCost float64
	Duration  time.Duration
}

// Generator drives the Builder once per weight profile to produce the
// ranked set of alternative ScheduleOptions for a planning session.
type Generator struct {
	cfg     Config
	builder Builder
	log     logger.Logger
	bus     *eventbus.Bus[PlanEvent]
}

// NewGenerator creates a Generator. The bus may be nil when nothing
// consumes plan events.
func NewGenerator(cfg Config, log logger.Logger, bus *eventbus.Bus[PlanEvent]) *Generator {
	cfg.SetDefaults()
	if log == nil {
		log = logger.Nop{}
	}
	return &Generator{cfg: cfg, builder: NewBuilder(cfg, log), log: log, bus: bus}
}

// Generate validates the session and produces one ScheduleOption per weight
// profile, ordered balanced-first with the dominant foci following the
// user's priority order. Locked slots are reproduced verbatim in every
// option that covers them.
//
// An empty candidate pool, or a pool in which no week/child combination is
// feasible, yields an empty slice, not an error: the caller distinguishes
// "your criteria matched nothing" from load failures at the data boundary.
func (g *Generator) Generate(ctx context.Context, sess model.PlanningSession, pool []model.CampCandidate, locks model.LockSet) ([]model.ScheduleOption, error) {
	if err := sess.Validate(); err != nil {
		return nil, fmt.Errorf("invalid planning session: %w", err)
	}
	if len(pool) == 0 {
		g.log.Warnf("no candidates supplied, returning no schedule options")
		return []model.ScheduleOption{}, nil
	}

	ix := NewCandidateIndex(pool, sess.Weeks, sess.WeeklyBudget)
	profiles := BuildProfiles(sess)
	options := make([]model.ScheduleOption, 0, len(profiles))
	assignedTotal := 0

	for _, profile := range profiles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		opt := g.builder.Build(sess, ix, profile, locks)
		options = append(options, opt)

		assigned, unfilled := countSlots(opt)
		assignedTotal += assigned
		g.publish(PlanEvent{
			Focus:     profile.Focus,
			Children:  len(sess.Children),
			Weeks:     len(sess.Weeks),
			Assigned:  assigned,
			Unfilled:  unfilled,
			TotalCost: opt.TotalCost,
			Duration:  time.Since(start),
		})
		g.log.Infof("generated %s schedule: %d/%d slots filled, total cost $%.2f",
			profile.Focus, assigned, assigned+unfilled, opt.TotalCost)
	}

	if assignedTotal == 0 {
		g.log.Warnf("every week/child combination was infeasible")
		return []model.ScheduleOption{}, nil
	}
	return options, nil
}

func (g *Generator) publish(ev PlanEvent) {
	if g.bus != nil {
		g.bus.Publish(ev)
	}
}

func countSlots(opt model.ScheduleOption) (assigned, unfilled int) {
	for _, w := range opt.Weeks {
		for _, c := range w.Children {
			if c.Match != nil {
				assigned++
			} else {
				unfilled++
			}
		}
	}
	return assigned, unfilled
}
