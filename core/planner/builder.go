package planner

import (
	"github.com/google/uuid"

	"github.com/campsched/campsched/core/logger"
	"github.com/campsched/campsched/core/model"
)

// scheduleNamespace seeds deterministic schedule IDs: the same focus over
// the same inputs always yields the same ID, which keeps whole generation
// runs reproducible.
var scheduleNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("campsched://schedule"))

// Builder assembles one complete ScheduleOption for a single weight profile
// by running AssignWeek over every selected week and aggregating cost and
// the match summary.
type Builder struct {
	scorer Scorer
	log    logger.Logger
}

// NewBuilder returns a Builder using the given scoring config.
func NewBuilder(cfg Config, log logger.Logger) Builder {
	if log == nil {
		log = logger.Nop{}
	}
	return Builder{scorer: NewScorer(cfg), log: log}
}

// Build produces the schedule for one profile. The used-camp set spans the
// whole schedule so the diversity bonus shapes variety across weeks, and
// every match is owned by the returned option alone.
func (b Builder) Build(sess model.PlanningSession, ix *CandidateIndex, profile WeightProfile, locks model.LockSet) model.ScheduleOption {
	opt := model.ScheduleOption{
		ScheduleID:        uuid.NewSHA1(scheduleNamespace, []byte(profile.Focus)).String(),
		OptimizationFocus: profile.Focus,
	}

	used := make(map[string]bool)
	for _, week := range ix.Weeks() {
		ctx := &ScoreContext{Session: sess, Week: week, Used: used}
		assigned := AssignWeek(sess.Children, ix, profile, locks, b.scorer, ctx)

		ws := model.WeekSchedule{Week: week, Children: make([]model.ChildAssignment, 0, len(sess.Children))}
		covered := false
		for _, child := range sess.Children {
			match := assigned[child.ID]
			if match != nil {
				covered = true
				opt.TotalCost += match.Price
				opt.TotalScore += match.Score
				tally(&opt.Summary, match.Flags)
				b.log.Debugw("slot assigned", map[string]any{
					"focus": profile.Focus,
					"week":  week.Label,
					"child": child.DisplayName(),
					"camp":  match.CampName,
					"score": match.Score,
				})
			} else {
				b.log.Debugw("slot unfilled", map[string]any{
					"focus": profile.Focus,
					"week":  week.Label,
					"child": child.DisplayName(),
				})
			}
			ws.Children = append(ws.Children, model.ChildAssignment{
				ChildID:   child.ID,
				ChildName: child.DisplayName(),
				Grade:     child.Grade,
				Match:     match.Clone(),
			})
		}
		if covered {
			opt.Summary.WeeksCovered++
		}
		opt.Weeks = append(opt.Weeks, ws)
	}
	return opt
}

func tally(s *model.MatchSummary, f model.MatchFlags) {
	if f.Grade {
		s.GradeMatch++
	}
	if f.Price {
		s.PriceMatch++
	}
	if f.Location {
		s.LocationMatch++
	}
	if f.Category {
		s.CategoryMatch++
	}
	if f.Required {
		s.RequiredActivities++
	}
}
