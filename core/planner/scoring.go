package planner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/campsched/campsched/core/geo"
	"github.com/campsched/campsched/core/model"
)

// ScoreContext carries the per-build state the scorer reads: the session
// preferences, the week being filled and the camps already assigned earlier
// in the same schedule (for the diversity bonus).
type ScoreContext struct {
	Session model.PlanningSession
	Week    model.WeekSlot
	Used    map[string]bool
}

// used reports whether a camp was already assigned in this build.
func (ctx *ScoreContext) used(campID string) bool {
	return ctx.Used != nil && ctx.Used[campID]
}

// Scorer computes the weighted multi-criteria score for a single
// (child, week, candidate) triple. It is stateless and safe to share.
type Scorer struct {
	cfg Config
}

// NewScorer returns a scorer with defaults applied to the config.
func NewScorer(cfg Config) Scorer {
	cfg.SetDefaults()
	return Scorer{cfg: cfg}
}

// Score evaluates the candidate for the child in the context's week under
// the given weight profile. The boolean result is false when a hard
// constraint disqualifies the candidate: grade range, week overlap, weekly
// budget or a missing required activity. Disqualified candidates are
// excluded, not ranked.
//
// Scoring is additive over independent factors, each multiplied by its
// profile weight. Reasons are emitted in a fixed factor order so identical
// inputs always produce identical output.
func (s Scorer) Score(child model.Child, c Candidate, w WeightProfile, ctx *ScoreContext) (float64, []string, model.MatchFlags, bool) {
	var flags model.MatchFlags

	if !c.Camp.FitsGrade(child.Grade) {
		return 0, nil, flags, false
	}
	if !c.Session.Overlaps(ctx.Week.Start, ctx.Week.End) {
		return 0, nil, flags, false
	}
	budget := ctx.Session.WeeklyBudget
	if budget > 0 && c.Camp.Price > budget {
		return 0, nil, flags, false
	}
	for _, req := range ctx.Session.RequiredActivities {
		if !c.Camp.HasCategory(req) {
			return 0, nil, flags, false
		}
	}

	var score float64
	var reasons []string

	// Grade fit: a range centered on the child scores highest, wide or
	// off-center ranges decay but never reach zero so every feasible
	// candidate stays rankable.
	span := float64(c.Camp.GradeMax - c.Camp.GradeMin)
	mid := float64(c.Camp.GradeMin+c.Camp.GradeMax) / 2
	offset := float64(child.Grade) - mid
	if offset < 0 {
		offset = -offset
	}
	fit := 1 / (1 + 0.5*offset + 0.25*span)
	score += s.cfg.GradePoints * fit
	flags.Grade = true
	reasons = append(reasons, fmt.Sprintf("Fits grade range (%s to %s)",
		model.GradeLabel(c.Camp.GradeMin), model.GradeLabel(c.Camp.GradeMax)))

	// Interest overlap, weighted by strength.
	loved, liked, try := matchedInterests(child.Interests, c.Camp)
	matched := len(loved) + len(liked) + len(try)
	if matched > 0 {
		strength := model.StrengthLove.Multiplier()*float64(len(loved)) +
			model.StrengthLike.Multiplier()*float64(len(liked)) +
			model.StrengthTry.Multiplier()*float64(len(try))
		score += strength * s.cfg.InterestPoints * w.Activities
		flags.Category = true
		if len(loved) > 0 {
			reasons = append(reasons, fmt.Sprintf("Matches %d loved interests: %s", len(loved), strings.Join(loved, ", ")))
		}
		if len(liked) > 0 {
			reasons = append(reasons, fmt.Sprintf("Matches %d liked interests: %s", len(liked), strings.Join(liked, ", ")))
		}
		if len(try) > 0 {
			reasons = append(reasons, fmt.Sprintf("Chance to try %d new interests: %s", len(try), strings.Join(try, ", ")))
		}
	}

	// Required activities were hard-gated above, so a match with any
	// requirements set has satisfied all of them.
	flags.Required = true
	if len(ctx.Session.RequiredActivities) > 0 {
		score += s.cfg.RequiredPoints
		reasons = append(reasons, "Covers all must-have activities")
	}

	// Price: headroom below the weekly ceiling. A camp at exactly the
	// budget contributes nothing; over-budget camps never reach here.
	flags.Price = true
	if budget > 0 {
		headroom := (budget - c.Camp.Price) / budget
		score += s.cfg.PricePoints * headroom * w.Price
		if c.Camp.Price <= 0.75*budget {
			reasons = append(reasons, fmt.Sprintf("Well under the $%.0f weekly budget", budget))
		}
	}

	// Distance: inverse miles from home when both coordinates exist.
	// Missing coordinates stay neutral so ungeocoded camps are not punished.
	if ctx.Session.Home != nil && c.Session.Coords != nil {
		radius := ctx.Session.RadiusMiles
		if radius <= 0 {
			radius = s.cfg.DefaultRadiusMiles
		}
		miles := geo.Miles(*ctx.Session.Home, *c.Session.Coords)
		factor := 1 - miles/radius
		if factor < 0 {
			factor = 0
		}
		score += s.cfg.DistancePoints * factor * w.Location
		if miles <= radius {
			flags.Location = true
			reasons = append(reasons, fmt.Sprintf("Close to home (%.1f mi)", miles))
		}
	}

	// Schedule fit: time-of-day and transportation compatibility.
	if c.Session.TimeOfDay != "" && c.Session.TimeOfDay == ctx.Session.TimePreference {
		score += s.cfg.SchedulePoints * w.Schedule
		reasons = append(reasons, fmt.Sprintf("Matches %s schedule preference", c.Session.TimeOfDay))
	}
	if ctx.Session.Transport == model.TransportBus && c.Camp.BusService {
		score += s.cfg.TransportPoints * w.Schedule
		reasons = append(reasons, "Bus transportation available")
	}

	// Diversity: favor camps the schedule has not used yet.
	if !ctx.used(c.Camp.ID) {
		score += s.cfg.DiversityPoints
		reasons = append(reasons, "New camp for the summer - adds variety")
	}

	return score, reasons, flags, true
}

// matchedInterests splits the child's interests matched by the camp's
// category tags into strength buckets, each sorted for stable reason text.
func matchedInterests(interests []model.Interest, camp model.CampCandidate) (loved, liked, try []string) {
	for _, in := range interests {
		if !camp.HasCategory(in.Name) {
			continue
		}
		switch in.Strength {
		case model.StrengthLove:
			loved = append(loved, in.Name)
		case model.StrengthLike:
			liked = append(liked, in.Name)
		default:
			try = append(try, in.Name)
		}
	}
	sort.Strings(loved)
	sort.Strings(liked)
	sort.Strings(try)
	return loved, liked, try
}

// better applies the deterministic tie-break order: higher score, then lower
// price, then earlier session start, then smaller camp and session IDs.
func better(a, b scored) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	if a.cand.Camp.Price != b.cand.Camp.Price {
		return a.cand.Camp.Price < b.cand.Camp.Price
	}
	if !a.cand.Session.StartDate.Equal(b.cand.Session.StartDate) {
		return a.cand.Session.StartDate.Before(b.cand.Session.StartDate)
	}
	if a.cand.Camp.ID != b.cand.Camp.ID {
		return a.cand.Camp.ID < b.cand.Camp.ID
	}
	return a.cand.Session.ID < b.cand.Session.ID
}

// scored pairs a candidate with its evaluation during selection.
type scored struct {
	cand    Candidate
	score   float64
	reasons []string
	flags   model.MatchFlags
}
