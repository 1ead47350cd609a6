package planner

import (
	"sort"

	"github.com/campsched/campsched/core/model"
)

// SuggestionEngine ranks candidates left unused by a chosen schedule for
// the "camps you might like" panel. Scoring reuses the regular scorer
// against the aggregate of all children, without week or child pinning.
type SuggestionEngine struct {
	cfg    Config
	scorer Scorer
}

// NewSuggestionEngine returns an engine with defaults applied.
func NewSuggestionEngine(cfg Config) SuggestionEngine {
	cfg.SetDefaults()
	return SuggestionEngine{cfg: cfg, scorer: NewScorer(cfg)}
}

// Suggest returns up to n candidates not used by the selected option,
// ordered by their average balanced score across all children with the
// standard tie-break. The result is deterministic for a given plan and
// pool. A non-positive n falls back to the configured maximum.
func (e SuggestionEngine) Suggest(sess model.PlanningSession, pool []model.CampCandidate, selected model.ScheduleOption, n int) []model.CampCandidate {
	if n <= 0 {
		n = e.cfg.MaxSuggestions
	}
	if len(sess.Children) == 0 || len(sess.Weeks) == 0 {
		return nil
	}

	used := make(map[string]bool)
	selected.Matches(func(_, _ int, m *model.CampMatch) {
		used[m.CampID] = true
	})

	// One span-of-summer pseudo week stands in for week pinning: any
	// session inside the selected window qualifies.
	span := summerSpan(sess.Weeks)
	ctx := &ScoreContext{Session: sess, Week: span, Used: used}
	profile := BuildProfiles(sess)[0]

	var ranked []scored
	for _, camp := range pool {
		if used[camp.ID] {
			continue
		}
		cand, ok := representative(camp, span)
		if !ok {
			continue
		}
		var sum float64
		feasibleFor := 0
		for _, child := range sess.Children {
			score, _, _, ok := e.scorer.Score(child, cand, profile, ctx)
			if !ok {
				continue
			}
			sum += score
			feasibleFor++
		}
		if feasibleFor == 0 {
			continue
		}
		ranked = append(ranked, scored{cand: cand, score: sum / float64(len(sess.Children))})
	}

	sort.Slice(ranked, func(i, j int) bool { return better(ranked[i], ranked[j]) })
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	out := make([]model.CampCandidate, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.cand.Camp)
	}
	return out
}

// summerSpan collapses the selected weeks into one covering date range.
func summerSpan(weeks []model.WeekSlot) model.WeekSlot {
	span := model.WeekSlot{ID: -1, Label: "summer", Start: weeks[0].Start, End: weeks[0].End}
	for _, w := range weeks[1:] {
		if w.Start.Before(span.Start) {
			span.Start = w.Start
		}
		if w.End.After(span.End) {
			span.End = w.End
		}
	}
	return span
}

// representative picks the camp's earliest in-window session so suggestion
// ordering has a stable secondary key.
func representative(camp model.CampCandidate, span model.WeekSlot) (Candidate, bool) {
	var best *model.Session
	for i := range camp.Sessions {
		s := camp.Sessions[i]
		if !s.Overlaps(span.Start, span.End) {
			continue
		}
		if best == nil || s.StartDate.Before(best.StartDate) ||
			(s.StartDate.Equal(best.StartDate) && s.ID < best.ID) {
			best = &camp.Sessions[i]
		}
	}
	if best == nil {
		return Candidate{}, false
	}
	return Candidate{Camp: camp, Session: *best}, true
}
