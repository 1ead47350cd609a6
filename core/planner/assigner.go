package planner

import (
	"github.com/campsched/campsched/core/model"
)

// AssignWeek picks the highest-scoring feasible candidate for each child in
// the context's week, honoring locks. Assignment is independent per child:
// two children may receive the same session, capacity is not modeled. A
// child with no feasible candidate gets a nil match, which is an unfilled
// slot, not an error.
//
// Locked slots are reproduced verbatim from the index; their score and
// reasons are recomputed for display consistency but the choice itself is
// never revisited. Newly assigned camps are recorded in ctx.Used so later
// slots in the same build see them for the diversity bonus.
func AssignWeek(children []model.Child, ix *CandidateIndex, profile WeightProfile, locks model.LockSet, sc Scorer, ctx *ScoreContext) map[int]*model.CampMatch {
	if ctx.Used == nil {
		ctx.Used = make(map[string]bool)
	}
	out := make(map[int]*model.CampMatch, len(children))
	for _, child := range children {
		var match *model.CampMatch
		if lock, ok := locks.Find(child.ID, ctx.Week.ID); ok {
			match = lockedMatch(child, lock, ix, profile, sc, ctx)
		} else if best := bestCandidate(child, ix, profile, sc, ctx); best != nil {
			match = matchFrom(*best, false)
		}
		if match != nil {
			ctx.Used[match.CampID] = true
		}
		out[child.ID] = match
	}
	return out
}

// bestCandidate evaluates the child's feasible candidates and returns the
// winner, preferring camps the schedule has not used yet. When every
// feasible candidate is already in use, selection reopens to all of them at
// a reduced score, so a week with limited variety still gets filled.
func bestCandidate(child model.Child, ix *CandidateIndex, profile WeightProfile, sc Scorer, ctx *ScoreContext) *scored {
	feasible := ix.Feasible(child, ctx.Week.ID)
	if best := pick(feasible, child, profile, sc, ctx, true); best != nil {
		return best
	}
	if best := pick(feasible, child, profile, sc, ctx, false); best != nil {
		best.score *= sc.cfg.ReusePenalty
		best.reasons = append(best.reasons, "Repeats a camp - limited variety available this week")
		return best
	}
	return nil
}

func pick(feasible []Candidate, child model.Child, profile WeightProfile, sc Scorer, ctx *ScoreContext, skipUsed bool) *scored {
	var best *scored
	for _, cand := range feasible {
		if skipUsed && ctx.used(cand.Camp.ID) {
			continue
		}
		score, reasons, flags, ok := sc.Score(child, cand, profile, ctx)
		if !ok {
			continue
		}
		entry := scored{cand: cand, score: score, reasons: reasons, flags: flags}
		if best == nil || better(entry, *best) {
			best = &entry
		}
	}
	return best
}

// lockedMatch rebuilds the exact camp+session pair the lock pins. A lock
// whose candidate vanished from the pool cannot be honored and leaves the
// slot empty.
func lockedMatch(child model.Child, lock model.Lock, ix *CandidateIndex, profile WeightProfile, sc Scorer, ctx *ScoreContext) *model.CampMatch {
	cand, ok := ix.Lookup(ctx.Week.ID, lock.CampID, lock.SessionID)
	if !ok {
		return nil
	}
	score, reasons, flags, ok := sc.Score(child, cand, profile, ctx)
	if !ok {
		// The pinned choice no longer passes the hard gates; keep it anyway,
		// the user chose it explicitly.
		flags = model.MatchFlags{}
		reasons = []string{"Locked by you"}
	}
	m := matchFrom(scored{cand: cand, score: score, reasons: reasons, flags: flags}, true)
	return m
}

func matchFrom(s scored, locked bool) *model.CampMatch {
	return &model.CampMatch{
		CampID:       s.cand.Camp.ID,
		CampName:     s.cand.Camp.Name,
		Organization: s.cand.Camp.Organization,
		Price:        s.cand.Camp.Price,
		Session:      s.cand.Session,
		Score:        s.score,
		Reasons:      s.reasons,
		Flags:        s.flags,
		Locked:       locked,
	}
}
