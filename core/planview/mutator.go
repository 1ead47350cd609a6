package planview

import "github.com/campsched/campsched/core/model"

// ToggleLock returns a copy of the plan with the lock flag flipped on the
// matching camp cell. No other slot is touched and the optimizer is not
// invoked; the caller re-optimizes later by threading Locks into a new
// generation call.
func ToggleLock(p PlanState, weekID int, campID string) PlanState {
	out := clone(p)
	for wi := range out.Weeks {
		if out.Weeks[wi].ID != weekID {
			continue
		}
		for ci := range out.Weeks[wi].Camps {
			if out.Weeks[wi].Camps[ci].CampID == campID {
				out.Weeks[wi].Camps[ci].Locked = !out.Weeks[wi].Camps[ci].Locked
			}
		}
	}
	return out
}

// Locks extracts the plan's locked cells as the lock set a regeneration
// call must preserve.
func Locks(p PlanState) model.LockSet {
	var ls model.LockSet
	for _, w := range p.Weeks {
		for _, c := range w.Camps {
			if c.Locked {
				ls = append(ls, model.Lock{
					ChildID:   c.ChildID,
					WeekID:    w.ID,
					CampID:    c.CampID,
					SessionID: c.SessionID,
				})
			}
		}
	}
	return ls
}

func clone(p PlanState) PlanState {
	out := p
	out.Children = append([]ChildInPlan(nil), p.Children...)
	out.Weeks = make([]WeekInPlan, len(p.Weeks))
	for i, w := range p.Weeks {
		cw := w
		cw.Camps = make([]CampInPlan, len(w.Camps))
		for j, c := range w.Camps {
			cc := c
			cc.MatchReasons = append([]string(nil), c.MatchReasons...)
			cw.Camps[j] = cc
		}
		out.Weeks[i] = cw
	}
	return out
}
