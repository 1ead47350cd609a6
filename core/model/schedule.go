package model

// MatchFlags records which criteria a single camp match satisfied. They feed
// the schedule-level MatchSummary counters.
type MatchFlags struct {
	Grade    bool `json:"grade"`
	Price    bool `json:"price"`
	Location bool `json:"location"`
	Category bool `json:"category"`
	Required bool `json:"required_activities"`
}

// CampMatch is the camp+session chosen for one child in one week, with the
// score and reasons that produced it. Matches are owned by the
// ScheduleOption that contains them and are copied, never shared, so that
// locking one schedule cannot mutate another.
type CampMatch struct {
	CampID       string     `json:"camp_id"`
	CampName     string     `json:"camp_name"`
	Organization string     `json:"organization"`
	Price        float64    `json:"price"`
	Session      Session    `json:"session"`
	Score        float64    `json:"score"`
	Reasons      []string   `json:"reasons"`
	Flags        MatchFlags `json:"flags"`
	Locked       bool       `json:"locked"`
}

// Clone returns an independent copy of the match.
func (m *CampMatch) Clone() *CampMatch {
	if m == nil {
		return nil
	}
	cp := *m
	cp.Reasons = append([]string(nil), m.Reasons...)
	return &cp
}

// ChildAssignment is one child's slot within a week: the match, or nil when
// the week is unfilled for that child.
type ChildAssignment struct {
	ChildID   int        `json:"child_id"`
	ChildName string     `json:"child_name"`
	Grade     int        `json:"grade"`
	Match     *CampMatch `json:"match,omitempty"`
}

// WeekSchedule groups the per-child assignments of a single week.
type WeekSchedule struct {
	Week     WeekSlot          `json:"week"`
	Children []ChildAssignment `json:"children"`
}

// MatchSummary aggregates criterion counters across a whole schedule. Each
// counter is bounded by weeks x children; WeeksCovered counts weeks with at
// least one assigned match.
type MatchSummary struct {
	GradeMatch         int `json:"grade_match"`
	PriceMatch         int `json:"price_match"`
	LocationMatch      int `json:"location_match"`
	CategoryMatch      int `json:"category_match"`
	RequiredActivities int `json:"required_activities_match"`
	WeeksCovered       int `json:"total_weeks_covered"`
}

// ScheduleOption is one complete, internally consistent schedule produced by
// a single weight profile. TotalCost is the sum of all assigned match
// prices.
type ScheduleOption struct {
	ScheduleID        string         `json:"schedule_id"`
	OptimizationFocus string         `json:"optimization_focus"`
	TotalScore        float64        `json:"total_score"`
	TotalCost         float64        `json:"total_cost"`
	Weeks             []WeekSchedule `json:"week_schedule"`
	Summary           MatchSummary   `json:"match_summary"`
}

// Matches calls fn for every assigned match in the option.
func (o ScheduleOption) Matches(fn func(weekID, childID int, m *CampMatch)) {
	for _, w := range o.Weeks {
		for _, c := range w.Children {
			if c.Match != nil {
				fn(w.Week.ID, c.ChildID, c.Match)
			}
		}
	}
}

// Lock pins one (child, week, camp, session) choice. The optimizer must
// reproduce a locked match verbatim in any regeneration covering that slot.
type Lock struct {
	ChildID   int    `json:"child_id"`
	WeekID    int    `json:"week_id"`
	CampID    string `json:"camp_id"`
	SessionID string `json:"session_id"`
}

// LockSet is the collection of locks threaded through a regeneration call.
type LockSet []Lock

// Find returns the lock for the (child, week) pair, if any.
func (ls LockSet) Find(childID, weekID int) (Lock, bool) {
	for _, l := range ls {
		if l.ChildID == childID && l.WeekID == weekID {
			return l, true
		}
	}
	return Lock{}, false
}
