package planner

// Config holds the engine's scoring tunables. Zero values are replaced by
// SetDefaults, so an empty section in the configuration file yields the
// stock behavior.
type Config struct {
	// GradePoints is the base contribution of a grade-range match.
	GradePoints float64 `json:"grade_points"`
	// InterestPoints is the per-matched-interest contribution before the
	// strength multiplier and the activities weight.
	InterestPoints float64 `json:"interest_points"`
	// PricePoints scales the budget-headroom contribution.
	PricePoints float64 `json:"price_points"`
	// DistancePoints scales the proximity contribution.
	DistancePoints float64 `json:"distance_points"`
	// SchedulePoints is the bonus for a time-of-day preference match.
	SchedulePoints float64 `json:"schedule_points"`
	// TransportPoints is the bonus for a compatible transportation mode.
	TransportPoints float64 `json:"transport_points"`
	// RequiredPoints is the bonus for satisfying every required activity.
	RequiredPoints float64 `json:"required_points"`
	// DiversityPoints is the bonus for a camp not yet used in the schedule
	// under construction.
	DiversityPoints float64 `json:"diversity_points"`
	// ReusePenalty multiplies the score when a slot falls back to reusing an
	// already-assigned camp because nothing else is feasible.
	ReusePenalty float64 `json:"reuse_penalty"`
	// DefaultRadiusMiles is assumed when the session sets no travel radius.
	DefaultRadiusMiles float64 `json:"default_radius_miles"`
	// MaxSuggestions bounds Suggest results when the caller passes a
	// non-positive count.
	MaxSuggestions int `json:"max_suggestions"`
}

// SetDefaults applies the stock tunables.
func (c *Config) SetDefaults() {
	if c.GradePoints == 0 {
		c.GradePoints = 100
	}
	if c.InterestPoints == 0 {
		c.InterestPoints = 15
	}
	if c.PricePoints == 0 {
		c.PricePoints = 40
	}
	if c.DistancePoints == 0 {
		c.DistancePoints = 30
	}
	if c.SchedulePoints == 0 {
		c.SchedulePoints = 20
	}
	if c.TransportPoints == 0 {
		c.TransportPoints = 10
	}
	if c.RequiredPoints == 0 {
		c.RequiredPoints = 50
	}
	if c.DiversityPoints == 0 {
		c.DiversityPoints = 25
	}
	if c.ReusePenalty == 0 {
		c.ReusePenalty = 0.8
	}
	if c.DefaultRadiusMiles == 0 {
		c.DefaultRadiusMiles = 10
	}
	if c.MaxSuggestions == 0 {
		c.MaxSuggestions = 6
	}
}
