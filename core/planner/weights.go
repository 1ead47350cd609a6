package planner

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/campsched/campsched/core/model"
)

// Optimization focus labels surfaced to the UI.
const (
	FocusBalanced = "Balanced"
	FocusBudget   = "Budget-Friendly"
	FocusLocation = "Location-Optimized"
	FocusActivity = "Activity-Optimized"
)

// WeightProfile is the per-factor weight vector one schedule variant is
// scored with. Weights are normalized to sum to 1.
type WeightProfile struct {
	Focus      string  `json:"focus"`
	Price      float64 `json:"price"`
	Location   float64 `json:"location"`
	Activities float64 `json:"activities"`
	Schedule   float64 `json:"schedule"`
}

// Weight returns the profile's weight for the given factor.
func (p WeightProfile) Weight(f model.PriorityFactor) float64 {
	switch f {
	case model.PriorityPrice:
		return p.Price
	case model.PriorityLocation:
		return p.Location
	case model.PriorityActivities:
		return p.Activities
	case model.PrioritySchedule:
		return p.Schedule
	}
	return 0
}

// rankDecay gives the unnormalized weight for a priority rank: the
// first-ranked factor weighs most, decaying for later ranks.
var rankDecay = [...]float64{4, 3, 2, 1}

// dominantFoci maps each dominant-profile focus to the factor it singles
// out. Schedule has no dedicated focus; its weight only varies through the
// balanced profile.
var dominantFoci = []struct {
	focus  string
	factor model.PriorityFactor
}{
	{FocusBudget, model.PriorityPrice},
	{FocusLocation, model.PriorityLocation},
	{FocusActivity, model.PriorityActivities},
}

// BuildProfiles derives the weight profiles for one generation pass from the
// session's ranked priority order. The balanced profile reflects the exact
// rank order; the dominant profiles each single out one factor so the
// alternatives differ genuinely instead of being near-duplicates. The
// balanced profile comes first and the dominant profiles follow in the
// user's own priority order, which also fixes the order of the returned
// ScheduleOptions.
func BuildProfiles(sess model.PlanningSession) []WeightProfile {
	factors := []model.PriorityFactor{
		model.PriorityPrice, model.PriorityLocation,
		model.PriorityActivities, model.PrioritySchedule,
	}

	balanced := WeightProfile{Focus: FocusBalanced}
	raw := make([]float64, len(factors))
	for i, f := range factors {
		rank := sess.PriorityRank(f)
		if rank >= len(rankDecay) {
			rank = len(rankDecay) - 1
		}
		raw[i] = rankDecay[rank]
	}
	normalize(raw)
	balanced.Price, balanced.Location, balanced.Activities, balanced.Schedule = raw[0], raw[1], raw[2], raw[3]

	profiles := []WeightProfile{balanced}

	dominants := append([]struct {
		focus  string
		factor model.PriorityFactor
	}(nil), dominantFoci...)
	sort.SliceStable(dominants, func(i, j int) bool {
		return sess.PriorityRank(dominants[i].factor) < sess.PriorityRank(dominants[j].factor)
	})
	for _, d := range dominants {
		w := make([]float64, len(factors))
		for i, f := range factors {
			if f == d.factor {
				w[i] = 3
			} else {
				w[i] = 1
			}
		}
		normalize(w)
		profiles = append(profiles, WeightProfile{
			Focus: d.focus, Price: w[0], Location: w[1], Activities: w[2], Schedule: w[3],
		})
	}
	return profiles
}

func normalize(w []float64) {
	if sum := floats.Sum(w); sum > 0 {
		floats.Scale(1/sum, w)
	}
}
